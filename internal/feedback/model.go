package feedback

import "time"

// Feedback is the model's assessment of an interview transcript.
type Feedback struct {
	ID                  string
	InterviewID         string
	UserID              string
	Transcript          string
	Strengths           string
	AreasForImprovement string
	OverallScore        *int
	GeneratedAt         time.Time
}
