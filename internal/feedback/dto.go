package feedback

import "time"

type generateRequest struct {
	InterviewID string `json:"interviewId"`
	Transcript  string `json:"transcript"`
}

// Response is the JSON shape of a feedback record.
type Response struct {
	ID                  string    `json:"id"`
	InterviewID         string    `json:"interviewId"`
	UserID              string    `json:"userId"`
	Transcript          string    `json:"transcript"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areasForImprovement"`
	OverallScore        *int      `json:"overallScore"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

func toResponse(fb Feedback) Response {
	return Response{
		ID:                  fb.ID,
		InterviewID:         fb.InterviewID,
		UserID:              fb.UserID,
		Transcript:          fb.Transcript,
		Strengths:           fb.Strengths,
		AreasForImprovement: fb.AreasForImprovement,
		OverallScore:        fb.OverallScore,
		GeneratedAt:         fb.GeneratedAt,
	}
}
