package feedback

import "context"

// Repo defines persistence operations for feedback.
type Repo interface {
	Create(ctx context.Context, fb Feedback) error
	GetByID(ctx context.Context, feedbackID string) (Feedback, error)
	// FirstByInterview returns the earliest feedback generated for an interview.
	FirstByInterview(ctx context.Context, interviewID string) (Feedback, error)
}
