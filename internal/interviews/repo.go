package interviews

import "context"

// Repo defines persistence operations for interviews.
type Repo interface {
	Create(ctx context.Context, interview Interview) error
	GetByID(ctx context.Context, interviewID string) (Interview, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error)
}
