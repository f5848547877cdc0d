package builtresumes

import "context"

// Repo defines persistence operations for built resumes.
type Repo interface {
	Create(ctx context.Context, resume BuiltResume) error
	GetByID(ctx context.Context, resumeID string) (BuiltResume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]BuiltResume, error)
	Delete(ctx context.Context, resumeID string) error
}
