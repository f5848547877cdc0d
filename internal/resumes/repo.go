package resumes

import "context"

// Repo defines persistence operations for resume analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	LatestByResume(ctx context.Context, resumeID string) (Analysis, error)
}
