package resumes

import (
	"context"
	"sync"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu       sync.RWMutex
	byResume map[string][]Analysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byResume: make(map[string][]Analysis)}
}

func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byResume[analysis.ResumeID] = append(r.byResume[analysis.ResumeID], analysis)
	return nil
}

// LatestByResume returns the most recently generated analysis for a resume.
func (r *MemoryRepo) LatestByResume(ctx context.Context, resumeID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.byResume[resumeID]
	if len(items) == 0 {
		return Analysis{}, ErrNotFound
	}
	latest := items[0]
	for _, a := range items[1:] {
		if !a.GeneratedAt.Before(latest.GeneratedAt) {
			latest = a
		}
	}
	return latest, nil
}

// Count returns the number of stored analyses.
func (r *MemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, items := range r.byResume {
		n += len(items)
	}
	return n
}

var _ Repo = (*MemoryRepo)(nil)
