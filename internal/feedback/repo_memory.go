package feedback

import (
	"context"
	"sync"
)

// MemoryRepo stores feedback in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu          sync.RWMutex
	byID        map[string]Feedback
	byInterview map[string][]Feedback
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:        make(map[string]Feedback),
		byInterview: make(map[string][]Feedback),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[fb.ID] = fb
	r.byInterview[fb.InterviewID] = append(r.byInterview[fb.InterviewID], fb)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, feedbackID string) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fb, ok := r.byID[feedbackID]
	if !ok {
		return Feedback{}, ErrNotFound
	}
	return fb, nil
}

func (r *MemoryRepo) FirstByInterview(ctx context.Context, interviewID string) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.byInterview[interviewID]
	if len(items) == 0 {
		return Feedback{}, ErrNotFound
	}
	first := items[0]
	for _, fb := range items[1:] {
		if fb.GeneratedAt.Before(first.GeneratedAt) {
			first = fb
		}
	}
	return first, nil
}

var _ Repo = (*MemoryRepo)(nil)
