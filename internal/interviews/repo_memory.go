package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores interviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Interview
	byUser map[string][]Interview
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Interview),
		byUser: make(map[string][]Interview),
	}
}

// Create stores the interview.
func (r *MemoryRepo) Create(ctx context.Context, interview Interview) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[interview.ID] = interview
	r.byUser[interview.UserID] = append(r.byUser[interview.UserID], interview)
	return nil
}

// GetByID returns an interview by ID regardless of owner.
func (r *MemoryRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	interview, ok := r.byID[interviewID]
	if !ok {
		return Interview{}, ErrNotFound
	}
	return interview, nil
}

// ListByUser returns interviews for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userInterviews := r.byUser[userID]
	r.mu.RUnlock()

	if len(userInterviews) == 0 || offset >= len(userInterviews) {
		return []Interview{}, nil
	}

	out := make([]Interview, len(userInterviews))
	copy(out, userInterviews)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
