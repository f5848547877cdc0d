package builtresumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores built resumes in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]BuiltResume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]BuiltResume)}
}

// Create stores the built resume.
func (r *MemoryRepo) Create(ctx context.Context, resume BuiltResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	return nil
}

// GetByID returns a built resume by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, resumeID string) (BuiltResume, error) {
	if err := ctx.Err(); err != nil {
		return BuiltResume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok {
		return BuiltResume{}, ErrNotFound
	}
	return resume, nil
}

// ListByUser returns built resumes for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]BuiltResume, error) {
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
	var resumes []BuiltResume
	for _, resume := range r.byID {
		if resume.UserID == userID {
			resumes = append(resumes, resume)
		}
	}
	r.mu.RUnlock()

	if offset >= len(resumes) {
		return []BuiltResume{}, nil
	}
	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].CreatedAt.After(resumes[j].CreatedAt)
	})

	end := len(resumes)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return resumes[offset:end], nil
}

// Delete removes a built resume.
func (r *MemoryRepo) Delete(ctx context.Context, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[resumeID]; !ok {
		return ErrNotFound
	}
	delete(r.byID, resumeID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
