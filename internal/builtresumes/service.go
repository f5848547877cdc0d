package builtresumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewai-backend/internal/llm"
	"interviewai-backend/internal/shared/metrics"
)

// Builder rewrites raw resume input into the builder's JSON resume.
type Builder interface {
	BuildResume(ctx context.Context, in llm.BuildInput) string
}

// Service contains business logic for built resumes.
type Service struct {
	Repo    Repo
	Builder Builder
	Now     func() time.Time
}

// Build runs the model over the user's input and stores both the input and
// the generated resume.
func (s *Service) Build(ctx context.Context, userID string, in llm.BuildInput) (BuiltResume, error) {
	in.Title = strings.TrimSpace(in.Title)
	if userID == "" || in.Title == "" {
		return BuiltResume{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Builder == nil {
		return BuiltResume{}, errors.New("missing dependencies")
	}
	defer metrics.ObserveSince(time.Now())

	raw := s.Builder.BuildResume(ctx, in)
	content, obj, err := llm.DecodeJSONObject(raw)
	if err != nil {
		return BuiltResume{}, err
	}
	if msg, ok := obj["error"]; ok {
		return BuiltResume{}, fmt.Errorf("%w: %s", llm.ErrAIAnalysisParse, llm.CoerceString(msg))
	}

	input, err := json.Marshal(in)
	if err != nil {
		return BuiltResume{}, err
	}

	resume := BuiltResume{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Title:              in.Title,
		UserInputData:      input,
		AIGeneratedContent: content,
		CreatedAt:          s.now(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return BuiltResume{}, err
	}
	return resume, nil
}

// Get returns a built resume owned by userID. Resumes owned by someone else
// are reported as not found.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (BuiltResume, error) {
	if userID == "" || resumeID == "" {
		return BuiltResume{}, ErrInvalidInput
	}
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return BuiltResume{}, err
	}
	if resume.UserID != userID {
		return BuiltResume{}, ErrNotFound
	}
	return resume, nil
}

// List returns built resumes for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]BuiltResume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a built resume owned by userID.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if _, err := s.Get(ctx, userID, resumeID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, resumeID)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
