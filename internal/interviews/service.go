package interviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewai-backend/internal/shared/metrics"
)

// QuestionGenerator produces the interview script for a role and level.
type QuestionGenerator interface {
	GenerateInterviewQuestions(ctx context.Context, role, experienceLevel string) string
}

// CreateInput is the caller-supplied part of a new interview.
type CreateInput struct {
	Title           string
	Role            string
	ExperienceLevel string
}

// Service contains business logic for interviews.
type Service struct {
	Repo      Repo
	Generator QuestionGenerator
	Now       func() time.Time
}

// Create generates questions and persists a new interview owned by userID.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Interview, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Role = strings.TrimSpace(in.Role)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	if userID == "" || in.Role == "" || in.ExperienceLevel == "" {
		return Interview{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Generator == nil {
		return Interview{}, errors.New("missing dependencies")
	}

	defer metrics.ObserveSince(time.Now())

	questions := s.Generator.GenerateInterviewQuestions(ctx, in.Role, in.ExperienceLevel)

	interview := Interview{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           in.Title,
		Role:            in.Role,
		ExperienceLevel: in.ExperienceLevel,
		Questions:       questions,
		CreatedAt:       s.now(),
	}
	if err := s.Repo.Create(ctx, interview); err != nil {
		return Interview{}, err
	}
	return interview, nil
}

// Get returns an interview owned by userID.
func (s *Service) Get(ctx context.Context, userID, interviewID string) (Interview, error) {
	if userID == "" || interviewID == "" {
		return Interview{}, ErrInvalidInput
	}
	interview, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return Interview{}, err
	}
	if interview.UserID != userID {
		return Interview{}, ErrForbidden
	}
	return interview, nil
}

// List returns interviews for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
