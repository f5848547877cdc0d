package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"interviewai-backend/internal/interviews"
	"interviewai-backend/internal/llm"
	"interviewai-backend/internal/shared/metrics"
)

// TranscriptAnalyzer turns an interview transcript into a feedback map with
// strengths, areas_for_improvement and overall_score keys.
type TranscriptAnalyzer interface {
	AnalyzeTranscript(ctx context.Context, transcript string) map[string]any
}

// InterviewReader loads interviews for ownership checks.
type InterviewReader interface {
	GetByID(ctx context.Context, interviewID string) (interviews.Interview, error)
}

// Service contains business logic for interview feedback.
type Service struct {
	Repo       Repo
	Interviews InterviewReader
	Analyzer   TranscriptAnalyzer
	Now        func() time.Time
}

// Generate analyzes the transcript and stores feedback for an interview the
// user owns. Model failures are absorbed by the analyzer's fallback.
func (s *Service) Generate(ctx context.Context, userID, interviewID, transcript string) (Feedback, error) {
	if userID == "" || interviewID == "" || strings.TrimSpace(transcript) == "" {
		return Feedback{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Interviews == nil || s.Analyzer == nil {
		return Feedback{}, errors.New("missing dependencies")
	}

	defer metrics.ObserveSince(time.Now())

	if _, err := s.ownedInterview(ctx, userID, interviewID); err != nil {
		return Feedback{}, err
	}

	result := s.Analyzer.AnalyzeTranscript(ctx, transcript)

	fb := Feedback{
		ID:                  uuid.NewString(),
		InterviewID:         interviewID,
		UserID:              userID,
		Transcript:          transcript,
		Strengths:           llm.CoerceString(result["strengths"]),
		AreasForImprovement: llm.CoerceString(result["areas_for_improvement"]),
		OverallScore:        llm.CoerceInt(result["overall_score"]),
		GeneratedAt:         s.now(),
	}
	if err := s.Repo.Create(ctx, fb); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// Get returns feedback whose interview belongs to userID.
func (s *Service) Get(ctx context.Context, userID, feedbackID string) (Feedback, error) {
	if userID == "" || feedbackID == "" {
		return Feedback{}, ErrInvalidInput
	}
	fb, err := s.Repo.GetByID(ctx, feedbackID)
	if err != nil {
		return Feedback{}, err
	}
	if _, err := s.ownedInterview(ctx, userID, fb.InterviewID); err != nil {
		return Feedback{}, err
	}
	return fb, nil
}

// GetForInterview returns the first feedback stored for an interview the user owns.
func (s *Service) GetForInterview(ctx context.Context, userID, interviewID string) (Feedback, error) {
	if userID == "" || interviewID == "" {
		return Feedback{}, ErrInvalidInput
	}
	if _, err := s.ownedInterview(ctx, userID, interviewID); err != nil {
		return Feedback{}, err
	}
	return s.Repo.FirstByInterview(ctx, interviewID)
}

func (s *Service) ownedInterview(ctx context.Context, userID, interviewID string) (interviews.Interview, error) {
	interview, err := s.Interviews.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, interviews.ErrNotFound) {
			return interviews.Interview{}, ErrInterviewNotFound
		}
		return interviews.Interview{}, err
	}
	if interview.UserID != userID {
		return interviews.Interview{}, ErrForbidden
	}
	return interview, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
