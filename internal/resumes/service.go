package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewai-backend/internal/extract"
	"interviewai-backend/internal/llm"
	"interviewai-backend/internal/shared/metrics"
	"interviewai-backend/internal/shared/telemetry"
	"interviewai-backend/internal/supabase"
)

const defaultMarkTimeout = 10 * time.Second

// FileStore resolves resume metadata and file bytes and flags analyzed resumes.
// Both supabase.Client and supabase.LocalStore satisfy it.
type FileStore interface {
	GetResumeMetadata(ctx context.Context, resumeID, userID string) (supabase.ResumeMetadata, error)
	Download(ctx context.Context, filePath string) ([]byte, error)
	MarkAnalyzed(ctx context.Context, resumeID string) error
}

// Analyzer runs the model analysis and returns its JSON text.
type Analyzer interface {
	AnalyzeResume(ctx context.Context, in llm.AnalysisInput) string
}

// TextExtractor pulls plain text out of an uploaded file.
type TextExtractor func(ctx context.Context, data []byte) (string, error)

// Service analyzes stored resumes and persists the results.
type Service struct {
	Repo        Repo
	Files       FileStore
	Analyzer    Analyzer
	Extract     TextExtractor
	Logger      *zap.Logger
	MarkTimeout time.Duration
	Now         func() time.Time

	wg sync.WaitGroup
}

// Analyze runs the full pipeline for one resume owned by userID: metadata,
// download, text extraction, model analysis and persistence. The resume is
// flagged as analyzed in the background once the record is saved.
func (s *Service) Analyze(ctx context.Context, userID, resumeID, jobDescription string) (Analysis, error) {
	if userID == "" || resumeID == "" {
		return Analysis{}, ErrInvalidInput
	}
	if s.Repo == nil || s.Files == nil || s.Analyzer == nil {
		return Analysis{}, errors.New("missing dependencies")
	}
	defer metrics.ObserveSince(time.Now())

	meta, err := s.Files.GetResumeMetadata(ctx, resumeID, userID)
	if err != nil {
		return Analysis{}, err
	}
	data, err := s.Files.Download(ctx, meta.FilePath)
	if err != nil {
		return Analysis{}, err
	}
	text, err := s.extract(ctx, data)
	if err != nil {
		return Analysis{}, err
	}

	raw := s.Analyzer.AnalyzeResume(ctx, llm.AnalysisInput{
		ResumeText:     text,
		FileName:       meta.FileName,
		FileSize:       meta.FormattedSize(),
		UploadDate:     meta.UploadDate,
		JobDescription: jobDescription,
	})

	analysis, err := buildAnalysis(raw)
	if err != nil {
		s.logger().Warn("resume analysis rejected",
			zap.String("resume_id", resumeID),
			zap.Error(err),
			zap.String("response_preview", telemetry.Truncate(raw, 300)),
		)
		return Analysis{}, err
	}
	analysis.ID = uuid.NewString()
	analysis.ResumeID = resumeID
	analysis.UserID = userID
	analysis.GeneratedAt = s.now()

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return Analysis{}, err
	}

	s.markAnalyzed(ctx, resumeID)
	return analysis, nil
}

// GetAnalysis returns the latest analysis for a resume owned by userID.
func (s *Service) GetAnalysis(ctx context.Context, userID, resumeID string) (Analysis, error) {
	if userID == "" || resumeID == "" {
		return Analysis{}, ErrInvalidInput
	}
	analysis, err := s.Repo.LatestByResume(ctx, resumeID)
	if err != nil {
		return Analysis{}, err
	}
	if analysis.UserID != userID {
		return Analysis{}, ErrForbidden
	}
	return analysis, nil
}

// Wait blocks until background MarkAnalyzed calls have finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) markAnalyzed(ctx context.Context, resumeID string) {
	timeout := s.MarkTimeout
	if timeout <= 0 {
		timeout = defaultMarkTimeout
	}
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		if err := s.Files.MarkAnalyzed(bg, resumeID); err != nil {
			metrics.IncMarkAnalyzedFailed()
			s.logger().Warn("mark analyzed failed", zap.String("resume_id", resumeID), zap.Error(err))
			return
		}
		s.logger().Debug("resume marked analyzed", zap.String("resume_id", resumeID))
	}()
}

func (s *Service) extract(ctx context.Context, data []byte) (string, error) {
	if s.Extract != nil {
		return s.Extract(ctx, data)
	}
	return extract.PDFText(ctx, data)
}

func (s *Service) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return telemetry.L()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// buildAnalysis maps the model's analysis JSON onto a record. The placeholder
// error payload and output without any known section are rejected.
func buildAnalysis(raw string) (Analysis, error) {
	obj, err := llm.ParseJSONObject(raw)
	if err != nil {
		return Analysis{}, err
	}
	if msg, ok := obj["error"]; ok {
		return Analysis{}, fmt.Errorf("%w: %s", llm.ErrAIAnalysisParse, llm.CoerceString(msg))
	}

	sections := make(map[string]any, len(SectionKeys))
	present := 0
	for _, key := range SectionKeys {
		v := obj[key]
		if v != nil {
			present++
		}
		sections[key] = v
	}
	if present == 0 {
		return Analysis{}, fmt.Errorf("%w: no analysis sections in output", llm.ErrAIAnalysisParse)
	}

	strengths, err := json.Marshal(sections)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", llm.ErrAIAnalysisParse, err)
	}
	improvements, err := json.Marshal(improvementsSummary)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		OverallScore: llm.CoerceInt(obj["overallScore"]),
		Strengths:    strengths,
		Improvements: improvements,
	}, nil
}
