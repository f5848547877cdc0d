package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"interviewai-backend/internal/shared/metrics"
	"interviewai-backend/internal/shared/telemetry"
)

// Use case labels for logs and metrics.
const (
	UseCaseQuestions      = "questions"
	UseCaseFeedback       = "feedback"
	UseCaseResumeAnalysis = "resume_analysis"
	UseCaseResumeBuild    = "resume_build"
)

const (
	// AnalysisFailedJSON is returned in place of model output when resume analysis fails.
	AnalysisFailedJSON = `{"error": "Failed to analyze resume."}`
	// BuildFailedJSON is returned in place of model output when resume build fails.
	BuildFailedJSON = `{"error": "Failed to build resume. Please try again."}`

	logPreviewLimit = 300
)

// FallbackQuestions is the interview script stored when question generation fails.
const FallbackQuestions = `{"opening":"Hello, and thank you for joining this mock interview today. I will ask you four questions about your background and how you approach your work. Take your time with each answer.","questions":[{"question":"To start, can you walk me through your background and what drew you to this role?","acknowledgment":"Thank you, that gives me a good picture of your journey so far."},{"question":"Tell me about a challenging project you worked on. What was your role and how did you handle the difficulties?","acknowledgment":"That sounds like a valuable experience. Thanks for the detail."},{"question":"Describe a time you disagreed with a teammate. How did you resolve it?","acknowledgment":"I appreciate you sharing how you handled that."},{"question":"Where do you see yourself growing over the next few years, and how does this role fit into that?","acknowledgment":"Thank you, it is great to hear your goals."}],"closing":"That concludes our interview. Thank you for your time and thoughtful answers. Your feedback will be ready shortly."}`

// FallbackFeedback returns the feedback stored when transcript analysis fails.
func FallbackFeedback() map[string]any {
	return map[string]any{
		"strengths":             "Analysis failed.",
		"areas_for_improvement": "Could not generate feedback. Please try again.",
		"overall_score":         0,
	}
}

// Assistant runs the prompt, model call and normalization steps for each use
// case and applies that use case's fallback on failure.
type Assistant struct {
	Client Client
	Logger *zap.Logger
}

// NewAssistant constructs an Assistant. A nil logger uses the process logger.
func NewAssistant(client Client, logger *zap.Logger) *Assistant {
	return &Assistant{Client: client, Logger: logger}
}

// GenerateInterviewQuestions returns the interview script JSON. It never fails:
// model or parse errors yield FallbackQuestions.
func (a *Assistant) GenerateInterviewQuestions(ctx context.Context, role, experienceLevel string) string {
	raw, err := a.generate(ctx, UseCaseQuestions, QuestionsPrompt(role, experienceLevel))
	if err != nil {
		return a.fallback(UseCaseQuestions, err, FallbackQuestions)
	}

	script, obj, err := DecodeJSONObject(raw)
	if err == nil {
		if qs, ok := obj["questions"].([]any); !ok || len(qs) == 0 {
			err = fmt.Errorf("%w: no questions in output", ErrAIAnalysisParse)
		}
	}
	if err != nil {
		metrics.IncModelFailure(UseCaseQuestions)
		return a.fallback(UseCaseQuestions, err, FallbackQuestions)
	}
	return string(script)
}

// AnalyzeTranscript returns the feedback map for a transcript. It never fails:
// model or parse errors yield FallbackFeedback.
func (a *Assistant) AnalyzeTranscript(ctx context.Context, transcript string) map[string]any {
	raw, err := a.generate(ctx, UseCaseFeedback, FeedbackPrompt(transcript))
	if err == nil {
		var obj map[string]any
		if obj, err = ParseJSONObject(raw); err == nil {
			return obj
		}
		metrics.IncModelFailure(UseCaseFeedback)
	}
	a.logger().Warn("feedback fallback", zap.Error(err))
	metrics.IncFallback(UseCaseFeedback)
	return FallbackFeedback()
}

// AnalyzeResume returns the fence-stripped analysis JSON text, or
// AnalysisFailedJSON when the model call fails.
func (a *Assistant) AnalyzeResume(ctx context.Context, in AnalysisInput) string {
	raw, err := a.generate(ctx, UseCaseResumeAnalysis, ResumeAnalysisPrompt(in))
	if err != nil {
		return a.fallback(UseCaseResumeAnalysis, err, AnalysisFailedJSON)
	}
	return StripMarkdownFence(raw)
}

// BuildResume returns the fence-stripped resume JSON text, or BuildFailedJSON
// when the model call fails.
func (a *Assistant) BuildResume(ctx context.Context, in BuildInput) string {
	raw, err := a.generate(ctx, UseCaseResumeBuild, ResumeBuildPrompt(in))
	if err != nil {
		return a.fallback(UseCaseResumeBuild, err, BuildFailedJSON)
	}
	return StripMarkdownFence(raw)
}

func (a *Assistant) generate(ctx context.Context, useCase, prompt string) (string, error) {
	if a == nil || a.Client == nil {
		return "", fmt.Errorf("%w: no model client configured", ErrModelUnavailable)
	}
	log := a.logger().With(zap.String("use_case", useCase))

	metrics.IncModelCall(useCase)
	start := time.Now()
	text, err := a.Client.Generate(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		metrics.IncModelFailure(useCase)
		log.Error("model call failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncModelFailure(useCase)
		log.Warn("model returned no text", zap.Duration("elapsed", elapsed))
		return "", ErrEmptyResponse
	}

	log.Debug("model call complete",
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("response_chars", len(text)),
		zap.Duration("elapsed", elapsed),
		zap.String("response_preview", telemetry.Truncate(text, logPreviewLimit)),
	)
	return text, nil
}

func (a *Assistant) fallback(useCase string, err error, value string) string {
	a.logger().Warn("using fallback", zap.String("use_case", useCase), zap.Error(err))
	metrics.IncFallback(useCase)
	return value
}

func (a *Assistant) logger() *zap.Logger {
	if a != nil && a.Logger != nil {
		return a.Logger
	}
	return telemetry.L()
}
