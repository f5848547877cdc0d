package llm

import "errors"

var (
	// ErrModelUnavailable indicates a transport failure, timeout or non-2xx reply from the model endpoint.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrAIAnalysisParse indicates model output that is not the expected JSON.
	ErrAIAnalysisParse = errors.New("ai output parse failed")

	// ErrEmptyResponse indicates the model returned no text.
	ErrEmptyResponse = errors.New("model returned empty response")
)
