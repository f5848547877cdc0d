package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// StripMarkdownFence removes every "```json" marker, then every "```" marker,
// and trims surrounding whitespace. Applying it twice yields the same result.
func StripMarkdownFence(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseJSONObject strips fences and decodes the leading JSON object in text.
// Numbers are kept as json.Number. Anything after the object is ignored.
func ParseJSONObject(text string) (map[string]any, error) {
	_, obj, err := DecodeJSONObject(text)
	return obj, err
}

// DecodeJSONObject is ParseJSONObject that also returns the object's own
// bytes, without fences or trailing text.
func DecodeJSONObject(text string) (json.RawMessage, map[string]any, error) {
	cleaned := StripMarkdownFence(text)
	if cleaned == "" {
		return nil, nil, fmt.Errorf("%w: empty output", ErrAIAnalysisParse)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(cleaned)).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAIAnalysisParse, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrAIAnalysisParse, err)
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w: expected object, got %T", ErrAIAnalysisParse, value)
	}
	return raw, obj, nil
}

// CoerceInt returns v as an int when it is a JSON number. Fractions are
// truncated. Anything else yields nil.
func CoerceInt(v any) *int {
	var f float64
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			out := int(i)
			return &out
		}
		parsed, err := n.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		return &n
	case int64:
		out := int(n)
		return &out
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	out := int(f)
	return &out
}

// CoerceString returns v as a string. Non-string scalars are formatted,
// nil becomes "".
func CoerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
