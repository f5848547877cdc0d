package resumes

import (
	"encoding/json"
	"time"
)

type analyzeRequest struct {
	ResumeID       string `json:"resumeId"`
	JobDescription string `json:"jobDescription"`
}

// Response is the JSON shape of a resume analysis.
type Response struct {
	ID           string          `json:"id"`
	ResumeID     string          `json:"resumeId"`
	UserID       string          `json:"userId"`
	OverallScore *int            `json:"overallScore"`
	Strengths    json.RawMessage `json:"strengths"`
	Improvements json.RawMessage `json:"improvements"`
	GeneratedAt  time.Time       `json:"generatedAt"`
}

func toResponse(a Analysis) Response {
	return Response{
		ID:           a.ID,
		ResumeID:     a.ResumeID,
		UserID:       a.UserID,
		OverallScore: a.OverallScore,
		Strengths:    rawOrNull(a.Strengths),
		Improvements: rawOrNull(a.Improvements),
		GeneratedAt:  a.GeneratedAt,
	}
}

func rawOrNull(m json.RawMessage) json.RawMessage {
	if len(m) == 0 {
		return json.RawMessage("null")
	}
	return m
}
