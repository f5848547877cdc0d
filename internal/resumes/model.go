package resumes

import (
	"encoding/json"
	"time"
)

// SectionKeys are the analysis sections copied from the model output into
// Strengths, in display order.
var SectionKeys = []string{
	"skillsAssessment",
	"experienceEvaluation",
	"educationCertifications",
	"resumeOptimization",
	"interviewPreparation",
	"careerAdvancement",
	"professionalDevelopment",
}

// Analysis is a stored resume analysis. Strengths holds the structured
// sections and Improvements a short summary kept for older clients.
type Analysis struct {
	ID           string
	ResumeID     string
	UserID       string
	OverallScore *int
	Strengths    json.RawMessage
	Improvements json.RawMessage
	GeneratedAt  time.Time
}

var improvementsSummary = map[string]string{
	"note":     "See strengths field for full structured analysis",
	"sections": "Skills, Experience, Education, Resume Optimization, Interview Prep, Career Advancement, Professional Development",
}
