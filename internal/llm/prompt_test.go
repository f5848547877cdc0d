package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionsPromptInlinesRoleAndForbidsPlaceholders(t *testing.T) {
	prompt := QuestionsPrompt("Backend Developer", "Senior")

	assert.Contains(t, prompt, `"Backend Developer"`)
	assert.Contains(t, prompt, "Senior Backend Developer")
	assert.Contains(t, prompt, `"opening"`)
	assert.Contains(t, prompt, `"acknowledgment"`)
	assert.Contains(t, prompt, `"closing"`)
	assert.Contains(t, prompt, "candidate name")
	assert.Contains(t, prompt, "company name")
	assert.NotContains(t, prompt, "{{")
}

func TestFeedbackPromptNamesThreeFields(t *testing.T) {
	prompt := FeedbackPrompt("Q: Tell me about yourself. A: I build APIs.")

	assert.Contains(t, prompt, "I build APIs.")
	for _, key := range []string{"'strengths'", "'areas_for_improvement'", "'overall_score'"} {
		assert.Contains(t, prompt, key)
	}
}

func TestPromptDoesNotExpandUserPlaceholders(t *testing.T) {
	prompt := FeedbackPrompt("I typed {{transcript}} on purpose")
	assert.Contains(t, prompt, "I typed {{transcript}} on purpose")
}

func TestResumeAnalysisPromptEmbedsInferences(t *testing.T) {
	prompt := ResumeAnalysisPrompt(AnalysisInput{
		ResumeText: "Senior Data Analyst with SQL and Tableau",
		FileName:   "jane.pdf",
		FileSize:   "120.50 KB",
		UploadDate: "2024-05-01T10:00:00Z",
	})

	assert.Contains(t, prompt, "- File Name: jane.pdf")
	assert.Contains(t, prompt, "- File Size: 120.50 KB")
	assert.Contains(t, prompt, "- Inferred Role Category: Data Scientist/Analyst")
	assert.Contains(t, prompt, "- Estimated Experience Level: Senior Level")
	assert.Equal(t, 4, strings.Count(prompt, "Data Scientist/Analyst"))
	for _, section := range []string{
		"1. SKILLS ASSESSMENT",
		"2. EXPERIENCE EVALUATION",
		"3. EDUCATION & CERTIFICATIONS",
		"4. RESUME OPTIMIZATION STRATEGIES",
		"5. INTERVIEW PREPARATION",
		"6. CAREER ADVANCEMENT",
		"7. PROFESSIONAL DEVELOPMENT",
	} {
		assert.Contains(t, prompt, section)
	}
	assert.NotContains(t, prompt, "JOB DESCRIPTION PROVIDED")
}

func TestResumeAnalysisPromptUsesFileNameForRoleOnly(t *testing.T) {
	prompt := ResumeAnalysisPrompt(AnalysisInput{
		ResumeText: "Ten years building payment systems",
		FileName:   "senior_developer.pdf",
	})

	assert.Contains(t, prompt, "- Inferred Role Category: Software Engineer/Developer")
	assert.Contains(t, prompt, "- Estimated Experience Level: Mid Level")
}

func TestResumeAnalysisPromptAppendsJobDescription(t *testing.T) {
	prompt := ResumeAnalysisPrompt(AnalysisInput{
		ResumeText:     "Go engineer",
		FileName:       "cv.pdf",
		JobDescription: "Platform engineer, Kubernetes",
	})

	assert.Contains(t, prompt, "JOB DESCRIPTION PROVIDED:\nPlatform engineer, Kubernetes\n\nPlease tailor the analysis")
}

func TestResumeBuildDataSections(t *testing.T) {
	data := ResumeBuildData(BuildInput{
		PersonalInfo: map[string]string{"name": "Ada", "email": "ada@example.com"},
		Experience: []map[string]string{
			{"title": "Engineer", "company": "Acme"},
		},
		Skills: []string{"Go", "SQL"},
	})

	want := "=== PERSONAL INFORMATION ===\n" +
		"email: ada@example.com\n" +
		"name: Ada\n" +
		"\n=== WORK EXPERIENCE ===\n" +
		"Position 1:\n" +
		"  company: Acme\n" +
		"  title: Engineer\n" +
		"\n=== EDUCATION ===\n" +
		"No education provided.\n" +
		"\n=== SKILLS ===\n" +
		"- Go\n" +
		"- SQL\n" +
		"\n=== PROJECTS ===\n" +
		"No projects provided.\n"
	assert.Equal(t, want, data)
}

func TestResumeBuildDataCertificationsOnlyWhenPresent(t *testing.T) {
	with := ResumeBuildData(BuildInput{
		Certifications: []map[string]string{{"name": "CKA", "issuer": "CNCF"}},
	})
	assert.Contains(t, with, "\n=== CERTIFICATIONS ===\nCertification 1:\n  issuer: CNCF\n  name: CKA\n")

	without := ResumeBuildData(BuildInput{})
	assert.NotContains(t, without, "CERTIFICATIONS")
	assert.Contains(t, without, "No experience provided.")
	assert.Contains(t, without, "No skills provided.")
}

func TestResumeBuildPromptIsDeterministic(t *testing.T) {
	in := BuildInput{
		PersonalInfo: map[string]string{"b": "2", "a": "1", "c": "3"},
		Projects:     []map[string]string{{"z": "last", "a": "first"}},
	}
	first := ResumeBuildPrompt(in)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ResumeBuildPrompt(in))
	}
	assert.Contains(t, first, `"skills": {`)
	assert.Contains(t, first, `"certifications": [`)
}
