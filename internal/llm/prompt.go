package llm

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

var (
	//go:embed prompts/questions.txt
	questionsTemplate string
	//go:embed prompts/feedback.txt
	feedbackTemplate string
	//go:embed prompts/resume_analysis.txt
	resumeAnalysisTemplate string
	//go:embed prompts/resume_build.txt
	resumeBuildTemplate string
)

// AnalysisInput carries the resume fields rendered into the analysis prompt.
type AnalysisInput struct {
	ResumeText     string
	FileName       string
	FileSize       string
	UploadDate     string
	JobDescription string
}

// BuildInput is the raw resume data a user submits to the builder.
type BuildInput struct {
	Title          string              `json:"title"`
	PersonalInfo   map[string]string   `json:"personalInfo"`
	Experience     []map[string]string `json:"experience"`
	Education      []map[string]string `json:"education"`
	Skills         []string            `json:"skills"`
	Projects       []map[string]string `json:"projects"`
	Certifications []map[string]string `json:"certifications"`
}

// QuestionsPrompt renders the conversational interview script prompt.
func QuestionsPrompt(role, experienceLevel string) string {
	return render(questionsTemplate,
		"{{role}}", role,
		"{{experience_level}}", experienceLevel,
	)
}

// FeedbackPrompt renders the transcript feedback prompt.
func FeedbackPrompt(transcript string) string {
	return render(feedbackTemplate, "{{transcript}}", transcript)
}

// ResumeAnalysisPrompt renders the seven-section resume analysis prompt.
// Role is inferred from the file name and resume text, seniority from the
// resume text alone.
func ResumeAnalysisPrompt(in AnalysisInput) string {
	role := InferRole(in.FileName + " " + in.ResumeText)
	level := InferSeniority(in.ResumeText)

	jd := ""
	if in.JobDescription != "" {
		jd = fmt.Sprintf("JOB DESCRIPTION PROVIDED:\n%s\n\nPlease tailor the analysis to this specific job opportunity, highlighting alignment and gaps.", in.JobDescription)
	}

	return render(resumeAnalysisTemplate,
		"{{file_name}}", in.FileName,
		"{{file_size}}", in.FileSize,
		"{{upload_date}}", in.UploadDate,
		"{{role}}", role,
		"{{level}}", level,
		"{{resume_text}}", in.ResumeText,
		"{{job_description}}", jd,
	)
}

// ResumeBuildPrompt renders the resume enhancement prompt.
func ResumeBuildPrompt(in BuildInput) string {
	return render(resumeBuildTemplate, "{{resume_data}}", ResumeBuildData(in))
}

// ResumeBuildData renders the labeled raw-data block of the build prompt.
// Map entries are written in key order.
func ResumeBuildData(in BuildInput) string {
	var b strings.Builder

	b.WriteString("=== PERSONAL INFORMATION ===\n")
	writePairs(&b, "", in.PersonalInfo)

	b.WriteString("\n=== WORK EXPERIENCE ===\n")
	writeEntries(&b, "Position", "No experience provided.", in.Experience)

	b.WriteString("\n=== EDUCATION ===\n")
	writeEntries(&b, "Education", "No education provided.", in.Education)

	b.WriteString("\n=== SKILLS ===\n")
	if len(in.Skills) == 0 {
		b.WriteString("No skills provided.\n")
	}
	for _, skill := range in.Skills {
		fmt.Fprintf(&b, "- %s\n", skill)
	}

	b.WriteString("\n=== PROJECTS ===\n")
	writeEntries(&b, "Project", "No projects provided.", in.Projects)

	if len(in.Certifications) > 0 {
		b.WriteString("\n=== CERTIFICATIONS ===\n")
		writeEntries(&b, "Certification", "", in.Certifications)
	}

	return b.String()
}

func writeEntries(b *strings.Builder, label, empty string, entries []map[string]string) {
	if len(entries) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(b, "%s %d:\n", label, i+1)
		writePairs(b, "  ", entry)
	}
}

func writePairs(b *strings.Builder, indent string, pairs map[string]string) {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s%s: %s\n", indent, k, pairs[k])
	}
}

// render substitutes placeholders in a single pass so that user text
// containing placeholder syntax is left as-is.
func render(template string, oldnew ...string) string {
	return strings.TrimSpace(strings.NewReplacer(oldnew...).Replace(template))
}
