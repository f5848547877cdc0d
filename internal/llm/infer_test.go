package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferRole(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Senior Data Analyst at Acme", want: "Data Scientist/Analyst"},
		{text: "jane_doe_resume.pdf Product Designer", want: "UX/UI Designer"},
		{text: "Backend Developer", want: "Software Engineer/Developer"},
		{text: "Data Engineer", want: "Software Engineer/Developer"},
		{text: "DEVOPS specialist", want: "DevOps/SRE Engineer"},
		{text: "Product Manager, payments", want: "Product Manager"},
		{text: "Growth marketing lead", want: "Marketing Professional"},
		{text: "Account executive, sales", want: "Sales Professional"},
		{text: "Chef de partie", want: "Professional"},
		{text: "", want: "Professional"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferRole(tt.text), "text %q", tt.text)
	}
}

func TestInferSeniority(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Team Lead with 8 years", want: "Senior Level"},
		{text: "PRINCIPAL architect", want: "Senior Level"},
		{text: "Summer intern", want: "Entry Level"},
		{text: "Junior developer", want: "Entry Level"},
		{text: "I have worked on experience and worked again with experience", want: "Mid Level"},
		{text: "Accountant", want: "Mid Level"},
		{text: "", want: "Mid Level"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferSeniority(tt.text), "text %q", tt.text)
	}
}
