package llm

import "strings"

type roleRule struct {
	role    string
	matches func(lower string) bool
}

var roleRules = []roleRule{
	{"Software Engineer/Developer", anyOf("software", "developer", "engineer")},
	{"Data Scientist/Analyst", func(s string) bool {
		return strings.Contains(s, "data") && anyOf("scientist", "analyst")(s)
	}},
	{"DevOps/SRE Engineer", anyOf("devops", "sre")},
	{"Product Manager", func(s string) bool {
		return strings.Contains(s, "product") && strings.Contains(s, "manager")
	}},
	{"UX/UI Designer", anyOf("designer", "ux", "ui")},
	{"Marketing Professional", anyOf("marketing")},
	{"Sales Professional", anyOf("sales")},
}

// InferRole maps free text to a role category. Rules are checked in order
// with case-insensitive substring tests; the first match wins.
func InferRole(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range roleRules {
		if rule.matches(lower) {
			return rule.role
		}
	}
	return "Professional"
}

// InferSeniority maps free text to a seniority level.
func InferSeniority(text string) string {
	lower := strings.ToLower(text)
	switch {
	case anyOf("senior", "lead", "principal")(lower):
		return "Senior Level"
	case anyOf("junior", "intern", "entry")(lower):
		return "Entry Level"
	default:
		return "Mid Level"
	}
}

func anyOf(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}
