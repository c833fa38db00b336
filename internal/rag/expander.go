package rag

import "strings"

type expansionRule struct {
	triggers []string
	suffix   string
}

var expansionRules = []expansionRule{
	{[]string{"credit"}, " credit distribution per semester"},
	{[]string{"prereq", "prerequisite", "eligibility"}, " prerequisites and assumed knowledge"},
	{[]string{"grade", "assessment", "exam"}, " grading system internal assessment and end-semester weightage"},
	{[]string{"syllabus", "course", "semester"}, " MCA course structure subjects and modules"},
	{[]string{"career", "job", "role"}, " career pathways aligned to syllabus topics"},
}

// Expand produces query variants biased toward the question's intent. The
// original question is always included; duplicates are collapsed by exact
// string equality. Order of the result is not guaranteed.
func Expand(question string) []string {
	q := strings.TrimSpace(question)
	variants := map[string]struct{}{q: {}}
	lower := strings.ToLower(q)
	for _, rule := range expansionRules {
		if containsAny(lower, rule.triggers) {
			variants[q+rule.suffix] = struct{}{}
		}
	}
	out := make([]string, 0, len(variants))
	for v := range variants {
		out = append(out, v)
	}
	return out
}
