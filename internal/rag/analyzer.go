// Package rag implements the retrieval-augmentation pipeline: question
// analysis, query expansion, retrieval fusion, context packing, and the
// answer orchestrator on top of them.
package rag

import (
	"regexp"
	"strings"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

var semesterPattern = regexp.MustCompile(`(?i)sem(?:ester)?\s*([1-8])`)

// focusTable is an ordered priority list: the first label whose keyword
// set matches wins. Do not reorder.
var focusTable = []struct {
	focus    model.Focus
	keywords []string
}{
	{model.FocusCredits, []string{"credit", "ects"}},
	{model.FocusPrerequisite, []string{"prerequisite", "prereq", "eligibility"}},
	{model.FocusGrading, []string{"grade", "grading", "assessment", "exam"}},
	{model.FocusCareer, []string{"career", "job", "role"}},
	{model.FocusProject, []string{"project", "capstone"}},
}

// Analyze extracts semester filters and a topical focus from a raw
// question. It is a pure function of the text and never fails.
func Analyze(question string) model.QueryAnalysis {
	lower := strings.ToLower(question)

	var semesters []string
	seen := map[string]struct{}{}
	for _, match := range semesterPattern.FindAllStringSubmatch(lower, -1) {
		token := "sem" + match[1]
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		semesters = append(semesters, token)
	}

	focus := model.FocusGeneral
	for _, entry := range focusTable {
		if containsAny(lower, entry.keywords) {
			focus = entry.focus
			break
		}
	}
	return model.QueryAnalysis{Semesters: semesters, Focus: focus}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
