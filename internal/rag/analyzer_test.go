package rag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

func TestAnalyzeSemesters(t *testing.T) {
	tests := []struct {
		question string
		want     []string
	}{
		{"What are the subjects in sem1?", []string{"sem1"}},
		{"Compare Semester 2 and semester 3", []string{"sem2", "sem3"}},
		{"sem 4 electives and sem4 credits", []string{"sem4"}},
		{"sem9 is not a thing", nil},
		{"general MCA question", nil},
	}
	for _, tc := range tests {
		got := Analyze(tc.question)
		require.Equal(t, tc.want, got.Semesters, "question: %s", tc.question)
	}
}

func TestAnalyzeFocus(t *testing.T) {
	tests := []struct {
		question string
		want     model.Focus
	}{
		{"How many credits does sem1 carry?", model.FocusCredits},
		{"What are the prerequisites for machine learning?", model.FocusPrerequisite},
		{"Explain the grading and assessment scheme", model.FocusGrading},
		{"Which career roles fit the syllabus?", model.FocusCareer},
		{"Tell me about the capstone project", model.FocusProject},
		{"What is covered in the database course?", model.FocusGeneral},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Analyze(tc.question).Focus, "question: %s", tc.question)
	}
}

func TestAnalyzeFocusPriority(t *testing.T) {
	// credits outranks everything else in the table
	got := Analyze("credit requirements and exam prerequisites for the project")
	require.Equal(t, model.FocusCredits, got.Focus)
}
