package rag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandIncludesOriginal(t *testing.T) {
	variants := Expand("  anything at all  ")
	require.Contains(t, variants, "anything at all")
	require.Len(t, variants, 1)
}

func TestExpandCreditVariant(t *testing.T) {
	question := "How many credits in sem1?"
	variants := Expand(question)
	require.Contains(t, variants, question)
	require.Contains(t, variants, question+" credit distribution per semester")
	// "sem" alone does not trigger the course-structure rule
	require.Len(t, variants, 2)
}

func TestExpandMultipleRules(t *testing.T) {
	question := "syllabus prerequisites for a data science career"
	variants := Expand(question)
	require.Contains(t, variants, question)
	require.Contains(t, variants, question+" prerequisites and assumed knowledge")
	require.Contains(t, variants, question+" MCA course structure subjects and modules")
	require.Contains(t, variants, question+" career pathways aligned to syllabus topics")
	require.Len(t, variants, 4)
}

func TestExpandDeduplicates(t *testing.T) {
	variants := Expand("credit credit credit")
	require.Len(t, variants, 2)
}
