package model

type Focus string

const (
	FocusCredits      Focus = "credits"
	FocusPrerequisite Focus = "prerequisite"
	FocusGrading      Focus = "grading"
	FocusCareer       Focus = "career"
	FocusProject      Focus = "project"
	FocusGeneral      Focus = "general"
)

// QueryAnalysis is the structured intent extracted from a raw question.
// Semesters holds normalized tokens of the form "sem<N>".
type QueryAnalysis struct {
	Semesters []string
	Focus     Focus
}
