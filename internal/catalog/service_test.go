package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errors"
)

func TestCourseGraph(t *testing.T) {
	svc := NewService()
	graph := svc.CourseGraph()
	require.Len(t, graph.Nodes, 12)

	var found bool
	for _, edge := range graph.Edges {
		if edge.From == "MCA201" && edge.To == "MCA302" {
			found = true
		}
	}
	require.True(t, found, "expected MCA201 -> MCA302 prerequisite edge")
}

func TestCalculateCredits(t *testing.T) {
	svc := NewService()
	report := svc.CalculateCredits([]string{"sem1", "SEM2", "sem9"})
	require.Equal(t, 11, report.Breakdown["sem1"])
	require.Equal(t, 11, report.Breakdown["sem2"])
	require.Equal(t, 0, report.Breakdown["sem9"])
	require.Equal(t, 22, report.TotalCredits)
}

func TestCheckPrerequisites(t *testing.T) {
	svc := NewService()
	report, err := svc.CheckPrerequisites("mca302")
	require.NoError(t, err)
	require.Equal(t, "MCA302", report.Course.Code)
	require.Empty(t, report.MissingPrereqs)

	_, err = svc.CheckPrerequisites("MCA999")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestSpecializationRoadmap(t *testing.T) {
	svc := NewService()
	spec, err := svc.SpecializationRoadmap("AI")
	require.NoError(t, err)
	require.Equal(t, "Artificial Intelligence", spec.Title)
	require.Contains(t, spec.Core, "MCA302")

	_, err = svc.SpecializationRoadmap("quantum")
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestExamHelperFallsBackToTheory(t *testing.T) {
	svc := NewService()
	plan := svc.ExamHelper("ml")
	require.Equal(t, []string{"Reproduce algorithms from scratch", "Explain model assumptions"}, plan.Suggestions)

	plan = svc.ExamHelper("something-else")
	require.Equal(t, []string{"Summaries per module", "Flashcards for key definitions"}, plan.Suggestions)
}

func TestMapCareerPathsScoresAndSorts(t *testing.T) {
	svc := NewService()
	matches := svc.MapCareerPaths([]string{"mca302", "MCA403"})
	require.Len(t, matches, 3)
	require.Equal(t, "data_scientist", matches[0].Slug)
	require.Equal(t, 1.0, matches[0].Coverage)
	require.Empty(t, matches[0].Missing)
	for _, m := range matches[1:] {
		require.Less(t, m.Coverage, 1.0)
	}
}
