package rag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

func chunk(text, source string, page int, score float64) model.RetrievedChunk {
	return model.RetrievedChunk{
		Text:  text,
		Score: score,
		Metadata: map[string]interface{}{
			"source": source,
			"page":   page,
		},
	}
}

func TestPackEmptyInput(t *testing.T) {
	bundle := Pack(nil, model.QueryAnalysis{Focus: model.FocusGeneral}, 6000)
	require.Empty(t, bundle.Text)
	require.Empty(t, bundle.Sources)
}

func TestPackDeduplicatesKeepingBestScore(t *testing.T) {
	chunks := []model.RetrievedChunk{
		chunk("Sem1 carries 22 credits.", "handbook.md", 3, 0.4),
		chunk("Sem1 carries 22 credits.", "handbook.md", 3, 0.1),
		chunk("Sem2 carries 24 credits.", "handbook.md", 4, 0.2),
	}
	bundle := Pack(chunks, model.QueryAnalysis{Focus: model.FocusCredits}, 6000)
	require.Len(t, bundle.Sources, 2)
	// lowest duplicate score wins and therefore ranks first
	require.Equal(t, 0.1, bundle.Sources[0].Score)
	require.Equal(t, 0.2, bundle.Sources[1].Score)
}

func TestPackOrdersAscendingAndNumbersInPackedOrder(t *testing.T) {
	chunks := []model.RetrievedChunk{
		chunk("third", "c.md", 1, 0.9),
		chunk("first", "a.md", 1, 0.1),
		chunk("second", "b.md", 1, 0.5),
	}
	bundle := Pack(chunks, model.QueryAnalysis{Focus: model.FocusGeneral}, 6000)
	require.Len(t, bundle.Sources, 3)
	for i, name := range []string{"a.md", "b.md", "c.md"} {
		require.Equal(t, i+1, bundle.Sources[i].Index)
		require.Equal(t, name, bundle.Sources[i].Name)
	}
	require.Less(t, strings.Index(bundle.Text, "[1] Source: a.md"), strings.Index(bundle.Text, "[2] Source: b.md"))
}

func TestPackRespectsBudget(t *testing.T) {
	big := strings.Repeat("x", 400)
	var chunks []model.RetrievedChunk
	for i := 0; i < 40; i++ {
		chunks = append(chunks, model.RetrievedChunk{
			Text:     big + strings.Repeat("y", i+1),
			Score:    float64(i) * 0.01,
			Metadata: map[string]interface{}{"source": "big.md"},
		})
	}
	bundle := Pack(chunks, model.QueryAnalysis{Focus: model.FocusGeneral}, 2000)
	require.NotEmpty(t, bundle.Sources)
	require.LessOrEqual(t, len(bundle.Text), 2000)
	require.Less(t, len(bundle.Sources), 40)
}

func TestPackSemesterFilter(t *testing.T) {
	chunks := []model.RetrievedChunk{
		chunk("Semester 1 covers programming fundamentals.", "s1.md", 1, 0.3),
		chunk("Advanced electives list.", "electives.md", 1, 0.1),
	}
	bundle := Pack(chunks, model.QueryAnalysis{Semesters: []string{"sem1"}, Focus: model.FocusGeneral}, 6000)
	require.Len(t, bundle.Sources, 1)
	require.Equal(t, "s1.md", bundle.Sources[0].Name)
}

func TestPackSemesterFilterFallsBackWhenNothingMatches(t *testing.T) {
	chunks := []model.RetrievedChunk{
		chunk("General grading policy without numbers.", "policy.md", 2, 0.3),
	}
	bundle := Pack(chunks, model.QueryAnalysis{Semesters: []string{"sem7"}, Focus: model.FocusGrading}, 6000)
	require.Len(t, bundle.Sources, 1)
	require.Equal(t, "policy.md", bundle.Sources[0].Name)
}

func TestPackBundleShape(t *testing.T) {
	chunks := []model.RetrievedChunk{
		chunk("Sem1: 22 credits.", "handbook.md", 3, 0.12),
	}
	analysis := model.QueryAnalysis{Semesters: []string{"sem1"}, Focus: model.FocusCredits}
	bundle := Pack(chunks, analysis, 6000)

	require.Contains(t, bundle.Text, "Guidance: ")
	require.Contains(t, bundle.Text, "Focus: credits | Semesters: sem1")
	require.Contains(t, bundle.Text, "[1] Source: handbook.md, page 3 (score: 0.1200)")
	require.Contains(t, bundle.Text, "Document coverage:\n- handbook.md: 1 context blocks")

	require.Len(t, bundle.Sources, 1)
	src := bundle.Sources[0]
	require.Equal(t, 1, src.Index)
	require.NotNil(t, src.Page)
	require.Equal(t, 3, *src.Page)
}

func TestPackMissingMetadataDefaults(t *testing.T) {
	chunks := []model.RetrievedChunk{{Text: "untagged chunk", Score: 0.2}}
	bundle := Pack(chunks, model.QueryAnalysis{Focus: model.FocusGeneral}, 6000)
	require.Len(t, bundle.Sources, 1)
	require.Equal(t, "document", bundle.Sources[0].Name)
	require.Nil(t, bundle.Sources[0].Page)
}
