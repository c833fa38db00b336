package index

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

// axisEmbedder maps known texts onto fixed unit vectors so distances are
// predictable.
type axisEmbedder struct {
	vectors map[string][]float32
}

func (e *axisEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	if v, ok := e.vectors[text]; ok {
		return v, nil
	}
	return []float32{1, 0, 0}, nil
}

func (e *axisEmbedder) ModelName() string {
	return "axis-test"
}

func TestMemoryIndex_RanksByCosineDistance(t *testing.T) {
	emb := &axisEmbedder{vectors: map[string][]float32{
		"sem1 credits": {1, 0, 0},
		"sem2 credits": {0.9, 0.1, 0},
		"unrelated":    {0, 0, 1},
		"query":        {1, 0, 0},
	}}
	idx := NewMemoryIndex(emb)
	ctx := context.Background()

	err := idx.IndexChunks(ctx, []model.IndexChunk{
		{Text: "unrelated", Source: "misc.md"},
		{Text: "sem2 credits", Source: "syllabus.md"},
		{Text: "sem1 credits", Source: "syllabus.md"},
	})
	require.NoError(t, err)

	results, err := idx.SearchWithScore(ctx, "query", 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "sem1 credits", results[0].Text)
	require.Equal(t, "sem2 credits", results[1].Text)
	require.Less(t, results[0].Score, results[1].Score)

	count, err := idx.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestMemoryIndex_DeleteBySource(t *testing.T) {
	emb := &axisEmbedder{vectors: map[string][]float32{}}
	idx := NewMemoryIndex(emb)
	ctx := context.Background()

	err := idx.IndexChunks(ctx, []model.IndexChunk{
		{Text: "a", Source: "one.md"},
		{Text: "b", Source: "two.md"},
	})
	require.NoError(t, err)

	require.NoError(t, idx.DeleteBySource(ctx, "one.md"))
	count, err := idx.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
