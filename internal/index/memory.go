package index

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/Govind-17/chat-with-syllbus/internal/ai"
	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

type MemoryArgs struct {
	Embedder ai.IEmbedder
}

// MemoryIndex keeps vectors in process memory. It serves single-node
// deployments without Postgres, and deterministic tests.
type MemoryIndex struct {
	mu       sync.RWMutex
	embedder ai.IEmbedder
	items    []memoryItem
}

type memoryItem struct {
	chunk     model.IndexChunk
	embedding []float32
}

func init() {
	Register("memory", createMemoryIndex)
}

func createMemoryIndex(args interface{}) (Index, error) {
	memArgs, ok := args.(MemoryArgs)
	if !ok || memArgs.Embedder == nil {
		return nil, fmt.Errorf("memory index requires an embedder")
	}
	return NewMemoryIndex(memArgs.Embedder), nil
}

func NewMemoryIndex(embedder ai.IEmbedder) *MemoryIndex {
	return &MemoryIndex{embedder: embedder}
}

func (x *MemoryIndex) IndexChunks(ctx context.Context, chunks []model.IndexChunk) error {
	for _, chunk := range chunks {
		emb, err := x.embedder.Embed(ctx, chunk.Text, taskTypeDocument)
		if err != nil {
			return fmt.Errorf("embed chunk: %w", err)
		}
		x.mu.Lock()
		x.items = append(x.items, memoryItem{chunk: chunk, embedding: emb})
		x.mu.Unlock()
	}
	return nil
}

func (x *MemoryIndex) SearchWithScore(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	emb, err := x.embedder.Embed(ctx, query, taskTypeQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	results := make([]model.RetrievedChunk, 0, len(x.items))
	for _, item := range x.items {
		// cosine distance, so lower is better, same as pgvector's <=>
		score := 1.0 - cosineSimilarity(emb, item.embedding)
		results = append(results, model.RetrievedChunk{
			Score:    score,
			Text:     item.chunk.Text,
			Metadata: chunkMeta(item.chunk),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	if k > 0 && len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func (x *MemoryIndex) Search(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	scored, err := x.SearchWithScore(ctx, query, k)
	if err != nil {
		return nil, err
	}
	for i := range scored {
		scored[i].Score = 0
	}
	return scored, nil
}

func (x *MemoryIndex) Count(ctx context.Context) (int, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.items), nil
}

func (x *MemoryIndex) DeleteBySource(ctx context.Context, source string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	kept := x.items[:0]
	for _, item := range x.items {
		if item.chunk.Source != source {
			kept = append(kept, item)
		}
	}
	x.items = kept
	return nil
}

func chunkMeta(chunk model.IndexChunk) map[string]interface{} {
	meta := map[string]interface{}{"source": chunk.Source}
	if chunk.Page > 0 {
		meta["page"] = chunk.Page
	}
	return meta
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
