// Package index abstracts the vector index the retrieval pipeline runs
// against. Search results carry distance-like scores: lower is better.
package index

import (
	"context"
	"fmt"
	"strings"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

type Index interface {
	// IndexChunks embeds and stores document chunks.
	IndexChunks(ctx context.Context, chunks []model.IndexChunk) error

	// SearchWithScore returns up to k chunks ranked by distance.
	SearchWithScore(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error)

	// Search is the scoreless fallback; returned chunks carry no score.
	Search(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error)

	// Count reports the raw number of stored vectors, for diagnostics.
	Count(ctx context.Context) (int, error)

	// DeleteBySource removes every chunk ingested from the named source.
	DeleteBySource(ctx context.Context, source string) error
}

type Factory func(args interface{}) (Index, error)

var registry = map[string]Factory{}

func Register(name string, factory Factory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	registry[key] = factory
}

func New(name string, args interface{}) (Index, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("index.type is required")
	}
	factory := registry[key]
	if factory == nil {
		return nil, fmt.Errorf("unsupported index type: %s", name)
	}
	return factory(args)
}
