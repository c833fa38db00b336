package ingest

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/filestore"
	"github.com/Govind-17/chat-with-syllbus/internal/index"
	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

type Service struct {
	store filestore.Store
	idx   index.Index
}

func NewService(store filestore.Store, idx index.Index) *Service {
	return &Service{store: store, idx: idx}
}

// Process reads a stored document, chunks it and indexes every chunk
// under the given source name. It returns the number of indexed chunks.
func (s *Service) Process(ctx context.Context, key string, source string) (int, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("key", key), zap.String("source", source))

	rc, err := s.store.Open(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("open document: %w", err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return 0, fmt.Errorf("read document: %w", err)
	}

	var pieces []string
	switch strings.ToLower(filepath.Ext(source)) {
	case ".md", ".markdown":
		pieces = ChunkMarkdown(string(raw))
	default:
		pieces = ChunkText(string(raw))
	}
	if len(pieces) == 0 {
		logger.Warn("document produced no chunks")
		return 0, nil
	}

	chunks := make([]model.IndexChunk, 0, len(pieces))
	for i, piece := range pieces {
		chunks = append(chunks, model.IndexChunk{
			Text:   piece,
			Source: source,
			Page:   i + 1,
		})
	}
	if err := s.idx.IndexChunks(ctx, chunks); err != nil {
		return 0, fmt.Errorf("index chunks: %w", err)
	}
	logger.Info("document indexed", zap.Int("chunks", len(chunks)))
	return len(chunks), nil
}
