package rag

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/index"
	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

// NeutralScore is assigned to chunks obtained via the scoreless fallback
// search. Cosine distance never exceeds 2.0, so fallback hits always rank
// after any truly scored match.
const NeutralScore = 2.0

const defaultPerVariantK = 4

// Fuser issues every query variant against the index and collects the
// scored chunks. Retrieval failure degrades to an empty result, never to
// an error.
type Fuser struct {
	index       index.Index
	perVariantK int
}

func NewFuser(idx index.Index, perVariantK int) *Fuser {
	if perVariantK <= 0 {
		perVariantK = defaultPerVariantK
	}
	return &Fuser{index: idx, perVariantK: perVariantK}
}

func (f *Fuser) Retrieve(ctx context.Context, variants []string) []model.RetrievedChunk {
	logger := logutil.GetLogger(ctx)
	var results []model.RetrievedChunk
	for _, variant := range variants {
		scored, err := f.index.SearchWithScore(ctx, variant, f.perVariantK)
		if err == nil {
			results = append(results, scored...)
			continue
		}
		logger.Warn("scored search failed, falling back to plain search",
			zap.String("variant", variant), zap.Error(err))
		plain, err := f.index.Search(ctx, variant, f.perVariantK)
		if err != nil {
			logger.Error("retrieval failed for variant", zap.String("variant", variant), zap.Error(err))
			continue
		}
		for _, chunk := range plain {
			chunk.Score = NeutralScore
			results = append(results, chunk)
		}
	}
	return results
}
