package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/index"
)

// IndexStatsJob periodically logs the vector count so index growth shows
// up in the logs without a metrics stack.
type IndexStatsJob struct {
	idx index.Index
}

func NewIndexStatsJob(idx index.Index) *IndexStatsJob {
	return &IndexStatsJob{idx: idx}
}

func (j *IndexStatsJob) Name() string {
	return "index_stats"
}

func (j *IndexStatsJob) Run(ctx context.Context) error {
	if j.idx == nil {
		return nil
	}
	count, err := j.idx.Count(ctx)
	if err != nil {
		return err
	}
	logutil.GetLogger(ctx).Info("index stats", zap.Int("vectors", count))
	return nil
}
