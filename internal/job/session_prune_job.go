// Package job holds the scheduled maintenance jobs.
package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/session"
)

type SessionPruneJob struct {
	sessions *session.Store
}

func NewSessionPruneJob(sessions *session.Store) *SessionPruneJob {
	return &SessionPruneJob{sessions: sessions}
}

func (j *SessionPruneJob) Name() string {
	return "session_prune"
}

func (j *SessionPruneJob) Run(ctx context.Context) error {
	if j.sessions == nil {
		return nil
	}
	removed := j.sessions.Prune()
	if removed > 0 {
		logutil.GetLogger(ctx).Info("expired sessions pruned", zap.Int("removed", removed))
	}
	return nil
}
