package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/rag"
	"github.com/Govind-17/chat-with-syllbus/internal/session"
)

const (
	answerCacheSize = 256
	answerCacheTTL  = 10 * time.Minute
)

// ChatService answers questions, records the exchange in the session
// store, and short-circuits repeated questions through an answer cache.
type ChatService struct {
	orch     *rag.Orchestrator
	sessions *session.Store
	cache    *expirable.LRU[string, model.Answer]
}

func NewChatService(orch *rag.Orchestrator, sessions *session.Store) *ChatService {
	return &ChatService{
		orch:     orch,
		sessions: sessions,
		cache:    expirable.NewLRU[string, model.Answer](answerCacheSize, nil, answerCacheTTL),
	}
}

// Ask answers a question within a session. A missing or unknown session
// id starts a new session; the effective id is returned with the answer.
func (s *ChatService) Ask(ctx context.Context, sessionID string, question string) (string, model.Answer) {
	s.sessions.Prune()
	sessionID = s.sessions.Ensure(sessionID)

	key := questionKey(question)
	answer, cached := s.cache.Get(key)
	if cached {
		logutil.GetLogger(ctx).Debug("answer cache hit", zap.String("session_id", sessionID))
	} else {
		answer = s.orch.Ask(ctx, question)
		s.cache.Add(key, answer)
	}

	if err := s.sessions.Append(sessionID, model.Message{
		Question:              question,
		Answer:                answer.Answer,
		Sources:               answer.Sources,
		Confidence:            answer.Confidence,
		ConfidenceExplanation: answer.ConfidenceExplanation,
		FollowUp:              answer.FollowUp,
	}); err != nil {
		logutil.GetLogger(ctx).Warn("failed to record message", zap.String("session_id", sessionID), zap.Error(err))
	}
	return sessionID, answer
}

func (s *ChatService) History(sessionID string) ([]model.Message, error) {
	return s.sessions.Get(sessionID)
}

func (s *ChatService) Sessions() []model.SessionInfo {
	return s.sessions.List()
}

func (s *ChatService) DeleteSession(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

func questionKey(question string) string {
	sum := sha256.Sum256([]byte(question))
	return hex.EncodeToString(sum[:])
}
