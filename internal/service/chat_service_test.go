package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/rag"
	"github.com/Govind-17/chat-with-syllbus/internal/session"
)

type countingClient struct {
	calls int
}

func (c *countingClient) Answer(ctx context.Context, question string, contextText string) model.GenerationResult {
	c.calls++
	return model.GenerationResult{Answer: "Sem1 carries 22 credits.", Confidence: 0.8}
}

type singleChunkIndex struct{}

func (singleChunkIndex) IndexChunks(ctx context.Context, chunks []model.IndexChunk) error { return nil }

func (singleChunkIndex) SearchWithScore(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	return []model.RetrievedChunk{{
		Text:     "Semester 1 carries 22 credits.",
		Score:    0.1,
		Metadata: map[string]interface{}{"source": "handbook.md"},
	}}, nil
}

func (singleChunkIndex) Search(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	return nil, nil
}

func (singleChunkIndex) Count(ctx context.Context) (int, error)                 { return 1, nil }
func (singleChunkIndex) DeleteBySource(ctx context.Context, source string) error { return nil }

func newChatService(client *countingClient) *ChatService {
	orch := rag.NewOrchestrator(rag.NewFuser(singleChunkIndex{}, 4), client, 6000)
	return NewChatService(orch, session.NewStore(0))
}

func TestChatAskRecordsHistory(t *testing.T) {
	client := &countingClient{}
	svc := newChatService(client)

	sessionID, answer := svc.Ask(context.Background(), "", "How many credits in sem1?")
	require.NotEmpty(t, sessionID)
	require.Equal(t, "Sem1 carries 22 credits.", answer.Answer)
	require.Equal(t, 1, client.calls)

	msgs, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "How many credits in sem1?", msgs[0].Question)
	require.Len(t, msgs[0].Sources, 1)
}

func TestChatAskReusesCachedAnswer(t *testing.T) {
	client := &countingClient{}
	svc := newChatService(client)

	sessionID, _ := svc.Ask(context.Background(), "", "How many credits in sem1?")
	again, _ := svc.Ask(context.Background(), sessionID, "How many credits in sem1?")
	require.Equal(t, sessionID, again)
	require.Equal(t, 1, client.calls)

	msgs, err := svc.History(sessionID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
}

func TestChatAskStartsSessionForUnknownID(t *testing.T) {
	svc := newChatService(&countingClient{})
	sessionID, _ := svc.Ask(context.Background(), "never-seen", "What about grading?")
	require.NotEqual(t, "never-seen", sessionID)

	infos := svc.Sessions()
	require.Len(t, infos, 1)
	require.Equal(t, sessionID, infos[0].SessionID)

	require.NoError(t, svc.DeleteSession(sessionID))
	require.Empty(t, svc.Sessions())
}
