package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

type stubIndex struct {
	scored       []model.RetrievedChunk
	scoredErr    error
	plain        []model.RetrievedChunk
	plainErr     error
	scoredCalls  int
	plainCalls   int
	lastVariants []string
}

func (s *stubIndex) IndexChunks(ctx context.Context, chunks []model.IndexChunk) error { return nil }

func (s *stubIndex) SearchWithScore(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	s.scoredCalls++
	s.lastVariants = append(s.lastVariants, query)
	return s.scored, s.scoredErr
}

func (s *stubIndex) Search(ctx context.Context, query string, k int) ([]model.RetrievedChunk, error) {
	s.plainCalls++
	return s.plain, s.plainErr
}

func (s *stubIndex) Count(ctx context.Context) (int, error)                 { return len(s.scored), nil }
func (s *stubIndex) DeleteBySource(ctx context.Context, source string) error { return nil }

func TestFuserRetrieveScored(t *testing.T) {
	idx := &stubIndex{scored: []model.RetrievedChunk{{Text: "a", Score: 0.1}}}
	fuser := NewFuser(idx, 4)

	got := fuser.Retrieve(context.Background(), []string{"q1", "q2"})
	require.Len(t, got, 2)
	require.Equal(t, 2, idx.scoredCalls)
	require.Zero(t, idx.plainCalls)
	require.Equal(t, []string{"q1", "q2"}, idx.lastVariants)
}

func TestFuserRetrieveFallbackAssignsNeutralScore(t *testing.T) {
	idx := &stubIndex{
		scoredErr: errors.New("scored search unsupported"),
		plain:     []model.RetrievedChunk{{Text: "a"}, {Text: "b"}},
	}
	fuser := NewFuser(idx, 4)

	got := fuser.Retrieve(context.Background(), []string{"q"})
	require.Len(t, got, 2)
	for _, chunk := range got {
		require.Equal(t, NeutralScore, chunk.Score)
	}
	require.Equal(t, 1, idx.plainCalls)
}

func TestFuserRetrieveTotalFailureIsEmpty(t *testing.T) {
	idx := &stubIndex{
		scoredErr: errors.New("down"),
		plainErr:  errors.New("still down"),
	}
	fuser := NewFuser(idx, 4)

	got := fuser.Retrieve(context.Background(), []string{"q1", "q2"})
	require.Empty(t, got)
	require.Equal(t, 2, idx.scoredCalls)
	require.Equal(t, 2, idx.plainCalls)
}
