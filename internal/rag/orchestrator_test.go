package rag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

type stubClient struct {
	calls  int
	last   string
	result model.GenerationResult
}

func (s *stubClient) Answer(ctx context.Context, question string, contextText string) model.GenerationResult {
	s.calls++
	s.last = contextText
	return s.result
}

func TestOrchestratorEmptyQuestion(t *testing.T) {
	idx := &stubIndex{}
	client := &stubClient{}
	orch := NewOrchestrator(NewFuser(idx, 4), client, 6000)

	got := orch.Ask(context.Background(), "   ")
	require.Equal(t, emptyQuestionAnswer, got.Answer)
	require.Zero(t, got.Confidence)
	require.Empty(t, got.Sources)
	require.Zero(t, client.calls)
	require.Zero(t, idx.scoredCalls)
}

func TestOrchestratorInsufficientContext(t *testing.T) {
	idx := &stubIndex{} // index returns nothing
	client := &stubClient{}
	orch := NewOrchestrator(NewFuser(idx, 4), client, 6000)

	got := orch.Ask(context.Background(), "What is the grading policy?")
	require.Equal(t, noContextAnswer, got.Answer)
	require.Equal(t, 0.2, got.Confidence)
	require.Equal(t, noContextExplanation, got.ConfidenceExplanation)
	require.Equal(t, noContextFollowUp, got.FollowUp)
	require.Zero(t, client.calls)
}

func TestOrchestratorEndToEnd(t *testing.T) {
	idx := &stubIndex{scored: []model.RetrievedChunk{
		chunk("Sem1 carries 22 credits total.", "sem1.md", 2, 0.1),
		chunk("Sem2 carries 24 credits total.", "sem2.md", 2, 0.2),
	}}
	client := &stubClient{result: model.GenerationResult{
		Answer:     "Sem1 has 22 credits; Sem2 has 24 credits; the total is 46 credits",
		Confidence: 0.8,
	}}
	orch := NewOrchestrator(NewFuser(idx, 4), client, 6000)

	got := orch.Ask(context.Background(), "What are the credits for sem1 and sem2?")

	require.Equal(t, 1, client.calls)
	require.Contains(t, client.last, "[1] Source: sem1.md")
	require.Contains(t, client.last, "Formatting instructions:")

	// semicolon-packed answer keeps its lead clause, the rest become bullets
	require.Equal(t, "Sem1 has 22 credits\n- Sem2 has 24 credits\n- the total is 46 credits", got.Answer)
	require.Len(t, got.Sources, 2)
	require.Equal(t, 0.8, got.Confidence)
	require.Equal(t, "High confidence based on 2 context blocks across 2 sources.", got.ConfidenceExplanation)
	require.Equal(t, "Would you like a semester-by-semester credit comparison?", got.FollowUp)
}

func TestOrchestratorKeepsBulletedAnswers(t *testing.T) {
	idx := &stubIndex{scored: []model.RetrievedChunk{
		chunk("Career roles include data engineer.", "careers.md", 1, 0.3),
	}}
	answer := "Matching roles:\n- data engineer; backend; ML\n- analyst"
	client := &stubClient{result: model.GenerationResult{Answer: answer, Confidence: 0.6}}
	orch := NewOrchestrator(NewFuser(idx, 4), client, 6000)

	got := orch.Ask(context.Background(), "Which job roles fit?")
	require.Equal(t, answer, got.Answer)
	require.Equal(t, "Moderate confidence: 1 context blocks from 1 sources.", got.ConfidenceExplanation)
	require.Equal(t, "Do you want recommendations for internships aligned with these courses?", got.FollowUp)
}

func TestOrchestratorFollowUpCitesSources(t *testing.T) {
	idx := &stubIndex{scored: []model.RetrievedChunk{
		chunk("Internal assessment carries 40% weightage, end-semester exams 60%.", "grading.md", 1, 0.2),
	}}
	client := &stubClient{result: model.GenerationResult{Answer: "Internal assessment is weighted at 40%.", Confidence: 0.6}}
	orch := NewOrchestrator(NewFuser(idx, 4), client, 6000)

	// grading focus has no dedicated follow-up; with cited evidence the
	// prompt must point back at the documents
	got := orch.Ask(context.Background(), "Explain the grading weightage")
	require.Len(t, got.Sources, 1)
	require.Equal(t, "Need more detail from any of the cited documents?", got.FollowUp)
}

func TestReformatAsBullets(t *testing.T) {
	in := "Sem1 has 22 credits; Sem2 has 24 credits; the total is 46 credits"
	want := "Sem1 has 22 credits\n- Sem2 has 24 credits\n- the total is 46 credits"
	require.Equal(t, want, reformatAsBullets(in))

	// fewer than three clauses and pre-bulleted answers pass through
	require.Equal(t, "a; b", reformatAsBullets("a; b"))
	require.Equal(t, "lead\n- item", reformatAsBullets("lead\n- item"))
}
