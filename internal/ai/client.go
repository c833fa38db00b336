package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
)

const (
	clientMaxAttempts    = 3
	clientInitialBackoff = time.Second

	fallbackAnswer = "I'm not fully confident based on the provided context. " +
		"Please provide more details or relevant syllabus excerpts.\n\nConfidence: low"
	fallbackConfidence = 0.2
)

var transientMarkers = []string{"429", "rate", "temporarily", "deadline", "timeout"}

// Client wraps a generation backend with prompt construction, rate
// limiting, retry with exponential backoff, and a heuristic confidence
// score. Answer never returns an error: exhausting all retries yields a
// fixed low-confidence fallback instead.
type Client struct {
	gen     IGenerator
	limiter *RateLimiter
	sleep   func(time.Duration)
}

func NewClient(gen IGenerator, limiter *RateLimiter) *Client {
	return &Client{
		gen:     gen,
		limiter: limiter,
		sleep:   time.Sleep,
	}
}

// Answer builds the prompt and calls the backend, retrying transient
// failures up to three attempts with 1s/2s backoff.
func (c *Client) Answer(ctx context.Context, question string, contextText string) model.GenerationResult {
	logger := logutil.GetLogger(ctx)
	prompt := buildPrompt(question, contextText)

	delay := clientInitialBackoff
	for attempt := 1; attempt <= clientMaxAttempts; attempt++ {
		c.limiter.Acquire(ctx)
		text, err := c.gen.Generate(ctx, prompt)
		if err == nil {
			label, score := estimateConfidence(text, contextText)
			formatted := strings.TrimSpace(text)
			if !strings.Contains(formatted, "Confidence:") {
				formatted += "\n\nConfidence: " + label
			}
			return model.GenerationResult{Answer: formatted, Confidence: score}
		}
		if !isTransient(err) {
			logger.Error("generation call failed (non-retryable)", zap.Error(err))
			break
		}
		logger.Warn("generation call failed, will retry",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", clientMaxAttempts),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)
		if attempt < clientMaxAttempts {
			c.sleep(delay)
			delay *= 2
		}
	}

	logger.Error("generation failed after retries, returning fallback answer")
	return model.GenerationResult{Answer: fallbackAnswer, Confidence: fallbackConfidence}
}

func buildPrompt(question string, contextText string) string {
	guidelines := "You are an academic assistant for the MCA (Master of Computer Applications) syllabus.\n" +
		"Answer concisely and accurately using ONLY the provided context.\n" +
		"If the context is insufficient, say you are not sure and suggest where to look.\n" +
		"\n" +
		"Specialized guidance you support:\n" +
		"- Course structure queries: semesters, subjects, modules, credit distribution.\n" +
		"- Prerequisite questions: assumed knowledge, required prior courses, skills.\n" +
		"- Grading system explanations: internal assessment, end-semester exams, weightage.\n" +
		"- Career guidance: roles and pathways aligned with syllabus topics.\n" +
		"\n" +
		"Formatting:\n" +
		"- Provide a direct answer first.\n" +
		"- If relevant, add a short bullet list of key points.\n" +
		"- End with a one-line confidence score: Confidence: <low|medium|high>.\n"
	return fmt.Sprintf("%s\nContext:\n%s\n\nQuestion: %s\nAnswer:", guidelines, contextText, question)
}

func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// estimateConfidence is a heuristic used because the backend supplies no
// score of its own: answer length normalized against a 600-char cap plus
// a flat bonus when context was available.
func estimateConfidence(answerText string, contextText string) (string, float64) {
	if strings.TrimSpace(answerText) == "" {
		return "low", 0.2
	}
	lenScore := float64(len(answerText)) / 600.0
	if lenScore > 1.0 {
		lenScore = 1.0
	}
	contextFactor := 0.0
	if strings.TrimSpace(contextText) != "" {
		contextFactor = 0.5
	}
	score := 0.3 + 0.5*lenScore + contextFactor
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}
	switch {
	case score > 0.75:
		return "high", score
	case score > 0.5:
		return "medium", score
	default:
		return "low", score
	}
}
