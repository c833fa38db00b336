package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	emptyQuestionAnswer = "Please provide a question related to the MCA syllabus."

	noContextAnswer      = "I don't know based on the available syllabus context. Please provide more details or upload relevant documents."
	noContextExplanation = "No relevant syllabus passages were retrieved."
	noContextFollowUp    = "Upload a syllabus PDF for the semester you're interested in."
)

const formattingInstructions = "Formatting instructions:\n" +
	"- Start with a concise answer paragraph.\n" +
	"- Use bullet lists for modules/credits/prereqs.\n" +
	"- Mention semesters explicitly if available.\n" +
	"- Provide a short concluding recommendation."

// AnswerClient produces a grounded answer for a question given packed
// syllabus context. *ai.Client is the production implementation.
type AnswerClient interface {
	Answer(ctx context.Context, question string, contextText string) model.GenerationResult
}

// Orchestrator runs the full question pipeline: analyze, expand,
// retrieve, pack, generate, post-format.
type Orchestrator struct {
	fuser    *Fuser
	client   AnswerClient
	maxChars int
}

func NewOrchestrator(fuser *Fuser, client AnswerClient, maxChars int) *Orchestrator {
	if maxChars <= 0 {
		maxChars = DefaultMaxContextChars
	}
	return &Orchestrator{fuser: fuser, client: client, maxChars: maxChars}
}

func (o *Orchestrator) Ask(ctx context.Context, question string) model.Answer {
	question = strings.TrimSpace(question)
	if question == "" {
		return model.Answer{
			Answer:     emptyQuestionAnswer,
			Sources:    []model.SourceRef{},
			Confidence: 0.0,
		}
	}

	start := time.Now()
	analysis := Analyze(question)
	variants := Expand(question)

	chunks := o.fuser.Retrieve(ctx, variants)
	retrieveDone := time.Now()

	bundle := Pack(chunks, analysis, o.maxChars)
	if bundle.Text == "" {
		logutil.GetLogger(ctx).Info("no usable syllabus context", zap.String("question", question),
			zap.Int("retrieved", len(chunks)))
		return model.Answer{
			Answer:                noContextAnswer,
			Sources:               []model.SourceRef{},
			Confidence:            0.2,
			ConfidenceExplanation: noContextExplanation,
			FollowUp:              noContextFollowUp,
		}
	}

	contextText := bundle.Text + "\n\n" + formattingInstructions
	result := o.client.Answer(ctx, question, contextText)
	generateDone := time.Now()

	logutil.GetLogger(ctx).Info("answer pipeline finished",
		zap.String("focus", string(analysis.Focus)),
		zap.Strings("semesters", analysis.Semesters),
		zap.Int("variants", len(variants)),
		zap.Int("retrieved", len(chunks)),
		zap.Int("packed", len(bundle.Sources)),
		zap.Duration("retrieve_cost", retrieveDone.Sub(start)),
		zap.Duration("generate_cost", generateDone.Sub(retrieveDone)),
	)

	return model.Answer{
		Answer:                reformatAsBullets(result.Answer),
		Sources:               bundle.Sources,
		Confidence:            result.Confidence,
		ConfidenceExplanation: explainConfidence(result.Confidence, bundle.Sources),
		FollowUp:              suggestFollowUp(analysis.Focus, len(bundle.Sources)),
	}
}

// reformatAsBullets rewrites answers the model crammed into one
// semicolon-separated line as a lead sentence followed by bulleted
// clauses. It leaves answers that already use bullets untouched.
func reformatAsBullets(answer string) string {
	if strings.Contains(answer, "- ") {
		return answer
	}
	parts := strings.Split(answer, ";")
	if len(parts) < 3 {
		return answer
	}
	var lines []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(lines) == 0 {
			lines = append(lines, part)
			continue
		}
		lines = append(lines, "- "+part)
	}
	return strings.Join(lines, "\n")
}

func suggestFollowUp(focus model.Focus, sourceCount int) string {
	switch focus {
	case model.FocusCredits:
		return "Would you like a semester-by-semester credit comparison?"
	case model.FocusPrerequisite:
		return "Should I list bridge courses to meet the prerequisites?"
	case model.FocusCareer:
		return "Do you want recommendations for internships aligned with these courses?"
	}
	if sourceCount > 0 {
		return "Need more detail from any of the cited documents?"
	}
	return "Would you like to explore related MCA modules?"
}

func explainConfidence(confidence float64, sources []model.SourceRef) string {
	docs := map[string]struct{}{}
	for _, src := range sources {
		docs[src.Name] = struct{}{}
	}
	switch {
	case confidence > 0.75:
		return fmt.Sprintf("High confidence based on %d context blocks across %d sources.", len(sources), len(docs))
	case confidence > 0.5:
		return fmt.Sprintf("Moderate confidence: %d context blocks from %d sources.", len(sources), len(docs))
	default:
		return fmt.Sprintf("Low confidence because only %d context blocks were relevant.", len(sources))
	}
}
