package conflict

import (
	"context"
	"fmt"
	"strings"

	"github.com/specsmith/specsmith/pkg/llm"
)

// SemanticVerdict is the structured output of one contradiction check.
type SemanticVerdict struct {
	Contradicts bool    `json:"contradicts"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// semanticThreshold is the minimum confidence for a contradicts=true verdict
// to count as a conflict.
const semanticThreshold = 0.7

// IsConflict applies the confidence threshold.
func (v SemanticVerdict) IsConflict() bool {
	return v.Contradicts && v.Confidence >= semanticThreshold
}

// SemanticChecker classifies whether two prose specification values
// contradict each other. The rule paths find candidates cheaply; the
// checker classifies them precisely. Errors are transient: the caller skips
// the pair rather than failing ingestion.
type SemanticChecker interface {
	Check(ctx context.Context, input CheckInput) (SemanticVerdict, error)
}

// CheckInput carries both sides of one pairwise check.
type CheckInput struct {
	CategoryA, KeyA, ValueA string
	CategoryB, KeyB, ValueB string
}

// NoopChecker never finds a contradiction. Used when no gateway is wired.
type NoopChecker struct{}

// Check implements SemanticChecker.
func (NoopChecker) Check(context.Context, CheckInput) (SemanticVerdict, error) {
	return SemanticVerdict{}, nil
}

// LLMChecker performs the check through the LLM gateway with a structured
// prompt and JSON-schema'd output.
type LLMChecker struct {
	client llm.Client
	model  string
}

// NewLLMChecker creates a gateway-backed checker.
func NewLLMChecker(client llm.Client, model string) *LLMChecker {
	return &LLMChecker{client: client, model: model}
}

const semanticSchema = `{
  "type": "object",
  "properties": {
    "contradicts": {"type": "boolean"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "explanation": {"type": "string"}
  },
  "required": ["contradicts", "confidence", "explanation"]
}`

// Check implements SemanticChecker.
func (c *LLMChecker) Check(ctx context.Context, input CheckInput) (SemanticVerdict, error) {
	var verdict SemanticVerdict
	_, err := llm.CompleteJSON(ctx, c.client, llm.Request{
		Model:      c.model,
		System:     "You are a contradiction classifier for a software specification workbench. Respond with JSON only.",
		UserPrompt: formatCheckPrompt(input),
		MaxTokens:  300,
		JSONSchema: semanticSchema,
	}, &verdict)
	if err != nil {
		return SemanticVerdict{}, fmt.Errorf("semantic check failed: %w", err)
	}

	if verdict.Confidence < 0 {
		verdict.Confidence = 0
	}
	if verdict.Confidence > 1 {
		verdict.Confidence = 1
	}
	return verdict, nil
}

// formatCheckPrompt builds the pairwise classification prompt. Only
// available context is included, keeping noise out of the classification.
func formatCheckPrompt(input CheckInput) string {
	var b strings.Builder
	b.WriteString("Two specification statements from the SAME software project follow.\n\n")
	fmt.Fprintf(&b, "Statement A (%s / %s):\n%s\n\n", input.CategoryA, input.KeyA, input.ValueA)
	fmt.Fprintf(&b, "Statement B (%s / %s):\n%s\n\n", input.CategoryB, input.KeyB, input.ValueB)
	b.WriteString("Do these statements make incompatible claims about the project? ")
	b.WriteString("Statements that refine, complement, or elaborate each other do NOT contradict. ")
	b.WriteString("Only report contradicts=true when satisfying one statement makes the other impossible.\n")
	b.WriteString(`Respond with JSON: {"contradicts": bool, "confidence": 0..1, "explanation": "..."}`)
	return b.String()
}
