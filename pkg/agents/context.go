package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/masking"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Context agent action.
const ActionExtractSpecifications = "extract_specifications"

// promptSpecLimit bounds how many current specifications are embedded in the
// extraction prompt.
const promptSpecLimit = 100

// ContextAgent turns a free-text answer into specification candidates and
// ingests them. The utterance is recorded as a conversation turn and masked
// before it reaches the gateway.
type ContextAgent struct {
	client   llm.Client
	model    string
	sessions *services.SessionService
	specs    *services.SpecificationService
	masker   *masking.Masker
}

// NewContextAgent creates a new ContextAgent.
func NewContextAgent(client llm.Client, model string, sessions *services.SessionService, specs *services.SpecificationService, masker *masking.Masker) *ContextAgent {
	return &ContextAgent{client: client, model: model, sessions: sessions, specs: specs, masker: masker}
}

// ID implements Agent.
func (a *ContextAgent) ID() string { return IDContext }

// Execute implements Agent.
func (a *ContextAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	if action != ActionExtractSpecifications {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDContext, action)
	}

	sessionID, err := payload.String("session_id")
	if err != nil {
		return nil, err
	}
	text, err := payload.String("text")
	if err != nil {
		return nil, err
	}

	sess, err := a.sessions.GetActive(ctx, identity, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := a.sessions.AppendTurn(ctx, sessionID, "user", text); err != nil {
		return nil, err
	}

	candidates, err := a.extract(ctx, sess.ProjectID, text)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return &Result{Success: true, Data: map[string]any{
			"extraction": &models.ExtractionResult{},
		}}, nil
	}

	result, err := a.specs.Ingest(ctx, identity, sess.ProjectID, candidates)
	if err != nil {
		return nil, err
	}
	return &Result{Success: true, Data: map[string]any{"extraction": result}}, nil
}

// Confidence is a pointer so an omitted self-assessment (nil, defaulted to
// full) stays distinct from an explicit zero.
type extractionEnvelope struct {
	Specifications []struct {
		Category   string   `json:"category"`
		Key        string   `json:"key"`
		Value      string   `json:"value"`
		Confidence *float64 `json:"confidence"`
	} `json:"specifications"`
}

const extractionSchema = `{
  "type": "object",
  "properties": {
    "specifications": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "category": {"type": "string"},
          "key": {"type": "string"},
          "value": {"type": "string"},
          "confidence": {"type": "number"}
        },
        "required": ["category", "key", "value"]
      }
    }
  },
  "required": ["specifications"]
}`

// extract prompts the gateway with the masked utterance and the current
// specifications, bounded to the most recent promptSpecLimit.
func (a *ContextAgent) extract(ctx context.Context, projectID, text string) ([]models.SpecCandidate, error) {
	current, err := a.specs.ListCurrent(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(current) > promptSpecLimit {
		current = current[len(current)-promptSpecLimit:]
	}

	var b strings.Builder
	b.WriteString("Current specifications:\n")
	if len(current) == 0 {
		b.WriteString("(none)\n")
	}
	for _, s := range current {
		fmt.Fprintf(&b, "- %s.%s = %s\n", s.Category, s.Key, s.Value)
	}
	b.WriteString("\nUser answer:\n")
	b.WriteString(a.masker.Mask(text))

	var envelope extractionEnvelope
	if _, err := llm.CompleteJSON(ctx, a.client, llm.Request{
		Model:      a.model,
		System:     extractionSystemPrompt,
		UserPrompt: b.String(),
		JSONSchema: extractionSchema,
	}, &envelope); err != nil {
		return nil, err
	}

	candidates := make([]models.SpecCandidate, 0, len(envelope.Specifications))
	for _, s := range envelope.Specifications {
		if s.Category == "" || s.Key == "" || s.Value == "" {
			continue
		}
		confidence := 1.0
		if s.Confidence != nil {
			confidence = *s.Confidence
		}
		candidates = append(candidates, models.SpecCandidate{
			Category:   s.Category,
			Key:        s.Key,
			Value:      s.Value,
			Confidence: confidence,
			Source:     models.SourceExtracted,
		})
	}
	return candidates, nil
}

const extractionSystemPrompt = "You extract structured specifications from a " +
	"user's answer about their software project. Categories are: goals, " +
	"requirements, tech_stack, scalability, security, testing, deployment, " +
	"monitoring, team_structure, timeline. Return only facts the user " +
	"actually stated."
