package nlu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
)

// minIntentConfidence is the floor below which a parsed operation intent is
// treated as conversation instead of dispatched.
const minIntentConfidence = 0.6

// Service turns utterances into intents through the LLM gateway.
type Service struct {
	client llm.Client
	model  string
	memory *Memory
	logger *slog.Logger
}

// NewService creates the NLU service.
func NewService(client llm.Client, model string, cfg *config.NLUConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		model:  model,
		memory: NewMemory(cfg),
		logger: logger,
	}
}

// intentEnvelope is the raw LLM output before validation. Confidence is
// internal to parsing; callers only see the validated intent.
type intentEnvelope struct {
	IsOperation bool           `json:"is_operation"`
	Operation   string         `json:"operation"`
	Confidence  float64        `json:"confidence"`
	Params      map[string]any `json:"params"`
	Explanation string         `json:"explanation"`
}

const intentSchema = `{
  "type": "object",
  "properties": {
    "is_operation": {"type": "boolean"},
    "operation": {"type": "string"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "params": {"type": "object"},
    "explanation": {"type": "string"}
  },
  "required": ["is_operation", "confidence"]
}`

// Parse classifies one utterance. The utterance is recorded in the user's
// window before parsing so the classification sees its own context.
//
// Degradation policy: a gateway failure, an operation outside the closed
// set, or confidence below the floor all yield a conversational intent,
// never an error. An envelope that comes back as prose carries that prose
// in Response. The caller routes those to the chat agent.
func (s *Service) Parse(ctx context.Context, userID, utterance string) models.Intent {
	window := s.memory.Window(userID)
	window.Add(Turn{Role: "user", Content: utterance, At: time.Now()})

	var env intentEnvelope
	completion, err := llm.CompleteJSON(ctx, s.client, llm.Request{
		Model:      s.model,
		System:     intentSystemPrompt,
		UserPrompt: s.formatParsePrompt(window.Turns(), utterance),
		MaxTokens:  500,
		JSONSchema: intentSchema,
	}, &env)
	if err != nil {
		s.logger.Warn("Intent parse degraded to conversation", "user_id", userID, "error", err)
		intent := models.Intent{IsOperation: false}
		// A prose answer is still an answer; echo it as the reply instead of
		// forcing a second completion.
		if errors.Is(err, llm.ErrInvalidResponse) && completion != nil {
			intent.Response = strings.TrimSpace(completion.Text)
		}
		return intent
	}

	if !env.IsOperation {
		return models.Intent{IsOperation: false, Explanation: env.Explanation}
	}

	op := models.Operation(env.Operation)
	if !op.IsValid() {
		s.logger.Warn("Intent named an unknown operation, degrading to conversation",
			"user_id", userID, "operation", env.Operation)
		return models.Intent{IsOperation: false}
	}
	if env.Confidence < minIntentConfidence {
		s.logger.Debug("Intent confidence below floor, degrading to conversation",
			"user_id", userID, "operation", env.Operation, "confidence", env.Confidence)
		return models.Intent{IsOperation: false}
	}

	return models.Intent{
		IsOperation: true,
		Operation:   op,
		Params:      env.Params,
		Explanation: env.Explanation,
	}
}

// RecordReply appends the assistant's reply to the user's window so the next
// parse sees both sides of the exchange.
func (s *Service) RecordReply(userID, content string) {
	s.memory.Window(userID).Add(Turn{Role: "assistant", Content: content, At: time.Now()})
}

// Forget drops a user's conversation window, e.g. on logout.
func (s *Service) Forget(userID string) {
	s.memory.Forget(userID)
}

const intentSystemPrompt = "You classify utterances for a specification-gathering workbench. " +
	"Decide whether the user is invoking one of the listed operations or just conversing. " +
	"Respond with JSON only."

func (s *Service) formatParsePrompt(history []Turn, utterance string) string {
	var b strings.Builder

	b.WriteString("Recognized operations:\n")
	for _, op := range models.Operations() {
		fmt.Fprintf(&b, "- %s\n", op)
	}

	// Exclude the utterance itself, already appended as the last turn.
	if len(history) > 1 {
		b.WriteString("\nRecent conversation, oldest first:\n")
		for _, t := range history[:len(history)-1] {
			fmt.Fprintf(&b, "%s: %s\n", t.Role, t.Content)
		}
	}

	fmt.Fprintf(&b, "\nUtterance:\n%s\n\n", utterance)
	b.WriteString("Classify the utterance. If it invokes an operation, set is_operation=true, ")
	b.WriteString("name the operation, extract its parameters into params, and rate your confidence 0..1. ")
	b.WriteString("Otherwise set is_operation=false.\n")
	b.WriteString(`Respond with JSON: {"is_operation": bool, "operation": "...", "confidence": 0..1, "params": {}, "explanation": "..."}`)
	return b.String()
}
