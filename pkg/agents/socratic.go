package agents

import (
	"context"
	"fmt"
	"strings"

	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Socratic agent actions.
const (
	ActionGenerateQuestion       = "generate_question"
	ActionGenerateQuestionsBatch = "generate_questions_batch"
)

const defaultBatchSize = 3

// questionRoles frames each category's question from a professional role.
var questionRoles = map[string]string{
	"goals":          "product manager",
	"requirements":   "business analyst",
	"tech_stack":     "software architect",
	"scalability":    "site reliability engineer",
	"security":       "security engineer",
	"testing":        "QA engineer",
	"deployment":     "devops engineer",
	"monitoring":     "site reliability engineer",
	"team_structure": "engineering manager",
	"timeline":       "project manager",
}

// SocraticAgent generates open, non-leading questions targeted at the least
// covered specification categories. Drafts are persisted only after the
// orchestrator's quality loop settles (Finalizer).
type SocraticAgent struct {
	client    llm.Client
	model     string
	sessions  *services.SessionService
	specs     *services.SpecificationService
	questions *services.QuestionService
}

// NewSocraticAgent creates a new SocraticAgent.
func NewSocraticAgent(client llm.Client, model string, sessions *services.SessionService, specs *services.SpecificationService, questions *services.QuestionService) *SocraticAgent {
	return &SocraticAgent{client: client, model: model, sessions: sessions, specs: specs, questions: questions}
}

// ID implements Agent.
func (a *SocraticAgent) ID() string { return IDSocratic }

// Execute implements Agent.
func (a *SocraticAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	switch action {
	case ActionGenerateQuestion:
		return a.generateQuestion(ctx, identity, payload)
	case ActionGenerateQuestionsBatch:
		return a.generateBatch(ctx, identity, payload)
	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDSocratic, action)
	}
}

type questionDraft struct {
	Question string `json:"question"`
}

const questionSchema = `{
  "type": "object",
  "properties": {
    "question": {"type": "string"}
  },
  "required": ["question"]
}`

func (a *SocraticAgent) generateQuestion(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	sessionID, err := payload.String("session_id")
	if err != nil {
		return nil, err
	}
	sess, err := a.sessions.GetActive(ctx, identity, sessionID)
	if err != nil {
		return nil, err
	}

	report, err := a.specs.Maturity(ctx, sess.ProjectID)
	if err != nil {
		return nil, err
	}
	category := payload.OptionalString("category")
	if category == "" {
		category = nextCategory(report)
	}
	if !specengine.IsCategory(category) {
		return nil, &MissingParameterError{Name: "category"}
	}

	text, err := a.draft(ctx, sessionID, category, payload.OptionalString(RegenerationHintKey))
	if err != nil {
		return nil, err
	}

	return &Result{
		Success: true,
		Data: map[string]any{
			"session_id": sessionID,
			"project_id": sess.ProjectID,
			"text":       text,
			"category":   category,
			"role":       questionRoles[category],
			"model":      a.model,
		},
	}, nil
}

func (a *SocraticAgent) generateBatch(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
	sessionID, err := payload.String("session_id")
	if err != nil {
		return nil, err
	}
	sess, err := a.sessions.GetActive(ctx, identity, sessionID)
	if err != nil {
		return nil, err
	}
	report, err := a.specs.Maturity(ctx, sess.ProjectID)
	if err != nil {
		return nil, err
	}

	count := payload.OptionalInt("count", defaultBatchSize)
	if count < 1 {
		count = 1
	}
	if count > len(specengine.Categories) {
		count = len(specengine.Categories)
	}

	// A batch regenerates whole, so every replacement draft gets the
	// rejected round's findings.
	hint := payload.OptionalString(RegenerationHintKey)

	drafts := make([]map[string]any, 0, count)
	for _, category := range leastCovered(report, count) {
		text, err := a.draft(ctx, sessionID, category, hint)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, map[string]any{
			"text":     text,
			"category": category,
			"role":     questionRoles[category],
		})
	}

	return &Result{
		Success: true,
		Data: map[string]any{
			"session_id": sessionID,
			"project_id": sess.ProjectID,
			"questions":  drafts,
			"model":      a.model,
		},
	}, nil
}

// draft asks the gateway for one question text.
func (a *SocraticAgent) draft(ctx context.Context, sessionID, category, hint string) (string, error) {
	recent, err := a.questions.RecentForSession(ctx, sessionID, 5)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ask one open question about the %q aspect of the user's project, framed as a %s would.\n", category, questionRoles[category])
	if len(recent) > 0 {
		b.WriteString("Do not repeat these already-asked questions:\n")
		for _, q := range recent {
			fmt.Fprintf(&b, "- %s\n", q.Text)
		}
	}
	if hint != "" {
		fmt.Fprintf(&b, "A previous draft was rejected: %s. Avoid these problems.\n", hint)
	}

	var draft questionDraft
	if _, err := llm.CompleteJSON(ctx, a.client, llm.Request{
		Model:      a.model,
		System:     socraticSystemPrompt,
		UserPrompt: b.String(),
		JSONSchema: questionSchema,
	}, &draft); err != nil {
		return "", err
	}
	if strings.TrimSpace(draft.Question) == "" {
		return "", fmt.Errorf("%w: empty question", llm.ErrInvalidResponse)
	}
	return strings.TrimSpace(draft.Question), nil
}

const socraticSystemPrompt = "You are a Socratic requirements interviewer. " +
	"Ask open questions that surface the user's own needs. Never suggest a " +
	"solution, never name a concrete product, never ask leading questions."

// Finalize persists the approved (or cap-exhausted) draft. Only the final
// draft is stored, whatever the regeneration path was.
func (a *SocraticAgent) Finalize(ctx context.Context, identity models.Identity, action string, result *Result, validation models.PostValidation, regenerations int) (*Result, error) {
	sessionID, _ := result.Data["session_id"].(string)

	save := func(text, category, role string) (*models.QuestionResponse, error) {
		q, err := a.questions.Save(ctx, services.SaveQuestionInput{
			SessionID:     sessionID,
			Text:          text,
			Category:      category,
			Role:          role,
			BiasScore:     validation.QualityScore,
			Model:         a.model,
			Regenerations: regenerations,
		})
		if err != nil {
			return nil, err
		}
		view := services.QuestionView(q, validation.Approved)
		return &view, nil
	}

	switch action {
	case ActionGenerateQuestion:
		view, err := save(
			result.Data["text"].(string),
			result.Data["category"].(string),
			result.Data["role"].(string),
		)
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"question": view}}, nil

	case ActionGenerateQuestionsBatch:
		drafts, _ := result.Data["questions"].([]map[string]any)
		views := make([]*models.QuestionResponse, 0, len(drafts))
		for _, d := range drafts {
			view, err := save(d["text"].(string), d["category"].(string), d["role"].(string))
			if err != nil {
				return nil, err
			}
			views = append(views, view)
		}
		return &Result{Success: true, Data: map[string]any{"questions": views}}, nil
	}
	return result, nil
}

// nextCategory picks the least covered category, first in the fixed order on
// ties.
func nextCategory(report models.MaturityReport) string {
	return leastCovered(report, 1)[0]
}

// leastCovered returns the n least covered categories in ascending coverage,
// fixed category order breaking ties.
func leastCovered(report models.MaturityReport, n int) []string {
	ordered := make([]string, len(specengine.Categories))
	copy(ordered, specengine.Categories)

	// Stable selection: repeatedly take the minimum.
	out := make([]string, 0, n)
	taken := make(map[string]bool, n)
	for len(out) < n {
		best := ""
		for _, c := range ordered {
			if taken[c] {
				continue
			}
			if best == "" || report.Categories[c] < report.Categories[best] {
				best = c
			}
		}
		taken[best] = true
		out = append(out, best)
	}
	return out
}
