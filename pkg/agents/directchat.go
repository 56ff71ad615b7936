package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/masking"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/nlu"
	"github.com/specsmith/specsmith/pkg/services"
)

// Direct chat agent actions.
const (
	ActionProcessChatMessage = "process_chat_message"
	ActionToggleMode         = "toggle_mode"
)

// chatContextTurns bounds how much session history is embedded in a chat
// prompt.
const chatContextTurns = 10

// RouteFunc re-enters the orchestrator with an operation parsed out of chat.
// A function value breaks the construction cycle: the orchestrator owns the
// registry that owns this agent.
type RouteFunc func(ctx context.Context, identity models.Identity, agentID, action string, payload Payload) (any, error)

// intentRoutes maps chat-recognized operations onto orchestrator routes.
// Operations with no in-process agent (account management, listings, export)
// are returned to the caller as parsed intents instead.
var intentRoutes = map[models.Operation]struct{ agent, action string }{
	models.OpCreateProject:   {IDProjectManager, ActionProjectCreate},
	models.OpAskSocratic:     {IDSocratic, ActionGenerateQuestion},
	models.OpResolveConflict: {IDConflict, ActionConflictResolve},
	models.OpViewInsights:    {IDQuality, ActionAnalyzeCoverage},
	models.OpToggleMode:      {IDDirectChat, ActionToggleMode},
}

// DirectChatAgent handles free-form conversation. Each utterance is first
// classified by the NLU service: operation intents re-enter the orchestrator
// and the routed result is returned with the intent, everything else gets a
// conversational reply with session-scoped context. Conversation turns are
// recorded; routed operations are not.
type DirectChatAgent struct {
	client   llm.Client
	model    string
	nlu      *nlu.Service
	sessions *services.SessionService
	masker   *masking.Masker
	router   RouteFunc
}

// NewDirectChatAgent creates a new DirectChatAgent.
func NewDirectChatAgent(client llm.Client, model string, nluService *nlu.Service, sessions *services.SessionService, masker *masking.Masker) *DirectChatAgent {
	return &DirectChatAgent{client: client, model: model, nlu: nluService, sessions: sessions, masker: masker}
}

// SetRouter installs the orchestrator re-entry point. Called once at wiring
// time, after the orchestrator exists.
func (a *DirectChatAgent) SetRouter(router RouteFunc) { a.router = router }

// ID implements Agent.
func (a *DirectChatAgent) ID() string { return IDDirectChat }

// Execute implements Agent.
func (a *DirectChatAgent) Execute(ctx context.Context, identity models.Identity, action string, payload Payload) (*Result, error) {
	switch action {
	case ActionProcessChatMessage:
		return a.processMessage(ctx, identity, payload)

	case ActionToggleMode:
		sessionID, err := payload.String("session_id")
		if err != nil {
			return nil, err
		}
		mode, err := payload.String("mode")
		if err != nil {
			return nil, err
		}
		sess, err := a.sessions.ToggleMode(ctx, identity, sessionID, mode)
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"mode": string(sess.Mode)}}, nil

	default:
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownAction, IDDirectChat, action)
	}
}

func (a *DirectChatAgent) processMessage(ctx context.Context, identity models.Identity, payload Payload) (*Result, error) {
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

	intent := a.nlu.Parse(ctx, identity.UserID, a.masker.Mask(text))
	if intent.IsOperation {
		route, ok := intentRoutes[intent.Operation]
		if !ok || a.router == nil || route.action == ActionProcessChatMessage {
			// No in-process route; hand the parsed intent back for a
			// structured call.
			return &Result{Success: true, Data: map[string]any{"intent": intent}}, nil
		}
		routed, err := a.router(ctx, identity, route.agent, route.action, intentPayload(intent, sessionID, sess.ProjectID))
		if err != nil {
			return nil, err
		}
		return &Result{Success: true, Data: map[string]any{"intent": intent, "routed": routed}}, nil
	}

	if _, err := a.sessions.AppendTurn(ctx, sessionID, "user", text); err != nil {
		return nil, err
	}

	reply := intent.Response
	if reply == "" {
		reply, err = a.converse(ctx, sessionID, text)
		if err != nil {
			return nil, err
		}
	}

	if _, err := a.sessions.AppendTurn(ctx, sessionID, "assistant", reply); err != nil {
		return nil, err
	}
	a.nlu.RecordReply(identity.UserID, reply)

	return &Result{Success: true, Data: map[string]any{"reply": reply}}, nil
}

// intentPayload lifts the intent parameters into an agent payload, filling
// the ids the chat context already knows.
func intentPayload(intent models.Intent, sessionID, projectID string) Payload {
	payload := Payload{}
	for k, v := range intent.Params {
		payload[k] = v
	}
	if _, ok := payload["session_id"]; !ok {
		payload["session_id"] = sessionID
	}
	if _, ok := payload["project_id"]; !ok {
		payload["project_id"] = projectID
	}
	return payload
}

// converse produces a contextual reply from recent session history.
func (a *DirectChatAgent) converse(ctx context.Context, sessionID, text string) (string, error) {
	recent, err := a.sessions.RecentTurns(ctx, sessionID, chatContextTurns)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if len(recent) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range recent {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "User says:\n%s", a.masker.Mask(text))

	completion, err := a.client.Complete(ctx, llm.Request{
		Model:      a.model,
		System:     chatSystemPrompt,
		UserPrompt: b.String(),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(completion.Text), nil
}

const chatSystemPrompt = "You are the conversational side of a " +
	"specification-gathering workbench. Answer briefly and steer the user " +
	"toward clarifying their project requirements."
