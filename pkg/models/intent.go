package models

// Operation is one entry of the closed NLU operation set. Adding to this set
// is a source change, not a runtime capability.
type Operation string

const (
	OpRegisterUser    Operation = "register_user"
	OpLoginUser       Operation = "login_user"
	OpLogoutUser      Operation = "logout_user"
	OpCreateProject   Operation = "create_project"
	OpListProjects    Operation = "list_projects"
	OpStartSession    Operation = "start_session"
	OpAskQuestion     Operation = "ask_question"
	OpResolveConflict Operation = "resolve_conflict"
	OpViewInsights    Operation = "view_insights"
	OpExportProject   Operation = "export_project"
	OpAskSocratic     Operation = "ask_socratic"
	OpToggleMode      Operation = "toggle_mode"
)

// Operations returns the closed set of recognized operations.
func Operations() []Operation {
	return []Operation{
		OpRegisterUser, OpLoginUser, OpLogoutUser,
		OpCreateProject, OpListProjects, OpStartSession,
		OpAskQuestion, OpResolveConflict, OpViewInsights,
		OpExportProject, OpAskSocratic, OpToggleMode,
	}
}

// IsValid reports whether op is a member of the closed set.
func (op Operation) IsValid() bool {
	for _, o := range Operations() {
		if op == o {
			return true
		}
	}
	return false
}

// Intent is the NLU service's parse of a user utterance: either a structured
// operation intent with parameters, or a free-form conversational reply.
type Intent struct {
	IsOperation bool           `json:"is_operation"`
	Operation   Operation      `json:"operation,omitempty"`
	Params      map[string]any `json:"params,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Response    string         `json:"response,omitempty"`
}
