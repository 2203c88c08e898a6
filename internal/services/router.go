package services

import "strings"

// ActionType classifies what an incoming message asks for
type ActionType int

const (
	ActionUnknown ActionType = iota
	ActionStart
	ActionHelp
	ActionCancel
	ActionNewUpdateMonitor
	ActionNewKeywordCheck
	ActionListUpdateRequests
	ActionListKeywordRequests
	ActionEditUpdate
	ActionDeleteUpdate
	ActionEditKeyword
	ActionDeleteKeyword
	ActionContinueSession
)

// Command vocabulary
const (
	cmdStart               = "/start"
	cmdHelp                = "/help"
	cmdCancel              = "/cancel"
	cmdNewUpdateMonitor    = "/new_update_monitor"
	cmdNewKeywordCheck     = "/new_keyword_check"
	cmdListUpdateRequests  = "/list_update_requests"
	cmdListKeywordRequests = "/list_keyword_check_requests"
	cmdEditUpdatePrefix    = "/editupdate"
	cmdDeleteUpdatePrefix  = "/deleteupdate"
	cmdEditKeywordPrefix   = "/editkeyword"
	cmdDeleteKeywordPrefix = "/deletekeyword"
	cmdSkip                = "/skip"
)

// Action is the result of classifying one incoming message. RequestID is
// set only for the parametrized edit/delete commands.
type Action struct {
	Type      ActionType
	RequestID string
}

// Route classifies trimmed message text against the command vocabulary.
// Text that matches no command is a session continuation when a flow is in
// progress, otherwise Unknown. Pure classification; execution is up to the
// caller.
func Route(text string, hasSession bool) Action {
	// Telegram clients append the bot's handle to commands sent in groups
	command := text
	if at := strings.Index(command, "@"); at > 0 && strings.HasPrefix(command, "/") && !strings.Contains(command[:at], " ") {
		command = command[:at]
	}

	switch command {
	case cmdStart:
		return Action{Type: ActionStart}
	case cmdHelp:
		return Action{Type: ActionHelp}
	case cmdCancel:
		return Action{Type: ActionCancel}
	case cmdNewUpdateMonitor:
		return Action{Type: ActionNewUpdateMonitor}
	case cmdNewKeywordCheck:
		return Action{Type: ActionNewKeywordCheck}
	case cmdListUpdateRequests:
		return Action{Type: ActionListUpdateRequests}
	case cmdListKeywordRequests:
		return Action{Type: ActionListKeywordRequests}
	}

	switch {
	case strings.HasPrefix(text, cmdDeleteUpdatePrefix):
		return Action{Type: ActionDeleteUpdate, RequestID: text[len(cmdDeleteUpdatePrefix):]}
	case strings.HasPrefix(text, cmdEditUpdatePrefix):
		return Action{Type: ActionEditUpdate, RequestID: text[len(cmdEditUpdatePrefix):]}
	case strings.HasPrefix(text, cmdDeleteKeywordPrefix):
		return Action{Type: ActionDeleteKeyword, RequestID: text[len(cmdDeleteKeywordPrefix):]}
	case strings.HasPrefix(text, cmdEditKeywordPrefix):
		return Action{Type: ActionEditKeyword, RequestID: text[len(cmdEditKeywordPrefix):]}
	}

	if hasSession {
		return Action{Type: ActionContinueSession}
	}
	return Action{Type: ActionUnknown}
}
