package services

import (
	"fmt"
	"strings"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// User-facing message texts. Telegram renders these with HTML parse mode.
const (
	msgWelcome = `👋 Welcome to SiteWatch!

I keep an eye on web pages for you and ping you when they change or when specific keywords show up.`

	msgHelp = `📖 <b>Commands</b>

/new_update_monitor — watch a page for any change
/new_keyword_check — watch a page for specific keywords
/list_update_requests — your update monitors
/list_keyword_check_requests — your keyword checks
/cancel — abort the request you are setting up
/help — this message

While editing a request, reply /skip to keep a field as it is.`

	msgUnknown = "🤔 I didn't understand that. Send /help to see what I can do."

	msgAskURL = "🔗 Which page should I watch? Send me the URL."

	msgAskContinueFlag = "🔁 Should I keep watching after the first change? (yes/no)"

	msgAskDetailFlag = "📄 Do you want detailed update messages? (yes/no)"

	msgAskKeywords = "🔎 Which keywords should I look for? Separate them with commas."
)

const (
	msgUpdateMonitorCreated = "✅ Done! I'll watch that page for changes."

	msgKeywordCheckCreated = "✅ Done! I'll watch that page for your keywords."

	msgEditComplete = "✅ All changes saved."

	msgNotFound = "❌ I couldn't find that request. It may have been deleted, or the id doesn't belong to you."

	msgDeleted = "🗑 Request deleted."

	msgCancelled = "🚫 Request cancelled."

	msgNoActiveRequest = "ℹ️ There's no active request to cancel."

	msgPersistenceFailure = "❌ Sorry, something went wrong saving your request. Please start again."

	msgInvalidYesNo = "⚠️ Please answer yes or no, or reply /skip to keep the current value."

	msgNoUpdateRequests = "📭 You have no update monitors yet. Create one with /new_update_monitor."

	msgNoKeywordRequests = "📭 You have no keyword checks yet. Create one with /new_keyword_check."
)

// yesNo renders a boolean the way users type it
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// formatUpdateRequest renders one update monitor as a listing block,
// including the literal edit/delete commands for its id
func formatUpdateRequest(req *models.MonitoringRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔄 <b>Update monitor</b>\n")
	fmt.Fprintf(&b, "🔗 %s\n", req.URL)
	fmt.Fprintf(&b, "🔁 Continue after first change: %s\n", yesNo(req.ContinueAfterFirstChange))
	fmt.Fprintf(&b, "📄 Detailed updates: %s\n", yesNo(req.DetailedUpdates))
	fmt.Fprintf(&b, "🕐 Created: %s\n", req.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "✏️ Edit: %s%s\n", cmdEditUpdatePrefix, req.ID)
	fmt.Fprintf(&b, "🗑 Delete: %s%s", cmdDeleteUpdatePrefix, req.ID)
	return b.String()
}

// formatKeywordRequest renders one keyword check as a listing block
func formatKeywordRequest(req *models.MonitoringRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 <b>Keyword check</b>\n")
	fmt.Fprintf(&b, "🔗 %s\n", req.URL)
	fmt.Fprintf(&b, "🏷 Keywords: %s\n", strings.Join(req.Keywords, ", "))
	fmt.Fprintf(&b, "🕐 Created: %s\n", req.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "✏️ Edit: %s%s\n", cmdEditKeywordPrefix, req.ID)
	fmt.Fprintf(&b, "🗑 Delete: %s%s", cmdDeleteKeywordPrefix, req.ID)
	return b.String()
}

// requestButtons builds the inline edit/delete shortcuts for a listing row.
// The callback payload is the same literal command string shown in the text.
func requestButtons(req *models.MonitoringRequest) [][]InlineButton {
	editPrefix, deletePrefix := cmdEditUpdatePrefix, cmdDeleteUpdatePrefix
	if req.Kind == models.KindKeyword {
		editPrefix, deletePrefix = cmdEditKeywordPrefix, cmdDeleteKeywordPrefix
	}
	return [][]InlineButton{{
		{Label: "✏️ Edit", Data: editPrefix + req.ID},
		{Label: "🗑 Delete", Data: deletePrefix + req.ID},
	}}
}

// editFieldPrompt asks for a new value for one field, showing its current
// value from the pre-edit snapshot
func editFieldPrompt(field string, snapshot *models.MonitoringRequest) string {
	switch field {
	case fieldURL:
		return fmt.Sprintf("🔗 Current URL: %s\nSend a new URL, or /skip to keep it.", snapshot.URL)
	case fieldContinueAfterFirstChange:
		return fmt.Sprintf("🔁 Continue after first change is currently <b>%s</b>.\nAnswer yes or no, or /skip to keep it.", yesNo(snapshot.ContinueAfterFirstChange))
	case fieldDetailedUpdates:
		return fmt.Sprintf("📄 Detailed updates is currently <b>%s</b>.\nAnswer yes or no, or /skip to keep it.", yesNo(snapshot.DetailedUpdates))
	case fieldKeywords:
		return fmt.Sprintf("🔎 Current keywords: %s\nSend a new comma-separated list, or /skip to keep them.", strings.Join(snapshot.Keywords, ", "))
	}
	return ""
}
