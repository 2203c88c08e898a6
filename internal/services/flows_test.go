package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewatch/sitewatch-backend/internal/models"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

const chatID int64 = 4242

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"example.com", "https://example.com"},
		{"http://x.test", "http://x.test"},
		{"https://x.test/path?q=1", "https://x.test/path?q=1"},
		{"HTTP://UPPER.test", "HTTP://UPPER.test"},
		{"ftp.example.com", "https://ftp.example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeURL(tt.input), "input %q", tt.input)
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  models.KeywordList
	}{
		{" Law, Good Boy ,, City", models.KeywordList{"law", "good boy", "city"}},
		{"one", models.KeywordList{"one"}},
		{"a,a,b", models.KeywordList{"a", "a", "b"}}, // duplicates kept, order preserved
		{" , ,", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseKeywords(tt.input), "input %q", tt.input)
	}
}

func TestParseYes(t *testing.T) {
	assert.True(t, parseYes("yes"))
	assert.True(t, parseYes("YES"))
	assert.True(t, parseYes(" Yes "))
	// Anything else, typos included, means no
	assert.False(t, parseYes("no"))
	assert.False(t, parseYes("yess"))
	assert.False(t, parseYes("y"))
	assert.False(t, parseYes(""))
}

func TestUpdateCreationFlow(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	assert.Equal(t, msgAskURL, notifier.last().text)

	require.NoError(t, bot.ProcessMessage(chatID, "url1"))
	assert.Equal(t, msgAskContinueFlag, notifier.last().text)

	require.NoError(t, bot.ProcessMessage(chatID, "yes"))
	assert.Equal(t, msgAskDetailFlag, notifier.last().text)

	require.NoError(t, bot.ProcessMessage(chatID, "no"))
	assert.Equal(t, msgUpdateMonitorCreated, notifier.last().text)

	rows, err := store.GetRequestsByKind(chatID, models.KindUpdate)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://url1", rows[0].URL)
	assert.True(t, rows[0].ContinueAfterFirstChange)
	assert.False(t, rows[0].DetailedUpdates)

	// Flow is terminal: the next free text is no longer a continuation
	require.NoError(t, bot.ProcessMessage(chatID, "hello"))
	assert.Equal(t, msgUnknown, notifier.last().text)
}

func TestUpdateCreationTreatsTyposAsNo(t *testing.T) {
	bot, store, _ := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "example.com"))
	require.NoError(t, bot.ProcessMessage(chatID, "yess"))
	require.NoError(t, bot.ProcessMessage(chatID, "sure"))

	rows, err := store.GetRequestsByKind(chatID, models.KindUpdate)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].ContinueAfterFirstChange)
	assert.False(t, rows[0].DetailedUpdates)
}

func TestKeywordCreationFlow(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_keyword_check"))
	require.NoError(t, bot.ProcessMessage(chatID, "news.example.com"))
	assert.Equal(t, msgAskKeywords, notifier.last().text)

	require.NoError(t, bot.ProcessMessage(chatID, " Law, Good Boy ,, City"))
	assert.Equal(t, msgKeywordCheckCreated, notifier.last().text)

	rows, err := store.GetRequestsByKind(chatID, models.KindKeyword)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://news.example.com", rows[0].URL)
	assert.Equal(t, models.KeywordList{"law", "good boy", "city"}, rows[0].Keywords)

	// The keyword row never shows up in update listings
	updates, err := store.GetRequestsByKind(chatID, models.KindUpdate)
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestCancelWithoutSession(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/cancel"))
	assert.Equal(t, msgNoActiveRequest, notifier.last().text)

	count, err := store.CountRequests()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCancelDeletesPartialRow(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "example.com"))

	count, err := store.CountRequests()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, bot.ProcessMessage(chatID, "/cancel"))
	assert.Equal(t, msgCancelled, notifier.last().text)

	count, err = store.CountRequests()
	require.NoError(t, err)
	assert.Zero(t, count)

	// A second cancel has nothing left to abort
	require.NoError(t, bot.ProcessMessage(chatID, "/cancel"))
	assert.Equal(t, msgNoActiveRequest, notifier.last().text)
}

func TestCancelBeforeRowExists(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "/cancel"))
	assert.Equal(t, msgCancelled, notifier.last().text)

	count, err := store.CountRequests()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStartingNewFlowDiscardsOldSession(t *testing.T) {
	bot, store, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "first.example.com"))

	// Abandon mid-flow and start over
	require.NoError(t, bot.ProcessMessage(chatID, "/new_keyword_check"))
	require.NoError(t, bot.ProcessMessage(chatID, "second.example.com"))
	require.NoError(t, bot.ProcessMessage(chatID, "go"))
	assert.Equal(t, msgKeywordCheckCreated, notifier.last().text)

	// The abandoned partial row stays behind
	updates, err := store.GetRequestsByKind(chatID, models.KindUpdate)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, "https://first.example.com", updates[0].URL)

	keywords, err := store.GetRequestsByKind(chatID, models.KindKeyword)
	require.NoError(t, err)
	require.Len(t, keywords, 1)
}

func TestInsertFailureAbortsFlow(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore(), failCreate: true}
	notifier := &fakeNotifier{}
	bot := NewBotService(store, NewSessionManager(), notifier)

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "example.com"))
	assert.Equal(t, msgPersistenceFailure, notifier.last().text)

	// Session is discarded, not stuck: free text falls through to unknown
	require.NoError(t, bot.ProcessMessage(chatID, "example.com"))
	assert.Equal(t, msgUnknown, notifier.last().text)
}

func TestUpdateFailureAbortsFlow(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore()}
	notifier := &fakeNotifier{}
	bot := NewBotService(store, NewSessionManager(), notifier)

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(chatID, "example.com"))

	store.failUpdate = true
	require.NoError(t, bot.ProcessMessage(chatID, "yes"))
	assert.Equal(t, msgPersistenceFailure, notifier.last().text)

	require.NoError(t, bot.ProcessMessage(chatID, "yes"))
	assert.Equal(t, msgUnknown, notifier.last().text)
}

func TestEmptyInputIsNoOp(t *testing.T) {
	bot, _, notifier := newTestBot()

	require.NoError(t, bot.ProcessMessage(chatID, "   "))
	require.NoError(t, bot.ProcessMessage(0, "/start"))
	assert.Empty(t, notifier.messages)
}

func TestTenantsAreIndependent(t *testing.T) {
	bot, store, _ := newTestBot()
	other := chatID + 1

	require.NoError(t, bot.ProcessMessage(chatID, "/new_update_monitor"))
	require.NoError(t, bot.ProcessMessage(other, "/new_keyword_check"))

	require.NoError(t, bot.ProcessMessage(chatID, "a.example.com"))
	require.NoError(t, bot.ProcessMessage(other, "b.example.com"))
	require.NoError(t, bot.ProcessMessage(chatID, "yes"))
	require.NoError(t, bot.ProcessMessage(other, "word"))
	require.NoError(t, bot.ProcessMessage(chatID, "no"))

	mine, err := store.GetRequestsByKind(chatID, models.KindUpdate)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "https://a.example.com", mine[0].URL)

	theirs, err := store.GetRequestsByKind(other, models.KindKeyword)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	assert.Equal(t, "https://b.example.com", theirs[0].URL)
}
