package callbacks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/controller/handlers"
	"github.com/Freeeeeet/class_highlighter/internal/controller/keyboard"
	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
	"github.com/Freeeeeet/class_highlighter/internal/repository"
	"github.com/Freeeeeet/class_highlighter/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const ownerChatID int64 = 42

// apiCall один запрос к Bot API: метод и поля формы
type apiCall struct {
	method string
	fields map[string]string
}

// fakeAPI записывает запросы бота и отвечает как Telegram
type fakeAPI struct {
	mu    sync.Mutex
	calls []apiCall
}

func (a *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := apiCall{method: path.Base(r.URL.Path), fields: map[string]string{}}
	if err := r.ParseMultipartForm(1 << 20); err == nil {
		for key, values := range r.MultipartForm.Value {
			call.fields[key] = values[0]
		}
	}

	a.mu.Lock()
	a.calls = append(a.calls, call)
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if call.method == "editMessageText" {
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
		return
	}
	_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
}

func (a *fakeAPI) byMethod(method string) []apiCall {
	a.mu.Lock()
	defer a.mu.Unlock()

	var found []apiCall
	for _, c := range a.calls {
		if c.method == method {
			found = append(found, c)
		}
	}
	return found
}

type emptySource struct{}

func (emptySource) Rows(context.Context) ([]model.Row, error) { return nil, nil }

type idleScheduler struct{}

func (idleScheduler) Every(time.Duration, func(context.Context)) func() { return func() {} }

type callbackFixture struct {
	handler *Handler
	bot     *bot.Bot
	api     *fakeAPI
	session *service.Session
	gate    *notifier.Gate
}

func newCallbackFixture(t *testing.T) *callbackFixture {
	t.Helper()

	api := &fakeAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	b, err := bot.New("123:test", bot.WithServerURL(server.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	gate := notifier.NewGate(nil, logger)
	session := service.NewSession(service.SessionDeps{
		Settings:  service.NewSettingsService(repository.NewMemoryStore(), logger),
		Source:    emptySource{},
		Scheduler: idleScheduler{},
		Logger:    logger,
	})
	session.Start(context.Background())

	commands := handlers.NewHandlers(session, gate, ownerChatID, logger)
	return &callbackFixture{
		handler: NewHandler(commands, logger),
		bot:     b,
		api:     api,
		session: session,
		gate:    gate,
	}
}

func (f *callbackFixture) press(chatID int64, data string) {
	f.handler.HandleCallbackQuery(context.Background(), f.bot, &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "cb-1",
			From: models.User{ID: chatID},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Type:    models.MaybeInaccessibleMessageTypeMessage,
				Message: &models.Message{ID: 7, Chat: models.Chat{ID: chatID}},
			},
		},
	})
}

func TestHandleCallbackQuery_NotifyOnGrantsAndRefreshes(t *testing.T) {
	f := newCallbackFixture(t)

	f.press(ownerChatID, keyboard.SetData(handlers.OptionNotify, "on"))

	assert.True(t, f.session.Settings().NotifyBeforeClass)
	assert.Equal(t, notifier.PermissionGranted, f.gate.Permission())

	answers := f.api.byMethod("answerCallbackQuery")
	require.Len(t, answers, 1)
	assert.Equal(t, "cb-1", answers[0].fields["callback_query_id"])
	assert.Equal(t, "✅ notify set to on", answers[0].fields["text"])

	edits := f.api.byMethod("editMessageText")
	require.Len(t, edits, 1)
	assert.Equal(t, "42", edits[0].fields["chat_id"])
	assert.Equal(t, "7", edits[0].fields["message_id"])
	assert.Contains(t, edits[0].fields["text"], "Notify before class: on")
	assert.Contains(t, edits[0].fields["text"], "Notification permission: granted")
	assert.Contains(t, edits[0].fields["reply_markup"], keyboard.SetData(handlers.OptionNotify, "off"))
}

func TestHandleCallbackQuery_NotifyOnWhileDenied(t *testing.T) {
	f := newCallbackFixture(t)
	f.gate.Deny()

	f.press(ownerChatID, keyboard.SetData(handlers.OptionNotify, "on"))

	answers := f.api.byMethod("answerCallbackQuery")
	require.Len(t, answers, 1)
	assert.Contains(t, answers[0].fields["text"], "🔕 Notifications are blocked")
	assert.Equal(t, notifier.PermissionDenied, f.gate.Permission())
	assert.Len(t, f.api.byMethod("editMessageText"), 1)
}

func TestHandleCallbackQuery_ToggleEnabled(t *testing.T) {
	f := newCallbackFixture(t)

	f.press(ownerChatID, keyboard.ToggleEnabled)

	assert.False(t, f.session.Enabled())
	answers := f.api.byMethod("answerCallbackQuery")
	require.Len(t, answers, 1)
	assert.Equal(t, "⏸ Highlighting disabled", answers[0].fields["text"])

	edits := f.api.byMethod("editMessageText")
	require.Len(t, edits, 1)
	assert.Contains(t, edits[0].fields["text"], "Highlighting: off")
}

func TestHandleCallbackQuery_Noop(t *testing.T) {
	f := newCallbackFixture(t)

	f.press(ownerChatID, keyboard.Noop)

	assert.Len(t, f.api.byMethod("answerCallbackQuery"), 1)
	assert.Empty(t, f.api.byMethod("editMessageText"))
}

func TestHandleCallbackQuery_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		chatID int64
		data   string
		alert  string
	}{
		{"foreign chat", 99, keyboard.SetData(handlers.OptionNotify, "on"), "⛔ This bot is private."},
		{"unknown data", ownerChatID, "bogus", "❌ Unknown action"},
		{"invalid value", ownerChatID, keyboard.SetData(handlers.OptionInterval, "45"), "❌ Invalid value."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallbackFixture(t)

			f.press(tt.chatID, tt.data)

			answers := f.api.byMethod("answerCallbackQuery")
			require.Len(t, answers, 1)
			assert.Equal(t, tt.alert, answers[0].fields["text"])
			assert.Equal(t, "true", answers[0].fields["show_alert"])
			assert.Empty(t, f.api.byMethod("editMessageText"))
			assert.Equal(t, model.DefaultSettings(), f.session.Settings())
			assert.Equal(t, notifier.PermissionDefault, f.gate.Permission())
		})
	}
}
