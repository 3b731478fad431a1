package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errDelivery = errors.New("delivery failed")

var reminder = model.Notification{Title: "📚 Class Starting Soon", Body: "Algebra starts in 10 minutes"}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

func TestGate_PermissionFlow(t *testing.T) {
	next := &recordingNotifier{}
	gate := NewGate(next, zap.NewNop())

	assert.Equal(t, PermissionDefault, gate.Permission())
	require.NoError(t, gate.Notify(context.Background(), reminder))
	assert.Empty(t, next.sent, "default permission drops notifications")

	assert.Equal(t, PermissionGranted, gate.Request())
	require.NoError(t, gate.Notify(context.Background(), reminder))
	assert.Len(t, next.sent, 1)

	gate.Deny()
	require.NoError(t, gate.Notify(context.Background(), reminder))
	assert.Len(t, next.sent, 1)

	assert.Equal(t, PermissionDenied, gate.Request(), "request does not override denial")

	gate.Grant()
	require.NoError(t, gate.Notify(context.Background(), reminder))
	assert.Len(t, next.sent, 2)
}

func TestGate_PropagatesError(t *testing.T) {
	gate := NewGate(&recordingNotifier{err: errDelivery}, zap.NewNop())
	gate.Grant()

	assert.ErrorIs(t, gate.Notify(context.Background(), reminder), errDelivery)
}

func TestGate_NilNext(t *testing.T) {
	gate := NewGate(nil, zap.NewNop())
	gate.Grant()

	assert.NoError(t, gate.Notify(context.Background(), reminder))
}

func TestMulti(t *testing.T) {
	ok := &recordingNotifier{}
	failing := &recordingNotifier{err: errDelivery}

	err := Multi{failing, ok}.Notify(context.Background(), reminder)

	assert.ErrorIs(t, err, errDelivery)
	assert.Len(t, ok.sent, 1, "a failing channel does not block the others")
	assert.Len(t, failing.sent, 1)

	assert.NoError(t, Multi{}.Notify(context.Background(), reminder))
}

type fakeMessageSender struct {
	params []*bot.SendMessageParams
	err    error
}

func (f *fakeMessageSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Message{ID: len(f.params)}, nil
}

func TestTelegram_Notify(t *testing.T) {
	sender := &fakeMessageSender{}
	tg := NewTelegram(sender, 42)

	require.NoError(t, tg.Notify(context.Background(), reminder))
	require.Len(t, sender.params, 1)
	assert.Equal(t, int64(42), sender.params[0].ChatID)
	assert.Equal(t, "📚 Class Starting Soon\n\nAlgebra starts in 10 minutes", sender.params[0].Text)

	sender.err = errDelivery
	assert.ErrorIs(t, tg.Notify(context.Background(), reminder), errDelivery)
}

type fakeShoutrrrSender struct {
	messages []string
	titles   []string
	errs     []error
}

func (f *fakeShoutrrrSender) Send(message string, params *stypes.Params) []error {
	f.messages = append(f.messages, message)
	if params != nil {
		f.titles = append(f.titles, (*params)["title"])
	}
	return f.errs
}

func TestShoutrrr_Notify(t *testing.T) {
	sender := &fakeShoutrrrSender{errs: []error{nil}}
	s := &Shoutrrr{sender: sender}

	require.NoError(t, s.Notify(context.Background(), reminder))
	assert.Equal(t, []string{"Algebra starts in 10 minutes"}, sender.messages)
	assert.Equal(t, []string{"📚 Class Starting Soon"}, sender.titles)

	sender.errs = []error{nil, errDelivery}
	assert.ErrorIs(t, s.Notify(context.Background(), reminder), errDelivery)
}

func TestNewShoutrrr_Errors(t *testing.T) {
	_, err := NewShoutrrr(nil, time.Second)
	assert.Error(t, err)

	_, err = NewShoutrrr([]string{"not-a-service://nowhere"}, time.Second)
	assert.Error(t, err)
}
