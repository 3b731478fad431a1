package schedule

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const reminderTitle = "📚 Class Starting Soon"

// notifiedRetention сколько хранится отметка об отправке сверх окна напоминания.
// Ключ содержит момент начала, поэтому после retention он уже не может попасть в полосу.
const notifiedRetention = 24 * time.Hour

// Notifier отправляет напоминание наружу
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// ReminderOptions параметры напоминаний текущей сессии
type ReminderOptions struct {
	Enabled       bool
	WindowMinutes int
	// TickInterval период сканирования, расширяет полосу срабатывания
	TickInterval time.Duration
}

// Reminders решает на каждом тике, нужно ли напомнить о предстоящем занятии.
// Каждый NotificationKey отправляется не более одного раза до Reset.
type Reminders struct {
	notifier Notifier
	notified *cache.Cache
	opts     ReminderOptions
	logger   *zap.Logger
}

// NewReminders создаёт планировщик напоминаний с пустым набором отправленных
func NewReminders(notifier Notifier, opts ReminderOptions, logger *zap.Logger) *Reminders {
	return &Reminders{
		notifier: notifier,
		// cleanupInterval = 0: без фоновой горутины, протухшие записи чистит Reset/Prune
		notified: cache.New(notifiedRetention, 0),
		opts:     opts,
		logger:   logger,
	}
}

// BandWidth ширина полосы срабатывания: минута, но не меньше периода тика,
// иначе при редких тиках полоса может быть перепрыгнута
func BandWidth(tickInterval time.Duration) time.Duration {
	if tickInterval > time.Minute {
		return tickInterval
	}
	return time.Minute
}

// SetOptions меняет параметры, набор отправленных сохраняется
func (r *Reminders) SetOptions(opts ReminderOptions) {
	r.opts = opts
}

// Reset очищает историю отправленных напоминаний
func (r *Reminders) Reset() {
	r.notified.Flush()
}

// Prune удаляет протухшие отметки
func (r *Reminders) Prune() {
	r.notified.DeleteExpired()
}

// Notified проверяет, отправлялось ли напоминание по ключу
func (r *Reminders) Notified(key model.NotificationKey) bool {
	_, found := r.notified.Get(key.String())
	return found
}

// Len число записей в наборе отправленных
func (r *Reminders) Len() int {
	return r.notified.ItemCount()
}

// Eligible проверяет попадание в полосу: window - band < m <= window
func (r *Reminders) Eligible(untilStart time.Duration) bool {
	if !r.opts.Enabled {
		return false
	}
	m := untilStart.Minutes()
	window := float64(r.opts.WindowMinutes)
	band := BandWidth(r.opts.TickInterval).Minutes()
	return m <= window && m > window-band
}

// Consider обрабатывает предстоящее занятие и сообщает, было ли отправлено напоминание.
// Ошибки отправителя только логируются, ключ при этом всё равно считается отправленным.
func (r *Reminders) Consider(ctx context.Context, row model.RowStatus, now time.Time) bool {
	if row.Status.Kind != model.StatusUpcoming {
		return false
	}

	untilStart := row.Start.Sub(now)
	if !r.Eligible(untilStart) {
		return false
	}

	key := model.NotificationKey{Label: row.Entry.Label, Start: row.Start}
	ttl := notifiedRetention + time.Duration(r.opts.WindowMinutes)*time.Minute
	if err := r.notified.Add(key.String(), struct{}{}, ttl); err != nil {
		// уже отправляли
		return false
	}

	n := model.Notification{
		Title: reminderTitle,
		Body:  fmt.Sprintf("%s starts in %d minutes", row.Entry.Course(), int(math.Round(untilStart.Minutes()))),
	}

	if r.notifier == nil {
		return true
	}

	if err := r.notifier.Notify(ctx, n); err != nil {
		r.logger.Warn("Failed to deliver class reminder",
			zap.String("course", row.Entry.Course()),
			zap.Time("start", row.Start),
			zap.Error(err),
		)
	}

	return true
}
