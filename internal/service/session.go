package service

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RowSource отдаёт строки таблицы расписания, каждый раз читая их заново
type RowSource interface {
	Rows(ctx context.Context) ([]model.Row, error)
}

// Sink отрисовывает результат прохода (текст, картинка, логи)
type Sink interface {
	Render(ctx context.Context, result model.ScanResult, settings model.Settings)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// Scheduler повторяющийся таймер с отменой
type Scheduler interface {
	Every(interval time.Duration, task func(ctx context.Context)) (cancel func())
}

// ScanObserver получает статистику проходов (метрики)
type ScanObserver interface {
	ObserveScan(result model.ScanResult, sent int, took time.Duration)
	ObserveSourceError()
}

// SystemClock системные часы в заданном часовом поясе
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// SessionDeps зависимости сессии
type SessionDeps struct {
	Settings  *SettingsService
	Source    RowSource
	Sinks     []Sink
	Notifier  schedule.Notifier
	Scheduler Scheduler
	Clock     Clock
	Observer  ScanObserver
	Logger    *zap.Logger
}

// Session владеет состоянием подсветки: флаг включения, кеш настроек,
// таймер, набор отправленных напоминаний и последний результат.
// Все проходы и переключения сериализуются одним мьютексом.
type Session struct {
	mu sync.Mutex

	settingsSvc *SettingsService
	source      RowSource
	sinks       []Sink
	scheduler   Scheduler
	clock       Clock
	observer    ScanObserver
	logger      *zap.Logger

	reminders *schedule.Reminders
	scanner   *schedule.Scanner

	enabled  bool
	settings model.Settings
	id       uuid.UUID
	cancel   func()
	last     *model.ScanResult
}

// NewSession создаёт сессию; до Start она выключена и использует настройки по умолчанию
func NewSession(deps SessionDeps) *Session {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	observer := deps.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	reminders := schedule.NewReminders(deps.Notifier, schedule.ReminderOptions{}, logger)

	return &Session{
		settingsSvc: deps.Settings,
		source:      deps.Source,
		sinks:       deps.Sinks,
		scheduler:   deps.Scheduler,
		clock:       clock,
		observer:    observer,
		logger:      logger,
		reminders:   reminders,
		scanner:     schedule.NewScanner(reminders),
		settings:    model.DefaultSettings(),
	}
}

// Start загружает настройки и флаг включения и применяет их
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.settingsSvc.Load(ctx)
	enabled := s.settingsSvc.Enabled(ctx)

	s.logger.Info("Session starting",
		zap.Bool("enabled", enabled),
		zap.Int("update_interval_seconds", s.settings.UpdateIntervalSeconds),
		zap.Bool("notify_before_class", s.settings.NotifyBeforeClass),
		zap.Int("notify_minutes", s.settings.NotifyMinutes),
	)

	s.applyLocked(ctx, enabled)
}

// SetEnabled сохраняет флаг и перезапускает таймер.
// Повторное включение не создаёт второй таймер: старый всегда останавливается.
func (s *Session) SetEnabled(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setEnabledLocked(ctx, enabled)
}

// Toggle переключает подсветку и возвращает новое состояние.
// Чтение и запись флага идут под одной блокировкой.
func (s *Session) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := !s.enabled
	s.setEnabledLocked(ctx, enabled)
	return enabled
}

// SaveSettings сохраняет настройки и, если подсветка включена,
// применяет их через выключение и повторное включение
func (s *Session) SaveSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings = NormalizeSettings(settings)
	if err := s.settingsSvc.Save(ctx, settings); err != nil {
		return err
	}
	s.settings = settings

	if s.enabled {
		s.applyLocked(ctx, false)
		s.applyLocked(ctx, true)
	}

	return nil
}

// Tick выполняет один проход, если подсветка включена
func (s *Session) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	s.tickLocked(ctx)
}

// Stop останавливает таймер, не трогая сохранённый флаг (завершение процесса)
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.logger.Info("Session stopped", zap.String("session_id", s.id.String()))
}

func (s *Session) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

func (s *Session) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// NotifiedCount число отмеченных напоминаний в текущем цикле
func (s *Session) NotifiedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reminders.Len()
}

// Snapshot возвращает последний результат, при необходимости выполняя проход.
// false, если подсветка выключена или таблицу не удалось прочитать.
func (s *Session) Snapshot(ctx context.Context) (model.ScanResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return model.ScanResult{}, false
	}
	if s.last == nil {
		s.tickLocked(ctx)
	}
	if s.last == nil {
		return model.ScanResult{}, false
	}
	return *s.last, true
}

func (s *Session) setEnabledLocked(ctx context.Context, enabled bool) {
	if err := s.settingsSvc.SetEnabled(ctx, enabled); err != nil {
		s.logger.Warn("Failed to persist enabled flag", zap.Bool("enabled", enabled), zap.Error(err))
	}

	s.applyLocked(ctx, enabled)
}

func (s *Session) applyLocked(ctx context.Context, enabled bool) {
	s.stopTimerLocked()
	s.reminders.Reset()
	s.enabled = enabled

	if !enabled {
		s.last = nil
		s.logger.Info("Highlighting disabled")
		return
	}

	interval := time.Duration(s.settings.UpdateIntervalSeconds) * time.Second
	s.id = uuid.New()
	s.reminders.SetOptions(schedule.ReminderOptions{
		Enabled:       s.settings.NotifyBeforeClass,
		WindowMinutes: s.settings.NotifyMinutes,
		TickInterval:  interval,
	})

	s.logger.Info("✅ Highlighting enabled",
		zap.String("session_id", s.id.String()),
		zap.Duration("interval", interval),
		zap.Duration("reminder_band", schedule.BandWidth(interval)),
	)

	s.tickLocked(ctx)
	s.cancel = s.scheduler.Every(interval, s.tickFor(s.id))
}

// tickFor возвращает задачу таймера, привязанную к циклу id:
// тики остановленного цикла ничего не делают
func (s *Session) tickFor(id uuid.UUID) func(ctx context.Context) {
	return func(ctx context.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.enabled || s.id != id {
			return
		}
		s.tickLocked(ctx)
	}
}

func (s *Session) tickLocked(ctx context.Context) {
	started := time.Now()

	rows, err := s.source.Rows(ctx)
	if err != nil {
		s.observer.ObserveSourceError()
		s.logger.Warn("Failed to read class table", zap.Error(err))
		return
	}

	now := s.clock.Now()
	result, sent := s.scanner.Scan(ctx, rows, now)
	s.last = &result

	for _, sink := range s.sinks {
		sink.Render(ctx, result, s.settings)
	}

	s.observer.ObserveScan(result, sent, time.Since(started))
}

func (s *Session) stopTimerLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

type noopObserver struct{}

func (noopObserver) ObserveScan(model.ScanResult, int, time.Duration) {}
func (noopObserver) ObserveSourceError()                              {}
