package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

var errStoreDown = errors.New("store is down")

// manualScheduler запускает задачи только по fire
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	interval  time.Duration
	run       func(ctx context.Context)
	cancelled bool
}

func (s *manualScheduler) Every(interval time.Duration, task func(ctx context.Context)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTask{interval: interval, run: task}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

// fire выполняет все активные задачи один раз
func (s *manualScheduler) fire(ctx context.Context) {
	for _, t := range s.activeTasks() {
		t.run(ctx)
	}
}

func (s *manualScheduler) activeTasks() []*manualTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []*manualTask
	for _, t := range s.tasks {
		if !t.cancelled {
			active = append(active, t)
		}
	}
	return active
}

func (s *manualScheduler) active() int {
	return len(s.activeTasks())
}

func (s *manualScheduler) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type staticSource struct {
	rows []model.Row
	err  error
}

func (s *staticSource) Rows(context.Context) ([]model.Row, error) {
	return s.rows, s.err
}

type recordingSink struct {
	results []model.ScanResult
}

func (s *recordingSink) Render(_ context.Context, result model.ScanResult, _ model.Settings) {
	s.results = append(s.results, result)
}

type recordingNotifier struct {
	sent []model.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg model.Notification) error {
	n.sent = append(n.sent, msg)
	return nil
}

type countingObserver struct {
	scans        int
	sent         int
	sourceErrors int
}

func (o *countingObserver) ObserveScan(_ model.ScanResult, sent int, _ time.Duration) {
	o.scans++
	o.sent += sent
}

func (o *countingObserver) ObserveSourceError() {
	o.sourceErrors++
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errStoreDown
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errStoreDown
}

// tableRow строит строку из 9 ячеек в порядке колонок страницы
func tableRow(index int, label, location, days, start, end string) model.Row {
	return model.Row{
		Index: index,
		Cells: []string{"CRN", "SEC", label, "3", "Lecture", location, days, start, end},
	}
}
