package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TickerScheduler запускает периодические задачи на time.Ticker
type TickerScheduler struct {
	ctx    context.Context
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewTickerScheduler создаёт планировщик; задачи живут не дольше ctx
func NewTickerScheduler(ctx context.Context, logger *zap.Logger) *TickerScheduler {
	return &TickerScheduler{
		ctx:    ctx,
		logger: logger,
	}
}

// Every запускает task каждые interval (первый запуск через interval).
// Возвращённая функция останавливает задачу; повторный вызов безопасен.
// Неположительный interval не запускает задачу.
func (s *TickerScheduler) Every(interval time.Duration, task func(ctx context.Context)) func() {
	if interval <= 0 {
		s.logger.Error("Periodic task not started: non-positive interval", zap.Duration("interval", interval))
		return func() {}
	}

	stopChan := make(chan struct{})
	var once sync.Once

	s.wg.Add(1)
	go s.run(interval, task, stopChan)

	return func() {
		once.Do(func() { close(stopChan) })
	}
}

// Wait ждёт завершения всех запущенных задач
func (s *TickerScheduler) Wait() {
	s.wg.Wait()
}

func (s *TickerScheduler) run(interval time.Duration, task func(ctx context.Context), stopChan chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// остановка могла прийти одновременно с тиком
			select {
			case <-stopChan:
				return
			default:
			}
			task(s.ctx)
		case <-stopChan:
			s.logger.Debug("Periodic task stopped", zap.Duration("interval", interval))
			return
		case <-s.ctx.Done():
			s.logger.Debug("Periodic task cancelled", zap.Duration("interval", interval))
			return
		}
	}
}
