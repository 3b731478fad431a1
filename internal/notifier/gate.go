// Package notifier доставка напоминаний о занятиях (Telegram, shoutrrr)
package notifier

import (
	"context"
	"sync"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"go.uber.org/zap"
)

// Notifier отправляет одно напоминание
type Notifier interface {
	Notify(ctx context.Context, n model.Notification) error
}

// Permission разрешение на показ уведомлений
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Gate пропускает уведомления только после выданного разрешения.
// Без разрешения Notify молча ничего не делает.
type Gate struct {
	mu         sync.RWMutex
	next       Notifier
	permission Permission
	logger     *zap.Logger
}

func NewGate(next Notifier, logger *zap.Logger) *Gate {
	return &Gate{
		next:       next,
		permission: PermissionDefault,
		logger:     logger,
	}
}

// Request запрашивает разрешение: из default переходит в granted, отказ не отменяется
func (g *Gate) Request() Permission {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.permission == PermissionDefault {
		g.permission = PermissionGranted
		g.logger.Info("🔔 Notification permission granted")
	}
	return g.permission
}

// Grant выдаёт разрешение явно
func (g *Gate) Grant() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permission = PermissionGranted
	g.logger.Info("🔔 Notification permission granted")
}

// Deny запрещает уведомления
func (g *Gate) Deny() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permission = PermissionDenied
	g.logger.Info("🔕 Notification permission denied")
}

func (g *Gate) Permission() Permission {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.permission
}

func (g *Gate) Notify(ctx context.Context, n model.Notification) error {
	if g.Permission() != PermissionGranted || g.next == nil {
		return nil
	}
	return g.next.Notify(ctx, n)
}
