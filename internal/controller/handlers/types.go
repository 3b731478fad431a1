package handlers

import (
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
	"github.com/Freeeeeet/class_highlighter/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	session *service.Session
	gate    *notifier.Gate
	chatID  int64
	logger  *zap.Logger
}

// NewHandlers создаёт новый обработчик команд.
// Команды принимаются только из чата chatID.
func NewHandlers(
	session *service.Session,
	gate *notifier.Gate,
	chatID int64,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		session: session,
		gate:    gate,
		chatID:  chatID,
		logger:  logger,
	}
}
