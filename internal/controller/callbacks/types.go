package callbacks

import (
	"context"

	"github.com/Freeeeeet/class_highlighter/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler обрабатывает нажатия на кнопки панели настроек
type Handler struct {
	commands *handlers.Handlers
	logger   *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks поверх обработчиков команд
func NewHandler(commands *handlers.Handlers, logger *zap.Logger) *Handler {
	return &Handler{
		commands: commands,
		logger:   logger,
	}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.logger.Info("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	msg := callback.Message.Message
	if msg == nil || !h.commands.IsOwner(msg.Chat.ID) {
		answerCallbackAlert(ctx, b, callback.ID, "⛔ This bot is private.")
		return
	}

	h.route(ctx, b, callback, msg)
}
