package callbacks

import (
	"context"

	"github.com/Freeeeeet/class_highlighter/internal/controller/handlers"
	"github.com/Freeeeeet/class_highlighter/internal/controller/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// route выполняет действие кнопки и перерисовывает панель
func (h *Handler) route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, msg *models.Message) {
	data := callback.Data

	switch {
	case data == keyboard.Noop:
		answerCallback(ctx, b, callback.ID, "")
		return

	case data == keyboard.ToggleEnabled:
		answerCallback(ctx, b, callback.ID, h.commands.ToggleEnabled(ctx))

	default:
		option, value, ok := keyboard.ParseSetData(data)
		if !ok {
			h.logger.Warn("Unknown callback data", zap.String("data", data))
			answerCallbackAlert(ctx, b, callback.ID, "❌ Unknown action")
			return
		}

		text, err := h.commands.ChangeSetting(ctx, option, value)
		if err != nil {
			answerCallbackAlert(ctx, b, callback.ID, handlers.ErrorMessage(err))
			return
		}
		answerCallback(ctx, b, callback.ID, text)
	}

	h.refreshPanel(ctx, b, msg)
}

// refreshPanel обновляет текст и кнопки сообщения с панелью
func (h *Handler) refreshPanel(ctx context.Context, b *bot.Bot, msg *models.Message) {
	text, markup := h.commands.SettingsView()

	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ReplyMarkup: markup,
	})
	if err != nil {
		h.logger.Warn("Failed to refresh settings panel",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Int("message_id", msg.ID),
			zap.Error(err),
		)
	}
}

// answerCallback отвечает на callback query всплывающей подсказкой
func answerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// answerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func answerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}
