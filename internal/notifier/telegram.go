package notifier

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// MessageSender часть *bot.Bot, нужная для отправки
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// Telegram отправляет напоминание в чат
type Telegram struct {
	sender MessageSender
	chatID int64
}

func NewTelegram(sender MessageSender, chatID int64) *Telegram {
	return &Telegram{
		sender: sender,
		chatID: chatID,
	}
}

func (t *Telegram) Notify(ctx context.Context, n model.Notification) error {
	_, err := t.sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   n.Title + "\n\n" + n.Body,
	})
	if err != nil {
		return fmt.Errorf("telegram notify: %w", err)
	}
	return nil
}
