package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/Freeeeeet/class_highlighter/internal/controller/keyboard"
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
	"github.com/Freeeeeet/class_highlighter/internal/render"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const tableUnavailableText = "⚠️ Could not read the class table. Check the logs."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}

	h.logger.Info("Control chat started", zap.Int64("chat_id", update.Message.Chat.ID))

	status := "⏸ Highlighting is off."
	if h.session.Enabled() {
		status = "✅ Highlighting is on."
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText+"\n\n"+status)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleStatus обрабатывает команду /status - полный отчёт за день
func (h *Handlers) HandleStatus(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.session.Enabled() {
		h.sendMessage(ctx, b, chatID, render.DisabledReport())
		return
	}

	result, ok := h.session.Snapshot(ctx)
	if !ok {
		h.sendError(ctx, b, chatID, tableUnavailableText)
		return
	}

	h.sendMessage(ctx, b, chatID, render.Report(result, h.session.Settings()))
}

// HandleNext обрабатывает команду /next - ближайшее занятие
func (h *Handlers) HandleNext(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.session.Enabled() {
		h.sendMessage(ctx, b, chatID, render.DisabledReport())
		return
	}

	result, ok := h.session.Snapshot(ctx)
	if !ok {
		h.sendError(ctx, b, chatID, tableUnavailableText)
		return
	}

	// баннер по запросу показывается всегда
	settings := h.session.Settings()
	settings.ShowBanner = true
	banner, _ := render.Banner(result, settings)
	h.sendMessage(ctx, b, chatID, banner)
}

// HandleOn обрабатывает команду /on
func (h *Handlers) HandleOn(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	h.session.SetEnabled(ctx, true)
	h.sendMessage(ctx, b, update.Message.Chat.ID, enabledText(true))
}

// HandleOff обрабатывает команду /off
func (h *Handlers) HandleOff(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	h.session.SetEnabled(ctx, false)
	h.sendMessage(ctx, b, update.Message.Chat.ID, enabledText(false))
}

// HandleToggle обрабатывает команду /toggle
func (h *Handlers) HandleToggle(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, h.ToggleEnabled(ctx))
}

// HandleSettings обрабатывает команду /settings - панель настроек
func (h *Handlers) HandleSettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	text, markup := h.SettingsView()
	h.sendMessageWithKeyboard(ctx, b, update.Message.Chat.ID, text, markup)
}

// SettingsView текст и клавиатура панели настроек
func (h *Handlers) SettingsView() (string, *models.InlineKeyboardMarkup) {
	settings := h.session.Settings()
	enabled := h.session.Enabled()
	return FormatSettings(settings, enabled, h.gate.Permission()), keyboard.Settings(settings, enabled)
}

// HandleSet обрабатывает команду /set <option> <value>
func (h *Handlers) HandleSet(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	// "/settings" тоже начинается с "/set"
	if command, _, _ := strings.Cut(update.Message.Text, " "); command != "/set" {
		if command == "/settings" {
			h.HandleSettings(ctx, b, update)
		}
		return
	}
	if !h.requireOwner(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	option, value, err := ParseSetArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err)+"\n\n"+setUsage)
		return
	}

	text, err := h.ChangeSetting(ctx, option, value)
	if err != nil {
		h.sendError(ctx, b, chatID, ErrorMessage(err)+"\n\n"+setUsage)
		return
	}
	h.sendMessage(ctx, b, chatID, text)
}

// ChangeSetting применяет и сохраняет одну опцию, возвращает текст подтверждения.
// Включение напоминаний запрашивает разрешение на уведомления.
func (h *Handlers) ChangeSetting(ctx context.Context, option, value string) (string, error) {
	if option == OptionPermission {
		return h.changePermission(value)
	}

	settings, err := ApplySetting(h.session.Settings(), option, value)
	if err != nil {
		h.logger.Info("Rejected setting change", zap.String("option", option), zap.String("value", value), zap.Error(err))
		return "", err
	}

	if err := h.session.SaveSettings(ctx, settings); err != nil {
		h.logger.Error("Failed to save settings", zap.Error(err))
		return "", err
	}

	h.logger.Info("Setting changed", zap.String("option", option), zap.String("value", value))

	text := fmt.Sprintf("✅ %s set to %s", option, value)
	if option == OptionNotify && settings.NotifyBeforeClass {
		if h.gate.Request() != notifier.PermissionGranted {
			text += "\n\n🔕 Notifications are blocked, reminders will not be delivered."
		}
	}
	return text, nil
}

// changePermission выдаёт или отзывает разрешение на уведомления
func (h *Handlers) changePermission(value string) (string, error) {
	on, err := parseSwitch(value)
	if err != nil {
		return "", err
	}

	if on {
		h.gate.Grant()
	} else {
		h.gate.Deny()
	}
	return fmt.Sprintf("✅ permission set to %s", h.gate.Permission()), nil
}

// ToggleEnabled переключает подсветку, возвращает текст подтверждения
func (h *Handlers) ToggleEnabled(ctx context.Context) string {
	return enabledText(h.session.Toggle(ctx))
}

// IsOwner проверяет, что чат принадлежит владельцу
func (h *Handlers) IsOwner(chatID int64) bool {
	return chatID == h.chatID
}

// HandleImage обрабатывает команду /image - картинка дня
func (h *Handlers) HandleImage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.session.Enabled() {
		h.sendMessage(ctx, b, chatID, render.DisabledReport())
		return
	}

	result, ok := h.session.Snapshot(ctx)
	if !ok {
		h.sendError(ctx, b, chatID, tableUnavailableText)
		return
	}

	settings := h.session.Settings()
	imageData, err := render.DayImage(result, settings)
	if err != nil {
		h.logger.Error("Failed to generate day image", zap.Error(err))
		h.sendError(ctx, b, chatID, ErrorMessage(err))
		return
	}

	caption, _ := render.Banner(result, settings)
	h.sendPhoto(ctx, b, chatID, "today.png", imageData, caption)
}

// HandleCalendar обрабатывает команду /calendar - занятия дня в .ics
func (h *Handlers) HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.requireOwner(ctx, b, update) {
		return
	}
	chatID := update.Message.Chat.ID

	if !h.session.Enabled() {
		h.sendMessage(ctx, b, chatID, render.DisabledReport())
		return
	}

	result, ok := h.session.Snapshot(ctx)
	if !ok {
		h.sendError(ctx, b, chatID, tableUnavailableText)
		return
	}

	filename := "classes-" + result.Now.Format("2006-01-02") + ".ics"
	h.sendDocument(ctx, b, chatID, filename, render.Calendar(result), fmt.Sprintf("📅 %d classes today", len(result.Rows)))
}

func enabledText(enabled bool) string {
	if enabled {
		return "✅ Highlighting enabled"
	}
	return "⏸ Highlighting disabled"
}
