package controller

import (
	"context"

	"github.com/Freeeeeet/class_highlighter/internal/controller/callbacks"
	"github.com/Freeeeeet/class_highlighter/internal/controller/handlers"
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
	"github.com/Freeeeeet/class_highlighter/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	session *service.Session,
	gate *notifier.Gate,
	chatID int64,
	logger *zap.Logger,
) *BotController {
	// Создаём обработчики команд
	cmdHandlers := handlers.NewHandlers(session, gate, chatID, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbacks.NewHandler(cmdHandlers, logger),
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/status", bot.MatchTypeExact, c.handlers.HandleStatus)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/next", bot.MatchTypeExact, c.handlers.HandleNext)

	// Включение и выключение
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/on", bot.MatchTypeExact, c.handlers.HandleOn)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/off", bot.MatchTypeExact, c.handlers.HandleOff)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/toggle", bot.MatchTypeExact, c.handlers.HandleToggle)

	// Настройки
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/settings", bot.MatchTypeExact, c.handlers.HandleSettings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/set", bot.MatchTypePrefix, c.handlers.HandleSet)

	// Выгрузки
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/image", bot.MatchTypeExact, c.handlers.HandleImage)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/calendar", bot.MatchTypeExact, c.handlers.HandleCalendar)

	// Обработчик нажатий на кнопки панели настроек
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "status", Description: "📋 Today's classes"},
		{Command: "next", Description: "📌 Next class"},
		{Command: "toggle", Description: "🔁 Toggle highlighting"},
		{Command: "on", Description: "✅ Enable highlighting"},
		{Command: "off", Description: "⏸ Disable highlighting"},
		{Command: "settings", Description: "⚙️ Current settings"},
		{Command: "image", Description: "🖼 Today as a picture"},
		{Command: "calendar", Description: "📅 Today as .ics"},
		{Command: "help", Description: "❓ Help"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
