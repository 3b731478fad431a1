package keyboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/go-telegram/bot/models"
)

// Callback data панели настроек
const (
	ToggleEnabled = "toggle_enabled"
	SetPrefix     = "set:" // set:<option>:<value>
	Noop          = "noop"
)

// SetData собирает callback data для изменения опции
func SetData(option, value string) string {
	return SetPrefix + option + ":" + value
}

// ParseSetData разбирает "set:<option>:<value>"
func ParseSetData(data string) (option, value string, ok bool) {
	rest, found := strings.CutPrefix(data, SetPrefix)
	if !found {
		return "", "", false
	}
	option, value, ok = strings.Cut(rest, ":")
	if !ok || option == "" || value == "" {
		return "", "", false
	}
	return option, value, true
}

// Settings панель настроек: переключатели и варианты интервалов
func Settings(settings model.Settings, enabled bool) *models.InlineKeyboardMarkup {
	b := NewBuilder()

	enabledLabel := "⏸ Highlighting off"
	if enabled {
		enabledLabel = "✅ Highlighting on"
	}
	b.Row(Button(enabledLabel, ToggleEnabled))

	b.Row(Button("🔄 Update every", Noop))
	b.Row(choiceButtons("interval", model.UpdateIntervalChoices, settings.UpdateIntervalSeconds, "s")...)

	b.Row(
		switchButton("Banner", "banner", settings.ShowBanner),
		switchButton("Inline status", "inline", settings.ShowInlineStatus),
	)
	b.Row(
		switchButton("Highlight rows", "highlight", settings.HighlightRows),
		switchButton("Notify", "notify", settings.NotifyBeforeClass),
	)

	b.Row(Button("🔔 Notify before (min)", Noop))
	b.Row(choiceButtons("minutes", model.NotifyMinutesChoices, settings.NotifyMinutes, "")...)

	return b.Build()
}

func switchButton(label, option string, on bool) models.InlineKeyboardButton {
	if on {
		return Button("✅ "+label, SetData(option, "off"))
	}
	return Button("❌ "+label, SetData(option, "on"))
}

func choiceButtons(option string, choices []int, current int, suffix string) []models.InlineKeyboardButton {
	buttons := make([]models.InlineKeyboardButton, 0, len(choices))
	for _, choice := range choices {
		label := strconv.Itoa(choice) + suffix
		if choice == current {
			label = fmt.Sprintf("• %s •", label)
		}
		buttons = append(buttons, Button(label, SetData(option, strconv.Itoa(choice))))
	}
	return buttons
}
