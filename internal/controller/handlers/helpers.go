package handlers

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/notifier"
)

// ParseSetArgs разбирает "/set <option> <value>"
func ParseSetArgs(text string) (option, value string, err error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return "", "", ErrMissingArguments
	}
	return strings.ToLower(fields[1]), strings.ToLower(fields[2]), nil
}

// ApplySetting возвращает копию настроек с изменённой опцией.
// Числовые опции принимают только значения из панели настроек.
func ApplySetting(settings model.Settings, option, value string) (model.Settings, error) {
	switch option {
	case OptionInterval:
		n, err := parseChoice(value, model.UpdateIntervalChoices)
		if err != nil {
			return settings, err
		}
		settings.UpdateIntervalSeconds = n
	case OptionMinutes:
		n, err := parseChoice(value, model.NotifyMinutesChoices)
		if err != nil {
			return settings, err
		}
		settings.NotifyMinutes = n
	case OptionBanner, OptionInline, OptionHighlight, OptionNotify:
		on, err := parseSwitch(value)
		if err != nil {
			return settings, err
		}
		switch option {
		case OptionBanner:
			settings.ShowBanner = on
		case OptionInline:
			settings.ShowInlineStatus = on
		case OptionHighlight:
			settings.HighlightRows = on
		case OptionNotify:
			settings.NotifyBeforeClass = on
		}
	default:
		return settings, fmt.Errorf("%w: %s", ErrUnknownOption, option)
	}

	return settings, nil
}

func parseChoice(value string, choices []int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || !slices.Contains(choices, n) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidValue, value)
	}
	return n, nil
}

func parseSwitch(value string) (bool, error) {
	switch value {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidValue, value)
	}
}

// FormatSettings текст для /settings
func FormatSettings(settings model.Settings, enabled bool, permission notifier.Permission) string {
	return fmt.Sprintf(
		"⚙️ Settings\n\n"+
			"Highlighting: %s\n"+
			"Update interval: %ds\n"+
			"Banner: %s\n"+
			"Inline status: %s\n"+
			"Row highlight: %s\n"+
			"Notify before class: %s (%d min)\n"+
			"Notification permission: %s",
		onOff(enabled),
		settings.UpdateIntervalSeconds,
		onOff(settings.ShowBanner),
		onOff(settings.ShowInlineStatus),
		onOff(settings.HighlightRows),
		onOff(settings.NotifyBeforeClass),
		settings.NotifyMinutes,
		permission,
	)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
