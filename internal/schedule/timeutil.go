package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

// weekdayTokens индексируются через time.Weekday (0 = Sunday)
var weekdayTokens = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// ParseTimeOfDay разбирает "HH:MM"
// Диапазон не проверяется: "25:00" вернётся как есть
func ParseTimeOfDay(text string) (model.TimeOfDay, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) != 2 {
		return model.TimeOfDay{}, false
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return model.TimeOfDay{}, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return model.TimeOfDay{}, false
	}

	return model.TimeOfDay{Hour: hours, Minute: minutes}, true
}

// WeekdayToken возвращает токен дня недели для момента t в его часовом поясе
func WeekdayToken(t time.Time) string {
	return weekdayTokens[t.Weekday()]
}

// OccursToday проверяет вхождение токена в текст дней без учёта регистра.
// Это поиск подстроки, а не разбор: "Tuesday/Thursday" совпадает с "tue" и "thu".
func OccursToday(daysText, token string) bool {
	if token == "" {
		return false
	}
	return strings.Contains(strings.ToLower(daysText), token)
}

// FormatDuration форматирует модуль длительности в "1h 30m" или "45m"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	totalMinutes := int64(d / time.Minute)
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
