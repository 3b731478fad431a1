// Package render отображение результата прохода: текст, PNG дня, iCalendar
package render

import (
	"fmt"
	"strings"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/schedule"
)

const (
	allDoneBanner = "✅ All done for today!"
	noClassesText = "No classes today."
	disabledText  = "⏸ Highlighting is off. Use /on to enable."
)

var statusMarkers = map[model.StatusKind]string{
	model.StatusUpcoming: "🔴",
	model.StatusOngoing:  "🟢",
	model.StatusEnded:    "🟠",
}

// Marker значок статуса строки
func Marker(kind model.StatusKind) string {
	return statusMarkers[kind]
}

// RowLine строка отчёта для одного занятия
func RowLine(row model.RowStatus, settings model.Settings) string {
	var sb strings.Builder

	if settings.HighlightRows {
		sb.WriteString(Marker(row.Status.Kind))
		sb.WriteString(" ")
	}
	sb.WriteString(row.Start.Format("15:04"))
	sb.WriteString("-")
	sb.WriteString(row.End.Format("15:04"))
	sb.WriteString(" ")
	sb.WriteString(row.Entry.Course())

	if settings.ShowInlineStatus {
		sb.WriteString(" — ")
		sb.WriteString(row.Status.DisplayText)
	}

	return sb.String()
}

// Banner строка о ближайшем занятии; false, если баннер выключен
func Banner(result model.ScanResult, settings model.Settings) (string, bool) {
	if !settings.ShowBanner {
		return "", false
	}
	if result.Next == nil {
		return allDoneBanner, true
	}

	next := result.Next
	text := fmt.Sprintf("📌 Next: %s in %s", next.Entry.Course(), schedule.FormatDuration(next.Status.Remaining))
	if next.Entry.Location != "" {
		text += " • " + next.Entry.Location
	}
	return text, true
}

// Report полный текстовый отчёт за день
func Report(result model.ScanResult, settings model.Settings) string {
	var lines []string

	lines = append(lines, "📅 "+result.Now.Format("Monday, 02 Jan 2006 15:04"))
	if banner, ok := Banner(result, settings); ok {
		lines = append(lines, banner)
	}
	lines = append(lines, "")

	if len(result.Rows) == 0 {
		lines = append(lines, noClassesText)
	}
	for _, row := range result.Rows {
		lines = append(lines, RowLine(row, settings))
	}

	return strings.Join(lines, "\n")
}

// DisabledReport текст для выключенной подсветки
func DisabledReport() string {
	return disabledText
}
