package render

import (
	"testing"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRowLine(t *testing.T) {
	result := dayResult()
	settings := model.DefaultSettings()

	assert.Equal(t, "🟠 08:00-09:00 Calculus — Ended 1h 30m ago", RowLine(result.Rows[0], settings))
	assert.Equal(t, "🟢 10:00-11:00 Algebra — In Progress • 30m remaining", RowLine(result.Rows[1], settings))
	assert.Equal(t, "🔴 12:00-13:30 Physics — Starts in 1h 30m", RowLine(result.Rows[2], settings))
}

func TestRowLine_FlagsOff(t *testing.T) {
	row := dayResult().Rows[2]

	settings := model.DefaultSettings()
	settings.HighlightRows = false
	assert.Equal(t, "12:00-13:30 Physics — Starts in 1h 30m", RowLine(row, settings))

	settings.ShowInlineStatus = false
	assert.Equal(t, "12:00-13:30 Physics", RowLine(row, settings))
}

func TestBanner(t *testing.T) {
	settings := model.DefaultSettings()

	t.Run("next class with location", func(t *testing.T) {
		banner, ok := Banner(dayResult(), settings)
		assert.True(t, ok)
		assert.Equal(t, "📌 Next: Physics in 1h 30m • Lab B", banner)
	})

	t.Run("next class without location", func(t *testing.T) {
		result := dayResult()
		result.Next.Entry.Location = ""
		banner, _ := Banner(result, settings)
		assert.Equal(t, "📌 Next: Physics in 1h 30m", banner)
	})

	t.Run("all done", func(t *testing.T) {
		result := dayResult()
		result.Next = nil
		banner, ok := Banner(result, settings)
		assert.True(t, ok)
		assert.Equal(t, "✅ All done for today!", banner)
	})

	t.Run("banner off", func(t *testing.T) {
		off := settings
		off.ShowBanner = false
		banner, ok := Banner(dayResult(), off)
		assert.False(t, ok)
		assert.Empty(t, banner)
	})
}

func TestReport(t *testing.T) {
	report := Report(dayResult(), model.DefaultSettings())

	expected := "📅 Monday, 15 Jan 2024 10:30\n" +
		"📌 Next: Physics in 1h 30m • Lab B\n" +
		"\n" +
		"🟠 08:00-09:00 Calculus — Ended 1h 30m ago\n" +
		"🟢 10:00-11:00 Algebra — In Progress • 30m remaining\n" +
		"🔴 12:00-13:30 Physics — Starts in 1h 30m"
	assert.Equal(t, expected, report)
}

func TestReport_NoClasses(t *testing.T) {
	result := model.ScanResult{Now: now, Today: "mon"}
	settings := model.DefaultSettings()
	settings.ShowBanner = false

	assert.Equal(t, "📅 Monday, 15 Jan 2024 10:30\n\nNo classes today.", Report(result, settings))
}
