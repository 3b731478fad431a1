package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   model.TimeOfDay
		wantOK bool
	}{
		{name: "regular", input: "14:00", want: model.TimeOfDay{Hour: 14, Minute: 0}, wantOK: true},
		{name: "surrounding spaces", input: "  9:05 ", want: model.TimeOfDay{Hour: 9, Minute: 5}, wantOK: true},
		{name: "hour out of range is kept", input: "25:00", want: model.TimeOfDay{Hour: 25, Minute: 0}, wantOK: true},
		{name: "non numeric hour", input: "ab:00", wantOK: false},
		{name: "non numeric minute", input: "14:xx", wantOK: false},
		{name: "missing minute", input: "14", wantOK: false},
		{name: "seconds are not expected", input: "14:00:00", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "empty minute", input: "14:", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTimeOfDayOn_OverflowRollsToNextDay(t *testing.T) {
	day := time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)

	got := model.TimeOfDay{Hour: 25, Minute: 0}.On(day)

	assert.Equal(t, time.Date(2024, 1, 16, 1, 0, 0, 0, time.UTC), got)
}

func TestWeekdayToken(t *testing.T) {
	// 2024-01-14 воскресенье
	sunday := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	want := []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

	for i, token := range want {
		assert.Equal(t, token, WeekdayToken(sunday.AddDate(0, 0, i)))
	}
}

func TestOccursToday(t *testing.T) {
	assert.True(t, OccursToday("Mon/Wed/Fri", "wed"))
	assert.True(t, OccursToday("Tuesday/Thursday", "tue"))
	assert.True(t, OccursToday("Tuesday/Thursday", "thu"))
	assert.True(t, OccursToday("MON", "mon"))
	assert.False(t, OccursToday("", "mon"))
	assert.False(t, OccursToday("Mon/Wed/Fri", "tue"))
	assert.False(t, OccursToday("Mon", ""))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{5 * time.Minute, "5m"},
		{59*time.Minute + 59*time.Second, "59m"},
		{60 * time.Minute, "1h 0m"},
		{90 * time.Minute, "1h 30m"},
		{-90 * time.Minute, "1h 30m"},
		{25*time.Hour + 1*time.Minute, "25h 1m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.input), "FormatDuration(%v)", tt.input)
	}
}

func TestFormatDuration_SignSymmetric(t *testing.T) {
	for _, d := range []time.Duration{
		1, 999 * time.Millisecond, 90 * time.Second, 61 * time.Minute, 7*time.Hour + 13*time.Second,
	} {
		assert.Equal(t, FormatDuration(d), FormatDuration(-d), "duration %v", d)
	}
}
