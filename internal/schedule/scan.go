package schedule

import (
	"context"
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

// EntryFromRow читает занятие из строки таблицы.
// Короткая строка или нераспознанное время дают false.
func EntryFromRow(row model.Row) (model.ScheduleEntry, bool) {
	if len(row.Cells) < model.MinRowCells {
		return model.ScheduleEntry{}, false
	}

	start, ok := ParseTimeOfDay(row.Cells[model.CellStartTime])
	if !ok {
		return model.ScheduleEntry{}, false
	}
	end, ok := ParseTimeOfDay(row.Cells[model.CellEndTime])
	if !ok {
		return model.ScheduleEntry{}, false
	}

	return model.ScheduleEntry{
		RowIndex:  row.Index,
		Days:      row.Cells[model.CellDays],
		StartTime: start,
		EndTime:   end,
		Label:     row.Cells[model.CellLabel],
		Location:  row.Cells[model.CellLocation],
	}, true
}

// Scanner выполняет один проход по строкам таблицы
type Scanner struct {
	reminders *Reminders
}

// NewScanner создаёт сканер; reminders может быть nil
func NewScanner(reminders *Reminders) *Scanner {
	return &Scanner{reminders: reminders}
}

// Scan классифицирует строки, которые идут сегодня, и выбирает ближайшее предстоящее.
// Все строки оцениваются относительно одного и того же now.
// При равном времени начала ближайшим считается занятие выше по таблице.
func (s *Scanner) Scan(ctx context.Context, rows []model.Row, now time.Time) (model.ScanResult, int) {
	result := model.ScanResult{
		Now:   now,
		Today: WeekdayToken(now),
	}
	sent := 0

	if s.reminders != nil {
		s.reminders.Prune()
	}

	for _, row := range rows {
		if len(row.Cells) < model.MinRowCells || !OccursToday(row.Cells[model.CellDays], result.Today) {
			result.Skipped++
			continue
		}

		entry, ok := EntryFromRow(row)
		if !ok {
			result.Skipped++
			continue
		}

		start := entry.StartTime.On(now)
		end := entry.EndTime.On(now)
		status := RowStatusFor(entry, start, end, now)

		if s.reminders != nil && s.reminders.Consider(ctx, status, now) {
			sent++
		}

		result.Rows = append(result.Rows, status)
	}

	result.Next = nearestUpcoming(result.Rows)
	return result, sent
}

// RowStatusFor собирает RowStatus для занятия с уже привязанными к дню start/end
func RowStatusFor(entry model.ScheduleEntry, start, end, now time.Time) model.RowStatus {
	return model.RowStatus{
		Entry:  entry,
		Start:  start,
		End:    end,
		Status: Classify(start, end, now),
	}
}

func nearestUpcoming(rows []model.RowStatus) *model.RowStatus {
	var next *model.RowStatus
	for i := range rows {
		if rows[i].Status.Kind != model.StatusUpcoming {
			continue
		}
		if next == nil || rows[i].Start.Before(next.Start) {
			next = &rows[i]
		}
	}
	return next
}
