package render

import (
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
	"github.com/Freeeeeet/class_highlighter/internal/schedule"
)

// понедельник 15.01.2024 10:30
var now = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.January, 15, hour, minute, 0, 0, time.UTC)
}

func classRow(index int, label, location string, start, end time.Time) model.RowStatus {
	entry := model.ScheduleEntry{
		RowIndex: index,
		Days:     "Mon/Wed",
		Label:    label,
		Location: location,
	}
	return schedule.RowStatusFor(entry, start, end, now)
}

// dayResult: одно прошедшее, одно идущее и одно предстоящее занятие
func dayResult() model.ScanResult {
	rows := []model.RowStatus{
		classRow(0, "Calculus", "", at(8, 0), at(9, 0)),
		classRow(1, "Algebra\nSection 2", "Room 101", at(10, 0), at(11, 0)),
		classRow(2, "Physics", "Lab B", at(12, 0), at(13, 30)),
	}
	return model.ScanResult{
		Now:     now,
		Today:   "mon",
		Rows:    rows,
		Next:    &rows[2],
		Skipped: 1,
	}
}
