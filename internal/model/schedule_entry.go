package model

import (
	"strings"
	"time"
)

// Позиции ячеек в строке таблицы расписания
const (
	CellLabel     = 2
	CellLocation  = 5
	CellDays      = 6
	CellStartTime = 7
	CellEndTime   = 8

	// MinRowCells минимальное число ячеек в строке с занятием
	MinRowCells = 9
)

// Row одна строка таблицы в виде текстов ячеек (как innerText)
type Row struct {
	Index int      `json:"index"` // порядковый номер строки без заголовка
	Cells []string `json:"cells"`
}

// TimeOfDay время суток без даты, как оно записано в таблице
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// On привязывает время суток к календарному дню day
// Часы и минуты вне диапазона переносятся так же, как это делает time.Date
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// ScheduleEntry занятие, прочитанное из одной строки таблицы
type ScheduleEntry struct {
	RowIndex  int       `json:"row_index"`
	Days      string    `json:"days"` // текст ячейки с днями недели, например "Mon/Wed/Fri"
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Label     string    `json:"label"` // полный текст ячейки с названием
	Location  string    `json:"location"`
}

// Course возвращает первую строку метки (название курса)
func (e ScheduleEntry) Course() string {
	course, _, _ := strings.Cut(e.Label, "\n")
	return strings.TrimSpace(course)
}
