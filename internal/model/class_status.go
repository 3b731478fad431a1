package model

import "time"

type StatusKind string

const (
	StatusUpcoming StatusKind = "upcoming"
	StatusOngoing  StatusKind = "ongoing"
	StatusEnded    StatusKind = "ended"
)

// ClassStatus состояние занятия относительно текущего момента
type ClassStatus struct {
	Kind StatusKind `json:"kind"`
	// Remaining до начала (upcoming), до конца (ongoing) или прошло с конца (ended)
	Remaining   time.Duration `json:"remaining"`
	DisplayText string        `json:"display_text"`
}

// RowStatus классифицированная строка расписания
type RowStatus struct {
	Entry  ScheduleEntry `json:"entry"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status ClassStatus   `json:"status"`
}

// ScanResult результат одного прохода по таблице
type ScanResult struct {
	Now   time.Time   `json:"now"`
	Today string      `json:"today"` // токен дня недели: sun, mon, ...
	Rows  []RowStatus `json:"rows"`
	Next  *RowStatus  `json:"next"` // ближайшее предстоящее занятие, nil если таких нет
	// Skipped число строк, не прошедших фильтр (не сегодня, битое время, короткая строка)
	Skipped int `json:"skipped"`
}

// Count возвращает число строк с указанным статусом
func (r ScanResult) Count(kind StatusKind) int {
	n := 0
	for _, row := range r.Rows {
		if row.Status.Kind == kind {
			n++
		}
	}
	return n
}
