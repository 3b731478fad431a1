package schedule

import (
	"time"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

// Classify определяет статус занятия [start, end] в момент now.
// Начало занятия уже считается ongoing, конец ещё считается ongoing.
func Classify(start, end, now time.Time) model.ClassStatus {
	switch {
	case now.Before(start):
		remaining := start.Sub(now)
		return model.ClassStatus{
			Kind:        model.StatusUpcoming,
			Remaining:   remaining,
			DisplayText: "Starts in " + FormatDuration(remaining),
		}
	case !now.After(end):
		remaining := end.Sub(now)
		return model.ClassStatus{
			Kind:        model.StatusOngoing,
			Remaining:   remaining,
			DisplayText: "In Progress • " + FormatDuration(remaining) + " remaining",
		}
	default:
		elapsed := now.Sub(end)
		return model.ClassStatus{
			Kind:        model.StatusEnded,
			Remaining:   elapsed,
			DisplayText: "Ended " + FormatDuration(elapsed) + " ago",
		}
	}
}
