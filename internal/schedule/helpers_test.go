package schedule

import (
	"context"
	"errors"
	"sync"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []model.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg model.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

var errDeliveryFailed = errors.New("delivery failed")

// tableRow строит строку из 9 ячеек в порядке колонок страницы
func tableRow(index int, label, location, days, start, end string) model.Row {
	return model.Row{
		Index: index,
		Cells: []string{"CRN", "SEC", label, "3", "Lecture", location, days, start, end},
	}
}
