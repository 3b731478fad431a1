package notifier

import (
	"context"
	"errors"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

// Multi рассылает напоминание во все каналы; ошибки каналов объединяются
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n model.Notification) error {
	var errs []error
	for _, next := range m {
		if err := next.Notify(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
