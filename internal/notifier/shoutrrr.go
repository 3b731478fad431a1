package notifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/Freeeeeet/class_highlighter/internal/model"
)

// shoutrrrSender часть *router.ServiceRouter, нужная для отправки
type shoutrrrSender interface {
	Send(message string, params *stypes.Params) []error
}

// Shoutrrr отправляет напоминание во все сервисы из списка URL
type Shoutrrr struct {
	sender shoutrrrSender
}

// NewShoutrrr создаёт одного отправителя на все URL
func NewShoutrrr(urls []string, timeout time.Duration) (*Shoutrrr, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one shoutrrr URL is required")
	}

	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("create shoutrrr sender: %w", err)
	}
	if timeout > 0 {
		sender.Timeout = timeout
	}
	sender.SetLogger(log.New(io.Discard, "", 0))

	return &Shoutrrr{sender: sender}, nil
}

func (s *Shoutrrr) Notify(_ context.Context, n model.Notification) error {
	params := stypes.Params{}
	if n.Title != "" {
		params.SetTitle(n.Title)
	}

	var errs []error
	for _, err := range s.sender.Send(n.Body, &params) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("shoutrrr notify: %w", errors.Join(errs...))
	}
	return nil
}
