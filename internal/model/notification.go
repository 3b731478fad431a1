package model

import (
	"fmt"
	"time"
)

// NotificationKey идентифицирует конкретное занятие конкретного дня
type NotificationKey struct {
	Label string
	Start time.Time
}

func (k NotificationKey) String() string {
	return fmt.Sprintf("%s-%d", k.Label, k.Start.UnixMilli())
}

// Notification напоминание для внешнего отправителя
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
