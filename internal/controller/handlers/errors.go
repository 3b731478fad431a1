package handlers

import "errors"

// Ошибки разбора команды /set
var (
	ErrMissingArguments = errors.New("missing option or value")
	ErrUnknownOption    = errors.New("unknown option")
	ErrInvalidValue     = errors.New("invalid value")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingArguments):
		return "❌ Missing option or value."
	case errors.Is(err, ErrUnknownOption):
		return "❌ Unknown option."
	case errors.Is(err, ErrInvalidValue):
		return "❌ Invalid value."
	default:
		return "❌ Something went wrong. Try again later."
	}
}
