package domain

import "time"

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
)

// Notification is a user-facing message, the terminal equivalent of a toast.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

func NewNotification(level Level, message string) Notification {
	return Notification{Level: level, Message: message, At: time.Now()}
}
