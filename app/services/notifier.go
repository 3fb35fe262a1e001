package services

import "log"

// Level classifies a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Notifier presents short title+message pairs to the user. It replaces the
// source app's ambient toast context with an explicit collaborator so the
// synchronizer can be tested without any UI.
type Notifier interface {
	Notify(title, message string, level Level)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string, level Level) {
	log.Printf("[%s] %s: %s", level, title, message)
}
