package engine

import (
	"context"
	"log/slog"
)

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Notification is the outcome of an operation, as shown in a status line.
type Notification struct {
	Message  string
	Severity Severity

	// Err is set for warnings and errors.
	Err error
}

// Notifier receives operation outcomes.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// LogNotifier writes notifications to a structured logger.
// Info and Success log at Info level, Warning at Warn and Error at Error.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify logs n.
func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelInfo
	switch n.Severity {
	case SeverityWarning:
		level = slog.LevelWarn
	case SeverityError:
		level = slog.LevelError
	}

	attrs := []any{"severity", n.Severity.String()}
	if n.Err != nil {
		attrs = append(attrs, "error", n.Err)
	}
	logger.Log(context.Background(), level, n.Message, attrs...)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}
