// Package notify delivers short user-facing status messages.
package notify

import (
	"fmt"
	"io"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification is a titled message with a severity.
type Notification struct {
	Severity Severity
	Title    string
	Message  string
}

type Notifier interface {
	Notify(n Notification)
}

// WriterNotifier prints notifications to a writer, one line each.
type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notification Notification) {
	tag := "i"
	switch notification.Severity {
	case SeveritySuccess:
		tag = "+"
	case SeverityError:
		tag = "!"
	}
	fmt.Fprintf(n.w, "[%s] %s: %s\n", tag, notification.Title, notification.Message)
}

// Success, Info and Error are convenience constructors.
func Success(title, message string) Notification {
	return Notification{Severity: SeveritySuccess, Title: title, Message: message}
}

func Info(title, message string) Notification {
	return Notification{Severity: SeverityInfo, Title: title, Message: message}
}

func Error(title, message string) Notification {
	return Notification{Severity: SeverityError, Title: title, Message: message}
}
