// Package notify announces finished benchmark runs so long unattended or
// scheduled runs do not require watching the console.
package notify

import (
	"github.com/dustin/go-humanize"

	"github.com/GautierTechnology/devops-cpu-stress-2025Q1-native-cli/internal/domain"
)

// Notification describes a finished run.
type Notification struct {
	Title   string
	Message string
}

// ForSummary builds the run-completion notification.
func ForSummary(s *domain.RunSummary) Notification {
	return Notification{
		Title: "Iteration test complete",
		Message: humanize.Comma(int64(s.Average())) + " operations per second across " +
			humanize.Comma(int64(s.Cycles)) + " cycles",
	}
}

// Notifier is the interface for sending notifications
type Notifier interface {
	Send(n Notification) error
}

// MultiNotifier sends to multiple notifiers
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a notifier that sends to all provided notifiers
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{notifiers: notifiers}
}

// Send sends the notification to all notifiers
func (m *MultiNotifier) Send(n Notification) error {
	var lastErr error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(n); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// NoopNotifier does nothing (for testing or disabled notifications)
type NoopNotifier struct{}

func (NoopNotifier) Send(n Notification) error { return nil }
