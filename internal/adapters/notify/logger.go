// Package notify delivers user notices.
package notify

import (
	"context"

	"go.trai.ch/kin/internal/core/ports"
)

// LogNotifier shows notices as warnings in the log.
type LogNotifier struct {
	log ports.Logger
}

// NewLogNotifier creates a LogNotifier writing to log.
func NewLogNotifier(log ports.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

var _ ports.Notifier = (*LogNotifier)(nil)

// Notify logs msg as a warning.
func (n *LogNotifier) Notify(_ context.Context, msg string) {
	n.log.Warn(msg)
}
