package ports

import "context"

// Notifier reports a recoverable condition to the person using the diagram.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Notify(ctx context.Context, msg string)
}
