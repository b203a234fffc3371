package eventlogs

import (
	"context"
	"errors"

	"printer-report/internal/models"
)

var (
	ErrSourceNotFound = errors.New("event log source not found")
)

// EventSource opens the System event log of one print server. Readers return events newest first.
//
//go:generate mockgen -source=event_source.go -destination=./mocks/event_source_mock.go -package=mocks
type EventSource interface {
	Open(ctx context.Context, server string) (EventReader, error)
}

// EventReader streams events from one opened log. Next returns io.EOF once the log is exhausted.
// Close may be called before exhaustion to abandon the rest of the log.
type EventReader interface {
	Next(ctx context.Context) (*models.Event, error)
	Close() error
}

// isLocal reports whether server names the machine the report runs on.
func isLocal(server string) bool {
	switch server {
	case "", "localhost", ".", "127.0.0.1", "::1":
		return true
	}
	return false
}
