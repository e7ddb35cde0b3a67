// Package storage persists session lifecycle records. Execution output is
// never persisted; only bookkeeping metadata is.
package storage

import (
	"context"
	"time"
)

// SessionStatus represents the lifecycle state of a session record.
type SessionStatus string

const (
	StatusActive   SessionStatus = "active"
	StatusReleased SessionStatus = "released"
)

// Session is the bookkeeping record for one execution scope.
type Session struct {
	ID         string        `json:"id"`
	Status     SessionStatus `json:"status"`
	Executions int           `json:"executions"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// SessionListOptions controls filtering and pagination for ListSessions.
type SessionListOptions struct {
	Status SessionStatus
	Limit  int
	Offset int
}

// Store is the persistence interface for session records.
type Store interface {
	// CreateSession inserts a new record. The ID must be set by the caller.
	CreateSession(ctx context.Context, s *Session) error

	// GetSession returns a record by ID or unambiguous ID prefix.
	GetSession(ctx context.Context, id string) (*Session, error)

	// ListSessions returns records ordered by updated_at descending.
	ListSessions(ctx context.Context, opts SessionListOptions) ([]Session, error)

	// MarkReleased flips a record to released. Unknown ids are a no-op.
	MarkReleased(ctx context.Context, id string) error

	// RecordExecution bumps the execution counter. Unknown ids are a no-op.
	RecordExecution(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
