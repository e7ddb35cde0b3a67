// Package session tracks live execution scopes keyed by opaque ids.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is a concurrency-safe registry of live sessions. The per-session
// state record is an empty map today, reserved for future context such as
// persisted variable bindings.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]map[string]any
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]map[string]any)}
}

// Open registers a session and returns its id. When hint is empty a fresh
// uuid is generated. Reopening a live id resets its state record.
func (m *Manager) Open(hint string) string {
	id := hint
	if id == "" {
		id = uuid.New().String()
	}
	m.mu.Lock()
	m.sessions[id] = map[string]any{}
	m.mu.Unlock()
	return id
}

// Get returns the state record for a live session.
func (m *Manager) Get(id string) (map[string]any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.sessions[id]
	return state, ok
}

// Close releases a session. Closing an unknown or already-closed id is a
// no-op so release can be retried safely.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll releases every live session.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	m.sessions = make(map[string]map[string]any)
	m.mu.Unlock()
}
