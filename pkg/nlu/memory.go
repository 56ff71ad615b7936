// Package nlu parses caller utterances into structured operation intents,
// holding a bounded per-user conversation window so follow-ups resolve
// against recent context. Anything that fails to parse as an operation
// degrades to conversation; the parser never errors a request away.
package nlu

import (
	"sync"
	"time"

	"github.com/specsmith/specsmith/pkg/config"
)

// Turn is one utterance in a conversation window.
type Turn struct {
	Role    string    `json:"role"` // "user" or "assistant"
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// defaultHistorySize bounds windows when no capacity is configured.
const defaultHistorySize = 20

// Window is a bounded conversation buffer: appending beyond capacity evicts
// the oldest turn. Safe for concurrent use.
type Window struct {
	mu       sync.Mutex
	capacity int
	turns    []Turn
}

// NewWindow creates a window holding at most capacity turns.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = defaultHistorySize
	}
	return &Window{capacity: capacity}
}

// Add appends a turn, evicting the oldest when the window is full.
func (w *Window) Add(t Turn) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.turns = append(w.turns, t)
	if len(w.turns) > w.capacity {
		// Shift instead of re-slicing so the evicted turn is collectable.
		copy(w.turns, w.turns[len(w.turns)-w.capacity:])
		w.turns = w.turns[:w.capacity]
	}
}

// Turns returns a copy of the window, oldest first.
func (w *Window) Turns() []Turn {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Turn, len(w.turns))
	copy(out, w.turns)
	return out
}

// Len returns the number of buffered turns.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.turns)
}

// Clear empties the window.
func (w *Window) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.turns = nil
}

// Memory holds one conversation window per user.
type Memory struct {
	mu       sync.RWMutex
	capacity int
	byUser   map[string]*Window
}

// NewMemory creates per-user conversation memory with the configured
// window capacity.
func NewMemory(cfg *config.NLUConfig) *Memory {
	capacity := defaultHistorySize
	if cfg != nil && cfg.HistorySize > 0 {
		capacity = cfg.HistorySize
	}
	return &Memory{capacity: capacity, byUser: make(map[string]*Window)}
}

// Window returns the user's window, creating it on first use.
func (m *Memory) Window(userID string) *Window {
	m.mu.RLock()
	w, ok := m.byUser[userID]
	m.mu.RUnlock()
	if ok {
		return w
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.byUser[userID]; ok {
		return w
	}
	w = NewWindow(m.capacity)
	m.byUser[userID] = w
	return w
}

// Forget drops the user's window entirely.
func (m *Memory) Forget(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byUser, userID)
}
