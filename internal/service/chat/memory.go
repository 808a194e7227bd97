package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tuhina-chat/backend/internal/model/chat"
)

// Memory holds the single in-process conversation: an append-only, ordered
// turn sequence that lives and dies with the process. An optional limit
// bounds growth by keeping only the most recent turns.
type Memory struct {
	mu    sync.RWMutex
	limit int
	turns []chat.Turn
}

// NewMemory creates an empty conversation memory. limit is the maximum
// number of retained turns; zero means unbounded.
func NewMemory(limit int) *Memory {
	if limit < 0 {
		limit = 0
	}
	return &Memory{limit: limit, turns: make([]chat.Turn, 0, 16)}
}

// Append adds a single turn to the end of the conversation.
func (m *Memory) Append(turn chat.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(turn)
}

// AppendExchange commits a user turn and its paired agent turn under one
// lock, so concurrent exchanges can never interleave a pair.
func (m *Memory) AppendExchange(user, agent chat.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(user)
	m.push(agent)
}

// Snapshot returns a copy of all turns appended so far.
func (m *Memory) Snapshot() []chat.Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]chat.Turn, len(m.turns))
	copy(copied, m.turns)
	return copied
}

// Len reports the current number of turns.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}

// push stamps and stores a turn; callers must hold the write lock.
func (m *Memory) push(turn chat.Turn) {
	turn.ID = uuid.NewString()
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	m.turns = append(m.turns, turn)
	if m.limit > 0 && len(m.turns) > m.limit {
		m.turns = m.turns[len(m.turns)-m.limit:]
	}
}
