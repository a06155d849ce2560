// internal/store/memory.go
//
// In-memory puzzle store.
// Generated puzzles are kept with their encoded JSON and .puz bytes so the
// same puzzle can be downloaded again by ID.
//
// Characteristics:
//   - Records keyed by a random UUID assigned on Save.
//   - Concurrency-safe via RWMutex.
//   - Bounded: once full, the oldest record is evicted.
//   - State is lost when the process restarts (the daily archive lives in SQLite).

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/coregames/apps/go-server/internal/crossword"
)

// DefaultCapacity is used when NewMemoryStore gets a non-positive capacity.
const DefaultCapacity = 256

var ErrNotFound = errors.New("store: puzzle not found")

// Record is one stored puzzle.
type Record struct {
	ID         string
	Puzzle     *crossword.Puzzle
	JSON       []byte
	Puz        []byte
	ShareToken string
	CreatedAt  time.Time
}

// Store persists generated puzzles.
type Store interface {
	// Save stores rec, assigning ID and CreatedAt when empty, and returns the ID.
	Save(ctx context.Context, rec *Record) (string, error)

	// Get retrieves a record by ID; ErrNotFound if missing or evicted.
	Get(ctx context.Context, id string) (*Record, error)
}

type memory struct {
	mu       sync.RWMutex
	records  map[string]*Record
	order    []string // insertion order, oldest first
	capacity int
}

// NewMemoryStore constructs an in-memory Store holding at most capacity records.
func NewMemoryStore(capacity int) Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &memory{records: make(map[string]*Record), capacity: capacity}
}

func (m *memory) Save(ctx context.Context, rec *Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[rec.ID]; !exists {
		m.order = append(m.order, rec.ID)
	}
	m.records[rec.ID] = rec
	for len(m.order) > m.capacity {
		delete(m.records, m.order[0])
		m.order = m.order[1:]
	}
	return rec.ID, nil
}

func (m *memory) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.records[id]; ok {
		return rec, nil
	}
	return nil, ErrNotFound
}
