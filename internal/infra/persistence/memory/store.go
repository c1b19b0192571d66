// Package memory keeps players and saves in process. It enforces the same keys and
// constraints as the postgres schema and backs local runs and end-to-end tests.
package memory

import (
	"strings"
	"sync"

	"gameapi/internal/domain/entity"
)

// Store holds every table of the in-memory driver.
type Store struct {
	mu      sync.RWMutex
	txMu    sync.Mutex
	players map[string]*entity.Player
	saves   map[string]*entity.SaveDocument
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		players: make(map[string]*entity.Player),
		saves:   make(map[string]*entity.SaveDocument),
	}
}

// undoLog records how to revert the writes made inside a transaction.
type undoLog struct {
	steps []func()
}

func (u *undoLog) record(step func()) {
	if u != nil {
		u.steps = append(u.steps, step)
	}
}

func (u *undoLog) rollback() {
	for i := len(u.steps) - 1; i >= 0; i-- {
		u.steps[i]()
	}
	u.steps = nil
}

func sameFold(a string, b *string) bool {
	return b != nil && strings.EqualFold(a, *b)
}

func copyPlayer(p *entity.Player) *entity.Player {
	cp := *p
	if p.Email != nil {
		email := *p.Email
		cp.Email = &email
	}

	return &cp
}

func copySave(s *entity.SaveDocument) *entity.SaveDocument {
	cp := *s

	return &cp
}
