package memory

import (
	"context"
	"sync"
	"time"

	"github.com/its-jojoo/sharebutton/internal/core"
)

type Store struct {
	mu    sync.RWMutex
	now   func() time.Time
	items []core.SharedItem // insertion order
}

func New() *Store {
	return &Store{now: time.Now}
}

// WithClock replaces the time source used for ReceivedAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Append(ctx context.Context, item core.SharedItem) (core.SharedItem, error) {
	if err := ctx.Err(); err != nil {
		return core.SharedItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = len(s.items) + 1
	item.ReceivedAt = core.FormatLocal(s.now())
	s.items = append(s.items, item)
	return item, nil
}

func (s *Store) List(_ context.Context) ([]core.SharedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.SharedItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Close() error { return nil }
