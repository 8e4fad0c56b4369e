package storage

import (
	"context"

	"github.com/its-jojoo/sharebutton/internal/core"
)

// Store is the append-only list of received shares. It lives as long as the
// process does.
//
// Append assigns ID (count of stored items + 1) and ReceivedAt inside one
// critical section, so concurrent callers always get distinct ids that match
// their position in List.
type Store interface {
	Append(ctx context.Context, item core.SharedItem) (core.SharedItem, error)
	List(ctx context.Context) ([]core.SharedItem, error)
	Close() error
}
