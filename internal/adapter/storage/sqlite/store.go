package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/its-jojoo/sharebutton/internal/core"
)

// MemoryDSN opens a private in-memory database. Its contents are gone once
// the last connection closes.
const MemoryDSN = ":memory:"

// Store keeps shares in SQLite. Opened on MemoryDSN it has the same
// process-lifetime semantics as the memory store, with SQL underneath.
type Store struct {
	db  *sql.DB
	now func() time.Time

	// serializes count-then-insert so ids stay dense and unique
	mu sync.Mutex
}

// OpenMemory opens a fresh in-memory store.
func OpenMemory() (*Store, error) {
	return Open(MemoryDSN)
}

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	// Every connection to :memory: is its own database; pin exactly one and
	// never let it expire.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// WithClock replaces the time source used for ReceivedAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS shares (
  id          INTEGER PRIMARY KEY,
  content     TEXT NOT NULL,
  type        TEXT,
  timestamp   TEXT,
  received_at TEXT NOT NULL
);
`)
	return errors.Wrap(err, "migrate sqlite")
}

func (s *Store) Append(ctx context.Context, item core.SharedItem) (core.SharedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.SharedItem{}, errors.Wrap(err, "begin append")
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM shares`).Scan(&n); err != nil {
		return core.SharedItem{}, errors.Wrap(err, "count shares")
	}

	item.ID = n + 1
	item.ReceivedAt = core.FormatLocal(s.now())

	_, err = tx.ExecContext(ctx, `
INSERT INTO shares(id, content, type, timestamp, received_at)
VALUES(?, ?, ?, ?, ?)
`, item.ID, item.Content, rawToNull(item.Type), rawToNull(item.Timestamp), item.ReceivedAt)
	if err != nil {
		return core.SharedItem{}, errors.Wrap(err, "insert share")
	}

	if err := tx.Commit(); err != nil {
		return core.SharedItem{}, errors.Wrap(err, "commit append")
	}
	return item, nil
}

func (s *Store) List(ctx context.Context) ([]core.SharedItem, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, content, type, timestamp, received_at
FROM shares
ORDER BY id ASC
`)
	if err != nil {
		return nil, errors.Wrap(err, "list shares")
	}
	defer rows.Close()

	out := make([]core.SharedItem, 0)
	for rows.Next() {
		var it core.SharedItem
		var typ, ts sql.NullString

		if err := rows.Scan(&it.ID, &it.Content, &typ, &ts, &it.ReceivedAt); err != nil {
			return nil, errors.Wrap(err, "scan share")
		}
		if typ.Valid {
			it.Type = json.RawMessage(typ.String)
		}
		if ts.Valid {
			it.Timestamp = json.RawMessage(ts.String)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// rawToNull stores a client-supplied value as its JSON text; JSON null and
// absent both become SQL NULL.
func rawToNull(raw json.RawMessage) sql.NullString {
	if len(raw) == 0 || string(raw) == "null" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}
