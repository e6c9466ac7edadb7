package database

import (
	"context"
	"fmt"
)

// IDAllocator hands out new entity identifiers. Repositories depend on this
// abstraction instead of reaching for a sequence themselves, so tests can
// substitute a counter.
type IDAllocator interface {
	Next(ctx context.Context, sequence string) (int64, error)
}

// SequenceAllocator allocates identifiers from a PostgreSQL sequence.
// Sequence allocation is non-transactional on the server side, so the
// allocator runs on the pool even when the caller is inside a transaction.
type SequenceAllocator struct {
	db *PostgresDB
}

func NewSequenceAllocator(db *PostgresDB) *SequenceAllocator {
	return &SequenceAllocator{db: db}
}

func (a *SequenceAllocator) Next(ctx context.Context, sequence string) (int64, error) {
	var id int64
	if err := a.db.Pool.QueryRow(ctx, "SELECT nextval($1)", sequence).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to allocate id from %s: %w", sequence, err)
	}
	return id, nil
}
