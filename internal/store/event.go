package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequencer hands out the store-wide sequence number. Attempts, results,
// wrong answers and LLM requests each live in their own table, so only this
// counter orders them against each other; a snapshot records the last
// value issued when it was taken.
type sequencer struct {
	mu sync.Mutex
	db *sql.DB
}

// Next returns the next sequence number. The read and the increment share
// a transaction so two processes on one file never get the same value.
func (s *sequencer) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer tx.Rollback()

	next, err := readSequence(ctx, tx)
	if err != nil {
		return 0, err
	}
	query, args := builder().Update(tableSequence).
		Set("next_val", next+1).
		Where(entsql.EQ("id", 1)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit sequence: %w", err)
	}
	return next, nil
}

// Current returns the last sequence number issued, or 0 before the first.
func (s *sequencer) Current(ctx context.Context) (int64, error) {
	next, err := readSequence(ctx, s.db)
	if err != nil {
		return 0, err
	}
	return next - 1, nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readSequence(ctx context.Context, q rowQuerier) (int64, error) {
	query, args := builder().Select("next_val").
		From(entsql.Table(tableSequence)).
		Where(entsql.EQ("id", 1)).
		Query()
	var next int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("read sequence: %w", err)
	}
	return next, nil
}
