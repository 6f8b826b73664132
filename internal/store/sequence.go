package store

import (
	"context"
	"fmt"
	"sync"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const seqTable = "journal_seq"

// sequenceCounter numbers journal rows. Runs and LLM requests draw from the
// same counter so history can be merged by seq.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(seqTable).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed %s: %w", seqTable, err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next returns the current value and advances the counter.
func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query, args := entsql.Dialect(dialect.SQLite).
		Update(seqTable).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()

	var rows entsql.Rows
	if err := c.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%s row missing", seqTable)
	}
	var next int64
	if err := rows.Scan(&next); err != nil {
		return 0, err
	}
	return next - 1, rows.Err()
}
