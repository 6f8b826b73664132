package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var runColumns = []string{
	"id", "seq", "unit", "review", "deck_size", "correct", "help_count",
	"passed", "perfect", "missed", "started_at", "finished_at",
}

// runRepo implements RunRepo with ent's SQL builder.
type runRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *runRepo) AppendRun(ctx context.Context, rec RunRecord) error {
	if rec.Sequence == 0 {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		rec.Sequence = seqNum
	}

	missed := rec.Missed
	if missed == nil {
		missed = []string{}
	}
	missedJSON, err := json.Marshal(missed)
	if err != nil {
		return fmt.Errorf("marshal missed words: %w", err)
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(runsTable).
		Columns(runColumns...).
		Values(
			rec.ID, rec.Sequence, rec.Unit, rec.Review, rec.DeckSize, rec.Correct,
			rec.HelpCount, rec.Passed, rec.Perfect, string(missedJSON),
			formatTime(rec.StartedAt), formatTime(rec.FinishedAt),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *runRepo) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	return r.selectRuns(ctx, nil, limit)
}

func (r *runRepo) UnitRuns(ctx context.Context, unit, limit int) ([]RunRecord, error) {
	return r.selectRuns(ctx, entsql.EQ("unit", unit), limit)
}

func (r *runRepo) selectRuns(ctx context.Context, where *entsql.Predicate, limit int) ([]RunRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(runColumns...).
		From(b.Table(runsTable)).
		OrderBy(entsql.Desc("seq"))
	if where != nil {
		sel = sel.Where(where)
	}
	if limit > 0 {
		sel = sel.Limit(limit)
	}

	query, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			rec               RunRecord
			missed            string
			started, finished string
		)
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.Unit, &rec.Review, &rec.DeckSize, &rec.Correct,
			&rec.HelpCount, &rec.Passed, &rec.Perfect, &missed, &started, &finished,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(missed), &rec.Missed); err != nil {
			return nil, fmt.Errorf("unmarshal missed words for run %s: %w", rec.ID, err)
		}
		var err error
		if rec.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if rec.FinishedAt, err = parseTime(finished); err != nil {
			return nil, err
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (r *runRepo) Stats(ctx context.Context) ([]UnitStats, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(
		"unit",
		entsql.As(entsql.Count("*"), "runs"),
		entsql.As(entsql.Sum("passed"), "passes"),
		entsql.As(entsql.Sum("perfect"), "perfects"),
		entsql.As(entsql.Sum("review"), "reviews"),
		entsql.As(entsql.Max("finished_at"), "last_played"),
	).
		From(b.Table(runsTable)).
		GroupBy("unit").
		OrderBy("unit").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var stats []UnitStats
	for rows.Next() {
		var (
			st   UnitStats
			last string
		)
		if err := rows.Scan(&st.Unit, &st.Runs, &st.Passes, &st.Perfects, &st.Reviews, &last); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		var err error
		if st.LastPlayed, err = parseTime(last); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}
	return stats, nil
}

func (r *runRepo) Reset(ctx context.Context) (int64, error) {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin reset: %w", err)
	}

	b := entsql.Dialect(dialect.SQLite)
	var res sql.Result
	query, args := b.Delete(runsTable).Query()
	if err := tx.Exec(ctx, query, args, &res); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete runs: %w", err)
	}
	query, args = b.Delete(llmRequestsTable).Query()
	if err := tx.Exec(ctx, query, args, nil); err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("delete llm requests: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
