package store

import (
	"context"
	"time"
)

// RunRecord is one completed drill run.
type RunRecord struct {
	ID         string
	Sequence   int64
	Unit       int
	Review     bool
	DeckSize   int
	Correct    int
	HelpCount  int
	Passed     bool
	Perfect    bool
	Missed     []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the run took.
func (r RunRecord) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// UnitStats aggregates the journal for one unit.
type UnitStats struct {
	Unit       int
	Runs       int
	Passes     int
	Perfects   int
	Reviews    int
	LastPlayed time.Time
}

// RunRepo records finished runs. It is a journal only; nothing in it is
// used to resume a run.
type RunRepo interface {
	// AppendRun stores a finished run. A zero Sequence is assigned.
	AppendRun(ctx context.Context, rec RunRecord) error

	// RecentRuns returns up to limit runs, newest first. limit <= 0 means all.
	RecentRuns(ctx context.Context, limit int) ([]RunRecord, error)

	// UnitRuns returns the runs of one unit, newest first.
	UnitRuns(ctx context.Context, unit, limit int) ([]RunRecord, error)

	// Stats returns per-unit aggregates ordered by unit id.
	Stats(ctx context.Context) ([]UnitStats, error)

	// Reset deletes every run and LLM request and returns the number of runs removed.
	Reset(ctx context.Context) (int64, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ModelUsage aggregates logged LLM requests for one provider and model.
type ModelUsage struct {
	Provider     string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMUsage returns per-model totals ordered by provider and model.
	LLMUsage(ctx context.Context) ([]ModelUsage, error)
}
