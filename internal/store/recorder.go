package store

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordflash/internal/drill"
)

// Recorder is a drill.Listener that journals each finished run. Write
// failures are logged and otherwise ignored.
type Recorder struct {
	repo    RunRepo
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
	started time.Time
}

// NewRecorder returns a Recorder writing to repo. A nil logger discards.
func NewRecorder(repo RunRepo, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// OnEvent implements drill.Listener.
func (r *Recorder) OnEvent(ev drill.Event) {
	switch ev.Kind {
	case drill.EventCardShown:
		if ev.Position == 1 {
			r.started = r.now()
		}
	case drill.EventDeckComplete:
		if ev.Summary == nil {
			return
		}
		r.record(ev.Summary)
	}
}

func (r *Recorder) record(s *drill.Summary) {
	finished := r.now()
	started := r.started
	if started.IsZero() {
		started = finished
	}
	rec := RunRecord{
		ID:         r.newID(),
		Unit:       s.Unit,
		Review:     s.Review,
		DeckSize:   s.DeckSize,
		Correct:    s.Correct,
		HelpCount:  s.HelpCount,
		Passed:     s.Passed,
		Perfect:    s.Perfect,
		Missed:     slices.Clone(s.HelpList),
		StartedAt:  started,
		FinishedAt: finished,
	}
	r.started = time.Time{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.repo.AppendRun(ctx, rec); err != nil {
		r.logger.Warn("journal run", "unit", s.Unit, "err", err)
		return
	}
	r.logger.Debug("journaled run", "id", rec.ID, "unit", rec.Unit, "passed", rec.Passed)
}
