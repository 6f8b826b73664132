package feedback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/wordflash/internal/drill"
)

// effectTimeout bounds a single sound or speech command.
const effectTimeout = 10 * time.Second

// Listener maps drill events to sound cues and narration. Effects run on
// their own goroutines so the engine never waits on them.
type Listener struct {
	player   Player
	narrator Narrator
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// NewListener returns a Listener. Nil collaborators are replaced by Nop and
// a nil logger discards.
func NewListener(player Player, narrator Narrator, logger *slog.Logger) *Listener {
	if player == nil {
		player = Nop{}
	}
	if narrator == nil {
		narrator = Nop{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Listener{player: player, narrator: narrator, logger: logger}
}

// OnEvent implements drill.Listener.
func (l *Listener) OnEvent(ev drill.Event) {
	switch ev.Kind {
	case drill.EventHelpRequested:
		word := ev.Word
		l.spawn("narrate", func(ctx context.Context) error {
			return l.narrator.Say(ctx, word)
		})
	case drill.EventGotIt:
		l.play(CueDing)
	case drill.EventDeckComplete:
		if ev.Summary == nil {
			return
		}
		if ev.Summary.Passed {
			l.play(CueSuccess)
		} else {
			l.play(CueRetry)
		}
	}
}

// Wait blocks until all in-flight effects finish.
func (l *Listener) Wait() {
	l.wg.Wait()
}

func (l *Listener) play(cue Cue) {
	l.spawn("play", func(ctx context.Context) error {
		return l.player.Play(ctx, cue)
	})
}

func (l *Listener) spawn(what string, fn func(context.Context) error) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), effectTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			l.logger.Debug("feedback effect failed", "effect", what, "err", err)
		}
	}()
}
