// Package feedback plays sound cues and speaks words in response to drill
// events. Every effect is best effort: failures are logged, never returned
// to the learner.
package feedback

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Cue identifies a feedback sound.
type Cue int

const (
	CueDing    Cue = iota // a card was marked got-it
	CueSuccess            // the run passed
	CueRetry              // the run failed
)

// File returns the sound file name for the cue.
func (c Cue) File() string {
	switch c {
	case CueDing:
		return "ding.mp3"
	case CueSuccess:
		return "mario.mp3"
	case CueRetry:
		return "hold-on.mp3"
	default:
		return ""
	}
}

func (c Cue) String() string {
	switch c {
	case CueDing:
		return "ding"
	case CueSuccess:
		return "success"
	case CueRetry:
		return "retry"
	default:
		return fmt.Sprintf("Cue(%d)", int(c))
	}
}

// Player plays sound cues.
type Player interface {
	Play(ctx context.Context, cue Cue) error
}

// Narrator speaks a word aloud.
type Narrator interface {
	Say(ctx context.Context, word string) error
}

// Nop is a Player and Narrator that does nothing.
type Nop struct{}

func (Nop) Play(context.Context, Cue) error   { return nil }
func (Nop) Say(context.Context, string) error { return nil }

// runFunc runs an external command to completion.
type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// ExecPlayer plays cue files from a directory with an external player
// command such as "afplay" or "paplay".
type ExecPlayer struct {
	dir     string
	command []string
	run     runFunc
}

// NewPlayer returns an ExecPlayer, or Nop when either dir or command is empty.
func NewPlayer(dir, command string) Player {
	fields := strings.Fields(command)
	if dir == "" || len(fields) == 0 {
		return Nop{}
	}
	return &ExecPlayer{dir: dir, command: fields, run: runCommand}
}

func (p *ExecPlayer) Play(ctx context.Context, cue Cue) error {
	file := cue.File()
	if file == "" {
		return fmt.Errorf("unknown cue %v", cue)
	}
	args := append(p.command[1:len(p.command):len(p.command)], filepath.Join(p.dir, file))
	if err := p.run(ctx, p.command[0], args...); err != nil {
		return fmt.Errorf("play %s: %w", cue, err)
	}
	return nil
}

// ExecNarrator speaks words with an external command such as "say" or
// "espeak". The word is passed as the last argument, lowercased.
type ExecNarrator struct {
	command []string
	run     runFunc
}

// NewNarrator returns an ExecNarrator, or Nop when command is empty.
func NewNarrator(command string) Narrator {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Nop{}
	}
	return &ExecNarrator{command: fields, run: runCommand}
}

func (n *ExecNarrator) Say(ctx context.Context, word string) error {
	args := append(n.command[1:len(n.command):len(n.command)], strings.ToLower(word))
	if err := n.run(ctx, n.command[0], args...); err != nil {
		return fmt.Errorf("say %q: %w", word, err)
	}
	return nil
}
