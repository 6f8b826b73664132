// Package config reads wordflash settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAdvanceDelay is the pause between a got-it and the next card.
const DefaultAdvanceDelay = 200 * time.Millisecond

// Config holds application settings. LLM settings live in llm.Config.
type Config struct {
	DBPath       string        // WORDFLASH_DB
	WordsFile    string        // WORDFLASH_WORDS
	LogFile      string        // WORDFLASH_LOG_FILE
	LogLevel     slog.Level    // WORDFLASH_LOG_LEVEL
	SoundDir     string        // WORDFLASH_SOUND_DIR
	SoundPlayer  string        // WORDFLASH_SOUND_PLAYER
	SpeakCommand string        // WORDFLASH_SPEAK_CMD
	AdvanceDelay time.Duration // WORDFLASH_ADVANCE_DELAY
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from WORDFLASH_* variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Config{
		DBPath:       os.Getenv("WORDFLASH_DB"),
		WordsFile:    os.Getenv("WORDFLASH_WORDS"),
		LogFile:      os.Getenv("WORDFLASH_LOG_FILE"),
		LogLevel:     slog.LevelInfo,
		SoundDir:     os.Getenv("WORDFLASH_SOUND_DIR"),
		SoundPlayer:  getenvDefault("WORDFLASH_SOUND_PLAYER", defaultPlayer()),
		SpeakCommand: os.Getenv("WORDFLASH_SPEAK_CMD"),
		AdvanceDelay: DefaultAdvanceDelay,
	}

	if v := os.Getenv("WORDFLASH_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
			return Config{}, fmt.Errorf("config: WORDFLASH_LOG_LEVEL=%q: %w", v, err)
		}
	}

	if v := os.Getenv("WORDFLASH_ADVANCE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: WORDFLASH_ADVANCE_DELAY=%q is not a valid duration: %w", v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("config: WORDFLASH_ADVANCE_DELAY must not be negative, got %s", d)
		}
		cfg.AdvanceDelay = d
	}

	return cfg, nil
}

// ResolveLogFile returns the log file path: the configured one, else
// $XDG_STATE_HOME/wordflash/wordflash.log, else
// ~/.local/state/wordflash/wordflash.log. The parent directory is created.
func (c Config) ResolveLogFile() (string, error) {
	p := c.LogFile
	if p == "" {
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			stateHome = filepath.Join(home, ".local", "state")
		}
		p = filepath.Join(stateHome, "wordflash", "wordflash.log")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return p, nil
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// defaultPlayer picks a player that ships with the OS, or "" when there is
// none worth guessing.
func defaultPlayer() string {
	if _, err := os.Stat("/usr/bin/afplay"); err == nil {
		return "afplay"
	}
	return ""
}
