// Package hints asks an LLM for a short example sentence that uses a
// flashcard word. Results are cached per word for the life of the process.
package hints

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/abhisek/wordflash/internal/llm"
)

// Purpose labels hint requests in the LLM journal.
const Purpose = "example-sentence"

// ErrWordMissing is returned when the generated sentence does not contain
// the requested word.
var ErrWordMissing = errors.New("sentence does not use the word")

var sentenceSchema = &llm.Schema{
	Name:        "example-sentence",
	Description: "One short sentence for an early reader that uses the given word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sentence": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": 120,
			},
		},
		"required":             []any{"sentence"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You help young children (ages 5 to 7) practise sight words.
Write exactly one short, simple sentence of at most ten words that uses the
given word exactly as written. Use only common everyday words. No names of
real people, no scary or sad topics.`

// Service generates and caches example sentences.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds each lookup. Zero means no extra bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger sets the logger for failed lookups.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService returns a Service backed by provider.
func NewService(provider llm.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		logger:   slog.New(slog.DiscardHandler),
		cache:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cached returns a previously generated sentence for word.
func (s *Service) Cached(word string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sentence, ok := s.cache[cacheKey(word)]
	return sentence, ok
}

// Sentence returns an example sentence using word, from the cache when
// possible. It blocks on the provider; callers in the UI run it inside a
// tea.Cmd.
func (s *Service) Sentence(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("hint: empty word")
	}
	if sentence, ok := s.Cached(word); ok {
		return sentence, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.UserPrompt(systemPrompt, fmt.Sprintf("Word: %s", word))
	req.Schema = sentenceSchema
	req.MaxTokens = 128
	req.Temperature = 0.7

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		s.logger.Warn("hint lookup failed", "word", word, "err", err)
		return "", fmt.Errorf("hint for %q: %w", word, err)
	}

	var out struct {
		Sentence string `json:"sentence"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("hint for %q: decode: %w", word, err)
	}
	sentence := strings.TrimSpace(out.Sentence)
	if !usesWord(sentence, word) {
		s.logger.Debug("hint rejected", "word", word, "sentence", sentence)
		return "", fmt.Errorf("hint for %q: %w", word, ErrWordMissing)
	}

	s.mu.Lock()
	s.cache[cacheKey(word)] = sentence
	s.mu.Unlock()
	return sentence, nil
}

func cacheKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// usesWord reports whether sentence contains word as a whole word,
// ignoring case.
func usesWord(sentence, word string) bool {
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(sentence)
}
