package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/wordflash/internal/store"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "wordflash.db")
}

func seedRun(t *testing.T, dbPath string, unit int, passed bool) {
	t.Helper()
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	now := time.Now()
	err = st.RunRepo().AppendRun(context.Background(), store.RunRecord{
		ID: "run-" + t.Name(), Unit: unit, DeckSize: 15, Correct: 12, HelpCount: 3,
		Passed: passed, Missed: []string{"were", "said", "any"},
		StartedAt: now.Add(-time.Minute), FinishedAt: now,
	})
	if err != nil {
		t.Fatalf("append run: %v", err)
	}
}

func TestUnitsCommand(t *testing.T) {
	out, err := execute(t, "", "units", "--words", "")
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	for _, want := range []string{"Unit 1", "Extras", "6 units"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnitsCommandCustomBank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	data := "units:\n  - id: 1\n    label: Animals\n    words: [cat, dog]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "", "units", "--words", path)
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	if !strings.Contains(out, "Animals") || !strings.Contains(out, "1 units, 2 words") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestStatsCommand(t *testing.T) {
	db := tempDB(t)

	out, err := execute(t, "", "stats", "--db", db, "--words", "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("expected empty message, got:\n%s", out)
	}

	seedRun(t, db, 3, true)
	out, err = execute(t, "", "stats", "--db", db, "--words", "")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Unit 3") || !strings.Contains(out, "1 runs, 1 passed") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestResetCommand(t *testing.T) {
	db := tempDB(t)
	seedRun(t, db, 2, false)

	out, err := execute(t, "n\n", "reset", "--db", db, "--yes=false")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Errorf("expected abort, got:\n%s", out)
	}

	out, err = execute(t, "", "reset", "--db", db, "--yes")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !strings.Contains(out, "Deleted 1 runs.") {
		t.Errorf("expected one run deleted, got:\n%s", out)
	}
}

func TestLLMStatsEmpty(t *testing.T) {
	out, err := execute(t, "", "llm", "stats", "--db", tempDB(t))
	if err != nil {
		t.Fatalf("llm stats: %v", err)
	}
	if !strings.Contains(out, "No LLM usage recorded yet.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "wordflash ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestFormatCost(t *testing.T) {
	if got := formatCost(0.0012); got != "$0.0012" {
		t.Errorf("formatCost(0.0012) = %q", got)
	}
	if got := formatCost(1.5); got != "$1.50" {
		t.Errorf("formatCost(1.5) = %q", got)
	}
}
