package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordflash/internal/drill"
	"github.com/abhisek/wordflash/internal/router"
)

func passedSummary() *drill.Summary {
	return &drill.Summary{
		Unit:      3,
		DeckSize:  15,
		Correct:   11,
		HelpCount: 4,
		HelpList:  []string{"from", "have", "said", "were"},
		Result:    drill.Result{Passed: true},
	}
}

func failedSummary() *drill.Summary {
	return &drill.Summary{
		Unit:      3,
		DeckSize:  15,
		Correct:   9,
		HelpCount: 6,
		HelpList:  []string{"a", "b", "c", "d", "e", "f"},
	}
}

func perfectSummary() *drill.Summary {
	return &drill.Summary{
		Unit:     1,
		DeckSize: 14,
		Correct:  14,
		Result:   drill.Result{Passed: true, Perfect: true},
	}
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		name    string
		sum     *drill.Summary
		label   string
		title   string
		message string
	}{
		{"passed", passedSummary(), "Unit 3", "Unit Complete! 🎉", "Great job! You've completed Unit 3."},
		{"perfect", perfectSummary(), "Unit 1", "Unit Complete! 🎉", "Great job! You've completed Unit 1 with a perfect score!"},
		{"failed", failedSummary(), "Unit 3", "Try Again", "Don't give up! Review the material and try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, message := Headline(tt.sum, tt.label)
			if title != tt.title {
				t.Errorf("title = %q, want %q", title, tt.title)
			}
			if message != tt.message {
				t.Errorf("message = %q, want %q", message, tt.message)
			}
		})
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	if got := New(passedSummary(), "Unit 3").Title(); got != "Unit Complete" {
		t.Errorf("Title = %q, want %q", got, "Unit Complete")
	}
	review := passedSummary()
	review.Review = true
	if got := New(review, "Unit 3").Title(); got != "Review Complete" {
		t.Errorf("Title = %q, want %q", got, "Review Complete")
	}
}

func TestSummaryScreen_ViewListsMissedWords(t *testing.T) {
	view := New(passedSummary(), "Unit 3").View(100, 30)
	for _, want := range []string{"from", "were", "11 got it", "4 needed help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_PerfectHidesHelp(t *testing.T) {
	view := New(perfectSummary(), "Unit 1").View(100, 30)
	if strings.Contains(view, "needed help") {
		t.Error("perfect run should not show a help count")
	}
	if strings.Contains(view, "REVIEW") {
		t.Error("perfect run should not offer a review")
	}
}

func TestSummaryScreen_ReviewKey(t *testing.T) {
	s := New(passedSummary(), "Unit 3")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected review command")
	}
}

func TestSummaryScreen_ReviewDisabledWithoutMissedWords(t *testing.T) {
	s := New(perfectSummary(), "Unit 1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("review should be disabled when nothing was missed")
	}
	for _, h := range s.KeyHints() {
		if h.Key == "R" {
			t.Error("review hint should be hidden")
		}
	}
}

func TestSummaryScreen_MenuKeys(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		s := New(failedSummary(), "Unit 3")
		_, cmd := s.Update(msg)
		if cmd == nil {
			t.Fatalf("expected command for %s", msg.String())
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("expected PopToRootMsg for %s, got %T", msg.String(), cmd())
		}
	}
}

func TestSummaryScreen_SparklesOnlyOnPass(t *testing.T) {
	if New(failedSummary(), "Unit 3").Init() != nil {
		t.Error("failed run should not animate")
	}
	s := New(passedSummary(), "Unit 3")
	if s.Init() == nil {
		t.Fatal("passed run should start the sparkle animation")
	}
	_, cmd := s.Update(sparkleMsg(time.Now()))
	if cmd == nil {
		t.Error("sparkles should keep ticking")
	}
	if s.frame != 1 {
		t.Errorf("frame = %d, want 1", s.frame)
	}
}
