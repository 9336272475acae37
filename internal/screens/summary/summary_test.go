package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/session"
)

func testScreen() *SummaryScreen {
	return New(session.TypeReview, quiz.Summary{
		Total:     10,
		Completed: 9,
		Abandoned: 1,
		Incorrect: 3,
	}, 8*time.Minute+30*time.Second)
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testScreen().View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Reviews complete!", "8:30", "Items: 10", "Set aside for next time: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Accuracy(t *testing.T) {
	tests := []struct {
		sum  quiz.Summary
		want string
	}{
		{quiz.Summary{Total: 4, Completed: 4, Incorrect: 0}, "Accuracy: 100%"},
		{quiz.Summary{Total: 4, Completed: 3, Incorrect: 1}, "Accuracy: 75%"},
		{quiz.Summary{Total: 4, Abandoned: 4}, "No items completed"},
	}

	for _, tc := range tests {
		got := accuracyLine(tc.sum)
		if got != tc.want {
			t.Errorf("accuracyLine(%+v) = %q, want %q", tc.sum, got, tc.want)
		}
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		_, cmd := testScreen().Update(key)
		if cmd == nil {
			t.Errorf("expected a pop command on %v", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	hints := testScreen().KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
