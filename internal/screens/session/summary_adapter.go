package session

import (
	"time"

	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/screen"
	"github.com/mizutani/kotoba/internal/screens/summary"
	sess "github.com/mizutani/kotoba/internal/session"
)

// newSummaryScreen creates the wrap-up screen for a finished session.
func newSummaryScreen(t sess.Type, sum quiz.Summary, duration time.Duration) screen.Screen {
	return summary.New(t, sum, duration)
}
