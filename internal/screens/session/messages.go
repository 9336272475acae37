package session

import (
	"github.com/mizutani/kotoba/internal/quiz"
)

// planReadyMsg is sent when the planner has assembled the session.
type planReadyMsg struct {
	Plan *quiz.Plan
	Err  error
}

// feedbackDoneMsg is sent when the learner dismisses the answer feedback.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct {
	abandoned bool
}
