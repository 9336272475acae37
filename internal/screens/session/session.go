package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/router"
	"github.com/mizutani/kotoba/internal/screen"
	"github.com/mizutani/kotoba/internal/subject"
	"github.com/mizutani/kotoba/internal/ui/components"
	"github.com/mizutani/kotoba/internal/ui/layout"
)

// Planner assembles, finalizes, and annotates quiz sessions.
// *quiz.Planner is the production implementation.
type Planner interface {
	Plan(ctx context.Context, opts quiz.Options, batch int) (*quiz.Plan, error)
	Finish(ctx context.Context, plan *quiz.Plan, opts quiz.Options) error
	MatchingKanji(ctx context.Context, sub *subject.Subject) (*subject.Subject, error)
}

// SessionScreen implements screen.Screen for an active quiz session. It
// deals questions from the plan's queue, grades answers, and shows
// feedback between questions.
type SessionScreen struct {
	planner Planner
	opts    quiz.Options
	batch   int

	plan    *quiz.Plan
	current *quiz.Question
	input   components.AnswerInput

	// matchingKanji is the kanji subject sharing the current item's
	// written form, looked up once per question.
	matchingKanji *subject.Subject

	showingFeedback    bool
	showingQuitConfirm bool
	lastVerdict        grader.Verdict
	revealedAnswer     string
	retryMsg           string
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a new SessionScreen that will plan and run a session of
// the configured type when initialized.
func New(planner Planner, opts quiz.Options, batch int) *SessionScreen {
	return &SessionScreen{
		planner: planner,
		opts:    opts,
		batch:   batch,
		input:   components.NewAnswerInput("", false),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.buildPlan(),
		s.input.Init(),
	)
}

func (s *SessionScreen) Title() string {
	return s.opts.Type.String()
}

// HandlesEsc keeps the escape key for the wrap-up confirmation instead
// of the default back navigation.
func (s *SessionScreen) HandlesEsc() bool { return true }

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Wrap up"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		hints := []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
		if s.plan != nil && s.plan.Session.CanUndo() {
			hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Undo"})
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Wrap up"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.plan == nil {
		return renderLoading(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.showingFeedback {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		return s.handlePlanReady(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.current != nil && !s.showingFeedback && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// buildPlan assembles the session from the store.
func (s *SessionScreen) buildPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := s.planner.Plan(context.Background(), s.opts, s.batch)
		return planReadyMsg{Plan: plan, Err: err}
	}
}

func (s *SessionScreen) handlePlanReady(msg planReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, quiz.ErrNothingToStudy) {
			s.errMsg = "Nothing to study right now. Come back later!"
		} else {
			s.errMsg = msg.Err.Error()
		}
		return s, nil
	}
	s.plan = msg.Plan
	return s.nextQuestion()
}

// nextQuestion pulls the next open question off the queue, or ends the
// session when none remain.
func (s *SessionScreen) nextQuestion() (screen.Screen, tea.Cmd) {
	q := s.plan.Session.Current()
	if q == nil {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s.askQuestion(q)
}

func (s *SessionScreen) askQuestion(q *quiz.Question) (screen.Screen, tea.Cmd) {
	s.current = q
	s.retryMsg = ""

	kanji, err := s.planner.MatchingKanji(context.Background(), q.Item().Subject())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.matchingKanji = kanji

	s.input = components.NewAnswerInput(q.Hint(true), q.Type().IsReading())
	return s, s.input.Init()
}

func (s *SessionScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false
	return s.nextQuestion()
}

func (s *SessionScreen) handleSessionEnd(msg sessionEndMsg) (screen.Screen, tea.Cmd) {
	if s.plan == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	sess := s.plan.Session

	if msg.abandoned {
		if err := sess.AbandonRemaining(ctx); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
	}
	if err := sess.ReportPending(ctx); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if err := s.planner.Finish(ctx, s.plan, s.opts); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	sum := sess.Summarize()
	duration := time.Since(s.plan.StartedAt)
	sessionType := s.opts.Type

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: newSummaryScreen(sessionType, sum, duration),
		}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state. Any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.plan == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{abandoned: true} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	if s.showingFeedback {
		if key == "backspace" && s.plan.Session.CanUndo() {
			return s.undoLast()
		}
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer grades the typed answer against the current question.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	if s.current == nil {
		return s, nil
	}

	q := s.current
	verdict, err := s.plan.Session.Answer(context.Background(), s.input.Value(), s.matchingKanji)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if verdict.NeedsRetry() {
		s.retryMsg = verdict.Message
		if s.retryMsg == "" {
			s.retryMsg = "Try again"
		}
		s.input.Reset()
		return s, nil
	}

	s.input.Submit(verdict.IsCorrect())
	s.lastVerdict = verdict
	s.revealedAnswer = q.RevealedAnswerText()
	s.showingFeedback = true
	return s, nil
}

// undoLast takes back the most recent recorded answer and re-asks its
// question.
func (s *SessionScreen) undoLast() (screen.Screen, tea.Cmd) {
	q, err := s.plan.Session.UndoLast(context.Background())
	if err != nil {
		if errors.Is(err, quiz.ErrNothingToUndo) {
			return s, func() tea.Msg { return feedbackDoneMsg{} }
		}
		s.errMsg = err.Error()
		return s, nil
	}
	s.showingFeedback = false
	return s.askQuestion(q)
}
