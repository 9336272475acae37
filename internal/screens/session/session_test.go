package session

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mizutani/kotoba/internal/quiz"
	"github.com/mizutani/kotoba/internal/screen"
	sess "github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

// stubPlanner implements Planner over a canned plan.
type stubPlanner struct {
	plan     *quiz.Plan
	planErr  error
	finished int
}

func (p *stubPlanner) Plan(_ context.Context, _ quiz.Options, _ int) (*quiz.Plan, error) {
	return p.plan, p.planErr
}

func (p *stubPlanner) Finish(_ context.Context, _ *quiz.Plan, _ quiz.Options) error {
	p.finished++
	return nil
}

func (p *stubPlanner) MatchingKanji(_ context.Context, _ *subject.Subject) (*subject.Subject, error) {
	return nil, nil
}

type nopSink struct{}

func (nopSink) Update(context.Context, *sess.Item) error { return nil }
func (nopSink) Report(context.Context, *sess.Item) error { return nil }

type stubSettings struct{}

func (stubSettings) RandomizeInflections(sess.Type) bool { return false }
func (stubSettings) IndicateKanjiReadingType() bool      { return true }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSubject() *subject.Subject {
	return &subject.Subject{
		ID:         1,
		Kind:       subject.KindVocabulary,
		Characters: "新聞",
		Meanings: []subject.Meaning{
			{Text: "newspaper", Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "しんぶん", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
	}
}

func testScreen(t *testing.T) (*SessionScreen, *stubPlanner) {
	t.Helper()

	opts := quiz.Options{Type: sess.TypeReview, Settings: stubSettings{}}
	subj := testSubject()
	item := sess.NewItem(subj.ID, subj, srs.StageApprentice1, sess.RequiredSlots(subj, false), nopSink{})
	planner := &stubPlanner{
		plan: &quiz.Plan{
			SessionID: "test-session",
			Session:   quiz.NewSession(opts, []*sess.Item{item}),
			StartedAt: time.Now(),
		},
	}

	s := New(planner, opts, 10)
	s.Update(planReadyMsg{Plan: planner.plan})
	return s, planner
}

// answerCurrent types the correct answer for the current question and
// submits it.
func answerCurrent(t *testing.T, s *SessionScreen) screen.Screen {
	t.Helper()

	answer := "newspaper"
	if s.current.Type().IsReading() {
		answer = "しんぶん"
	}
	s.input.Model.SetValue(answer)
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	return scr
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testScreen(t)
	if s.Title() != "review" {
		t.Errorf("Title = %q, want %q", s.Title(), "review")
	}
}

func TestSessionScreen_PlanReadyDealsQuestion(t *testing.T) {
	s, _ := testScreen(t)
	if s.current == nil {
		t.Fatal("expected a current question after planReadyMsg")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "新聞") {
		t.Error("expected question view to show the subject")
	}
}

func TestSessionScreen_NothingToStudy(t *testing.T) {
	planner := &stubPlanner{planErr: quiz.ErrNothingToStudy}
	s := New(planner, quiz.Options{Type: sess.TypeReview, Settings: stubSettings{}}, 10)

	s.Update(planReadyMsg{Err: planner.planErr})
	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing to study") {
		t.Errorf("expected nothing-to-study message, got %q", view)
	}
}

func TestSessionScreen_CorrectAnswerShowsFeedback(t *testing.T) {
	s, _ := testScreen(t)

	scr := answerCurrent(t, s)
	ss := scr.(*SessionScreen)
	if !ss.showingFeedback {
		t.Fatal("expected feedback after a recorded answer")
	}
	if !ss.lastVerdict.IsCorrect() {
		t.Error("expected a correct verdict")
	}
}

func TestSessionScreen_BlankAnswerRetries(t *testing.T) {
	s, _ := testScreen(t)

	s.input.Model.SetValue("   ")
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.showingFeedback {
		t.Error("blank answer must not record a result")
	}
	if ss.retryMsg == "" {
		t.Error("expected a retry message")
	}
}

func TestSessionScreen_RunToSummary(t *testing.T) {
	s, planner := testScreen(t)

	// Both questions answered correctly, then feedback dismissed, ends
	// the session.
	var scr screen.Screen = s
	for i := 0; i < 2; i++ {
		ss := scr.(*SessionScreen)
		scr = answerCurrent(t, ss)
		scr, _ = scr.Update(feedbackDoneMsg{})
	}

	ss := scr.(*SessionScreen)
	_, cmd := ss.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected a replace command at session end")
	}
	if planner.finished != 1 {
		t.Errorf("planner.Finish calls = %d, want 1", planner.finished)
	}
}

func TestSessionScreen_UndoReopensQuestion(t *testing.T) {
	s, _ := testScreen(t)

	answered := s.current
	scr := answerCurrent(t, s)
	ss := scr.(*SessionScreen)

	scr, _ = ss.Update(specialKey(tea.KeyBackspace))
	ss = scr.(*SessionScreen)

	if ss.showingFeedback {
		t.Error("expected feedback to close on undo")
	}
	if ss.current != answered {
		t.Error("expected the undone question to be re-asked")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*SessionScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
