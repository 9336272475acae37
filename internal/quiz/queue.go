package quiz

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/subject"
)

// ErrNothingToUndo is returned when no answer is eligible to be taken back.
var ErrNothingToUndo = errors.New("nothing to undo")

// AnswerRecorder receives every answer the session keeps, for the
// per-answer event log. Retries are never recorded, and an undo retracts
// the answer rather than forgetting it.
type AnswerRecorder interface {
	RecordAnswer(ctx context.Context, subjectID int64, questionType, answer, verdict string) error
	RetractAnswer(ctx context.Context, subjectID int64) error
}

// Options configure a quiz session.
type Options struct {
	Type    session.Type
	Delayed bool
	// Lenience is the policy for near-miss meaning answers.
	Lenience grader.Lenience
	// SeparateKanjiReadings splits kanji reading questions into distinct
	// on'yomi and kun'yomi prompts.
	SeparateKanjiReadings bool
	Settings              Settings
	// Recorder, when set, receives each recorded answer and each
	// retraction.
	Recorder AnswerRecorder
}

// Session runs a set of items through their questions: it deals questions
// in shuffled order, grades and records answers, re-queues misses, and
// holds the one-step undo window.
type Session struct {
	opts  Options
	items []*session.Item
	queue []*Question

	// last is the most recently recorded answer's question. Undo reaches
	// exactly one step back; any newer answer closes the window.
	last *Question
}

// NewSession builds a session over the given items, one question per
// required slot, shuffled.
func NewSession(opts Options, items []*session.Item) *Session {
	s := &Session{opts: opts, items: items}
	for _, it := range items {
		s.queue = append(s.queue, questionsFor(it, opts)...)
	}
	rand.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
	return s
}

func questionsFor(it *session.Item, opts Options) []*Question {
	var qs []*Question
	add := func(typ Type) {
		qs = append(qs, New(it, typ, opts.Type, opts.Settings))
	}

	if it.QuestionRequired(0) {
		add(TypeMeaning)
	}
	if it.QuestionRequired(1) {
		if it.Subject().Kind == subject.KindKanji && opts.SeparateKanjiReadings {
			add(TypeReadingOn)
		} else {
			add(TypeReading)
		}
	}
	if it.QuestionRequired(2) {
		add(TypeReadingKun)
	}
	return qs
}

// Current returns the next question to ask, or nil when the session is
// over.
func (s *Session) Current() *Question {
	for _, q := range s.queue {
		if !q.IsFinished() {
			return q
		}
	}
	return nil
}

// Items returns the session's items.
func (s *Session) Items() []*session.Item { return s.items }

// Total counts the questions dealt into the session.
func (s *Session) Total() int { return len(s.queue) }

// Remaining counts the questions still open.
func (s *Session) Remaining() int {
	n := 0
	for _, q := range s.queue {
		if !q.IsFinished() {
			n++
		}
	}
	return n
}

// IsDone reports whether every question has been answered correctly.
func (s *Session) IsDone() bool {
	return s.Current() == nil
}

// Answer grades the given answer against the current question and, unless
// the verdict asks for a retry, records it. Incorrectly answered questions
// move to the back of the queue to come around again.
func (s *Session) Answer(ctx context.Context, answer string, matchingKanji *subject.Subject) (grader.Verdict, error) {
	q := s.Current()
	if q == nil {
		return grader.Verdict{}, errors.New("session has no open questions")
	}

	verdict := q.CheckAnswer(matchingKanji, answer, s.opts.Lenience)
	if verdict.NeedsRetry() {
		return verdict, nil
	}

	var err error
	if verdict.IsCorrect() {
		err = q.MarkCorrect(ctx, s.opts.Delayed)
	} else {
		err = q.MarkIncorrect(ctx)
		s.requeue(q)
	}
	if err != nil {
		return verdict, err
	}

	if s.opts.Recorder != nil {
		err := s.opts.Recorder.RecordAnswer(ctx, q.Item().ID(), q.Type().String(), answer, verdict.Status.String())
		if err != nil {
			return verdict, err
		}
	}

	s.last = q
	return verdict, nil
}

// requeue moves q to the back of the queue.
func (s *Session) requeue(q *Question) {
	for i, other := range s.queue {
		if other == q {
			s.queue = append(append(s.queue[:i:i], s.queue[i+1:]...), q)
			return
		}
	}
}

// UndoLast takes back the most recent recorded answer. Only one step of
// history is kept, and a reported or abandoned item closes the window.
func (s *Session) UndoLast(ctx context.Context) (*Question, error) {
	if s.last == nil {
		return nil, ErrNothingToUndo
	}
	q := s.last
	if !q.CanUndo() {
		return nil, ErrNothingToUndo
	}
	if err := q.Undo(ctx); err != nil {
		return nil, err
	}
	if s.opts.Recorder != nil {
		if err := s.opts.Recorder.RetractAnswer(ctx, q.Item().ID()); err != nil {
			return nil, err
		}
	}
	s.last = nil
	return q, nil
}

// CanUndo reports whether UndoLast would have an answer to take back.
func (s *Session) CanUndo() bool {
	return s.last != nil && s.last.CanUndo()
}

// ReportPending finalizes every item parked in the pending state. Called
// at the end of a delayed-report session, and safe to call again after a
// partial failure.
func (s *Session) ReportPending(ctx context.Context) error {
	for _, it := range s.items {
		if !it.IsPending() {
			continue
		}
		if err := it.Report(ctx); err != nil {
			return err
		}
	}
	return nil
}

// AbandonRemaining abandons every item still active when the learner
// quits early. Items already pending or reported keep their result.
func (s *Session) AbandonRemaining(ctx context.Context) error {
	for _, it := range s.items {
		if !it.IsActive() {
			continue
		}
		if err := it.Abandon(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Summary aggregates session results for the wrap-up view.
type Summary struct {
	Total     int
	Completed int
	Abandoned int
	Incorrect int
}

// Summarize tallies the session's items.
func (s *Session) Summarize() Summary {
	var sum Summary
	sum.Total = len(s.items)
	for _, it := range s.items {
		if it.IsReported() || it.IsPending() {
			sum.Completed++
		}
		if it.IsAbandoned() {
			sum.Abandoned++
		}
		sum.Incorrect += it.TotalIncorrect()
	}
	return sum
}
