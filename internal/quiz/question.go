package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/inflect"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/subject"
)

// Settings is the slice of configuration a question consults.
type Settings interface {
	// RandomizeInflections reports whether vocabulary prompts in the given
	// session type show a random conjugated or declined form instead of
	// the dictionary form.
	RandomizeInflections(t session.Type) bool
	// IndicateKanjiReadingType reports whether kanji reading titles name
	// the expected reading kind.
	IndicateKanjiReadingType() bool
}

// Question is one prompt about one item. It owns no durable state of its
// own beyond the memoized inflection draw; everything it mutates lives on
// the item.
type Question struct {
	item        *session.Item
	typ         Type
	sessionType session.Type
	settings    Settings

	// inflection holds the single random form draw made for this question
	// instance. Empty until the first draw; once set it never changes, so
	// the prompt and the answer text always show the same form.
	inflection inflect.Form
}

// New creates a question of the given type addressing the given item,
// asked as part of a session of the given type.
func New(item *session.Item, typ Type, sessionType session.Type, settings Settings) *Question {
	return &Question{item: item, typ: typ, sessionType: sessionType, settings: settings}
}

func (q *Question) Item() *session.Item { return q.item }
func (q *Question) Type() Type          { return q.typ }

func (q *Question) String() string {
	return fmt.Sprintf("%s:%d", q.typ, q.item.ID())
}

// IsFinished reports whether this question no longer needs asking: its
// slot is done, or the item as a whole has left the active state.
func (q *Question) IsFinished() bool {
	if !q.item.IsActive() {
		return true
	}
	return q.item.QuestionDone(q.typ.Slot())
}

// CanUndo reports whether the last answer to this question may still be
// taken back. Once the item's result has been reported, or the item has
// been abandoned, undo is off the table.
func (q *Question) CanUndo() bool {
	return !q.item.IsReported() && !q.item.IsAbandoned()
}

// Title renders the prompt title for this question.
func (q *Question) Title() string {
	return q.typ.Title(q.settings.IndicateKanjiReadingType(), q.item.Subject())
}

// Hint renders the answer field placeholder for this question.
func (q *Question) Hint(landscape bool) string {
	return q.typ.Hint(landscape)
}

// CheckAnswer grades an answer without recording anything. A blank answer
// is never wrong, only a retry. matchingKanji, when non-nil, is the kanji
// subject with the same written form as a single-kanji vocabulary item;
// it lets the grader soften kanji-reading confusions into a retry.
func (q *Question) CheckAnswer(matchingKanji *subject.Subject, answer string, lenience grader.Lenience) grader.Verdict {
	if strings.TrimSpace(answer) == "" {
		return grader.Retry("")
	}
	return q.typ.CheckAnswer(q.item.Subject(), matchingKanji, answer, lenience)
}

// MarkCorrect records a correct answer. If this was the item's last open
// slot the item's result is finalized: reported immediately, or parked in
// the pending state when delayed reporting is on. Otherwise the item is
// just persisted with the new counters.
func (q *Question) MarkCorrect(ctx context.Context, delayed bool) error {
	it := q.item
	it.SetQuestionDone(q.typ.Slot(), true)
	it.SetNumAnswers(it.NumAnswers() + 1)
	it.SetLastAnswer(time.Now())

	if it.IsFinished() {
		if delayed {
			it.SetState(session.ItemPending)
			return it.Update(ctx)
		}
		return it.Report(ctx)
	}
	return it.Update(ctx)
}

// MarkIncorrect records an incorrect answer.
func (q *Question) MarkIncorrect(ctx context.Context) error {
	it := q.item
	slot := q.typ.Slot()
	it.SetQuestionIncorrect(slot, it.QuestionIncorrect(slot)+1)
	it.SetNumAnswers(it.NumAnswers() + 1)
	return it.Update(ctx)
}

// Undo takes back the last recorded answer to this question. Whether that
// answer was correct is read off the item: a done slot means the last
// answer completed it, an open slot means the last answer was incorrect.
// An item parked pending returns to the active state, since its result is
// no longer final. Once the item is reported or abandoned there is
// nothing left to take back and Undo does nothing at all.
func (q *Question) Undo(ctx context.Context) error {
	if !q.CanUndo() {
		return nil
	}

	it := q.item
	slot := q.typ.Slot()
	if it.QuestionDone(slot) {
		it.SetQuestionDone(slot, false)
	} else {
		it.SetQuestionIncorrect(slot, it.QuestionIncorrect(slot)-1)
	}
	it.SetNumAnswers(it.NumAnswers() - 1)

	if it.IsPending() {
		it.SetState(session.ItemActive)
	}
	return it.Update(ctx)
}
