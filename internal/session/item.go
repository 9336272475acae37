// Package session holds the per-session study item aggregate and the
// session-level enums. An Item is the single source of truth for one
// subject's progress within a session; questions mutate it through its
// accessors and persist it through the injected Sink.
package session

import (
	"context"
	"time"

	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

// Type is the kind of session being run. Some settings, such as
// randomized inflections, are scoped per session type.
type Type int

const (
	TypeLesson Type = iota
	TypeReview
	TypeSelfStudy
)

func (t Type) String() string {
	switch t {
	case TypeLesson:
		return "lesson"
	case TypeReview:
		return "review"
	case TypeSelfStudy:
		return "self-study"
	}
	return "unknown"
}

// ItemState is the item-wide lifecycle overlay. Mutation of counters is
// only meaningful while the item is active or pending; reported and
// abandoned items are terminal.
type ItemState int

const (
	ItemActive ItemState = iota
	// ItemPending is finished but not yet reported (delayed-report mode).
	ItemPending
	ItemReported
	ItemAbandoned
)

func (s ItemState) String() string {
	switch s {
	case ItemActive:
		return "active"
	case ItemPending:
		return "pending"
	case ItemReported:
		return "reported"
	case ItemAbandoned:
		return "abandoned"
	}
	return "unknown"
}

// NumSlots is the number of per-question counter slots an item carries.
// Slot 0 is the meaning; slots 1-2 are readings; slot 3 is spare.
const NumSlots = 4

// Sink persists item mutations. Update stores an incremental counter
// change; Report finalizes the item, applying the spaced-repetition stage
// change to its assignment.
type Sink interface {
	Update(ctx context.Context, item *Item) error
	Report(ctx context.Context, item *Item) error
}

// Item is one subject under study in a session, with per-slot done flags
// and incorrect counters. All durable state for a question lives here;
// question values hold only a reference.
type Item struct {
	id        int64
	subj      *subject.Subject
	stage     srs.Stage
	state     ItemState
	required  [NumSlots]bool
	done      [NumSlots]bool
	incorrect [NumSlots]int

	numAnswers int
	lastAnswer time.Time

	sink Sink
}

// NewItem creates an active item for a subject. required marks which
// question slots must be answered before the item is finished.
func NewItem(id int64, subj *subject.Subject, stage srs.Stage, required [NumSlots]bool, sink Sink) *Item {
	return &Item{
		id:       id,
		subj:     subj,
		stage:    stage,
		state:    ItemActive,
		required: required,
		sink:     sink,
	}
}

func (it *Item) ID() int64                 { return it.id }
func (it *Item) Subject() *subject.Subject { return it.subj }
func (it *Item) Stage() srs.Stage          { return it.stage }
func (it *Item) State() ItemState          { return it.state }
func (it *Item) SetState(s ItemState)      { it.state = s }

func (it *Item) IsActive() bool    { return it.state == ItemActive }
func (it *Item) IsPending() bool   { return it.state == ItemPending }
func (it *Item) IsReported() bool  { return it.state == ItemReported }
func (it *Item) IsAbandoned() bool { return it.state == ItemAbandoned }

// QuestionRequired reports whether a slot must be answered for this item.
func (it *Item) QuestionRequired(slot int) bool { return it.required[slot] }

// QuestionDone reports whether a slot has been answered correctly.
func (it *Item) QuestionDone(slot int) bool { return it.done[slot] }

// SetQuestionDone marks or clears a slot's done flag.
func (it *Item) SetQuestionDone(slot int, done bool) { it.done[slot] = done }

// QuestionIncorrect returns the incorrect-answer count for a slot.
func (it *Item) QuestionIncorrect(slot int) int { return it.incorrect[slot] }

// SetQuestionIncorrect sets the incorrect-answer count for a slot.
func (it *Item) SetQuestionIncorrect(slot, n int) { it.incorrect[slot] = n }

func (it *Item) NumAnswers() int         { return it.numAnswers }
func (it *Item) SetNumAnswers(n int)     { it.numAnswers = n }
func (it *Item) LastAnswer() time.Time   { return it.lastAnswer }
func (it *Item) SetLastAnswer(t time.Time) { it.lastAnswer = t }

// IsFinished reports whether every required slot has been answered
// correctly.
func (it *Item) IsFinished() bool {
	for slot := range NumSlots {
		if it.required[slot] && !it.done[slot] {
			return false
		}
	}
	return true
}

// TotalIncorrect sums the incorrect counters across all slots, the input
// to the spaced-repetition stage change on report.
func (it *Item) TotalIncorrect() int {
	total := 0
	for slot := range NumSlots {
		total += it.incorrect[slot]
	}
	return total
}

// Update persists the item's current counters through the sink.
func (it *Item) Update(ctx context.Context) error {
	return it.sink.Update(ctx, it)
}

// Report finalizes the item: it transitions to the reported state and the
// sink applies the stage change. Terminal; no further mutation follows.
func (it *Item) Report(ctx context.Context) error {
	it.state = ItemReported
	return it.sink.Report(ctx, it)
}

// Abandon marks the item abandoned and persists. Abandoned items accept
// no further answers and cannot be undone.
func (it *Item) Abandon(ctx context.Context) error {
	it.state = ItemAbandoned
	return it.sink.Update(ctx, it)
}

// RequiredSlots derives which question slots a subject needs. Radicals
// carry only a meaning. Kanji ask meaning plus either one combined
// reading or separate on'yomi and kun'yomi questions. Vocabulary asks
// meaning and reading, except kana-only entries with no reading data.
func RequiredSlots(subj *subject.Subject, separateKanjiReadings bool) [NumSlots]bool {
	var req [NumSlots]bool
	req[0] = true

	switch subj.Kind {
	case subject.KindRadical:
	case subject.KindKanji:
		if separateKanjiReadings {
			req[1] = len(subj.AcceptedReadings(subject.ReadingOn)) > 0
			req[2] = len(subj.AcceptedReadings(subject.ReadingKun)) > 0
			if !req[1] && !req[2] {
				req[1] = subj.HasReadings()
			}
		} else {
			req[1] = subj.HasReadings()
		}
	case subject.KindVocabulary:
		req[1] = subj.HasReadings()
	}
	return req
}
