package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mizutani/kotoba/ent"
	entitem "github.com/mizutani/kotoba/ent/sessionitem"

	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
)

// ItemSink persists item progress and finalizes results. It implements
// session.Sink: Update writes the in-flight counters so an interrupted
// session can resume, Report applies the stage movement to the
// assignment and appends a review event.
type ItemSink struct {
	store     *Store
	sessionID string
	log       *zap.Logger
}

// NewItemSink builds a sink for one session.
func (s *Store) NewItemSink(sessionID string, log *zap.Logger) *ItemSink {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItemSink{store: s, sessionID: sessionID, log: log}
}

// Update upserts the item's session row with its current counters.
func (k *ItemSink) Update(ctx context.Context, it *session.Item) error {
	required, done, incorrect := slotColumns(it)

	existing, err := k.store.client.SessionItem.Query().
		Where(
			entitem.SessionID(k.sessionID),
			entitem.SubjectID(it.ID()),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session item: %w", err)
	}

	if existing == nil {
		builder := k.store.client.SessionItem.Create().
			SetSessionID(k.sessionID).
			SetSubjectID(it.ID()).
			SetState(it.State().String()).
			SetStage(int(it.Stage())).
			SetRequired(required).
			SetDone(done).
			SetIncorrect(incorrect).
			SetNumAnswers(it.NumAnswers())
		if !it.LastAnswer().IsZero() {
			builder = builder.SetLastAnswer(it.LastAnswer())
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create session item: %w", err)
		}
		return nil
	}

	builder := existing.Update().
		SetState(it.State().String()).
		SetDone(done).
		SetIncorrect(incorrect).
		SetNumAnswers(it.NumAnswers())
	if !it.LastAnswer().IsZero() {
		builder = builder.SetLastAnswer(it.LastAnswer())
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update session item: %w", err)
	}
	return nil
}

// Report finalizes the item: a never-started assignment completes its
// lessons and enters the review ladder at apprentice I, a started one
// moves by the review result.
func (k *ItemSink) Report(ctx context.Context, it *session.Item) error {
	now := time.Now()
	assignments := k.store.Assignments()

	assignment, err := assignments.Get(ctx, it.ID())
	if err != nil {
		return err
	}
	if assignment == nil {
		return fmt.Errorf("report item: no assignment for subject %d", it.ID())
	}

	before := it.Stage()
	var after srs.Stage
	if assignment.Started() {
		after = srs.NextStage(before, it.TotalIncorrect())
		if err := assignments.Advance(ctx, it.ID(), after, now); err != nil {
			return err
		}
	} else {
		after = srs.StageApprentice1
		if err := assignments.Start(ctx, it.ID(), after, now); err != nil {
			return err
		}
	}

	if err := k.store.Events().AppendReview(ctx, ReviewEventData{
		SessionID:        k.sessionID,
		SubjectID:        it.ID(),
		IncorrectMeaning: it.QuestionIncorrect(0),
		IncorrectReading: it.TotalIncorrect() - it.QuestionIncorrect(0),
		StageBefore:      before,
		StageAfter:       after,
	}); err != nil {
		return err
	}

	k.log.Info("item reported",
		zap.Int64("subject_id", it.ID()),
		zap.Stringer("stage_before", before),
		zap.Stringer("stage_after", after),
		zap.Int("incorrect", it.TotalIncorrect()),
	)
	return k.Update(ctx, it)
}

func slotColumns(it *session.Item) (required, done []bool, incorrect []int) {
	required = make([]bool, session.NumSlots)
	done = make([]bool, session.NumSlots)
	incorrect = make([]int, session.NumSlots)
	for slot := 0; slot < session.NumSlots; slot++ {
		required[slot] = it.QuestionRequired(slot)
		done[slot] = it.QuestionDone(slot)
		incorrect[slot] = it.QuestionIncorrect(slot)
	}
	return required, done, incorrect
}

// BuildItems assembles session items for the given assignments, loading
// each assignment's subject and deriving its required question slots.
func (s *Store) BuildItems(ctx context.Context, assignments []*Assignment, separateKanjiReadings bool, sink session.Sink) ([]*session.Item, error) {
	subjects := s.Subjects()
	items := make([]*session.Item, 0, len(assignments))
	for _, a := range assignments {
		subj, err := subjects.Get(ctx, a.SubjectID)
		if err != nil {
			return nil, err
		}
		if subj == nil {
			return nil, fmt.Errorf("assignment %d references missing subject %d", a.ID, a.SubjectID)
		}
		required := session.RequiredSlots(subj, separateKanjiReadings)
		items = append(items, session.NewItem(a.SubjectID, subj, a.Stage, required, sink))
	}
	return items, nil
}
