package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/store"
	"github.com/mizutani/kotoba/internal/subject"
)

// Planner assembles sessions from the store: due reviews for review
// sessions, unstarted assignments for lessons, and a random sample for
// self-study.
type Planner struct {
	store *store.Store
	log   *zap.Logger
}

// NewPlanner builds a planner over the store.
func NewPlanner(st *store.Store, log *zap.Logger) *Planner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Planner{store: st, log: log}
}

// Plan is an assembled session ready to run.
type Plan struct {
	SessionID string
	Session   *Session
	StartedAt time.Time
}

// Plan assembles a session of the given type with up to batch items.
// Self-study sessions draw random subjects and report nothing; lesson
// and review sessions draw from assignments.
func (p *Planner) Plan(ctx context.Context, opts Options, batch int) (*Plan, error) {
	sessionID := uuid.NewString()
	sink := p.store.NewItemSink(sessionID, p.log)
	if opts.Type != session.TypeSelfStudy {
		opts.Recorder = p.store.NewAnswerRecorder(sessionID, p.log)
	}

	var items []*session.Item
	switch opts.Type {
	case session.TypeReview:
		due, err := p.store.Assignments().DueReviews(ctx, time.Now(), batch)
		if err != nil {
			return nil, err
		}
		items, err = p.store.BuildItems(ctx, due, opts.SeparateKanjiReadings, sink)
		if err != nil {
			return nil, err
		}
	case session.TypeLesson:
		lessons, err := p.store.Assignments().Lessons(ctx, batch)
		if err != nil {
			return nil, err
		}
		items, err = p.store.BuildItems(ctx, lessons, opts.SeparateKanjiReadings, sink)
		if err != nil {
			return nil, err
		}
	case session.TypeSelfStudy:
		subjects, err := p.store.Subjects().Sample(ctx, batch)
		if err != nil {
			return nil, err
		}
		// Self-study never reports: a discard sink keeps practice
		// answers out of the review ladder and the session tables.
		discard := discardSink{}
		for _, subj := range subjects {
			required := session.RequiredSlots(subj, opts.SeparateKanjiReadings)
			items = append(items, session.NewItem(subj.ID, subj, 0, required, discard))
		}
	default:
		return nil, fmt.Errorf("unknown session type %v", opts.Type)
	}

	if len(items) == 0 {
		return nil, ErrNothingToStudy
	}

	startedAt := time.Now()
	if opts.Type != session.TypeSelfStudy {
		err := p.store.Events().AppendSession(ctx, store.SessionEventData{
			SessionID:   sessionID,
			Action:      "start",
			SessionType: opts.Type.String(),
			ItemsTotal:  len(items),
		})
		if err != nil {
			return nil, err
		}
	}

	p.log.Info("session planned",
		zap.String("session_id", sessionID),
		zap.Stringer("type", opts.Type),
		zap.Int("items", len(items)),
	)

	return &Plan{
		SessionID: sessionID,
		Session:   NewSession(opts, items),
		StartedAt: startedAt,
	}, nil
}

// Finish records the session end event. Self-study sessions leave no
// trace.
func (p *Planner) Finish(ctx context.Context, plan *Plan, opts Options) error {
	if opts.Type == session.TypeSelfStudy {
		return nil
	}

	sum := plan.Session.Summarize()
	return p.store.Events().AppendSession(ctx, store.SessionEventData{
		SessionID:      plan.SessionID,
		Action:         "end",
		SessionType:    opts.Type.String(),
		ItemsTotal:     sum.Total,
		ItemsCompleted: sum.Completed,
		ItemsAbandoned: sum.Abandoned,
		IncorrectTotal: sum.Incorrect,
		DurationSecs:   int(time.Since(plan.StartedAt).Seconds()),
	})
}

// MatchingKanji resolves the kanji subject written identically to a
// single-kanji vocabulary item, used to soften reading confusions into a
// retry. Returns nil when the item is not single-kanji vocabulary or no
// such kanji exists.
func (p *Planner) MatchingKanji(ctx context.Context, sub *subject.Subject) (*subject.Subject, error) {
	if !sub.IsSingleKanjiVocab() {
		return nil, nil
	}
	return p.store.Subjects().Find(ctx, subject.KindKanji, sub.Characters)
}

// ErrNothingToStudy is returned when a plan comes up empty.
var ErrNothingToStudy = fmt.Errorf("nothing to study right now")

// discardSink drops all writes; self-study progress is deliberately
// ephemeral.
type discardSink struct{}

func (discardSink) Update(context.Context, *session.Item) error { return nil }
func (discardSink) Report(context.Context, *session.Item) error { return nil }
