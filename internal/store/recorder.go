package store

import (
	"context"

	"go.uber.org/zap"
)

// AnswerRecorder writes one session's answer log: every recorded answer
// appends an event, and an undo flags the latest one as retracted
// rather than deleting it.
type AnswerRecorder struct {
	store     *Store
	sessionID string
	log       *zap.Logger
}

// NewAnswerRecorder builds a recorder for one session.
func (s *Store) NewAnswerRecorder(sessionID string, log *zap.Logger) *AnswerRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &AnswerRecorder{store: s, sessionID: sessionID, log: log}
}

// RecordAnswer appends an answer event for the subject.
func (r *AnswerRecorder) RecordAnswer(ctx context.Context, subjectID int64, questionType, answer, verdict string) error {
	err := r.store.Events().AppendAnswer(ctx, AnswerEventData{
		SessionID:    r.sessionID,
		SubjectID:    subjectID,
		QuestionType: questionType,
		GivenAnswer:  answer,
		Verdict:      verdict,
	})
	if err != nil {
		return err
	}
	r.log.Debug("answer recorded",
		zap.Int64("subject_id", subjectID),
		zap.String("question_type", questionType),
		zap.String("verdict", verdict),
	)
	return nil
}

// RetractAnswer flags the subject's most recent answer event as undone.
func (r *AnswerRecorder) RetractAnswer(ctx context.Context, subjectID int64) error {
	if err := r.store.Events().MarkAnswersUndone(ctx, r.sessionID, subjectID); err != nil {
		return err
	}
	r.log.Debug("answer retracted", zap.Int64("subject_id", subjectID))
	return nil
}
