package quiz

import (
	"context"
	"testing"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

type recordSink struct {
	updates int
	reports int
}

func (s *recordSink) Update(ctx context.Context, it *session.Item) error {
	s.updates++
	return nil
}

func (s *recordSink) Report(ctx context.Context, it *session.Item) error {
	s.reports++
	return nil
}

type stubSettings struct {
	randomize bool
	indicate  bool
}

func (s stubSettings) RandomizeInflections(session.Type) bool { return s.randomize }
func (s stubSettings) IndicateKanjiReadingType() bool         { return s.indicate }

func vocabSubject() *subject.Subject {
	return &subject.Subject{
		ID:         1,
		Kind:       subject.KindVocabulary,
		Characters: "食べる",
		Meanings: []subject.Meaning{
			{Text: "to eat", Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "たべる", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
		PartsOfSpeech: []string{"ichidan verb"},
	}
}

func vocabItem(sink session.Sink) *session.Item {
	subj := vocabSubject()
	return session.NewItem(1, subj, srs.StageApprentice2, session.RequiredSlots(subj, false), sink)
}

func TestCheckAnswerBlankIsRetry(t *testing.T) {
	sink := &recordSink{}
	q := New(vocabItem(sink), TypeMeaning, session.TypeReview, stubSettings{})

	for _, answer := range []string{"", "   ", "\t"} {
		v := q.CheckAnswer(nil, answer, grader.LenienceAccept)
		if !v.NeedsRetry() {
			t.Errorf("CheckAnswer(%q) = %v, want retry", answer, v.Status)
		}
	}
	if sink.updates != 0 || sink.reports != 0 {
		t.Errorf("blank answers persisted: %d updates, %d reports", sink.updates, sink.reports)
	}
}

func TestMarkCorrectIntermediate(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	q := New(it, TypeMeaning, session.TypeReview, stubSettings{})

	if err := q.MarkCorrect(context.Background(), false); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}

	if !it.QuestionDone(0) {
		t.Error("meaning slot not marked done")
	}
	if it.NumAnswers() != 1 {
		t.Errorf("NumAnswers() = %d, want 1", it.NumAnswers())
	}
	if it.LastAnswer().IsZero() {
		t.Error("LastAnswer not stamped")
	}
	if sink.updates != 1 || sink.reports != 0 {
		t.Errorf("got %d updates, %d reports, want 1 update and no report", sink.updates, sink.reports)
	}
	if !q.IsFinished() {
		t.Error("question should be finished after its slot is done")
	}
	if it.IsFinished() {
		t.Error("item should not be finished with the reading slot open")
	}
}

func TestMarkCorrectFinalReportsImmediately(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	meaning := New(it, TypeMeaning, session.TypeReview, stubSettings{})
	reading := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := meaning.MarkCorrect(ctx, false); err != nil {
		t.Fatalf("MarkCorrect meaning: %v", err)
	}
	if err := reading.MarkCorrect(ctx, false); err != nil {
		t.Fatalf("MarkCorrect reading: %v", err)
	}

	if !it.IsReported() {
		t.Errorf("item state = %v, want reported", it.State())
	}
	if sink.reports != 1 {
		t.Errorf("got %d reports, want 1", sink.reports)
	}
	if sink.updates != 1 {
		t.Errorf("got %d updates, want 1 (the intermediate answer)", sink.updates)
	}
}

func TestMarkCorrectFinalDelayedParksPending(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	meaning := New(it, TypeMeaning, session.TypeReview, stubSettings{})
	reading := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := meaning.MarkCorrect(ctx, true); err != nil {
		t.Fatalf("MarkCorrect meaning: %v", err)
	}
	if err := reading.MarkCorrect(ctx, true); err != nil {
		t.Fatalf("MarkCorrect reading: %v", err)
	}

	if !it.IsPending() {
		t.Errorf("item state = %v, want pending", it.State())
	}
	if sink.reports != 0 {
		t.Errorf("got %d reports, want none before the session ends", sink.reports)
	}
	if sink.updates != 2 {
		t.Errorf("got %d updates, want 2", sink.updates)
	}
}

func TestMarkIncorrect(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	q := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := q.MarkIncorrect(ctx); err != nil {
		t.Fatalf("MarkIncorrect: %v", err)
	}
	if err := q.MarkIncorrect(ctx); err != nil {
		t.Fatalf("MarkIncorrect: %v", err)
	}

	if got := it.QuestionIncorrect(1); got != 2 {
		t.Errorf("QuestionIncorrect(1) = %d, want 2", got)
	}
	if it.NumAnswers() != 2 {
		t.Errorf("NumAnswers() = %d, want 2", it.NumAnswers())
	}
	if it.QuestionDone(1) {
		t.Error("incorrect answers must not complete the slot")
	}
	if sink.updates != 2 {
		t.Errorf("got %d updates, want 2", sink.updates)
	}
}

func TestUndoCorrectAnswer(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	q := New(it, TypeMeaning, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := q.MarkCorrect(ctx, false); err != nil {
		t.Fatalf("MarkCorrect: %v", err)
	}
	if err := q.Undo(ctx); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if it.QuestionDone(0) {
		t.Error("slot still done after undo")
	}
	if it.NumAnswers() != 0 {
		t.Errorf("NumAnswers() = %d, want 0", it.NumAnswers())
	}
	if q.IsFinished() {
		t.Error("question finished after undo")
	}
}

func TestUndoIncorrectAnswer(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	q := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := q.MarkIncorrect(ctx); err != nil {
		t.Fatalf("MarkIncorrect: %v", err)
	}
	if err := q.Undo(ctx); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if got := it.QuestionIncorrect(1); got != 0 {
		t.Errorf("QuestionIncorrect(1) = %d, want 0", got)
	}
	if it.NumAnswers() != 0 {
		t.Errorf("NumAnswers() = %d, want 0", it.NumAnswers())
	}
}

func TestUndoPendingRestoresActive(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	meaning := New(it, TypeMeaning, session.TypeReview, stubSettings{})
	reading := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := meaning.MarkCorrect(ctx, true); err != nil {
		t.Fatalf("MarkCorrect meaning: %v", err)
	}
	if err := reading.MarkCorrect(ctx, true); err != nil {
		t.Fatalf("MarkCorrect reading: %v", err)
	}
	if !it.IsPending() {
		t.Fatalf("item state = %v, want pending", it.State())
	}

	if err := reading.Undo(ctx); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if !it.IsActive() {
		t.Errorf("item state = %v, want active after undo", it.State())
	}
	if it.QuestionDone(1) {
		t.Error("reading slot still done after undo")
	}
	if !it.QuestionDone(0) {
		t.Error("meaning slot lost its answer")
	}
	if sink.reports != 0 {
		t.Errorf("got %d reports, want none", sink.reports)
	}
}

func TestUndoNoopAfterReport(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	meaning := New(it, TypeMeaning, session.TypeReview, stubSettings{})
	reading := New(it, TypeReading, session.TypeReview, stubSettings{})

	ctx := context.Background()
	if err := meaning.MarkCorrect(ctx, false); err != nil {
		t.Fatalf("MarkCorrect meaning: %v", err)
	}
	if err := reading.MarkCorrect(ctx, false); err != nil {
		t.Fatalf("MarkCorrect reading: %v", err)
	}

	if reading.CanUndo() {
		t.Error("CanUndo() = true on a reported item")
	}

	updates := sink.updates
	if err := reading.Undo(ctx); err != nil {
		t.Errorf("Undo on a reported item: %v, want silent no-op", err)
	}
	if got := it.NumAnswers(); got != 2 {
		t.Errorf("NumAnswers() = %d after no-op undo, want 2", got)
	}
	if !it.QuestionDone(1) {
		t.Error("reading slot lost its answer")
	}
	if !it.IsReported() {
		t.Errorf("item state = %v, want still reported", it.State())
	}
	if sink.updates != updates {
		t.Errorf("no-op undo persisted: %d updates, want %d", sink.updates, updates)
	}
}

func TestQuestionFinishedWhenItemInactive(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	q := New(it, TypeMeaning, session.TypeReview, stubSettings{})

	if err := it.Abandon(context.Background()); err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if !q.IsFinished() {
		t.Error("question on an abandoned item should count as finished")
	}
	if q.CanUndo() {
		t.Error("CanUndo() = true on an abandoned item")
	}
}

func TestCheckAnswerDispatch(t *testing.T) {
	sink := &recordSink{}
	it := vocabItem(sink)
	settings := stubSettings{}

	tests := []struct {
		name   string
		typ    Type
		answer string
		want   grader.Status
	}{
		{"meaning exact", TypeMeaning, "to eat", grader.StatusOK},
		{"meaning wrong", TypeMeaning, "to drink", grader.StatusWrong},
		{"reading kana", TypeReading, "たべる", grader.StatusOK},
		{"reading romaji", TypeReading, "taberu", grader.StatusOK},
		{"reading wrong", TypeReading, "のむ", grader.StatusWrong},
		{"reading not kana", TypeReading, "eat", grader.StatusRetry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(it, tt.typ, session.TypeReview, settings)
			v := q.CheckAnswer(nil, tt.answer, grader.LenienceAccept)
			if v.Status != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, v.Status, tt.want)
			}
		})
	}
}
