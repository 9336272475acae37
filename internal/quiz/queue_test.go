package quiz

import (
	"context"
	"testing"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

func kanjiSubject(id int64) *subject.Subject {
	return &subject.Subject{
		ID:         id,
		Kind:       subject.KindKanji,
		Characters: "水",
		Meanings: []subject.Meaning{
			{Text: "water", Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "すい", Kind: subject.ReadingOn, Primary: true, Accepted: true},
			{Text: "みず", Kind: subject.ReadingKun, Accepted: true},
		},
	}
}

func testSession(t *testing.T, opts Options, subjects ...*subject.Subject) (*Session, *recordSink) {
	t.Helper()
	sink := &recordSink{}
	var items []*session.Item
	for _, subj := range subjects {
		required := session.RequiredSlots(subj, opts.SeparateKanjiReadings)
		items = append(items, session.NewItem(subj.ID, subj, srs.StageApprentice3, required, sink))
	}
	return NewSession(opts, items), sink
}

func TestSessionDealsRequiredQuestions(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview}, vocabSubject(), kanjiSubject(2))

	// One meaning and one combined reading question per subject.
	if got := s.Remaining(); got != 4 {
		t.Errorf("Remaining() = %d, want 4", got)
	}
}

func TestSessionSeparateKanjiReadings(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview, SeparateKanjiReadings: true}, kanjiSubject(2))

	counts := map[Type]int{}
	for _, q := range s.queue {
		counts[q.Type()]++
	}
	want := map[Type]int{TypeMeaning: 1, TypeReadingOn: 1, TypeReadingKun: 1}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("got %d %v questions, want %d", counts[typ], typ, n)
		}
	}
}

func TestSessionRunsToCompletion(t *testing.T) {
	s, sink := testSession(t, Options{Type: session.TypeReview}, vocabSubject())

	ctx := context.Background()
	for guard := 0; !s.IsDone(); guard++ {
		if guard > 10 {
			t.Fatal("session did not finish")
		}
		q := s.Current()
		answer := "to eat"
		if q.Type().IsReading() {
			answer = "たべる"
		}
		v, err := s.Answer(ctx, answer, nil)
		if err != nil {
			t.Fatalf("Answer: %v", err)
		}
		if !v.IsCorrect() {
			t.Fatalf("Answer(%q) = %v, want correct", answer, v.Status)
		}
	}

	if sink.reports != 1 {
		t.Errorf("got %d reports, want 1", sink.reports)
	}
	sum := s.Summarize()
	if sum.Completed != 1 || sum.Incorrect != 0 {
		t.Errorf("Summarize() = %+v, want 1 completed and 0 incorrect", sum)
	}
}

func TestSessionRequeuesMiss(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview}, vocabSubject())

	ctx := context.Background()
	q := s.Current()
	answer := "wrong answer"
	if q.Type().IsReading() {
		answer = "ちがう"
	}
	v, err := s.Answer(ctx, answer, nil)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if v.IsCorrect() || v.NeedsRetry() {
		t.Fatalf("Answer(%q) = %v, want wrong", answer, v.Status)
	}

	if s.Remaining() != 2 {
		t.Errorf("Remaining() = %d after a miss, want 2", s.Remaining())
	}
	if s.queue[len(s.queue)-1] != q {
		t.Error("missed question was not moved to the back of the queue")
	}
	if s.Current() == q && len(s.queue) > 1 {
		t.Error("missed question came straight back up")
	}
}

func TestSessionRetryDoesNotRecord(t *testing.T) {
	s, sink := testSession(t, Options{Type: session.TypeReview}, vocabSubject())

	v, err := s.Answer(context.Background(), "   ", nil)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !v.NeedsRetry() {
		t.Errorf("blank answer verdict = %v, want retry", v.Status)
	}
	if sink.updates != 0 || sink.reports != 0 {
		t.Errorf("retry persisted: %d updates, %d reports", sink.updates, sink.reports)
	}
	if s.CanUndo() {
		t.Error("retry opened the undo window")
	}
}

func TestSessionUndoLast(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview}, vocabSubject())

	ctx := context.Background()
	if _, err := s.UndoLast(ctx); err != ErrNothingToUndo {
		t.Errorf("UndoLast on fresh session = %v, want ErrNothingToUndo", err)
	}

	q := s.Current()
	answer := "to eat"
	if q.Type().IsReading() {
		answer = "たべる"
	}
	if _, err := s.Answer(ctx, answer, nil); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !s.CanUndo() {
		t.Fatal("CanUndo() = false right after an answer")
	}

	undone, err := s.UndoLast(ctx)
	if err != nil {
		t.Fatalf("UndoLast: %v", err)
	}
	if undone != q {
		t.Error("UndoLast returned a different question")
	}
	if q.IsFinished() {
		t.Error("undone question still finished")
	}
	if s.CanUndo() {
		t.Error("undo window still open after use")
	}
}

func TestSessionUndoWindowClosesOnReport(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview}, vocabSubject())

	ctx := context.Background()
	for !s.IsDone() {
		q := s.Current()
		answer := "to eat"
		if q.Type().IsReading() {
			answer = "たべる"
		}
		if _, err := s.Answer(ctx, answer, nil); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	if s.CanUndo() {
		t.Error("CanUndo() = true after the item was reported")
	}
	if _, err := s.UndoLast(ctx); err != ErrNothingToUndo {
		t.Errorf("UndoLast after report = %v, want ErrNothingToUndo", err)
	}
}

func TestSessionDelayedReportPending(t *testing.T) {
	s, sink := testSession(t, Options{Type: session.TypeReview, Delayed: true}, vocabSubject())

	ctx := context.Background()
	for !s.IsDone() {
		q := s.Current()
		answer := "to eat"
		if q.Type().IsReading() {
			answer = "たべる"
		}
		if _, err := s.Answer(ctx, answer, nil); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	if sink.reports != 0 {
		t.Fatalf("got %d reports before ReportPending, want 0", sink.reports)
	}
	if err := s.ReportPending(ctx); err != nil {
		t.Fatalf("ReportPending: %v", err)
	}
	if sink.reports != 1 {
		t.Errorf("got %d reports, want 1", sink.reports)
	}
	// Idempotent: pending items were consumed.
	if err := s.ReportPending(ctx); err != nil {
		t.Fatalf("ReportPending again: %v", err)
	}
	if sink.reports != 1 {
		t.Errorf("second ReportPending re-reported: %d reports", sink.reports)
	}
}

func TestSessionAbandonRemaining(t *testing.T) {
	s, sink := testSession(t, Options{Type: session.TypeReview}, vocabSubject(), kanjiSubject(2))

	ctx := context.Background()
	if err := s.AbandonRemaining(ctx); err != nil {
		t.Fatalf("AbandonRemaining: %v", err)
	}

	for _, it := range s.Items() {
		if !it.IsAbandoned() {
			t.Errorf("item %d state = %v, want abandoned", it.ID(), it.State())
		}
	}
	if sink.reports != 0 {
		t.Errorf("abandon produced %d reports, want 0", sink.reports)
	}
	if !s.IsDone() {
		t.Error("session with only abandoned items should be done")
	}
	sum := s.Summarize()
	if sum.Abandoned != 2 || sum.Completed != 0 {
		t.Errorf("Summarize() = %+v, want 2 abandoned", sum)
	}
}

type recordedAnswer struct {
	subjectID    int64
	questionType string
	answer       string
	verdict      string
}

type captureRecorder struct {
	answers     []recordedAnswer
	retractions []int64
}

func (r *captureRecorder) RecordAnswer(_ context.Context, subjectID int64, questionType, answer, verdict string) error {
	r.answers = append(r.answers, recordedAnswer{subjectID, questionType, answer, verdict})
	return nil
}

func (r *captureRecorder) RetractAnswer(_ context.Context, subjectID int64) error {
	r.retractions = append(r.retractions, subjectID)
	return nil
}

func TestSessionRecordsAnswers(t *testing.T) {
	rec := &captureRecorder{}
	s, _ := testSession(t, Options{Type: session.TypeReview, Recorder: rec}, vocabSubject())

	ctx := context.Background()
	// A retry leaves no trace in the answer log.
	if _, err := s.Answer(ctx, "   ", nil); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if len(rec.answers) != 0 {
		t.Fatalf("retry recorded %d answers, want 0", len(rec.answers))
	}

	for !s.IsDone() {
		q := s.Current()
		answer := "to eat"
		if q.Type().IsReading() {
			answer = "たべる"
		}
		if _, err := s.Answer(ctx, answer, nil); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}

	if len(rec.answers) != 2 {
		t.Fatalf("got %d recorded answers, want 2", len(rec.answers))
	}
	for _, a := range rec.answers {
		if a.subjectID != 1 {
			t.Errorf("recorded subject %d, want 1", a.subjectID)
		}
		if a.verdict != grader.StatusOK.String() {
			t.Errorf("recorded verdict %q, want %q", a.verdict, grader.StatusOK)
		}
	}
	if len(rec.retractions) != 0 {
		t.Errorf("got %d retractions, want 0", len(rec.retractions))
	}
}

func TestSessionUndoRetractsAnswer(t *testing.T) {
	rec := &captureRecorder{}
	s, _ := testSession(t, Options{Type: session.TypeReview, Recorder: rec}, vocabSubject())

	ctx := context.Background()
	q := s.Current()
	answer := "to eat"
	if q.Type().IsReading() {
		answer = "たべる"
	}
	if _, err := s.Answer(ctx, answer, nil); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := s.UndoLast(ctx); err != nil {
		t.Fatalf("UndoLast: %v", err)
	}

	if len(rec.answers) != 1 {
		t.Fatalf("got %d recorded answers, want 1", len(rec.answers))
	}
	if len(rec.retractions) != 1 || rec.retractions[0] != 1 {
		t.Fatalf("retractions = %v, want [1]", rec.retractions)
	}
}

func TestSessionMeaningLenience(t *testing.T) {
	s, _ := testSession(t, Options{Type: session.TypeReview, Lenience: grader.LenienceReject}, vocabSubject())

	// Force the meaning question to the front.
	for s.Current().Type() != TypeMeaning {
		s.queue = append(s.queue[1:], s.queue[0])
	}

	v, err := s.Answer(context.Background(), "to ea", nil)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if v.Status != grader.StatusWrong {
		t.Errorf("near miss under reject lenience = %v, want wrong", v.Status)
	}
}
