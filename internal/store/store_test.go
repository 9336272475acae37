package store

import (
	"context"
	"testing"
	"time"

	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testVocab(characters, meaning, reading string) *subject.Subject {
	return &subject.Subject{
		Kind:       subject.KindVocabulary,
		Characters: characters,
		Level:      1,
		Meanings: []subject.Meaning{
			{Text: meaning, Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: reading, Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
	}
}

func TestSubjectSaveAndFind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	subjects := s.Subjects()

	id, err := subjects.Save(ctx, testVocab("猫", "cat", "ねこ"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := subjects.Find(ctx, subject.KindVocabulary, "猫")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("Find returned %+v, want ID %d", got, id)
	}
	if got.PrimaryMeaning() != "cat" || got.PrimaryReading() != "ねこ" {
		t.Errorf("round trip lost data: %+v", got)
	}

	// Saving again updates in place rather than duplicating.
	again := testVocab("猫", "cat", "ねこ")
	again.Level = 2
	id2, err := subjects.Save(ctx, again)
	if err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if id2 != id {
		t.Errorf("re-save created new row: %d != %d", id2, id)
	}
	n, err := subjects.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestAssignmentLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Subjects().Save(ctx, testVocab("犬", "dog", "いぬ"))
	if err != nil {
		t.Fatalf("save subject: %v", err)
	}

	assignments := s.Assignments()
	a, err := assignments.Unlock(ctx, id)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if a.Started() {
		t.Error("fresh assignment should not be started")
	}

	lessons, err := assignments.Lessons(ctx, 10)
	if err != nil {
		t.Fatalf("lessons: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("got %d lesson assignments, want 1", len(lessons))
	}

	now := time.Now()
	if err := assignments.Start(ctx, id, srs.StageApprentice1, now); err != nil {
		t.Fatalf("start: %v", err)
	}

	// The first review unlocks four hours out, so nothing is due yet.
	due, err := assignments.CountDue(ctx, now)
	if err != nil {
		t.Fatalf("count due: %v", err)
	}
	if due != 0 {
		t.Errorf("CountDue(now) = %d, want 0", due)
	}
	due, err = assignments.CountDue(ctx, now.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("count due: %v", err)
	}
	if due != 1 {
		t.Errorf("CountDue(now+5h) = %d, want 1", due)
	}

	if err := assignments.Advance(ctx, id, srs.StageApprentice2, now); err != nil {
		t.Fatalf("advance: %v", err)
	}
	got, err := assignments.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stage != srs.StageApprentice2 {
		t.Errorf("stage = %v, want apprentice II", got.Stage)
	}

	// Burning clears the review schedule.
	if err := assignments.Advance(ctx, id, srs.StageBurned, now); err != nil {
		t.Fatalf("advance to burned: %v", err)
	}
	got, err = assignments.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AvailableAt != nil {
		t.Error("burned assignment still has a review scheduled")
	}
	if got.BurnedAt == nil {
		t.Error("burned assignment missing burned_at")
	}
}

func TestItemSinkReportAdvancesAssignment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Subjects().Save(ctx, testVocab("水", "water", "みず"))
	if err != nil {
		t.Fatalf("save subject: %v", err)
	}
	if _, err := s.Assignments().Unlock(ctx, id); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	now := time.Now()
	if err := s.Assignments().Start(ctx, id, srs.StageApprentice3, now.Add(-48*time.Hour)); err != nil {
		t.Fatalf("start: %v", err)
	}

	sink := s.NewItemSink("test-session", nil)
	due, err := s.Assignments().DueReviews(ctx, now, 10)
	if err != nil {
		t.Fatalf("due reviews: %v", err)
	}
	items, err := s.BuildItems(ctx, due, false, sink)
	if err != nil {
		t.Fatalf("build items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	it := items[0]
	it.SetQuestionDone(0, true)
	it.SetQuestionDone(1, true)
	it.SetNumAnswers(2)
	if err := it.Report(ctx); err != nil {
		t.Fatalf("report: %v", err)
	}

	a, err := s.Assignments().Get(ctx, id)
	if err != nil {
		t.Fatalf("get assignment: %v", err)
	}
	if a.Stage != srs.StageApprentice4 {
		t.Errorf("stage = %v, want apprentice IV after clean review", a.Stage)
	}
}

func TestItemSinkUpdatePersistsProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Subjects().Save(ctx, testVocab("火", "fire", "ひ"))
	if err != nil {
		t.Fatalf("save subject: %v", err)
	}
	subj, err := s.Subjects().Get(ctx, id)
	if err != nil {
		t.Fatalf("get subject: %v", err)
	}

	sink := s.NewItemSink("test-session", nil)
	it := session.NewItem(id, subj, srs.StageApprentice1, session.RequiredSlots(subj, false), sink)

	it.SetQuestionIncorrect(1, 1)
	it.SetNumAnswers(1)
	if err := it.Update(ctx); err != nil {
		t.Fatalf("first update: %v", err)
	}
	it.SetQuestionDone(1, true)
	it.SetNumAnswers(2)
	if err := it.Update(ctx); err != nil {
		t.Fatalf("second update: %v", err)
	}

	row, err := s.Client().SessionItem.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query session item: %v", err)
	}
	if row.NumAnswers != 2 {
		t.Errorf("num_answers = %d, want 2", row.NumAnswers)
	}
	if !row.Done[1] || row.Incorrect[1] != 1 {
		t.Errorf("slot state not persisted: done=%v incorrect=%v", row.Done, row.Incorrect)
	}
}

func TestEventRepoSessionAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	append := func(verdict string) {
		t.Helper()
		err := events.AppendAnswer(ctx, AnswerEventData{
			SessionID:    "acc-session",
			SubjectID:    7,
			QuestionType: "MEANING",
			GivenAnswer:  "x",
			Verdict:      verdict,
		})
		if err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}
	append("ok")
	append("wrong")
	append("ok-with-typo")

	correct, total, err := events.SessionAccuracy(ctx, "acc-session")
	if err != nil {
		t.Fatalf("session accuracy: %v", err)
	}
	if correct != 2 || total != 3 {
		t.Errorf("accuracy = %d/%d, want 2/3", correct, total)
	}

	// Retract the latest answer; it drops out of the tally.
	if err := events.MarkAnswersUndone(ctx, "acc-session", 7); err != nil {
		t.Fatalf("mark undone: %v", err)
	}
	correct, total, err = events.SessionAccuracy(ctx, "acc-session")
	if err != nil {
		t.Fatalf("session accuracy: %v", err)
	}
	if correct != 1 || total != 2 {
		t.Errorf("accuracy after undo = %d/%d, want 1/2", correct, total)
	}
}

func TestAnswerRecorder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	rec := s.NewAnswerRecorder("rec-session", nil)

	if err := rec.RecordAnswer(ctx, 3, "MEANING", "water", "ok"); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if err := rec.RecordAnswer(ctx, 3, "READING", "すい", "wrong"); err != nil {
		t.Fatalf("record answer: %v", err)
	}

	correct, total, err := s.Events().SessionAccuracy(ctx, "rec-session")
	if err != nil {
		t.Fatalf("session accuracy: %v", err)
	}
	if correct != 1 || total != 2 {
		t.Errorf("accuracy = %d/%d, want 1/2", correct, total)
	}

	if err := rec.RetractAnswer(ctx, 3); err != nil {
		t.Fatalf("retract answer: %v", err)
	}
	correct, total, err = s.Events().SessionAccuracy(ctx, "rec-session")
	if err != nil {
		t.Fatalf("session accuracy: %v", err)
	}
	if correct != 1 || total != 1 {
		t.Errorf("accuracy after retraction = %d/%d, want 1/1", correct, total)
	}
}
