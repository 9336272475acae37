package grader

import (
	"testing"

	"github.com/mizutani/kotoba/internal/subject"
)

func vocabSubject() *subject.Subject {
	return &subject.Subject{
		ID:         1,
		Kind:       subject.KindVocabulary,
		Characters: "食べる",
		Meanings: []subject.Meaning{
			{Text: "to eat", Primary: true, Accepted: true},
			{Text: "eat", Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "たべる", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
		PartsOfSpeech: []string{"ichidan verb", "transitive verb"},
	}
}

func TestMatchMeaning_Exact(t *testing.T) {
	sub := vocabSubject()

	tests := []struct {
		answer string
		want   Status
	}{
		{"to eat", StatusOK},
		{"To Eat", StatusOK},
		{"  eat  ", StatusOK},
		{"to-eat", StatusOK},
		{"to drink", StatusWrong},
	}

	for _, tc := range tests {
		got := MatchMeaning(sub, tc.answer, LenienceReject)
		if got.Status != tc.want {
			t.Errorf("MatchMeaning(%q) = %v, want %v", tc.answer, got.Status, tc.want)
		}
	}
}

func TestMatchMeaning_TypoLenience(t *testing.T) {
	sub := &subject.Subject{
		Meanings: []subject.Meaning{
			{Text: "vocabulary", Primary: true, Accepted: true},
		},
	}

	tests := []struct {
		answer   string
		lenience Lenience
		want     Status
	}{
		{"vocabulery", LenienceAccept, StatusOK},
		{"vocabulery", LenienceAcceptNotice, StatusOKWithTypo},
		{"vocabulery", LenienceRetry, StatusRetry},
		{"vocabulery", LenienceReject, StatusWrong},
		{"completely off", LenienceAccept, StatusWrong},
	}

	for _, tc := range tests {
		got := MatchMeaning(sub, tc.answer, tc.lenience)
		if got.Status != tc.want {
			t.Errorf("MatchMeaning(%q, %v) = %v, want %v", tc.answer, tc.lenience, got.Status, tc.want)
		}
	}
}

func TestMatchMeaning_ShortAnswersGetNoTolerance(t *testing.T) {
	sub := &subject.Subject{
		Meanings: []subject.Meaning{{Text: "one", Primary: true, Accepted: true}},
	}
	got := MatchMeaning(sub, "oen", LenienceAccept)
	if got.Status != StatusWrong {
		t.Errorf("3-letter answer with a typo: got %v, want StatusWrong", got.Status)
	}
}

func TestMatchReading(t *testing.T) {
	sub := vocabSubject()

	tests := []struct {
		answer string
		want   Status
	}{
		{"たべる", StatusOK},
		{"taberu", StatusOK},
		{"タベル", StatusOK},
		{"たべます", StatusWrong},
		{"xyzzy", StatusRetry},
	}

	for _, tc := range tests {
		got := MatchReading(sub, subject.ReadingVocab, nil, tc.answer)
		if got.Status != tc.want {
			t.Errorf("MatchReading(%q) = %v, want %v", tc.answer, got.Status, tc.want)
		}
	}
}

func TestMatchReading_DoubledFinalN(t *testing.T) {
	sub := &subject.Subject{
		Kind:       subject.KindVocabulary,
		Characters: "新聞",
		Readings: []subject.Reading{
			{Text: "しんぶん", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
	}

	// "nn" for a final ん is how every IME user types it.
	for _, answer := range []string{"shinbunn", "しんぶんn", "shinbun", "しんぶん"} {
		if got := MatchReading(sub, subject.ReadingVocab, nil, answer); got.Status != StatusOK {
			t.Errorf("MatchReading(%q) = %v, want StatusOK", answer, got.Status)
		}
	}
}

func TestMatchReading_KanjiConfusionRetries(t *testing.T) {
	vocab := &subject.Subject{
		Kind:       subject.KindVocabulary,
		Characters: "水",
		Readings: []subject.Reading{
			{Text: "みず", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
	}
	kanji := &subject.Subject{
		Kind:       subject.KindKanji,
		Characters: "水",
		Readings: []subject.Reading{
			{Text: "すい", Kind: subject.ReadingOn, Primary: true, Accepted: true},
		},
	}

	got := MatchReading(vocab, subject.ReadingVocab, kanji, "すい")
	if got.Status != StatusRetry {
		t.Errorf("kanji reading for vocab question: got %v, want StatusRetry", got.Status)
	}

	got = MatchReading(vocab, subject.ReadingVocab, kanji, "みず")
	if got.Status != StatusOK {
		t.Errorf("vocab reading: got %v, want StatusOK", got.Status)
	}
}

func TestMatchReading_KindFilter(t *testing.T) {
	kanji := &subject.Subject{
		Kind:       subject.KindKanji,
		Characters: "山",
		Readings: []subject.Reading{
			{Text: "さん", Kind: subject.ReadingOn, Primary: true, Accepted: true},
			{Text: "やま", Kind: subject.ReadingKun, Accepted: true},
		},
	}

	if got := MatchReading(kanji, subject.ReadingOn, nil, "さん"); got.Status != StatusOK {
		t.Errorf("on'yomi answer on on'yomi question: got %v, want StatusOK", got.Status)
	}
	if got := MatchReading(kanji, subject.ReadingOn, nil, "やま"); got.Status != StatusWrong {
		t.Errorf("kun'yomi answer on on'yomi question: got %v, want StatusWrong", got.Status)
	}
}

func TestTypoTolerance(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{1, 0}, {3, 0}, {4, 1}, {5, 1}, {6, 2}, {9, 2}, {14, 3},
	}
	for _, tc := range tests {
		if got := typoTolerance(tc.length); got != tc.want {
			t.Errorf("typoTolerance(%d) = %d, want %d", tc.length, got, tc.want)
		}
	}
}
