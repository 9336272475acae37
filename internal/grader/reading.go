package grader

import "github.com/mizutani/kotoba/internal/subject"

// MatchReading checks a kana reading answer. Romaji input is converted to
// hiragana first; input that cannot be converted yields a retry, never a
// wrong answer. matchingKanji, when non-nil, is the kanji subject for a
// single-kanji vocabulary word: answering with the kanji's own reading
// instead of the vocabulary reading is a retry, since the learner knows a
// correct fact about the wrong question.
func MatchReading(sub *subject.Subject, kind subject.ReadingKind, matchingKanji *subject.Subject, answer string) Verdict {
	given, ok := ToHiragana(answer)
	if !ok || given == "" {
		return Retry("answer must be in kana")
	}

	if readingMatches(sub, kind, given) {
		return Verdict{Status: StatusOK}
	}

	if matchingKanji != nil && readingMatches(matchingKanji, "", given) {
		return Retry("that is the kanji reading, not the vocabulary reading")
	}

	return Verdict{Status: StatusWrong}
}

func readingMatches(sub *subject.Subject, kind subject.ReadingKind, given string) bool {
	for _, r := range sub.AcceptedReadings(kind) {
		if FoldKana(r.Text) == given {
			return true
		}
	}
	return false
}
