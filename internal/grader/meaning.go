package grader

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"

	"github.com/mizutani/kotoba/internal/subject"
)

// MatchMeaning checks an English meaning answer. Near matches within the
// typo tolerance for the answer's length are resolved by the lenience
// policy.
func MatchMeaning(sub *subject.Subject, answer string, lenience Lenience) Verdict {
	given := normalizeMeaning(answer)
	if given == "" {
		return Retry("enter an answer")
	}

	best := -1
	for _, accepted := range sub.AcceptedMeanings() {
		want := normalizeMeaning(accepted)
		if given == want {
			return Verdict{Status: StatusOK}
		}
		d := levenshtein.Distance(given, want, nil)
		if d <= typoTolerance(len([]rune(want))) {
			if best == -1 || d < best {
				best = d
			}
		}
	}

	if best == -1 {
		return Verdict{Status: StatusWrong}
	}

	switch lenience {
	case LenienceAccept:
		return Verdict{Status: StatusOK}
	case LenienceAcceptNotice:
		return Verdict{Status: StatusOKWithTypo, Message: "close enough, but check your spelling"}
	case LenienceRetry:
		return Retry("almost, try typing it again")
	default:
		return Verdict{Status: StatusWrong}
	}
}

// typoTolerance returns the maximum edit distance forgiven for an accepted
// meaning of the given rune length.
func typoTolerance(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 5:
		return 1
	case length <= 9:
		return 2
	default:
		return length/7 + 1
	}
}

// normalizeMeaning lowercases, strips punctuation, and collapses internal
// whitespace so "well-being" and "well being" compare equal.
func normalizeMeaning(s string) string {
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			space = true
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return strings.TrimSpace(string(out))
}
