// Package grader checks learner answers against a subject's accepted
// meanings and readings.
package grader

// Status classifies the outcome of checking one answer.
type Status int

const (
	// StatusOK is an exact match.
	StatusOK Status = iota
	// StatusOKWithTypo is a near match accepted under the lenience policy,
	// flagged so the UI can tell the learner.
	StatusOKWithTypo
	// StatusRetry is a rejected answer the learner should re-enter without
	// penalty: empty input, non-kana input for a reading, the kanji reading
	// given for a single-kanji vocabulary word, or a near miss under a
	// retry lenience policy.
	StatusRetry
	// StatusWrong is a final incorrect answer.
	StatusWrong
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusOKWithTypo:
		return "ok-with-typo"
	case StatusRetry:
		return "retry"
	case StatusWrong:
		return "wrong"
	}
	return "unknown"
}

// Verdict is the result of checking one answer. Message carries an
// optional note for the UI (why a retry, or that a typo was forgiven).
type Verdict struct {
	Status  Status
	Message string
}

// IsCorrect reports whether the answer counts as correct.
func (v Verdict) IsCorrect() bool {
	return v.Status == StatusOK || v.Status == StatusOKWithTypo
}

// NeedsRetry reports whether the learner should re-enter the answer
// without it counting as an attempt.
func (v Verdict) NeedsRetry() bool {
	return v.Status == StatusRetry
}

// Retry builds a retry verdict with a note for the UI.
func Retry(message string) Verdict {
	return Verdict{Status: StatusRetry, Message: message}
}

// Lenience is the policy for answers that are close to correct but not
// exact (one or two character typos in a meaning).
type Lenience int

const (
	// LenienceAccept silently accepts a near match.
	LenienceAccept Lenience = iota
	// LenienceAcceptNotice accepts a near match and tells the learner.
	LenienceAcceptNotice
	// LenienceRetry rejects a near match but lets the learner retry
	// without penalty.
	LenienceRetry
	// LenienceReject counts a near match as wrong.
	LenienceReject
)
