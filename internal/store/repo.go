package store

import (
	"context"
	"time"

	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

// Assignment tracks one subject's progress through the review ladder.
type Assignment struct {
	ID          int
	SubjectID   int64
	Stage       srs.Stage
	AvailableAt *time.Time
	StartedAt   *time.Time
	BurnedAt    *time.Time
}

// Started reports whether the subject's first lesson has been completed.
func (a *Assignment) Started() bool {
	return a.StartedAt != nil
}

// SubjectRepo manages the subject catalog.
type SubjectRepo interface {
	// Save inserts the subject, or updates it in place when one with the
	// same kind and characters exists. Returns the stored ID.
	Save(ctx context.Context, sub *subject.Subject) (int64, error)

	// Get returns the subject by ID, or nil when absent.
	Get(ctx context.Context, id int64) (*subject.Subject, error)

	// Find returns the subject with the given kind and characters, or nil.
	Find(ctx context.Context, kind subject.Kind, characters string) (*subject.Subject, error)

	// ByLevel returns all subjects at the given level.
	ByLevel(ctx context.Context, level int) ([]*subject.Subject, error)

	// Sample returns up to limit random subjects, for self-study.
	Sample(ctx context.Context, limit int) ([]*subject.Subject, error)

	// SetMnemonics stores generated mnemonics on the subject.
	SetMnemonics(ctx context.Context, id int64, meaning, reading string) error

	// Count returns the catalog size.
	Count(ctx context.Context) (int, error)
}

// AssignmentRepo manages per-subject progress.
type AssignmentRepo interface {
	// Unlock creates an assignment for the subject if none exists.
	Unlock(ctx context.Context, subjectID int64) (*Assignment, error)

	// Get returns the assignment for the subject, or nil when absent.
	Get(ctx context.Context, subjectID int64) (*Assignment, error)

	// Lessons returns up to limit assignments not yet started, oldest
	// unlock first.
	Lessons(ctx context.Context, limit int) ([]*Assignment, error)

	// DueReviews returns up to limit assignments whose next review has
	// unlocked, most overdue first.
	DueReviews(ctx context.Context, now time.Time, limit int) ([]*Assignment, error)

	// CountDue returns how many reviews are available at now.
	CountDue(ctx context.Context, now time.Time) (int, error)

	// Start marks the subject's lessons complete and schedules its first
	// review at the given stage.
	Start(ctx context.Context, subjectID int64, stage srs.Stage, now time.Time) error

	// Advance applies a review result: the assignment moves to stage and
	// its next review is scheduled.
	Advance(ctx context.Context, subjectID int64, stage srs.Stage, now time.Time) error

	// StageCounts returns how many assignments sit at each stage.
	StageCounts(ctx context.Context) (map[srs.Stage]int, error)
}

// AnswerEventData captures one graded answer.
type AnswerEventData struct {
	SessionID    string
	SubjectID    int64
	QuestionType string
	GivenAnswer  string
	Verdict      string
}

// ReviewEventData captures one reported item result.
type ReviewEventData struct {
	SessionID        string
	SubjectID        int64
	IncorrectMeaning int
	IncorrectReading int
	StageBefore      srs.Stage
	StageAfter       srs.Stage
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Action         string
	SessionType    string
	ItemsTotal     int
	ItemsCompleted int
	ItemsAbandoned int
	IncorrectTotal int
	DurationSecs   int
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is one logged LLM call as read back from the log.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts bounds event log queries.
type QueryOpts struct {
	Limit int
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates LLM calls by model, for cost estimates.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and inspection access to the event log.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendReview(ctx context.Context, data ReviewEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// MarkAnswersUndone flags the most recent answer event for the
	// subject in the session as retracted.
	MarkAnswersUndone(ctx context.Context, sessionID string, subjectID int64) error

	// SessionAccuracy returns correct and total recorded answers for the
	// session, ignoring retracted ones.
	SessionAccuracy(ctx context.Context, sessionID string) (correct, total int, err error)

	// QueryLLMEvents returns recent LLM calls, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM call by row ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
