package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mizutani/kotoba/ent"
	entassignment "github.com/mizutani/kotoba/ent/assignment"
	entsubject "github.com/mizutani/kotoba/ent/subject"

	"github.com/mizutani/kotoba/internal/srs"
)

// assignmentRepo implements AssignmentRepo using the ent client.
type assignmentRepo struct {
	client *ent.Client
}

func (r *assignmentRepo) Unlock(ctx context.Context, subjectID int64) (*Assignment, error) {
	existing, err := r.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	row, err := r.client.Assignment.Create().
		SetSubjectID(subjectID).
		SetStage(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return rowToAssignment(row), nil
}

func (r *assignmentRepo) Get(ctx context.Context, subjectID int64) (*Assignment, error) {
	row, err := r.client.Assignment.Query().
		Where(entassignment.SubjectID(subjectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return rowToAssignment(row), nil
}

func (r *assignmentRepo) Lessons(ctx context.Context, limit int) ([]*Assignment, error) {
	rows, err := r.client.Assignment.Query().
		Where(entassignment.StartedAtIsNil()).
		Order(ent.Asc(entassignment.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}
	return rowsToAssignments(rows), nil
}

func (r *assignmentRepo) DueReviews(ctx context.Context, now time.Time, limit int) ([]*Assignment, error) {
	rows, err := r.client.Assignment.Query().
		Where(
			entassignment.AvailableAtLTE(now),
			entassignment.StageLT(int(srs.StageBurned)),
		).
		Order(ent.Asc(entassignment.FieldAvailableAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reviews: %w", err)
	}
	return rowsToAssignments(rows), nil
}

func (r *assignmentRepo) CountDue(ctx context.Context, now time.Time) (int, error) {
	n, err := r.client.Assignment.Query().
		Where(
			entassignment.AvailableAtLTE(now),
			entassignment.StageLT(int(srs.StageBurned)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count due reviews: %w", err)
	}
	return n, nil
}

func (r *assignmentRepo) Start(ctx context.Context, subjectID int64, stage srs.Stage, now time.Time) error {
	n, err := r.client.Assignment.Update().
		Where(entassignment.SubjectID(subjectID)).
		SetStage(int(stage)).
		SetStartedAt(now).
		SetAvailableAt(srs.NextReview(stage, now)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("start assignment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("start assignment: no assignment for subject %d", subjectID)
	}
	return nil
}

func (r *assignmentRepo) Advance(ctx context.Context, subjectID int64, stage srs.Stage, now time.Time) error {
	builder := r.client.Assignment.Update().
		Where(entassignment.SubjectID(subjectID)).
		SetStage(int(stage))

	if stage.IsBurned() {
		builder = builder.SetBurnedAt(now).ClearAvailableAt()
	} else {
		builder = builder.SetAvailableAt(srs.NextReview(stage, now))
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("advance assignment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("advance assignment: no assignment for subject %d", subjectID)
	}
	return nil
}

func (r *assignmentRepo) StageCounts(ctx context.Context) (map[srs.Stage]int, error) {
	var buckets []struct {
		Stage int `json:"stage"`
		Count int `json:"count"`
	}
	err := r.client.Assignment.Query().
		GroupBy(entassignment.FieldStage).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		return nil, fmt.Errorf("stage counts: %w", err)
	}

	counts := make(map[srs.Stage]int, len(buckets))
	for _, b := range buckets {
		counts[srs.Stage(b.Stage)] = b.Count
	}
	return counts, nil
}

// UnlockLevel creates assignments for every subject at the given level
// that has none yet, and returns how many were created.
func (s *Store) UnlockLevel(ctx context.Context, level int) (int, error) {
	rows, err := s.client.Subject.Query().
		Where(entsubject.Level(level)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query level %d: %w", level, err)
	}

	assignments := s.Assignments()
	unlocked := 0
	for _, row := range rows {
		existing, err := assignments.Get(ctx, int64(row.ID))
		if err != nil {
			return unlocked, err
		}
		if existing != nil {
			continue
		}
		if _, err := assignments.Unlock(ctx, int64(row.ID)); err != nil {
			return unlocked, err
		}
		unlocked++
	}
	return unlocked, nil
}

func rowToAssignment(row *ent.Assignment) *Assignment {
	return &Assignment{
		ID:          row.ID,
		SubjectID:   row.SubjectID,
		Stage:       srs.Stage(row.Stage),
		AvailableAt: row.AvailableAt,
		StartedAt:   row.StartedAt,
		BurnedAt:    row.BurnedAt,
	}
}

func rowsToAssignments(rows []*ent.Assignment) []*Assignment {
	out := make([]*Assignment, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToAssignment(row))
	}
	return out
}
