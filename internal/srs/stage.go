// Package srs implements the spaced-repetition stage ladder and review
// scheduling for assignments.
package srs

import "time"

// Stage is a position on the spaced-repetition ladder. An assignment
// climbs one stage per fully correct review and falls back on mistakes.
type Stage int

const (
	StageApprentice1 Stage = iota + 1
	StageApprentice2
	StageApprentice3
	StageApprentice4
	StageGuru1
	StageGuru2
	StageMaster
	StageEnlightened
	StageBurned
)

func (s Stage) String() string {
	switch s {
	case StageApprentice1:
		return "apprentice I"
	case StageApprentice2:
		return "apprentice II"
	case StageApprentice3:
		return "apprentice III"
	case StageApprentice4:
		return "apprentice IV"
	case StageGuru1:
		return "guru I"
	case StageGuru2:
		return "guru II"
	case StageMaster:
		return "master"
	case StageEnlightened:
		return "enlightened"
	case StageBurned:
		return "burned"
	}
	return "locked"
}

// stageIntervals is the wait before the next review of each stage.
// Burned items are never reviewed again.
var stageIntervals = map[Stage]time.Duration{
	StageApprentice1: 4 * time.Hour,
	StageApprentice2: 8 * time.Hour,
	StageApprentice3: 23 * time.Hour,
	StageApprentice4: 47 * time.Hour,
	StageGuru1:       7*24*time.Hour - time.Hour,
	StageGuru2:       14*24*time.Hour - time.Hour,
	StageMaster:      30*24*time.Hour - time.Hour,
	StageEnlightened: 120*24*time.Hour - time.Hour,
}

// Interval returns the review interval for the stage. Zero for burned.
func (s Stage) Interval() time.Duration {
	return stageIntervals[s]
}

// IsBurned reports whether the stage is terminal.
func (s Stage) IsBurned() bool {
	return s >= StageBurned
}

// Passed reports whether the stage is at or above guru, the point where a
// subject unlocks its dependents.
func (s Stage) Passed() bool {
	return s >= StageGuru1
}

// NextStage computes the stage after a finished review item. A review with
// no incorrect answers climbs one stage. Otherwise the item falls by half
// the incorrect count rounded up, doubled when falling from guru or above,
// but never below apprentice I.
func NextStage(current Stage, incorrect int) Stage {
	if incorrect <= 0 {
		next := current + 1
		if next > StageBurned {
			next = StageBurned
		}
		return next
	}

	adjustment := (incorrect + 1) / 2
	penalty := 1
	if current >= StageGuru1 {
		penalty = 2
	}

	next := current - Stage(adjustment*penalty)
	if next < StageApprentice1 {
		next = StageApprentice1
	}
	return next
}

// NextReview returns when an item that just reached stage should come up
// again. The zero time means never (burned).
func NextReview(stage Stage, now time.Time) time.Time {
	if stage.IsBurned() {
		return time.Time{}
	}
	return now.Add(stage.Interval())
}
