package srs

import (
	"testing"
	"time"
)

func TestNextStage_Correct(t *testing.T) {
	tests := []struct {
		current Stage
		want    Stage
	}{
		{StageApprentice1, StageApprentice2},
		{StageApprentice4, StageGuru1},
		{StageGuru2, StageMaster},
		{StageEnlightened, StageBurned},
		{StageBurned, StageBurned},
	}

	for _, tc := range tests {
		if got := NextStage(tc.current, 0); got != tc.want {
			t.Errorf("NextStage(%v, 0) = %v, want %v", tc.current, got, tc.want)
		}
	}
}

func TestNextStage_Incorrect(t *testing.T) {
	tests := []struct {
		current   Stage
		incorrect int
		want      Stage
	}{
		{StageApprentice3, 1, StageApprentice2},
		{StageApprentice3, 2, StageApprentice2},
		{StageApprentice3, 3, StageApprentice1},
		{StageApprentice2, 6, StageApprentice1},
		{StageGuru1, 1, StageApprentice3},
		{StageGuru2, 3, StageApprentice2},
		{StageMaster, 8, StageApprentice1},
	}

	for _, tc := range tests {
		if got := NextStage(tc.current, tc.incorrect); got != tc.want {
			t.Errorf("NextStage(%v, %d) = %v, want %v", tc.current, tc.incorrect, got, tc.want)
		}
	}
}

func TestNextReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got := NextReview(StageApprentice1, now)
	if want := now.Add(4 * time.Hour); !got.Equal(want) {
		t.Errorf("NextReview(apprentice I) = %v, want %v", got, want)
	}

	if got := NextReview(StageBurned, now); !got.IsZero() {
		t.Errorf("NextReview(burned) = %v, want zero time", got)
	}
}

func TestStagePredicates(t *testing.T) {
	if StageApprentice4.Passed() {
		t.Error("apprentice IV should not be passed")
	}
	if !StageGuru1.Passed() {
		t.Error("guru I should be passed")
	}
	if !StageBurned.IsBurned() {
		t.Error("burned should be burned")
	}
	if StageEnlightened.IsBurned() {
		t.Error("enlightened should not be burned")
	}
}
