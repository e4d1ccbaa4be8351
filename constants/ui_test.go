package constants

import (
	"testing"
	"time"
)

// TestDropIntervalFloorReachable verifies the floor is reached at a finite level
func TestDropIntervalFloorReachable(t *testing.T) {
	steps := (InitialDropInterval - MinDropInterval) / DropIntervalStep
	if steps != 18 {
		t.Errorf("Expected 18 level steps to the floor, got %d", steps)
	}

	floor := InitialDropInterval - steps*DropIntervalStep
	if floor != 100*time.Millisecond {
		t.Errorf("Expected floor of 100ms, got %v", floor)
	}
}

// TestLineScoresTable verifies the per-lock award table
func TestLineScoresTable(t *testing.T) {
	expected := []int{0, 100, 300, 500, 800}
	for lines, want := range expected {
		if LineScores[lines] != want {
			t.Errorf("Expected %d points for %d lines, got %d", want, lines, LineScores[lines])
		}
	}
}
