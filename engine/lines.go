package engine

import (
	"time"

	"github.com/lixenwraith/vi-tetris/constants"
)

// ClearLines removes every full row, shifting the rows above down and
// inserting empty rows at the top, and returns the number removed
// After a removal the same index is examined again since a new row moved into it
func ClearLines(g *Grid) int {
	cleared := 0
	for r := constants.Rows - 1; r >= 0; {
		if !g.RowFull(r) {
			r--
			continue
		}
		for i := r; i > 0; i-- {
			g[i] = g[i-1]
		}
		g[0] = [constants.Cols]Cell{}
		cleared++
	}
	return cleared
}

// LineScore returns the award for clearing lines in one lock at the given level
func LineScore(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	if lines > constants.MaxLinesPerLock {
		lines = constants.MaxLinesPerLock
	}
	return constants.LineScores[lines] * level
}

// LevelForScore maps cumulative score to level, one step per PointsPerLevel
func LevelForScore(score int) int {
	if score < 0 {
		return 1
	}
	return 1 + score/constants.PointsPerLevel
}

// DropIntervalForLevel returns the gravity step, shortened per level and
// clamped at MinDropInterval
func DropIntervalForLevel(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := constants.InitialDropInterval - time.Duration(level-1)*constants.DropIntervalStep
	if d < constants.MinDropInterval {
		return constants.MinDropInterval
	}
	return d
}
