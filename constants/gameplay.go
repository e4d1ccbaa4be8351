package constants

import "time"

// Board Dimensions
const (
	// Rows is the visible grid height
	Rows = 20

	// Cols is the visible grid width
	Cols = 10

	// PieceKinds is the number of distinct tetromino kinds
	PieceKinds = 7
)

// Gravity Timing
const (
	// InitialDropInterval is the gravity step at level 1
	InitialDropInterval = 1000 * time.Millisecond

	// DropIntervalStep is subtracted from the interval for each level above 1
	DropIntervalStep = 50 * time.Millisecond

	// MinDropInterval is the floor for the gravity step
	MinDropInterval = 100 * time.Millisecond
)

// Scoring
const (
	// PointsPerLevel is the cumulative score needed per level step
	PointsPerLevel = 1000

	// MaxLinesPerLock is the most rows one piece can complete
	MaxLinesPerLock = 4
)

// LineScores is the base award indexed by lines cleared in one lock
var LineScores = [MaxLinesPerLock + 1]int{0, 100, 300, 500, 800}
