package audio

import "github.com/pkg/errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundMove     SoundType = iota // Piece shifted one column
	SoundRotate                    // Piece rotated
	SoundLock                      // Piece settled
	SoundLine1                     // Single line clear
	SoundLine2                     // Two-line chord
	SoundLine3                     // Three-line chord
	SoundLine4                     // Four-line chord
	SoundGameOver                  // Low final chord
	SoundStart                     // New game
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundMove:     "move",
	SoundRotate:   "rotate",
	SoundLock:     "lock",
	SoundLine1:    "line1",
	SoundLine2:    "line2",
	SoundLine3:    "line3",
	SoundLine4:    "line4",
	SoundGameOver: "gameover",
	SoundStart:    "start",
}

// String returns the config key for the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundByName resolves a config key
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// LineSound returns the chord for a clear of n lines
func LineSound(n int) (SoundType, bool) {
	if n < 1 || n > 4 {
		return 0, false
	}
	return SoundLine1 + SoundType(n-1), true
}

// Sentinel errors
var (
	ErrAlreadyRunning = errors.New("audio engine already running")
)
