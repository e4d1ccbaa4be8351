package engine

import "time"

// Snapshot is an immutable copy of the session for rendering
// Mutating a Snapshot never affects the Session it came from
type Snapshot struct {
	Grid   Grid
	Active Piece
	Next   Piece
	GhostY int // Landing row of Active

	Score     int
	Level     int
	Lines     int
	Locked    int
	HighScore int

	NewHighScore bool // Game over raised the high score

	DropInterval time.Duration

	State   State
	Paused  bool
	Over    bool // True for both natural game over and a forced stop
	Stopped bool
}

// Snapshot copies the renderable state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Grid:         s.grid,
		Active:       s.active.Clone(),
		Next:         s.next.Clone(),
		GhostY:       LandingY(&s.grid, s.active),
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		Locked:       s.locked,
		HighScore:    s.highScore,
		NewHighScore: s.newHigh,
		DropInterval: s.dropInterval,
		State:        s.state,
		Paused:       s.state == StatePaused,
		Over:         s.state.Terminal(),
		Stopped:      s.state == StateStopped,
	}
}
