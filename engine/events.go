// Package engine implements the falling-block game state: grid, pieces,
// collision, line clearing, scoring and the gravity loop.
//
// Event System
//
// The Session never calls presentation code directly. Every observable
// change is pushed as a GameEvent onto a per-session queue while an
// operation runs; the queue is flushed to registered handlers after the
// operation completes, so handlers always observe a consistent Session and
// may call back into it (for example the Loop cancelling its frame on
// EventGameOver).
//
// Event Flow Pattern:
//  1. Operation mutates state and calls s.emit(GameEvent{...})
//  2. Events accumulate in FIFO order
//  3. On return the operation flushes: each event goes to every handler
//     registered for its type, in registration order
//
// Usage Example:
//
//	session.Register(engine.HandlerFunc(func(ev engine.GameEvent) {
//	    if ev.Type == engine.EventLinesCleared {
//	        log.Printf("cleared %d", ev.Lines)
//	    }
//	}, engine.EventLinesCleared))
package engine

// EventType represents the type of game event
type EventType int

const (
	// EventStarted signals a fresh session after reset
	// Payload: none
	EventStarted EventType = iota

	// EventMoved signals a successful horizontal move
	// Payload: none
	EventMoved

	// EventRotated signals an accepted rotation, possibly kicked
	// Payload: none
	EventRotated

	// EventHardDropped signals an instant drop before its lock
	// Payload: Distance (rows travelled)
	EventHardDropped

	// EventLocked signals the active piece was written into the grid
	// Emitted after line clearing and before the next piece is promoted
	// Payload: none
	EventLocked

	// EventLinesCleared signals one or more rows were removed by a lock
	// Payload: Lines (1-4), Score (after award), Level (after recompute)
	EventLinesCleared

	// EventLevelUp signals the level increased
	// Payload: Level
	EventLevelUp

	// EventPaused signals Running -> Paused
	EventPaused

	// EventResumed signals Paused -> Running
	EventResumed

	// EventStopped signals a user-forced end
	// Payload: Score
	EventStopped

	// EventGameOver signals a natural end
	// Payload: Score (final), NewHighScore
	EventGameOver

	eventTypeCount
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventMoved:
		return "Moved"
	case EventRotated:
		return "Rotated"
	case EventHardDropped:
		return "HardDropped"
	case EventLocked:
		return "Locked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	case EventStopped:
		return "Stopped"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent is a semantic notification emitted by the Session
type GameEvent struct {
	Type         EventType
	Lines        int
	Distance     int
	Score        int
	Level        int
	NewHighScore bool
}
