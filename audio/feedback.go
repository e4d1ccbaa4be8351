package audio

import "github.com/lixenwraith/vi-tetris/engine"

// Player is the playback surface Feedback drives
type Player interface {
	Play(st SoundType) bool
	StartMusic() bool
	StopMusic()
}

// Feedback turns session events into sound
// Registered on the session router; every call is fire-and-forget
type Feedback struct {
	player Player
}

// NewFeedback creates a handler playing through p
func NewFeedback(p Player) *Feedback {
	return &Feedback{player: p}
}

// HandleEvent implements engine.EventHandler
func (f *Feedback) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventStarted:
		f.player.Play(SoundStart)
		f.player.StartMusic()
	case engine.EventResumed:
		f.player.StartMusic()
	case engine.EventPaused, engine.EventStopped:
		f.player.StopMusic()
	case engine.EventMoved:
		f.player.Play(SoundMove)
	case engine.EventRotated:
		f.player.Play(SoundRotate)
	case engine.EventLocked:
		f.player.Play(SoundLock)
	case engine.EventLinesCleared:
		if st, ok := LineSound(ev.Lines); ok {
			f.player.Play(st)
		}
	case engine.EventGameOver:
		f.player.StopMusic()
		f.player.Play(SoundGameOver)
	}
}

// EventTypes implements engine.EventHandler
func (f *Feedback) EventTypes() []engine.EventType {
	return []engine.EventType{
		engine.EventStarted,
		engine.EventResumed,
		engine.EventPaused,
		engine.EventStopped,
		engine.EventMoved,
		engine.EventRotated,
		engine.EventLocked,
		engine.EventLinesCleared,
		engine.EventGameOver,
	}
}
