package input

import "github.com/lixenwraith/vi-tetris/engine"

// Controller is the game surface driven by input, implemented by *engine.Loop
type Controller interface {
	Start()
	Pause() bool
	Resume() bool
	Stop() bool
	MoveHorizontal(dir int) bool
	Rotate() bool
	SoftDrop()
	HardDrop()
	State() engine.State
}

// Muter toggles sound, implemented by *audio.AudioEngine
type Muter interface {
	ToggleMute() bool
}

// Mapper applies intents to a Controller
type Mapper struct {
	ctrl  Controller
	muter Muter
}

// NewMapper creates a mapper; muter may be nil
func NewMapper(ctrl Controller, muter Muter) *Mapper {
	return &Mapper{ctrl: ctrl, muter: muter}
}

// Apply executes one intent and returns false when the program should quit
func (m *Mapper) Apply(intent Intent) bool {
	state := m.ctrl.State()

	if intent.Gameplay() {
		if state != engine.StateRunning {
			return true
		}
		switch intent {
		case IntentMoveLeft:
			m.ctrl.MoveHorizontal(-1)
		case IntentMoveRight:
			m.ctrl.MoveHorizontal(1)
		case IntentRotate:
			m.ctrl.Rotate()
		case IntentSoftDrop:
			m.ctrl.SoftDrop()
		case IntentHardDrop:
			m.ctrl.HardDrop()
		}
		return true
	}

	switch intent {
	case IntentStart:
		switch state {
		case engine.StatePaused:
			m.ctrl.Resume()
		case engine.StateRunning:
		default:
			m.ctrl.Start()
		}
	case IntentTogglePause:
		switch state {
		case engine.StateRunning:
			m.ctrl.Pause()
		case engine.StatePaused:
			m.ctrl.Resume()
		}
	case IntentStop:
		m.ctrl.Stop()
	case IntentToggleMute:
		if m.muter != nil {
			m.muter.ToggleMute()
		}
	case IntentQuit:
		return false
	}
	return true
}
