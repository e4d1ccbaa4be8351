package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-tetris/status"
)

// Loop drives Session gravity from a frame Scheduler
// At most one frame is outstanding; pause, stop and game over cancel it
// synchronously so a stale callback can never start a second chain
type Loop struct {
	session   *Session
	scheduler Scheduler
	clock     *PausableClock

	handle   FrameHandle
	lastTick time.Duration // Game time of the previous frame

	// Cached metric pointers
	statFrames *atomic.Int64
	statLocks  *atomic.Int64
	statLines  *atomic.Int64
	statGames  *atomic.Int64
	statLoop   *atomic.Bool
}

// NewLoop wires a session to a scheduler, reading gravity time from source
func NewLoop(session *Session, scheduler Scheduler, source TimeProvider, reg *status.Registry) *Loop {
	if reg == nil {
		reg = status.NewRegistry()
	}
	l := &Loop{
		session:    session,
		scheduler:  scheduler,
		clock:      NewPausableClock(source),
		statFrames: reg.Ints.Get(status.KeyFrames),
		statLocks:  reg.Ints.Get(status.KeyLocks),
		statLines:  reg.Ints.Get(status.KeyLines),
		statGames:  reg.Ints.Get(status.KeyGames),
		statLoop:   reg.Bools.Get(status.KeyLoopActive),
	}
	session.Register(l)
	return l
}

// HandleEvent implements EventHandler
func (l *Loop) HandleEvent(ev GameEvent) {
	switch ev.Type {
	case EventGameOver:
		l.cancel()
		l.clock.Pause()
	case EventLocked:
		l.statLocks.Add(1)
	case EventLinesCleared:
		l.statLines.Add(int64(ev.Lines))
	case EventStarted:
		l.statGames.Add(1)
	}
}

// EventTypes implements EventHandler
func (l *Loop) EventTypes() []EventType {
	return []EventType{EventGameOver, EventLocked, EventLinesCleared, EventStarted}
}

// ===== LIFECYCLE =====

// Start resets the session and schedules the first frame
func (l *Loop) Start() {
	l.cancel()
	l.clock.Reset()
	l.lastTick = 0
	l.session.Start()
	l.request()
}

// Pause halts gravity and cancels the pending frame
func (l *Loop) Pause() bool {
	if !l.session.Pause() {
		return false
	}
	l.cancel()
	l.clock.Pause()
	return true
}

// Resume restarts gravity from the current instant
func (l *Loop) Resume() bool {
	if !l.session.Resume() {
		return false
	}
	l.clock.Resume()
	l.request()
	return true
}

// Stop ends the session and cancels the pending frame
func (l *Loop) Stop() bool {
	if !l.session.Stop() {
		return false
	}
	l.cancel()
	l.clock.Pause()
	return true
}

// Active reports whether a frame is scheduled
func (l *Loop) Active() bool {
	return l.handle != 0
}

// ===== SESSION PASSTHROUGH =====

// MoveHorizontal forwards to the session
func (l *Loop) MoveHorizontal(dir int) bool { return l.session.MoveHorizontal(dir) }

// Rotate forwards to the session
func (l *Loop) Rotate() bool { return l.session.Rotate() }

// SoftDrop forwards to the session
func (l *Loop) SoftDrop() { l.session.SoftDrop() }

// HardDrop forwards to the session
func (l *Loop) HardDrop() { l.session.HardDrop() }

// State returns the session state
func (l *Loop) State() State { return l.session.State() }

// Snapshot returns the session snapshot
func (l *Loop) Snapshot() Snapshot { return l.session.Snapshot() }

// ===== FRAMES =====

func (l *Loop) request() {
	if l.handle != 0 {
		return
	}
	l.handle = l.scheduler.Request(l.frame)
	l.statLoop.Store(true)
}

func (l *Loop) cancel() {
	if l.handle == 0 {
		return
	}
	l.scheduler.Cancel(l.handle)
	l.handle = 0
	l.statLoop.Store(false)
}

func (l *Loop) frame() {
	l.handle = 0
	l.statLoop.Store(false)

	if l.session.State() != StateRunning {
		return
	}

	now := l.clock.Now()
	delta := now - l.lastTick
	l.lastTick = now
	l.statFrames.Add(1)

	l.session.Tick(delta)

	if l.session.State() == StateRunning {
		l.request()
	}
}
