package engine

import "time"

// PausableClock provides game time that freezes while paused
// Gravity reads deltas from this clock so time spent paused never counts
// toward the next drop
type PausableClock struct {
	source TimeProvider

	startTime time.Time // Real time of creation or last Reset

	isPaused        bool
	pauseStartTime  time.Time     // When current pause started (real time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a running clock on the given time source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Now returns elapsed game time since creation or last Reset
func (pc *PausableClock) Now() time.Duration {
	if pc.isPaused {
		// During pause: frozen at pause point
		return pc.pauseStartTime.Sub(pc.startTime) - pc.totalPausedTime
	}
	return pc.source.Now().Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// Reset restarts game time at zero in the running state
func (pc *PausableClock) Reset() {
	pc.startTime = pc.source.Now()
	pc.isPaused = false
	pc.pauseStartTime = time.Time{}
	pc.totalPausedTime = 0
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
