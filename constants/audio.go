package constants

import "time"

// Audio Engine Timing
const (
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100
)

// Note Lengths at the 120 BPM reference tempo
const (
	NoteQuarter      = 500 * time.Millisecond
	NoteEighth       = 250 * time.Millisecond
	NoteSixteenth    = 125 * time.Millisecond
	NoteThirtySecond = 62500 * time.Microsecond
)

// Envelope Shaping
const (
	NoteAttack  = 5 * time.Millisecond
	NoteRelease = 40 * time.Millisecond
)

// Music Loop
const (
	// MusicVolume scales the background arpeggio relative to effects
	MusicVolume = 0.35
)
