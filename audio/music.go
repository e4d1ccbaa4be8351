package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-tetris/constants"
)

// MusicPattern is the background arpeggio, one quarter note per step
var MusicPattern = []int{NoteC4, NoteE4, NoteG4, NoteB4, NoteC5, NoteB4, NoteG4, NoteE4}

// arpeggio cycles through a note pattern forever
// Each step is a fresh enveloped tone so the loop never needs seeking
type arpeggio struct {
	pattern []int
	step    int
	length  time.Duration
	rate    beep.SampleRate
	current beep.Streamer
}

// NewArpeggio returns an endless streamer over pattern
func NewArpeggio(pattern []int, length time.Duration, rate beep.SampleRate) beep.Streamer {
	if rate.N(length) <= 0 {
		return beep.Silence(-1)
	}
	return &arpeggio{pattern: pattern, length: length, rate: rate}
}

func (a *arpeggio) Stream(samples [][2]float64) (n int, ok bool) {
	if len(a.pattern) == 0 {
		return 0, false
	}
	for n < len(samples) {
		if a.current == nil {
			a.current = note(a.pattern[a.step], a.length, WaveTriangle, a.rate)
			a.step = (a.step + 1) % len(a.pattern)
		}
		m, more := a.current.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			a.current = nil
		}
	}
	return n, true
}

func (a *arpeggio) Err() error { return nil }

// newMusic builds the looped background track at the configured volume
func newMusic(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	arp := NewArpeggio(MusicPattern, constants.NoteQuarter, rate)
	return newVolume(arp, cfg.MusicVolume*cfg.MasterVolume)
}
