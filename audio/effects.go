package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-tetris/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates raw audio waves for a fixed sample count
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one period position in [0, 1)
func waveSample(w WaveType, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note renders one enveloped tone
func note(midi int, length time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(NoteFreq(midi), length, wave, rate)
	return NewEnvelope(osc, length, constants.NoteAttack, constants.NoteRelease, rate)
}

// chord mixes tones of equal length, scaled so the sum stays in range
func chord(notes []int, length time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if len(notes) == 1 {
		return note(notes[0], length, wave, rate)
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = note(n, length, wave, rate)
	}
	return newVolume(beep.Mix(parts...), 1/float64(len(notes)))
}

// voicing describes one sound effect
type voicing struct {
	notes  []int
	length time.Duration
	wave   WaveType
}

var voicings = [soundTypeCount]voicing{
	SoundMove:     {[]int{NoteC5}, constants.NoteThirtySecond, WaveSquare},
	SoundRotate:   {[]int{NoteA5}, constants.NoteSixteenth, WaveSquare},
	SoundLock:     {[]int{NoteG5}, constants.NoteEighth, WaveTriangle},
	SoundLine1:    {[]int{NoteE5}, constants.NoteEighth, WaveSine},
	SoundLine2:    {[]int{NoteE5, NoteG5}, constants.NoteEighth, WaveSine},
	SoundLine3:    {[]int{NoteE5, NoteG5, NoteC6}, constants.NoteEighth, WaveSine},
	SoundLine4:    {[]int{NoteE5, NoteG5, NoteC6, NoteE6}, constants.NoteEighth, WaveSine},
	SoundGameOver: {[]int{NoteC3, NoteG3, NoteC4}, constants.NoteQuarter, WaveTriangle},
	SoundStart:    {[]int{NoteC5}, constants.NoteSixteenth, WaveSine},
}

// Length returns the playback length of a sound
func (s SoundType) Length() time.Duration {
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return voicings[s].length
}

// GetSoundEffect returns a fresh streamer for st at the configured volume,
// nil for an unknown type
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	v := voicings[st]
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(chord(v.notes, v.length, v.wave, rate), cfg.EffectVolumes[st]*cfg.MasterVolume)
}
