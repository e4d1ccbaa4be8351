package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/status"
)

// Audio modes reported to the status registry
const (
	ModeStopped = "stopped"
	ModeSpeaker = "speaker"
	ModeSilent  = "silent"
)

// output is the sound device; the beep speaker in production
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// AudioEngine mixes effects and the music loop onto the speaker
// A device that fails to open leaves the engine running in silent mode;
// gameplay never sees an audio error
type AudioEngine struct {
	config *AudioConfig
	out    output
	mixer  *beep.Mixer
	music  *beep.Ctrl

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	mu sync.Mutex // Protects config and music

	statMode   *status.AtomicString
	statPlayed *atomic.Int64
}

// NewAudioEngine creates a stopped engine; a nil config uses defaults
func NewAudioEngine(cfg *AudioConfig, reg *status.Registry) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	ae := &AudioEngine{
		config:     cfg,
		out:        speakerOutput{},
		mixer:      &beep.Mixer{},
		statMode:   reg.Strings.Get(status.KeyAudioMode),
		statPlayed: reg.Ints.Get(status.KeySoundsPlay),
	}
	ae.muted.Store(!cfg.Enabled)
	ae.statMode.Store(ModeStopped)
	return ae
}

// Start opens the speaker and attaches the mixer
// Returns ErrAlreadyRunning on a second call; device failures are not errors
func (ae *AudioEngine) Start() error {
	if ae.running.Load() {
		return ErrAlreadyRunning
	}

	ae.mu.Lock()
	rate := beep.SampleRate(ae.config.SampleRate)
	ae.mu.Unlock()

	if err := ae.out.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		log.Printf("audio: speaker unavailable, running silent: %v", err)
		ae.silentMode.Store(true)
		ae.running.Store(true)
		ae.statMode.Store(ModeSilent)
		return nil
	}

	ae.out.Play(ae.mixer)
	ae.running.Store(true)
	ae.statMode.Store(ModeSpeaker)
	return nil
}

// Stop silences everything and releases the speaker
func (ae *AudioEngine) Stop() {
	if !ae.running.CompareAndSwap(true, false) {
		return
	}
	ae.statMode.Store(ModeStopped)
	if ae.silentMode.Load() {
		return
	}

	ae.out.Lock()
	ae.mixer.Clear()
	ae.out.Unlock()

	ae.mu.Lock()
	ae.music = nil
	ae.mu.Unlock()

	ae.out.Close()
}

// Play queues a sound for playback, returns false if nothing will be heard
func (ae *AudioEngine) Play(st SoundType) bool {
	if !ae.IsEnabled() {
		return false
	}

	ae.mu.Lock()
	s := GetSoundEffect(st, ae.config)
	ae.mu.Unlock()
	if s == nil {
		return false
	}

	ae.out.Lock()
	ae.mixer.Add(s)
	ae.out.Unlock()
	ae.statPlayed.Add(1)
	return true
}

// StartMusic begins the background loop if enabled and not already playing
func (ae *AudioEngine) StartMusic() bool {
	if !ae.IsEnabled() {
		return false
	}

	ae.mu.Lock()
	defer ae.mu.Unlock()
	if !ae.config.Music {
		return false
	}
	if ae.music != nil {
		return true
	}

	ae.music = &beep.Ctrl{Streamer: newMusic(ae.config)}
	ae.out.Lock()
	ae.mixer.Add(ae.music)
	ae.out.Unlock()
	return true
}

// StopMusic removes the background loop; the next StartMusic restarts it from the top
func (ae *AudioEngine) StopMusic() {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	if ae.music == nil {
		return
	}

	// A nil streamer drains the Ctrl and the mixer drops it
	ae.out.Lock()
	ae.music.Streamer = nil
	ae.out.Unlock()
	ae.music = nil
}

// IsMusicPlaying reports whether the loop is attached
func (ae *AudioEngine) IsMusicPlaying() bool {
	ae.mu.Lock()
	defer ae.mu.Unlock()
	return ae.music != nil
}

// ToggleMute toggles mute state, returns true if sound is now on
// Muting also stops the music
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	if newMute {
		ae.StopMusic()
	}
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if running, unmuted and attached to a device
func (ae *AudioEngine) IsEnabled() bool {
	return ae.running.Load() && !ae.muted.Load() && !ae.silentMode.Load()
}

// IsSilent returns true if the device failed to open
func (ae *AudioEngine) IsSilent() bool {
	return ae.silentMode.Load()
}

// SetVolume updates master volume (0.0-1.0) for sounds started afterwards
func (ae *AudioEngine) SetVolume(vol float64) {
	ae.mu.Lock()
	ae.config.MasterVolume = clamp01(vol)
	ae.mu.Unlock()
}
