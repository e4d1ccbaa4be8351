package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/status"
)

// fakeOutput stands in for the speaker
type fakeOutput struct {
	initErr error
	played  []beep.Streamer
	closed  bool
}

func (f *fakeOutput) Init(beep.SampleRate, int) error { return f.initErr }
func (f *fakeOutput) Play(s beep.Streamer)            { f.played = append(f.played, s) }
func (f *fakeOutput) Lock()                           {}
func (f *fakeOutput) Unlock()                         {}
func (f *fakeOutput) Close()                          { f.closed = true }

func newTestEngine(t *testing.T, initErr error) (*AudioEngine, *fakeOutput, *status.Registry) {
	t.Helper()
	reg := status.NewRegistry()
	ae := NewAudioEngine(DefaultAudioConfig(), reg)
	out := &fakeOutput{initErr: initErr}
	ae.out = out
	if err := ae.Start(); err != nil {
		t.Fatalf("Expected Start to succeed, got %v", err)
	}
	return ae, out, reg
}

// drain streams s until exhausted or limit samples, returns samples read
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func peak(s beep.Streamer, samples int) float64 {
	buf := make([][2]float64, samples)
	n, _ := s.Stream(buf)
	max := 0.0
	for i := 0; i < n; i++ {
		if v := math.Abs(buf[i][0]); v > max {
			max = v
		}
	}
	return max
}

func TestNoteFrequencies(t *testing.T) {
	if f := NoteFreq(69); math.Abs(f-440) > 1e-9 {
		t.Errorf("Expected A4=440, got %f", f)
	}
	if f := NoteFreq(NoteC4); math.Abs(f-261.63) > 0.01 {
		t.Errorf("Expected C4≈261.63, got %f", f)
	}
	if NoteFreq(-1) != 0 || NoteFreq(128) != 0 {
		t.Error("Expected 0 for out-of-range notes")
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 10*time.Millisecond, w, rate)
		buf := make([][2]float64, 100)
		n, ok := osc.Stream(buf)
		if !ok || n != 100 {
			t.Fatalf("Wave %d: expected 100 samples, got %d ok=%v", w, n, ok)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Errorf("Wave %d sample %d out of range or not mono: %v", w, i, buf[i])
			}
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if got := drain(osc, 1<<20); got != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), got)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 50*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 10)
	env.Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %f", buf[0][0])
	}
	if buf[9][0] <= buf[1][0] {
		t.Errorf("Expected attack ramp, got %f then %f", buf[1][0], buf[9][0])
	}
}

func TestSoundEffectsCoverEveryType(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	for st := SoundType(0); st < soundTypeCount; st++ {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %s", st)
		}
		// Mixed chords may pad their final buffer
		want := rate.N(st.Length())
		if got := drain(s, 1<<20); got < want || got > want+512 {
			t.Errorf("Expected %s to last about %d samples, got %d", st, want, got)
		}
	}
	if GetSoundEffect(SoundType(999), cfg) != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

func TestSoundEffectZeroVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0
	if p := peak(GetSoundEffect(SoundLock, cfg), 2000); p > 0.0001 {
		t.Errorf("Expected silence at zero volume, got peak %f", p)
	}
}

func TestChordStaysInRange(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 1
	if p := peak(GetSoundEffect(SoundLine4, cfg), 4000); p > 1.0001 {
		t.Errorf("Expected four-note chord within [-1,1], got peak %f", p)
	}
}

func TestLineSound(t *testing.T) {
	for n, want := range map[int]SoundType{1: SoundLine1, 2: SoundLine2, 3: SoundLine3, 4: SoundLine4} {
		if got, ok := LineSound(n); !ok || got != want {
			t.Errorf("Expected %s for %d lines, got %s", want, n, got)
		}
	}
	if _, ok := LineSound(0); ok {
		t.Error("Expected no sound for 0 lines")
	}
	if _, ok := LineSound(5); ok {
		t.Error("Expected no sound for 5 lines")
	}
}

func TestArpeggioNeverEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	arp := NewArpeggio(MusicPattern, 20*time.Millisecond, rate)
	// Several full cycles of the pattern
	want := rate.N(20*time.Millisecond) * len(MusicPattern) * 3
	if got := drain(arp, want); got < want {
		t.Errorf("Expected at least %d samples, got %d", want, got)
	}
}

func TestArpeggioZeroRateIsSilent(t *testing.T) {
	arp := NewArpeggio(MusicPattern, time.Second, 0)
	if p := peak(arp, 100); p != 0 {
		t.Errorf("Expected silence, got %f", p)
	}
}

func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMusicEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSampleRate, "22050")
	t.Setenv(EnvSFXVolumes, `{"move":0.1,"lock":2,"bogus":0.5}`)

	cfg := LoadAudioConfig()
	if cfg.Enabled || cfg.Music {
		t.Error("Expected audio and music disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
	if cfg.EffectVolumes[SoundMove] != 0.1 || cfg.EffectVolumes[SoundLock] != 1 {
		t.Errorf("Unexpected effect volumes: %v", cfg.EffectVolumes)
	}
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSampleRate, "-1")
	t.Setenv(EnvSFXVolumes, "{")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestEngineSilentModeOnDeviceFailure(t *testing.T) {
	ae, out, reg := newTestEngine(t, errors.New("no device"))

	if !ae.IsSilent() || ae.IsEnabled() {
		t.Error("Expected silent mode")
	}
	if ae.Play(SoundLock) || ae.StartMusic() {
		t.Error("Expected playback refused in silent mode")
	}
	if len(out.played) != 0 {
		t.Error("Expected mixer never attached")
	}
	if got := reg.Strings.Get(status.KeyAudioMode).Load(); got != ModeSilent {
		t.Errorf("Expected mode %q, got %q", ModeSilent, got)
	}
	ae.Stop()
	if out.closed {
		t.Error("Expected silent engine not to close the device")
	}
}

func TestEnginePlayAddsToMixer(t *testing.T) {
	ae, out, reg := newTestEngine(t, nil)

	if len(out.played) != 1 || out.played[0] != ae.mixer {
		t.Fatal("Expected mixer attached to the device")
	}
	if !ae.Play(SoundMove) {
		t.Fatal("Expected Play to succeed")
	}
	if ae.mixer.Len() != 1 {
		t.Errorf("Expected 1 streamer in mixer, got %d", ae.mixer.Len())
	}
	if got := reg.Ints.Get(status.KeySoundsPlay).Load(); got != 1 {
		t.Errorf("Expected 1 sound counted, got %d", got)
	}
	if ae.Play(SoundType(-1)) {
		t.Error("Expected invalid sound refused")
	}

	if err := ae.Start(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}
	ae.Stop()
	if !out.closed || ae.mixer.Len() != 0 {
		t.Error("Expected Stop to clear the mixer and close the device")
	}
	if ae.Play(SoundMove) {
		t.Error("Expected Play refused after Stop")
	}
}

func TestEngineMusicLifecycle(t *testing.T) {
	ae, _, _ := newTestEngine(t, nil)

	if !ae.StartMusic() || !ae.StartMusic() {
		t.Fatal("Expected music to start")
	}
	if ae.mixer.Len() != 1 {
		t.Errorf("Expected a single music streamer, got %d", ae.mixer.Len())
	}

	ae.StopMusic()
	if ae.IsMusicPlaying() {
		t.Error("Expected music stopped")
	}
	drain(ae.mixer, 512)
	if ae.mixer.Len() != 0 {
		t.Errorf("Expected mixer to drop stopped music, got %d", ae.mixer.Len())
	}
}

func TestEngineMuteStopsMusic(t *testing.T) {
	ae, _, _ := newTestEngine(t, nil)
	ae.StartMusic()

	if ae.ToggleMute() {
		t.Error("Expected ToggleMute to report sound off")
	}
	if ae.IsMusicPlaying() || ae.Play(SoundLock) {
		t.Error("Expected nothing to play while muted")
	}
	if !ae.ToggleMute() {
		t.Error("Expected ToggleMute to report sound on")
	}
	if !ae.Play(SoundLock) {
		t.Error("Expected Play after unmute")
	}
}

func TestEngineMusicDisabledByConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Music = false
	ae := NewAudioEngine(cfg, nil)
	ae.out = &fakeOutput{}
	ae.Start()

	if ae.StartMusic() {
		t.Error("Expected music refused when disabled")
	}
	if !ae.Play(SoundStart) {
		t.Error("Expected effects still enabled")
	}
}

func TestEngineStartsMutedWhenDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	ae := NewAudioEngine(cfg, nil)
	if !ae.IsMuted() {
		t.Error("Expected muted engine")
	}
}

// fakePlayer records Feedback calls
type fakePlayer struct {
	sounds []SoundType
	music  bool
	starts int
}

func (p *fakePlayer) Play(st SoundType) bool { p.sounds = append(p.sounds, st); return true }
func (p *fakePlayer) StartMusic() bool       { p.music = true; p.starts++; return true }
func (p *fakePlayer) StopMusic()             { p.music = false }

func TestFeedbackFollowsSession(t *testing.T) {
	p := &fakePlayer{}
	s := engine.NewSession(engine.WithSeed(5))
	s.Register(NewFeedback(p))

	s.Start()
	if !p.music || len(p.sounds) != 1 || p.sounds[0] != SoundStart {
		t.Fatalf("Expected start sound and music, got %v music=%v", p.sounds, p.music)
	}

	s.MoveHorizontal(-1)
	s.Rotate()
	if p.sounds[len(p.sounds)-1] != SoundRotate {
		t.Errorf("Expected rotate sound last, got %v", p.sounds)
	}

	s.Pause()
	if p.music {
		t.Error("Expected music stopped on pause")
	}
	s.Resume()
	if !p.music {
		t.Error("Expected music restarted on resume")
	}

	p.sounds = nil
	s.HardDrop()
	if len(p.sounds) == 0 || p.sounds[len(p.sounds)-1] != SoundLock {
		t.Errorf("Expected lock sound, got %v", p.sounds)
	}

	s.Stop()
	if p.music {
		t.Error("Expected music stopped on stop")
	}
}

func TestFeedbackLineAndGameOverSounds(t *testing.T) {
	p := &fakePlayer{music: true}
	f := NewFeedback(p)

	f.HandleEvent(engine.GameEvent{Type: engine.EventLinesCleared, Lines: 3})
	f.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})

	want := []SoundType{SoundLine3, SoundGameOver}
	if len(p.sounds) != 2 || p.sounds[0] != want[0] || p.sounds[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, p.sounds)
	}
	if p.music {
		t.Error("Expected music stopped on game over")
	}
}
