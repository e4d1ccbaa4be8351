package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-tetris/constants"
)

// Environment overrides
const (
	EnvAudioEnabled = "VI_TETRIS_AUDIO_ENABLED"
	EnvMusicEnabled = "VI_TETRIS_MUSIC_ENABLED"
	EnvMasterVolume = "VI_TETRIS_MASTER_VOLUME"
	EnvSFXVolumes   = "VI_TETRIS_SFX_VOLUMES"
	EnvSampleRate   = "VI_TETRIS_SAMPLE_RATE"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	Music         bool
	MasterVolume  float64 // 0.0-1.0
	MusicVolume   float64 // Relative to master
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns settings with every effect at full relative volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		Music:        true,
		MasterVolume: 0.5,
		MusicVolume:  constants.MusicVolume,
		SampleRate:   constants.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundMove] = 0.4
	cfg.EffectVolumes[SoundRotate] = 0.6
	return cfg
}

// SetEffectVolume sets a per-sound volume by config key, clamped to 0-1
func (c *AudioConfig) SetEffectVolume(name string, vol float64) bool {
	st, ok := SoundByName(name)
	if !ok {
		return false
	}
	c.EffectVolumes[st] = clamp01(vol)
	return true
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overlays VI_TETRIS_* environment values onto cfg
// Unparseable values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if music := os.Getenv(EnvMusicEnabled); music != "" {
		if val, err := strconv.ParseBool(music); err == nil {
			cfg.Music = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON keyed by sound name, e.g. {"move":0.2,"lock":0.8}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				cfg.SetEffectVolume(name, v)
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
