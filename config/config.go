// Package config loads game settings from defaults, a TOML file and the environment
package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-tetris/audio"
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/input"
)

// Environment overrides; audio variables are read by audio.ApplyEnv
const (
	EnvSeed          = "VI_TETRIS_SEED"
	EnvFrameMs       = "VI_TETRIS_FRAME_MS"
	EnvHighScorePath = "VI_TETRIS_HIGHSCORE_PATH"
	EnvDebug         = "VI_TETRIS_DEBUG"
)

var (
	ErrUnknownKeys = errors.New("config: unknown keys")
	ErrInvalid     = errors.New("config: invalid value")
)

// Config is the full settings tree
type Config struct {
	Debug bool              `toml:"debug"`
	Game  GameConfig        `toml:"game"`
	Audio AudioSection      `toml:"audio"`
	Store StoreConfig       `toml:"store"`
	Keys  map[string]string `toml:"keys"` // key name → action name
}

// GameConfig holds loop settings
type GameConfig struct {
	Seed    uint64 `toml:"seed"`     // 0 picks a random seed
	FrameMs int    `toml:"frame_ms"` // Frame pump interval
}

// AudioSection mirrors audio.AudioConfig in file form
type AudioSection struct {
	Enabled      bool               `toml:"enabled"`
	Music        bool               `toml:"music"`
	MasterVolume float64            `toml:"master_volume"` // 0.0-1.0
	SampleRate   int                `toml:"sample_rate"`
	Volumes      map[string]float64 `toml:"volumes"` // Per-sound, keyed by sound name
}

// StoreConfig holds persistence settings
type StoreConfig struct {
	Path     string `toml:"path"`      // Empty uses the per-user config dir
	InMemory bool   `toml:"in_memory"` // Never touch disk
}

// Default returns built-in settings
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Game: GameConfig{
			FrameMs: int(constants.FrameUpdateInterval / time.Millisecond),
		},
		Audio: AudioSection{
			Enabled:      ac.Enabled,
			Music:        ac.Music,
			MasterVolume: ac.MasterVolume,
			SampleRate:   ac.SampleRate,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.Wrapf(ErrUnknownKeys, "%s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays VI_TETRIS_* game and store variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvSeed, v)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv(EnvFrameMs); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrInvalid, "%s=%q", EnvFrameMs, v)
		}
		c.Game.FrameMs = ms
	}
	if v := os.Getenv(EnvHighScorePath); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	return nil
}

// Validate checks ranges and key bindings
func (c *Config) Validate() error {
	if c.Game.FrameMs <= 0 {
		return errors.Wrapf(ErrInvalid, "game.frame_ms must be positive, got %d", c.Game.FrameMs)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Wrapf(ErrInvalid, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return errors.Wrapf(ErrInvalid, "audio.master_volume must be 0-1, got %g", c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.Volumes {
		if _, ok := audio.SoundByName(name); !ok {
			return errors.Wrapf(ErrInvalid, "audio.volumes: unknown sound %q", name)
		}
		if v < 0 || v > 1 {
			return errors.Wrapf(ErrInvalid, "audio.volumes.%s must be 0-1, got %g", name, v)
		}
	}
	if _, err := c.KeyTable(); err != nil {
		return errors.Wrap(err, "keys")
	}
	return nil
}

// FrameInterval returns the frame pump period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Game.FrameMs) * time.Millisecond
}

// AudioConfig builds the audio engine settings, environment last
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Music = c.Audio.Music
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	for name, v := range c.Audio.Volumes {
		ac.SetEffectVolume(name, v)
	}
	audio.ApplyEnv(ac)
	return ac
}

// KeyTable returns the default bindings with [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	return input.ApplyBindings(input.DefaultKeyTable(), c.Keys)
}
