package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "cinedeck"

// Autoplay policies.
const (
	AutoplayAllowed       = "allowed"
	AutoplayOnInteraction = "on-interaction"
)

type Config struct {
	Deck       string `koanf:"deck"`       // deck file; empty means the built-in deck
	FPS        int    `koanf:"fps"`        // frame ticks per second while animating
	Fullscreen *bool  `koanf:"fullscreen"` // start in the alternate screen (default: true)
	Autoplay   string `koanf:"autoplay"`   // "allowed" or "on-interaction"

	Playback PlaybackConfig `koanf:"playback"`
	Audio    AudioConfig    `koanf:"audio"`
	Log      LogConfig      `koanf:"log"`
}

// PlaybackConfig tunes the ping-pong cycle.
type PlaybackConfig struct {
	Rate             float64 `koanf:"rate"`              // playback multiplier (default: 0.6)
	Epsilon          float64 `koanf:"epsilon"`           // boundary tolerance in seconds (default: 0.1)
	FrameRate        float64 `koanf:"frame_rate"`        // nominal frames per second for the reverse step (default: 60)
	FallbackDuration float64 `koanf:"fallback_duration"` // seconds assumed when probing fails (default: 8; negative disables)
}

// AudioConfig controls ambience playback.
type AudioConfig struct {
	Enabled    *bool   `koanf:"enabled"`     // default: true
	Volume     float64 `koanf:"volume"`      // 0..1; 0 or unset means full volume
	SampleRate int     `koanf:"sample_rate"` // speaker rate (default: 44100)
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/cinedeck/cinedeck.log
}

// Load reads the user and working-directory config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files win. Missing
// files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Deck = expandPath(cfg.Deck)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Autoplay = strings.ToLower(strings.TrimSpace(cfg.Autoplay))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/cinedeck/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./cinedeck.toml (pwd, highest priority)
	paths = append(paths, appName+".toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetFPS returns the frame rate, clamped to 1..240 (default: 60).
func (c *Config) GetFPS() int {
	if c.FPS <= 0 {
		return 60
	}
	return min(c.FPS, 240)
}

// IsFullscreen returns whether to start in the alternate screen.
func (c *Config) IsFullscreen() bool {
	return c.Fullscreen == nil || *c.Fullscreen
}

// RequiresInteraction returns true when media may only start after a key press.
func (c *Config) RequiresInteraction() bool {
	return c.Autoplay == AutoplayOnInteraction
}

// GetPlaybackConfig returns the playback configuration with defaults applied.
func (c *Config) GetPlaybackConfig() PlaybackConfig {
	cfg := c.Playback

	if cfg.Rate <= 0 || cfg.Rate > 4 {
		cfg.Rate = 0.6
	}
	if cfg.Epsilon <= 0 || cfg.Epsilon > 1 {
		cfg.Epsilon = 0.1
	}
	if cfg.FrameRate <= 0 || cfg.FrameRate > 240 {
		cfg.FrameRate = 60
	}
	switch {
	case cfg.FallbackDuration == 0:
		cfg.FallbackDuration = 8
	case cfg.FallbackDuration < 0:
		cfg.FallbackDuration = 0
	}

	return cfg
}

// GetAudioConfig returns the audio configuration with defaults applied.
func (c *Config) GetAudioConfig() AudioConfig {
	cfg := c.Audio

	if cfg.Enabled == nil {
		enabled := true
		cfg.Enabled = &enabled
	}
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 1
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}

	return cfg
}

// AudioEnabled returns whether ambience tracks should be opened.
func (c *Config) AudioEnabled() bool {
	return *c.GetAudioConfig().Enabled
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.File == "" {
		if p, err := xdg.StateFile(filepath.Join(appName, appName+".log")); err == nil {
			cfg.File = p
		}
	}

	return cfg
}
