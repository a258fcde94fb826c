//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/decks/q3.toml",
			expected: filepath.Join(home, "decks", "q3.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/decks/q3.toml",
			expected: "/srv/decks/q3.toml",
		},
		{
			name:     "relative path unchanged",
			input:    "decks/q3.yaml",
			expected: "decks/q3.yaml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.NotEmpty(t, paths)
	assert.Equal(t, "cinedeck.toml", paths[len(paths)-1])

	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(home, ".config", "cinedeck", "config.toml"), paths[0])
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	user := writeConfig(t, `
deck = "/decks/user.toml"
fps = 30
autoplay = "On-Interaction"

[playback]
rate = 0.5

[audio]
enabled = false
`)
	local := writeConfig(t, `
fps = 24

[playback]
epsilon = 0.2
frame_rate = 30
`)

	cfg, err := LoadFrom(user, local, filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "/decks/user.toml", cfg.Deck)
	assert.Equal(t, 24, cfg.GetFPS())
	assert.True(t, cfg.RequiresInteraction())
	assert.False(t, cfg.AudioEnabled())

	pb := cfg.GetPlaybackConfig()
	assert.InDelta(t, 0.5, pb.Rate, 1e-9)
	assert.InDelta(t, 0.2, pb.Epsilon, 1e-9)
	assert.InDelta(t, 8.0, pb.FallbackDuration, 1e-9)
	assert.InDelta(t, 30.0, pb.FrameRate, 1e-9)
}

func TestLoadFrom_Malformed(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "fps = [unterminated"))
	require.Error(t, err)
}

func TestLoadFrom_NoFiles(t *testing.T) {
	cfg, err := LoadFrom()
	require.NoError(t, err)

	assert.Empty(t, cfg.Deck)
	assert.Equal(t, 60, cfg.GetFPS())
	assert.True(t, cfg.IsFullscreen())
	assert.False(t, cfg.RequiresInteraction())
	assert.True(t, cfg.AudioEnabled())
}

func TestGetFPS(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{0, 60},
		{-5, 60},
		{30, 30},
		{500, 240},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, (&Config{FPS: tt.fps}).GetFPS(), "fps %d", tt.fps)
	}
}

func TestIsFullscreen(t *testing.T) {
	off, on := false, true
	assert.True(t, (&Config{}).IsFullscreen())
	assert.True(t, (&Config{Fullscreen: &on}).IsFullscreen())
	assert.False(t, (&Config{Fullscreen: &off}).IsFullscreen())
}

func TestGetPlaybackConfig(t *testing.T) {
	tests := []struct {
		name          string
		in            PlaybackConfig
		wantRate      float64
		wantEpsilon   float64
		wantFallback  float64
		wantFrameRate float64
	}{
		{"defaults", PlaybackConfig{}, 0.6, 0.1, 8, 60},
		{"custom", PlaybackConfig{Rate: 1, Epsilon: 0.05, FallbackDuration: 3, FrameRate: 30}, 1, 0.05, 3, 30},
		{"invalid replaced", PlaybackConfig{Rate: -1, Epsilon: 5, FrameRate: 1000}, 0.6, 0.1, 8, 60},
		{"fallback disabled", PlaybackConfig{FallbackDuration: -1}, 0.6, 0.1, 0, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (&Config{Playback: tt.in}).GetPlaybackConfig()
			assert.InDelta(t, tt.wantRate, got.Rate, 1e-9)
			assert.InDelta(t, tt.wantEpsilon, got.Epsilon, 1e-9)
			assert.InDelta(t, tt.wantFallback, got.FallbackDuration, 1e-9)
			assert.InDelta(t, tt.wantFrameRate, got.FrameRate, 1e-9)
		})
	}
}

func TestGetAudioConfig_Defaults(t *testing.T) {
	got := (&Config{}).GetAudioConfig()

	require.NotNil(t, got.Enabled)
	assert.True(t, *got.Enabled)
	assert.InDelta(t, 1.0, got.Volume, 1e-9)
	assert.Equal(t, 44100, got.SampleRate)
}

func TestGetLogConfig(t *testing.T) {
	got := (&Config{Log: LogConfig{Level: "DEBUG", File: "/tmp/x.log"}}).GetLogConfig()
	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, "/tmp/x.log", got.File)

	got = (&Config{Log: LogConfig{Level: "loud"}}).GetLogConfig()
	assert.Equal(t, "info", got.Level)
}
