package media

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	entries map[string]float64
	stores    int
	failGet   bool
	failStore bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]float64)}
}

func (m *memoryCache) Lookup(path string, _, _ int64) (float64, bool, error) {
	if m.failGet {
		return 0, false, errors.New("cache offline")
	}
	d, ok := m.entries[path]
	return d, ok, nil
}

func (m *memoryCache) Store(path string, _, _ int64, d float64) error {
	m.stores++
	if m.failStore {
		return errors.New("disk full")
	}
	m.entries[path] = d
	return nil
}

type countingProbe struct {
	calls int
	value float64
	err   error
}

func (c *countingProbe) probe(_ context.Context, _ string) (float64, error) {
	c.calls++
	return c.value, c.err
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("not really a video"), 0o600))
	return path
}

func TestProber_CachesDuration(t *testing.T) {
	path := writeFile(t, "clip.mp4")
	cache := newMemoryCache()
	probe := &countingProbe{value: 12.5}
	p := NewProber(cache).WithProbeFunc(probe.probe)

	d, err := p.Duration(context.Background(), path)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, d, 1e-9)

	d, err = p.Duration(context.Background(), path)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, d, 1e-9)

	assert.Equal(t, 1, probe.calls)
	assert.Equal(t, 1, cache.stores)
}

func TestProber_CacheErrorFallsBackToProbe(t *testing.T) {
	path := writeFile(t, "clip.mp4")
	cache := newMemoryCache()
	cache.failGet = true
	probe := &countingProbe{value: 3}
	p := NewProber(cache).WithProbeFunc(probe.probe)

	d, err := p.Duration(context.Background(), path)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-9)
	assert.Equal(t, 1, probe.calls)
}

func TestProber_ProbeErrorNotCached(t *testing.T) {
	path := writeFile(t, "clip.mp4")
	cache := newMemoryCache()
	probe := &countingProbe{err: errors.New("no ffprobe")}
	p := NewProber(cache).WithProbeFunc(probe.probe)

	_, err := p.Duration(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, 0, cache.stores)
}

func TestProber_MissingFile(t *testing.T) {
	probe := &countingProbe{value: 1}
	p := NewProber(nil).WithProbeFunc(probe.probe)

	_, err := p.Duration(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 0, probe.calls)
}

func TestProber_RemoteSkipsStatAndCache(t *testing.T) {
	cache := newMemoryCache()
	probe := &countingProbe{value: 9}
	p := NewProber(cache).WithProbeFunc(probe.probe)

	d, err := p.Duration(context.Background(), "https://example.com/a.mp4")
	require.NoError(t, err)
	assert.InDelta(t, 9.0, d, 1e-9)
	assert.Equal(t, 0, cache.stores)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"plain", "12.345000\n", 12.345, false},
		{"integer", "7", 7, false},
		{"not available", "N/A\n", 0, true},
		{"empty", "", 0, true},
		{"zero", "0.000000", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestProber_LogsCacheStoreFailure(t *testing.T) {
	path := writeFile(t, "clip.mp4")
	cache := newMemoryCache()
	cache.failStore = true
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewProber(cache).WithProbeFunc((&countingProbe{value: 3}).probe).WithLogger(logger)

	d, err := p.Duration(context.Background(), path)

	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-9)
	assert.Contains(t, logs.String(), "probe cache store")
	assert.Contains(t, logs.String(), "disk full")
}
