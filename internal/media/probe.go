package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// DurationCache remembers probed durations for files that have not changed.
type DurationCache interface {
	Lookup(path string, size, mtime int64) (float64, bool, error)
	Store(path string, size, mtime int64, duration float64) error
}

// ProbeFunc returns the duration of a media file in seconds.
type ProbeFunc func(ctx context.Context, path string) (float64, error)

// Prober resolves media durations, consulting a cache before probing.
type Prober struct {
	cache  DurationCache
	probe  ProbeFunc
	logger *slog.Logger
}

// NewProber creates a prober using ffprobe. cache may be nil.
func NewProber(cache DurationCache) *Prober {
	return &Prober{cache: cache, probe: FFProbe, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger returns a copy of p that logs cache failures to logger.
func (p *Prober) WithLogger(logger *slog.Logger) *Prober {
	cp := *p
	if logger != nil {
		cp.logger = logger
	}
	return &cp
}

// WithProbeFunc returns a copy of p that probes with fn.
func (p *Prober) WithProbeFunc(fn ProbeFunc) *Prober {
	cp := *p
	cp.probe = fn
	return &cp
}

// Duration returns the duration of path. Cache failures are not fatal; the
// file is probed instead.
func (p *Prober) Duration(ctx context.Context, path string) (float64, error) {
	if isRemote(path) {
		return p.probe(ctx, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	size, mtime := info.Size(), info.ModTime().UnixNano()

	if p.cache != nil {
		d, ok, err := p.cache.Lookup(path, size, mtime)
		switch {
		case err != nil:
			p.logger.Debug("probe cache lookup", "path", path, "error", err)
		case ok:
			return d, nil
		}
	}

	d, err := p.probe(ctx, path)
	if err != nil {
		return 0, err
	}
	if p.cache != nil {
		if err := p.cache.Store(path, size, mtime, d); err != nil {
			p.logger.Debug("probe cache store", "path", path, "error", err)
		}
	}
	return d, nil
}

func isRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FFProbe reads the container duration with ffprobe.
func FFProbe(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}
	return parseDuration(string(out))
}

func parseDuration(out string) (float64, error) {
	var d float64
	if _, err := fmt.Sscanf(strings.TrimSpace(out), "%f", &d); err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(out), err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration %v", d)
	}
	return d, nil
}
