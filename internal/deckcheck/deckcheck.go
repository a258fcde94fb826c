// Package deckcheck inspects every media file a deck refers to.
package deckcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/cinedeck/internal/catalog"
	"github.com/llehouerou/cinedeck/internal/media"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

// DefaultConcurrency bounds parallel ffprobe runs.
const DefaultConcurrency = 4

// Role says what a media file is used for on its slide.
type Role string

const (
	RoleBackground Role = "background"
	RoleAccent     Role = "accent"
	RoleAmbience   Role = "ambience"
)

// Entry is the result for one media reference.
type Entry struct {
	SlideID  int
	Role     Role
	Path     string
	Timed    bool    // video or audio; has a duration
	Size     int64   // -1 when unknown (remote or missing)
	Duration float64 // seconds; NaN when not timed or unknown
	Err      error
}

// Report lists every media reference of a deck in slide order.
type Report struct {
	Title   string
	Entries []Entry
}

// Problems returns the entries that failed.
func (r *Report) Problems() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Options tune Run.
type Options struct {
	Prober      *media.Prober
	Concurrency int
}

// Run stats and probes every media file of d concurrently. Per-file failures
// are recorded in the report; only cancellation fails the run.
func Run(ctx context.Context, d *catalog.Deck, opts Options) (*Report, error) {
	if opts.Prober == nil {
		opts.Prober = media.NewProber(nil)
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	r := &Report{Title: d.Title, Entries: collect(d)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for i := range r.Entries {
		e := &r.Entries[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inspect(ctx, e, opts.Prober)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

func collect(d *catalog.Deck) []Entry {
	var out []Entry
	add := func(id int, role Role, path string, timed bool) {
		out = append(out, Entry{SlideID: id, Role: role, Path: path, Timed: timed, Size: -1, Duration: math.NaN()})
	}
	for _, s := range d.Slides {
		add(s.ID, RoleBackground, s.MediaSrc, s.IsVideo())
		if s.HasAccent() {
			add(s.ID, RoleAccent, s.AccentSrc, s.AccentIsVideo())
		}
		if s.Ambience != "" {
			add(s.ID, RoleAmbience, s.Ambience, true)
		}
	}
	return out
}

// inspect fills e. Each goroutine owns its entry.
func inspect(ctx context.Context, e *Entry, prober *media.Prober) {
	if !strings.Contains(e.Path, "://") {
		info, err := os.Stat(e.Path)
		if err != nil {
			e.Err = err
			return
		}
		e.Size = info.Size()
	}
	if !e.Timed {
		return
	}

	if e.Role == RoleAmbience {
		e.Duration, e.Err = trackDuration(e.Path)
		return
	}
	e.Duration, e.Err = prober.Duration(ctx, e.Path)
}

// trackDuration decodes an ambience file the same way playback does.
func trackDuration(path string) (float64, error) {
	t, err := media.OpenTrack(path, nil, 0)
	if err != nil {
		return math.NaN(), err
	}
	d := t.Duration()
	return d, t.Close()
}

// Write prints r as a table followed by a summary line.
func Write(w io.Writer, r *Report) error {
	s := styles.T().S()
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.T().FgSubtle)).
		Headers("SLIDE", "ROLE", "FILE", "SIZE", "DURATION", "STATUS")

	for _, e := range r.Entries {
		size := "-"
		if e.Size >= 0 {
			size = humanize.IBytes(uint64(e.Size)) //nolint:gosec // checked non-negative
		}
		duration := "-"
		if !math.IsNaN(e.Duration) {
			duration = strconv.FormatFloat(e.Duration, 'f', 2, 64) + "s"
		}
		status := "ok"
		if e.Err != nil {
			status = describe(e.Err)
		}
		tbl.Row(strconv.Itoa(e.SlideID), string(e.Role), e.Path, size, duration, status)
	}

	problems := len(r.Problems())
	summary := s.Muted.Render(fmt.Sprintf("%s: %d media files, all readable", r.Title, len(r.Entries)))
	if problems > 0 {
		summary = s.Warning.Render(fmt.Sprintf("%s: %d media files, %d with problems", r.Title, len(r.Entries), problems))
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", tbl.String(), summary)
	return err
}

func describe(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "missing"
	}
	return err.Error()
}
