package slideview

import (
	"math"

	"github.com/llehouerou/cinedeck/internal/catalog"
)

// cue is one entrance animation: hidden until delay, then easing in over
// duration seconds.
type cue struct {
	delay    float64
	duration float64
}

func (c cue) end() float64 { return c.delay + c.duration }

// progress returns the eased completion in [0, 1] at elapsed seconds.
func (c cue) progress(elapsed float64) float64 {
	if elapsed <= c.delay {
		return 0
	}
	t := min((elapsed-c.delay)/c.duration, 1)
	// ease-out cubic
	return 1 - math.Pow(1-t, 3)
}

// timeline holds the staggered entrance of a slide's content.
type timeline struct {
	title     cue
	subtitle  cue
	bullets   []cue
	highlight cue
	accent    cue
}

const (
	titleDelay        = 0.2
	subtitleDelay     = 0.4
	bulletsDelay      = 0.8
	bulletStagger     = 0.1
	highlightDelay    = 1.2
	highlightAlone    = 0.6
	textFade          = 0.8
	bulletFade        = 0.5
	accentFade        = 0.5
	accentFloatPeriod = 6.0
)

func newTimeline(s catalog.Slide) timeline {
	tl := timeline{
		title:     cue{titleDelay, textFade},
		subtitle:  cue{subtitleDelay, textFade},
		highlight: cue{highlightAlone, textFade},
		accent:    cue{0, accentFade},
	}
	if len(s.Bullets) > 0 {
		tl.highlight.delay = highlightDelay
	}
	tl.bullets = make([]cue, len(s.Bullets))
	for i := range s.Bullets {
		tl.bullets[i] = cue{bulletsDelay + bulletStagger*float64(i), bulletFade}
	}
	return tl
}

// end returns when the last entrance finishes.
func (tl timeline) end() float64 {
	e := max(tl.title.end(), tl.subtitle.end(), tl.highlight.end(), tl.accent.end())
	for _, b := range tl.bullets {
		e = max(e, b.end())
	}
	return e
}

// floatOffset returns the accent's vertical offset in rows: 0 at rest and -1
// around the middle of each float cycle.
func floatOffset(elapsed float64) int {
	phase := math.Mod(elapsed, accentFloatPeriod) / accentFloatPeriod
	lift := (1 - math.Cos(2*math.Pi*phase)) / 2
	return -int(math.Round(lift))
}
