// Package deck holds the presentation position over a catalog deck.
package deck

import "github.com/llehouerou/cinedeck/internal/catalog"

// Deck tracks the current slide. The index is always within [0, Len-1].
type Deck struct {
	slides *catalog.Deck
	index  int
}

// New creates a deck positioned on the first slide. slides must be
// non-empty; catalog validation guarantees that.
func New(slides *catalog.Deck) *Deck {
	return &Deck{slides: slides}
}

// Catalog returns the underlying slide list.
func (d *Deck) Catalog() *catalog.Deck { return d.slides }

// Index returns the current slide index.
func (d *Deck) Index() int { return d.index }

// Len returns the number of slides.
func (d *Deck) Len() int { return d.slides.Len() }

// Current returns the current slide.
func (d *Deck) Current() catalog.Slide {
	return d.slides.Slide(d.index)
}

// CanAdvance returns true if there's a slide after the current one.
func (d *Deck) CanAdvance() bool {
	return d.index < d.Len()-1
}

// CanRetreat returns true if there's a slide before the current one.
func (d *Deck) CanRetreat() bool {
	return d.index > 0
}

// Advance moves to the next slide. It is a no-op on the last slide.
func (d *Deck) Advance() bool {
	if !d.CanAdvance() {
		return false
	}
	d.index++
	return true
}

// Retreat moves to the previous slide. It is a no-op on the first slide.
func (d *Deck) Retreat() bool {
	if !d.CanRetreat() {
		return false
	}
	d.index--
	return true
}

// Jump moves to slide i. Out-of-range indices and the current index are
// ignored.
func (d *Deck) Jump(i int) bool {
	if i < 0 || i >= d.Len() || i == d.index {
		return false
	}
	d.index = i
	return true
}

// First jumps to the first slide.
func (d *Deck) First() bool { return d.Jump(0) }

// Last jumps to the last slide.
func (d *Deck) Last() bool { return d.Jump(d.Len() - 1) }

// Progress returns (index+1)/Len, the fraction shown by the progress bar.
func (d *Deck) Progress() float64 {
	return float64(d.index+1) / float64(d.Len())
}
