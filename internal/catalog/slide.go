// Package catalog defines the slide records a deck is made of and loads them
// from the built-in deck or from TOML/YAML deck files.
package catalog

import "strings"

// MediaType says how a slide's background media is presented.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Layout selects per-slide visual treatments.
type Layout string

const (
	// LayoutStandard shows the subtitle under the title.
	LayoutStandard Layout = "standard"
	// LayoutBranded replaces the subtitle with the "Presented by:" brand mark.
	LayoutBranded Layout = "branded"
	// LayoutDimmed adds an extra dark overlay on the background media.
	LayoutDimmed Layout = "dimmed"
)

// Slide is one immutable record of a deck.
type Slide struct {
	ID        int       `koanf:"id" yaml:"id"`
	Title     string    `koanf:"title" yaml:"title"`
	Subtitle  string    `koanf:"subtitle" yaml:"subtitle"`
	Bullets   []string  `koanf:"bullets" yaml:"bullets"`
	Highlight string    `koanf:"highlight" yaml:"highlight"`
	MediaType MediaType `koanf:"media_type" yaml:"media_type"`
	MediaSrc  string    `koanf:"media_src" yaml:"media_src"`
	AccentSrc string    `koanf:"accent_src" yaml:"accent_src"`
	Layout    Layout    `koanf:"layout" yaml:"layout"`
	Ambience  string    `koanf:"ambience" yaml:"ambience"`
}

// HasAccent reports whether the slide has an accent object.
func (s Slide) HasAccent() bool { return s.AccentSrc != "" }

// AccentIsVideo reports whether the accent is a video. Only the literal
// ".mp4" suffix counts; anything else is an image.
func (s Slide) AccentIsVideo() bool {
	return strings.HasSuffix(s.AccentSrc, ".mp4")
}

// IsVideo reports whether the background media is a video.
func (s Slide) IsVideo() bool { return s.MediaType == MediaVideo }

// EffectiveLayout returns the layout with the empty value read as standard.
func (s Slide) EffectiveLayout() Layout {
	if s.Layout == "" {
		return LayoutStandard
	}
	return s.Layout
}

// Deck is an ordered, validated list of slides plus deck-wide labels.
type Deck struct {
	Title  string  `koanf:"title" yaml:"title"`
	Brand  string  `koanf:"brand" yaml:"brand"`
	Slides []Slide `koanf:"slides" yaml:"slides"`
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.Slides) }

// Slide returns the slide at index i.
func (d *Deck) Slide(i int) Slide { return d.Slides[i] }
