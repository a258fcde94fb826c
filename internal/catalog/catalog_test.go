package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_IsValid(t *testing.T) {
	d := Builtin()
	require.NoError(t, d.Validate())
	assert.Equal(t, 6, d.Len())

	assert.Equal(t, LayoutBranded, d.Slide(0).EffectiveLayout())
	assert.Equal(t, LayoutDimmed, d.Slide(1).EffectiveLayout())
	assert.Equal(t, LayoutStandard, d.Slide(2).EffectiveLayout())
	assert.Equal(t, MediaImage, d.Slide(1).MediaType)
	assert.False(t, d.Slide(4).HasAccent())
}

func TestSlide_AccentIsVideo(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"media/obj.mp4", true},
		{"media/obj.png", false},
		{"media/obj.MP4", false},
		{"media/obj.mp4?v=2", false},
		{"media/obj.webm", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, Slide{AccentSrc: tt.src}.AccentIsVideo())
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Slide {
		return Slide{ID: 1, Title: "T", MediaType: MediaImage, MediaSrc: "a.png"}
	}

	tests := []struct {
		name    string
		slides  []Slide
		wantErr []string
	}{
		{name: "empty deck", slides: nil, wantErr: []string{"no slides"}},
		{name: "valid", slides: []Slide{valid()}},
		{
			name: "duplicate id",
			slides: func() []Slide {
				a, b := valid(), valid()
				return []Slide{a, b}
			}(),
			wantErr: []string{"duplicate id 1"},
		},
		{
			name: "every problem reported",
			slides: []Slide{{
				ID:        0,
				MediaType: "gif",
				Layout:    "wide",
			}},
			wantErr: []string{
				"id must be positive",
				"title is required",
				`unknown media type "gif"`,
				"media source is required",
				`unknown layout "wide"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Deck{Slides: tt.slides}).Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

const tomlDeck = `
title = "Quarterly"
brand = "Acme"

[[slides]]
id = 1
title = "Opening"
media_type = "video"
media_src = "media/open.mp4"
accent_src = "media/spin.mp4"
layout = "branded"
ambience = "media/hum.wav"

[[slides]]
id = 2
title = "Numbers"
bullets = ["up", "right"]
highlight = "Good year"
media_type = "image"
media_src = "/abs/chart.png"
`

const yamlDeck = `
title: Quarterly
slides:
  - id: 1
    title: Opening
    subtitle: Welcome
    media_type: image
    media_src: https://example.com/bg.png
  - id: 2
    title: Numbers
    bullets: [up, right]
    media_type: video
    media_src: clips/n.mp4
    layout: dimmed
`

func writeDeck(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeDeck(t, "deck.toml", tomlDeck)
	dir := filepath.Dir(path)

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Quarterly", d.Title)
	assert.Equal(t, "Acme", d.Brand)
	require.Equal(t, 2, d.Len())

	first := d.Slide(0)
	assert.Equal(t, MediaVideo, first.MediaType)
	assert.Equal(t, filepath.Join(dir, "media/open.mp4"), first.MediaSrc)
	assert.Equal(t, filepath.Join(dir, "media/hum.wav"), first.Ambience)
	assert.True(t, first.AccentIsVideo())
	assert.Equal(t, LayoutBranded, first.Layout)

	second := d.Slide(1)
	assert.Equal(t, []string{"up", "right"}, second.Bullets)
	assert.Equal(t, "/abs/chart.png", second.MediaSrc)
	assert.Empty(t, second.AccentSrc)
}

func TestLoad_YAML(t *testing.T) {
	path := writeDeck(t, "deck.yml", yamlDeck)

	d, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultBrand, d.Brand)
	assert.Equal(t, "https://example.com/bg.png", d.Slide(0).MediaSrc)
	assert.Equal(t, "Welcome", d.Slide(0).Subtitle)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "clips/n.mp4"), d.Slide(1).MediaSrc)
	assert.Equal(t, LayoutDimmed, d.Slide(1).Layout)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeDeck(t, "deck.json", "{}"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.toml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeDeck(t, "deck.yaml", "slides: [unterminated"))
		require.Error(t, err)
	})

	t.Run("invalid deck", func(t *testing.T) {
		_, err := Load(writeDeck(t, "deck.yaml", "slides:\n  - id: 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck")
		assert.Contains(t, err.Error(), "title is required")
	})
}
