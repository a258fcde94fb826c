package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/cinedeck/internal/catalog"
)

func newDeck(n int) *Deck {
	slides := make([]catalog.Slide, n)
	for i := range slides {
		slides[i] = catalog.Slide{ID: i + 1, Title: "s", MediaType: catalog.MediaImage, MediaSrc: "x.png"}
	}
	return New(&catalog.Deck{Slides: slides})
}

func TestDeck_StartsAtFirst(t *testing.T) {
	d := newDeck(6)
	assert.Equal(t, 0, d.Index())
	assert.Equal(t, 1, d.Current().ID)
	assert.False(t, d.CanRetreat())
	assert.True(t, d.CanAdvance())
}

func TestDeck_AdvanceAtLastIsNoop(t *testing.T) {
	d := newDeck(3)
	assert.True(t, d.Advance())
	assert.True(t, d.Advance())
	assert.False(t, d.Advance())
	assert.Equal(t, 2, d.Index())
	assert.False(t, d.CanAdvance())
}

func TestDeck_RetreatAtFirstIsNoop(t *testing.T) {
	d := newDeck(3)
	assert.False(t, d.Retreat())
	assert.Equal(t, 0, d.Index())
}

func TestDeck_Jump(t *testing.T) {
	tests := []struct {
		name      string
		to        int
		wantMoved bool
		wantIndex int
	}{
		{"in range", 4, true, 4},
		{"same index", 2, false, 2},
		{"negative", -1, false, 2},
		{"past end", 6, false, 2},
		{"far past end", 10, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeck(6)
			d.Jump(2)
			assert.Equal(t, tt.wantMoved, d.Jump(tt.to))
			assert.Equal(t, tt.wantIndex, d.Index())
		})
	}
}

// Index 2 of 6: advance, retreat twice, then an out-of-range jump.
func TestDeck_NavigationSequence(t *testing.T) {
	d := newDeck(6)
	d.Jump(2)

	assert.True(t, d.Advance())
	assert.Equal(t, 3, d.Index())

	d.Retreat()
	d.Retreat()
	assert.Equal(t, 1, d.Index())

	assert.False(t, d.Jump(10))
	assert.Equal(t, 1, d.Index())
}

func TestDeck_FirstLast(t *testing.T) {
	d := newDeck(4)
	assert.True(t, d.Last())
	assert.Equal(t, 3, d.Index())
	assert.False(t, d.Last())
	assert.True(t, d.First())
	assert.Equal(t, 0, d.Index())
}

func TestDeck_Progress(t *testing.T) {
	d := newDeck(4)
	assert.InDelta(t, 0.25, d.Progress(), 1e-9)
	d.Last()
	assert.InDelta(t, 1.0, d.Progress(), 1e-9)

	single := newDeck(1)
	assert.InDelta(t, 1.0, single.Progress(), 1e-9)
	assert.False(t, single.Advance())
	assert.False(t, single.Retreat())
}
