package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientBar_Fill(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		ratio      float64
		wantFilled int
	}{
		{"empty", 10, 0, 0},
		{"half", 10, 0.5, 5},
		{"full", 10, 1, 10},
		{"first of six", 12, 1.0 / 6, 2},
		{"over", 10, 3, 10},
		{"under", 10, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain := ansi.Strip(GradientBar(tt.width, tt.ratio, T().Teal, T().Gold, T().FgSubtle))
			assert.Equal(t, tt.wantFilled, strings.Count(plain, barFilled))
			assert.Equal(t, tt.width-tt.wantFilled, strings.Count(plain, barEmpty))
		})
	}
}

func TestGradientBar_ZeroWidth(t *testing.T) {
	assert.Empty(t, GradientBar(0, 0.5, T().Teal, T().Gold, T().FgSubtle))
}

func TestApplyBoldGradient_KeepsText(t *testing.T) {
	assert.Equal(t, "Saudi · KSA", ansi.Strip(ApplyBoldGradient("Saudi · KSA", T().Teal, T().Gold)))
	assert.Empty(t, ApplyBoldGradient("", T().Teal, T().Gold))
}

func TestBlendColors_Endpoints(t *testing.T) {
	colors := blendColors(5, lipgloss.Color("#30f0ff"), lipgloss.Color("#f5c76a"))
	require.Len(t, colors, 5)
	teal, _ := colorful.Hex("#30f0ff")
	gold, _ := colorful.Hex("#f5c76a")
	first, _ := colorful.MakeColor(colors[0])
	last, _ := colorful.MakeColor(colors[4])
	assert.Less(t, first.DistanceRgb(teal), 0.01)
	assert.Less(t, last.DistanceRgb(gold), 0.01)
}

func TestDim(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#f5c76a"), Dim(lipgloss.Color("#f5c76a"), 0))
	assert.Equal(t, lipgloss.Color("#000000"), Dim(lipgloss.Color("#f5c76a"), 1))

	half, err := colorful.Hex(string(Dim(lipgloss.Color("#ffffff"), 0.5)))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, half.R, 0.01)
}
