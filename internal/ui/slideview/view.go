package slideview

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/cinedeck/internal/catalog"
	"github.com/llehouerou/cinedeck/internal/media"
	"github.com/llehouerou/cinedeck/internal/pingpong"
	"github.com/llehouerou/cinedeck/internal/ui/imageview"
	"github.com/llehouerou/cinedeck/internal/ui/overlay"
	"github.com/llehouerou/cinedeck/internal/ui/render"
	"github.com/llehouerou/cinedeck/internal/ui/styles"
)

const (
	contentPad          = 4
	minContentWidth     = 20
	bulletSlide         = 4 // columns a bullet travels while fading in
	backgroundDim       = 0.55
	dimmedBackgroundDim = 0.85
	minAccentWidth      = 60 // narrower screens drop the accent
	bulletMarker        = "▸ "
)

// View renders the mounted slide at now.
func (m *Model) View(now time.Time) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if !m.mounted {
		return render.Fit("", m.width, m.height)
	}

	el := m.elapsed(now)
	out := m.backgroundView()
	out = overlay.Compose(out, m.contentView(el), m.width)
	if m.slide.HasAccent() && m.width >= minAccentWidth {
		out = m.placeAccent(out, el)
	}
	return render.Fit(out, m.width, m.height)
}

func (m *Model) backgroundView() string {
	t := styles.T()
	if m.slide.IsVideo() {
		bg := imageview.Placeholder(m.width, m.height, styles.Dim(t.Teal, 0.85), t.Dark, "")
		scrub := scrubLine(m.background, m.width-2*contentPad)
		return overlay.Place(bg, scrub, contentPad, m.height-2, m.width)
	}

	dim := backgroundDim
	if m.slide.EffectiveLayout() == catalog.LayoutDimmed {
		dim = dimmedBackgroundDim
	}
	img, err := m.cfg.Images.Render(m.slide.MediaSrc, m.width, m.height, dim)
	if err != nil || img == "" {
		return imageview.Placeholder(m.width, m.height, styles.Dim(t.Gold, 0.8), t.Dark,
			filepath.Base(m.slide.MediaSrc))
	}
	return img
}

func (m *Model) contentWidth() int {
	return min(max(m.width*3/5, minContentWidth), m.width-2*contentPad)
}

// contentView lays out the text column as a transparent overlay.
func (m *Model) contentView(el float64) string {
	w := m.contentWidth()
	if w <= 0 {
		return ""
	}
	t := styles.T()
	s := m.slide
	var lines []string
	add := func(indent int, ls ...string) {
		pad := strings.Repeat(" ", contentPad+indent)
		for _, l := range ls {
			lines = append(lines, pad+l)
		}
	}
	// hidden parts keep their rows so nothing shifts as they appear
	reserve := func(n int) {
		for range n {
			lines = append(lines, "")
		}
	}

	titleLines := render.Wrap(s.Title, w)
	if p := m.reveal.title.progress(el); p > 0 {
		st := lipgloss.NewStyle().Bold(true).Foreground(styles.Dim(t.Gold, 1-p))
		for _, l := range titleLines {
			add(0, st.Render(l))
		}
	} else {
		reserve(len(titleLines))
	}
	reserve(1)

	if sub := m.subtitleLine(el, w); sub != "" {
		add(0, sub)
	} else {
		reserve(1)
	}
	reserve(1)

	for i, b := range s.Bullets {
		wrapped := render.Wrap(b, w-bulletSlide-lipgloss.Width(bulletMarker))
		p := m.reveal.bullets[i].progress(el)
		if p == 0 {
			reserve(len(wrapped))
			continue
		}
		shift := int(math.Round((1 - p) * bulletSlide))
		marker := lipgloss.NewStyle().Bold(true).Foreground(styles.Dim(t.Teal, 1-p)).Render(bulletMarker)
		text := lipgloss.NewStyle().Foreground(styles.Dim(t.FgBase, 1-p))
		for j, l := range wrapped {
			if j == 0 {
				add(shift, marker+text.Render(l))
				continue
			}
			add(shift+lipgloss.Width(bulletMarker), text.Render(l))
		}
	}

	if s.Highlight != "" {
		reserve(1)
		wrapped := render.Wrap(s.Highlight, w-2)
		if p := m.reveal.highlight.progress(el); p > 0 {
			box := styles.HighlightBox().BorderForeground(styles.Dim(t.Gold, 1-p))
			text := lipgloss.NewStyle().Bold(true).Foreground(styles.Dim(t.Gold, 1-p))
			styled := make([]string, len(wrapped))
			for i, l := range wrapped {
				styled[i] = text.Render(l)
			}
			add(0, strings.Split(box.Render(strings.Join(styled, "\n")), "\n")...)
		} else {
			reserve(len(wrapped))
		}
	}

	top := max(m.height/6, 1)
	rows := make([]string, m.height)
	for i, l := range lines {
		if top+i >= m.height {
			break
		}
		rows[top+i] = l
	}
	return strings.Join(rows, "\n")
}

// subtitleLine is the subtitle, or the brand mark on branded slides.
func (m *Model) subtitleLine(el float64, width int) string {
	p := m.reveal.subtitle.progress(el)
	if p == 0 {
		return ""
	}
	t := styles.T()
	if m.slide.EffectiveLayout() == catalog.LayoutBranded {
		label := lipgloss.NewStyle().Foreground(styles.Dim(t.FgMuted, 1-p)).Render("Presented by: ")
		brand := styles.ApplyBoldGradient(render.Sanitize(m.cfg.Brand), styles.Dim(t.Teal, 1-p), styles.Dim(t.Gold, 1-p))
		return label + brand
	}
	if m.slide.Subtitle == "" {
		return ""
	}
	return lipgloss.NewStyle().Italic(true).Foreground(styles.Dim(t.Teal, 1-p)).
		Render(render.Truncate(m.slide.Subtitle, width))
}

func (m *Model) accentSize() (int, int) {
	w := min(max(m.width/4, 14), 32)
	return w, max(w/2, 5)
}

func (m *Model) placeAccent(base string, el float64) string {
	p := m.reveal.accent.progress(el)
	if p == 0 {
		return base
	}
	t := styles.T()
	w, h := m.accentSize()
	iw, ih := w-2, h-2
	fade := math.Round((1-p)*10) / 10

	var inner string
	if m.slide.AccentIsVideo() {
		bg := imageview.Placeholder(iw, ih, styles.Dim(t.Teal, 0.7), t.Dark, "")
		inner = overlay.Place(bg, scrubLine(m.accent, iw), 0, ih-1, iw)
	} else {
		img, err := m.cfg.Images.Render(m.slide.AccentSrc, iw, ih, fade)
		if err != nil || img == "" {
			img = imageview.Placeholder(iw, ih, styles.Dim(t.Teal, 0.7), t.Dark,
				render.Truncate(filepath.Base(m.slide.AccentSrc), iw))
		}
		inner = img
	}
	box := styles.AccentBox().BorderForeground(styles.Dim(t.Teal, fade)).Render(inner)

	x := m.width - w - contentPad
	y := 2 + floatOffset(el)
	return overlay.Place(base, box, x, y, m.width)
}

// scrubLine draws a clip's position and direction on one line of width cells.
func scrubLine(cm *clipMount, width int) string {
	if cm == nil || width <= 0 {
		return ""
	}
	t := styles.T()
	muted := lipgloss.NewStyle().Foreground(t.FgMuted)
	clip := cm.clip

	icon := "▶"
	dir := "forward"
	if cm.session.Direction() == pingpong.Reverse {
		icon, dir = "◀", "reverse"
	}
	left := lipgloss.NewStyle().Foreground(t.Teal).Render(icon) + " " + muted.Render(render.Sanitize(clip.Name()))

	var right string
	switch {
	case clip.Err() != nil:
		right = lipgloss.NewStyle().Foreground(t.Warning).Render("unavailable")
	case math.IsNaN(clip.Duration()):
		right = muted.Render("probing…")
	default:
		right = muted.Render(fmt.Sprintf("%.1f/%.1fs %s", clip.CurrentTime(), clip.Duration(), dir))
	}

	barW := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if barW < 4 {
		return render.Row(ansi.Truncate(left, max(width-lipgloss.Width(right)-1, 0), ""), right, width)
	}
	return left + " " + scrubBar(clip, barW) + " " + right
}

func scrubBar(clip *media.Clip, width int) string {
	t := styles.T()
	knob := min(int(clip.Progress()*float64(width-1)+0.5), width-1)
	return lipgloss.NewStyle().Foreground(t.Teal).Render(strings.Repeat("━", knob)) +
		lipgloss.NewStyle().Foreground(t.Gold).Render("●") +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("─", width-knob-1))
}
