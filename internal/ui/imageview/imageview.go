// Package imageview renders still images as terminal half-block art.
package imageview

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for slide media
	_ "image/jpeg" // JPEG decoder for slide media
	_ "image/png"  // PNG decoder for slide media
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// upperHalf draws the top pixel as foreground and the bottom one as background.
const upperHalf = "▀"

const maxCached = 32

type cacheKey struct {
	path          string
	width, height int
	dim           float64
}

// Renderer decodes, scales and caches images. It is safe for concurrent use.
type Renderer struct {
	mu       sync.Mutex
	decoded  map[string]image.Image
	rendered map[cacheKey]string
	bg       colorful.Color
}

// New creates a renderer. Transparent pixels take the background color bg.
func New(bg lipgloss.Color) *Renderer {
	c, err := colorful.Hex(string(bg))
	if err != nil {
		c = colorful.Color{}
	}
	return &Renderer{
		decoded:  make(map[string]image.Image),
		rendered: make(map[cacheKey]string),
		bg:       c,
	}
}

// Render returns path scaled to cover width x height cells, darkened by dim
// (0 = untouched, 1 = black).
func (r *Renderer) Render(path string, width, height int, dim float64) (string, error) {
	if width <= 0 || height <= 0 {
		return "", nil
	}
	key := cacheKey{path: path, width: width, height: height, dim: dim}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.rendered[key]; ok {
		return s, nil
	}

	img, err := r.load(path)
	if err != nil {
		return "", err
	}

	out := halfBlocks(cover(img, width, height*2), r.bg, dim)
	if len(r.rendered) >= maxCached {
		clear(r.rendered)
	}
	r.rendered[key] = out
	return out, nil
}

// Preload decodes path into the cache so a later Render only scales it.
func (r *Renderer) Preload(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load(path)
	return err
}

// Loaded reports whether path decoded successfully earlier.
func (r *Renderer) Loaded(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.decoded[path]
	return ok
}

func (r *Renderer) load(path string) (image.Image, error) {
	if img, ok := r.decoded[path]; ok {
		return img, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	r.decoded[path] = img
	return img, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// cover crops img to the target aspect ratio around its center, then scales
// it to exactly w x h pixels.
func cover(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW == 0 || srcH == 0 {
		return img
	}

	crop := b
	if srcW*h > srcH*w {
		cw := srcH * w / h
		x0 := b.Min.X + (srcW-cw)/2
		crop = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else if srcW*h < srcH*w {
		ch := srcW * h / w
		y0 := b.Min.Y + (srcH-ch)/2
		crop = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}
	if si, ok := img.(subImager); ok && crop != b && !crop.Empty() {
		img = si.SubImage(crop)
	}

	//nolint:gosec // cell dimensions are small
	return resize.Resize(uint(w), uint(h), img, resize.Bilinear)
}

func halfBlocks(img image.Image, bg colorful.Color, dim float64) string {
	b := img.Bounds()
	dim = min(max(dim, 0), 1)

	pixel := func(x, y int) string {
		c, ok := colorful.MakeColor(img.At(x, y))
		if !ok {
			c = bg
		}
		if dim > 0 {
			c = c.BlendRgb(colorful.Color{}, dim)
		}
		return c.Clamped().Hex()
	}

	lines := make([]string, 0, b.Dy()/2)
	for y := b.Min.Y; y+1 < b.Max.Y; y += 2 {
		var sb strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(pixel(x, y))).
				Background(lipgloss.Color(pixel(x, y+1))).
				Render(upperHalf))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

// Placeholder fills width x height cells with a vertical fade from top to
// bottom and centers label in it. It stands in for media that cannot be drawn.
func Placeholder(width, height int, top, bottom lipgloss.Color, label string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	c1, err1 := colorful.Hex(string(top))
	c2, err2 := colorful.Hex(string(bottom))
	if err1 != nil || err2 != nil {
		c1, c2 = colorful.Color{}, colorful.Color{}
	}

	labelRow := height / 2
	lines := make([]string, height)
	for y := range height {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(c1.BlendLab(c2, t).Clamped().Hex())).
			Width(width).
			MaxWidth(width)
		text := ""
		if y == labelRow {
			text = lipgloss.PlaceHorizontal(width, lipgloss.Center, label)
			style = style.Foreground(lipgloss.Color("#9aa0b4"))
		}
		lines[y] = style.Render(text)
	}
	return strings.Join(lines, "\n")
}
