package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/kerbaras/gita/pkg/data"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CoverSettings controls the generated EPUB cover.
type CoverSettings struct {
	Width      int
	Height     int
	Scale      int // text is drawn at Width/Scale and upscaled
	Background color.RGBA
	Foreground color.RGBA
	Accent     color.RGBA
	// Grayscale encodes an 8-bit gray PNG for e-ink readers.
	Grayscale bool
}

// DefaultCoverSettings returns a 600x900 cover in the colours of mode.
func DefaultCoverSettings(mode data.ThemeMode) CoverSettings {
	bg, fg, accent := "#FDF8F3", "#1A365D", "#C9A227"
	switch mode {
	case data.ThemeDark:
		bg, fg, accent = "#1A1A2E", "#E2D5C3", "#D4AF37"
	case data.ThemeTemple:
		bg, fg, accent = "#2D1B0E", "#F5DEB3", "#FFD700"
	}
	return CoverSettings{
		Width:      600,
		Height:     900,
		Scale:      4,
		Background: hexColor(bg),
		Foreground: hexColor(fg),
		Accent:     hexColor(accent),
	}
}

// CoverRenderer draws simple text covers.
type CoverRenderer struct {
	settings CoverSettings
}

func NewCoverRenderer(settings CoverSettings) *CoverRenderer {
	if settings.Scale < 1 {
		settings.Scale = 1
	}
	return &CoverRenderer{settings: settings}
}

// Render draws the title lines centred on the cover and returns a PNG.
func (r *CoverRenderer) Render(lines ...string) ([]byte, error) {
	s := r.settings
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid cover size %dx%d", s.Width, s.Height)
	}

	small := image.NewRGBA(image.Rect(0, 0, s.Width/s.Scale, s.Height/s.Scale))
	draw.Draw(small, small.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	r.drawFrame(small)
	r.drawLines(small, lines)

	// Nearest neighbour keeps the bitmap glyphs crisp when scaled up
	cover := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.NearestNeighbor.Scale(cover, cover.Bounds(), small, small.Bounds(), draw.Src, nil)

	var out image.Image = cover
	if s.Grayscale {
		out = toGrayscale(cover)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CoverRenderer) drawFrame(img *image.RGBA) {
	b := img.Bounds()
	accent := image.NewUniform(r.settings.Accent)
	const inset, thickness = 4, 1

	frame := []image.Rectangle{
		image.Rect(b.Min.X+inset, b.Min.Y+inset, b.Max.X-inset, b.Min.Y+inset+thickness),
		image.Rect(b.Min.X+inset, b.Max.Y-inset-thickness, b.Max.X-inset, b.Max.Y-inset),
		image.Rect(b.Min.X+inset, b.Min.Y+inset, b.Min.X+inset+thickness, b.Max.Y-inset),
		image.Rect(b.Max.X-inset-thickness, b.Min.Y+inset, b.Max.X-inset, b.Max.Y-inset),
	}
	for _, rect := range frame {
		draw.Draw(img, rect, accent, image.Point{}, draw.Src)
	}
}

func (r *CoverRenderer) drawLines(img *image.RGBA, lines []string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 4
	b := img.Bounds()

	top := (b.Dy() - lineHeight*len(lines)) / 2
	for i, line := range lines {
		// basicfont only covers ASCII
		line = asciiOnly(line)
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(r.settings.Foreground),
			Face: face,
		}
		if i == 0 {
			d.Src = image.NewUniform(r.settings.Accent)
		}
		width := d.MeasureString(line).Ceil()
		x := (b.Dx() - width) / 2
		if x < 0 {
			x = 0
		}
		y := top + (i+1)*lineHeight
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
}

func toGrayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, img.At(x, y))
		}
	}
	return gray
}

func asciiOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func hexColor(hex string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
