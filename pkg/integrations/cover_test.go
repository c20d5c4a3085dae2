package integrations

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/kerbaras/gita/pkg/data"
)

func TestCoverRenderer_Render(t *testing.T) {
	settings := DefaultCoverSettings(data.ThemeTemple)
	out, err := NewCoverRenderer(settings).Render("BHAGAVAD GITA", "Saved Verses")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Render() did not produce a PNG: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 600 || b.Dy() != 900 {
		t.Errorf("Expected 600x900 cover, got %dx%d", b.Dx(), b.Dy())
	}

	// The corner sits outside the frame and keeps the background colour
	got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if got != settings.Background {
		t.Errorf("Expected background %v at corner, got %v", settings.Background, got)
	}

	// Frame line at inset 4 of the small canvas, scaled by 4
	got = color.RGBAModel.Convert(img.At(b.Dx()/2, 4*4+1)).(color.RGBA)
	if got != settings.Accent {
		t.Errorf("Expected accent %v on frame, got %v", settings.Accent, got)
	}
}

func TestCoverRenderer_DrawsText(t *testing.T) {
	settings := DefaultCoverSettings(data.ThemeLight)
	blank, err := NewCoverRenderer(settings).Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	titled, err := NewCoverRenderer(settings).Render("GITA")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if bytes.Equal(blank, titled) {
		t.Error("Expected text to change the rendered cover")
	}
}

func TestCoverRenderer_InvalidSize(t *testing.T) {
	_, err := NewCoverRenderer(CoverSettings{Width: 0, Height: 10}).Render("x")
	if err == nil {
		t.Error("Render() should fail with zero width")
	}
}

func TestDefaultCoverSettings(t *testing.T) {
	tests := []struct {
		mode data.ThemeMode
		bg   color.RGBA
	}{
		{data.ThemeLight, color.RGBA{0xFD, 0xF8, 0xF3, 0xFF}},
		{data.ThemeDark, color.RGBA{0x1A, 0x1A, 0x2E, 0xFF}},
		{data.ThemeTemple, color.RGBA{0x2D, 0x1B, 0x0E, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := DefaultCoverSettings(tt.mode)
			if got.Background != tt.bg {
				t.Errorf("Expected background %v, got %v", tt.bg, got.Background)
			}
			if got.Scale != 4 {
				t.Errorf("Expected scale 4, got %d", got.Scale)
			}
		})
	}
}

func TestAsciiOnly(t *testing.T) {
	if got := asciiOnly("📿 Gita 2:47"); got != "Gita 2:47" {
		t.Errorf("asciiOnly() = %q", got)
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor("#C9A227"); got != (color.RGBA{0xC9, 0xA2, 0x27, 0xFF}) {
		t.Errorf("hexColor() = %v", got)
	}
	if got := hexColor("nope"); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("hexColor() fallback = %v", got)
	}
}

func TestCoverRenderer_Grayscale(t *testing.T) {
	settings := DefaultCoverSettings(data.ThemeTemple)
	settings.Grayscale = true

	out, err := NewCoverRenderer(settings).Render("BHAGAVAD GITA")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("Render() did not produce a PNG: %v", err)
	}
	if _, ok := img.(*image.Gray); !ok {
		t.Errorf("Expected a gray PNG, got %T", img)
	}
}
