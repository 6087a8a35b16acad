package picture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestEmptyFillsEveryCell(t *testing.T) {
	bg := Color{0xf0, 0xf0, 0xf0}
	p, err := Empty(3, 2, bg)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	if p.Width() != 3 || p.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", p.Width(), p.Height())
	}
	for i, c := range p.Pixels() {
		if c != bg {
			t.Fatalf("pixel %d = %v, want %v", i, c, bg)
		}
	}
}

func TestEmptyRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-2, 4}} {
		if _, err := Empty(dims[0], dims[1], Color{}); !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("Empty(%d, %d) error = %v, want ErrInvalidDimension", dims[0], dims[1], err)
		}
	}
}

func TestNewValidatesPixelCount(t *testing.T) {
	if _, err := New(2, 2, make([]Color, 3)); err == nil {
		t.Fatalf("expected error for short pixel slice")
	}
	src := []Color{{1, 2, 3}, {4, 5, 6}}
	p, err := New(2, 1, src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	src[0] = Color{}
	if got := p.Pixel(0, 0); got != (Color{1, 2, 3}) {
		t.Fatalf("New did not copy pixels, got %v", got)
	}
}

func TestPixelIsRowMajor(t *testing.T) {
	p, err := New(2, 2, []Color{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.Pixel(1, 1); got.R != 4 {
		t.Fatalf("Pixel(1,1) = %v, want R=4", got)
	}
	if got := p.Pixel(0, 1); got.R != 3 {
		t.Fatalf("Pixel(0,1) = %v, want R=3", got)
	}
	if got := p.Pixel(5, 5); got != (Color{}) {
		t.Fatalf("out of range Pixel = %v, want zero", got)
	}
}

func TestDrawReturnsNewPictureAndLeavesOriginal(t *testing.T) {
	white := Color{255, 255, 255}
	red := Color{255, 0, 0}
	blue := Color{0, 0, 255}
	p, _ := Empty(2, 2, white)
	q := p.Draw([]Cell{{0, 0, red}, {0, 0, blue}, {9, 9, red}, {-1, 0, red}})
	if q == p {
		t.Fatalf("Draw returned the receiver")
	}
	if got := q.Pixel(0, 0); got != blue {
		t.Fatalf("later cell should win, got %v", got)
	}
	if got := p.Pixel(0, 0); got != white {
		t.Fatalf("original mutated: %v", got)
	}
	if !q.Draw(nil).Equal(q) {
		t.Fatalf("empty patch changed pixels")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]Color{
		"#000000":   {0, 0, 0},
		"#F0f0F0":   {0xf0, 0xf0, 0xf0},
		"#abc":      {0xaa, 0xbb, 0xcc},
		"#11223344": {0x11, 0x22, 0x33},
		"lime":      {0, 255, 0},
		" Navy ":    {0, 0, 128},
		"orange":    {255, 165, 0},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %v, want %v", in, got, want)
		}
	}
	for _, bad := range []string{"", "#12", "#zzzzzz", "nope"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) expected error", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := Color{0x12, 0xab, 0x0f}
	if c.Hex() != "#12ab0f" {
		t.Fatalf("Hex = %q", c.Hex())
	}
	back, err := ParseColor(c.Hex())
	if err != nil || back != c {
		t.Fatalf("round trip = %v, %v", back, err)
	}
}

func TestFromImageCropsAndDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 130, 5))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(119, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	p, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage: %v", err)
	}
	if p.Width() != MaxImportSize || p.Height() != 5 {
		t.Fatalf("size = %dx%d, want %dx5", p.Width(), p.Height(), MaxImportSize)
	}
	if got := p.Pixel(0, 0); got != (Color{10, 20, 30}) {
		t.Fatalf("Pixel(0,0) = %v", got)
	}
	if got := p.Pixel(119, 4); got != (Color{1, 2, 3}) {
		t.Fatalf("Pixel(119,4) = %v", got)
	}
}

func TestDecodePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	p, format, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q", format)
	}
	if got := p.Pixel(1, 0); got != (Color{200, 0, 0}) {
		t.Fatalf("Pixel(1,0) = %v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Fatalf("expected decode error")
	}
}
