package picture

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB cell color. Two colors are equal when their
// channels are equal, so Color values compare with ==.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

// RGBA implements color.Color. Cells are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the lowercase #rrggbb form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// FromColor converts any color to a cell color. Alpha is discarded after
// un-premultiplying, so a fully transparent pixel becomes black.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa hex values, palette names
// and the CSS color names known to x/image/colornames. Any alpha component
// is validated and then dropped.
func ParseColor(s string) (Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return Color{}, fmt.Errorf("color cannot be empty")
	}
	if entry, ok := LookupPalette(spec); ok {
		return entry.Color, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return FromColor(c), nil
	}
	if !strings.HasPrefix(spec, "#") {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	hex := spec[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	var ch [4]uint8
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q", s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseColor is ParseColor for constants; it panics on bad input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
