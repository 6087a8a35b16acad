// Package picture holds the immutable pixel grid edited by the tools.
package picture

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidDimension is returned when a picture would have a non-positive
// width or height.
var ErrInvalidDimension = errors.New("picture dimensions must be positive")

// Cell is a single pixel write: the coordinate and the color to store there.
type Cell struct {
	X, Y  int
	Color Color
}

// Picture is a fixed-size grid of colors stored row-major. A Picture is never
// mutated after construction; Draw returns a new value, which lets callers
// compare pictures by pointer to detect change.
type Picture struct {
	width  int
	height int
	pixels []Color
}

// New builds a picture from row-major pixels. The slice is copied.
func New(width, height int, pixels []Color) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new picture %dx%d: %w", width, height, ErrInvalidDimension)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("new picture %dx%d: got %d pixels, want %d", width, height, len(pixels), width*height)
	}
	p := &Picture{width: width, height: height, pixels: make([]Color, len(pixels))}
	copy(p.pixels, pixels)
	return p, nil
}

// Empty returns a picture with every cell set to c.
func Empty(width, height int, c Color) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty picture %dx%d: %w", width, height, ErrInvalidDimension)
	}
	pixels := make([]Color, width*height)
	for i := range pixels {
		pixels[i] = c
	}
	return &Picture{width: width, height: height, pixels: pixels}, nil
}

func (p *Picture) Width() int  { return p.width }
func (p *Picture) Height() int { return p.height }

// Bounds returns the grid rectangle anchored at the origin.
func (p *Picture) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// In reports whether (x, y) addresses a cell of p.
func (p *Picture) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// Pixel returns the color at (x, y). Coordinates outside the grid yield the
// zero Color; callers that care should check In first.
func (p *Picture) Pixel(x, y int) Color {
	if !p.In(x, y) {
		return Color{}
	}
	return p.pixels[x+y*p.width]
}

// Pixels returns a copy of the row-major cell colors.
func (p *Picture) Pixels() []Color {
	out := make([]Color, len(p.pixels))
	copy(out, p.pixels)
	return out
}

// Draw returns a new picture with the patch applied in order, so a later cell
// for the same coordinate wins. Cells outside the grid are ignored.
func (p *Picture) Draw(patch []Cell) *Picture {
	next := &Picture{width: p.width, height: p.height, pixels: make([]Color, len(p.pixels))}
	copy(next.pixels, p.pixels)
	for _, c := range patch {
		if !p.In(c.X, c.Y) {
			continue
		}
		next.pixels[c.X+c.Y*p.width] = c.Color
	}
	return next
}

// Equal reports whether p and o have the same size and cells.
func (p *Picture) Equal(o *Picture) bool {
	if p == o {
		return true
	}
	if p == nil || o == nil || p.width != o.width || p.height != o.height {
		return false
	}
	for i := range p.pixels {
		if p.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}
