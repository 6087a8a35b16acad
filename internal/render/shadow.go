package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow painted behind the canvas.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a soft shadow suited to the editor backdrop.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.45,
	}
}

// Shadow is a precomputed blurred mask for a frame of a given size.
type Shadow struct {
	mask *image.Gray
	opts ShadowOptions
	size image.Point
}

// NewShadow blurs a solid frame of the given size. A non-positive opacity
// or empty size yields a Shadow that draws nothing.
func NewShadow(size image.Point, opts ShadowOptions) *Shadow {
	s := &Shadow{opts: opts, size: size}
	if opts.Opacity <= 0 || size.X <= 0 || size.Y <= 0 {
		return s
	}
	radius := max(opts.Radius, 0)
	mask := image.NewGray(image.Rect(0, 0, size.X+2*radius, size.Y+2*radius))
	draw.Draw(mask, image.Rect(radius, radius, radius+size.X, radius+size.Y), image.NewUniform(color.Gray{Y: 0xff}), image.Point{}, draw.Src)
	s.mask = boxBlur(mask, radius)
	return s
}

// Fits reports whether s was built for a frame of size with opts.
func (s *Shadow) Fits(size image.Point, opts ShadowOptions) bool {
	return s != nil && s.size == size && s.opts == opts
}

// DrawBehind composites the shadow for a frame whose top-left corner sits at
// origin. Call it before drawing the frame itself.
func (s *Shadow) DrawBehind(dst draw.Image, origin image.Point) {
	if s == nil || s.mask == nil {
		return
	}
	alpha := uint8(min(s.opts.Opacity, 1)*255 + 0.5)
	radius := max(s.opts.Radius, 0)
	at := origin.Add(s.opts.Offset).Sub(image.Pt(radius, radius))
	r := s.mask.Bounds().Add(at)
	draw.DrawMask(dst, r, image.NewUniform(color.RGBA{A: alpha}), image.Point{}, s.mask, image.Point{}, draw.Over)
}

// boxBlur runs a horizontal then vertical running-sum blur.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	if radius <= 0 {
		return src
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	dst := image.NewGray(src.Bounds())
	blurLine(w, radius, func(i int) int { return int(src.Pix[i]) }, func(i int, v uint8) { tmp.Pix[i] = v }, 0, 1, h, src.Stride)
	blurLine(h, radius, func(i int) int { return int(tmp.Pix[i]) }, func(i int, v uint8) { dst.Pix[i] = v }, 0, tmp.Stride, w, 1)
	return dst
}

// blurLine averages lines of length n; step moves along a line and advance
// moves between the lines.
func blurLine(n, radius int, get func(int) int, set func(int, uint8), start, step, lines, advance int) {
	prefix := make([]int, n+1)
	for l := 0; l < lines; l++ {
		base := start + l*advance
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + get(base+i*step)
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(base+i*step, uint8((prefix[hi+1]-prefix[lo])/(hi-lo+1)))
		}
	}
}
