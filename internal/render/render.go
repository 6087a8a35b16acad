// Package render paints pictures onto surfaces, repainting only the cells
// that changed since the previous frame.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/pixeleditor/internal/picture"
)

// Surface is a pixel-addressable drawing target.
type Surface interface {
	Size() (width, height int)
	// Resize sets the surface size and clears its contents.
	Resize(width, height int)
	FillRect(r image.Rectangle, c color.Color)
}

// Draw paints pic onto s with each cell covering a scale×scale square. When
// prev has the same size as pic only differing cells are filled; otherwise
// s is resized and every cell is filled. It returns the number of cells
// filled.
func Draw(pic *picture.Picture, s Surface, scale int, prev *picture.Picture) int {
	if prev == nil || prev.Width() != pic.Width() || prev.Height() != pic.Height() {
		s.Resize(pic.Width()*scale, pic.Height()*scale)
		prev = nil
	}
	filled := 0
	for y := 0; y < pic.Height(); y++ {
		for x := 0; x < pic.Width(); x++ {
			c := pic.Pixel(x, y)
			if prev != nil && prev.Pixel(x, y) == c {
				continue
			}
			s.FillRect(image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale), c)
			filled++
		}
	}
	return filled
}

// Canvas keeps a surface in step with the picture it last drew.
type Canvas struct {
	Surface Surface
	Scale   int
	picture *picture.Picture
}

// NewCanvas draws pic in full and returns a canvas tracking it.
func NewCanvas(s Surface, scale int, pic *picture.Picture) *Canvas {
	if scale < 1 {
		scale = 1
	}
	c := &Canvas{Surface: s, Scale: scale}
	c.SyncState(pic)
	return c
}

// SyncState repaints the cells that differ from the last picture. Passing
// the same picture again does nothing.
func (c *Canvas) SyncState(pic *picture.Picture) {
	if c.picture == pic {
		return
	}
	Draw(pic, c.Surface, c.Scale, c.picture)
	c.picture = pic
}

// Picture returns the picture currently on the surface.
func (c *Canvas) Picture() *picture.Picture {
	return c.picture
}

// ImageSurface is a Surface backed by an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

func NewImageSurface() *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rectangle{})}
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) {
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing image. It is replaced on every Resize.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Snapshot renders pic one pixel per cell.
func Snapshot(pic *picture.Picture) *image.RGBA {
	s := NewImageSurface()
	Draw(pic, s, 1, nil)
	return s.Image()
}
