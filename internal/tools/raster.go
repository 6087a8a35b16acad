package tools

import (
	"image"
	"math"

	"github.com/example/pixeleditor/internal/picture"
)

// round rounds half up, so -0.5 becomes 0 rather than -1.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// DrawLine rasterises the segment between from and to, endpoints included.
// It walks whichever axis has the larger extent in increasing order and
// steps the other coordinate by the slope, so the result has exactly one
// cell per step along the major axis.
func DrawLine(from, to image.Point, c picture.Color) []picture.Cell {
	dx := abs(from.X - to.X)
	dy := abs(from.Y - to.Y)
	if dx > dy {
		if from.X > to.X {
			from, to = to, from
		}
		slope := float64(to.Y-from.Y) / float64(to.X-from.X)
		cells := make([]picture.Cell, 0, dx+1)
		y := float64(from.Y)
		for x := from.X; x <= to.X; x++ {
			cells = append(cells, picture.Cell{X: x, Y: round(y), Color: c})
			y += slope
		}
		return cells
	}
	if from.Y > to.Y {
		from, to = to, from
	}
	var slope float64
	if dy != 0 {
		slope = float64(to.X-from.X) / float64(to.Y-from.Y)
	}
	cells := make([]picture.Cell, 0, dy+1)
	x := float64(from.X)
	for y := from.Y; y <= to.Y; y++ {
		cells = append(cells, picture.Cell{X: round(x), Y: y, Color: c})
		x += slope
	}
	return cells
}

// RectangleCells fills the axis-aligned box spanned by a and b, inclusive.
func RectangleCells(a, b image.Point, c picture.Color) []picture.Cell {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	cells := make([]picture.Cell, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, picture.Cell{X: x, Y: y, Color: c})
		}
	}
	return cells
}

// CircleCells fills the disc centred on center whose radius is the distance
// to edge. Cells outside bounds are dropped.
func CircleCells(center, edge image.Point, bounds image.Rectangle, c picture.Color) []picture.Cell {
	ex, ey := float64(edge.X-center.X), float64(edge.Y-center.Y)
	radius := math.Sqrt(ex*ex + ey*ey)
	rc := int(math.Ceil(radius))
	var cells []picture.Cell
	for dy := -rc; dy <= rc; dy++ {
		for dx := -rc; dx <= rc; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			p := image.Pt(center.X+dx, center.Y+dy)
			if !p.In(bounds) {
				continue
			}
			cells = append(cells, picture.Cell{X: p.X, Y: p.Y, Color: c})
		}
	}
	return cells
}

var around = [4]image.Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FloodFill returns the 4-connected region of pic around start that shares
// the start cell's color, recoloured to c. Each cell appears once. A start
// outside the picture yields nil.
func FloodFill(pic *picture.Picture, start image.Point, c picture.Color) []picture.Cell {
	if !pic.In(start.X, start.Y) {
		return nil
	}
	w := pic.Width()
	target := pic.Pixel(start.X, start.Y)
	visited := make([]bool, w*pic.Height())
	visited[start.X+start.Y*w] = true
	drawn := []picture.Cell{{X: start.X, Y: start.Y, Color: c}}
	for done := 0; done < len(drawn); done++ {
		for _, d := range around {
			x, y := drawn[done].X+d.X, drawn[done].Y+d.Y
			if !pic.In(x, y) || visited[x+y*w] || pic.Pixel(x, y) != target {
				continue
			}
			visited[x+y*w] = true
			drawn = append(drawn, picture.Cell{X: x, Y: y, Color: c})
		}
	}
	return drawn
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
