package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns one picture cell occupies.
const CellWidth = 2

// ScreenSurface is a render.Surface drawn onto a tcell screen, one surface
// unit per picture cell.
type ScreenSurface struct {
	screen tcell.Screen
	// Origin is the terminal column and row of unit (0, 0).
	Origin        image.Point
	width, height int
}

func NewScreenSurface(s tcell.Screen, origin image.Point) *ScreenSurface {
	return &ScreenSurface{screen: s, Origin: origin}
}

func (s *ScreenSurface) Size() (int, int) { return s.width, s.height }

func (s *ScreenSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *ScreenSurface) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(image.Rect(0, 0, s.width, s.height))
	st := tcell.StyleDefault.Background(tcellColor(c))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			col := s.Origin.X + x*CellWidth
			for i := 0; i < CellWidth; i++ {
				s.screen.SetContent(col+i, s.Origin.Y+y, ' ', nil, st)
			}
		}
	}
}

// Bounds is the terminal area covered by the surface.
func (s *ScreenSurface) Bounds() image.Rectangle {
	return image.Rect(s.Origin.X, s.Origin.Y, s.Origin.X+s.width*CellWidth, s.Origin.Y+s.height)
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
