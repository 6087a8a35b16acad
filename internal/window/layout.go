package window

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	topHeight        = 24
	statusHeight     = 20
	margin           = 16
	buttonPad        = 6
	buttonHeight     = 20
	swatchSize       = 18
	gap              = 4
	minToolbarWidth  = 48
	maxInitialWidth  = 1600
	maxInitialHeight = 1000
)

var labelFace font.Face = basicfont.Face7x13

func measure(s string) int {
	d := &font.Drawer{Face: labelFace}
	return d.MeasureString(s).Ceil()
}

type targetKind int

const (
	targetNone targetKind = iota
	targetControl
	targetTool
	targetSwatch
	targetCanvas
)

// target identifies what lies under a point of the window.
type target struct {
	kind  targetKind
	index int
}

// layout places every element of the window. It is recomputed whenever the
// window, the labels or the picture size change.
type layout struct {
	top      image.Rectangle
	toolbar  image.Rectangle
	status   image.Rectangle
	controls []image.Rectangle
	tools    []image.Rectangle
	swatches []image.Rectangle
	canvas   image.Rectangle
}

func computeLayout(size image.Point, controlLabels, toolLabels []string, swatches int, canvas image.Point) layout {
	tw := minToolbarWidth
	for _, lbl := range toolLabels {
		tw = max(tw, measure(lbl)+2*buttonPad+2*gap)
	}
	l := layout{
		top:     image.Rect(0, 0, size.X, topHeight),
		toolbar: image.Rect(0, topHeight, tw, size.Y-statusHeight),
		status:  image.Rect(0, size.Y-statusHeight, size.X, size.Y),
	}

	x := gap
	for _, lbl := range controlLabels {
		w := measure(lbl) + 2*buttonPad
		l.controls = append(l.controls, image.Rect(x, (topHeight-buttonHeight)/2, x+w, (topHeight+buttonHeight)/2))
		x += w + gap
	}

	y := topHeight + gap
	for range toolLabels {
		l.tools = append(l.tools, image.Rect(gap, y, tw-gap, y+buttonHeight))
		y += buttonHeight + 2
	}
	y += 2 * gap
	for i := 0; i < swatches; i++ {
		x0 := gap + (i%2)*(swatchSize+gap)
		y0 := y + (i/2)*(swatchSize+gap)
		l.swatches = append(l.swatches, image.Rect(x0, y0, x0+swatchSize, y0+swatchSize))
	}

	origin := image.Pt(tw+margin, topHeight+margin)
	l.canvas = image.Rectangle{Min: origin, Max: origin.Add(canvas)}
	return l
}

func (l layout) hit(p image.Point) target {
	for i, r := range l.controls {
		if p.In(r) {
			return target{targetControl, i}
		}
	}
	for i, r := range l.tools {
		if p.In(r) {
			return target{targetTool, i}
		}
	}
	for i, r := range l.swatches {
		if p.In(r) {
			return target{targetSwatch, i}
		}
	}
	if p.In(l.canvas) {
		return target{kind: targetCanvas}
	}
	return target{}
}

// preferredSize is a window size that shows every element, capped so a huge
// picture does not open a window larger than most screens.
func (l layout) preferredSize() image.Point {
	w := l.canvas.Max.X + margin
	if n := len(l.controls); n > 0 {
		w = max(w, l.controls[n-1].Max.X+gap)
	}
	h := l.canvas.Max.Y + margin
	if n := len(l.swatches); n > 0 {
		h = max(h, l.swatches[n-1].Max.Y+gap)
	}
	h += statusHeight
	return image.Pt(min(w, maxInitialWidth), min(h, maxInitialHeight))
}
