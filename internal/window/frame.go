package window

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
)

// buttonState describes the visual state of a button.
type buttonState int

const (
	stateDefault buttonState = iota
	stateHover
	statePressed
	stateActive
	stateDisabled
)

var statusFace = sync.OnceValue(func() font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("parse font: %v", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("font face: %v", err)
		return basicfont.Face7x13
	}
	return face
})

func fill(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawRect(dst draw.Image, r image.Rectangle, c color.Color, thick int) {
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick), c)
	fill(dst, image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y), c)
	fill(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y), c)
	fill(dst, image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y), c)
}

func drawText(dst draw.Image, face font.Face, c color.Color, x, baseline int, s string) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face, Dot: fixed.P(x, baseline)}
	d.DrawString(s)
}

func (w *Window) stateOf(t target, disabled, active bool) buttonState {
	switch {
	case disabled:
		return stateDisabled
	case w.pressed == t && w.hover == t:
		return statePressed
	case active:
		return stateActive
	case w.hover == t:
		return stateHover
	}
	return stateDefault
}

func (w *Window) drawButton(dst *image.RGBA, r image.Rectangle, label string, st buttonState) {
	th := w.theme
	bg, fg := th.ButtonBackground, th.ButtonText
	switch st {
	case stateHover:
		bg = th.ButtonBackgroundHover
	case statePressed:
		bg = th.ButtonBackgroundPress
	case stateActive:
		bg = th.ToolActive
	case stateDisabled:
		bg, fg = th.ButtonDisabled, th.ButtonTextDisabled
	}
	fill(dst, r, bg)
	drawRect(dst, r, th.ButtonBorder, 1)
	drawText(dst, labelFace, fg, r.Min.X+buttonPad, r.Min.Y+14, label)
}

// drawFrame paints the whole window into dst.
func (w *Window) drawFrame(dst *image.RGBA) {
	w.relayout()
	th := w.theme
	l := w.layout
	st := w.editor.State()

	fill(dst, dst.Bounds(), th.Background)
	fill(dst, l.top, th.ToolbarBackground)
	fill(dst, l.toolbar, th.ToolbarBackground)

	size := l.canvas.Size()
	opts := render.DefaultShadowOptions()
	if !w.shadow.Fits(size, opts) {
		w.shadow = render.NewShadow(size, opts)
	}
	w.shadow.DrawBehind(dst, l.canvas.Min)
	img := w.surface.Image()
	draw.Draw(dst, l.canvas, img, img.Bounds().Min, draw.Src)
	drawRect(dst, l.canvas.Inset(-1), th.CanvasBorder, 1)

	for i, c := range w.editor.Controls() {
		v := c.View()
		w.drawButton(dst, l.controls[i], controlLabel(v), w.stateOf(target{targetControl, i}, v.Disabled, false))
	}

	labels := w.toolLabels()
	for i, name := range w.editor.Tools().Names() {
		w.drawButton(dst, l.tools[i], labels[i], w.stateOf(target{targetTool, i}, false, name == st.Tool))
	}

	for i, entry := range picture.Palette() {
		r := l.swatches[i]
		fill(dst, r, entry.Color)
		switch {
		case entry.Color == st.Color:
			drawRect(dst, r.Inset(-2), th.SwatchSelected, 2)
		case w.hover == (target{targetSwatch, i}):
			drawRect(dst, r.Inset(-1), th.SwatchSelected, 1)
		default:
			drawRect(dst, r, th.SwatchBorder, 1)
		}
	}

	fill(dst, l.status, th.StatusBackground)
	drawText(dst, statusFace(), th.StatusText, gap, l.status.Max.Y-5, w.statusText())
}
