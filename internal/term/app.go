// Package term is the terminal frontend. Pictures are drawn with background
// colored blanks, two columns per cell so cells come out roughly square.
package term

import (
	"fmt"
	"image"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/editor"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
)

const (
	controlRow = 0
	toolRow    = 1
	paletteRow = 2
	canvasRow  = 4
	canvasCol  = 1
)

// region is a clickable span of one terminal row.
type region struct {
	row, from, to int
	activate      func()
}

// App runs an editor on a tcell screen. The screen must be initialised
// before New, and the caller owns Fini.
type App struct {
	screen  tcell.Screen
	editor  *editor.Editor
	surface *ScreenSurface
	regions []region

	// down is set while the left button is held.
	down    bool
	drawing bool
	pointer image.Point
	onPic   bool
	status  string
}

// New builds the app and paints the first frame.
func New(screen tcell.Screen, initial appstate.State, opts ...editor.Option) *App {
	a := &App{
		screen:  screen,
		surface: NewScreenSurface(screen, image.Pt(canvasCol, canvasRow)),
	}
	// Cells map one to one onto the surface; later options must not change it.
	opts = append(opts, editor.WithStatus(a.setStatus), editor.WithPathPrompt(), editor.WithScale(1))
	a.editor = editor.New(initial, a.surface, opts...)
	a.editor.SetPost(a.post)
	a.draw()
	return a
}

// Editor returns the editor the app drives.
func (a *App) Editor() *editor.Editor { return a.editor }

func (a *App) post(fn func()) {
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
		// The queue is full; running inline beats dropping a loaded file.
		fn()
	}
}

// Run handles events until the user quits.
func (a *App) Run() error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one event and reports whether the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.repaintCanvas()
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventKey:
		if _, asking := a.editor.Question(); quitKey(ev) && !(asking && ev.Key() == tcell.KeyEscape) {
			return true
		}
		if k, ok := shortcut(ev); ok {
			a.status = ""
			a.editor.KeyDown(k)
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	a.draw()
	return false
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyRune:
		return ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'q' || ev.Rune() == 'Q')
	}
	return false
}

// shortcut translates a tcell key into the editor's key model.
func shortcut(ev *tcell.EventKey) (editor.KeyShortcut, bool) {
	var mods key.Modifiers
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= key.ModControl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	switch k := ev.Key(); {
	case k == tcell.KeyEnter:
		return editor.KeyShortcut{Code: key.CodeReturnEnter, Rune: -1, Modifiers: mods}, true
	case k == tcell.KeyEscape:
		return editor.KeyShortcut{Code: key.CodeEscape, Rune: -1, Modifiers: mods}, true
	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return editor.KeyShortcut{Code: key.CodeDeleteBackspace, Rune: -1, Modifiers: mods}, true
	case k == tcell.KeyRune:
		return editor.KeyShortcut{Rune: ev.Rune(), Modifiers: mods}, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return editor.KeyShortcut{Rune: 'a' + rune(k-tcell.KeyCtrlA), Modifiers: mods | key.ModControl}, true
	}
	return editor.KeyShortcut{}, false
}

// cellAt converts a terminal position to fractional surface units; the
// controller floors them into cells.
func (a *App) cellAt(x, y int) (float64, float64) {
	o := a.surface.Origin
	return float64(x-o.X) / CellWidth, float64(y - o.Y)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	cx, cy := a.cellAt(x, y)
	ctrl := a.editor.Controller()
	a.pointer = ctrl.Cell(cx, cy)
	a.onPic = a.editor.State().Picture.In(a.pointer.X, a.pointer.Y)

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !a.down:
		a.down = true
		a.status = ""
		if image.Pt(x, y).In(a.surface.Bounds()) {
			ctrl.Press(cx, cy, mouse.ButtonLeft)
			a.drawing = ctrl.Active()
			return
		}
		for _, r := range a.regions {
			if r.row == y && x >= r.from && x < r.to {
				r.activate()
				return
			}
		}
	case pressed && a.drawing:
		ctrl.Move(cx, cy, true)
	case !pressed && a.down:
		a.down = false
		if a.drawing {
			ctrl.Release(mouse.ButtonLeft)
			a.drawing = false
		}
	}
}

func (a *App) setStatus(msg string) { a.status = msg }

// repaintCanvas redraws every cell, for when the terminal lost its contents.
func (a *App) repaintCanvas() {
	render.Draw(a.editor.State().Picture, a.surface, 1, nil)
}

// draw paints the chrome around the canvas and shows the frame. The canvas
// itself is kept current by the editor.
func (a *App) draw() {
	w, h := a.screen.Size()
	st := a.editor.State()
	a.regions = a.regions[:0]
	for _, row := range []int{controlRow, toolRow, paletteRow, canvasRow - 1, h - 1} {
		a.clearRow(row, 0, w)
	}
	// Blank whatever a larger picture left right of and below the canvas.
	b := a.surface.Bounds()
	for row := canvasRow; row < h-1; row++ {
		if row < b.Max.Y {
			a.clearRow(row, 0, b.Min.X)
			a.clearRow(row, b.Max.X, w)
		} else {
			a.clearRow(row, 0, w)
		}
	}

	col := 0
	for _, c := range a.editor.Controls() {
		v := c.View()
		label := "[" + v.Label
		if v.Value != "" {
			label += ": " + v.Value
		}
		label += "]"
		style := tcell.StyleDefault
		if v.Disabled {
			style = style.Dim(true)
		}
		col = a.region(controlRow, col, label, style, c.Activate) + 1
	}

	col = 0
	for _, name := range a.editor.Tools().Names() {
		style := tcell.StyleDefault
		if name == st.Tool {
			style = style.Reverse(true)
		}
		col = a.region(toolRow, col, " "+name+" ", style, func() {
			a.editor.Dispatch(appstate.SelectTool(name))
		}) + 1
	}

	col = 0
	for _, entry := range picture.Palette() {
		style := tcell.StyleDefault.Background(tcellColor(entry.Color)).Foreground(contrast(entry.Color))
		mark := "  "
		if entry.Color == st.Color {
			mark = "<>"
		}
		c := entry.Color
		col = a.region(paletteRow, col, mark, style, func() {
			a.editor.Dispatch(appstate.SelectColor(c))
		})
	}

	a.text(h-1, 0, a.statusText(), tcell.StyleDefault.Reverse(true))
	a.screen.Show()
}

// statusText is the pending question, then the editor's latest message until
// the next key or click, otherwise a summary of the state.
func (a *App) statusText() string {
	if q, ok := a.editor.Question(); ok {
		return q.Prompt + ": " + q.Answer + "_  Enter accepts, Esc cancels"
	}
	if a.status != "" {
		return a.status
	}
	st := a.editor.State()
	s := fmt.Sprintf("%s  %s  %dx%d", st.Tool, st.Color.Hex(), st.Picture.Width(), st.Picture.Height())
	if a.onPic {
		s += fmt.Sprintf("  (%d, %d)", a.pointer.X, a.pointer.Y)
	}
	return s + "  Esc quits"
}

// region draws label and records it as clickable. It returns the column
// after the label.
func (a *App) region(row, col int, label string, style tcell.Style, fn func()) int {
	end := a.text(row, col, label, style)
	a.regions = append(a.regions, region{row: row, from: col, to: end, activate: fn})
	return end
}

func (a *App) text(row, col int, s string, style tcell.Style) int {
	for _, r := range s {
		a.screen.SetContent(col, row, r, nil, style)
		col++
	}
	return col
}

func (a *App) clearRow(row, from, to int) {
	if from < to {
		a.text(row, from, strings.Repeat(" ", to-from), tcell.StyleDefault)
	}
}

func contrast(c picture.Color) tcell.Color {
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 > 128000 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
