// Package window is the desktop frontend: a shiny window hosting the editor's
// canvas, its control bar, a tool and palette strip and a status line.
package window

import (
	"fmt"
	"image"
	"log"
	"time"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/editor"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
	"github.com/example/pixeleditor/internal/theme"
)

// Title is the window title.
const Title = "Pixel Editor"

// statusDuration is how long an editor message replaces the status summary.
const statusDuration = 3 * time.Second

// posted carries a function onto the event loop.
type posted func()

// Window drives an editor from shiny events. Everything except the posted
// functions and the paint request from a status timeout runs on the event
// loop.
type Window struct {
	editor  *editor.Editor
	surface *render.ImageSurface
	theme   *theme.Theme
	shadow  *render.Shadow

	size   image.Point
	layout layout

	hover   target
	pressed target
	// held is the button driving a canvas gesture, or ButtonNone.
	held    mouse.Button
	pointer image.Point
	onPic   bool

	status      string
	statusUntil time.Time
	now         func() time.Time

	send func(any)
}

// New builds a window for initial. th may be nil for the default theme.
func New(initial appstate.State, th *theme.Theme, opts ...editor.Option) *Window {
	if th == nil {
		th = theme.Default()
	}
	w := &Window{
		surface: render.NewImageSurface(),
		theme:   th,
		now:     time.Now,
	}
	opts = append(opts, editor.WithStatus(w.setStatus), editor.WithPathPrompt())
	w.editor = editor.New(initial, w.surface, opts...)
	w.relayout()
	w.size = w.layout.preferredSize()
	w.relayout()
	return w
}

// Editor returns the editor the window drives.
func (w *Window) Editor() *editor.Editor { return w.editor }

// Run opens the window and blocks until it is closed.
func (w *Window) Run() error {
	var err error
	driver.Main(func(s screen.Screen) { err = w.Main(s) })
	return err
}

// Main runs the event loop on s.
func (w *Window) Main(s screen.Screen) error {
	win, err := s.NewWindow(&screen.NewWindowOptions{Width: w.size.X, Height: w.size.Y, Title: Title})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer win.Release()

	w.send = win.Send
	w.editor.SetPost(func(fn func()) { win.Send(posted(fn)) })
	defer w.editor.SetPost(nil)

	for {
		switch e := win.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			w.size = image.Pt(e.WidthPx, e.HeightPx)
			w.invalidate()
		case paint.Event:
			w.paint(s, win)
		case posted:
			e()
			w.invalidate()
		case key.Event:
			if w.handleKey(e) {
				return nil
			}
		case mouse.Event:
			w.handleMouse(e)
		case error:
			log.Printf("window: %v", e)
		}
	}
}

func (w *Window) invalidate() {
	if w.send != nil {
		w.send(paint.Event{})
	}
}

func (w *Window) paint(s screen.Screen, win screen.Window) {
	if w.size.X <= 0 || w.size.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(w.size)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	w.drawFrame(b.RGBA())
	win.Upload(image.Point{}, b, b.Bounds())
	win.Publish()
}

// relayout recomputes element positions and moves the gesture origin to the
// canvas corner.
func (w *Window) relayout() {
	var controls []string
	for _, c := range w.editor.Controls() {
		controls = append(controls, controlLabel(c.View()))
	}
	cw, ch := w.surface.Size()
	w.layout = computeLayout(w.size, controls, w.toolLabels(), len(picture.Palette()), image.Pt(cw, ch))
	w.editor.Controller().Origin = w.layout.canvas.Min
}

func controlLabel(v editor.View) string {
	if v.Value == "" {
		return v.Label
	}
	return v.Label + ": " + v.Value
}

// toolLabels prefixes each tool with its shortcut letter when the letter
// reaches that tool.
func (w *Window) toolLabels() []string {
	reg := w.editor.Tools()
	var out []string
	for _, name := range reg.Names() {
		label := name
		if r := []rune(name); len(r) > 0 {
			if got, ok := reg.Shortcut(r[0]); ok && got == name {
				label = string(unicode.ToUpper(r[0])) + ":" + name
			}
		}
		out = append(out, label)
	}
	return out
}

// handleKey reports whether the window should close.
func (w *Window) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if e.Modifiers&key.ModControl != 0 && e.Code == key.CodeQ {
		return true
	}
	if w.editor.KeyDown(editor.KeyShortcut{Rune: e.Rune, Code: e.Code, Modifiers: e.Modifiers}) {
		w.invalidate()
	}
	return false
}

func (w *Window) handleMouse(e mouse.Event) {
	w.relayout()
	p := image.Pt(int(e.X), int(e.Y))
	ctrl := w.editor.Controller()
	x, y := float64(e.X), float64(e.Y)

	switch e.Direction {
	case mouse.DirPress:
		if e.Button.IsWheel() {
			return
		}
		t := w.layout.hit(p)
		if t.kind == targetCanvas {
			ctrl.Press(x, y, e.Button)
			if ctrl.Active() {
				w.held = e.Button
			}
		} else if e.Button == mouse.ButtonLeft {
			w.pressed = t
		}
	case mouse.DirRelease:
		if w.held != mouse.ButtonNone && e.Button == w.held {
			ctrl.Release(e.Button)
			w.held = mouse.ButtonNone
		} else if w.pressed.kind != targetNone && w.layout.hit(p) == w.pressed {
			w.activate(w.pressed)
		}
		w.pressed = target{}
	case mouse.DirNone:
		if w.held != mouse.ButtonNone {
			ctrl.Move(x, y, true)
		}
	}

	w.hover = w.layout.hit(p)
	w.pointer = ctrl.Cell(x, y)
	w.onPic = w.editor.State().Picture.In(w.pointer.X, w.pointer.Y)
	w.invalidate()
}

func (w *Window) activate(t target) {
	switch t.kind {
	case targetControl:
		w.editor.Controls()[t.index].Activate()
	case targetTool:
		w.editor.Dispatch(appstate.SelectTool(w.editor.Tools().Names()[t.index]))
	case targetSwatch:
		w.editor.Dispatch(appstate.SelectColor(picture.Palette()[t.index].Color))
	}
}

func (w *Window) setStatus(msg string) {
	w.status = msg
	w.statusUntil = w.now().Add(statusDuration)
	time.AfterFunc(statusDuration, w.invalidate)
}

// statusText is the pending question, then the editor's latest message
// while it is fresh, otherwise a summary of the state and the cell under the
// pointer.
func (w *Window) statusText() string {
	if q, ok := w.editor.Question(); ok {
		return q.Prompt + ": " + q.Answer + "_"
	}
	if w.status != "" && w.now().Before(w.statusUntil) {
		return w.status
	}
	st := w.editor.State()
	s := fmt.Sprintf("%s  %s  %dx%d", st.Tool, st.Color.Hex(), st.Picture.Width(), st.Picture.Height())
	if w.onPic {
		s += fmt.Sprintf("  (%d, %d)", w.pointer.X, w.pointer.Y)
	}
	return s
}
