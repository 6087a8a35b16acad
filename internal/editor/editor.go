// Package editor wires the store, canvas, controls and tools into a single
// application shell that frontends drive with input events.
package editor

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/export"
	"github.com/example/pixeleditor/internal/gesture"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/render"
	"github.com/example/pixeleditor/internal/tools"
)

// ErrNoFile reports that the user did not choose a file. Opening treats it
// as a silent no-op.
var ErrNoFile = errors.New("no file chosen")

// Files resolves the user's file choices.
type Files interface {
	// Open returns the file at path to import. An empty path asks for the
	// default choice, if any, and ErrNoFile means there is none.
	Open(path string) (io.ReadCloser, error)
	// Create opens name for writing and returns the path it resolved to.
	Create(name string) (io.WriteCloser, string, error)
}

// Clipboard exchanges images with the desktop.
type Clipboard interface {
	WriteImage(img image.Image) error
	ReadImage() (image.Image, error)
}

// Notifier reports completed user actions.
type Notifier interface {
	Save(path string)
	Open(detail string)
	Copy(detail string)
}

// Editor is the application shell. All methods except the asynchronous
// halves of Open and Paste must be called from the frontend's event loop.
type Editor struct {
	store      *appstate.Store
	tools      *tools.Registry
	canvas     *render.Canvas
	controller *gesture.Controller
	controls   []Control

	factories  []ControlFactory
	scale      int
	storeOpts  []appstate.Option
	files      Files
	saveName   string
	clip       Clipboard
	notifier   Notifier
	post       func(func())
	background func(func())
	status     func(string)

	askPath  bool
	lastPath string
	question *Question
}

// Option configures an Editor.
type Option func(*Editor)

// WithTools replaces the default tool registry.
func WithTools(r *tools.Registry) Option { return func(e *Editor) { e.tools = r } }

// WithControls replaces the default control list.
func WithControls(f ...ControlFactory) Option { return func(e *Editor) { e.factories = f } }

// WithScale sets the cell size on the surface.
func WithScale(scale int) Option { return func(e *Editor) { e.scale = scale } }

// WithClock sets the time source for history coalescing.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.storeOpts = append(e.storeOpts, appstate.WithClock(now)) }
}

// WithReducer replaces the default reducer.
func WithReducer(r appstate.Reducer) Option {
	return func(e *Editor) { e.storeOpts = append(e.storeOpts, appstate.WithReducer(r)) }
}

// WithFiles enables open and save.
func WithFiles(f Files) Option { return func(e *Editor) { e.files = f } }

// WithSaveName sets the file name passed to Files.Create on save.
func WithSaveName(name string) Option { return func(e *Editor) { e.saveName = name } }

// WithClipboard enables copy and paste.
func WithClipboard(c Clipboard) Option { return func(e *Editor) { e.clip = c } }

// WithNotifier reports save, open and copy.
func WithNotifier(n Notifier) Option { return func(e *Editor) { e.notifier = n } }

// WithPathPrompt makes Open ask for the file to read through Question
// instead of taking the Files default.
func WithPathPrompt() Option { return func(e *Editor) { e.askPath = true } }

// WithStatus receives short user-facing messages.
func WithStatus(fn func(string)) Option { return func(e *Editor) { e.status = fn } }

// New builds an editor showing initial on surface.
func New(initial appstate.State, surface render.Surface, opts ...Option) *Editor {
	e := &Editor{
		tools:     tools.Default(),
		factories: DefaultControls(),
		scale:     1,
		saveName:  export.DefaultName,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.SetPost(nil)
	e.lastPath = defaultPath(e.files)
	e.store = appstate.NewStore(initial, e.storeOpts...)
	e.canvas = render.NewCanvas(surface, e.scale, initial.Picture)
	e.controller = gesture.NewController(e.tools, e, e.scale)
	for _, f := range e.factories {
		e.controls = append(e.controls, f(initial, e))
	}
	return e
}

// SetPost installs the frontend's hook for running a function on its event
// loop. With a hook installed, file and clipboard reads run on their own
// goroutine and report back through it; with nil they run inline.
func (e *Editor) SetPost(post func(func())) {
	if post == nil {
		e.post = func(fn func()) { fn() }
		e.background = func(fn func()) { fn() }
		return
	}
	e.post = post
	e.background = func(fn func()) { go fn() }
}

func (e *Editor) State() appstate.State { return e.store.State() }

// Dispatch applies a and brings the canvas and controls up to date.
func (e *Editor) Dispatch(a appstate.Action) {
	_, next := e.store.Dispatch(a)
	e.canvas.SyncState(next.Picture)
	for _, c := range e.controls {
		c.SyncState(next)
	}
}

func (e *Editor) Tools() *tools.Registry { return e.tools }
func (e *Editor) Canvas() *render.Canvas { return e.canvas }
func (e *Editor) Controller() *gesture.Controller { return e.controller }
func (e *Editor) Controls() []Control { return e.controls }

// Control returns the control with the given name.
func (e *Editor) Control(name string) (Control, bool) {
	for _, c := range e.controls {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// CanOpen reports whether Open has anywhere to read a picture from.
func (e *Editor) CanOpen() bool {
	if e.files == nil {
		return false
	}
	if e.askPath {
		return true
	}
	if d, ok := e.files.(defaultPather); ok {
		return d.DefaultPath() != ""
	}
	return true
}

// Open loads a picture through Files, clearing the undo history. With a path
// prompt the user is asked first, starting from the last path opened.
func (e *Editor) Open() {
	if e.files == nil {
		return
	}
	if !e.askPath {
		e.load("")
		return
	}
	e.ask("Open", e.lastPath, func(path string) {
		e.lastPath = path
		e.load(path)
	})
}

func (e *Editor) load(path string) {
	e.background(func() {
		pic, name, err := e.readFile(path)
		e.post(func() { e.finishLoad("open", pic, name, err) })
	})
}

// Paste loads the clipboard image the same way Open loads a file.
func (e *Editor) Paste() {
	if e.clip == nil {
		return
	}
	e.background(func() {
		var pic *picture.Picture
		img, err := e.clip.ReadImage()
		if err == nil {
			pic, err = picture.FromImage(img)
		}
		e.post(func() { e.finishLoad("paste", pic, "clipboard image", err) })
	})
}

func (e *Editor) readFile(path string) (*picture.Picture, string, error) {
	rc, err := e.files.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		if err := rc.Close(); err != nil {
			log.Printf("open: close: %v", err)
		}
	}()
	name := "image"
	if n, ok := rc.(interface{ Name() string }); ok {
		name = filepath.Base(n.Name())
	}
	pic, _, err := picture.Decode(rc)
	return pic, name, err
}

func (e *Editor) finishLoad(op string, pic *picture.Picture, detail string, err error) {
	if errors.Is(err, ErrNoFile) {
		return
	}
	if err != nil {
		log.Printf("%s: %v", op, err)
		e.setStatus(fmt.Sprintf("%s failed: %v", op, err))
		return
	}
	e.Dispatch(appstate.Load(pic))
	e.setStatus(fmt.Sprintf("loaded %s (%dx%d)", detail, pic.Width(), pic.Height()))
	if e.notifier != nil {
		e.notifier.Open(detail)
	}
}

// Save writes the current picture.
func (e *Editor) Save() error {
	return e.SavePicture(e.State().Picture)
}

// SavePicture encodes pic at one pixel per cell and writes it through Files.
func (e *Editor) SavePicture(pic *picture.Picture) error {
	if e.files == nil {
		return nil
	}
	w, path, err := e.files.Create(e.saveName)
	if err == nil {
		err = export.PNG(w, pic, 1)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Printf("save: %v", err)
		e.setStatus(fmt.Sprintf("save failed: %v", err))
		return fmt.Errorf("save %s: %w", e.saveName, err)
	}
	e.setStatus("saved " + path)
	if e.notifier != nil {
		e.notifier.Save(path)
	}
	return nil
}

// Copy places the current picture on the clipboard at one pixel per cell.
func (e *Editor) Copy() error {
	if e.clip == nil {
		return nil
	}
	if err := e.clip.WriteImage(render.Snapshot(e.State().Picture)); err != nil {
		log.Printf("copy: %v", err)
		e.setStatus(fmt.Sprintf("copy failed: %v", err))
		return fmt.Errorf("copy picture: %w", err)
	}
	e.setStatus("copied picture to clipboard")
	if e.notifier != nil {
		e.notifier.Copy("picture")
	}
	return nil
}

func (e *Editor) setStatus(msg string) {
	if e.status != nil {
		e.status(msg)
	}
}
