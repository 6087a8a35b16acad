// Package gesture turns pointer and touch events into tool invocations.
package gesture

import (
	"image"
	"log"
	"math"

	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/tools"
)

// Host supplies the live state and accepts the actions tools produce.
type Host interface {
	State() appstate.State
	Dispatch(a appstate.Action)
}

// Session is one press-to-release interaction.
type Session struct {
	Tool  string
	Start image.Point
	Last  image.Point
	Touch bool
	next  tools.Continuation
}

// Controller maps surface coordinates to picture cells and drives the
// active tool. It tracks at most one session; a press while a session is
// active ends the old one and starts a new one.
type Controller struct {
	// Scale is the size of one cell in surface units.
	Scale int
	// Origin is the surface position of cell (0, 0).
	Origin image.Point

	tools   *tools.Registry
	host    Host
	session *Session
}

func NewController(reg *tools.Registry, host Host, scale int) *Controller {
	if scale < 1 {
		scale = 1
	}
	return &Controller{Scale: scale, tools: reg, host: host}
}

// Cell converts a surface position to the picture cell under it.
func (c *Controller) Cell(x, y float64) image.Point {
	s := float64(c.Scale)
	return image.Pt(
		int(math.Floor((x-float64(c.Origin.X))/s)),
		int(math.Floor((y-float64(c.Origin.Y))/s)),
	)
}

// Active reports whether a gesture is in progress.
func (c *Controller) Active() bool {
	return c.session != nil
}

// Session returns a copy of the running session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Press starts a mouse gesture. Only the left button draws.
func (c *Controller) Press(x, y float64, b mouse.Button) {
	if b != mouse.ButtonLeft {
		return
	}
	c.begin(c.Cell(x, y), false)
}

// Move forwards a mouse move. held reports whether the left button is still
// down; a move with no button held ends the gesture.
func (c *Controller) Move(x, y float64, held bool) {
	if c.session == nil || c.session.Touch {
		return
	}
	if !held {
		c.end()
		return
	}
	c.advance(c.Cell(x, y))
}

// Release ends a mouse gesture.
func (c *Controller) Release(b mouse.Button) {
	if c.session == nil || c.session.Touch || b != mouse.ButtonLeft {
		return
	}
	c.end()
}

// TouchStart starts a touch gesture and reports that the platform's default
// handling of the touch should be suppressed.
func (c *Controller) TouchStart(x, y float64) bool {
	c.begin(c.Cell(x, y), true)
	return true
}

func (c *Controller) TouchMove(x, y float64) {
	if c.session == nil || !c.session.Touch {
		return
	}
	c.advance(c.Cell(x, y))
}

func (c *Controller) TouchEnd() {
	if c.session == nil || !c.session.Touch {
		return
	}
	c.end()
}

func (c *Controller) begin(pos image.Point, touch bool) {
	c.end()
	st := c.host.State()
	tool, ok := c.tools.Lookup(st.Tool)
	if !ok {
		log.Printf("gesture: unknown tool %q", st.Tool)
		return
	}
	next := tool.Start(pos, st, c.host.Dispatch)
	if next == nil {
		return
	}
	c.session = &Session{Tool: st.Tool, Start: pos, Last: pos, Touch: touch, next: next}
}

// advance skips positions that map to the cell already reported.
func (c *Controller) advance(pos image.Point) {
	if pos == c.session.Last {
		return
	}
	c.session.Last = pos
	c.session.next.Move(pos, c.host.State())
}

func (c *Controller) end() {
	c.session = nil
}
