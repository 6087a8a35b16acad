package gesture

import (
	"image"
	"testing"
	"time"

	"golang.org/x/mobile/event/mouse"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/tools"
)

var red = picture.Color{R: 255}

type storeHost struct {
	*appstate.Store
	dispatched int
}

func (h *storeHost) Dispatch(a appstate.Action) {
	h.dispatched++
	h.Store.Dispatch(a)
}

func newHost(t *testing.T, tool string) *storeHost {
	t.Helper()
	st, err := appstate.New(10, 10, picture.Color{R: 255, G: 255, B: 255}, tool, red)
	if err != nil {
		t.Fatalf("appstate.New: %v", err)
	}
	now := time.Unix(0, 0)
	return &storeHost{Store: appstate.NewStore(st, appstate.WithClock(func() time.Time { return now }))}
}

func TestCellFloorsScaledCoordinates(t *testing.T) {
	c := NewController(tools.Default(), newHost(t, "draw"), 10)
	c.Origin = image.Pt(5, 20)
	cases := []struct {
		x, y float64
		want image.Point
	}{
		{5, 20, image.Pt(0, 0)},
		{14.9, 29.9, image.Pt(0, 0)},
		{15, 30, image.Pt(1, 1)},
		{4, 19, image.Pt(-1, -1)},
	}
	for _, tc := range cases {
		if got := c.Cell(tc.x, tc.y); got != tc.want {
			t.Fatalf("Cell(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestMouseGestureLifecycle(t *testing.T) {
	h := newHost(t, "draw")
	c := NewController(tools.Default(), h, 10)
	c.Press(5, 5, mouse.ButtonLeft)
	if !c.Active() {
		t.Fatalf("press should start a session")
	}
	c.Move(35, 5, true)
	pic := h.State().Picture
	for x := 0; x <= 3; x++ {
		if pic.Pixel(x, 0) != red {
			t.Fatalf("cell %d not painted", x)
		}
	}
	s, _ := c.Session()
	if s.Start != image.Pt(0, 0) || s.Last != image.Pt(3, 0) || s.Tool != "draw" {
		t.Fatalf("session = %+v", s)
	}
	c.Release(mouse.ButtonLeft)
	if c.Active() {
		t.Fatalf("release should end the session")
	}
	before := h.dispatched
	c.Move(95, 95, true)
	if h.dispatched != before {
		t.Fatalf("move after release dispatched")
	}
}

func TestMoveWithoutButtonEndsSession(t *testing.T) {
	h := newHost(t, "draw")
	c := NewController(tools.Default(), h, 1)
	c.Press(0, 0, mouse.ButtonLeft)
	c.Move(3, 3, false)
	if c.Active() {
		t.Fatalf("session should end when no button is held")
	}
	if h.State().Picture.Pixel(3, 3) == red {
		t.Fatalf("released move painted")
	}
}

func TestMoveWithinSameCellIsSkipped(t *testing.T) {
	h := newHost(t, "draw")
	c := NewController(tools.Default(), h, 10)
	c.Press(1, 1, mouse.ButtonLeft)
	before := h.dispatched
	c.Move(8, 8, true)
	if h.dispatched != before {
		t.Fatalf("move inside the start cell dispatched")
	}
}

func TestNonPrimaryButtonIgnored(t *testing.T) {
	h := newHost(t, "draw")
	c := NewController(tools.Default(), h, 1)
	c.Press(0, 0, mouse.ButtonRight)
	if c.Active() || h.dispatched != 0 {
		t.Fatalf("right button started a gesture")
	}
}

func TestClickOnlyToolHasNoSession(t *testing.T) {
	h := newHost(t, "fill")
	c := NewController(tools.Default(), h, 1)
	c.Press(2, 2, mouse.ButtonLeft)
	if c.Active() {
		t.Fatalf("fill should not keep a session")
	}
	if h.State().Picture.Pixel(9, 9) != red {
		t.Fatalf("fill did not run")
	}
}

func TestTouchGesture(t *testing.T) {
	h := newHost(t, "line")
	c := NewController(tools.Default(), h, 1)
	if !c.TouchStart(0, 0) {
		t.Fatalf("touch start should suppress default handling")
	}
	c.Move(5, 5, false)
	if !c.Active() {
		t.Fatalf("mouse move ended a touch session")
	}
	c.TouchMove(4, 0)
	if h.State().Picture.Pixel(4, 0) != red {
		t.Fatalf("touch move did not draw")
	}
	c.TouchEnd()
	if c.Active() {
		t.Fatalf("touch end should close the session")
	}
}

func TestSecondPressReplacesSession(t *testing.T) {
	h := newHost(t, "line")
	c := NewController(tools.Default(), h, 1)
	c.Press(0, 0, mouse.ButtonLeft)
	c.Press(5, 5, mouse.ButtonLeft)
	s, ok := c.Session()
	if !ok || s.Start != image.Pt(5, 5) {
		t.Fatalf("session = %+v", s)
	}
}

func TestUnknownToolIsIgnored(t *testing.T) {
	h := newHost(t, "spray")
	c := NewController(tools.Default(), h, 1)
	c.Press(0, 0, mouse.ButtonLeft)
	if c.Active() || h.dispatched != 0 {
		t.Fatalf("unknown tool should be a no-op")
	}
}
