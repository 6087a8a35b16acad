package tools

import (
	"image"
	"reflect"
	"testing"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/picture"
)

var (
	white = picture.Color{R: 255, G: 255, B: 255}
	black = picture.Color{}
	red   = picture.Color{R: 255}
)

func points(cells []picture.Cell) []image.Point {
	out := make([]image.Point, len(cells))
	for i, c := range cells {
		out[i] = image.Pt(c.X, c.Y)
	}
	return out
}

func newState(t *testing.T, w, h int) appstate.State {
	t.Helper()
	st, err := appstate.New(w, h, white, "draw", red)
	if err != nil {
		t.Fatalf("appstate.New: %v", err)
	}
	return st
}

// recorder collects dispatched actions.
type recorder struct{ actions []appstate.Action }

func (r *recorder) dispatch(a appstate.Action) { r.actions = append(r.actions, a) }

func (r *recorder) last(t *testing.T) appstate.Action {
	t.Helper()
	if len(r.actions) == 0 {
		t.Fatalf("no action dispatched")
	}
	return r.actions[len(r.actions)-1]
}

func TestDrawLineHorizontal(t *testing.T) {
	got := DrawLine(image.Pt(0, 0), image.Pt(3, 0), black)
	want := []picture.Cell{{X: 0, Y: 0, Color: black}, {X: 1, Y: 0, Color: black}, {X: 2, Y: 0, Color: black}, {X: 3, Y: 0, Color: black}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DrawLine = %v, want %v", got, want)
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	got := DrawLine(image.Pt(0, 0), image.Pt(0, 0), white)
	if len(got) != 1 || got[0] != (picture.Cell{X: 0, Y: 0, Color: white}) {
		t.Fatalf("DrawLine = %v", got)
	}
}

func TestDrawLineIsSymmetric(t *testing.T) {
	a := points(DrawLine(image.Pt(5, 1), image.Pt(0, 3), black))
	b := points(DrawLine(image.Pt(0, 3), image.Pt(5, 1), black))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("endpoint order changed output: %v vs %v", a, b)
	}
	if len(a) != 6 {
		t.Fatalf("len = %d, want one cell per major-axis step", len(a))
	}
}

func TestDrawLineSteepWalksY(t *testing.T) {
	got := points(DrawLine(image.Pt(0, 0), image.Pt(1, 4), black))
	want := []image.Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {1, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DrawLine = %v, want %v", got, want)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	got := points(DrawLine(image.Pt(2, 2), image.Pt(0, 0), black))
	want := []image.Point{{0, 0}, {1, 1}, {2, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DrawLine = %v, want %v", got, want)
	}
}

func TestRectangleCellsInclusive(t *testing.T) {
	got := RectangleCells(image.Pt(2, 1), image.Pt(0, 0), black)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
}

func TestCircleCellsRadiusOne(t *testing.T) {
	bounds := image.Rect(0, 0, 5, 5)
	got := CircleCells(image.Pt(2, 2), image.Pt(3, 2), bounds, black)
	if len(got) != 5 {
		t.Fatalf("len = %d, want plus shape of 5 cells: %v", len(got), points(got))
	}
	clipped := CircleCells(image.Pt(0, 0), image.Pt(1, 0), bounds, black)
	if len(clipped) != 3 {
		t.Fatalf("clipped len = %d, want 3", len(clipped))
	}
}

func TestFloodFillUniformPicture(t *testing.T) {
	pic, _ := picture.Empty(5, 5, white)
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			cells := FloodFill(pic, image.Pt(x, y), red)
			if len(cells) != 25 {
				t.Fatalf("start (%d, %d): len = %d, want 25", x, y, len(cells))
			}
			seen := map[image.Point]bool{}
			for _, c := range cells {
				p := image.Pt(c.X, c.Y)
				if seen[p] {
					t.Fatalf("start (%d, %d): cell %v listed twice", x, y, p)
				}
				if c.Color != red {
					t.Fatalf("start (%d, %d): cell %v colored %v", x, y, p, c.Color)
				}
				seen[p] = true
			}
			filled := pic.Draw(cells)
			for _, px := range filled.Pixels() {
				if px != red {
					t.Fatalf("start (%d, %d): a cell kept %v", x, y, px)
				}
			}
		}
	}
}

func TestFloodFillStopsAtBorder(t *testing.T) {
	pic, _ := picture.Empty(3, 3, white)
	pic = pic.Draw(DrawLine(image.Pt(1, 0), image.Pt(1, 2), black))
	cells := FloodFill(pic, image.Pt(0, 0), red)
	if len(cells) != 3 {
		t.Fatalf("len = %d, want left column only", len(cells))
	}
	if FloodFill(pic, image.Pt(-1, 0), red) != nil {
		t.Fatalf("start outside picture should yield nil")
	}
}

func TestDrawToolConnectsAgainstLiveState(t *testing.T) {
	st := newState(t, 5, 1)
	rec := &recorder{}
	cont := Draw.Start(image.Pt(0, 0), st, rec.dispatch)
	if cont == nil {
		t.Fatalf("draw should return a continuation")
	}
	first := rec.last(t).Picture
	if first.Pixel(0, 0) != red {
		t.Fatalf("press did not paint the start cell")
	}
	st.Picture = first
	cont.Move(image.Pt(4, 0), st)
	got := rec.last(t).Picture
	for x := 0; x < 5; x++ {
		if got.Pixel(x, 0) != red {
			t.Fatalf("cell %d not painted", x)
		}
	}
}

func TestLineToolRedrawsFromStartState(t *testing.T) {
	st := newState(t, 5, 5)
	rec := &recorder{}
	cont := Line.Start(image.Pt(0, 0), st, rec.dispatch)
	if len(rec.actions) != 0 {
		t.Fatalf("line should not dispatch on press")
	}
	cont.Move(image.Pt(4, 0), st)
	cont.Move(image.Pt(0, 4), st)
	got := rec.last(t).Picture
	if got.Pixel(4, 0) != white {
		t.Fatalf("earlier preview segment survived")
	}
	if got.Pixel(0, 4) != red {
		t.Fatalf("final segment missing")
	}
}

func TestRectangleToolPreviews(t *testing.T) {
	st := newState(t, 4, 4)
	rec := &recorder{}
	cont := Rectangle.Start(image.Pt(1, 1), st, rec.dispatch)
	if p := rec.last(t).Picture; p.Pixel(1, 1) != red || p.Pixel(2, 2) != white {
		t.Fatalf("press should fill only the start cell")
	}
	cont.Move(image.Pt(3, 3), st)
	cont.Move(image.Pt(2, 2), st)
	p := rec.last(t).Picture
	if p.Pixel(2, 2) != red || p.Pixel(3, 3) != white {
		t.Fatalf("rectangle not recomputed from the start state")
	}
}

func TestCircleToolPreviews(t *testing.T) {
	st := newState(t, 5, 5)
	rec := &recorder{}
	cont := Circle.Start(image.Pt(2, 2), st, rec.dispatch)
	cont.Move(image.Pt(2, 0), st)
	p := rec.last(t).Picture
	if p.Pixel(2, 0) != red || p.Pixel(0, 0) != white {
		t.Fatalf("unexpected disc")
	}
}

func TestFillAndPickReturnNoContinuation(t *testing.T) {
	st := newState(t, 2, 2)
	st.Picture = st.Picture.Draw([]picture.Cell{{X: 1, Y: 1, Color: black}})
	rec := &recorder{}
	if Fill.Start(image.Pt(0, 0), st, rec.dispatch) != nil {
		t.Fatalf("fill returned a continuation")
	}
	if got := rec.last(t).Picture; got.Pixel(0, 0) != red || got.Pixel(1, 1) != black {
		t.Fatalf("fill painted the wrong region")
	}
	if Pick.Start(image.Pt(1, 1), st, rec.dispatch) != nil {
		t.Fatalf("pick returned a continuation")
	}
	a := rec.last(t)
	if a.Color == nil || *a.Color != black {
		t.Fatalf("pick dispatched %+v", a)
	}
	before := len(rec.actions)
	Pick.Start(image.Pt(9, 9), st, rec.dispatch)
	if len(rec.actions) != before {
		t.Fatalf("pick outside picture dispatched")
	}
}

func TestRegistry(t *testing.T) {
	r := Default()
	want := []string{"draw", "line", "fill", "rectangle", "circle", "pick"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names = %v", got)
	}
	if name, ok := r.Shortcut('C'); !ok || name != "circle" {
		t.Fatalf("Shortcut('C') = %q, %v", name, ok)
	}
	if _, ok := r.Shortcut('x'); ok {
		t.Fatalf("unexpected shortcut for x")
	}
	if r.Next("pick") != "draw" || r.Next("draw") != "line" {
		t.Fatalf("Next does not follow registration order")
	}
	r.Register("line", Draw)
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("re-registering changed order: %v", got)
	}
}
