// Package tools implements the drawing tools. A tool is started by a pointer
// press and may return a Continuation that receives the later positions of
// the same gesture.
package tools

import (
	"image"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/picture"
)

// Dispatch delivers an action to the store.
type Dispatch func(appstate.Action)

// Continuation receives pointer positions after the initial press. st is
// the state at the time of the move.
type Continuation interface {
	Move(pos image.Point, st appstate.State)
}

// Tool starts a gesture at pos. Click-only tools return nil.
type Tool interface {
	Start(pos image.Point, st appstate.State, dispatch Dispatch) Continuation
}

// Func adapts a plain function to Tool.
type Func func(pos image.Point, st appstate.State, dispatch Dispatch) Continuation

func (f Func) Start(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	return f(pos, st, dispatch)
}

var (
	// Draw paints a freehand stroke, joining successive positions with lines.
	Draw Tool = Func(startStroke)
	// Line previews a single segment from the press point.
	Line Tool = Func(startLine)
	// Rectangle previews a filled box anchored at the press point.
	Rectangle Tool = Func(startRectangle)
	// Circle previews a filled disc centred on the press point.
	Circle Tool = Func(startCircle)
	// Fill flood-fills the region under the press point.
	Fill Tool = Func(fill)
	// Pick makes the color under the press point current.
	Pick Tool = Func(pick)
)

// stroke joins each new position to the previous one against the live
// picture, so a drag accumulates into one continuous line.
type stroke struct {
	last     image.Point
	dispatch Dispatch
}

func startStroke(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	s := &stroke{last: pos, dispatch: dispatch}
	s.Move(pos, st)
	return s
}

func (s *stroke) Move(pos image.Point, st appstate.State) {
	cells := DrawLine(s.last, pos, st.Color)
	s.last = pos
	s.dispatch(appstate.Draw(st.Picture.Draw(cells)))
}

// preview redraws a shape over the picture captured at gesture start, so
// every move replaces the previous preview instead of layering onto it.
type preview struct {
	start    image.Point
	base     appstate.State
	shape    func(start, end image.Point, base appstate.State) []picture.Cell
	dispatch Dispatch
}

func (p *preview) Move(pos image.Point, _ appstate.State) {
	cells := p.shape(p.start, pos, p.base)
	p.dispatch(appstate.Draw(p.base.Picture.Draw(cells)))
}

func startLine(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	return &preview{start: pos, base: st, dispatch: dispatch, shape: func(start, end image.Point, base appstate.State) []picture.Cell {
		return DrawLine(start, end, base.Color)
	}}
}

func startRectangle(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	p := &preview{start: pos, base: st, dispatch: dispatch, shape: func(start, end image.Point, base appstate.State) []picture.Cell {
		return RectangleCells(start, end, base.Color)
	}}
	p.Move(pos, st)
	return p
}

func startCircle(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	p := &preview{start: pos, base: st, dispatch: dispatch, shape: func(start, end image.Point, base appstate.State) []picture.Cell {
		return CircleCells(start, end, base.Picture.Bounds(), base.Color)
	}}
	p.Move(pos, st)
	return p
}

func fill(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	cells := FloodFill(st.Picture, pos, st.Color)
	if cells == nil {
		return nil
	}
	dispatch(appstate.Draw(st.Picture.Draw(cells)))
	return nil
}

func pick(pos image.Point, st appstate.State, dispatch Dispatch) Continuation {
	if !st.Picture.In(pos.X, pos.Y) {
		return nil
	}
	dispatch(appstate.SelectColor(st.Picture.Pixel(pos.X, pos.Y)))
	return nil
}
