// Package appstate holds the editor state and the reducer that applies actions
// to it, including the undo history.
package appstate

import (
	"fmt"
	"time"

	"github.com/example/pixeleditor/internal/picture"
)

const (
	DefaultWidth  = 100
	DefaultHeight = 50
	DefaultTool   = "draw"
)

var (
	DefaultBackground = picture.Color{R: 0xf0, G: 0xf0, B: 0xf0}
	DefaultColor      = picture.Color{}
)

// State is the complete editor state. Values are replaced, never mutated:
// the reducer returns a fresh State whose Done slice shares no backing array
// with its input.
type State struct {
	// Tool is the registry name of the active tool.
	Tool    string
	Color   picture.Color
	Picture *picture.Picture
	// Done holds earlier pictures, most recent first.
	Done []*picture.Picture
	// DoneAt is when the last history entry was pushed. The zero time means
	// the next drawing action always starts a new entry.
	DoneAt time.Time
}

// New returns a start state with a blank picture.
func New(width, height int, background picture.Color, tool string, col picture.Color) (State, error) {
	pic, err := picture.Empty(width, height, background)
	if err != nil {
		return State{}, fmt.Errorf("start state: %w", err)
	}
	return State{Tool: tool, Color: col, Picture: pic}, nil
}

// Default is the state the editor opens with when nothing is configured.
func Default() State {
	st, err := New(DefaultWidth, DefaultHeight, DefaultBackground, DefaultTool, DefaultColor)
	if err != nil {
		panic(err)
	}
	return st
}

// CanUndo reports whether an undo action would change the state.
func (s State) CanUndo() bool {
	return len(s.Done) > 0
}
