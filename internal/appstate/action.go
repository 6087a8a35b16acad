package appstate

import "github.com/example/pixeleditor/internal/picture"

// Action is a partial state update. Unset pointer fields are left alone.
// When Undo is set every other field is ignored.
type Action struct {
	Undo    bool
	Tool    *string
	Color   *picture.Color
	Picture *picture.Picture
	// ResetHistory clears Done and DoneAt after the update is applied.
	ResetHistory bool
}

func Undo() Action { return Action{Undo: true} }

func SelectTool(name string) Action { return Action{Tool: &name} }

func SelectColor(c picture.Color) Action { return Action{Color: &c} }

// Draw replaces the picture and records history.
func Draw(p *picture.Picture) Action { return Action{Picture: p} }

// Load replaces the picture and discards the undo history, as when a file is
// opened.
func Load(p *picture.Picture) Action { return Action{Picture: p, ResetHistory: true} }
