package editor

import (
	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/picture"
)

// View is what a frontend needs to draw a control.
type View struct {
	Label    string
	Value    string
	Disabled bool
}

// Control is a toolbar element kept in step with the state.
type Control interface {
	Name() string
	View() View
	SyncState(st appstate.State)
	// Activate performs the control's primary action, as a click would.
	Activate()
}

// ControlFactory builds a control for the editor's start state.
type ControlFactory func(st appstate.State, e *Editor) Control

// DefaultControls returns the standard toolbar, in display order.
func DefaultControls() []ControlFactory {
	return []ControlFactory{NewToolSelect, NewColorSelect, NewOpenButton, NewSaveButton, NewUndoButton}
}

// ToolSelect shows the active tool. Activating it moves to the next tool.
type ToolSelect struct {
	editor *Editor
	tool   string
}

func NewToolSelect(st appstate.State, e *Editor) Control {
	return &ToolSelect{editor: e, tool: st.Tool}
}

func (t *ToolSelect) Name() string { return "tool" }

func (t *ToolSelect) View() View { return View{Label: "Tool", Value: t.tool} }

func (t *ToolSelect) SyncState(st appstate.State) { t.tool = st.Tool }

func (t *ToolSelect) Activate() {
	t.Select(t.editor.Tools().Next(t.tool))
}

// Select makes name the active tool.
func (t *ToolSelect) Select(name string) {
	t.editor.Dispatch(appstate.SelectTool(name))
}

// ColorSelect shows the current color. Activating it steps through the
// palette.
type ColorSelect struct {
	editor *Editor
	color  picture.Color
}

func NewColorSelect(st appstate.State, e *Editor) Control {
	return &ColorSelect{editor: e, color: st.Color}
}

func (c *ColorSelect) Name() string { return "color" }

func (c *ColorSelect) View() View { return View{Label: "Color", Value: c.color.Hex()} }

func (c *ColorSelect) SyncState(st appstate.State) { c.color = st.Color }

func (c *ColorSelect) Activate() {
	palette := picture.Palette()
	next := (picture.PaletteIndex(c.color) + 1) % len(palette)
	c.Set(palette[next].Color)
}

// Set makes col the current color.
func (c *ColorSelect) Set(col picture.Color) {
	c.editor.Dispatch(appstate.SelectColor(col))
}

// OpenButton imports a picture through the editor's Files.
type OpenButton struct {
	editor *Editor
}

func NewOpenButton(_ appstate.State, e *Editor) Control {
	return &OpenButton{editor: e}
}

func (b *OpenButton) Name() string { return "open" }

func (b *OpenButton) View() View {
	return View{Label: "Open", Disabled: !b.editor.CanOpen()}
}

func (b *OpenButton) SyncState(appstate.State) {}

func (b *OpenButton) Activate() { b.editor.Open() }

// SaveButton saves the picture it last saw.
type SaveButton struct {
	editor  *Editor
	picture *picture.Picture
}

func NewSaveButton(st appstate.State, e *Editor) Control {
	return &SaveButton{editor: e, picture: st.Picture}
}

func (b *SaveButton) Name() string { return "save" }

func (b *SaveButton) View() View {
	return View{Label: "Save", Disabled: b.editor.files == nil}
}

func (b *SaveButton) SyncState(st appstate.State) { b.picture = st.Picture }

func (b *SaveButton) Activate() {
	// SavePicture logs and reports its own failures.
	_ = b.editor.SavePicture(b.picture)
}

// UndoButton is disabled while there is nothing to undo.
type UndoButton struct {
	editor   *Editor
	disabled bool
}

func NewUndoButton(st appstate.State, e *Editor) Control {
	return &UndoButton{editor: e, disabled: !st.CanUndo()}
}

func (b *UndoButton) Name() string { return "undo" }

func (b *UndoButton) View() View { return View{Label: "Undo", Disabled: b.disabled} }

func (b *UndoButton) SyncState(st appstate.State) { b.disabled = !st.CanUndo() }

func (b *UndoButton) Activate() {
	if b.disabled {
		return
	}
	b.editor.Dispatch(appstate.Undo())
}
