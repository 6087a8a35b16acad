package editor

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/pixeleditor/internal/appstate"
)

// KeyShortcut describes a key press as the frontends report it.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Shortcut is one entry of the help listing.
type Shortcut struct {
	Keys   string
	Action string
}

// Shortcuts lists the key bindings KeyDown understands, tool letters first.
func (e *Editor) Shortcuts() []Shortcut {
	var out []Shortcut
	seen := map[rune]bool{}
	for _, name := range e.tools.Names() {
		r := unicode.ToUpper([]rune(name)[0])
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, Shortcut{Keys: string(r), Action: name})
	}
	return append(out,
		Shortcut{Keys: "Ctrl+Z", Action: "undo"},
		Shortcut{Keys: "Ctrl+S", Action: "save"},
		Shortcut{Keys: "Ctrl+O", Action: "open"},
		Shortcut{Keys: "Ctrl+C", Action: "copy"},
		Shortcut{Keys: "Ctrl+V", Action: "paste"},
	)
}

// KeyDown handles a key press and reports whether it was consumed.
// Ctrl or Meta with Z, S, O, C or V undo, save, open, copy and paste. A
// bare letter selects the first tool whose name starts with it. While a
// Question is pending every key edits its answer instead.
func (e *Editor) KeyDown(k KeyShortcut) bool {
	if e.question != nil {
		e.answerKey(k)
		return true
	}
	r := unicode.ToLower(k.Rune)
	if r == 0 || r == -1 {
		r = codeRune(k.Code)
	}
	if k.Modifiers&(key.ModControl|key.ModMeta) != 0 {
		if r > 0 && r < 0x20 {
			// Some drivers report Ctrl+letter as the ASCII control code.
			r += 'a' - 1
		}
		switch r {
		case 'z':
			e.Dispatch(appstate.Undo())
		case 's':
			e.trigger("save", func() { _ = e.Save() })
		case 'o':
			e.trigger("open", e.Open)
		case 'c':
			_ = e.Copy()
		case 'v':
			e.Paste()
		default:
			return false
		}
		return true
	}
	if k.Modifiers&key.ModAlt != 0 || r <= 0 {
		return false
	}
	name, ok := e.tools.Shortcut(r)
	if !ok {
		return false
	}
	e.Dispatch(appstate.SelectTool(name))
	return true
}

// trigger activates the named control as a click would, falling back to fn
// when the toolbar has no such control.
func (e *Editor) trigger(name string, fn func()) {
	if c, ok := e.Control(name); ok {
		c.Activate()
		return
	}
	fn()
}

func codeRune(c key.Code) rune {
	if c >= key.CodeA && c <= key.CodeZ {
		return 'a' + rune(c-key.CodeA)
	}
	return 0
}
