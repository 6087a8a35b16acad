package editor

import (
	"strings"
	"unicode"

	"golang.org/x/mobile/event/key"
)

// Question is a line of text the editor is waiting for. Frontends show it in
// place of their status line while it is pending.
type Question struct {
	Prompt string
	Answer string

	done func(answer string)
}

// Question returns the pending question, if any.
func (e *Editor) Question() (Question, bool) {
	if e.question == nil {
		return Question{}, false
	}
	return *e.question, true
}

// ask replaces any pending question. done runs with the trimmed answer when
// the user submits a non-empty one.
func (e *Editor) ask(prompt, initial string, done func(string)) {
	e.question = &Question{Prompt: prompt, Answer: initial, done: done}
}

// CancelQuestion drops the pending question without answering it.
func (e *Editor) CancelQuestion() {
	e.question = nil
}

// answerKey edits the pending question. Enter submits, Escape cancels and
// Backspace deletes the last character; other printable keys are typed.
// Every key is consumed while a question is pending.
func (e *Editor) answerKey(k KeyShortcut) {
	q := e.question
	switch {
	case k.Code == key.CodeReturnEnter || k.Code == key.CodeKeypadEnter || k.Rune == '\r' || k.Rune == '\n':
		e.question = nil
		if answer := strings.TrimSpace(q.Answer); answer != "" {
			q.done(answer)
		}
	case k.Code == key.CodeEscape || k.Rune == 0x1b:
		e.question = nil
	case k.Code == key.CodeDeleteBackspace || k.Rune == '\b' || k.Rune == 0x7f:
		if r := []rune(q.Answer); len(r) > 0 {
			q.Answer = string(r[:len(r)-1])
		}
	case k.Modifiers&(key.ModControl|key.ModMeta|key.ModAlt) != 0:
	case k.Rune > 0 && unicode.IsPrint(k.Rune):
		q.Answer += string(k.Rune)
	}
}
