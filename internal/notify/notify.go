// Package notify announces finished saves, opens and copies on the desktop.
// Every kind is off until the command line or config turns it on.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/pixeleditor/internal/platform"
)

// deliver is replaced in tests.
var deliver = platform.Notify

// Kind is the editor action a notification reports.
type Kind int

const (
	Saved Kind = iota
	Opened
	Copied
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Saved:
		return "save"
	case Opened:
		return "open"
	case Copied:
		return "copy"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Messages holds the notification title and one format per kind. Each
// format receives the file or source as its single %s.
type Messages struct {
	Title  string
	Saved  string
	Opened string
	Copied string
}

// DefaultMessages is the English text shown when nothing overrides it.
func DefaultMessages() Messages {
	return Messages{
		Title:  platform.AppName,
		Saved:  "Saved %s",
		Opened: "Opened %s",
		Copied: "Copied %s to clipboard",
	}
}

// MessagesFromEnv starts from DefaultMessages and takes any non-blank
// PIXELEDITOR_NOTIFY_TITLE, _SAVE_TEXT, _OPEN_TEXT or _COPY_TEXT.
func MessagesFromEnv() Messages {
	m := DefaultMessages()
	for env, dst := range map[string]*string{
		"PIXELEDITOR_NOTIFY_TITLE":     &m.Title,
		"PIXELEDITOR_NOTIFY_SAVE_TEXT": &m.Saved,
		"PIXELEDITOR_NOTIFY_OPEN_TEXT": &m.Opened,
		"PIXELEDITOR_NOTIFY_COPY_TEXT": &m.Copied,
	} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = v
		}
	}
	return m
}

func (m Messages) format(k Kind) string {
	switch k {
	case Saved:
		return m.Saved
	case Opened:
		return m.Opened
	case Copied:
		return m.Copied
	}
	return ""
}

// Notifier implements editor.Notifier. A nil Notifier is silent.
type Notifier struct {
	messages Messages
	on       [numKinds]bool
}

func New(m Messages) *Notifier {
	return &Notifier{messages: m}
}

// Set turns notifications of kind k on or off.
func (n *Notifier) Set(k Kind, on bool) {
	if n == nil || k < 0 || k >= numKinds {
		return
	}
	n.on[k] = on
}

// Enabled reports whether kind k is announced.
func (n *Notifier) Enabled(k Kind) bool {
	return n != nil && k >= 0 && k < numKinds && n.on[k]
}

// Save announces the written file and shows it as the notification image.
func (n *Notifier) Save(path string) {
	if !n.Enabled(Saved) {
		return
	}
	var icon string
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
		if _, err := os.Stat(abs); err == nil {
			icon = abs
		}
	}
	n.announce(Saved, path, platform.Options{IconPath: icon})
}

// Open announces a picture loaded from source, a file name or the clipboard.
func (n *Notifier) Open(source string) {
	n.announce(Opened, source, platform.Options{})
}

// Copy announces that what was placed on the clipboard.
func (n *Notifier) Copy(what string) {
	n.announce(Copied, what, platform.Options{})
}

func (n *Notifier) announce(k Kind, subject string, opts platform.Options) {
	if !n.Enabled(k) {
		return
	}
	format := strings.TrimSpace(n.messages.format(k))
	if format == "" {
		return
	}
	if subject = strings.TrimSpace(subject); subject == "" {
		subject = "picture"
	}
	if err := deliver(n.messages.Title, fmt.Sprintf(format, subject), opts); err != nil {
		log.Printf("notify %s: %v", k, err)
	}
}
