// Package config reads and writes the editor's rc file.
package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/export"
	"github.com/example/pixeleditor/internal/picture"
	"github.com/example/pixeleditor/internal/theme"
)

// DefaultScale is the on-screen size of a cell in the desktop frontend.
const DefaultScale = 10

// Editor holds the starting state of an editing session.
type Editor struct {
	Width        int
	Height       int
	Background   picture.Color
	Color        picture.Color
	Tool         string
	Scale        int
	HistoryLimit int
	Output       string
}

// Notify holds notification settings.
type Notify struct {
	Save bool
	Open bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	Editor  Editor
	Notify  Notify
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Empty lets the environment or the built-in theme apply
		Editor: Editor{
			Width:      appstate.DefaultWidth,
			Height:     appstate.DefaultHeight,
			Background: appstate.DefaultBackground,
			Color:      appstate.DefaultColor,
			Tool:       appstate.DefaultTool,
			Scale:      DefaultScale,
			Output:     export.DefaultName,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	e := c.Editor
	sb.WriteString("[editor]\n")
	fmt.Fprintf(&sb, "width = %d\n", e.Width)
	fmt.Fprintf(&sb, "height = %d\n", e.Height)
	fmt.Fprintf(&sb, "background = %s\n", e.Background.Hex())
	fmt.Fprintf(&sb, "color = %s\n", e.Color.Hex())
	fmt.Fprintf(&sb, "tool = %s\n", e.Tool)
	fmt.Fprintf(&sb, "scale = %d\n", e.Scale)
	fmt.Fprintf(&sb, "history_limit = %d\n", e.HistoryLimit)
	fmt.Fprintf(&sb, "output = %s\n", e.Output)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "open = %v\n", c.Notify.Open)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		theme.Fields(t, func(field string, col color.RGBA) {
			fmt.Fprintf(&sb, "%s: %s\n", field, theme.FormatColor(col))
		})
		sb.WriteString("\n")
	}

	return sb.String()
}
