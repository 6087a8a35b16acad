package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/pixeleditor/internal/appstate"
	"github.com/example/pixeleditor/internal/picture"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
save_dir = /tmp/art

[editor]
width = 32
height = 16
background = white
color = "#ff0000"
tool = fill
scale = 20
history_limit = 50
output = sprite.png

[notify]
save = true
open = false
copy = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.SaveDir != "/tmp/art" {
		t.Errorf("Expected save_dir '/tmp/art', got '%s'", cfg.SaveDir)
	}

	want := Editor{
		Width:        32,
		Height:       16,
		Background:   picture.Color{R: 255, G: 255, B: 255},
		Color:        picture.Color{R: 255},
		Tool:         "fill",
		Scale:        20,
		HistoryLimit: 50,
		Output:       "sprite.png",
	}
	if cfg.Editor != want {
		t.Errorf("Editor = %+v, want %+v", cfg.Editor, want)
	}

	if !cfg.Notify.Save || cfg.Notify.Open || !cfg.Notify.Copy {
		t.Errorf("Notify = %+v", cfg.Notify)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background.R != 0x11 || th.Background.G != 0x11 || th.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Editor.Width != appstate.DefaultWidth || cfg.Editor.Height != appstate.DefaultHeight {
		t.Errorf("size = %dx%d", cfg.Editor.Width, cfg.Editor.Height)
	}
	if cfg.Editor.Tool != appstate.DefaultTool || cfg.Editor.Scale != DefaultScale {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Editor.HistoryLimit != 0 {
		t.Errorf("history limit = %d, want unbounded", cfg.Editor.HistoryLimit)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"zero width":     "[editor]\nwidth = 0\n",
		"bad color":      "[editor]\ncolor = nope\n",
		"negative limit": "[editor]\nhistory_limit = -1\n",
		"bad bool":       "[notify]\nsave = maybe\n",
		"bad theme":      "[theme.x]\nBackground = red\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(input)); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
save_dir = /home/user/art

[editor]
width = 8
color = navy

[notify]
save = true
open = true
copy = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.SaveDir != cfg2.SaveDir {
		t.Errorf("SaveDir mismatch: %q vs %q", cfg.SaveDir, cfg2.SaveDir)
	}
	if cfg.Editor != cfg2.Editor {
		t.Errorf("Editor mismatch: %+v vs %+v", cfg.Editor, cfg2.Editor)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderPaths(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(override, []byte("theme = dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", filepath.Join(dir, "home"))

	cfg, err := NewLoader("1.0", override).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("override not used, theme = %q", cfg.Theme)
	}

	cfg, err = NewLoader("1.0", filepath.Join(dir, "missing.rc")).Load()
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if cfg.Theme != "" {
		t.Errorf("expected defaults, got theme %q", cfg.Theme)
	}

	if err := Save(cfg, UserPath()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := NewLoader("1.0", "").GetConfigPath(); got != UserPath() {
		t.Errorf("GetConfigPath = %q, want %q", got, UserPath())
	}
}
