package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 0xFF}, false},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"102030", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && FormatColor(got) != strings.ToUpper(tt.in) {
			t.Errorf("FormatColor(%v) = %q, want %q", got, FormatColor(got), strings.ToUpper(tt.in))
		}
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\nbackground: #010203\nUnknownKey: #FFFFFF\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Mine" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("Background = %v", th.Background)
	}
	if th.CanvasBorder != Default().CanvasBorder {
		t.Errorf("CanvasBorder = %v, want default", th.CanvasBorder)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse(strings.NewReader("Foreground: black\n")); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	l := &Loader{}
	got, err := l.Load("default")
	if err != nil {
		t.Fatalf("Load default: %v", err)
	}
	want := Default()
	Fields(want, func(name string, c color.RGBA) {
		var have color.RGBA
		Fields(got, func(n string, g color.RGBA) {
			if n == name {
				have = g
			}
		})
		if have != c {
			t.Errorf("%s = %v, want %v", name, have, c)
		}
	})
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sunset.theme"), []byte("Name: Sunset\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	custom := Default()
	custom.Name = "dark override"
	l := &Loader{ConfigDir: dir, Custom: map[string]*Theme{"dark": custom}}

	th, err := l.Load("dark")
	if err != nil || th.Name != "dark override" {
		t.Fatalf("Load dark = %v, %v; want config theme first", th, err)
	}
	th, err = l.Load("sunset")
	if err != nil || th.Name != "Sunset" {
		t.Fatalf("Load sunset = %v, %v", th, err)
	}
	th, err = l.Load(filepath.Join(dir, "sunset.theme"))
	if err != nil || th.Name != "Sunset" {
		t.Fatalf("Load by path = %v, %v", th, err)
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	names := l.Names()
	if len(names) != 2 || names[0] != "dark" || names[1] != "default" {
		t.Errorf("Names = %v", names)
	}
}

func TestSelect(t *testing.T) {
	t.Setenv(EnvVar, "dark")
	if got := Select("mine", "cfg"); got != "mine" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := Select("", "cfg"); got != "dark" {
		t.Errorf("env should beat config, got %q", got)
	}
	t.Setenv(EnvVar, "")
	if got := Select("", "cfg"); got != "cfg" {
		t.Errorf("config fallback, got %q", got)
	}
}
