package picture

import "strings"

// PaletteEntry is a named swatch offered by the editors.
type PaletteEntry struct {
	Name  string
	Color Color
}

var palette = []PaletteEntry{
	{"Black", Color{0, 0, 0}},
	{"White", Color{255, 255, 255}},
	{"Red", Color{255, 0, 0}},
	{"Lime", Color{0, 255, 0}},
	{"Blue", Color{0, 0, 255}},
	{"Yellow", Color{255, 255, 0}},
	{"Cyan", Color{0, 255, 255}},
	{"Magenta", Color{255, 0, 255}},
	{"Maroon", Color{128, 0, 0}},
	{"Green", Color{0, 128, 0}},
	{"Navy", Color{0, 0, 128}},
	{"Olive", Color{128, 128, 0}},
	{"Teal", Color{0, 128, 128}},
	{"Purple", Color{128, 0, 128}},
	{"Silver", Color{192, 192, 192}},
	{"Gray", Color{128, 128, 128}},
}

// Palette returns a copy of the swatches shown in the editors.
func Palette() []PaletteEntry {
	out := make([]PaletteEntry, len(palette))
	copy(out, palette)
	return out
}

// LookupPalette finds a swatch by case-insensitive name.
func LookupPalette(name string) (PaletteEntry, bool) {
	for _, entry := range palette {
		if strings.EqualFold(entry.Name, name) {
			return entry, true
		}
	}
	return PaletteEntry{}, false
}

// PaletteIndex returns the index of c in the palette or -1.
func PaletteIndex(c Color) int {
	for i, entry := range palette {
		if entry.Color == c {
			return i
		}
	}
	return -1
}
