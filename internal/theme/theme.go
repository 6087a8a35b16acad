// Package theme holds the colors the desktop frontend paints its chrome with.
package theme

import (
	"image/color"
	"os"
)

// EnvVar names a theme to use when no flag selects one.
const EnvVar = "PIXELEDITOR_THEME"

// Theme defines the color palette for the editor's chrome. The picture itself
// is never themed.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background behind the canvas
	Foreground color.RGBA // Main text color

	// Toolbars
	ToolbarBackground color.RGBA
	ToolActive        color.RGBA // Background of the selected tool button
	SwatchBorder      color.RGBA
	SwatchSelected    color.RGBA // Ring around the current color

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonDisabled        color.RGBA
	ButtonText            color.RGBA
	ButtonTextDisabled    color.RGBA
	ButtonBorder          color.RGBA

	// Status bar
	StatusBackground color.RGBA
	StatusText       color.RGBA

	// Canvas
	CanvasBorder color.RGBA
}

// Default returns the hardcoded light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{200, 200, 200, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ToolActive:            color.RGBA{170, 190, 230, 255},
		SwatchBorder:          color.RGBA{90, 90, 90, 255},
		SwatchSelected:        color.RGBA{255, 140, 0, 255},
		ButtonBackground:      color.RGBA{235, 235, 235, 255},
		ButtonBackgroundHover: color.RGBA{210, 210, 210, 255},
		ButtonBackgroundPress: color.RGBA{180, 180, 180, 255},
		ButtonDisabled:        color.RGBA{225, 225, 225, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled:    color.RGBA{150, 150, 150, 255},
		ButtonBorder:          color.RGBA{120, 120, 120, 255},
		StatusBackground:      color.RGBA{230, 230, 230, 255},
		StatusText:            color.RGBA{40, 40, 40, 255},
		CanvasBorder:          color.RGBA{60, 60, 60, 255},
	}
}

// Select picks the theme name to load: an explicit flag wins over the
// environment, which wins over the config file.
func Select(flag, configured string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	return configured
}
