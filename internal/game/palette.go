package game

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultTheme is used when an unknown theme is selected.
const DefaultTheme = "sunset"

var palettes = map[string][]string{
	"sunset": {"#ffbe3d", "#ff7a00", "#ff9e2c", "#ffd166"},
	"forest": {"#3ddc97", "#2eb872", "#2d6a4f", "#74c69d"},
	"ocean":  {"#2d6cdf", "#3bb2ff", "#29c7fa", "#00a8e8"},
	"neon":   {"#ff3d7f", "#8d3dff", "#2d6cdf", "#00e5ff"},
	"night":  {"#ffd166", "#06d6a0", "#ef476f", "#118ab2"},
}

// Themes lists the selectable themes in menu order.
var Themes = []string{"sunset", "forest", "ocean", "neon", "night"}

// Palette returns the colours of a theme, falling back to sunset.
// The returned slice must not be modified.
func Palette(theme string) []string {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[DefaultTheme]
}

// HasTheme reports whether theme is known.
func HasTheme(theme string) bool {
	_, ok := palettes[theme]
	return ok
}

// ValidatePalettes checks that every palette entry is a parseable hex colour.
func ValidatePalettes() error {
	for _, name := range Themes {
		for _, hex := range palettes[name] {
			if _, err := colorful.Hex(hex); err != nil {
				return fmt.Errorf("theme %s: invalid colour %q: %w", name, hex, err)
			}
		}
	}
	return nil
}

// NextTheme returns the theme after current in menu order, wrapping around.
func NextTheme(current string) string {
	return next(Themes, current)
}

// NextDifficulty returns the difficulty after current, wrapping around.
func NextDifficulty(current string) string {
	return next(Difficulties, current)
}

func next(list []string, current string) string {
	for i, v := range list {
		if v == current {
			return list[(i+1)%len(list)]
		}
	}
	return list[0]
}
