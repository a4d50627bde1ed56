// Package render projects cat snapshots onto any circle-capable canvas.
package render

import (
	"image/color"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

// Palette maps each mood to its fill color.
type Palette [cats.StateCount]color.RGBA

var (
	// ComposePalette uses pure green, yellow and red.
	ComposePalette = Palette{
		cats.Calm:     {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		cats.Angry:    {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
		cats.Fighting: {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	}
	// FXPalette uses web green, orange and red.
	FXPalette = Palette{
		cats.Calm:     {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
		cats.Angry:    {R: 0xff, G: 0xa5, B: 0x00, A: 0xff},
		cats.Fighting: {R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	}

	invalidColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// PaletteByName resolves a palette flag value.
func PaletteByName(name string) (Palette, bool) {
	switch name {
	case "compose":
		return ComposePalette, true
	case "fx":
		return FXPalette, true
	}
	return Palette{}, false
}

// Color returns the fill for s; invalid states are drawn gray.
func (p Palette) Color(s cats.State) color.RGBA {
	if !s.Valid() {
		return invalidColor
	}
	return p[s]
}
