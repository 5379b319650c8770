package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pixbounce/internal/game"
)

// SwatchColors are the primary colors offered on the customize screen.
var SwatchColors = []game.RGB{
	{R: 255, G: 50, B: 50},
	{R: 50, G: 200, B: 50},
	{R: 50, G: 150, B: 255},
	{R: 255, G: 200, B: 50},
	{R: 200, G: 50, B: 200},
	{R: 50, G: 200, B: 200},
	{R: 255, G: 150, B: 50},
	{R: 200, G: 50, B: 100},
	{R: 100, G: 50, B: 200},
}

// PatternSwatchColors are the secondary colors used by pattern textures.
var PatternSwatchColors = []game.RGB{
	{R: 255, G: 255, B: 255},
	{R: 240, G: 240, B: 240},
	{R: 200, G: 200, B: 200},
	{R: 150, G: 150, B: 150},
	{R: 100, G: 100, B: 100},
	{R: 255, G: 255, B: 200},
	{R: 200, G: 255, B: 200},
	{R: 200, G: 200, B: 255},
	{R: 255, G: 200, B: 200},
}

func toColorful(c game.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ColorOf converts an RGB triple to a tcell color.
func ColorOf(c game.RGB) tcell.Color {
	return toTcell(toColorful(c))
}

// Lighten blends a color toward white. Used for stripe highlights and
// glow falloff.
func Lighten(c game.RGB, t float64) tcell.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return toTcell(toColorful(c).BlendRgb(white, t))
}

// Darken blends a color toward black. Used for gradient texture falloff.
func Darken(c game.RGB, t float64) tcell.Color {
	black := colorful.Color{}
	return toTcell(toColorful(c).BlendRgb(black, t))
}

// Dim scales a color toward the background to fake opacity on a terminal,
// blending against the level background color.
func Dim(c game.RGB, background game.RGB, opacity int) tcell.Color {
	t := 1 - float64(opacity)/255
	return toTcell(toColorful(c).BlendRgb(toColorful(background), t))
}
