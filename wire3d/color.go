package wire3d

import "image/color"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// RGBA converts to the standard library color type used by font and image code.
func (c Color) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A} }

var (
	Black = RGB(0, 0, 0)
	White = RGB(0xFF, 0xFF, 0xFF)
)
