package paint

import (
	"image/color"

	"github.com/gogpu/gg"
)

// toEngineColor converts a parsed NRGBA into the engine's normalized
// color value.
func toEngineColor(c color.NRGBA) gg.RGBA {
	return gg.FromColor(c)
}

// drawImageOptions builds the engine draw options for stretching an
// image into the destination rectangle at (x, y).
func drawImageOptions(x, y, w, h float64) gg.DrawImageOptions {
	return gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
	}
}
