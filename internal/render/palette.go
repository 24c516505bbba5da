// Package render draws published simulation frames.
package render

import (
	"image/color"

	"github.com/PerformLine/go-stockutil/colorutil"
)

// ClassPalette returns n distinct class colors, evenly spaced around the hue
// wheel at full brightness.
func ClassPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		h := float64(i) / float64(n) * 360
		r, g, b := colorutil.HsvToRgb(h, 0.85, 1)
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}
