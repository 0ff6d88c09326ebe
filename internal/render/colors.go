package render

import "image/color"

// Palette for the whole scene.
var (
	Background = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	White      = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	DimWhite   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Accent     = color.RGBA{R: 120, G: 170, B: 255, A: 255}
)
