//go:build ebiten

package render

import (
	"image/color"

	"pong/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FillRoundRect paints a filled rectangle with rounded corners. The corner
// radius is clamped so it never exceeds half the short side; a zero radius
// degrades to a plain rectangle.
func FillRoundRect(dst *ebiten.Image, r core.Rect, radius float64, clr color.Color) {
	if radius > r.W/2 {
		radius = r.W / 2
	}
	if radius > r.H/2 {
		radius = r.H / 2
	}
	if radius <= 0 {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
		return
	}

	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	rad := float32(radius)

	// Center slab plus two side slabs, with circles filling the corners.
	vector.DrawFilledRect(dst, x+rad, y, w-2*rad, h, clr, true)
	vector.DrawFilledRect(dst, x, y+rad, rad, h-2*rad, clr, true)
	vector.DrawFilledRect(dst, x+w-rad, y+rad, rad, h-2*rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+rad, y+h-rad, rad, clr, true)
	vector.DrawFilledCircle(dst, x+w-rad, y+h-rad, rad, clr, true)
}

// CenterLine draws the dashed divider down the middle of the play area.
func CenterLine(dst *ebiten.Image) {
	const (
		dashW = 4
		dashH = 12
		gap   = 10
	)
	x := float64(core.ScreenWidth)/2 - dashW/2
	for y := 0.0; y < core.ScreenHeight; y += dashH + gap {
		FillRoundRect(dst, core.NewRect(x, y, dashW, dashH), 2, DimWhite)
	}
}
