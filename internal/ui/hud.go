//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"pong/internal/core"
	"pong/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	scoreScale = 3
	scoreY     = 20
	hintText   = "W/S to move - ESC to quit"
	hintMargin = 28
)

// HUD renders the score counters and the key hint. Labels are drawn with the
// bitmap font onto small offscreen images and blitted scaled, so they only
// re-render when a counter changes.
type HUD struct {
	left  scoreLabel
	right scoreLabel
	hint  *ebiten.Image
}

type scoreLabel struct {
	value int
	img   *ebiten.Image
}

// NewHUD constructs the HUD and pre-renders the static hint line.
func NewHUD() *HUD {
	h := &HUD{}
	h.hint = renderLabel(hintText, render.DimWhite)
	h.left.img = renderLabel("0", render.White)
	h.right.img = renderLabel("0", render.White)
	return h
}

// Draw paints both score counters and the hint onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, score core.Score) {
	h.left.refresh(score.Left)
	h.right.refresh(score.Right)

	blitScaled(screen, h.left.img, float64(core.ScreenWidth)*0.25, scoreScale)
	blitScaled(screen, h.right.img, float64(core.ScreenWidth)*0.75, scoreScale)

	op := &ebiten.DrawImageOptions{}
	hintW := h.hint.Bounds().Dx()
	op.GeoM.Translate(float64(core.ScreenWidth-hintW)/2, float64(core.ScreenHeight-hintMargin))
	screen.DrawImage(h.hint, op)
}

// refresh re-renders the label image when the counter value changed.
func (l *scoreLabel) refresh(value int) {
	if l.img != nil && l.value == value {
		return
	}
	l.value = value
	l.img = renderLabel(strconv.Itoa(value), render.White)
}

// blitScaled draws img scaled up, horizontally centered on centerX at scoreY.
func blitScaled(screen, img *ebiten.Image, centerX float64, scale float64) {
	w := float64(img.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w*scale/2, scoreY)
	screen.DrawImage(img, op)
}

// renderLabel rasterizes s with the bitmap font onto a tight image.
func renderLabel(s string, clr color.Color) *ebiten.Image {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := ebiten.NewImage(w, h)
	text.Draw(img, s, face, -bounds.Min.X, -bounds.Min.Y, clr)
	return img
}
