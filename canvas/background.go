package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawGrid draws grid lines every spacing logical pixels across target and
// a cross at its center.
func DrawGrid(target *ebiten.Image, spacing float64, gridColor, centerCross color.Color) {
	if spacing <= 0 {
		return
	}
	w := float64(target.Bounds().Dx())
	h := float64(target.Bounds().Dy())

	for x := spacing; x < w; x += spacing {
		vector.StrokeLine(target, float32(x), 0, float32(x), float32(h), 1, gridColor, false)
	}
	for y := spacing; y < h; y += spacing {
		vector.StrokeLine(target, 0, float32(y), float32(w), float32(y), 1, gridColor, false)
	}

	cx, cy := math.Floor(w/2), math.Floor(h/2)
	vector.StrokeLine(target, float32(cx-15), float32(cy), float32(cx+15), float32(cy), 2, centerCross, false)
	vector.StrokeLine(target, float32(cx), float32(cy-15), float32(cx), float32(cy+15), 2, centerCross, false)
}

// DrawBorder outlines the target's edge pixels.
func DrawBorder(target *ebiten.Image, clr color.Color) {
	w := float32(target.Bounds().Dx())
	h := float32(target.Bounds().Dy())
	vector.StrokeRect(target, 0.5, 0.5, w-1, h-1, 1, clr, false)
}
