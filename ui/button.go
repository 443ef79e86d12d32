package ui

import (
	"image/color"

	"canvas2d/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle placed in logical canvas pixels.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()

	// Active draws the button highlighted, for toggles.
	Active func() bool
}

// Contains reports whether the logical point (x, y) is on the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W &&
		y >= b.Y && y < b.Y+b.H
}

// Draw renders the button onto the logical canvas.
func (b *Button) Draw(dst *ebiten.Image, face font.Face, hovered bool) {
	var bg color.Color = palette.ButtonBackground
	switch {
	case hovered:
		bg = palette.ButtonHover
	case b.Active != nil && b.Active():
		bg = palette.ButtonActive
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)

	if face == nil {
		face = DefaultFace
	}
	_, lh := LineMetrics(face)
	tx := int(b.X + (b.W-float64(TextWidth(face, b.Label)))/2)
	ty := int(b.Y + (b.H-float64(lh))/2)
	DrawTextLines(dst, face, b.Label, tx, ty, color.White)
}
