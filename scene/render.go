package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextDrawer draws s with its top-left corner at (x, y).
type TextDrawer func(dst *ebiten.Image, s string, x, y int, clr color.Color)

// Render rasterises cmds onto target. Text commands are skipped when
// drawText is nil.
func Render(target *ebiten.Image, cmds []Command, drawText TextDrawer) {
	for _, c := range cmds {
		switch c.Kind {
		case KindClear:
			target.Fill(c.Color)
		case KindRect:
			vector.DrawFilledRect(target, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, false)
		case KindCircle:
			vector.DrawFilledCircle(target, float32(c.X), float32(c.Y), float32(c.R), c.Color, true)
		case KindLine:
			vector.StrokeLine(target, float32(c.X), float32(c.Y), float32(c.X2), float32(c.Y2), float32(c.Stroke), c.Color, false)
		case KindText:
			if drawText != nil {
				drawText(target, c.Text, int(c.X), int(c.Y), c.Color)
			}
		}
	}
}
