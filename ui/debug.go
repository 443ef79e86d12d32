package ui

import (
	"fmt"

	"canvas2d/input"
	"canvas2d/palette"
	"canvas2d/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// DebugPanel is drawn on the physical screen, outside the canvas, and shows
// how the pointer and the canvas are mapped.
type DebugPanel struct {
	Visible bool
	Error   string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

// Text returns the panel contents.
func (d *DebugPanel) Text(p viewport.Placement, ptr input.State, tps float64) string {
	msg := fmt.Sprintf(
		"screen: X %d Y %d\n"+
			"canvas: X %.0f Y %.0f\n"+
			"scale: %.3f  size: %.0fx%.0f\n"+
			"padding: %.1f, %.1f\n"+
			"TPS: %.1f",
		ptr.ScreenX, ptr.ScreenY,
		ptr.X, ptr.Y,
		p.Scale, p.Width, p.Height,
		p.Left, p.Top,
		tps,
	)
	if d.Error != "" {
		msg += "\n" + d.Error
	}
	return msg
}

// Draw renders the panel in the top-left corner of screen.
func (d *DebugPanel) Draw(screen *ebiten.Image, face font.Face, p viewport.Placement, ptr input.State, tps float64) {
	if d == nil || (!d.Visible && d.Error == "") {
		return
	}
	if face == nil {
		face = DefaultFace
	}
	msg := d.Text(p, ptr, tps)
	_, lh := LineMetrics(face)
	lines := 1
	for _, r := range msg {
		if r == '\n' {
			lines++
		}
	}
	pw := float32(TextWidth(face, msg) + 16)
	ph := float32(lines*lh + 16)
	vector.DrawFilledRect(screen, 10, 10, pw, ph, palette.PanelBackground, false)
	DrawTextLines(screen, face, msg, 18, 18, palette.PanelText)
}
