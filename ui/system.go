package ui

import (
	"canvas2d/input"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// System holds the on-canvas buttons. Hit testing uses the pointer's
// logical position, so buttons stay clickable at any window size.
type System struct {
	buttons []*Button
	face    font.Face
	hovered *Button
	Debug   *DebugPanel
}

func NewSystem(face font.Face) *System {
	if face == nil {
		face = DefaultFace
	}
	return &System{face: face, Debug: &DebugPanel{}}
}

// Add appends a button.
func (s *System) Add(b *Button) *Button {
	s.buttons = append(s.buttons, b)
	return b
}

func (s *System) Buttons() []*Button { return s.buttons }

// ButtonAt returns the topmost button under the logical point, or nil.
func (s *System) ButtonAt(x, y float64) *Button {
	for i := len(s.buttons) - 1; i >= 0; i-- {
		if s.buttons[i].Contains(x, y) {
			return s.buttons[i]
		}
	}
	return nil
}

// Update refreshes hover state and fires OnClick on a fresh press. It
// reports whether the pointer is over a button. Presses in the letterbox
// bars are ignored even though they clamp onto the canvas edge.
func (s *System) Update(p input.State) bool {
	s.hovered = nil
	if !p.InCanvas {
		return false
	}
	b := s.ButtonAt(p.X, p.Y)
	s.hovered = b
	if b != nil && p.JustPressed && b.OnClick != nil {
		b.OnClick()
	}
	return b != nil
}

// Draw renders the buttons onto the logical canvas.
func (s *System) Draw(dst *ebiten.Image) {
	for _, b := range s.buttons {
		b.Draw(dst, s.face, b == s.hovered)
	}
}
