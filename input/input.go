package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DoubleClickWindow   = 350 * time.Millisecond
	DoubleClickDistance = 1000 // px squared (~31px)
)

// Source reports the raw pointer state on the physical screen.
type Source interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
}

// EbitenSource reads the pointer from ebiten.
type EbitenSource struct{}

func (EbitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (EbitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

// Mapper converts a physical position into logical canvas pixels.
type Mapper interface {
	ToLogical(physicalX, physicalY, physicalWidth, physicalHeight float64) (float64, float64)
}

// State is a snapshot of the pointer, with positions in logical pixels.
type State struct {
	X, Y         float64
	ScreenX      int
	ScreenY      int
	InCanvas     bool
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	DoubleClick  bool

	// Dragging is true while the button is held; DragDX/DragDY is the
	// logical movement since the previous frame.
	Dragging       bool
	DragDX, DragDY float64
}

// Pointer tracks the left mouse button across frames.
type Pointer struct {
	src    Source
	mapper Mapper
	now    func() time.Time

	state State

	lastClickTime time.Time
	lastClickPos  [2]int
}

// NewPointer returns a Pointer that reads src and maps through m.
func NewPointer(src Source, m Mapper) *Pointer {
	return &Pointer{src: src, mapper: m, now: time.Now}
}

// State returns the snapshot taken by the last Update.
func (p *Pointer) State() State { return p.state }

// Update polls the source. physicalWidth and physicalHeight are the current
// screen size; inCanvas, if non-nil, decides whether the raw position is on
// the canvas rather than in a bar.
func (p *Pointer) Update(physicalWidth, physicalHeight float64, inCanvas func(x, y float64) bool) {
	prev := p.state
	mx, my := p.src.CursorPosition()
	lx, ly := p.mapper.ToLogical(float64(mx), float64(my), physicalWidth, physicalHeight)
	pressed := p.src.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	s := State{
		X:            lx,
		Y:            ly,
		ScreenX:      mx,
		ScreenY:      my,
		InCanvas:     inCanvas == nil || inCanvas(float64(mx), float64(my)),
		Pressed:      pressed,
		JustPressed:  pressed && !prev.Pressed,
		JustReleased: !pressed && prev.Pressed,
	}

	if s.JustPressed {
		now := p.now()
		if !p.lastClickTime.IsZero() && now.Sub(p.lastClickTime) < DoubleClickWindow {
			dx := mx - p.lastClickPos[0]
			dy := my - p.lastClickPos[1]
			s.DoubleClick = dx*dx+dy*dy < DoubleClickDistance
		}
		p.lastClickTime = now
		p.lastClickPos = [2]int{mx, my}
		if s.DoubleClick {
			// a third click starts a new pair
			p.lastClickTime = time.Time{}
		}
	}

	if pressed && prev.Pressed {
		s.Dragging = true
		s.DragDX = lx - prev.X
		s.DragDY = ly - prev.Y
	}

	p.state = s
}
