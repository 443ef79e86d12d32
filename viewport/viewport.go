// Package viewport maps a fixed-size logical canvas onto a physical surface
// of any size.
//
// The canvas is scaled uniformly by the largest factor that still fits both
// axes, then centered, leaving symmetric letterbox (top/bottom) or
// pillarbox (left/right) bars. A Mapper holds only the logical size; the
// physical size is passed to every query, so a Mapper is an immutable value
// that can be shared between goroutines.
//
// A physical size of zero or less (a minimized window, for instance) is not
// an error. The queries return the computed zero or negative values and
// Placement.Visible reports false; callers should skip drawing in that case.
package viewport

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when a logical dimension is not a positive,
// finite number.
var ErrInvalidSize = errors.New("invalid canvas size")

// Mapper converts between logical canvas coordinates and physical surface
// coordinates.
type Mapper struct {
	width  float64
	height float64
}

// New returns a Mapper for a logical canvas of the given size.
func New(width, height float64) (Mapper, error) {
	if !validDimension(width) || !validDimension(height) {
		return Mapper{}, fmt.Errorf("%w: %vx%v, both sides must be positive", ErrInvalidSize, width, height)
	}
	return Mapper{width: width, height: height}, nil
}

// MustNew is like New but panics on an invalid size.
func MustNew(width, height float64) Mapper {
	m, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return m
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Width returns the logical width.
func (m Mapper) Width() float64 { return m.width }

// Height returns the logical height.
func (m Mapper) Height() float64 { return m.height }

// Size returns the logical width and height.
func (m Mapper) Size() (float64, float64) { return m.width, m.height }

// ScaleFactors returns the per-axis factors that would stretch the canvas
// to exactly cover the physical surface.
func (m Mapper) ScaleFactors(physicalWidth, physicalHeight float64) (float64, float64) {
	return physicalWidth / m.width, physicalHeight / m.height
}

// Scale returns the uniform scale factor that fits the canvas inside the
// physical surface while preserving its aspect ratio.
func (m Mapper) Scale(physicalWidth, physicalHeight float64) float64 {
	return math.Min(m.ScaleFactors(physicalWidth, physicalHeight))
}

// ScaledSize returns the size of the canvas once scaled to fit.
func (m Mapper) ScaledSize(physicalWidth, physicalHeight float64) (float64, float64) {
	p := m.Placement(physicalWidth, physicalHeight)
	return p.Width, p.Height
}

// Padding returns the left and top offsets that center the scaled canvas.
// The right and bottom bars have the same size.
func (m Mapper) Padding(physicalWidth, physicalHeight float64) (float64, float64) {
	p := m.Placement(physicalWidth, physicalHeight)
	return p.Left, p.Top
}

// Placement computes scale, size and padding from a single scale factor so
// the three always agree.
func (m Mapper) Placement(physicalWidth, physicalHeight float64) Placement {
	s := m.Scale(physicalWidth, physicalHeight)
	w := m.width * s
	h := m.height * s
	return Placement{
		Left:   (physicalWidth - w) / 2,
		Top:    (physicalHeight - h) / 2,
		Width:  w,
		Height: h,
		Scale:  s,
	}
}

// ToLogical maps a physical pointer position to a logical pixel.
//
// Positions in the bars clamp to the nearest canvas edge. The result is
// clamped to [0, Width] x [0, Height] and then floored, so the far corner
// of the scaled canvas maps to (floor(Width), floor(Height)). When the
// physical surface has no area the result is (0, 0).
func (m Mapper) ToLogical(physicalX, physicalY, physicalWidth, physicalHeight float64) (float64, float64) {
	p := m.Placement(physicalWidth, physicalHeight)
	if !p.Visible() {
		return 0, 0
	}
	x := (physicalX - p.Left) / p.Scale
	y := (physicalY - p.Top) / p.Scale
	return floorPixel(clamp(x, 0, m.width)), floorPixel(clamp(y, 0, m.height))
}

// floorPixel floors v, first snapping it to a whole pixel when it is only
// off by rounding error, so 28.9999999999 lands on pixel 29.
func floorPixel(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) <= 1e-9*math.Max(1, math.Abs(v)) {
		return r
	}
	return math.Floor(v)
}

// ToPhysical maps a logical position to its location on the physical
// surface. It does not clamp.
func (m Mapper) ToPhysical(logicalX, logicalY, physicalWidth, physicalHeight float64) (float64, float64) {
	p := m.Placement(physicalWidth, physicalHeight)
	return p.Left + logicalX*p.Scale, p.Top + logicalY*p.Scale
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// Placement describes where the scaled canvas lands on the physical
// surface.
type Placement struct {
	Left, Top     float64
	Width, Height float64
	Scale         float64
}

// Visible reports whether the canvas has a drawable area.
func (p Placement) Visible() bool {
	return p.Scale > 0 && p.Width > 0 && p.Height > 0
}

// Right returns the physical x coordinate of the canvas' right edge.
func (p Placement) Right() float64 { return p.Left + p.Width }

// Bottom returns the physical y coordinate of the canvas' bottom edge.
func (p Placement) Bottom() float64 { return p.Top + p.Height }

// Contains reports whether a physical point lies on the canvas rather than
// in a bar.
func (p Placement) Contains(physicalX, physicalY float64) bool {
	return physicalX >= p.Left && physicalX < p.Right() &&
		physicalY >= p.Top && physicalY < p.Bottom()
}
