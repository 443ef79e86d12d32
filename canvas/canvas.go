// Package canvas renders a fixed-resolution off-screen image onto the
// ebiten screen, scaled to fit and centered with letterbox bars.
package canvas

import (
	"fmt"
	"image/color"

	"canvas2d/viewport"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas owns the off-screen render target. It must only be used from the
// ebiten game loop goroutine.
type Canvas struct {
	mapper    viewport.Mapper
	target    *ebiten.Image
	filter    ebiten.Filter
	letterbox color.Color

	// physical size used by the most recent Draw
	lastWidth, lastHeight float64
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithFilter sets the filter used when scaling the canvas onto the screen.
func WithFilter(f ebiten.Filter) Option {
	return func(c *Canvas) { c.filter = f }
}

// WithLetterbox sets the colour of the bars around the canvas. A nil
// colour leaves the screen untouched.
func WithLetterbox(clr color.Color) Option {
	return func(c *Canvas) { c.letterbox = clr }
}

// New allocates a canvas of width x height logical pixels.
func New(width, height int, opts ...Option) (*Canvas, error) {
	m, err := viewport.New(float64(width), float64(height))
	if err != nil {
		return nil, fmt.Errorf("new canvas: %w", err)
	}
	c := &Canvas{
		mapper:     m,
		target:     ebiten.NewImage(width, height),
		filter:     ebiten.FilterNearest,
		letterbox:  color.Black,
		lastWidth:  float64(width),
		lastHeight: float64(height),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Target returns the image to draw the scene into.
func (c *Canvas) Target() *ebiten.Image { return c.target }

// Mapper returns the canvas' viewport mapper.
func (c *Canvas) Mapper() viewport.Mapper { return c.mapper }

// Width returns the logical width.
func (c *Canvas) Width() int { return int(c.mapper.Width()) }

// Height returns the logical height.
func (c *Canvas) Height() int { return int(c.mapper.Height()) }

func (c *Canvas) Filter() ebiten.Filter { return c.filter }

func (c *Canvas) SetFilter(f ebiten.Filter) { c.filter = f }

// Clear fills the render target.
func (c *Canvas) Clear(clr color.Color) {
	c.target.Fill(clr)
}

// Placement returns where the canvas lands on a physical surface.
func (c *Canvas) Placement(physicalWidth, physicalHeight float64) viewport.Placement {
	return c.mapper.Placement(physicalWidth, physicalHeight)
}

// Draw blits the canvas onto screen, sized to the screen's bounds.
func (c *Canvas) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	c.DrawTo(screen, float64(b.Dx()), float64(b.Dy()))
}

// DrawTo blits the canvas as if the screen were physicalWidth x
// physicalHeight. Nothing is drawn when that area is empty.
func (c *Canvas) DrawTo(screen *ebiten.Image, physicalWidth, physicalHeight float64) {
	c.lastWidth, c.lastHeight = physicalWidth, physicalHeight

	if c.letterbox != nil {
		screen.Fill(c.letterbox)
	}
	p := c.mapper.Placement(physicalWidth, physicalHeight)
	if !p.Visible() {
		return
	}
	screen.DrawImage(c.target, DrawOptions(p, c.filter))
}

// DrawOptions builds the draw options that scale and translate an image
// of the canvas' logical size into p.
func DrawOptions(p viewport.Placement, filter ebiten.Filter) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Scale, p.Scale)
	op.GeoM.Translate(p.Left, p.Top)
	op.Filter = filter
	return op
}

// ScreenSize returns the physical size used by the most recent Draw.
func (c *Canvas) ScreenSize() (float64, float64) {
	return c.lastWidth, c.lastHeight
}
