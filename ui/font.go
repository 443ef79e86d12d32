package ui

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFace is used when no TrueType font is configured or it fails to
// load.
var DefaultFace font.Face = basicfont.Face7x13

// LoadFace parses the TrueType/OpenType font at path. On error it returns
// DefaultFace together with the error so the caller can log it.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return DefaultFace, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultFace, fmt.Errorf("load font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return DefaultFace, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return DefaultFace, fmt.Errorf("new face %s: %w", path, err)
	}
	return face, nil
}

// LineMetrics returns the ascent and line height of face in pixels.
func LineMetrics(face font.Face) (ascent, lineHeight int) {
	m := face.Metrics()
	ascent = m.Ascent.Ceil()
	lineHeight = ascent + m.Descent.Ceil()
	if lineHeight <= 0 {
		return 12, 16
	}
	return ascent, lineHeight
}

// TextWidth returns the advance of the widest line of s.
func TextWidth(face font.Face, s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if adv := font.MeasureString(face, line).Ceil(); adv > w {
			w = adv
		}
	}
	return w
}

// TextDrawer returns a function that draws multi-line text with face,
// treating y as the top of the first line.
func TextDrawer(face font.Face) func(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	if face == nil {
		face = DefaultFace
	}
	return func(dst *ebiten.Image, s string, x, y int, clr color.Color) {
		DrawTextLines(dst, face, s, x, y, clr)
	}
}

// DrawTextLines draws multiline text with the provided font.Face and color starting at (x,y).
func DrawTextLines(dst *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = DefaultFace
	}
	ascent, lineHeight := LineMetrics(face)
	// text.Draw expects a baseline y
	baseY := y + ascent
	for i, line := range strings.Split(s, "\n") {
		text.Draw(dst, line, face, x, baseY+i*lineHeight, clr)
	}
}
