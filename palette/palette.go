package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color")

var (
	// --- Named colors ---
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	DarkGray  = color.RGBA{80, 80, 80, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	Yellow    = color.RGBA{253, 249, 0, 255}
	Orange    = color.RGBA{255, 161, 0, 255}

	// --- UI ---
	Grid             = color.RGBA{0, 0, 0, 40}
	CenterCross      = color.RGBA{255, 100, 100, 150}
	Border           = color.RGBA{255, 100, 100, 255}
	ButtonBackground = color.RGBA{60, 60, 70, 200}
	ButtonHover      = color.RGBA{0, 120, 255, 220}
	ButtonActive     = color.RGBA{50, 205, 50, 220}
	PanelBackground  = color.RGBA{40, 40, 40, 220}
	PanelText        = color.RGBA{255, 200, 50, 255}
)

var named = map[string]color.RGBA{
	"white":     White,
	"black":     Black,
	"red":       Red,
	"green":     Green,
	"blue":      Blue,
	"gray":      Gray,
	"grey":      Gray,
	"darkgray":  DarkGray,
	"lightgray": LightGray,
	"yellow":    Yellow,
	"orange":    Orange,
}

// Parse accepts a color name or "#rgb", "#rrggbb", "#rrggbbaa".
func Parse(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
