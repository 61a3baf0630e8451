package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color with components in [0,1].
type Color struct {
	R, G, B float64
}

// ParseHexColor parses a #RRGGBB string.
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	v = ClampProgress(v)
	return uint8(v*255 + 0.5)
}

// PanelStyle describes how a PathPair is painted.
type PanelStyle struct {
	Fill           Color
	FillOpacity    float64
	Arrow          Color
	ArrowLineWidth float64
}

// DefaultPanelStyle is a dark lens at 70% opacity with a thin white chevron.
func DefaultPanelStyle() PanelStyle {
	return PanelStyle{
		Fill:           Color{},
		FillOpacity:    0.7,
		Arrow:          Color{R: 1, G: 1, B: 1},
		ArrowLineWidth: 1.5,
	}
}

// String returns a compact description of the style.
func (s PanelStyle) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fill=%s@%g arrow=%s/%g", s.Fill.Hex(), s.FillOpacity, s.Arrow.Hex(), s.ArrowLineWidth)
	return b.String()
}
