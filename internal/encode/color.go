package encode

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor parses a "#RRGGBB" color value.
func ParseHexColor(s string) (color.RGBA, error) {
	v := strings.TrimSpace(s)
	if len(v) != 7 || v[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #RRGGBB", s)
	}
	n, err := strconv.ParseUint(v[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #RRGGBB", s)
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, nil
}

// FormatHexColor renders a color as "#rrggbb", discarding alpha.
func FormatHexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
