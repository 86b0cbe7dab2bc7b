package system

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FallbackColor is used for elements without a usable color
var FallbackColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// ParseColor reads "#rgb", "#rrggbb" or a CSS color name
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FallbackColor, false
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	if !strings.HasPrefix(s, "#") {
		return FallbackColor, false
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return FallbackColor, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return FallbackColor, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
}
