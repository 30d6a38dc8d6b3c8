package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Colors are packed as 0xRRGGBBAA.

// Transparent is fully transparent black.
const Transparent uint32 = 0x00000000

func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 255)
}

// HexColor turns 0xRRGGBB into an opaque color.
func HexColor(hex uint32) uint32 {
	return (hex << 8) | 0xFF
}

func Red(c uint32) uint8   { return uint8(c >> 24) }
func Green(c uint32) uint8 { return uint8(c >> 16) }
func Blue(c uint32) uint8  { return uint8(c >> 8) }
func Alpha(c uint32) uint8 { return uint8(c) }

// WithAlpha replaces the alpha channel.
func WithAlpha(c uint32, a uint8) uint32 {
	return c&0xFFFFFF00 | uint32(a)
}

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or "transparent".
func ParseColor(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return Transparent, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("invalid color %q: missing '#'", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	switch len(hex) {
	case 6:
		return HexColor(uint32(v)), nil
	case 8:
		return uint32(v), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want 6 or 8 hex digits", s)
	}
}

// FormatColor is the inverse of ParseColor. Opaque colors use the short form.
func FormatColor(c uint32) string {
	if c == Transparent {
		return "transparent"
	}
	if Alpha(c) == 0xFF {
		return fmt.Sprintf("#%06X", c>>8)
	}
	return fmt.Sprintf("#%08X", c)
}
