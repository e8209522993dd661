package palette

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 32-bit color laid out as 0xAARRGGBB.
type Color uint32

// RGBA builds a Color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB builds an opaque Color.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xff)
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGB24 returns the color with its alpha channel stripped.
func (c Color) RGB24() uint32 {
	return uint32(c) & 0x00ffffff
}

// RGBHex renders the color as #rrggbb. Alpha is dropped.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%06x", c.RGB24())
}

// String renders #rrggbb for opaque colors and #rrggbbaa otherwise.
func (c Color) String() string {
	if c.A() == 0xff {
		return c.RGBHex()
	}
	return fmt.Sprintf("#%06x%02x", c.RGB24(), c.A())
}

// Lipgloss converts the color for terminal rendering.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.RGBHex())
}

// ParseHex parses a CSS hex color literal: #rgb, #rrggbb or #rrggbbaa.
func ParseHex(s string) (Color, error) {
	switch len(s) {
	case 4, 7:
		cf, err := colorful.Hex(s)
		if err != nil {
			return 0, err
		}
		r, g, b := cf.RGB255()
		return RGB(r, g, b), nil
	case 9:
		c, err := ParseHex(s[:7])
		if err != nil {
			return 0, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("color: %v is not a hex-color: %w", s, err)
		}
		return RGBA(c.R(), c.G(), c.B(), uint8(a)), nil
	default:
		return 0, fmt.Errorf("color: %v is not a hex-color", s)
	}
}
