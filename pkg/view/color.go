package view

import (
	"strconv"

	"github.com/go-drift/droid/pkg/errors"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB). Colors parsed from #RRGGBB strings
// are always opaque.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ParseColor parses a #RRGGBB string. Anything else, including the short
// #RGB form and an alpha channel, fails with *errors.ColorFormatError.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, &errors.ColorFormatError{Value: s}
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return 0, &errors.ColorFormatError{Value: s}
		}
	}
	rgb, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, &errors.ColorFormatError{Value: s}
	}
	return Color(0xFF000000 | uint32(rgb)), nil
}

// MustParseColor is like ParseColor but panics on malformed input.
// Use it for compile-time constants only.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Hex formats c as #RRGGBB with upper-case digits.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	buf := [7]byte{'#'}
	for i, shift := 1, 20; i < 7; i, shift = i+1, shift-4 {
		buf[i] = digits[(uint32(c)>>shift)&0xF]
	}
	return string(buf[:])
}

func (c Color) String() string { return c.Hex() }

// MarshalText encodes c as #RRGGBB.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a #RRGGBB string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Default colors.
var (
	ColorBlack     = RGB(0x00, 0x00, 0x00)
	ColorWhite     = RGB(0xFF, 0xFF, 0xFF)
	ColorGray      = RGB(0x80, 0x80, 0x80)
	ColorPrimary   = RGB(0x21, 0x96, 0xF3)
	ColorOnPrimary = ColorWhite
)
