package pinforge

import (
	"fmt"
	"image/color"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ParseHexColor parses a "#RRGGBB" string into an opaque color. Anything
// else, including the short "#RGB" form, fails with ErrInvalidColor.
func ParseHexColor(s string) (color.NRGBA, error) {
	if !hexColorPattern.MatchString(s) {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not of the form #RRGGBB", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexString formats c as uppercase "#RRGGBB", the form every resolved
// color leaves this package in.
func HexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
