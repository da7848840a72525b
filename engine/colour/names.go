package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// NewColourFromName looks up an SVG 1.1 color name ("tomato",
// "DarkSlateGray", ...). Case-insensitive.
func NewColourFromName(name string) (Colour, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Colour{}, fmt.Errorf("unknown color name %q", name)
	}
	inv := float32(1.0 / 255.0)
	return Colour{
		R: float32(c.R) * inv,
		G: float32(c.G) * inv,
		B: float32(c.B) * inv,
		A: float32(c.A) * inv,
	}, nil
}

// ParseColour accepts either a hex string or an SVG color name.
func ParseColour(s string) (Colour, error) {
	if strings.HasPrefix(s, "#") {
		return NewColourFromHex(s)
	}
	if c, err := NewColourFromName(s); err == nil {
		return c, nil
	}
	return NewColourFromHex(s)
}
