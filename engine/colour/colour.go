// Package colour provides float color math: hex, packed-integer and HSV
// conversions plus interpolation with proper hue wraparound.
package colour

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/prisma/engine/math"
)

// Colour is an RGBA color with components nominally in [0, 1]. Components
// are not clamped on construction; conversions that pack into bytes clamp
// internally so out-of-range values cannot corrupt the encoding.
type Colour struct {
	R, G, B, A float32
}

// HSV is a color in hue/saturation/value form: hue in degrees [0, 360),
// saturation and value in [0, 1].
type HSV struct {
	H, S, V float32
}

// NewColour creates an opaque color from r, g, b.
func NewColour(r, g, b float32) Colour {
	return Colour{R: r, G: g, B: b, A: 1.0}
}

// NewColourRGBA creates a color from r, g, b, a.
func NewColourRGBA(r, g, b, a float32) Colour {
	return Colour{R: r, G: g, B: b, A: a}
}

// NewColourFromHex parses a hex color string in #RGB, #RGBA, #RRGGBB or
// #RRGGBBAA form. The leading '#' is optional. Alpha defaults to 1 when the
// string does not carry it.
func NewColourFromHex(hex string) (Colour, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	nibble := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(s[i:i+1], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		// Expand the shorthand nibble: f -> ff.
		return uint8(v<<4 | v), nil
	}
	octet := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(s[i:i+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		return uint8(v), nil
	}

	var r, g, b uint8
	a := uint8(0xFF)
	var err error

	switch len(s) {
	case 3, 4:
		if r, err = nibble(0); err != nil {
			return Colour{}, err
		}
		if g, err = nibble(1); err != nil {
			return Colour{}, err
		}
		if b, err = nibble(2); err != nil {
			return Colour{}, err
		}
		if len(s) == 4 {
			if a, err = nibble(3); err != nil {
				return Colour{}, err
			}
		}
	case 6, 8:
		if r, err = octet(0); err != nil {
			return Colour{}, err
		}
		if g, err = octet(2); err != nil {
			return Colour{}, err
		}
		if b, err = octet(4); err != nil {
			return Colour{}, err
		}
		if len(s) == 8 {
			if a, err = octet(6); err != nil {
				return Colour{}, err
			}
		}
	default:
		return Colour{}, fmt.Errorf("invalid hex color %q: want 3, 4, 6 or 8 digits, got %d", hex, len(s))
	}

	inv := float32(1.0 / 255.0)
	return Colour{
		R: float32(r) * inv,
		G: float32(g) * inv,
		B: float32(b) * inv,
		A: float32(a) * inv,
	}, nil
}

// NewColourFromU32 unpacks a 32-bit integer with byte order R, G, B, A from
// the least significant byte.
func NewColourFromU32(u uint32) Colour {
	inv := float32(1.0 / 255.0)
	return Colour{
		R: float32(u&0xFF) * inv,
		G: float32((u>>8)&0xFF) * inv,
		B: float32((u>>16)&0xFF) * inv,
		A: float32((u>>24)&0xFF) * inv,
	}
}

// toByte converts a [0, 1] component to a byte, clamping first and rounding
// half up.
func toByte(v float32) uint32 {
	return uint32(math.Clamp(v, 0.0, 1.0)*255.0 + 0.5)
}

// ToU32 packs c into a 32-bit integer with byte order R, G, B, A from the
// least significant byte. Components are clamped to [0, 1].
func (c Colour) ToU32() uint32 {
	return toByte(c.R) | toByte(c.G)<<8 | toByte(c.B)<<16 | toByte(c.A)<<24
}

// ToHex formats c as #rrggbb, dropping alpha.
func (c Colour) ToHex() string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

// ToHexRGBA formats c as #rrggbbaa.
func (c Colour) ToHexRGBA() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
}

// ToHSV converts c to hue/saturation/value by the standard sector
// decomposition. Alpha is dropped. An achromatic color (max == min) has
// hue 0.
func (c Colour) ToHSV() HSV {
	max := math32.Max(c.R, math32.Max(c.G, c.B))
	min := math32.Min(c.R, math32.Min(c.G, c.B))
	delta := max - min

	out := HSV{V: max}
	if max > 0 {
		out.S = delta / max
	}
	if delta == 0 {
		return out
	}

	switch max {
	case c.R:
		out.H = 60.0 * ((c.G - c.B) / delta)
	case c.G:
		out.H = 60.0 * ((c.B-c.R)/delta + 2.0)
	default:
		out.H = 60.0 * ((c.R-c.G)/delta + 4.0)
	}
	out.H = math.NormalizeDegrees(out.H)
	return out
}

// ToColour converts h to an opaque RGB color by the standard six-sector
// decomposition (60 degrees per sector).
func (h HSV) ToColour() Colour {
	hue := math.NormalizeDegrees(h.H) / 60.0
	sector := int(hue) % 6
	f := hue - math32.Floor(hue)

	p := h.V * (1.0 - h.S)
	q := h.V * (1.0 - h.S*f)
	t := h.V * (1.0 - h.S*(1.0-f))

	switch sector {
	case 0:
		return NewColour(h.V, t, p)
	case 1:
		return NewColour(q, h.V, p)
	case 2:
		return NewColour(p, h.V, t)
	case 3:
		return NewColour(p, q, h.V)
	case 4:
		return NewColour(t, p, h.V)
	default:
		return NewColour(h.V, p, q)
	}
}

// Lerp interpolates componentwise from c to other by t. The parameter is not
// clamped, so values outside [0, 1] extrapolate.
func (c Colour) Lerp(other Colour, t float32) Colour {
	return Colour{
		R: math.Lerp(c.R, other.R, t),
		G: math.Lerp(c.G, other.G, t),
		B: math.Lerp(c.B, other.B, t),
		A: math.Lerp(c.A, other.A, t),
	}
}

// Lerp interpolates from h to other by t, taking the shorter circular path
// through hue: a raw hue delta above 180 degrees wraps around, and the
// result wraps back into [0, 360).
func (h HSV) Lerp(other HSV, t float32) HSV {
	delta := other.H - h.H
	if delta > 180.0 {
		delta -= 360.0
	} else if delta < -180.0 {
		delta += 360.0
	}
	return HSV{
		H: math.NormalizeDegrees(h.H + delta*t),
		S: math.Lerp(h.S, other.S, t),
		V: math.Lerp(h.V, other.V, t),
	}
}

// Compare reports whether all components of c and other differ by no more
// than tolerance.
func (c Colour) Compare(other Colour, tolerance float32) bool {
	return math32.Abs(c.R-other.R) <= tolerance &&
		math32.Abs(c.G-other.G) <= tolerance &&
		math32.Abs(c.B-other.B) <= tolerance &&
		math32.Abs(c.A-other.A) <= tolerance
}
