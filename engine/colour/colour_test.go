package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const colorTol = float32(1.0 / 255.0)

func TestHexParse(t *testing.T) {
	c, err := NewColourFromHex("#ff00aa")
	require.NoError(t, err)
	assert.InDelta(t, 1, c.R, 1e-6)
	assert.InDelta(t, 0, c.G, 1e-6)
	assert.InDelta(t, 0.6667, c.B, 1e-3)
	assert.InDelta(t, 1, c.A, 1e-6)

	// Leading '#' is optional.
	c2, err := NewColourFromHex("ff00aa")
	require.NoError(t, err)
	assert.Equal(t, c, c2)

	// Shorthand nibbles expand (f -> ff).
	c3, err := NewColourFromHex("#f0a")
	require.NoError(t, err)
	assert.InDelta(t, 1, c3.R, 1e-6)
	assert.InDelta(t, float32(0xaa)/255, c3.B, 1e-6)

	// Four-digit shorthand carries alpha.
	c4, err := NewColourFromHex("#f0a8")
	require.NoError(t, err)
	assert.InDelta(t, float32(0x88)/255, c4.A, 1e-6)

	// Eight digits carry alpha.
	c5, err := NewColourFromHex("#ff00aa80")
	require.NoError(t, err)
	assert.InDelta(t, float32(0x80)/255, c5.A, 1e-6)
}

func TestHexParseErrors(t *testing.T) {
	for _, bad := range []string{"", "#12", "#12345", "#gggggg", "not a color"} {
		_, err := NewColourFromHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestToHex(t *testing.T) {
	assert.Equal(t, "#ff00aa", NewColour(1, 0, 0.6667).ToHex())
	assert.Equal(t, "#ff00aa80", NewColourRGBA(1, 0, 0.6667, float32(0x80)/255).ToHexRGBA())
	// Out-of-range components clamp rather than corrupting the encoding.
	assert.Equal(t, "#ff0000", NewColour(1.7, -0.3, 0).ToHex())
}

func TestU32RoundTrip(t *testing.T) {
	for _, c := range []Colour{
		NewColour(1, 0, 0.6667),
		NewColourRGBA(0.25, 0.5, 0.75, 0.5),
		NewColour(0, 0, 0),
		NewColour(1, 1, 1),
	} {
		got := NewColourFromU32(c.ToU32())
		assert.True(t, c.Compare(got, colorTol), "want %v, got %v", c, got)
	}

	// R sits in the least significant byte.
	assert.Equal(t, uint32(0xFF0000FF), NewColour(1, 0, 0).ToU32())
}

func TestRoundHalfUp(t *testing.T) {
	// 0.6/255 rounds up to 1, 0.4/255 rounds down to 0.
	u := NewColourRGBA(0.6/255.0, 0.4/255.0, 0, 1).ToU32()
	assert.Equal(t, uint32(1), u&0xFF)
	assert.Equal(t, uint32(0), (u>>8)&0xFF)
}

func TestHSVRoundTrip(t *testing.T) {
	for _, c := range []Colour{
		NewColour(1, 0, 0),
		NewColour(0, 1, 0),
		NewColour(0, 0, 1),
		NewColour(0.3, 0.7, 0.2),
		NewColour(0.5, 0.5, 0.5),
	} {
		got := c.ToHSV().ToColour()
		assert.True(t, c.Compare(got, 1e-4), "want %v, got %v", c, got)
	}
}

func TestHSVKnownValues(t *testing.T) {
	red := NewColour(1, 0, 0).ToHSV()
	assert.InDelta(t, 0, red.H, 1e-4)
	assert.InDelta(t, 1, red.S, 1e-4)
	assert.InDelta(t, 1, red.V, 1e-4)

	green := NewColour(0, 1, 0).ToHSV()
	assert.InDelta(t, 120, green.H, 1e-3)

	blue := NewColour(0, 0, 1).ToHSV()
	assert.InDelta(t, 240, blue.H, 1e-3)

	// Achromatic: hue 0, saturation 0.
	gray := NewColour(0.5, 0.5, 0.5).ToHSV()
	assert.Equal(t, float32(0), gray.H)
	assert.Equal(t, float32(0), gray.S)
	assert.InDelta(t, 0.5, gray.V, 1e-4)

	// Negative sector input wraps into [0, 360).
	magentaish := NewColour(1, 0, 0.5).ToHSV()
	assert.Greater(t, magentaish.H, float32(180))
}

func TestLerp(t *testing.T) {
	a := NewColour(0, 0, 0)
	b := NewColour(1, 0.5, 1)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.InDelta(t, 0.25, mid.G, 1e-6)
}

func TestLerpHSVShortestPath(t *testing.T) {
	a := HSV{H: 350, S: 1, V: 1}
	b := HSV{H: 10, S: 1, V: 1}

	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0, mid.H, 1e-3)

	// And the reverse direction.
	mid = b.Lerp(a, 0.5)
	assert.InDelta(t, 0, mid.H, 1e-3)

	// No wrap when the raw delta is under 180.
	mid = HSV{H: 100}.Lerp(HSV{H: 200}, 0.5)
	assert.InDelta(t, 150, mid.H, 1e-3)

	// Boundaries.
	assert.InDelta(t, 350, a.Lerp(b, 0).H, 1e-3)
	assert.InDelta(t, 10, a.Lerp(b, 1).H, 1e-3)
}

func TestColourFromName(t *testing.T) {
	c, err := NewColourFromName("red")
	require.NoError(t, err)
	assert.True(t, c.Compare(NewColour(1, 0, 0), colorTol))

	// Mixed case resolves too.
	c, err = NewColourFromName("DarkSlateGray")
	require.NoError(t, err)
	assert.True(t, c.Compare(NewColour(float32(0x2f)/255, float32(0x4f)/255, float32(0x4f)/255), colorTol))

	_, err = NewColourFromName("not-a-color")
	assert.Error(t, err)
}

func TestParseColour(t *testing.T) {
	hexed, err := ParseColour("#00ff00")
	require.NoError(t, err)
	named, err2 := ParseColour("lime")
	require.NoError(t, err2)
	assert.True(t, hexed.Compare(named, colorTol))
}
