package colour

import (
	"github.com/spaghettifunk/prisma/engine/math"
)

// GoldenAngleDegrees is 360 / phi^2, the hue step that covers the circle
// near-uniformly without ever repeating.
const GoldenAngleDegrees = 137.50776

// PaletteOptions configures a Palette. The zero value is usable; saturation
// and value bands default to [0.6, 0.9] and [0.7, 0.95].
type PaletteOptions struct {
	// Seed picks the starting hue and offsets the jitter sequences. Equal
	// seeds (and bands) produce identical palettes.
	Seed uint64

	SaturationMin float32
	SaturationMax float32
	ValueMin      float32
	ValueMax      float32
}

func (o PaletteOptions) withDefaults() PaletteOptions {
	if o.SaturationMin == 0 && o.SaturationMax == 0 {
		o.SaturationMin, o.SaturationMax = 0.6, 0.9
	}
	if o.ValueMin == 0 && o.ValueMax == 0 {
		o.ValueMin, o.ValueMax = 0.7, 0.95
	}
	return o
}

// Palette lazily generates an infinite sequence of visually well-separated
// colors: the hue advances by the golden angle each step, and saturation and
// value are jittered inside their bands by Halton low-discrepancy sequences
// (bases 2 and 3). Deterministic: the sequence is a pure function of the
// options. Not safe for concurrent use.
type Palette struct {
	opts  PaletteOptions
	hue   float32
	index uint64
}

// NewPalette creates a palette generator from opts.
func NewPalette(opts PaletteOptions) *Palette {
	p := &Palette{opts: opts.withDefaults()}
	p.Reset()
	return p
}

// Reset restarts the sequence; the next call to Next returns the same color
// a fresh generator with the same options would.
func (p *Palette) Reset() {
	p.hue = math.NormalizeDegrees(float32(p.opts.Seed%360) * GoldenAngleDegrees)
	p.index = 0
}

// Next returns the next color in the sequence. Never exhausts.
func (p *Palette) Next() Colour {
	return p.NextHSV().ToColour()
}

// NextHSV is Next without the RGB conversion.
func (p *Palette) NextHSV() HSV {
	p.index++
	p.hue = math.NormalizeDegrees(p.hue + GoldenAngleDegrees)

	i := p.index + p.opts.Seed
	return HSV{
		H: p.hue,
		S: math.Lerp(p.opts.SaturationMin, p.opts.SaturationMax, halton(i, 2)),
		V: math.Lerp(p.opts.ValueMin, p.opts.ValueMax, halton(i, 3)),
	}
}

// halton returns element i of the Halton low-discrepancy sequence in the
// given base, in (0, 1).
func halton(i uint64, base uint64) float32 {
	f := float32(1.0)
	r := float32(0.0)
	for i > 0 {
		f /= float32(base)
		r += f * float32(i%base)
		i /= base
	}
	return r
}
