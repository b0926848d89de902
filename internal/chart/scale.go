// Package chart computes the geometry behind the tournament bar chart and the
// results table cells. It produces coordinates and colours; drawing is left to
// whoever renders them.
package chart

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// LinearScale maps a continuous domain onto a continuous range.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinearScale builds a scale from domain [d0,d1] to range [r0,r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Scale maps v into the range. A zero-width domain maps everything to the
// middle of the range.
func (s LinearScale) Scale(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	t := 0.5
	if span != 0 {
		t = (v - s.Domain[0]) / span
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// ColorScale interpolates between two colours in RGB space over a domain.
type ColorScale struct {
	scale    LinearScale
	from, to colorful.Color
}

// NewColorScale builds a colour scale. Colours are hex strings ("#ffff00").
func NewColorScale(d0, d1 float64, from, to string) ColorScale {
	return ColorScale{
		scale: NewLinearScale(d0, d1, 0, 1),
		from:  mustHex(from),
		to:    mustHex(to),
	}
}

// mustHex parses a colour constant and panics on a malformed one.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("chart: bad colour %q: %v", s, err))
	}
	return c
}

// Color returns the hex colour for v, clamped to the ends of the scale.
func (c ColorScale) Color(v float64) string {
	t := math.Max(0, math.Min(1, c.scale.Scale(v)))
	return c.from.BlendRgb(c.to, t).Clamped().Hex()
}

// QuantizeScale splits a domain into equal buckets, one per colour.
type QuantizeScale struct {
	Domain [2]float64
	Colors []string
}

// Color returns the bucket colour for v.
func (q QuantizeScale) Color(v float64) string {
	if len(q.Colors) == 0 {
		return ""
	}
	span := q.Domain[1] - q.Domain[0]
	if span == 0 {
		return q.Colors[0]
	}
	idx := int(math.Floor((v - q.Domain[0]) / span * float64(len(q.Colors))))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(q.Colors) {
		idx = len(q.Colors) - 1
	}
	return q.Colors[idx]
}
