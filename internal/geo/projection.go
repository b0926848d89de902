// Package geo places tournament markers on the world map and classifies
// countries for highlighting.
package geo

import "math"

const epsilon = 1e-6

// Point is a projected screen coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ConicConformal is a Lambert conformal conic projection with a single
// standard parallel, scaled and translated onto the map canvas.
type ConicConformal struct {
	Parallel  float64
	Scale     float64
	Translate Point

	n, f float64
}

// NewConicConformal builds the projection used by the tournament map.
func NewConicConformal(parallel, scale float64, translate Point) ConicConformal {
	phi := parallel * math.Pi / 180
	n := math.Sin(phi)
	f := math.Cos(phi) * math.Pow(tany(phi), n) / n
	return ConicConformal{Parallel: parallel, Scale: scale, Translate: translate, n: n, f: f}
}

// DefaultProjection matches the map canvas: 30° parallel, scale 150, centred at (400,350).
func DefaultProjection() ConicConformal {
	return NewConicConformal(30, 150, Point{X: 400, Y: 350})
}

// Project converts longitude/latitude in degrees to canvas coordinates.
func (p ConicConformal) Project(lon, lat float64) Point {
	lambda := lon * math.Pi / 180
	phi := lat * math.Pi / 180

	if p.f > 0 && phi < -math.Pi/2+epsilon {
		phi = -math.Pi/2 + epsilon
	} else if p.f <= 0 && phi > math.Pi/2-epsilon {
		phi = math.Pi/2 - epsilon
	}

	r := p.f / math.Pow(tany(phi), p.n)
	x := r * math.Sin(p.n*lambda)
	y := p.f - r*math.Cos(p.n*lambda)

	return Point{
		X: p.Translate.X + p.Scale*x,
		Y: p.Translate.Y - p.Scale*y,
	}
}

func tany(phi float64) float64 {
	return math.Tan((math.Pi/2 + phi) / 2)
}
