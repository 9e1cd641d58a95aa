// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/rayzal/mat"
)

// Circular is the flat, possibly-elliptical aperture of spec.md §4.2:
// x²/a² + y²/b² ≤ R², with a*b = 1 so that the aperture area stays πR²
// regardless of eccentricity.
type Circular struct {
	Radius        float64
	Eccentricity  float64 // e ∈ [0,1)
	ComplementVal bool
}

// NewCircular builds a circular (or, with e>0, elliptical) flat aperture
// of the given radius and eccentricity.
func NewCircular(radius, eccentricity float64, complement bool) *Circular {
	return &Circular{Radius: radius, Eccentricity: eccentricity, ComplementVal: complement}
}

// semiAxes returns (a,b) such that x²/a²+y²/b²≤R² has the stated
// eccentricity and a*b=1 (spec.md §4.2).
func (c *Circular) semiAxes() (a, b float64) {
	e := c.Eccentricity
	if e <= 0 {
		return 1, 1
	}
	// a/b = sqrt(1/(1-e^2)) is the standard ellipse eccentricity
	// relation; combined with a*b=1 this fixes both.
	ratio := 1 / math.Sqrt(1-e*e)
	b = 1 / math.Sqrt(ratio)
	a = ratio * b
	return
}

func (c *Circular) contains(x, y float64) bool {
	a, b := c.semiAxes()
	v := (x*x)/(a*a) + (y*y)/(b*b)
	inside := v <= c.Radius*c.Radius
	if c.ComplementVal {
		return !inside
	}
	return inside
}

// Intercept implements Shape.
func (c *Circular) Intercept(origin, direction mat.Vec3) (Hit, bool) {
	t, ok := planeHit(origin, direction)
	if !ok {
		return Hit{}, false
	}
	p := origin.Add(direction.Scale(t))
	if !c.contains(p.X, p.Y) {
		return Hit{}, false
	}
	n := orientTowardSource(mat.UnitZ, direction)
	return Hit{Point: p, Normal: n, T: t}, true
}

// Area implements Shape.
func (c *Circular) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Sample implements Shape: a simple concentric-ring/spoke sampler, good
// enough for ray-fan generation and RMS-spot testing (not a metrology
// grade quadrature rule).
func (c *Circular) Sample(n int) (points, normals []mat.Vec3) {
	a, b := c.semiAxes()
	points = make([]mat.Vec3, 0, n)
	normals = make([]mat.Vec3, 0, n)
	if n <= 0 {
		return
	}
	rings := int(math.Max(1, math.Sqrt(float64(n))))
	per := n / rings
	if per < 1 {
		per = 1
	}
	for ri := 1; ri <= rings; ri++ {
		r := c.Radius * float64(ri) / float64(rings)
		for si := 0; si < per; si++ {
			theta := 2 * math.Pi * float64(si) / float64(per)
			x := r * a * math.Cos(theta)
			y := r * b * math.Sin(theta)
			points = append(points, mat.NewVec3(x, y, 0))
			normals = append(normals, mat.UnitZ)
		}
	}
	return
}

// Edges implements Shape: one closed polyline tracing the aperture
// ellipse.
func (c *Circular) Edges() [][]mat.Vec3 {
	const n = 64
	a, b := c.semiAxes()
	line := make([]mat.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := c.Radius * a * math.Cos(theta)
		y := c.Radius * b * math.Sin(theta)
		line = append(line, mat.NewVec3(x, y, 0))
	}
	return [][]mat.Vec3{line}
}

// Complementary implements Shape.
func (c *Circular) Complementary() bool { return c.ComplementVal }
