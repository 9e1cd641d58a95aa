// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/rayzal/mat"
)

// Conic implements the general conic surface of spec.md §4.2:
//
//	z(r) = sign * [ (R - sqrt(R² - (K+1)r²)) / (K+1) - D ]
//
// with r² = (x-x0)² + (y-y0)², a parabolic branch at K=-1, an optional
// central hole, and a convexity sign.
type Conic struct {
	RadiusOfCurvature float64 // R_c
	Conic             float64 // K
	ApertureRadius    float64 // R_ap
	HoleRadius        float64 // R_hole (0 disables)
	CenterX, CenterY  float64 // x0, y0
	Vertex            float64 // D: vertex offset along the local Z axis
	Convex            bool    // sign = +1 if true, -1 otherwise
	ComplementVal     bool
}

// NewConic builds a conic surface shape.
func NewConic(Rc, K, Rap, Rhole, x0, y0, D float64, convex, complement bool) *Conic {
	return &Conic{
		RadiusOfCurvature: Rc,
		Conic:             K,
		ApertureRadius:    Rap,
		HoleRadius:        Rhole,
		CenterX:           x0,
		CenterY:           y0,
		Vertex:            D,
		Convex:            convex,
		ComplementVal:     complement,
	}
}

func (c *Conic) sign() float64 {
	if c.Convex {
		return 1
	}
	return -1
}

// sagitta returns z(r) per the formula above; the second return is false
// if the surface has no real sagitta at this radius (R² - (K+1)r² < 0).
func (c *Conic) sagitta(r2 float64) (float64, bool) {
	Kp1 := c.Conic + 1
	Rc := c.RadiusOfCurvature
	disc := Rc*Rc - Kp1*r2
	if disc < 0 {
		return 0, false
	}
	if math.Abs(Kp1) < 1e-300 {
		// parabolic branch (K = -1): z = sign*(r²/(2R) - D)
		return c.sign() * (r2/(2*Rc) - c.Vertex), true
	}
	return c.sign() * ((Rc-math.Sqrt(disc))/Kp1 - c.Vertex), true
}

// quadraticCoeffs builds A,B,C for At²+Bt+C=0, following spec.md §4.2's
// derivation, for a ray origin+t*direction intersecting the conic.
func (c *Conic) quadraticCoeffs(origin, direction mat.Vec3) (A, B, C float64) {
	a, b, cc := direction.X, direction.Y, direction.Z
	x0p, y0p, z0p := origin.X-c.CenterX, origin.Y-c.CenterY, origin.Z
	K := c.Conic
	Kp1 := K + 1
	Rc := c.RadiusOfCurvature
	D := c.Vertex
	// with sigma equal to minus the convexity sign, these coefficients
	// describe the same surface as sagitta (z = sign*[... - D]).
	sigma := -c.sign()

	A = a*a + b*b + Kp1*cc*cc
	B = 2 * (a*x0p + b*y0p + Kp1*cc*z0p + sigma*cc*(Rc-D*Kp1))
	C = x0p*x0p + y0p*y0p + Kp1*z0p*z0p + 2*sigma*(Rc-D*Kp1)*z0p - 2*D*Rc + D*D*Kp1
	return
}

// solveQuadratic applies spec.md §4.2's tie-break rule: when both roots
// are positive, take the smaller; when they straddle zero, take the
// positive one. The degenerate A≈0 case falls back to t=-C/B.
func solveQuadratic(A, B, C float64) (t float64, ok bool) {
	if math.Abs(A) < 1e-14 {
		if math.Abs(B) < 1e-300 {
			return 0, false
		}
		t = -C / B
		return t, t > 0
	}
	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-B - sq) / (2 * A)
	t2 := (-B + sq) / (2 * A)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	switch {
	case t1 > 0 && t2 > 0:
		return t1, true
	case t1 <= 0 && t2 > 0:
		return t2, true
	default:
		return 0, false
	}
}

func (c *Conic) containsRadial(r2 float64) bool {
	inside := r2 <= c.ApertureRadius*c.ApertureRadius
	if c.HoleRadius > 0 {
		inside = inside && r2 >= c.HoleRadius*c.HoleRadius
	}
	if c.ComplementVal {
		return !inside
	}
	return inside
}

// Intercept implements Shape.
func (c *Conic) Intercept(origin, direction mat.Vec3) (Hit, bool) {
	A, B, C := c.quadraticCoeffs(origin, direction)
	t, ok := solveQuadratic(A, B, C)
	if !ok {
		return Hit{}, false
	}
	p := origin.Add(direction.Scale(t))
	dx, dy := p.X-c.CenterX, p.Y-c.CenterY
	r2 := dx*dx + dy*dy
	if !c.containsRadial(r2) {
		return Hit{}, false
	}
	n := c.normalAt(p)
	n = orientTowardSource(n, direction)
	return Hit{Point: p, Normal: n, T: t}, true
}

// normalAt returns the (unnormalized-then-normalized) gradient of the
// implicit surface F(x,y,z) = z - sign*[(Rc-sqrt(Rc²-(K+1)r²))/(K+1) - D],
// i.e. the surface normal at p, before orienting it toward the ray
// source.
func (c *Conic) normalAt(p mat.Vec3) mat.Vec3 {
	dx, dy := p.X-c.CenterX, p.Y-c.CenterY
	r2 := dx*dx + dy*dy
	Kp1 := c.Conic + 1
	Rc := c.RadiusOfCurvature
	disc := Rc*Rc - Kp1*r2
	if disc < 1e-12 {
		disc = 1e-12
	}
	// dz/dx = sign * x / sqrt(disc), derived from dz/dr2 * 2x
	dzdx := c.sign() * dx / math.Sqrt(disc)
	dzdy := c.sign() * dy / math.Sqrt(disc)
	n := mat.NewVec3(-dzdx, -dzdy, 1)
	return n.Normalize()
}

// Area implements Shape: the annular (or full-disc) aperture area.
func (c *Conic) Area() float64 {
	outer := math.Pi * c.ApertureRadius * c.ApertureRadius
	if c.HoleRadius > 0 {
		outer -= math.Pi * c.HoleRadius * c.HoleRadius
	}
	return outer
}

// Sample implements Shape with a polar grid, excluding the central hole.
func (c *Conic) Sample(n int) (points, normals []mat.Vec3) {
	if n <= 0 {
		return nil, nil
	}
	rings := int(math.Max(1, math.Sqrt(float64(n))))
	per := n / rings
	if per < 1 {
		per = 1
	}
	points = make([]mat.Vec3, 0, n)
	normals = make([]mat.Vec3, 0, n)
	for ri := 1; ri <= rings; ri++ {
		r := c.HoleRadius + (c.ApertureRadius-c.HoleRadius)*float64(ri)/float64(rings)
		for si := 0; si < per; si++ {
			theta := 2 * math.Pi * float64(si) / float64(per)
			x := c.CenterX + r*math.Cos(theta)
			y := c.CenterY + r*math.Sin(theta)
			z, ok := c.sagitta((x-c.CenterX)*(x-c.CenterX) + (y-c.CenterY)*(y-c.CenterY))
			if !ok {
				continue
			}
			p := mat.NewVec3(x, y, z)
			points = append(points, p)
			normals = append(normals, c.normalAt(p))
		}
	}
	return
}

// Edges implements Shape: outer (and, if present, inner) aperture
// circles traced at their true sagitta, for visualisation.
func (c *Conic) Edges() [][]mat.Vec3 {
	const n = 64
	trace := func(r float64) []mat.Vec3 {
		line := make([]mat.Vec3, 0, n+1)
		for i := 0; i <= n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			x := c.CenterX + r*math.Cos(theta)
			y := c.CenterY + r*math.Sin(theta)
			z, _ := c.sagitta((x-c.CenterX)*(x-c.CenterX) + (y-c.CenterY)*(y-c.CenterY))
			line = append(line, mat.NewVec3(x, y, z))
		}
		return line
	}
	edges := [][]mat.Vec3{trace(c.ApertureRadius)}
	if c.HoleRadius > 0 {
		edges = append(edges, trace(c.HoleRadius))
	}
	return edges
}

// Complementary implements Shape.
func (c *Conic) Complementary() bool { return c.ComplementVal }
