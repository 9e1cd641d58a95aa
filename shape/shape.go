// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shape implements the surface-shape library: the geometry half
// of a medium boundary (spec.md §3/§4.2). Every shape couples an aperture
// domain with an implicit surface z = f(x,y) and exposes the same small
// capability set, mirroring how `shp` keeps one `Shape` contract behind
// per-element-type geometry in the teacher repo.
package shape

import "github.com/cpmech/rayzal/mat"

// Hit is the outcome of a successful Intercept: the point, the outward
// surface normal (oriented per spec.md §4.2) and the ray parameter t.
type Hit struct {
	Point  mat.Vec3
	Normal mat.Vec3
	T      float64
}

// Shape is the contract every surface geometry implements. Intercept is
// called in the surface's own frame: origin and direction are already
// frame-relative (spec.md §4.2).
type Shape interface {
	// Intercept returns the smallest positive ray parameter t at which
	// the ray hits both the implicit surface and its aperture (or its
	// complement, if Complementary), along with the hit point and
	// outward normal. ok is false on a clean miss.
	Intercept(origin, direction mat.Vec3) (hit Hit, ok bool)

	// Area returns the shape's aperture area (used for radiometric
	// bookkeeping and for sampling density).
	Area() float64

	// Sample fills points/normals (each len N) with points distributed
	// over the aperture and the corresponding surface normal (Array's
	// Sample delegates to its cell shape's Sample).
	Sample(n int) (points, normals []mat.Vec3)

	// Edges returns a polyline approximation of the aperture boundary,
	// for visualisation only (spec.md §4.2: "not on the hot path").
	Edges() [][]mat.Vec3

	// Complementary reports whether the containment test is inverted
	// (spec.md §3: obstructions/pinholes built from their inverse
	// aperture).
	Complementary() bool
}

// planeHit solves t for a flat surface z=0 in the local frame (used by
// Circular and Rectangular): the surface plane passes through the origin
// of the local frame with its normal along +Z.
func planeHit(origin, direction mat.Vec3) (t float64, ok bool) {
	if direction.Z == 0 {
		return 0, false
	}
	t = -origin.Z / direction.Z
	return t, t > 0
}

// orientTowardSource flips n (if needed) so that it points into the
// half-space `direction` came from, as spec.md §4.2 requires: "normal
// must point so that, for a reflective boundary, v_out = v - 2(v.n)n
// gives an outward-going ray".
func orientTowardSource(n, direction mat.Vec3) mat.Vec3 {
	if n.Dot(direction) > 0 {
		return n.Neg()
	}
	return n
}
