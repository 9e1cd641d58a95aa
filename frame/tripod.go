// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// tripodState holds the geometry a Tripod frame needs to rebuild its
// tilted-triangle pose (spec.md §4.1 "Algorithm (Tripod)").
type tripodState struct {
	radius float64    // r: circumscribed radius of the base triangle
	alpha  float64    // α: vertex angle of the (isoceles) base triangle
	legs   [3]float64 // L1,L2,L3: leg lengths along the base-triangle normal

	lastNormal mat.Vec3 // previous n_t, retained on degeneracy (spec.md §4.1 "Failure semantics")
	lastCenter mat.Vec3
	lastOrient mat.Matrix3
	haveLast   bool
}

// Tripod creates a new child frame whose pose is derived from three leg
// lengths supporting a tilted triangular platform, as described in
// spec.md §3/§4.1.
func Tripod(parent *Frame, name string, radius, alpha float64, legs [3]float64) *Frame {
	f := &Frame{name: name, kind: KindTripod, tripod: &tripodState{radius: radius, alpha: alpha, legs: legs}}
	parent.addChild(f)
	return f
}

// SetLeg updates one leg length (index 0,1,2) and invalidates the
// subtree.
func (f *Frame) SetLeg(index int, length float64) {
	if f.kind != KindTripod {
		chk.Panic("frame: SetLeg called on non-Tripod frame %q", f.name)
	}
	if index < 0 || index > 2 {
		chk.Panic("frame: tripod leg index out of range: %d", index)
	}
	f.tripod.legs[index] = length
	f.invalidate()
}

// basePoints returns the three unactuated base points of the tripod, in
// the parent frame's local coordinates, arranged as an isoceles triangle
// of circumscribed radius r and vertex angle α, one vertex on +X.
func basePoints(r, alpha float64) [3]mat.Vec3 {
	// place symmetrically about the X axis in the parent's XY plane
	half := alpha / 2
	return [3]mat.Vec3{
		mat.NewVec3(r, 0, 0),
		mat.NewVec3(r*math.Cos(2*math.Pi/3+half), r*math.Sin(2*math.Pi/3+half), 0),
		mat.NewVec3(r*math.Cos(2*math.Pi/3-half), -r*math.Sin(2*math.Pi/3-half), 0),
	}
}

// recalculateTripod implements spec.md §4.1's algorithm: given the leg
// lengths and the base triangle, it lifts each base point by its leg
// length along parent-Z, builds the tilted triangle's normal and the
// rotation that carries world-Z onto it, and sets the new center to the
// tilted triangle's circumcentre.
func (f *Frame) recalculateTripod() {
	p := f.parent
	t := f.tripod
	base := basePoints(t.radius, t.alpha)

	var tip [3]mat.Vec3
	for i := 0; i < 3; i++ {
		tip[i] = base[i].Add(mat.NewVec3(0, 0, t.legs[i]))
	}

	v1 := tip[1].Sub(tip[0])
	v2 := tip[2].Sub(tip[0])
	cross := v1.Cross(v2)
	normNorm := cross.Norm()

	if normNorm < 1e-12 {
		// degenerate: v1, v2 colinear. Retain the previous pose
		// (spec.md §4.1 "Failure semantics"); if there is no previous
		// pose yet, fall back to the parent's own pose untilted.
		if t.haveLast {
			f.orientation = t.lastOrient
			f.center = t.lastCenter
			return
		}
		f.orientation = p.orientation
		f.center = p.orientation.MulVec(circumcentre(base)).Add(p.center)
		return
	}

	nt := cross.Scale(1 / normNorm)
	zhat := mat.UnitZ
	k := zhat.Cross(nt).Neg()
	costheta := nt.Dot(zhat)
	var R mat.Matrix3
	if k.Norm() < 1e-12 {
		// nt already aligned (or anti-aligned) with Z
		if costheta > 0 {
			R = mat.Identity3()
		} else {
			R = mat.Rotation(mat.UnitX, math.Pi)
		}
	} else {
		sintheta := math.Sqrt(1 - costheta*costheta)
		R = mat.Rotation(k, math.Atan2(sintheta, costheta))
	}

	cc := circumcentre(tip)
	f.orientation = p.orientation.Mul(R)
	f.center = p.orientation.MulVec(cc).Add(p.center)

	t.lastNormal, t.lastCenter, t.lastOrient, t.haveLast = nt, f.center, f.orientation, true
}

// circumcentre returns the circumcentre of the triangle formed by three
// points assumed (by construction) to be non-collinear.
func circumcentre(p [3]mat.Vec3) mat.Vec3 {
	// Solve via the standard vector formula in the triangle's plane.
	a := p[1].Sub(p[0])
	b := p[2].Sub(p[0])
	crossAB := a.Cross(b)
	denom := 2 * crossAB.Dot(crossAB)
	if denom < 1e-24 {
		// caller already checked for degeneracy; this is just a guard
		return p[0]
	}
	term1 := crossAB.Cross(a).Scale(b.Dot(b))
	term2 := b.Cross(crossAB).Scale(a.Dot(a))
	num := term1.Add(term2)
	return p[0].Add(num.Scale(1 / denom))
}
