// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the small, fixed-size linear algebra used by the
// reference-frame graph, the surface shapes and the ray beam: 3-vectors,
// 3x3 matrices and the complex scalar used for bookkeeping amplitudes.
package mat

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// RelTol is the relative tolerance used by the approximate equality checks
// below; it is scaled to unit-length vectors/matrices as described in
// spec.md §3 ("approximate, relative tolerance ~1e-12 on unit scale").
const RelTol = 1e-12

// Vec3 is a 3-component Euclidean vector.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a Vec3 from three scalars.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray copies a 3-element slice into a Vec3. Panics if len(a) != 3.
func FromArray(a []float64) Vec3 {
	if len(a) != 3 {
		chk.Panic("mat: FromArray requires a 3-element slice; got %d", len(a))
	}
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// ToArray copies v into a (pre-allocated) 3-element slice.
func (v Vec3) ToArray(a []float64) {
	if len(a) != 3 {
		chk.Panic("mat: ToArray requires a 3-element slice; got %d", len(a))
	}
	a[0], a[1], a[2] = v.X, v.Y, v.Z
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns s*v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns v . w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns |v|.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. Panics on a near-zero vector
// since callers (frame/shape normals, beam directions) never expect one.
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n < 1e-300 {
		chk.Panic("mat: cannot normalize a near-zero vector")
	}
	return v.Scale(1.0 / n)
}

// ApproxEqual reports whether v and w agree within RelTol, scaled by the
// larger of the two magnitudes (or absolute RelTol near the origin).
func (v Vec3) ApproxEqual(w Vec3) bool {
	scale := math.Max(1.0, math.Max(v.Norm(), w.Norm()))
	return v.Sub(w).Norm() <= RelTol*scale
}

// IsZero reports whether v is the zero vector within RelTol.
func (v Vec3) IsZero() bool { return v.Norm() <= RelTol }

// World axis constants, used pervasively by the frame graph and the
// azimuth/elevation matrix builder (AzEl, in matrix3.go).
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
	Zero  = Vec3{0, 0, 0}
)
