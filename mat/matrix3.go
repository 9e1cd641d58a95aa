// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "math"

// Matrix3 is a 3x3 matrix stored row-major; it represents the orientation
// of a reference frame (an element of SO(3) when built by Rotation/AzEl) or
// a general cross-product / rotation operator.
type Matrix3 struct {
	M [3][3]float64
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	var m Matrix3
	m.M[0][0], m.M[1][1], m.M[2][2] = 1, 1, 1
	return m
}

// MulVec returns M*v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// Mul returns the matrix product m*n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m.M[i][k] * n.M[k][j]
			}
			r.M[i][j] = s
		}
	}
	return r
}

// Transpose returns mᵗ.
func (m Matrix3) Transpose() Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[j][i]
		}
	}
	return r
}

// CrossMatrix returns K such that K*v == k.Cross(v) for all v (the
// skew-symmetric cross-product matrix of k).
func CrossMatrix(k Vec3) Matrix3 {
	var m Matrix3
	m.M[0][1], m.M[0][2] = -k.Z, k.Y
	m.M[1][0], m.M[1][2] = k.Z, -k.X
	m.M[2][0], m.M[2][1] = -k.Y, k.X
	return m
}

// Rotation returns R(axis, angle), the rotation of `angle` radians about
// `axis` (need not be unit-length; it is normalized internally), built
// with the Rodrigues formula R = I + sinθ K + (1-cosθ) K², matching the
// teacher's tensor-building style (see msolid's use of cross-product
// operators for yield-surface normals).
func Rotation(axis Vec3, angle float64) Matrix3 {
	k := axis.Normalize()
	K := CrossMatrix(k)
	s, c := math.Sin(angle), math.Cos(angle)
	I := Identity3()
	KK := K.Mul(K)
	return addScaled(addScaled(I, K, s), KK, 1-c)
}

func addScaled(a, b Matrix3, s float64) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = a.M[i][j] + s*b.M[i][j]
		}
	}
	return r
}

// AzEl builds the orientation obtained by rotating the world frame first
// by azimuth about Z then by elevation about the (rotated) X axis; used
// by recipe contexts that specify orientation as (az, el) instead of an
// axis/angle pair.
func AzEl(az, el float64) Matrix3 {
	return Rotation(UnitZ, az).Mul(Rotation(UnitX, el))
}

// ApproxEqual reports whether m and n agree within RelTol.
func (m Matrix3) ApproxEqual(n Matrix3) bool {
	var diff, scale float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := m.M[i][j] - n.M[i][j]
			diff += d * d
			scale = math.Max(scale, math.Max(math.Abs(m.M[i][j]), math.Abs(n.M[i][j])))
		}
	}
	return math.Sqrt(diff) <= RelTol*math.Max(1.0, scale)
}
