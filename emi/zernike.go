// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import (
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/zernike"
)

// ZernikePhase treats a Zernike expansion as an equivalent surface
// height and refracts against its locally-tilted normal (spec.md §4.3):
//
//	Vx = ex + z * dZ/dx / R
//	Vy = ey + z * dZ/dy / R
//	n  = normalize(Vy × Vx)
//
// followed by ordinary Snell refraction with that tilted normal.
type ZernikePhase struct {
	Radius     float64
	Expansion  zernike.Expansion
	Dielectric Dielectric
}

// NewZernikePhase builds a ZernikePhase interface from params["R"] (the
// normalization radius) and params["n"] (the index on the far side); the
// coefficient expansion itself is set separately via SetCoefficients
// since it is a sparse map, not a single scalar parameter.
func NewZernikePhase(params map[string]float64) Interface {
	return &ZernikePhase{
		Radius:     params["R"],
		Expansion:  zernike.Expansion{},
		Dielectric: NewDielectric(params).(Dielectric),
	}
}

func init() { Register("zernike", NewZernikePhase) }

// SetCoefficients replaces the Zernike coefficient map (ANSI index -> aᵢ).
func (z *ZernikePhase) SetCoefficients(coeffs map[int]float64) {
	z.Expansion = zernike.Expansion(coeffs)
}

// Transmit implements Interface.
func (z *ZernikePhase) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		hit := beam.Destination(i)
		x, y := hit.X/z.Radius, hit.Y/z.Radius
		_, dzdx, dzdy := z.Expansion.Eval(x, y)

		vx := mat.UnitX.Add(mat.UnitZ.Scale(dzdx / z.Radius))
		vy := mat.UnitY.Add(mat.UnitZ.Scale(dzdy / z.Radius))
		cross := vy.Cross(vx)
		if cross.Norm() < 1e-12 {
			beam.SetNormal(i, mat.UnitZ)
			continue
		}
		n := cross.Normalize()
		v := beam.Direction(i)
		n = orientForIncoming(n, v)
		beam.SetNormal(i, n)
	}
	z.Dielectric.Transmit(beam, lo, hi)
}

// orientForIncoming flips n to face the incoming ray, the same
// convention shape.orientTowardSource follows.
func orientForIncoming(n, v mat.Vec3) mat.Vec3 {
	if n.Dot(v) > 0 {
		return n.Neg()
	}
	return n
}

// Name implements Interface.
func (z *ZernikePhase) Name() string { return "zernike" }
