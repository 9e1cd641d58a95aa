// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import (
	"math"

	"github.com/cpmech/rayzal/rbeam"
)

// Dielectric implements Snell refraction at a boundary between two
// media (spec.md §4.3):
//
//	μ = n_i/n_o
//	v_out = -n × (μ n × v) - n √(1 - (μ n × v)²)
//
// On total internal reflection (the radicand negative) the ray is
// pruned, per spec.md §7 "Geometry degeneracy".
type Dielectric struct {
	NOut float64 // refractive index on the transmitted side
}

// NewDielectric builds a Dielectric interface; params["n"] gives the
// index on the far side of the boundary (default 1.5).
func NewDielectric(params map[string]float64) Interface {
	n := 1.5
	if v, ok := params["n"]; ok {
		n = v
	}
	return Dielectric{NOut: n}
}

func init() { Register("dielectric", NewDielectric) }

// Transmit implements Interface.
func (d Dielectric) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		v := beam.Direction(i)
		n := beam.Normal(i)
		nIn := beam.RefNdx[i]
		nOut := d.NOut
		mu := nIn / nOut

		// n × v, then μ(n × v)
		nxv := n.Cross(v)
		munxv := nxv.Scale(mu)
		radicand := 1 - munxv.Dot(munxv)
		if radicand < 0 {
			beam.Prune(i) // total internal reflection
			continue
		}
		vout := n.Cross(munxv).Neg().Sub(n.Scale(math.Sqrt(radicand)))
		beam.SetDirection(i, vout.Normalize())
		beam.RefNdx[i] = nOut
	}
}

// Name implements Interface.
func (Dielectric) Name() string { return "dielectric" }
