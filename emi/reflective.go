// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import "github.com/cpmech/rayzal/rbeam"

// Reflective implements a perfect mirror: v' = v - 2(v.n)n, refractive
// index unchanged (spec.md §4.3).
type Reflective struct{}

// NewReflective builds a Reflective interface.
func NewReflective(map[string]float64) Interface { return Reflective{} }

func init() { Register("reflective", NewReflective) }

// Transmit implements Interface.
func (Reflective) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		v := beam.Direction(i)
		n := beam.Normal(i)
		vn := v.Dot(n)
		vout := v.Sub(n.Scale(2 * vn))
		beam.SetDirection(i, vout.Normalize())
	}
}

// Name implements Interface.
func (Reflective) Name() string { return "reflective" }
