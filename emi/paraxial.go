// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import "github.com/cpmech/rayzal/rbeam"

// Paraxial implements the ideal-lens EM interface (spec.md §4.3): the
// outgoing direction is redirected to converge toward the focal point
// f*Z in the surface frame, regardless of the incoming ray's angle (the
// thin-lens idealisation used for fast system layout before swapping in
// a real Conic surface).
type Paraxial struct {
	Focal float64
}

// NewParaxial builds a Paraxial (ideal-lens) interface; params["f"] is
// the focal length.
func NewParaxial(params map[string]float64) Interface {
	return Paraxial{Focal: params["f"]}
}

func init() { Register("paraxial", NewParaxial) }

// Transmit implements Interface.
func (p Paraxial) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		hit := beam.Destination(i)
		target := hit
		target.X, target.Y, target.Z = 0, 0, p.Focal
		dir := target.Sub(hit).Normalize()
		beam.SetDirection(i, dir)
	}
}

// Name implements Interface.
func (Paraxial) Name() string { return "paraxial" }
