// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import (
	"math"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/rayzal/rbeam"
)

// TransmissionMap turns any interface into a probabilistic absorber
// (spec.md §4.3): per ray, it looks up a 2D width x height transmission
// grid at the hit's local (x,y) and prunes with probability 1-map[i,j].
// Values outside [0,1] are clamped at construction time. It wraps an
// inner Interface so transmission can be composed with e.g. a dielectric
// boundary that also bends the ray.
type TransmissionMap struct {
	Width, Height int
	Stride        int
	Data          []float64 // row-major, len >= Stride*Height
	HalfW, HalfH  float64   // physical half-extents the grid spans, for (x,y)->(i,j)
	Inner         Interface
}

// NewTransmissionMapFromGrid builds a TransmissionMap wrapping inner,
// clamping every sample to [0,1].
func NewTransmissionMapFromGrid(width, height, stride int, data []float64, halfW, halfH float64, inner Interface) *TransmissionMap {
	clamped := make([]float64, len(data))
	for i, v := range data {
		clamped[i] = math.Max(0, math.Min(1, v))
	}
	return &TransmissionMap{Width: width, Height: height, Stride: stride, Data: clamped, HalfW: halfW, HalfH: halfH, Inner: inner}
}

// NewScalarTransmission builds a TransmissionMap-equivalent single
// coefficient absorber: τ=0 prunes every intercepted ray, τ=1 is
// transparent (spec.md §4.3).
func NewScalarTransmission(tau float64, inner Interface) *TransmissionMap {
	return &TransmissionMap{Width: 1, Height: 1, Stride: 1, Data: []float64{math.Max(0, math.Min(1, tau))}, HalfW: 1, HalfH: 1, Inner: inner}
}

func (t *TransmissionMap) sampleAt(x, y float64) float64 {
	if t.Width == 1 && t.Height == 1 {
		return t.Data[0]
	}
	i := int((x/t.HalfW + 1) / 2 * float64(t.Width))
	j := int((y/t.HalfH + 1) / 2 * float64(t.Height))
	if i < 0 || i >= t.Width || j < 0 || j >= t.Height {
		return 0
	}
	return t.Data[j*t.Stride+i]
}

// Transmit implements Interface: prunes probabilistically, then (for
// surviving rays) runs the wrapped interface.
func (t *TransmissionMap) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		hit := beam.Destination(i)
		tau := t.sampleAt(hit.X, hit.Y)
		if rnd.Float64(0, 1) > tau {
			beam.Prune(i)
		}
	}
	if t.Inner != nil {
		t.Inner.Transmit(beam, lo, hi)
	}
}

// Name implements Interface.
func (t *TransmissionMap) Name() string { return "transmission" }

// NewAttenuator is the factory registered under "attenuator": a scalar
// transmission coefficient wrapping a Dummy pass-through, for recipes
// that just need a partial absorber without any accompanying refraction.
func NewAttenuator(params map[string]float64) Interface {
	tau := params["tau"]
	return NewScalarTransmission(tau, Dummy{})
}

func init() { Register("attenuator", NewAttenuator) }
