// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbeam

import "github.com/cpmech/rayzal/mat"

// Ray is the scalar form used at I/O boundaries (spec.md §3): one row of
// a RayBeam, materialised for rendering, logging or detector hand-off.
type Ray struct {
	Origin       mat.Vec3
	Direction    mat.Vec3
	Length       float64
	CumOptLength float64
	RefNdx       float64
	Wavelength   float64
	Amplitude    mat.Complex
	ID           uint32
	Intercepted  bool
	Chief        bool
}

// ExtractFlags selects what ExtractRays copies out (spec.md §4.5).
type ExtractFlags struct {
	FromDestination bool // false: origin POV, true: destination POV
	World           bool // not read by ExtractRays: rays are always copied in the beam's current coordinates (see RayBeam.RelativeTo)
	InterceptedOnly bool
	VignettedOnly   bool // "vignetted" = has-ray but not intercepted this stage
	PreserveChief   bool
}

// ExtractRays copies beam rows into Ray records according to flags,
// appending to dest and returning it (spec.md §4.5).
func ExtractRays(beam *RayBeam, dest []Ray, flags ExtractFlags) []Ray {
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		intercepted := beam.Intercepted(i)
		if flags.InterceptedOnly && !intercepted {
			continue
		}
		if flags.VignettedOnly && intercepted {
			continue
		}
		r := Ray{
			Length:       beam.Lengths[i],
			CumOptLength: beam.CumOptLengths[i],
			RefNdx:       beam.RefNdx[i],
			Wavelength:   beam.Wavelengths[i],
			Amplitude:    beam.Amplitude(i),
			ID:           beam.IDs[i],
			Intercepted:  intercepted,
		}
		if flags.PreserveChief {
			r.Chief = beam.Chief(i)
		}
		if flags.FromDestination {
			r.Origin = beam.Destination(i)
		} else {
			r.Origin = beam.Origin(i)
		}
		r.Direction = beam.Direction(i)
		dest = append(dest, r)
	}
	return dest
}
