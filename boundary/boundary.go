// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package boundary implements the medium boundary: the pairing of one
// surface shape with one EM interface behind a single name (spec.md §3,
// §4.4). It is the unit the tracing engine actually walks: a
// MediumBoundary knows how to pull a beam into its own frame, run the
// shape's intercept test against every ray, hand the survivors to the
// interface, and push the beam back out to world coordinates.
package boundary

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/shape"
)

// MediumBoundary couples a shape.Shape with an emi.Interface under a
// stable name (spec.md §4.4). Reversible marks boundaries that must be
// tested for intercept regardless of which side the ray approaches from
// (e.g. a free-standing obstruction rather than a lens surface that only
// ever faces one way along the optical path).
type MediumBoundary struct {
	Name       string
	Surface    shape.Shape
	Optics     emi.Interface
	Reversible bool
}

// New builds a named boundary from a shape and an interface. Either may
// be nil only transiently during recipe construction; Transfer panics if
// called before both are set (spec.md §9: "a boundary with a missing
// half is a construction bug, not a runtime condition").
func New(name string, surface shape.Shape, optics emi.Interface, reversible bool) *MediumBoundary {
	return &MediumBoundary{Name: name, Surface: surface, Optics: optics, Reversible: reversible}
}

// Transfer implements spec.md §4.4's four-step boundary-crossing
// algorithm over the ray range [lo,hi) of beam, expressed in the given
// frame:
//
//  1. beam.ToRelative(frame) — pull origins/directions into the
//     boundary's local coordinates.
//  2. per ray: shape.Intercept(origin, direction); on a hit, advance the
//     ray's destination/normal, store the segment's geometric length in
//     Lengths and add its optical length to CumOptLengths; on a miss, clear the intercepted bit and leave the ray
//     where it was (spec.md §4.4: "a miss does not prune — only an
//     interface decides that").
//  3. interface.Transmit over the same range, touching only the rays the
//     shape just marked intercepted.
//  4. beam.FromRelative(frame) — push the beam back to world
//     coordinates.
func (mb *MediumBoundary) Transfer(beam *rbeam.RayBeam, frame rbeam.FrameOps, lo, hi int) {
	if mb.Surface == nil || mb.Optics == nil {
		chk.Panic("boundary %q: Transfer called with a missing shape or interface", mb.Name)
	}
	beam.ToRelative(mb.Name, frame)
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) {
			continue
		}
		beam.SetIntercepted(i, false)
		origin := beam.Origin(i)
		direction := beam.Direction(i)
		hit, ok := mb.Surface.Intercept(origin, direction)
		if !ok {
			continue
		}
		beam.SetDestination(i, hit.Point)
		beam.SetNormal(i, hit.Normal)
		length := hit.Point.Sub(origin).Norm()
		beam.Lengths[i] = length
		beam.CumOptLengths[i] += length * beam.RefNdx[i]
		beam.Surfaces[i] = mb.Name
		beam.SetIntercepted(i, true)
	}
	mb.Optics.Transmit(beam, lo, hi)
	beam.FromRelative(frame)
}

// Visible reports, for non-sequential tracing, whether ray i currently
// has a valid forward intercept against this boundary without mutating
// the beam — used by the engine's nearest-positive-hit search (spec.md
// §4.5) to pick which boundary a ray actually reaches next.
func (mb *MediumBoundary) Visible(origin, direction mat.Vec3, frame rbeam.FrameOps) (hit shape.Hit, ok bool) {
	localOrigin := frame.ToLocalPoint(origin)
	localDirection := frame.ToLocalDir(direction)
	hit, ok = mb.Surface.Intercept(localOrigin, localDirection)
	if !ok {
		return shape.Hit{}, false
	}
	hit.Point = frame.ToWorldPoint(hit.Point)
	hit.Normal = frame.ToWorldDir(hit.Normal)
	return hit, true
}
