// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
)

// Heuristic decides, per propagation, which surfaces a beam currently
// "sees" (spec.md §4.5, §9 "Global state": "the heuristic registry"). A
// non-sequential trace calls VisibleSurfaces once per propagation round
// with the main beam in its current (world) coordinates.
type Heuristic interface {
	VisibleSurfaces(beam *rbeam.RayBeam, all []Stage) []Stage
}

// DummyHeuristic is the only heuristic spec.md's source ships (§9 "the
// source contains a 'dummy' heuristic only"): every surface is always
// visible.
type DummyHeuristic struct{}

// VisibleSurfaces implements Heuristic.
func (DummyHeuristic) VisibleSurfaces(beam *rbeam.RayBeam, all []Stage) []Stage { return all }

// NonSequential repeatedly asks heuristic which surfaces are visible,
// races each ray against every visible surface and adopts the nearest
// positive hit, until no ray advances or maxPropagations is reached
// (spec.md §4.5 "Non-sequential trace"). It returns the number of
// propagation rounds actually run.
func (e *Engine) NonSequential(beam *rbeam.RayBeam, all []Stage, heuristic Heuristic, maxPropagations int) int {
	beam.Mode = rbeam.NonSequential
	if heuristic == nil {
		heuristic = DummyHeuristic{}
	}

	round := 0
	for ; round < maxPropagations; round++ {
		if e.Listener.Cancelled() {
			return round
		}
		visible := heuristic.VisibleSurfaces(beam, all)
		ns := newCandidateBeam(beam.N)

		for _, s := range visible {
			updateVisibleCandidates(ns, beam, s)
		}

		advanced := adoptCandidates(beam, ns)
		e.Listener.Progress("non-sequential", round+1, maxPropagations)
		if !advanced {
			return round + 1
		}
		for _, s := range visible {
			transmitTagged(beam, s)
		}
		updateOrigins(beam)
	}
	return round
}

// candidateBeam tracks, per ray, the nearest positive-t candidate found
// this round across every visible surface.
type candidateBeam struct {
	hasCandidate []bool
	length       []float64
	destination  []mat.Vec3
	normal       []mat.Vec3
	surface      []string
}

func newCandidateBeam(n int) *candidateBeam {
	return &candidateBeam{
		hasCandidate: make([]bool, n),
		length:       make([]float64, n),
		destination:  make([]mat.Vec3, n),
		normal:       make([]mat.Vec3, n),
		surface:      make([]string, n),
	}
}

// updateVisibleCandidates tests every live ray in beam (held in world
// coordinates between rounds) against s's boundary using Visible's
// non-mutating probe — spec.md §4.5's "race each ray against every
// visible surface" — and adopts the result into ns if it is nearer than
// any candidate already recorded for that ray this round.
func updateVisibleCandidates(ns *candidateBeam, beam *rbeam.RayBeam, s Stage) {
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		origin := beam.Origin(i)
		hit, ok := s.Boundary.Visible(origin, beam.Direction(i), s.Frame)
		if !ok {
			continue
		}
		length := hit.Point.Sub(origin).Norm()
		if ns.hasCandidate[i] && ns.length[i] <= length {
			continue
		}
		ns.hasCandidate[i] = true
		ns.length[i] = length
		ns.destination[i] = hit.Point
		ns.normal[i] = hit.Normal
		ns.surface[i] = s.Name
	}
}

// adoptCandidates writes each ray's winning candidate (if any) back into
// beam's destination/normal/lengths/surface tag; returns whether at
// least one ray advanced this round.
func adoptCandidates(beam *rbeam.RayBeam, ns *candidateBeam) bool {
	advanced := false
	beam.ClearIntercepted()
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) || !ns.hasCandidate[i] {
			continue
		}
		beam.SetDestination(i, ns.destination[i])
		beam.SetNormal(i, ns.normal[i])
		beam.Lengths[i] = ns.length[i]
		beam.CumOptLengths[i] += ns.length[i] * beam.RefNdx[i]
		beam.Surfaces[i] = ns.surface[i]
		beam.SetIntercepted(i, true)
		advanced = true
	}
	return advanced
}

// transmitTagged runs s's interface over every ray currently tagged with
// s.Name, implementing spec.md §4.5's transmitThroughIntercepted: "for
// each ray in the beam, transmit through the surface it was tagged
// with". Since Interface.Transmit expects a contiguous [lo,hi) range but
// tagged rays may be scattered, untagged rays are masked out of
// Intercepted for the call and restored after.
func transmitTagged(beam *rbeam.RayBeam, s Stage) {
	saved := make([]bool, beam.N)
	for i := 0; i < beam.N; i++ {
		saved[i] = beam.Intercepted(i)
		if beam.Surfaces[i] != s.Name {
			beam.SetIntercepted(i, false)
		}
	}
	beam.ToRelative(s.Name, s.Frame)
	s.Boundary.Optics.Transmit(beam, 0, beam.N)
	beam.FromRelative(s.Frame)
	for i := 0; i < beam.N; i++ {
		if beam.Surfaces[i] != s.Name {
			beam.SetIntercepted(i, saved[i])
		}
	}
}

