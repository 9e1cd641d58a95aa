// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package trace implements the ray-tracing engine (spec.md §4.5): a
// sequential mode that walks a fixed ordered path of surfaces, and a
// non-sequential mode that asks a pluggable Heuristic which surfaces a
// beam currently "sees" and adopts the nearest positive hit per ray.
package trace

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/boundary"
	"github.com/cpmech/rayzal/rbeam"
)

// progressInterval is how often (in rays processed) the engine polls a
// Listener for cancellation inside a single stage, per spec.md §5:
// "polls ... every O(1024) rays".
const progressInterval = 1024

// Listener receives cancellation checks and progress notifications
// during a trace (spec.md §4.5 "Cancellation and progress"). Cancelled
// is polled at every stage boundary and every progressInterval rays
// within a stage; Progress is rate-limited by the listener itself (the
// engine does not throttle calls beyond the stage/ray-count intervals
// above).
type Listener interface {
	Cancelled() bool
	Progress(stage string, done, total int)
}

// noopListener never cancels and ignores progress; used when a caller
// passes a nil Listener.
type noopListener struct{}

func (noopListener) Cancelled() bool                        { return false }
func (noopListener) Progress(stage string, done, total int) {}

func listenerOrNoop(l Listener) Listener {
	if l == nil {
		return noopListener{}
	}
	return l
}

// Stage is one named, ordered step of a sequential optical path.
type Stage struct {
	Name     string
	Boundary *boundary.MediumBoundary
	Frame    rbeam.FrameOps
}

// StageStat is one stage's per-surface statistics (spec.md §4.5 "collect
// per-s statistics"), accumulated in trace order (spec.md §5 "Per-surface
// statistics are accumulated in-order").
type StageStat struct {
	Name        string
	Live        int // rays with has-ray set when this stage was cast
	Intercepted int // of those, how many the stage's shape accepted
}

// Engine drives a beam through a sequence of stages (spec.md §4.5).
type Engine struct {
	Listener Listener
	Stats    []StageStat
}

// New builds an Engine; a nil listener is accepted (no cancellation, no
// progress reporting).
func New(listener Listener) *Engine {
	return &Engine{Listener: listenerOrNoop(listener)}
}

// Sequential traces beam through path in order (spec.md §4.5 "Sequential
// trace"). It returns false if the listener requested cancellation
// between stages; the beam is left in whatever partial state the last
// completed stage produced (spec.md §5 "Cancel between stages is always
// safe"). A cancellation seen inside a stage's cast stops that cast
// early; the stage is still transmitted with the rays cast so far, and
// Sequential returns false at the next stage boundary if the listener
// still reports cancellation.
func (e *Engine) Sequential(beam *rbeam.RayBeam, path []Stage) bool {
	beam.Mode = rbeam.Sequential
	e.Stats = e.Stats[:0]
	for _, s := range path {
		if e.Listener.Cancelled() {
			return false
		}
		live := beam.LiveCount()
		e.castTo(beam, s)
		e.Listener.Progress(s.Name, beam.N, beam.N)
		e.Stats = append(e.Stats, StageStat{Name: s.Name, Live: live, Intercepted: beam.InterceptedCount()})
		e.transmitThrough(beam, s)
		updateOrigins(beam)
	}
	return true
}

// castTo implements spec.md §4.5's castTo: pulls the beam into the
// stage's frame and marks intercepts, pruning rays whose solved t is
// non-positive at the shape level (shape.Intercept already enforces
// t>0, so a "miss" here just means the intercepted bit stays clear; a
// ray with has-ray but no intercept this stage becomes "vignetted").
func (e *Engine) castTo(beam *rbeam.RayBeam, s Stage) {
	beam.ToRelative(s.Name, s.Frame)
	beam.ClearIntercepted()
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		if i > 0 && i%progressInterval == 0 && e.Listener.Cancelled() {
			return
		}
		hit, ok := s.Boundary.Surface.Intercept(beam.Origin(i), beam.Direction(i))
		if !ok {
			continue
		}
		beam.SetDestination(i, hit.Point)
		beam.SetNormal(i, hit.Normal)
		length := hit.Point.Sub(beam.Origin(i)).Norm()
		beam.Lengths[i] = length
		beam.CumOptLengths[i] += length * beam.RefNdx[i]
		beam.Surfaces[i] = s.Name
		beam.SetIntercepted(i, true)
	}
}

// transmitThrough implements spec.md §4.5's transmitThrough:
// interface.transmit() over the whole beam, then back to world
// coordinates.
func (e *Engine) transmitThrough(beam *rbeam.RayBeam, s Stage) {
	if s.Boundary.Optics == nil {
		chk.Panic("trace: stage %q has no EM interface", s.Name)
	}
	s.Boundary.Optics.Transmit(beam, 0, beam.N)
	beam.FromRelative(s.Frame)
}

// updateOrigins implements spec.md §4.5's updateOrigins: every
// intercepted ray's origin becomes its destination; a ray that was not
// intercepted keeps its origin and direction, so it simply keeps
// traveling in a straight line (spec.md §7 "Numeric non-hit").
func updateOrigins(beam *rbeam.RayBeam) {
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		if beam.Intercepted(i) {
			beam.SetOrigin(i, beam.Destination(i))
		}
	}
}
