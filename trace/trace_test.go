// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/boundary"
	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/shape"
)

// flatDetector builds a single-stage path: a large circular dummy
// surface sitting at world z=d, mirroring spec.md §8 testable property
// 5 ("flat detector at z=d ... every ray's final destination satisfies
// z=d").
func flatDetector(world *frame.Frame, d float64) Stage {
	f := frame.Translated(world, "detector", mat.NewVec3(0, 0, d))
	dummy, err := emi.New("dummy", nil)
	if err != nil {
		panic(err)
	}
	surface := shape.NewCircular(10, 0, false)
	mb := boundary.New("detector.front", surface, dummy, false)
	return Stage{Name: "detector", Boundary: mb, Frame: f}
}

func TestSequentialRayReachesFlatDetectorAtZ(tst *testing.T) {
	chk.PrintTitle("SequentialRayReachesFlatDetectorAtZ")
	world := frame.NewWorld()
	const d = 2.5
	stage := flatDetector(world, d)
	world.Recalculate()

	beam := rbeam.New(3)
	beam.Seed(0, mat.NewVec3(0, 0, 0), mat.NewVec3(0, 0, 1), 0.5, 1.0, 1)
	beam.Seed(1, mat.NewVec3(1, 0, 0), mat.NewVec3(0.1, 0, 1), 0.5, 1.0, 2)
	beam.Seed(2, mat.NewVec3(-2, 1, 0), mat.NewVec3(0, 0, 1), 0.5, 1.0, 3)

	engine := New(nil)
	ok := engine.Sequential(beam, []Stage{stage})
	if !ok {
		tst.Fatal("expected sequential trace to complete")
	}

	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			tst.Fatalf("ray %d unexpectedly pruned", i)
		}
		if !beam.Intercepted(i) {
			tst.Fatalf("ray %d should have hit the detector", i)
		}
		dest := beam.Destination(i)
		chk.Scalar(tst, "destination z", 1e-9, dest.Z, d)
		if beam.Lengths[i] < d-1e-9 {
			tst.Fatalf("ray %d travelled less than the axial distance: %v", i, beam.Lengths[i])
		}
	}
}

func TestSequentialCancellationStopsBetweenStages(tst *testing.T) {
	chk.PrintTitle("SequentialCancellationStopsBetweenStages")
	world := frame.NewWorld()
	s1 := flatDetector(world, 1)
	s2 := flatDetector(world, 2)
	world.Recalculate()

	beam := rbeam.New(1)
	beam.Seed(0, mat.NewVec3(0, 0, 0), mat.NewVec3(0, 0, 1), 0.5, 1.0, 1)

	engine := New(&cancelAfter{n: 1})
	ok := engine.Sequential(beam, []Stage{s1, s2})
	if ok {
		tst.Fatal("expected cancellation to stop the trace early")
	}
	dest := beam.Destination(0)
	chk.Scalar(tst, "destination z after one stage", 1e-9, dest.Z, 1)
}

// cancelAfter cancels once Cancelled has been polled n times, letting a
// test stop a multi-stage trace partway through.
type cancelAfter struct {
	n     int
	calls int
}

func (c *cancelAfter) Cancelled() bool {
	c.calls++
	return c.calls > c.n
}

func (c *cancelAfter) Progress(stage string, done, total int) {}

// facingMirror builds a flat reflective stage perpendicular to the
// optical axis at world z=d.
func facingMirror(world *frame.Frame, name string, d float64) Stage {
	f := frame.Translated(world, name, mat.NewVec3(0, 0, d))
	reflective, err := emi.New("reflective", nil)
	if err != nil {
		panic(err)
	}
	surface := shape.NewCircular(10, 0, false)
	mb := boundary.New(name+".front", surface, reflective, false)
	return Stage{Name: name, Boundary: mb, Frame: f}
}

func TestNonSequentialTwoFacingMirrorsAllRaysIntercepted(tst *testing.T) {
	chk.PrintTitle("NonSequentialTwoFacingMirrorsAllRaysIntercepted")
	world := frame.NewWorld()
	m1 := facingMirror(world, "m1", 0)
	m2 := facingMirror(world, "m2", 1)
	world.Recalculate()

	const n = 1000
	beam := rbeam.New(n)
	for i := 0; i < n; i++ {
		x := float64(i%10) * 0.01
		y := float64(i/10%10) * 0.01
		beam.Seed(i, mat.NewVec3(x, y, 0.5), mat.NewVec3(0, 0, 1), 0.5, 1.0, uint32(i+1))
	}

	engine := New(nil)
	rounds := engine.NonSequential(beam, []Stage{m1, m2}, nil, 8)
	if rounds < 1 {
		tst.Fatal("expected at least one propagation round")
	}

	vignetted, intercepted := 0, 0
	for i := 0; i < n; i++ {
		if !beam.HasRay(i) {
			vignetted++
			continue
		}
		if beam.Intercepted(i) {
			intercepted++
		}
	}
	if vignetted != 0 {
		tst.Fatalf("expected 0 vignetted rays between two facing mirrors, got %d", vignetted)
	}
	if intercepted != n {
		tst.Fatalf("expected all %d rays intercepted on the final round, got %d", n, intercepted)
	}
}

func TestNonSequentialDummyHeuristicMatchesSequential(tst *testing.T) {
	chk.PrintTitle("NonSequentialDummyHeuristicMatchesSequential")
	world := frame.NewWorld()
	const d = 1.5
	stage := flatDetector(world, d)
	world.Recalculate()

	beam := rbeam.New(2)
	beam.Seed(0, mat.NewVec3(0, 0, 0), mat.NewVec3(0, 0, 1), 0.5, 1.0, 1)
	beam.Seed(1, mat.NewVec3(0.3, -0.2, 0), mat.NewVec3(0, 0, 1), 0.5, 1.0, 2)

	engine := New(nil)
	rounds := engine.NonSequential(beam, []Stage{stage}, nil, 4)
	if rounds < 1 {
		tst.Fatal("expected at least one propagation round")
	}
	// after convergence no surface advances the beam further, so
	// Intercepted (which is stage/round-scoped, cleared at the top of
	// every round) need not still be set; what must hold is that the
	// beam actually reached the detector plane and was not pruned.
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			tst.Fatalf("ray %d unexpectedly pruned", i)
		}
		dest := beam.Destination(i)
		chk.Scalar(tst, "non-sequential destination z", 1e-9, dest.Z, d)
	}
}
