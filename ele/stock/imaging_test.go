// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/detector"
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/trace"
)

// spotAtZ propagates every live ray in beam (held in world coordinates)
// in a straight line to the plane z=zPlane and returns the RMS radius of
// the resulting spot about its centroid (spec.md §8 testable property 7).
func spotAtZ(beam *rbeam.RayBeam, zPlane float64) float64 {
	s := &detector.Scatter{}
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		o, d := beam.Origin(i), beam.Direction(i)
		if math.Abs(d.Z) < 1e-15 {
			continue
		}
		t := (zPlane - o.Z) / d.Z
		p := o.Add(d.Scale(t))
		s.Add(p.X, p.Y)
	}
	return s.RMSRadius()
}

// TestConicLensFocusesParallelRaysNearFocalLength traces a fan of
// axis-parallel rays through a ConicLens's two dielectric surfaces
// (spec.md §8 scenarios D/E: imaging through a ConicLens) and checks
// that the spot near the nominal focal plane is much tighter than one
// formed well away from it — the module's version of testable property
// 7 ("a converging system forms its tightest spot at the paraxial
// focus").
func TestConicLensFocusesParallelRaysNearFocalLength(tst *testing.T) {
	chk.PrintTitle("ConicLensFocusesParallelRaysNearFocalLength")
	world := frame.NewWorld()
	const focal = 0.2
	el, err := ele.New("ConicLens", world, "lens", map[string]float64{
		"diameter": 0.05, "focal": focal, "n": 1.5, "thickness": 0.01,
	})
	if err != nil {
		tst.Fatal(err)
	}
	world.Recalculate()

	surfs := el.Surfaces()
	if len(surfs) != 2 {
		tst.Fatalf("expected 2 surfaces (front, back), got %d", len(surfs))
	}
	stages := make([]trace.Stage, len(surfs))
	for i, s := range surfs {
		stages[i] = trace.Stage{Name: s.Name, Boundary: s.Boundary, Frame: s.Frame}
	}

	const n = 9
	beam := rbeam.New(n)
	for i := 0; i < n; i++ {
		r := 0.003 * float64(i-n/2)
		beam.Seed(i, mat.NewVec3(r, 0, -0.05), mat.NewVec3(0, 0, 1), 0.5, 1.0, uint32(i+1))
	}

	engine := trace.New(nil)
	if ok := engine.Sequential(beam, stages); !ok {
		tst.Fatal("expected sequential trace through the lens to complete")
	}
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			tst.Fatalf("ray %d unexpectedly pruned by the lens", i)
		}
	}

	// back surface sits at local z=thickness on the lens's own mount
	// frame, which here coincides with world z=0; the nominal image
	// plane is one focal length beyond it.
	const thickness = 0.01
	atFocus := spotAtZ(beam, thickness+focal)
	wellShort := spotAtZ(beam, thickness+focal*0.2)
	wellPast := spotAtZ(beam, thickness+focal*2)

	if atFocus >= wellShort {
		tst.Fatalf("expected spot at focus (%.6g) to be tighter than well short of it (%.6g)", atFocus, wellShort)
	}
	if atFocus >= wellPast {
		tst.Fatalf("expected spot at focus (%.6g) to be tighter than well past it (%.6g)", atFocus, wellPast)
	}
}
