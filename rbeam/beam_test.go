// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbeam

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// fakeFrame is a translated+rotated frame used only to exercise
// ToRelative/FromRelative without pulling in the frame package (which
// would be a pointless dependency for this unit test).
type fakeFrame struct {
	center mat.Vec3
	orient mat.Matrix3
}

func (f fakeFrame) ToLocalPoint(p mat.Vec3) mat.Vec3 { return f.orient.Transpose().MulVec(p.Sub(f.center)) }
func (f fakeFrame) ToLocalDir(v mat.Vec3) mat.Vec3   { return f.orient.Transpose().MulVec(v) }
func (f fakeFrame) ToWorldPoint(p mat.Vec3) mat.Vec3 { return f.orient.MulVec(p).Add(f.center) }
func (f fakeFrame) ToWorldDir(v mat.Vec3) mat.Vec3   { return f.orient.MulVec(v) }

func TestMaskBits(tst *testing.T) {
	chk.PrintTitle("MaskBits")
	b := New(4)
	b.Seed(0, mat.Zero, mat.UnitZ, 0.5e-6, 1.0, 7)
	if !b.HasRay(0) {
		tst.Errorf("seeded ray should have has-ray set")
	}
	if b.Intercepted(0) {
		tst.Errorf("freshly seeded ray should not be intercepted")
	}
	b.SetIntercepted(0, true)
	if !b.Intercepted(0) {
		tst.Errorf("SetIntercepted(true) did not stick")
	}
	b.Prune(0)
	if b.HasRay(0) {
		tst.Errorf("Prune should clear has-ray")
	}
	// pruning must not move or erase data
	chk.Scalar(tst, "wavelength survives prune", 1e-15, b.Wavelengths[0], 0.5e-6)
}

func TestFrameRoundTrip(tst *testing.T) {
	chk.PrintTitle("FrameRoundTrip")
	b := New(3)
	for i := 0; i < 3; i++ {
		b.Seed(i, mat.NewVec3(float64(i), 0, -1), mat.UnitZ, 1e-6, 1, uint32(i))
	}
	f := fakeFrame{center: mat.NewVec3(1, 2, 3), orient: mat.Rotation(mat.UnitY, math.Pi/7)}
	want0 := b.Origin(0)

	b.ToRelative("surf", f)
	b.FromRelative(f)

	got0 := b.Origin(0)
	if !want0.ApproxEqual(got0) {
		tst.Errorf("round trip not idempotent: got %v want %v", got0, want0)
	}
}

func TestSeedGivesUnitAmplitude(tst *testing.T) {
	chk.PrintTitle("SeedGivesUnitAmplitude")
	b := New(1)
	b.Seed(0, mat.Zero, mat.UnitZ, 1e-6, 1, 0)
	a := b.Amplitude(0)
	if a == 0 {
		tst.Errorf("live ray must carry non-zero amplitude")
	}
}
