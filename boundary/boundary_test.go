// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/shape"
)

// identityFrame is a no-op rbeam.FrameOps: the boundary sits at the
// world origin with its surface normal along +Z.
type identityFrame struct{}

func (identityFrame) ToLocalPoint(p mat.Vec3) mat.Vec3 { return p }
func (identityFrame) ToLocalDir(v mat.Vec3) mat.Vec3   { return v }
func (identityFrame) ToWorldPoint(p mat.Vec3) mat.Vec3 { return p }
func (identityFrame) ToWorldDir(v mat.Vec3) mat.Vec3   { return v }

func TestTransferHitsAndReflects(tst *testing.T) {
	chk.PrintTitle("TransferHitsAndReflects")
	mirror, _ := emi.New("reflective", nil)
	mb := New("m1", shape.NewCircular(10, 0, false), mirror, false)

	b := rbeam.New(1)
	b.Seed(0, mat.NewVec3(0, 0, -5), mat.UnitZ, 0.5e-6, 1, 1)
	mb.Transfer(b, identityFrame{}, 0, 1)

	if !b.HasRay(0) || !b.Intercepted(0) {
		tst.Fatal("expected the on-axis ray to hit the mirror")
	}
	dst := b.Destination(0)
	chk.Scalar(tst, "hit at origin plane", 1e-9, dst.Z, 0)
	chk.Scalar(tst, "path length accumulated", 1e-9, b.Lengths[0], 5)
	dir := b.Direction(0)
	chk.Scalar(tst, "reflected back along -z", 1e-12, dir.Z, -1)
}

func TestTransferMissLeavesRayUnpruned(tst *testing.T) {
	chk.PrintTitle("TransferMissLeavesRayUnpruned")
	mirror, _ := emi.New("reflective", nil)
	mb := New("m1", shape.NewCircular(1, 0, false), mirror, false)

	b := rbeam.New(1)
	// aimed well outside the 1-unit aperture
	b.Seed(0, mat.NewVec3(5, 0, -5), mat.UnitZ, 0.5e-6, 1, 1)
	mb.Transfer(b, identityFrame{}, 0, 1)

	if !b.HasRay(0) {
		tst.Fatal("a clean miss must not prune the ray")
	}
	if b.Intercepted(0) {
		tst.Fatal("a clean miss must not set the intercepted bit")
	}
}

func TestTransferPrunesOnTotalInternalReflection(tst *testing.T) {
	chk.PrintTitle("TransferPrunesOnTotalInternalReflection")
	glass, _ := emi.New("dielectric", map[string]float64{"n": 1.0})
	mb := New("d1", shape.NewCircular(10, 0, false), glass, false)

	b := rbeam.New(1)
	steep := mat.NewVec3(0.99, 0, 0.141).Normalize()
	b.Seed(0, mat.NewVec3(0, 0, -1), steep, 0.5e-6, 1.5, 1)
	mb.Transfer(b, identityFrame{}, 0, 1)

	if b.HasRay(0) {
		tst.Fatal("expected total internal reflection to prune the ray")
	}
}
