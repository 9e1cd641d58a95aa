// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
)

func seedHit(b *rbeam.RayBeam, i int, dir, normal mat.Vec3, n0 float64) {
	b.Seed(i, mat.Zero, dir, 0.55e-6, n0, uint32(i))
	b.SetDestination(i, mat.Zero)
	b.SetNormal(i, normal)
	b.SetIntercepted(i, true)
}

func TestReflectiveFlipsNormalComponent(tst *testing.T) {
	chk.PrintTitle("ReflectiveFlipsNormalComponent")
	b := rbeam.New(1)
	seedHit(b, 0, mat.NewVec3(0, 0, 1), mat.UnitZ, 1)
	r, _ := New("reflective", nil)
	r.Transmit(b, 0, 1)
	d := b.Direction(0)
	chk.Scalar(tst, "reflected z", 1e-12, d.Z, -1)
}

func TestDielectricNormalIncidenceNoBend(tst *testing.T) {
	chk.PrintTitle("DielectricNormalIncidenceNoBend")
	b := rbeam.New(1)
	// shapes orient the hit normal toward the ray's source, so a ray
	// travelling +Z meets a -Z normal.
	seedHit(b, 0, mat.NewVec3(0, 0, 1), mat.NewVec3(0, 0, -1), 1)
	r, _ := New("dielectric", map[string]float64{"n": 1.5})
	r.Transmit(b, 0, 1)
	d := b.Direction(0)
	chk.Scalar(tst, "straight through on-axis", 1e-9, d.Z, 1)
	chk.Scalar(tst, "refractive index updated", 1e-12, b.RefNdx[0], 1.5)
}

func TestDielectricTIRPrunes(tst *testing.T) {
	chk.PrintTitle("DielectricTIRPrunes")
	b := rbeam.New(1)
	// a grazing ray going from n=1.5 to n=1.0 at a steep angle should TIR
	steep := mat.NewVec3(0.99, 0, 0.141).Normalize()
	seedHit(b, 0, steep, mat.UnitZ, 1.5)
	r, _ := New("dielectric", map[string]float64{"n": 1.0})
	r.Transmit(b, 0, 1)
	if b.HasRay(0) {
		tst.Errorf("expected total internal reflection to prune the ray")
	}
}

func TestAttenuatorFullyOpaque(tst *testing.T) {
	chk.PrintTitle("AttenuatorFullyOpaque")
	b := rbeam.New(1)
	seedHit(b, 0, mat.UnitZ, mat.UnitZ, 1)
	r, _ := New("attenuator", map[string]float64{"tau": 0})
	r.Transmit(b, 0, 1)
	if b.HasRay(0) {
		tst.Errorf("tau=0 must prune every intercepted ray")
	}
}

func TestAttenuatorFullyTransparent(tst *testing.T) {
	chk.PrintTitle("AttenuatorFullyTransparent")
	b := rbeam.New(1)
	seedHit(b, 0, mat.UnitZ, mat.UnitZ, 1)
	r, _ := New("attenuator", map[string]float64{"tau": 1})
	r.Transmit(b, 0, 1)
	if !b.HasRay(0) {
		tst.Errorf("tau=1 must be transparent")
	}
}
