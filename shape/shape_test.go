// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

func TestCircularIntercept(tst *testing.T) {
	chk.PrintTitle("CircularIntercept")
	c := NewCircular(0.05, 0, false)
	origin := mat.NewVec3(0, 0, -1)
	dir := mat.NewVec3(0, 0, 1)
	hit, ok := c.Intercept(origin, dir)
	if !ok {
		tst.Fatalf("expected a hit on-axis")
	}
	chk.Scalar(tst, "t", 1e-12, hit.T, 1)
	chk.Scalar(tst, "hit.z", 1e-12, hit.Point.Z, 0)

	off := mat.NewVec3(1, 0, -1)
	_, ok2 := c.Intercept(off, dir)
	if ok2 {
		tst.Errorf("expected a miss outside the aperture")
	}
}

func TestRectangularComplement(tst *testing.T) {
	chk.PrintTitle("RectangularComplement")
	r := NewRectangular(0.1, 0.1, true) // obstruction: blocks the inside
	origin := mat.NewVec3(0, 0, -1)
	dir := mat.NewVec3(0, 0, 1)
	_, ok := r.Intercept(origin, dir)
	if ok {
		tst.Errorf("complementary rectangle should block on-axis rays")
	}
	off := mat.NewVec3(1, 0, -1)
	_, ok2 := r.Intercept(off, dir)
	if !ok2 {
		tst.Errorf("complementary rectangle should pass off-aperture rays")
	}
}

func TestConicParabolicFocus(tst *testing.T) {
	chk.PrintTitle("ConicParabolicFocus")
	f := 0.2
	// K=-1 parabola with radius of curvature Rc=2f so focal length is f.
	c := NewConic(2*f, -1, 0.05, 0, 0, 0, 0, true, false)
	origin := mat.NewVec3(0.01, 0, -1)
	dir := mat.NewVec3(0, 0, 1)
	hit, ok := c.Intercept(origin, dir)
	if !ok {
		tst.Fatalf("expected a hit")
	}
	// sagitta of a parabola z = r^2/(2Rc) should match the closed form.
	wantZ := 0.01 * 0.01 / (2 * 2 * f)
	chk.Scalar(tst, "sagitta", 1e-9, hit.Point.Z, wantZ)
}

func TestConicHoleExcludesCenter(tst *testing.T) {
	chk.PrintTitle("ConicHoleExcludesCenter")
	c := NewConic(1.0, 0, 0.1, 0.02, 0, 0, 0, true, false)
	origin := mat.NewVec3(0, 0, -1)
	dir := mat.NewVec3(0, 0, 1)
	_, ok := c.Intercept(origin, dir)
	if ok {
		tst.Errorf("central hole should exclude the on-axis ray")
	}
}

func TestArrayDelegatesToCell(tst *testing.T) {
	chk.PrintTitle("ArrayDelegatesToCell")
	cell := NewRectangular(0.01, 0.01, false)
	arr := NewArray(0.1, 0.1, 10, 10, cell, false)
	origin := mat.NewVec3(0.035, 0.035, -1)
	dir := mat.NewVec3(0, 0, 1)
	_, ok := arr.Intercept(origin, dir)
	if !ok {
		tst.Errorf("expected a hit inside a lenslet cell")
	}
}
