// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

func TestWorldIsIdentity(tst *testing.T) {
	chk.PrintTitle("WorldIsIdentity")
	w := NewWorld()
	chk.Scalar(tst, "center.norm", 1e-15, w.Center().Norm(), 0)
	if !w.Orientation().ApproxEqual(mat.Identity3()) {
		tst.Errorf("world orientation is not identity")
	}
}

func TestRecalculateIsIdempotent(tst *testing.T) {
	chk.PrintTitle("RecalculateIsIdempotent")
	w := NewWorld()
	a := Translated(w, "a", mat.NewVec3(1, 2, 3))
	b := Rotated(a, "b", mat.UnitZ, math.Pi/3)
	w.Recalculate()
	c1, o1 := b.Center(), b.Orientation()
	w.Recalculate()
	c2, o2 := b.Center(), b.Orientation()
	if !c1.ApproxEqual(c2) || !o1.ApproxEqual(o2) {
		tst.Errorf("recalculate is not idempotent")
	}
}

func TestTranslatedComposition(tst *testing.T) {
	chk.PrintTitle("TranslatedComposition")
	w := NewWorld()
	p := Rotated(w, "p", mat.UnitY, math.Pi/5)
	d := mat.NewVec3(0.3, -0.1, 2.0)
	c := Translated(p, "c", d)
	w.Recalculate()

	want := p.Center().Add(p.Orientation().MulVec(d))
	if !c.Center().ApproxEqual(want) {
		tst.Errorf("translated composition mismatch: got %v want %v", c.Center(), want)
	}
}

func TestRotatedComposition(tst *testing.T) {
	chk.PrintTitle("RotatedComposition")
	w := NewWorld()
	axis := mat.NewVec3(1, 1, 1)
	c := Rotated(w, "c", axis, math.Pi/4)
	w.Recalculate()

	want := w.Orientation().Mul(mat.Rotation(axis, math.Pi/4))
	if !c.Orientation().ApproxEqual(want) {
		tst.Errorf("rotated composition mismatch")
	}
}

func TestTripodBuildsTiltedNormal(tst *testing.T) {
	chk.PrintTitle("TripodBuildsTiltedNormal")
	w := NewWorld()
	legs := [3]float64{0.10, 0.10, 0.10}
	t := Tripod(w, "t", 1.0, math.Pi/3, legs)
	w.Recalculate()
	// equal legs: the tilted triangle's normal should be world Z, so the
	// tripod orientation reduces to identity.
	if !t.Orientation().ApproxEqual(mat.Identity3()) {
		tst.Errorf("equal-leg tripod should be untilted, got %v", t.Orientation())
	}

	legs2 := [3]float64{0.10, 0.10, 0.20}
	t.SetLeg(2, legs2[2])
	w.Recalculate()
	if t.Orientation().ApproxEqual(mat.Identity3()) {
		tst.Errorf("unequal-leg tripod should be tilted")
	}
}

func TestNamedPointsAndAxes(tst *testing.T) {
	chk.PrintTitle("NamedPointsAndAxes")
	w := NewWorld()
	f := Translated(w, "f", mat.NewVec3(1, 0, 0))
	idx := f.AddPoint("tip", mat.NewVec3(0, 0, 1))
	w.Recalculate()
	p := f.PointAt(idx)
	want := mat.NewVec3(1, 0, 1)
	if !p.ApproxEqual(want) {
		tst.Errorf("named point mismatch: got %v want %v", p, want)
	}
}
