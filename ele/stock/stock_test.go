// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
)

func TestBlockElementDefaultDimensions(tst *testing.T) {
	chk.PrintTitle("BlockElementDefaultDimensions")
	world := frame.NewWorld()
	el, err := ele.New("BlockElement", world, "block", nil)
	if err != nil {
		tst.Fatal(err)
	}
	b := el.(*Block)
	world.Recalculate()
	chk.Scalar(tst, "default width", 1e-12, b.width, 1)
	chk.Scalar(tst, "default height", 1e-12, b.height, 1)
	chk.Scalar(tst, "default depth", 1e-12, b.depth, 1)
	c := b.Frame().Center()
	chk.Scalar(tst, "centred at origin x", 1e-12, c.X, 0)
	chk.Scalar(tst, "centred at origin y", 1e-12, c.Y, 0)
	chk.Scalar(tst, "centred at origin z", 1e-12, c.Z, 0)
}

func TestFlatMirrorHasOneReflectiveSurface(tst *testing.T) {
	chk.PrintTitle("FlatMirrorHasOneReflectiveSurface")
	world := frame.NewWorld()
	el, err := ele.New("FlatMirror", world, "m1", map[string]float64{"diameter": 0.1})
	if err != nil {
		tst.Fatal(err)
	}
	surfs := el.Surfaces()
	if len(surfs) != 1 {
		tst.Fatalf("expected 1 surface, got %d", len(surfs))
	}
	if surfs[0].Boundary.Optics.Name() != "reflective" {
		tst.Fatalf("expected a reflective interface, got %q", surfs[0].Boundary.Optics.Name())
	}
}

func TestApertureStopDiameterDriveBothSurfaces(tst *testing.T) {
	chk.PrintTitle("ApertureStopDiameterDriveBothSurfaces")
	world := frame.NewWorld()
	el, err := ele.New("ApertureStop", world, "stop", map[string]float64{"diameter": 0.1})
	if err != nil {
		tst.Fatal(err)
	}
	if len(el.Surfaces()) != 2 {
		tst.Fatalf("expected 2 surfaces (hole + rim), got %d", len(el.Surfaces()))
	}
}

func TestTripodPortExposesPlatformFrame(tst *testing.T) {
	chk.PrintTitle("TripodPortExposesPlatformFrame")
	world := frame.NewWorld()
	el, err := ele.New("Tripod", world, "t1", map[string]float64{
		"radius": 0.1, "alpha": 2.0943951, "leg1": 0, "leg2": 0, "leg3": 0,
	})
	if err != nil {
		tst.Fatal(err)
	}
	platform, ok := el.Ports()["platform"]
	if !ok {
		tst.Fatal("expected a \"platform\" port")
	}
	world.Recalculate()
	if !platform.Orientation().ApproxEqual(mat.Identity3()) {
		tst.Fatal("equal legs must yield an untilted platform")
	}
}
