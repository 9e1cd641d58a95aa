// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/rbeam"
)

func TestPlotFan(tst *testing.T) {
	chk.PrintTitle("PlotFan")
	if !chk.Verbose {
		return
	}
	beam := rbeam.New(3)
	for i := 0; i < 3; i++ {
		beam.Seed(i, mat.NewVec3(0, float64(i)*0.01, 0), mat.NewVec3(0, 0, 1), 5.5e-7, 1, 0)
		beam.SetDestination(i, mat.NewVec3(0, float64(i)*0.01, 1))
	}
	beam.SetChief(1, true)
	PlotFan(beam, "/tmp/rayzal", "diag_fan.png")
}

func TestPlotSweep(tst *testing.T) {
	chk.PrintTitle("PlotSweep")
	if !chk.Verbose {
		return
	}
	pts := []SweepPoint{{0, 0}, {0.5, 1}, {1, 4}}
	PlotSweep(pts, "$t$", "$f(t)$", "/tmp/rayzal", "diag_sweep.png")
}
