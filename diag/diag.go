// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements optional diagnostic plotting: a traced ray
// fan viewed in the y-z plane, and a DOF sweep of some scalar model
// output. Neither is on the hot path (spec.md §4.2 "not on the hot
// path" applies equally here) and neither is exercised by the trace or
// model packages themselves — a caller opts in explicitly, the same way
// gofem's mdl/conduct and ana packages keep their plotting in a
// `t_plot_test.go`/`Plot` helper gated behind `chk.Verbose` rather than
// wired into the solver's hot loop.
package diag

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/cpmech/rayzal/rbeam"
)

// PlotFan renders the beam's current origin->destination segments in
// the y-z plane (spec.md §4.2 GLOSSARY "edges(): polyline list for
// visualisation only") and saves the figure to dirout/fname, following
// gofem's plt.Reset/plt.SaveD bracketing (mdl/conduct.Plot).
func PlotFan(beam *rbeam.RayBeam, dirout, fname string) {
	plt.Reset(false, nil)
	for i := 0; i < beam.N; i++ {
		if !beam.HasRay(i) {
			continue
		}
		o, d := beam.Origin(i), beam.Destination(i)
		style := "'b-'"
		if beam.Chief(i) {
			style = "'r-', linewidth=2"
		}
		plt.Plot([]float64{o.Y, d.Y}, []float64{o.Z, d.Z}, style)
	}
	plt.Gll("$y$", "$z$", "")
	plt.SaveD(dirout, fname)
}

// SweepPoint is one sample of a DOF sweep, as plotted by PlotSweep.
type SweepPoint struct {
	Dof, Value float64
}

// PlotSweep renders a scalar model output against a swept DOF value,
// mirroring mdl/conduct.Plot's X/Y line-plus-endpoint-label style
// (spec.md §4.6: DOFs are the natural independent variable to sweep
// when diagnosing a recipe).
func PlotSweep(points []SweepPoint, xlabel, ylabel, dirout, fname string) {
	if len(points) == 0 {
		return
	}
	x := make([]float64, len(points))
	y := make([]float64, len(points))
	for i, p := range points {
		x[i], y[i] = p.Dof, p.Value
	}
	plt.Reset(false, nil)
	plt.Plot(x, y, "'b-', clip_on=0")
	l := len(points) - 1
	plt.Text(x[0], y[0], io.Sf("(%g, %g)", x[0], y[0]), "ha='left', color='red', size=8")
	plt.Text(x[l], y[l], io.Sf("(%g, %g)", x[l], y[l]), "ha='right', color='red', size=8")
	plt.Gll(xlabel, ylabel, "")
	plt.SaveD(dirout, fname)
}
