// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/detector"
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/rbeam"
	"github.com/cpmech/rayzal/shape"
)

// Detector is a flat, absorbing sensor backed by a detector.Grid pixel
// accumulator and a detector.Scatter raw-hit accumulator (spec.md §6,
// §8 scenario F). Tracing an intercepted ray into it both counts the
// pixel it landed on and records its (x,y) for centroid/RMS statistics;
// the element always absorbs (tau=0), since a detector is terminal.
type Detector struct {
	*base
	Grid    *detector.Grid
	Scatter *detector.Scatter
}

// NewDetector is the factory registered under "Detector". params: cols,
// rows, pitch (meters/pixel).
func NewDetector(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	d := &Detector{base: newBase(name, frame.Translated(parent, name, mountOffset(params))), Scatter: &detector.Scatter{}}
	d.props = ele.NewProperties(d.OnPropertyChanged)
	d.props.DeclareInt("cols", int(orDefault(params, "cols", 512)))
	d.props.DeclareInt("rows", int(orDefault(params, "rows", 512)))
	d.props.DeclareReal("pitch", orDefault(params, "pitch", 15e-6), 0, -1)
	d.rebuild = d.sync
	d.sync()
	return d
}

func (d *Detector) sync() {
	d.surfs = nil
	cols, rows := d.props.Int("cols"), d.props.Int("rows")
	pitch := d.props.Real("pitch")
	d.Grid = detector.NewGrid(cols, rows, pitch)
	width, height := float64(cols)*pitch, float64(rows)*pitch
	surf := d.addSurface("plane", shape.NewRectangular(width, height, false), &absorbingDummy{d: d}, false)
	surf.Record = true
}

func init() { ele.Register("Detector", NewDetector) }

// absorbingDummy wraps Dummy so every intercepted ray is recorded into
// the detector's grid/scatter and then pruned (a detector is terminal:
// nothing continues past it).
type absorbingDummy struct {
	d *Detector
}

func (a *absorbingDummy) Transmit(beam *rbeam.RayBeam, lo, hi int) {
	for i := lo; i < hi; i++ {
		if !beam.HasRay(i) || !beam.Intercepted(i) {
			continue
		}
		hit := beam.Destination(i)
		a.d.Grid.Accumulate(hit.X, hit.Y, beam.Amplitude(i))
		a.d.Scatter.Add(hit.X, hit.Y)
		beam.Prune(i)
	}
}

func (a *absorbingDummy) Name() string { return "detector" }
