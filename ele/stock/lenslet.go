// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/shape"
)

// LensletArray is a rectangular grid of identical plano-convex lenslets,
// each a small conic dielectric surface, tiled by shape.Array (spec.md
// §4.2 "Surface array").
type LensletArray struct {
	*base
}

// NewLensletArray is the factory registered under "LensletArray".
func NewLensletArray(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	l := &LensletArray{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	l.props = ele.NewProperties(l.OnPropertyChanged)
	l.props.DeclareReal("width", orDefault(params, "width", 0.01), 0, -1)
	l.props.DeclareReal("height", orDefault(params, "height", 0.01), 0, -1)
	l.props.DeclareInt("cols", int(orDefault(params, "cols", 4)))
	l.props.DeclareInt("rows", int(orDefault(params, "rows", 4)))
	l.props.DeclareReal("focal", orDefault(params, "focal", 0.01), 0, -1)
	l.props.DeclareReal("n", orDefault(params, "n", 1.5), 1, -1)
	l.rebuild = l.sync
	l.sync()
	return l
}

func (l *LensletArray) sync() {
	l.surfs = nil
	width, height := l.props.Real("width"), l.props.Real("height")
	cols, rows := l.props.Int("cols"), l.props.Int("rows")
	n := l.props.Real("n")
	f := l.props.Real("focal")

	cellWidth := width / float64(cols)
	cellRadius := cellWidth / 2
	roc := 2 * (n - 1) * f
	cell := shape.NewConic(roc, -1, cellRadius, 0, 0, 0, 0, true, false)
	arr := shape.NewArray(width, height, cols, rows, cell, false)
	l.addSurface("front", arr, dielectricAt(n), false)
}

func init() { ele.Register("LensletArray", NewLensletArray) }
