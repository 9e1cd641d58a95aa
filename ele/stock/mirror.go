// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/shape"
)

// FlatMirror is a single reflective circular flat surface.
type FlatMirror struct {
	*base
}

// NewFlatMirror is the factory registered under "FlatMirror".
func NewFlatMirror(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	m := &FlatMirror{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	m.props = ele.NewProperties(m.OnPropertyChanged)
	m.props.DeclareReal("diameter", orDefault(params, "diameter", 0.05), 0, -1)
	m.rebuild = m.sync
	m.sync()
	return m
}

func (m *FlatMirror) sync() {
	m.surfs = nil
	radius := m.props.Real("diameter") / 2
	m.addSurface("front", shape.NewCircular(radius, 0, false), reflectiveAt(), false)
}

func init() { ele.Register("FlatMirror", NewFlatMirror) }

// ConicMirror is a single reflective conic surface (parabolic when
// K=-1, spherical when K=0).
type ConicMirror struct {
	*base
}

// NewConicMirror is the factory registered under "ConicMirror".
func NewConicMirror(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	m := &ConicMirror{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	m.props = ele.NewProperties(m.OnPropertyChanged)
	m.props.DeclareReal("diameter", orDefault(params, "diameter", 0.05), 0, -1)
	m.props.DeclareReal("roc", orDefault(params, "roc", 0.2), 0, -1)
	m.props.DeclareReal("K", orDefault(params, "K", -1), 1, -1) // unbounded: any real K is legal
	m.props.DeclareReal("hole", orDefault(params, "hole", 0), 0, -1)
	m.rebuild = m.sync
	m.sync()
	return m
}

func (m *ConicMirror) sync() {
	m.surfs = nil
	radius := m.props.Real("diameter") / 2
	surf := shape.NewConic(m.props.Real("roc"), m.props.Real("K"), radius, m.props.Real("hole"), 0, 0, 0, true, false)
	m.addSurface("front", surf, reflectiveAt(), false)
}

func init() { ele.Register("ConicMirror", NewConicMirror) }
