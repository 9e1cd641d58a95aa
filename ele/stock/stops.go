// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/shape"
)

// ApertureStop is a circular pinhole: a clear circular hole in an
// otherwise opaque plane. A ray landing inside the circle hits the
// (non-complementary) shape and passes straight through a dummy
// interface; a ray landing outside the clear aperture hits the
// complementary shape and is fully absorbed there (spec.md §3:
// "obstructions/pinholes built from their inverse aperture").
type ApertureStop struct {
	*base
}

// NewApertureStop is the factory registered under "ApertureStop".
func NewApertureStop(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	s := &ApertureStop{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	s.props = ele.NewProperties(s.OnPropertyChanged)
	s.props.DeclareReal("diameter", orDefault(params, "diameter", 0.01), 0, -1)
	s.rebuild = s.sync
	s.sync()
	return s
}

func (s *ApertureStop) sync() {
	s.surfs = nil
	radius := s.props.Real("diameter") / 2
	s.addSurface("hole", shape.NewCircular(radius, 0, false), dummyAt(), false)
	opaque, _ := emi.New("attenuator", map[string]float64{"tau": 0})
	s.addSurface("rim", shape.NewCircular(radius, 0, true), opaque, true)
}

func init() { ele.Register("ApertureStop", NewApertureStop) }

// RectangularStop is a rectangular clear aperture: a single pass-through
// surface. Unlike ApertureStop it has no absorbing rim; a ray landing
// outside the rectangle misses the shape and is not absorbed.
type RectangularStop struct {
	*base
}

// NewRectangularStop is the factory registered under "RectangularStop".
func NewRectangularStop(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	s := &RectangularStop{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	s.props = ele.NewProperties(s.OnPropertyChanged)
	s.props.DeclareReal("width", orDefault(params, "width", 0.01), 0, -1)
	s.props.DeclareReal("height", orDefault(params, "height", 0.01), 0, -1)
	s.rebuild = s.sync
	s.sync()
	return s
}

func (s *RectangularStop) sync() {
	s.surfs = nil
	w, h := s.props.Real("width"), s.props.Real("height")
	s.addSurface("stop", shape.NewRectangular(w, h, false), dummyAt(), false)
}

func init() { ele.Register("RectangularStop", NewRectangularStop) }

// Obstruction is the inverse of ApertureStop: an opaque disc (e.g. a
// secondary-mirror spider baffle) sitting in an otherwise open beam
// path. It is reversible since it must block the beam regardless of
// which direction rays cross it (spec.md §4.4 "reversible").
type Obstruction struct {
	*base
}

// NewObstruction is the factory registered under "Obstruction".
func NewObstruction(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	o := &Obstruction{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	o.props = ele.NewProperties(o.OnPropertyChanged)
	o.props.DeclareReal("diameter", orDefault(params, "diameter", 0.01), 0, -1)
	o.rebuild = o.sync
	o.sync()
	return o
}

func (o *Obstruction) sync() {
	o.surfs = nil
	radius := o.props.Real("diameter") / 2
	opaque, _ := emi.New("attenuator", map[string]float64{"tau": 0})
	// a ray landing inside the disc is intercepted and fully absorbed; a
	// ray outside it simply misses the shape and passes through
	// untouched (a miss never prunes, per the boundary contract).
	o.addSurface("block", shape.NewCircular(radius, 0, false), opaque, true)
}

func init() { ele.Register("Obstruction", NewObstruction) }
