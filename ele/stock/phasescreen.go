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

// PhaseScreen is a flat circular surface whose local height follows a
// Zernike expansion, refracting rays as if they passed through that
// equivalent tilted surface (spec.md §4.3 "Zernike phase screen").
// Coefficients are set directly via Screen, since a sparse map has no
// natural single-float property representation.
type PhaseScreen struct {
	*base
	Screen *emi.ZernikePhase
}

// NewPhaseScreen is the factory registered under "PhaseScreen".
func NewPhaseScreen(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	p := &PhaseScreen{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	p.props = ele.NewProperties(p.OnPropertyChanged)
	p.props.DeclareReal("diameter", orDefault(params, "diameter", 0.02), 0, -1)
	p.props.DeclareReal("n", orDefault(params, "n", 1.0), 1, -1)
	p.rebuild = p.sync
	p.sync()
	return p
}

func (p *PhaseScreen) sync() {
	p.surfs = nil
	radius := p.props.Real("diameter") / 2
	zi, _ := emi.New("zernike", map[string]float64{"R": radius, "n": p.props.Real("n")})
	p.Screen = zi.(*emi.ZernikePhase)
	p.addSurface("front", shape.NewCircular(radius, 0, false), p.Screen, false)
}

func init() { ele.Register("PhaseScreen", NewPhaseScreen) }
