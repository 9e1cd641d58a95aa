// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
)

// Tripod exposes a three-legged tilting platform as an element with one
// port ("platform") downstream elements mount onto: three independent
// leg-length properties drive frame.Tripod's tilted pose (spec.md §3/
// §4.1).
type Tripod struct {
	*base
	platform *frame.Frame
}

// NewTripod is the factory registered under "Tripod". params: radius,
// alpha (base triangle vertex angle, radians), leg1, leg2, leg3.
func NewTripod(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	legs := [3]float64{
		orDefault(params, "leg1", 0),
		orDefault(params, "leg2", 0),
		orDefault(params, "leg3", 0),
	}
	radius := orDefault(params, "radius", 0.1)
	alpha := orDefault(params, "alpha", 2.0943951) // 2*pi/3
	platform := frame.Tripod(parent, name+".platform", radius, alpha, legs)

	t := &Tripod{base: newBase(name, platform), platform: platform}
	t.props = ele.NewProperties(t.OnPropertyChanged)
	t.props.DeclareReal("leg1", legs[0], 1, -1)
	t.props.DeclareReal("leg2", legs[1], 1, -1)
	t.props.DeclareReal("leg3", legs[2], 1, -1)
	t.rebuild = t.sync
	t.ports["platform"] = platform
	return t
}

func (t *Tripod) sync() {
	t.platform.SetLeg(0, t.props.Real("leg1"))
	t.platform.SetLeg(1, t.props.Real("leg2"))
	t.platform.SetLeg(2, t.props.Real("leg3"))
}

func init() { ele.Register("Tripod", NewTripod) }
