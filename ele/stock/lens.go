// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/shape"
)

// ConicLens is a symmetric biconvex/biconcave singlet: two conic
// dielectric surfaces separated by a center thickness, built from a
// target focal length via the thin-lens lensmaker relation for a
// symmetric element, R = 2(n-1)f (spec.md §8 scenario D/E use exactly
// this K=-1, f-driven construction).
type ConicLens struct {
	*base
}

// NewConicLens is the factory registered under "ConicLens".
func NewConicLens(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	l := &ConicLens{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	l.props = ele.NewProperties(l.OnPropertyChanged)
	l.props.DeclareReal("diameter", orDefault(params, "diameter", 0.05), 0, -1)
	l.props.DeclareReal("focal", orDefault(params, "focal", 0.2), 0, -1)
	l.props.DeclareReal("K", orDefault(params, "K", -1), 1, -1)
	l.props.DeclareReal("n", orDefault(params, "n", 1.5), 1, -1)
	l.props.DeclareReal("thickness", orDefault(params, "thickness", 0.01), 0, -1)
	l.rebuild = l.sync
	l.sync()
	return l
}

func (l *ConicLens) sync() {
	l.surfs = nil
	radius := l.props.Real("diameter") / 2
	n := l.props.Real("n")
	f := l.props.Real("focal")
	K := l.props.Real("K")
	thickness := l.props.Real("thickness")
	roc := 2 * (n - 1) * f

	front := shape.NewConic(roc, K, radius, 0, 0, 0, 0, true, false)
	l.addSurface("front", front, dielectricAt(n), false)

	back := shape.NewConic(roc, K, radius, 0, 0, 0, thickness, false, false)
	l.addSurface("back", back, dielectricAt(1), false)
}

func init() { ele.Register("ConicLens", NewConicLens) }
