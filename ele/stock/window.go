// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/shape"
)

// CircularWindow is a flat, circular transmissive surface whose index
// returns to 1 on the far side: two flat dielectric interfaces (index n,
// then index 1) separated by a center thickness, so a ray arriving from
// index 1 bends on entry and un-bends by the same amount on exit,
// leaving its direction unchanged but accumulating optical path length.
type CircularWindow struct {
	*base
	back *frame.Frame
}

// NewCircularWindow is the factory registered under "CircularWindow".
func NewCircularWindow(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	mount := frame.Translated(parent, name, mountOffset(params))
	w := &CircularWindow{base: newBase(name, mount), back: frame.Translated(mount, name+".back", mat.Zero)}
	w.props = ele.NewProperties(w.OnPropertyChanged)
	w.props.DeclareReal("diameter", orDefault(params, "diameter", 0.02), 0, -1)
	w.props.DeclareReal("thickness", orDefault(params, "thickness", 0.003), 0, -1)
	w.props.DeclareReal("n", orDefault(params, "n", 1.5), 1, -1)
	w.rebuild = w.sync
	w.sync()
	return w
}

func (w *CircularWindow) sync() {
	w.surfs = nil
	radius := w.props.Real("diameter") / 2
	n := w.props.Real("n")
	thickness := w.props.Real("thickness")
	w.back.SetDistance(mat.NewVec3(0, 0, thickness))

	front := shape.NewCircular(radius, 0, false)
	w.addSurface("front", front, dielectricAt(n), false)

	rear := shape.NewCircular(radius, 0, false)
	w.addSurfaceAt(w.back, "back", rear, dielectricAt(1), false)
}

func init() { ele.Register("CircularWindow", NewCircularWindow) }
