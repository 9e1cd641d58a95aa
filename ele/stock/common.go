// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stock implements the stock optical-element library
// (spec.md §3 supplemented features, grounded on original_source's
// LibRZ/src/Elements): small Element wrappers that each own one body
// frame, zero or more MediumBoundary surfaces and zero or more ports,
// registered with the ele factory at init time (spec.md §9 "Global
// state").
package stock

import (
	"github.com/cpmech/rayzal/boundary"
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/shape"
)

// base is embedded by every stock element: it carries the bookkeeping
// every Element implementation needs (name, mount frame, surfaces,
// ports, properties) so each concrete element only has to build its own
// geometry.
type base struct {
	name    string
	mount   *frame.Frame
	surfs   []*ele.Surface
	ports   map[string]*frame.Frame
	props   *ele.Properties
	rebuild func()
}

func newBase(name string, mount *frame.Frame) *base {
	return &base{name: name, mount: mount, ports: make(map[string]*frame.Frame)}
}

func (b *base) Name() string                   { return b.name }
func (b *base) Frame() *frame.Frame            { return b.mount }
func (b *base) Surfaces() []*ele.Surface       { return b.surfs }
func (b *base) Ports() map[string]*frame.Frame { return b.ports }
func (b *base) Properties() *ele.Properties    { return b.props }

// OnPropertyChanged re-derives geometry by calling the element's rebuild
// hook, if it declared one (spec.md §3: "a property change callback
// gives the element a chance to re-derive geometry").
func (b *base) OnPropertyChanged(name string) {
	if b.rebuild != nil {
		b.rebuild()
	}
}

// addSurface wraps a shape+interface pair into a named MediumBoundary
// tested in the element's own mount frame, and appends it to Surfaces().
func (b *base) addSurface(name string, s shape.Shape, i emi.Interface, reversible bool) *ele.Surface {
	return b.addSurfaceAt(b.mount, name, s, i, reversible)
}

// addSurfaceAt is addSurface with an explicit frame, for elements with
// more than one axial surface (e.g. a window's front/back faces
// separated by a thickness).
func (b *base) addSurfaceAt(f *frame.Frame, name string, s shape.Shape, i emi.Interface, reversible bool) *ele.Surface {
	mb := boundary.New(b.name+"."+name, s, i, reversible)
	surf := &ele.Surface{Name: name, Frame: f, Boundary: mb}
	b.surfs = append(b.surfs, surf)
	return surf
}

func dielectricAt(n float64) emi.Interface {
	i, _ := emi.New("dielectric", map[string]float64{"n": n})
	return i
}

func reflectiveAt() emi.Interface {
	i, _ := emi.New("reflective", nil)
	return i
}

func dummyAt() emi.Interface {
	i, _ := emi.New("dummy", nil)
	return i
}

// orDefault reads a named parameter, falling back to def when absent
// (recipes omit arguments that take their declared default, spec.md §6
// arglist semantics).
func orDefault(params map[string]float64, name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

// mountOffset reads the dx,dy,dz an element instance is placed at on its
// parent frame; every stock element accepts these as the position it is
// mounted at, on top of whatever the recipe's own translate/rotate
// context already applied.
func mountOffset(params map[string]float64) mat.Vec3 {
	return mat.NewVec3(orDefault(params, "dx", 0), orDefault(params, "dy", 0), orDefault(params, "dz", 0))
}
