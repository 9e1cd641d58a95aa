// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the Element / OpticalElement library (spec.md
// §3): named, parameterised units that own child frames, optical
// surfaces and exposed ports, behind one small contract and a
// process-wide factory registry, the same shape msolid gives its
// constitutive models.
package ele

import (
	"log"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/boundary"
	"github.com/cpmech/rayzal/frame"
)

// Surface is one named optical surface an element exposes: the pairing
// of a medium boundary with the frame it is tested in, plus the hits
// it has accumulated if the owning element has recording enabled
// (spec.md §3 OpticalSurface).
type Surface struct {
	Name     string
	Frame    *frame.Frame
	Boundary *boundary.MediumBoundary
	Record   bool
	Hits     []Hit
}

// Hit is one recorded intercept on a surface, kept only when Record is
// set; used by diagnostics and by detector-style elements that want raw
// per-ray data rather than just a pixel grid.
type Hit struct {
	X, Y float64
	ID   uint32
}

// AddHit appends a hit if recording is enabled; otherwise it is a no-op,
// matching spec.md §3's "hits are only recorded if the parent element
// has record-hits enabled".
func (s *Surface) AddHit(x, y float64, id uint32) {
	if !s.Record {
		return
	}
	s.Hits = append(s.Hits, Hit{X: x, Y: y, ID: id})
}

// Element is the contract every optical element implements (spec.md §3).
// An element owns its child frames and optical surfaces; ports are a
// subset of those frames that other elements may attach to.
type Element interface {
	// Name returns the element's instance name, unique within its
	// recipe namespace.
	Name() string

	// Frame returns the frame the element itself is mounted on (the
	// frame passed to its allocator).
	Frame() *frame.Frame

	// Surfaces returns the element's optical surfaces, in declaration
	// order.
	Surfaces() []*Surface

	// Ports returns the named frames this element exposes for
	// downstream attachment (spec.md §3/GLOSSARY "Port").
	Ports() map[string]*frame.Frame

	// Properties returns the element's typed property table.
	Properties() *Properties

	// OnPropertyChanged is called after a property mutation so the
	// element can re-derive dependent geometry (spec.md §3: "a property
	// change callback gives the element a chance to re-derive
	// geometry").
	OnPropertyChanged(name string)
}

// AllocatorType builds a new element mounted on parent, from named
// real-valued parameters (spec.md §4.6: "element steps are instantiated
// ... using their parameter-expression map" — the map here holds the
// already-evaluated Real values, the recipe layer owns expression
// compilation).
type AllocatorType func(parent *frame.Frame, name string, params map[string]float64) Element

// Register adds an element factory to the process-wide registry
// (spec.md §9 "Global state"). Panics on a duplicate name, mirroring
// ele's original SetAllocator behaviour.
func Register(factoryName string, fn AllocatorType) {
	if _, ok := allocators[factoryName]; ok {
		chk.Panic("ele: factory %q is already registered", factoryName)
	}
	allocators[factoryName] = fn
}

// New allocates a named element instance from a registered factory.
func New(factoryName string, parent *frame.Frame, instanceName string, params map[string]float64) (Element, error) {
	fn, ok := allocators[factoryName]
	if !ok {
		return nil, chk.Err("ele: unknown factory %q", factoryName)
	}
	return fn(parent, instanceName, params), nil
}

// Registered lists every factory name currently registered.
func Registered() []string {
	names := make([]string, 0, len(allocators))
	for n := range allocators {
		names = append(names, n)
	}
	return names
}

var allocators = make(map[string]AllocatorType)

// LogRegistered prints every registered element factory name to the
// standard logger, mirroring msolid's LogModels diagnostic.
func LogRegistered() {
	l := "ele: available:"
	for name := range allocators {
		l += " " + name
	}
	log.Println(l)
}
