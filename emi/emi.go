// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package emi implements the EM-interface library: the optical-effect
// half of a medium boundary (spec.md §3/§4.3). One `Interface` contract
// hides several physical variants behind a factory, the same shape
// `msolid` uses for constitutive models: a `Model` interface, per-variant
// structs, and a name -> allocator registry populated at init time.
package emi

import (
	"log"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/rbeam"
)

// Interface is the contract every EM interface implements. Transmit is
// called once the shape has already marked which rays in the slice are
// intercepted (spec.md §4.3); it must only touch intercepted rays and
// must confine all its mutations to the given slice.
type Interface interface {
	// Transmit updates directions, refractive index and amplitude for
	// every intercepted ray in [lo,hi) of beam, and may prune rays
	// (clear their has-ray bit) — e.g. total internal reflection or a
	// probabilistic absorber.
	Transmit(beam *rbeam.RayBeam, lo, hi int)

	// Name identifies the interface variant for diagnostics.
	Name() string
}

// AllocatorType builds a new Interface from named parameters, the same
// shape as ele.AllocatorType / msolid's model allocators.
type AllocatorType func(params map[string]float64) Interface

// Register adds an EM-interface variant to the process-wide registry
// (spec.md §9 "Global state": populated during library initialisation,
// read-only afterwards).
func Register(name string, fn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("emi: interface %q is already registered", name)
	}
	allocators[name] = fn
}

// New allocates a registered EM-interface variant by name.
func New(name string, params map[string]float64) (Interface, error) {
	fn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("emi: unknown EM interface %q", name)
	}
	return fn(params), nil
}

// Registered lists every interface variant name currently registered.
func Registered() []string {
	names := make([]string, 0, len(allocators))
	for n := range allocators {
		names = append(names, n)
	}
	return names
}

var allocators = make(map[string]AllocatorType)

// LogRegistered prints every registered EM-interface variant name to the
// standard logger, mirroring msolid's LogModels diagnostic.
func LogRegistered() {
	l := "emi: available:"
	for name := range allocators {
		l += " " + name
	}
	log.Println(l)
}
