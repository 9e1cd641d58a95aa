// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package emi

import "github.com/cpmech/rayzal/rbeam"

// Dummy is the identity EM interface (spec.md §4.3): Transmit leaves
// every ray untouched. Used for pass-through surfaces such as an
// aperture stop's clear hole or a bare reference surface.
type Dummy struct{}

// NewDummy builds a Dummy interface.
func NewDummy(map[string]float64) Interface { return Dummy{} }

func init() { Register("dummy", NewDummy) }

// Transmit implements Interface.
func (Dummy) Transmit(beam *rbeam.RayBeam, lo, hi int) {}

// Name implements Interface.
func (Dummy) Name() string { return "dummy" }
