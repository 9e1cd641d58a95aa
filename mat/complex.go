// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import gocplx "math/cmplx"

// Complex is the complex-amplitude bookkeeping scalar carried by every ray
// (spec.md §3, RayBeam.amplitude). Diffraction/coherent propagation is an
// explicit Non-goal, so arithmetic here stays a thin wrapper: it exists so
// the rest of the module never imports the standard complex128 type
// directly and so amplitude updates read the same way regardless of which
// EM interface produced them.
type Complex = complex128

// One is the default, unattenuated, zero-phase amplitude a freshly
// launched ray carries.
const One Complex = complex(1, 0)

// Abs returns |c|.
func Abs(c Complex) float64 { return gocplx.Abs(c) }

// Phase returns the phase angle of c, in radians.
func Phase(c Complex) float64 { return gocplx.Phase(c) }

// FromPolar builds a complex amplitude from magnitude and phase.
func FromPolar(magnitude, phase float64) Complex { return gocplx.Rect(magnitude, phase) }
