// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zernike implements the ANSI-indexed Zernike circle polynomial
// basis on the unit disk. spec.md treats this basis as an external
// collaborator "specified only by the values it must produce" (§1); this
// package is the minimal closed-form implementation that produces those
// values, used by emi's phase-screen interface to turn an expansion
// coefficient vector into an equivalent surface height and its gradient.
package zernike

import (
	"math"

	"github.com/cpmech/gosl/num"
)

// NToNL converts an ANSI single index j (spec.md GLOSSARY: "j ↔ (n,l)")
// into its radial degree n and azimuthal frequency l.
func NToNL(j int) (n, l int) {
	n = 0
	for (n+1)*(n+2)/2 <= j {
		n++
	}
	base := n * (n + 1) / 2
	pos := j - base
	l = -n + 2*pos
	return
}

// radial evaluates the Zernike radial polynomial R_n^|l|(r).
func radial(n, l int, r float64) float64 {
	m := l
	if m < 0 {
		m = -m
	}
	if (n-m)%2 != 0 || m > n {
		return 0
	}
	var sum float64
	for k := 0; k <= (n-m)/2; k++ {
		num := float64(sign(k)) * factorial(n-k)
		den := factorial(k) * factorial((n+m)/2-k) * factorial((n-m)/2-k)
		sum += (num / den) * math.Pow(r, float64(n-2*k))
	}
	return sum
}

func sign(k int) int {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// Z evaluates the j-th ANSI Zernike polynomial at polar coordinates
// (r, theta), where r is normalized to the unit disk (r ∈ [0,1]).
func Z(j int, r, theta float64) float64 {
	n, l := NToNL(j)
	rad := radial(n, l, r)
	if l >= 0 {
		return rad * math.Cos(float64(l)*theta)
	}
	return rad * math.Sin(float64(-l)*theta)
}

// Expansion is a sparse Zernike coefficient vector: Z(x,y) = Σ aᵢ Zᵢ
// (spec.md §4.3), with (x,y) pre-normalized by the aperture radius R by
// the caller (emi's phase screen).
type Expansion map[int]float64

// Eval returns the expansion's height and its gradient (dZ/dx, dZ/dy) at
// normalized coordinates (x,y), via r,theta = polar(x,y) and the
// standard d/dx, d/dy chain rule through r and theta.
func (e Expansion) Eval(x, y float64) (z, dzdx, dzdy float64) {
	r := math.Hypot(x, y)
	theta := math.Atan2(y, x)
	for j, a := range e {
		z += a * Z(j, r, theta)
	}
	// central-difference gradient: a closed-form per-term derivative is
	// possible, but num.DerivCentral keeps this obviously correct against
	// Z() with no extra bookkeeping, at the cost of extra expansion
	// evaluations on each call (emi's phase screen calls Eval once per
	// intercepted ray).
	const step = 1e-6
	dzdx, _ = num.DerivCentral(func(xx float64, args ...interface{}) (res float64) {
		return e.evalAt(xx, y)
	}, x, step)
	dzdy, _ = num.DerivCentral(func(yy float64, args ...interface{}) (res float64) {
		return e.evalAt(x, yy)
	}, y, step)
	return
}

func (e Expansion) evalAt(x, y float64) float64 {
	r := math.Hypot(x, y)
	theta := math.Atan2(y, x)
	var z float64
	for j, a := range e {
		z += a * Z(j, r, theta)
	}
	return z
}
