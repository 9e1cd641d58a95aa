// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbeam

import "gonum.org/v1/gonum/floats"

// LiveCount returns the number of rays with the has-ray bit set.
func (b *RayBeam) LiveCount() int {
	n := 0
	for i := 0; i < b.N; i++ {
		if b.HasRay(i) {
			n++
		}
	}
	return n
}

// InterceptedCount returns the number of rays intercepted during the
// current stage (spec.md §8 scenarios C/F: "expect 0 vignetted, 1000
// intercepted").
func (b *RayBeam) InterceptedCount() int {
	n := 0
	for i := 0; i < b.N; i++ {
		if b.HasRay(i) && b.Intercepted(i) {
			n++
		}
	}
	return n
}

// MeanOpticalPathLength returns the mean accumulated optical path length
// over every ray still carrying energy; used for per-surface diagnostics
// (spec.md §4.5: "collect per-s statistics"). floats.Sum keeps this a
// single reduction over the beam's cumOptLengths slice rather than a
// hand-rolled loop, the same role gonum/stat plays for detector's
// centroid/RMS statistics.
func (b *RayBeam) MeanOpticalPathLength() float64 {
	live := make([]float64, 0, b.N)
	for i := 0; i < b.N; i++ {
		if b.HasRay(i) {
			live = append(live, b.CumOptLengths[i])
		}
	}
	if len(live) == 0 {
		return 0
	}
	return floats.Sum(live) / float64(len(live))
}
