// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package detector

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Scatter accumulates raw (x,y) hit positions alongside a Grid, for
// centroid/RMS diagnostics a per-pixel count can't give directly
// (spec.md §3 supplemented feature, grounded on LibRZ's DataProducts
// scatter accumulator): testable property 7 (focusing spot size) and
// scenario D/E both read these statistics.
type Scatter struct {
	X, Y []float64
}

// Add appends one hit position.
func (s *Scatter) Add(x, y float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
}

// Centroid returns the mean hit position.
func (s *Scatter) Centroid() (cx, cy float64) {
	if len(s.X) == 0 {
		return 0, 0
	}
	return stat.Mean(s.X, nil), stat.Mean(s.Y, nil)
}

// RMSRadius returns the RMS radial distance of every hit from the
// centroid (spec.md §8 testable property 7 and scenarios D/E).
func (s *Scatter) RMSRadius() float64 {
	n := len(s.X)
	if n == 0 {
		return 0
	}
	cx, cy := s.Centroid()
	var sumSq float64
	for i := 0; i < n; i++ {
		dx, dy := s.X[i]-cx, s.Y[i]-cy
		sumSq += dx*dx + dy*dy
	}
	return math.Sqrt(sumSq / float64(n))
}

// N returns the number of accumulated hits.
func (s *Scatter) N() int { return len(s.X) }
