// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

// KahanSum accumulates float64 terms with Kahan compensation, so that a
// long run of many small additions does not drift.
type KahanSum struct {
	sum float64
	c   float64 // running compensation for lost low-order bits
}

// Add folds x into the running sum.
func (k *KahanSum) Add(x float64) {
	y := x - k.c
	t := k.sum + y
	k.c = (t - k.sum) - y
	k.sum = t
}

// Value returns the compensated running total.
func (k *KahanSum) Value() float64 { return k.sum }

// Reset zeroes the accumulator.
func (k *KahanSum) Reset() { k.sum, k.c = 0, 0 }

// KahanSlice sums a slice of float64 with Kahan compensation: a one-off
// compensated reduction without carrying a KahanSum across calls.
func KahanSlice(xs []float64) float64 {
	var k KahanSum
	for _, x := range xs {
		k.Add(x)
	}
	return k.Value()
}
