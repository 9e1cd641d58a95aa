// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zernike

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestIndexMapping(tst *testing.T) {
	chk.PrintTitle("IndexMapping")
	cases := []struct{ j, n, l int }{
		{0, 0, 0},
		{1, 1, -1},
		{2, 1, 1},
		{3, 2, -2},
		{4, 2, 0},
		{5, 2, 2},
	}
	for _, c := range cases {
		n, l := NToNL(c.j)
		if n != c.n || l != c.l {
			tst.Errorf("NToNL(%d) = (%d,%d), want (%d,%d)", c.j, n, l, c.n, c.l)
		}
	}
}

func TestPistonIsConstantOne(tst *testing.T) {
	chk.PrintTitle("PistonIsConstantOne")
	for _, r := range []float64{0, 0.3, 0.7, 1.0} {
		chk.Scalar(tst, "Z0", 1e-12, Z(0, r, 0.4), 1)
	}
}

func TestDefocusIsRadiallySymmetric(tst *testing.T) {
	chk.PrintTitle("DefocusIsRadiallySymmetric")
	// j=4 (n=2,l=0) must not depend on theta.
	a := Z(4, 0.5, 0.1)
	b := Z(4, 0.5, 2.3)
	chk.Scalar(tst, "defocus theta-independence", 1e-12, a, b)
}
