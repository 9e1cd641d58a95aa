// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package detector

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// TestGridTotalHitsSumsPerPixelCounts is spec.md §8 scenario F's first
// property: the grid's total hit count equals the number of rays
// accumulated, regardless of how they spread across pixels.
func TestGridTotalHitsSumsPerPixelCounts(tst *testing.T) {
	chk.PrintTitle("GridTotalHitsSumsPerPixelCounts")
	g := NewGrid(8, 8, 1e-3)
	hits := []mat.Vec3{
		mat.NewVec3(0, 0, 0),
		mat.NewVec3(0, 0, 0),
		mat.NewVec3(1e-3, 0, 0),
		mat.NewVec3(-2e-3, 1e-3, 0),
	}
	for _, h := range hits {
		g.Accumulate(h.X, h.Y, mat.Complex(complex(1, 0)))
	}
	if got := g.TotalHits(); got != uint64(len(hits)) {
		tst.Fatalf("expected TotalHits == %d, got %d", len(hits), got)
	}
}

// TestGridWritePNGBrightestPixelIsMaxByte is spec.md §8 scenario F's
// second property: the PNG encoding scales so the most-hit pixel is 255.
func TestGridWritePNGBrightestPixelIsMaxByte(tst *testing.T) {
	chk.PrintTitle("GridWritePNGBrightestPixelIsMaxByte")
	g := NewGrid(4, 4, 1e-3)
	// pixel (0,0) gets 3 hits, every other touched pixel gets 1.
	for i := 0; i < 3; i++ {
		g.Accumulate(-1.5e-3, -1.5e-3, mat.Complex(complex(1, 0)))
	}
	g.Accumulate(1.5e-3, 1.5e-3, mat.Complex(complex(1, 0)))

	var buf bytes.Buffer
	if err := g.WritePNG(&buf); err != nil {
		tst.Fatalf("WritePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		tst.Fatalf("failed to decode written PNG: %v", err)
	}
	col, row, ok := g.pixelFor(-1.5e-3, -1.5e-3)
	if !ok {
		tst.Fatal("expected the 3-hit position to land inside the grid")
	}
	r, _, _, _ := img.At(col, row).RGBA()
	if byte(r>>8) != 255 {
		tst.Fatalf("expected the brightest pixel to encode as 255, got %d", byte(r>>8))
	}
}

// TestScatterRMSRadiusOfASymmetricCluster is spec.md §8 testable property
// 7: an evenly-spaced ring of hits about the origin has a well-defined,
// computable RMS radius equal to the ring radius itself.
func TestScatterRMSRadiusOfASymmetricCluster(tst *testing.T) {
	chk.PrintTitle("ScatterRMSRadiusOfASymmetricCluster")
	s := &Scatter{}
	const radius = 2e-3
	s.Add(radius, 0)
	s.Add(-radius, 0)
	s.Add(0, radius)
	s.Add(0, -radius)
	if s.N() != 4 {
		tst.Fatalf("expected 4 accumulated hits, got %d", s.N())
	}
	cx, cy := s.Centroid()
	chk.Scalar(tst, "centroid x", 1e-12, cx, 0)
	chk.Scalar(tst, "centroid y", 1e-12, cy, 0)
	chk.Scalar(tst, "RMS radius", 1e-12, s.RMSRadius(), radius)
}
