// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package detector implements the hit-accumulation sink and its
// persisted artifacts (spec.md §6): a pixel grid that counts ray
// landings and complex amplitude, an 8-bit greyscale PNG writer, a raw
// u32 frame writer and a raw complex-amplitude frame writer.
package detector

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// Grid is a detector's pixel accumulator: cols x rows cells of a given
// physical pitch, single-writer (spec.md §5: "detectors accumulate
// counts in per-pixel cells under [a] single-writer assumption").
type Grid struct {
	Cols, Rows int
	Pitch      float64 // physical cell size (meters)

	counts []uint32
	ampRe  []float64
	ampIm  []float64
}

// NewGrid allocates a cols x rows grid of the given pixel pitch.
func NewGrid(cols, rows int, pitch float64) *Grid {
	n := cols * rows
	return &Grid{Cols: cols, Rows: rows, Pitch: pitch,
		counts: make([]uint32, n), ampRe: make([]float64, n), ampIm: make([]float64, n)}
}

// pixelFor maps a local (x,y) hit position (detector-frame, centered at
// the grid's middle) to a (col,row) index. ok is false if the hit lands
// outside the grid.
func (g *Grid) pixelFor(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x/g.Pitch + float64(g.Cols)/2))
	row = int(math.Floor(y/g.Pitch + float64(g.Rows)/2))
	ok = col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
	return
}

// Accumulate records one ray landing at local position (x,y) with
// complex amplitude a; out-of-grid hits are silently dropped.
func (g *Grid) Accumulate(x, y float64, a mat.Complex) {
	col, row, ok := g.pixelFor(x, y)
	if !ok {
		return
	}
	idx := row*g.Cols + col
	g.counts[idx]++
	g.ampRe[idx] += real(a)
	g.ampIm[idx] += imag(a)
}

// Count returns the hit count at (col,row).
func (g *Grid) Count(col, row int) uint32 { return g.counts[row*g.Cols+col] }

// TotalHits sums every pixel's count (spec.md §8 scenario F).
func (g *Grid) TotalHits() uint64 {
	var total uint64
	for _, c := range g.counts {
		total += uint64(c)
	}
	return total
}

func (g *Grid) maxCount() uint32 {
	var m uint32
	for _, c := range g.counts {
		if c > m {
			m = c
		}
	}
	return m
}

// WritePNG renders the grid as 8-bit greyscale, each pixel value scaled
// by the grid's maximum count so the brightest pixel is 255 (spec.md §6,
// §8 scenario F).
func (g *Grid) WritePNG(w io.Writer) error {
	maxC := g.maxCount()
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			v := uint8(0)
			if maxC > 0 {
				v = uint8(255 * float64(g.Count(col, row)) / float64(maxC))
			}
			img.SetGray(col, row, color.Gray{Y: v})
		}
	}
	return png.Encode(w, img)
}

// rowStrideCells rounds the column count up to a multiple of 4, per
// spec.md §6's raw frame layout ("row stride rounded up to a multiple of
// 4 cells").
func (g *Grid) rowStrideCells() int {
	return (g.Cols + 3) &^ 3
}

// WriteRawCounts writes a raw little-endian u32 frame: cols x rows x 4
// bytes, padded to rowStrideCells() per row (spec.md §6).
func (g *Grid) WriteRawCounts(w io.Writer) error {
	stride := g.rowStrideCells()
	bw := bufio.NewWriter(w)
	row4 := make([]byte, 4)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < stride; col++ {
			var v uint32
			if col < g.Cols {
				v = g.Count(col, row)
			}
			binary.LittleEndian.PutUint32(row4, v)
			if _, err := bw.Write(row4); err != nil {
				return chk.Err("detector: WriteRawCounts: %v", err)
			}
		}
	}
	return bw.Flush()
}

// WriteRawAmplitude writes a raw complex-amplitude frame: 2 reals per
// cell (re,im), same row-stride convention as WriteRawCounts.
func (g *Grid) WriteRawAmplitude(w io.Writer) error {
	stride := g.rowStrideCells()
	bw := bufio.NewWriter(w)
	buf := make([]byte, 16)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < stride; col++ {
			var re, im float64
			if col < g.Cols {
				idx := row*g.Cols + col
				re, im = g.ampRe[idx], g.ampIm[idx]
			}
			binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(re))
			binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(im))
			if _, err := bw.Write(buf); err != nil {
				return chk.Err("detector: WriteRawAmplitude: %v", err)
			}
		}
	}
	return bw.Flush()
}
