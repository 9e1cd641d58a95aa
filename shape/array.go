// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/rayzal/mat"
)

// Array tiles a W×H rectangle with cols*rows copies of a sub-aperture
// shape (spec.md §4.2), e.g. a lenslet array or a detector's microlens
// grid. Intercept delegates to the sub-aperture after translating the
// ray into cell-local coordinates.
type Array struct {
	Width, Height float64
	Cols, Rows    int
	CellShape     Shape // prototype; cell-local coordinates share its frame
	ComplementVal bool
}

// NewArray builds a surface array of cols x rows copies of cellShape
// tiling a Width x Height rectangle.
func NewArray(width, height float64, cols, rows int, cellShape Shape, complement bool) *Array {
	return &Array{Width: width, Height: height, Cols: cols, Rows: rows, CellShape: cellShape, ComplementVal: complement}
}

func (a *Array) cellSize() (cw, ch float64) {
	return a.Width / float64(a.Cols), a.Height / float64(a.Rows)
}

// cellOrigin returns the local-frame origin (center) of cell (i,j).
func (a *Array) cellOrigin(i, j int) (x, y float64) {
	cw, ch := a.cellSize()
	x = -a.Width/2 + cw*(float64(i)+0.5)
	y = -a.Height/2 + ch*(float64(j)+0.5)
	return
}

func (a *Array) cellIndexFor(x, y float64) (i, j int, inBounds bool) {
	cw, ch := a.cellSize()
	i = int(math.Floor((x + a.Width/2) / cw))
	j = int(math.Floor((y + a.Height/2) / ch))
	inBounds = i >= 0 && i < a.Cols && j >= 0 && j < a.Rows
	return
}

// Intercept implements Shape: find the cell the ray's planar projection
// falls in (if any), translate into that cell's local coordinates and
// delegate to CellShape.
func (a *Array) Intercept(origin, direction mat.Vec3) (Hit, bool) {
	t, ok := planeHit(origin, direction)
	if !ok {
		return Hit{}, false
	}
	p := origin.Add(direction.Scale(t))
	i, j, inBounds := a.cellIndexFor(p.X, p.Y)
	if !inBounds {
		if a.ComplementVal {
			n := orientTowardSource(mat.UnitZ, direction)
			return Hit{Point: p, Normal: n, T: t}, true
		}
		return Hit{}, false
	}
	cx, cy := a.cellOrigin(i, j)
	localOrigin := mat.NewVec3(origin.X-cx, origin.Y-cy, origin.Z)
	hit, hok := a.CellShape.Intercept(localOrigin, direction)
	if a.ComplementVal {
		hok = !hok
		if !hok {
			return Hit{}, false
		}
		n := orientTowardSource(mat.UnitZ, direction)
		return Hit{Point: p, Normal: n, T: t}, true
	}
	if !hok {
		return Hit{}, false
	}
	// translate the cell-local hit back into array-local coordinates
	hit.Point = mat.NewVec3(hit.Point.X+cx, hit.Point.Y+cy, hit.Point.Z)
	return hit, true
}

// Area implements Shape.
func (a *Array) Area() float64 {
	return a.CellShape.Area() * float64(a.Cols*a.Rows)
}

// Sample implements Shape by distributing samples evenly across cells.
func (a *Array) Sample(n int) (points, normals []mat.Vec3) {
	cells := a.Cols * a.Rows
	if cells == 0 || n <= 0 {
		return nil, nil
	}
	perCell := n / cells
	if perCell < 1 {
		perCell = 1
	}
	for i := 0; i < a.Cols; i++ {
		for j := 0; j < a.Rows; j++ {
			cx, cy := a.cellOrigin(i, j)
			pts, nrms := a.CellShape.Sample(perCell)
			for k := range pts {
				points = append(points, mat.NewVec3(pts[k].X+cx, pts[k].Y+cy, pts[k].Z))
				normals = append(normals, nrms[k])
			}
		}
	}
	return
}

// Edges implements Shape: the cell-shape outline repeated at every cell
// center, for visualisation only.
func (a *Array) Edges() [][]mat.Vec3 {
	var all [][]mat.Vec3
	for i := 0; i < a.Cols; i++ {
		for j := 0; j < a.Rows; j++ {
			cx, cy := a.cellOrigin(i, j)
			for _, line := range a.CellShape.Edges() {
				shifted := make([]mat.Vec3, len(line))
				for k, p := range line {
					shifted[k] = mat.NewVec3(p.X+cx, p.Y+cy, p.Z)
				}
				all = append(all, shifted)
			}
		}
	}
	return all
}

// Complementary implements Shape.
func (a *Array) Complementary() bool { return a.ComplementVal }
