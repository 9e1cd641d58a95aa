// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math"

	"github.com/cpmech/rayzal/mat"
)

// Rectangular is the flat aperture |x| ≤ W/2 ∧ |y| ≤ H/2 (spec.md §4.2).
type Rectangular struct {
	Width, Height float64
	ComplementVal bool
}

// NewRectangular builds a rectangular flat aperture.
func NewRectangular(width, height float64, complement bool) *Rectangular {
	return &Rectangular{Width: width, Height: height, ComplementVal: complement}
}

func (r *Rectangular) contains(x, y float64) bool {
	inside := x >= -r.Width/2 && x <= r.Width/2 && y >= -r.Height/2 && y <= r.Height/2
	if r.ComplementVal {
		return !inside
	}
	return inside
}

// Intercept implements Shape.
func (r *Rectangular) Intercept(origin, direction mat.Vec3) (Hit, bool) {
	t, ok := planeHit(origin, direction)
	if !ok {
		return Hit{}, false
	}
	p := origin.Add(direction.Scale(t))
	if !r.contains(p.X, p.Y) {
		return Hit{}, false
	}
	n := orientTowardSource(mat.UnitZ, direction)
	return Hit{Point: p, Normal: n, T: t}, true
}

// Area implements Shape.
func (r *Rectangular) Area() float64 { return r.Width * r.Height }

// Sample implements Shape with a regular grid over the rectangle.
func (r *Rectangular) Sample(n int) (points, normals []mat.Vec3) {
	if n <= 0 {
		return nil, nil
	}
	cols := int(math.Sqrt(float64(n)))
	if cols < 1 {
		cols = 1
	}
	rows := n / cols
	if rows < 1 {
		rows = 1
	}
	points = make([]mat.Vec3, 0, cols*rows)
	normals = make([]mat.Vec3, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := -r.Width/2 + r.Width*(float64(i)+0.5)/float64(cols)
			y := -r.Height/2 + r.Height*(float64(j)+0.5)/float64(rows)
			points = append(points, mat.NewVec3(x, y, 0))
			normals = append(normals, mat.UnitZ)
		}
	}
	return
}

// Edges implements Shape: the four-sided outline.
func (r *Rectangular) Edges() [][]mat.Vec3 {
	hw, hh := r.Width/2, r.Height/2
	return [][]mat.Vec3{{
		mat.NewVec3(-hw, -hh, 0),
		mat.NewVec3(hw, -hh, 0),
		mat.NewVec3(hw, hh, 0),
		mat.NewVec3(-hw, hh, 0),
		mat.NewVec3(-hw, -hh, 0),
	}}
}

// Complementary implements Shape.
func (r *Rectangular) Complementary() bool { return r.ComplementVal }

