// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rbeam implements the ray beam: a structure-of-arrays collection
// of N rays (spec.md §3), the counterpart of gofem's Solution struct
// (which likewise keeps per-node/per-ip quantities in parallel slices
// rather than an array of small structs). Each floating-point field is
// backed by a gosl/la.Vector, matching the teacher's dependency on `gosl/la` for
// bulk numeric storage.
package rbeam

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/rayzal/mat"
)

// Mode tags whether a beam is being traced sequentially or
// non-sequentially (spec.md §3).
type Mode int

const (
	// Sequential traces surfaces in a fixed order.
	Sequential Mode = iota
	// NonSequential traces the heuristically-visible surface set.
	NonSequential
)

// RelativeTo records which frame a beam's vector fields are currently
// expressed in: world coordinates, or a named surface frame.
type RelativeTo struct {
	IsWorld bool
	Frame   string
}

// World is the RelativeTo value meaning "world coordinates".
func World() RelativeTo { return RelativeTo{IsWorld: true} }

// InFrame is the RelativeTo value meaning "relative to the named frame".
func InFrame(name string) RelativeTo { return RelativeTo{Frame: name} }

// maskBits packs the three per-ray flags of spec.md §3 into one byte per
// ray, avoiding three separate []bool slices.
const (
	bitHasRay uint8 = 1 << iota
	bitIntercepted
	bitChief
)

// SurfaceTag identifies the boundary a non-sequential ray last touched;
// the engine keeps these as opaque comparable keys (surface names) so
// rbeam never needs to import the boundary package.
type SurfaceTag = string

// RayBeam is the structure-of-arrays beam of spec.md §3.
type RayBeam struct {
	N int

	Origins      la.Vector // 3N
	Destinations la.Vector // 3N
	Directions   la.Vector // 3N
	Normals      la.Vector // 3N

	Lengths       la.Vector // N
	CumOptLengths la.Vector // N
	Wavelengths   la.Vector // N
	RefNdx        la.Vector // N

	AmplitudeRe la.Vector // N
	AmplitudeIm la.Vector // N

	IDs      []uint32
	Surfaces []SurfaceTag
	mask     []uint8

	Mode       Mode
	RelativeTo RelativeTo
}

// New allocates a beam with capacity n, all rays initially pruned
// (has-ray clear) until Seed fills them in.
func New(n int) *RayBeam {
	b := &RayBeam{
		N:             n,
		Origins:       make(la.Vector, 3*n),
		Destinations:  make(la.Vector, 3*n),
		Directions:    make(la.Vector, 3*n),
		Normals:       make(la.Vector, 3*n),
		Lengths:       make(la.Vector, n),
		CumOptLengths: make(la.Vector, n),
		Wavelengths:   make(la.Vector, n),
		RefNdx:        make(la.Vector, n),
		AmplitudeRe:   make(la.Vector, n),
		AmplitudeIm:   make(la.Vector, n),
		IDs:           make([]uint32, n),
		Surfaces:      make([]SurfaceTag, n),
		mask:          make([]uint8, n),
		Mode:          Sequential,
		RelativeTo:    World(),
	}
	return b
}

// HasRay reports whether ray i currently carries energy (spec.md §3:
// `pruned` = ¬hasRay).
func (b *RayBeam) HasRay(i int) bool { return b.mask[i]&bitHasRay != 0 }

// Intercepted reports whether ray i was intercepted during the current
// stage.
func (b *RayBeam) Intercepted(i int) bool { return b.mask[i]&bitIntercepted != 0 }

// Chief reports whether ray i is marked as the chief ray.
func (b *RayBeam) Chief(i int) bool { return b.mask[i]&bitChief != 0 }

// SetHasRay sets/clears the has-ray bit for ray i.
func (b *RayBeam) SetHasRay(i int, v bool) { setBit(&b.mask[i], bitHasRay, v) }

// SetIntercepted sets/clears the intercepted bit for ray i.
func (b *RayBeam) SetIntercepted(i int, v bool) { setBit(&b.mask[i], bitIntercepted, v) }

// SetChief sets/clears the chief-ray bit for ray i.
func (b *RayBeam) SetChief(i int, v bool) { setBit(&b.mask[i], bitChief, v) }

func setBit(m *uint8, bit uint8, v bool) {
	if v {
		*m |= bit
	} else {
		*m &^= bit
	}
}

// Prune clears ray i's has-ray bit without moving any data (spec.md §9).
func (b *RayBeam) Prune(i int) { b.SetHasRay(i, false) }

// ClearIntercepted clears the intercepted bit for every ray; called at
// the start of each stage so stale hits from a previous surface don't
// leak into statistics for this one.
func (b *RayBeam) ClearIntercepted() {
	for i := range b.mask {
		setBit(&b.mask[i], bitIntercepted, false)
	}
}

// Origin returns ray i's origin as a Vec3.
func (b *RayBeam) Origin(i int) mat.Vec3 { return vecAt(b.Origins, i) }

// Destination returns ray i's destination as a Vec3.
func (b *RayBeam) Destination(i int) mat.Vec3 { return vecAt(b.Destinations, i) }

// Direction returns ray i's direction as a Vec3.
func (b *RayBeam) Direction(i int) mat.Vec3 { return vecAt(b.Directions, i) }

// Normal returns ray i's last-hit normal as a Vec3.
func (b *RayBeam) Normal(i int) mat.Vec3 { return vecAt(b.Normals, i) }

// SetOrigin sets ray i's origin.
func (b *RayBeam) SetOrigin(i int, v mat.Vec3) { setVecAt(b.Origins, i, v) }

// SetDestination sets ray i's destination.
func (b *RayBeam) SetDestination(i int, v mat.Vec3) { setVecAt(b.Destinations, i, v) }

// SetDirection sets ray i's direction; callers are responsible for unit
// length (spec.md §3 invariant).
func (b *RayBeam) SetDirection(i int, v mat.Vec3) { setVecAt(b.Directions, i, v) }

// SetNormal sets ray i's last-hit normal.
func (b *RayBeam) SetNormal(i int, v mat.Vec3) { setVecAt(b.Normals, i, v) }

// Amplitude returns ray i's complex amplitude.
func (b *RayBeam) Amplitude(i int) mat.Complex {
	return complex(b.AmplitudeRe[i], b.AmplitudeIm[i])
}

// SetAmplitude sets ray i's complex amplitude.
func (b *RayBeam) SetAmplitude(i int, c mat.Complex) {
	b.AmplitudeRe[i] = real(c)
	b.AmplitudeIm[i] = imag(c)
}

func vecAt(v la.Vector, i int) mat.Vec3 {
	return mat.NewVec3(v[3*i], v[3*i+1], v[3*i+2])
}

func setVecAt(v la.Vector, i int, p mat.Vec3) {
	v[3*i], v[3*i+1], v[3*i+2] = p.X, p.Y, p.Z
}

// Seed initialises ray i with an origin/direction/wavelength/refractive
// index/id, sets has-ray, clears intercepted/chief, and gives it unit
// amplitude (spec.md §3 invariant: "amplitude is non-zero for live
// rays").
func (b *RayBeam) Seed(i int, origin, direction mat.Vec3, wavelength, n0 float64, id uint32) {
	if i < 0 || i >= b.N {
		chk.Panic("rbeam: Seed index %d out of range [0,%d)", i, b.N)
	}
	b.SetOrigin(i, origin)
	b.SetDirection(i, direction.Normalize())
	b.Wavelengths[i] = wavelength
	b.RefNdx[i] = n0
	b.IDs[i] = id
	b.Lengths[i] = 0
	b.CumOptLengths[i] = 0
	b.SetAmplitude(i, mat.One)
	b.SetHasRay(i, true)
	b.SetIntercepted(i, false)
	b.SetChief(i, false)
	b.Surfaces[i] = ""
}
