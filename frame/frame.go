// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frame implements the reference-frame graph: a tree of affine
// frames with lazy propagation (spec.md §3, §4.1). It plays the role
// gofem's Domain/Region tree plays for a finite-element mesh: a
// single-writer, many-readers structure that a trace reads while the
// model mutates it between traces (spec.md §5).
package frame

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// Kind tags which variant a Frame node is, so recalculateSelf can dispatch
// without a virtual call per node (spec.md §9: "implementers can
// specialise per variant by dispatching outside the ray loop").
type Kind int

const (
	// KindWorld is the unique root frame: identity, no parent.
	KindWorld Kind = iota
	// KindTranslated offsets the parent by a frame-relative vector.
	KindTranslated
	// KindRotated rotates the parent about a frame-relative axis.
	KindRotated
	// KindTripod builds a tilted surface from three leg lengths.
	KindTripod
)

// namedVec3 is one entry of a frame's free-form point/axis list.
type namedVec3 struct {
	name string
	rel  Vec3Alias // frame-relative value
	abs  Vec3Alias // absolute value, valid only while the owning frame is calculated
}

// Vec3Alias avoids an import cycle annotation noise at call sites; it is
// exactly mat.Vec3.
type Vec3Alias = mat.Vec3

// Frame is one node of the reference-frame tree.
type Frame struct {
	name   string
	kind   Kind
	parent *Frame
	kids   []*Frame

	// absolute pose, valid only while calculated is true
	center      mat.Vec3
	orientation mat.Matrix3
	calculated  bool

	points []namedVec3
	axes   []namedVec3

	// variant-specific state
	translateD  mat.Vec3     // KindTranslated: relative offset
	rotateAxis  mat.Vec3     // KindRotated: relative rotation axis
	rotateAngle float64      // KindRotated: rotation angle (rad)
	rotateCache mat.Matrix3  // KindRotated: cached R(axis, angle)
	rotateValid bool         // KindRotated: whether rotateCache matches rotateAngle
	tripod      *tripodState // KindTripod: leg-length geometry (nil otherwise)
}

// NewWorld returns the root of a new frame tree: identity center and
// orientation, as required by spec.md §3.
func NewWorld() *Frame {
	f := &Frame{name: "world", kind: KindWorld}
	f.center = mat.Zero
	f.orientation = mat.Identity3()
	f.calculated = true
	return f
}

// Name returns the frame's name.
func (f *Frame) Name() string { return f.name }

// Parent returns the parent frame, or nil for the world frame.
func (f *Frame) Parent() *Frame { return f.parent }

// Children returns the frame's children, in the order they were attached.
func (f *Frame) Children() []*Frame { return f.kids }

// Center returns the frame's absolute center. Callers must ensure the
// frame has been recalculated since the last mutation anywhere in its
// ancestry (spec.md §3 invariant); Calculated reports whether that holds
// for this node specifically.
func (f *Frame) Center() mat.Vec3 { return f.center }

// Orientation returns the frame's absolute orientation.
func (f *Frame) Orientation() mat.Matrix3 { return f.orientation }

// Calculated reports whether this node's absolute pose is up to date.
func (f *Frame) Calculated() bool { return f.calculated }

// addChild attaches child under f. Fails (panics, per spec.md §4.1 "fatal
// logic error" framing for structural misuse) if child already has a
// parent.
func (f *Frame) addChild(child *Frame) {
	if child.parent != nil {
		chk.Panic("frame: cannot add child %q: it already has parent %q", child.name, child.parent.name)
	}
	child.parent = f
	f.kids = append(f.kids, child)
}

// Translated creates a new child frame offset from parent by the
// frame-relative vector d (spec.md §3): center = parent.center +
// parent.orientation·d, orientation = parent.orientation.
func Translated(parent *Frame, name string, d mat.Vec3) *Frame {
	f := &Frame{name: name, kind: KindTranslated, translateD: d}
	parent.addChild(f)
	return f
}

// Rotated creates a new child frame rotated from parent about a
// frame-relative axis by angle radians (spec.md §3): orientation =
// parent.orientation·R(axis,angle), center = parent.center.
func Rotated(parent *Frame, name string, axis mat.Vec3, angle float64) *Frame {
	f := &Frame{name: name, kind: KindRotated, rotateAxis: axis, rotateAngle: angle}
	parent.addChild(f)
	return f
}

// SetDistance changes a Translated frame's offset and invalidates its
// subtree; callers must call Recalculate afterwards (spec.md §4.1).
func (f *Frame) SetDistance(d mat.Vec3) {
	if f.kind != KindTranslated {
		chk.Panic("frame: SetDistance called on non-Translated frame %q", f.name)
	}
	f.translateD = d
	f.invalidate()
}

// SetRotation changes a Rotated frame's axis and angle and invalidates
// its subtree.
func (f *Frame) SetRotation(axis mat.Vec3, angle float64) {
	if f.kind != KindRotated {
		chk.Panic("frame: SetRotation called on non-Rotated frame %q", f.name)
	}
	f.rotateAxis = axis
	f.rotateAngle = angle
	f.rotateValid = false
	f.invalidate()
}

// SetAngle changes only a Rotated frame's angle and keeps its axis. The
// cached rotation matrix is invalidated, so the next recompute rebuilds
// it from the axis and the new angle.
func (f *Frame) SetAngle(angle float64) {
	if f.kind != KindRotated {
		chk.Panic("frame: SetAngle called on non-Rotated frame %q", f.name)
	}
	f.rotateAngle = angle
	f.rotateValid = false
	f.invalidate()
}

// invalidate marks this node's subtree as not-calculated. Recalculate
// must be called again before any absolute value is read.
func (f *Frame) invalidate() {
	f.calculated = false
	for _, k := range f.kids {
		k.invalidate()
	}
}

// Recalculate recomputes this frame's absolute pose (variant-specific),
// then propagates to its relative points/axes, then recurses into
// children (spec.md §4.1). Calling it twice in a row is idempotent
// (testable property 1).
func (f *Frame) Recalculate() {
	f.recalculateSelf()
	R := f.orientation
	c := f.center
	for i := range f.axes {
		f.axes[i].abs = R.MulVec(f.axes[i].rel)
	}
	for i := range f.points {
		f.points[i].abs = R.MulVec(f.points[i].rel).Add(c)
	}
	f.calculated = true
	for _, k := range f.kids {
		k.Recalculate()
	}
}

// recalculateSelf computes center/orientation from the parent's already
// up-to-date absolute pose, per variant.
func (f *Frame) recalculateSelf() {
	switch f.kind {
	case KindWorld:
		f.center = mat.Zero
		f.orientation = mat.Identity3()

	case KindTranslated:
		p := f.parent
		f.orientation = p.orientation
		f.center = p.center.Add(p.orientation.MulVec(f.translateD))

	case KindRotated:
		p := f.parent
		if !f.rotateValid {
			f.rotateCache = mat.Rotation(f.rotateAxis, f.rotateAngle)
			f.rotateValid = true
		}
		f.orientation = p.orientation.Mul(f.rotateCache)
		f.center = p.center

	case KindTripod:
		f.recalculateTripod()

	default:
		chk.Panic("frame: unknown frame kind %d for %q", f.kind, f.name)
	}
}

// AddPoint registers a named, frame-relative point and returns its stable
// index. Re-adding a name replaces it in place (spec.md §4.1).
func (f *Frame) AddPoint(name string, rel mat.Vec3) int {
	return addNamed(&f.points, name, rel)
}

// AddAxis registers a named, frame-relative axis and returns its stable
// index.
func (f *Frame) AddAxis(name string, rel mat.Vec3) int {
	return addNamed(&f.axes, name, rel)
}

func addNamed(list *[]namedVec3, name string, rel mat.Vec3) int {
	for i := range *list {
		if (*list)[i].name == name {
			(*list)[i].rel = rel
			return i
		}
	}
	*list = append(*list, namedVec3{name: name, rel: rel})
	return len(*list) - 1
}

// Point returns the absolute position of a named point (valid only while
// Calculated).
func (f *Frame) Point(name string) (mat.Vec3, bool) {
	for _, p := range f.points {
		if p.name == name {
			return p.abs, true
		}
	}
	return mat.Vec3{}, false
}

// Axis returns the absolute direction of a named axis (valid only while
// Calculated).
func (f *Frame) Axis(name string) (mat.Vec3, bool) {
	for _, a := range f.axes {
		if a.name == name {
			return a.abs, true
		}
	}
	return mat.Vec3{}, false
}

// PointAt returns the absolute position of the point at a stable index
// previously returned by AddPoint.
func (f *Frame) PointAt(index int) mat.Vec3 { return f.points[index].abs }

// AxisAt returns the absolute direction of the axis at a stable index
// previously returned by AddAxis.
func (f *Frame) AxisAt(index int) mat.Vec3 { return f.axes[index].abs }

// Remove detaches f from its parent. Calling it on the world frame, or on
// a frame whose parent disagrees, is the "fatal logic error" spec.md
// §4.1 calls out.
func (f *Frame) Remove() {
	if f.parent == nil {
		chk.Panic("frame: cannot remove the world frame (or a frame with no parent)")
	}
	p := f.parent
	for i, k := range p.kids {
		if k == f {
			p.kids = append(p.kids[:i], p.kids[i+1:]...)
			f.parent = nil
			return
		}
	}
	chk.Panic("frame: %q is not actually a child of %q", f.name, p.name)
}

// ToLocalDir converts an absolute-frame vector (direction) into this frame's
// local coordinates: Rᵗ·v. Used by shapes/boundaries that need a ray's
// direction expressed relative to a surface frame.
func (f *Frame) ToLocalDir(v mat.Vec3) mat.Vec3 {
	return f.orientation.Transpose().MulVec(v)
}

// ToLocalPoint converts an absolute-frame point into this frame's local
// coordinates: Rᵗ·(p - center).
func (f *Frame) ToLocalPoint(p mat.Vec3) mat.Vec3 {
	return f.orientation.Transpose().MulVec(p.Sub(f.center))
}

// ToWorldDir converts a frame-local direction into absolute coordinates.
func (f *Frame) ToWorldDir(v mat.Vec3) mat.Vec3 { return f.orientation.MulVec(v) }

// ToWorldPoint converts a frame-local point into absolute coordinates.
func (f *Frame) ToWorldPoint(p mat.Vec3) mat.Vec3 {
	return f.orientation.MulVec(p).Add(f.center)
}
