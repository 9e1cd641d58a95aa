// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rbeam

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/mat"
)

// FrameOps is the minimal frame-graph capability convert.go needs: local
// <-> world conversion for points and directions. The boundary/trace
// packages pass a *frame.Frame here without rbeam importing frame (which
// would create a cycle, since frame has no reason to know about beams).
type FrameOps interface {
	ToLocalPoint(p mat.Vec3) mat.Vec3
	ToLocalDir(v mat.Vec3) mat.Vec3
	ToWorldPoint(p mat.Vec3) mat.Vec3
	ToWorldDir(v mat.Vec3) mat.Vec3
}

// ToRelative converts the whole beam's origins/destinations/directions/
// normals into the given frame's local coordinates (spec.md §3). It is a
// no-op if the beam is already relative to that frame name.
func (b *RayBeam) ToRelative(name string, ops FrameOps) {
	if !b.RelativeTo.IsWorld && b.RelativeTo.Frame == name {
		return
	}
	if !b.RelativeTo.IsWorld {
		// beam is relative to a different frame: callers must route
		// through FromRelative first (spec.md §4.4's transfer() always
		// pairs toRelative(f) with a matching fromRelative(f)).
		chk.Panic("rbeam: beam must return to world coordinates between two different surface frames")
	}
	for i := 0; i < b.N; i++ {
		b.SetOrigin(i, ops.ToLocalPoint(b.Origin(i)))
		b.SetDestination(i, ops.ToLocalPoint(b.Destination(i)))
		b.SetDirection(i, ops.ToLocalDir(b.Direction(i)))
		b.SetNormal(i, ops.ToLocalDir(b.Normal(i)))
	}
	b.RelativeTo = InFrame(name)
}

// FromRelative converts the whole beam back to world coordinates
// (spec.md §3). No-op if already world-relative.
func (b *RayBeam) FromRelative(ops FrameOps) {
	if b.RelativeTo.IsWorld {
		return
	}
	for i := 0; i < b.N; i++ {
		b.SetOrigin(i, ops.ToWorldPoint(b.Origin(i)))
		b.SetDestination(i, ops.ToWorldPoint(b.Destination(i)))
		b.SetDirection(i, ops.ToWorldDir(b.Direction(i)))
		b.SetNormal(i, ops.ToWorldDir(b.Normal(i)))
	}
	b.RelativeTo = World()
}
