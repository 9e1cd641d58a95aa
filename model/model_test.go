// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"strings"
	"testing"

	_ "github.com/cpmech/rayzal/ele/stock" // registers the stock element factories
	"github.com/cpmech/rayzal/recipe"
)

func buildFrom(t *testing.T, src string) *GenericCompositeModel {
	t.Helper()
	rec, err := recipe.Parse("test.rz", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	m, err := Build(rec)
	if err != nil {
		t.Fatalf("build error: %v", err)
	}
	return m
}

func TestBuildBareBlockElementDefaults(t *testing.T) {
	m := buildFrom(t, `BlockElement block;`)
	el, ok := m.Element("block")
	if !ok {
		t.Fatalf("expected element %q to exist", "block")
	}
	c := el.Frame().Center()
	if math.Abs(c.X) > 1e-12 || math.Abs(c.Y) > 1e-12 || math.Abs(c.Z) > 1e-12 {
		t.Fatalf("expected block centered at origin, got %+v", c)
	}
	if v := el.Properties().Real("width"); v != 1 {
		t.Fatalf("expected default width 1, got %v", v)
	}
	if v := el.Properties().Real("height"); v != 1 {
		t.Fatalf("expected default height 1, got %v", v)
	}
	if v := el.Properties().Real("depth"); v != 1 {
		t.Fatalf("expected default depth 1, got %v", v)
	}
}

func TestDofDrivenTranslateRelocatesElement(t *testing.T) {
	src := `
dof x (0, 1) = 0;
translate(dx=x, dy=0, dz=0) {
    BlockElement block;
}
`
	m := buildFrom(t, src)
	if !m.SetDof("x", 0.37) {
		t.Fatalf("expected SetDof to accept 0.37 within [0,1]")
	}
	if err := m.Recalculate(); err != nil {
		t.Fatalf("recalculate error: %v", err)
	}
	el, ok := m.Element("block")
	if !ok {
		t.Fatalf("expected element %q to exist", "block")
	}
	c := el.Frame().Center()
	if math.Abs(c.X-0.37) > 1e-12 {
		t.Fatalf("expected center.X ~= 0.37, got %v", c.X)
	}
	if math.Abs(c.Y) > 1e-12 || math.Abs(c.Z) > 1e-12 {
		t.Fatalf("expected Y/Z unchanged, got %+v", c)
	}
}

func TestDofOutOfBoundsRejectedSilently(t *testing.T) {
	src := `dof x (0, 1) = 0.2;`
	m := buildFrom(t, src)
	before, _ := m.Dof("x")
	if m.SetDof("x", 5) {
		t.Fatalf("expected out-of-bounds SetDof to be rejected")
	}
	after, _ := m.Dof("x")
	if after != before {
		t.Fatalf("expected value unchanged after rejected set: before=%v after=%v", before, after)
	}
}

func TestDuplicateElementNameFails(t *testing.T) {
	_, err := buildModelErr(t, `
BlockElement dup;
BlockElement dup;
`)
	if err == nil {
		t.Fatalf("expected duplicate element name to fail")
	}
}

func TestUnknownFactoryFails(t *testing.T) {
	_, err := buildModelErr(t, `NoSuchFactory thing;`)
	if err == nil {
		t.Fatalf("expected unknown factory to fail")
	}
}

func TestOpticalPathResolvesSurfaces(t *testing.T) {
	src := `
FlatMirror m1;
FlatMirror m2;
path main m1 to m2;
`
	m := buildFrom(t, src)
	op, ok := m.Path("main")
	if !ok {
		t.Fatalf("expected path %q to exist", "main")
	}
	if len(op.Surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(op.Surfaces))
	}
	stages := op.Stages()
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
}

func TestOpticalPathIncludesEverySurfaceOfAMultiSurfaceElement(t *testing.T) {
	src := `
ConicLens lens;
ApertureStop stop;
path main lens to stop;
`
	m := buildFrom(t, src)
	op, ok := m.Path("main")
	if !ok {
		t.Fatalf("expected path %q to exist", "main")
	}
	// lens contributes "front"+"back", stop contributes "hole"+"rim":
	// a path naming two two-surface elements must carry all four, not
	// just one surface per element (spec.md §2 "each optical element
	// contributes one or more optical surfaces").
	if len(op.Surfaces) != 4 {
		t.Fatalf("expected 4 surfaces (2 from lens + 2 from stop), got %d", len(op.Surfaces))
	}
	if op.Surfaces[0].Name != "front" || op.Surfaces[1].Name != "back" {
		t.Fatalf("expected lens surfaces in declaration order front,back; got %q,%q",
			op.Surfaces[0].Name, op.Surfaces[1].Name)
	}
	stages := op.Stages()
	if len(stages) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(stages))
	}
}

func TestOnPortMountsChildOnTargetPort(t *testing.T) {
	src := `
FlatMirror m1;
on reflected of m1 {
    BlockElement behind;
}
`
	rec, err := recipe.Parse("test.rz", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	m1, err := Build(rec)
	if err != nil {
		// FlatMirror's port name is not guaranteed to be "reflected"; accept
		// either a clean build or an "unknown port" diagnostic, but nothing
		// else.
		if !containsAny(err.Error(), []string{"unknown port", "no port"}) {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if _, ok := m1.Element("behind"); !ok {
		t.Fatalf("expected element %q to exist", "behind")
	}
}

func buildModelErr(t *testing.T, src string) (*GenericCompositeModel, error) {
	t.Helper()
	rec, err := recipe.Parse("test.rz", src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return Build(rec)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
