// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// Kind tags a property's declared type (spec.md §3: "typed: real,
// integer, bool, string").
type Kind int

const (
	KindReal Kind = iota
	KindInt
	KindBool
	KindString
)

// prop is one property slot: its declared type, current value (only the
// field matching Kind is meaningful) and, for a bounded KindReal, the
// [min,max] domain enforced on every Set.
type prop struct {
	kind     Kind
	real     float64
	integer  int
	boolean  bool
	str      string
	min, max float64
	bounded  bool
}

// Properties is an element's typed property table (spec.md §3), keyed by
// name, declared at construction with defaults.
type Properties struct {
	order  []string
	values map[string]*prop
	onSet  func(name string)
}

// NewProperties builds an empty property table. onChanged is called
// after every successful Set (nil is fine, e.g. for elements with no
// geometry to re-derive).
func NewProperties(onChanged func(name string)) *Properties {
	return &Properties{values: make(map[string]*prop), onSet: onChanged}
}

// DeclareReal declares a real-valued property with a default and an
// optional bounded domain (pass min>max to leave it unbounded).
func (p *Properties) DeclareReal(name string, def float64, min, max float64) {
	p.declare(name, &prop{kind: KindReal, real: def, min: min, max: max, bounded: min <= max})
}

// DeclareInt declares an integer-valued property with a default.
func (p *Properties) DeclareInt(name string, def int) {
	p.declare(name, &prop{kind: KindInt, integer: def})
}

// DeclareBool declares a boolean property with a default.
func (p *Properties) DeclareBool(name string, def bool) {
	p.declare(name, &prop{kind: KindBool, boolean: def})
}

// DeclareString declares a string property with a default.
func (p *Properties) DeclareString(name string, def string) {
	p.declare(name, &prop{kind: KindString, str: def})
}

func (p *Properties) declare(name string, pr *prop) {
	if _, ok := p.values[name]; ok {
		chk.Panic("ele: property %q already declared", name)
	}
	p.values[name] = pr
	p.order = append(p.order, name)
}

// Names lists every declared property, in declaration order.
func (p *Properties) Names() []string { return p.order }

// Kind reports a declared property's type without panicking, so a
// caller driving properties from untyped recipe expressions (model
// package) can tell whether SetReal/SetInt applies before calling it.
func (p *Properties) Kind(name string) (Kind, bool) {
	pr, ok := p.values[name]
	if !ok {
		return 0, false
	}
	return pr.kind, true
}

// Real returns a real property's current value.
func (p *Properties) Real(name string) float64 { return p.get(name, KindReal).real }

// Int returns an integer property's current value.
func (p *Properties) Int(name string) int { return p.get(name, KindInt).integer }

// Bool returns a boolean property's current value.
func (p *Properties) Bool(name string) bool { return p.get(name, KindBool).boolean }

// String returns a string property's current value.
func (p *Properties) String(name string) string { return p.get(name, KindString).str }

func (p *Properties) get(name string, want Kind) *prop {
	pr, ok := p.values[name]
	if !ok {
		chk.Panic("ele: property %q is not declared", name)
	}
	if pr.kind != want {
		chk.Panic("ele: property %q is not of the requested kind", name)
	}
	return pr
}

// SetReal sets a real property. A value outside its declared domain is
// rejected silently, value unchanged, matching spec.md §4.6's DOF
// out-of-bounds rule extended to properties in the same table.
func (p *Properties) SetReal(name string, v float64) {
	pr := p.get(name, KindReal)
	if pr.bounded && (v < pr.min || v > pr.max) {
		return
	}
	pr.real = v
	p.fire(name)
}

// SetInt sets an integer property.
func (p *Properties) SetInt(name string, v int) {
	pr := p.get(name, KindInt)
	pr.integer = v
	p.fire(name)
}

// SetBool sets a boolean property.
func (p *Properties) SetBool(name string, v bool) {
	pr := p.get(name, KindBool)
	pr.boolean = v
	p.fire(name)
}

// SetString sets a string property.
func (p *Properties) SetString(name string, v string) {
	pr := p.get(name, KindString)
	pr.str = v
	p.fire(name)
}

func (p *Properties) fire(name string) {
	if p.onSet != nil {
		p.onSet(name)
	}
}
