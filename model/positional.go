// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// positionalParams maps a stock factory name to the declared order of
// its positional properties (spec.md §6 element_decl arglist: a
// positional argument binds to "the Nth parameter the target factory
// declares", which only a factory-specific table can resolve generically
// since ele.New itself takes an unordered map). dx/dy/dz (the mount
// offset every stock element also accepts) are deliberately excluded:
// they are reachable only by name, matching how a recipe normally places
// an element via an enclosing translate context rather than inline
// positional coordinates.
//
// custom_element instantiation (model.go's instantiateCustom) does not
// consult this table: a custom element's constituent steps are nested
// recipe statements, not a single factory call, so there is no single
// "declared order" to resolve against. Positional arguments passed to a
// custom element instantiation are therefore rejected; only named
// overrides are accepted. This is a deliberate simplification, recorded
// in DESIGN.md.
var positionalParams = map[string][]string{
	"BlockElement":    {"width", "height", "depth"},
	"ConicLens":       {"diameter", "focal", "K", "n", "thickness"},
	"LensletArray":    {"width", "height", "cols", "rows", "focal", "n"},
	"FlatMirror":      {"diameter"},
	"ConicMirror":     {"diameter", "roc", "K", "hole"},
	"PhaseScreen":     {"diameter", "n"},
	"ApertureStop":    {"diameter"},
	"RectangularStop": {"width", "height"},
	"Obstruction":     {"diameter"},
	"Tripod":          {"leg1", "leg2", "leg3", "radius", "alpha"},
	"CircularWindow":  {"diameter", "thickness", "n"},
	"Detector":        {"cols", "rows", "pitch"},
}
