// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model implements GenericCompositeModel (spec.md §3/§4.6): the
// instantiation of a parsed recipe into a live frame graph of elements,
// bound to DOF/parameter Real slots that a caller can drive at runtime.
// Grounded on gofem's fem.FEM lifecycle (Start builds the mesh/solver
// graph once from parsed input; Run drives it forward one load step at a
// time) — GenericCompositeModel plays the same "build once from parsed
// input, then mutate a handful of driven values and recompute" role,
// with recipe.Recipe standing in for fem's parsed .sim/.dat/.fem trio
// and Recalculate standing in for fem's per-step residual/state update.
package model

import (
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
	"github.com/cpmech/rayzal/mat"
	"github.com/cpmech/rayzal/recipe"
	"github.com/cpmech/rayzal/trace"
)

// slot is one DOF or parameter Real value (spec.md §3): a current value,
// an optional [min,max] bound, and the name it is known by in every
// recipe.Scope built from this model.
type slot struct {
	name     string
	value    float64
	hasBound bool
	min, max float64
}

func (s *slot) set(v float64) {
	if s.hasBound && (v < s.min || v > s.max) {
		return // spec.md §4.6: out-of-bounds DOF/param set is silently rejected
	}
	s.value = v
}

// frameBinding re-applies a translate/rotate context's compiled
// arguments to its frame on every Recalculate (spec.md §4.6:
// "recalculate() re-evaluates only what depends on changed inputs" —
// this module re-evaluates all bindings on every call, which is correct
// but not the minimal dirty-tracking the spec describes; see DESIGN.md).
type frameBinding struct {
	kind  recipe.ContextKind
	frame *frame.Frame
	scope *recipe.Scope
	args  map[string]recipe.Expr
}

// elementBinding re-applies one element step's compiled arguments (mount
// offset plus declared properties) on every Recalculate.
type elementBinding struct {
	element ele.Element
	scope   *recipe.Scope
	args    map[string]recipe.Expr
}

// OpticalPath is a named, ordered sequence of element surfaces a beam
// may be traced along (spec.md §3 RecipeOpticalPath), resolved to
// concrete ele.Surface values once every named element exists.
type OpticalPath struct {
	Name     string
	Surfaces []*ele.Surface
}

// GenericCompositeModel is a recipe instantiated into a live frame graph
// (spec.md §3/§4.6): DOF/parameter slots, the element instance registry,
// named optical paths, and the bindings needed to re-apply compiled
// expressions after a DOF or parameter changes.
type GenericCompositeModel struct {
	World      *frame.Frame
	recipe     *recipe.Recipe
	rootScope  *recipe.Scope
	dofs       map[string]*slot
	dofOrder   []string
	params     map[string]*slot
	paramOrder []string
	elements   map[string]ele.Element
	elemOrder  []string
	paths      map[string]*OpticalPath
	frameBinds []frameBinding
	elemBinds  []elementBinding
}

// Build instantiates rec into a fresh frame graph mounted on a new world
// frame (spec.md §4.6's GenericCompositeModel construction algorithm):
// bind DOFs/parameters to Real slots and evaluate their defaults, then
// walk the recipe depth-first allocating frames and elements in source
// order, then resolve every named optical path.
func Build(rec *recipe.Recipe) (*GenericCompositeModel, error) {
	m := &GenericCompositeModel{
		World:     frame.NewWorld(),
		recipe:    rec,
		rootScope: recipe.NewScope(nil),
		dofs:      make(map[string]*slot),
		params:    make(map[string]*slot),
		elements:  make(map[string]ele.Element),
		paths:     make(map[string]*OpticalPath),
	}
	for _, d := range rec.Dofs {
		s, err := m.bindSlot(d.Name, d.Min, d.Max, d.Default, m.dofs)
		if err != nil {
			return nil, err
		}
		m.dofOrder = append(m.dofOrder, d.Name)
		m.rootScope.Vars[d.Name] = s.value
	}
	for _, pd := range rec.Params {
		s, err := m.bindSlot(pd.Name, pd.Min, pd.Max, pd.Default, m.params)
		if err != nil {
			return nil, err
		}
		m.paramOrder = append(m.paramOrder, pd.Name)
		m.rootScope.Vars[pd.Name] = s.value
	}
	if err := m.walk(rec.Root, m.World, m.rootScope); err != nil {
		return nil, err
	}
	for _, pd := range rec.Paths {
		op, err := m.resolvePath(pd)
		if err != nil {
			return nil, err
		}
		m.paths[pd.Name] = op
	}
	m.World.Recalculate()
	return m, nil
}

func (m *GenericCompositeModel) bindSlot(name string, min, max, def recipe.Expr, into map[string]*slot) (*slot, error) {
	if _, dup := into[name]; dup {
		return nil, chk.Err("model: duplicate DOF/parameter name %q", name)
	}
	s := &slot{name: name}
	if min != nil && max != nil {
		lo, err := min.Eval(m.rootScope)
		if err != nil {
			return nil, chk.Err("model: evaluating bound for %q: %v", name, err)
		}
		hi, err := max.Eval(m.rootScope)
		if err != nil {
			return nil, chk.Err("model: evaluating bound for %q: %v", name, err)
		}
		s.hasBound, s.min, s.max = true, lo, hi
	}
	v, err := def.Eval(m.rootScope)
	if err != nil {
		return nil, chk.Err("model: evaluating default for %q: %v", name, err)
	}
	s.value = v
	into[name] = s
	return s, nil
}

// walk implements spec.md §4.6's depth-first context walk: allocate this
// context's own frame (root/translate/rotate/port), instantiate its
// element steps in source order, then recurse into its children.
func (m *GenericCompositeModel) walk(ctx *recipe.Context, mount *frame.Frame, parent *recipe.Scope) error {
	scope := recipe.NewScope(parent)
	for _, v := range ctx.Vars {
		val, err := v.Value.Eval(scope)
		if err != nil {
			return chk.Err("model: evaluating var %q: %v", v.Name, err)
		}
		scope.Vars[v.Name] = val
	}

	var ownFrame *frame.Frame
	switch ctx.Kind {
	case recipe.KindRoot:
		ownFrame = mount
	case recipe.KindTranslate:
		args, err := resolveContextArgs(ctx.Args, []string{"dx", "dy", "dz"}, scope)
		if err != nil {
			return err
		}
		d := mat.NewVec3(args["dx"], args["dy"], args["dz"])
		ownFrame = frame.Translated(mount, contextName(ctx), d)
		m.frameBinds = append(m.frameBinds, frameBinding{kind: ctx.Kind, frame: ownFrame, scope: scope, args: ctxArgExprMap(ctx.Args, []string{"dx", "dy", "dz"})})
	case recipe.KindRotate:
		args, err := resolveContextArgs(ctx.Args, []string{"angle", "ex", "ey", "ez"}, scope)
		if err != nil {
			return err
		}
		axis := mat.NewVec3(args["ex"], args["ey"], args["ez"])
		ownFrame = frame.Rotated(mount, contextName(ctx), axis, args["angle"])
		m.frameBinds = append(m.frameBinds, frameBinding{kind: ctx.Kind, frame: ownFrame, scope: scope, args: ctxArgExprMap(ctx.Args, []string{"angle", "ex", "ey", "ez"})})
	case recipe.KindPort:
		target, ok := m.elements[ctx.Target]
		if !ok {
			return chk.Err("model: on %s of %s: unknown element %q", ctx.Port, ctx.Target, ctx.Target)
		}
		pf, ok := target.Ports()[ctx.Port]
		if !ok {
			return chk.Err("model: element %q has no port %q", ctx.Target, ctx.Port)
		}
		ownFrame = pf
	default:
		return chk.Err("model: unknown recipe context kind %d", ctx.Kind)
	}

	for _, step := range ctx.Elements {
		if err := m.instantiateElement(step, ownFrame, scope); err != nil {
			return err
		}
	}
	for _, child := range ctx.Children {
		if err := m.walk(child, ownFrame, scope); err != nil {
			return err
		}
	}
	return nil
}

func contextName(ctx *recipe.Context) string {
	switch ctx.Kind {
	case recipe.KindTranslate:
		return "translate"
	case recipe.KindRotate:
		return "rotate"
	}
	return "ctx"
}

// resolveContextArgs resolves a translate/rotate context's fixed-order
// argument list (dx,dy,dz or angle,ex,ey,ez) against scope, defaulting
// any argument omitted entirely to 0.
func resolveContextArgs(args []recipe.Arg, order []string, scope *recipe.Scope) (map[string]float64, error) {
	named, err := bindArgsByOrder(args, order)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(order))
	for _, name := range order {
		out[name] = 0
	}
	for name, expr := range named {
		v, err := expr.Eval(scope)
		if err != nil {
			return nil, chk.Err("model: evaluating argument %q: %v", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// bindArgsByOrder resolves a positional-then-named argument list against
// a known declared order, returning name -> Expr.
func bindArgsByOrder(args []recipe.Arg, order []string) (map[string]recipe.Expr, error) {
	out := make(map[string]recipe.Expr, len(args))
	pos := 0
	for _, a := range args {
		if a.Name == "" {
			if pos >= len(order) {
				return nil, chk.Err("model: too many positional arguments (expected at most %d)", len(order))
			}
			out[order[pos]] = a.Value
			pos++
			continue
		}
		found := false
		for _, n := range order {
			if n == a.Name {
				found = true
				break
			}
		}
		if !found {
			return nil, chk.Err("model: unknown argument %q", a.Name)
		}
		out[a.Name] = a.Value
	}
	return out, nil
}

// ctxArgExprMap resolves a translate/rotate context's argument list
// against its fixed declared order, keeping the compiled Expr (not a
// one-shot evaluated float) per declared name for later recalculation.
func ctxArgExprMap(args []recipe.Arg, order []string) map[string]recipe.Expr {
	m, _ := bindArgsByOrder(args, order)
	if m == nil {
		return map[string]recipe.Expr{}
	}
	return m
}

func (m *GenericCompositeModel) instantiateElement(step *recipe.ElementStep, mount *frame.Frame, scope *recipe.Scope) error {
	if _, dup := m.elements[step.Name]; dup {
		return chk.Err("model: duplicate element name %q", step.Name)
	}
	if custom, ok := m.recipe.Customs[step.Factory]; ok {
		overrides := make(map[string]float64, len(step.Args))
		for _, a := range step.Args {
			if a.Name == "" {
				return chk.Err("model: custom element %q does not accept positional arguments", step.Factory)
			}
			v, err := a.Value.Eval(scope)
			if err != nil {
				return chk.Err("model: element %q: evaluating argument %q: %v", step.Name, a.Name, err)
			}
			overrides[a.Name] = v
		}
		return m.instantiateCustom(custom, step.Name, mount, scope, overrides)
	}

	order := positionalParams[step.Factory]
	named, err := bindArgsByOrder(step.Args, appendDxDyDz(order))
	if err != nil {
		return chk.Err("model: element %q (%s): %v", step.Name, step.Factory, err)
	}
	params := make(map[string]float64, len(named))
	for name, expr := range named {
		v, err := expr.Eval(scope)
		if err != nil {
			return chk.Err("model: element %q: evaluating argument %q: %v", step.Name, name, err)
		}
		params[name] = v
	}

	el, err := ele.New(step.Factory, mount, step.Name, params)
	if err != nil {
		return chk.Err("model: element %q: %v", step.Name, err)
	}
	m.elements[step.Name] = el
	m.elemOrder = append(m.elemOrder, step.Name)
	m.elemBinds = append(m.elemBinds, elementBinding{element: el, scope: scope, args: named})
	return nil
}

// instantiateCustom expands a custom_element definition under a
// synthetic mount frame named after the instance, binding the custom
// element's own variable namespace on top of the instantiation's named
// argument overrides (spec.md §6 custom_element). The body's element
// steps become elements under their own names; the instance itself is
// not registered as an element, and the custom element's declared Ports
// are not exposed.
func (m *GenericCompositeModel) instantiateCustom(custom *recipe.CustomElement, instanceName string, mount *frame.Frame, scope *recipe.Scope, overrides map[string]float64) error {
	inner := recipe.NewScope(scope)
	for name, v := range overrides {
		inner.Vars[name] = v
	}
	bodyMount := frame.Translated(mount, instanceName, mat.Zero)
	if err := m.walk(custom.Body, bodyMount, inner); err != nil {
		return chk.Err("model: expanding custom element %q: %v", custom.Name, err)
	}
	return nil
}

func appendDxDyDz(order []string) []string {
	return append(append([]string{}, order...), "dx", "dy", "dz")
}

// resolvePath turns a PathDecl's element names into concrete surfaces:
// every surface of each element along the path, in declaration order
// (spec.md §3 RecipeOpticalPath: "an ordered list of element surfaces";
// §2 "each optical element contributes one or more optical surfaces") —
// a two-surface element such as a ConicLens or an ApertureStop must
// trace through both of its surfaces, not just the first.
func (m *GenericCompositeModel) resolvePath(pd *recipe.PathDecl) (*OpticalPath, error) {
	op := &OpticalPath{Name: pd.Name}
	for _, name := range pd.Elements {
		el, ok := m.elements[name]
		if !ok {
			return nil, chk.Err("model: path %q: unknown element %q", pd.Name, name)
		}
		surfs := el.Surfaces()
		if len(surfs) == 0 {
			return nil, chk.Err("model: path %q: element %q has no optical surfaces", pd.Name, name)
		}
		op.Surfaces = append(op.Surfaces, surfs...)
	}
	return op, nil
}

// Path looks up a named optical path resolved at Build time.
func (m *GenericCompositeModel) Path(name string) (*OpticalPath, bool) {
	op, ok := m.paths[name]
	return op, ok
}

// PathNames lists every named optical path, sorted.
func (m *GenericCompositeModel) PathNames() []string {
	names := make([]string, 0, len(m.paths))
	for n := range m.paths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Stages converts an OpticalPath into the []trace.Stage a trace.Engine
// consumes, one stage per surface, each tested in its own element's
// frame (spec.md §4.5).
func (op *OpticalPath) Stages() []trace.Stage {
	stages := make([]trace.Stage, len(op.Surfaces))
	for i, s := range op.Surfaces {
		stages[i] = trace.Stage{Name: s.Name, Boundary: s.Boundary, Frame: s.Frame}
	}
	return stages
}

// Element looks up an instantiated element by its recipe name.
func (m *GenericCompositeModel) Element(name string) (ele.Element, bool) {
	el, ok := m.elements[name]
	return el, ok
}

// ElementNames lists every instantiated element, in the depth-first
// source order it was declared in.
func (m *GenericCompositeModel) ElementNames() []string {
	return append([]string{}, m.elemOrder...)
}

// DofNames lists every declared DOF, in declaration order.
func (m *GenericCompositeModel) DofNames() []string { return append([]string{}, m.dofOrder...) }

// ParamNames lists every declared parameter, in declaration order.
func (m *GenericCompositeModel) ParamNames() []string { return append([]string{}, m.paramOrder...) }

// Dof returns a DOF's current value.
func (m *GenericCompositeModel) Dof(name string) (float64, bool) {
	s, ok := m.dofs[name]
	if !ok {
		return 0, false
	}
	return s.value, true
}

// Param returns a parameter's current value.
func (m *GenericCompositeModel) Param(name string) (float64, bool) {
	s, ok := m.params[name]
	if !ok {
		return 0, false
	}
	return s.value, true
}

// SetDof changes a DOF's value (spec.md §4.6: "a runtime DOF set outside
// [min,max] is silently rejected, value unchanged, no event") and
// stores it in the root scope; the new value reaches frames and elements
// on the next Recalculate, which re-evaluates every binding.
func (m *GenericCompositeModel) SetDof(name string, v float64) bool {
	return m.setSlot(m.dofs, name, v)
}

// SetParam changes a parameter's value with the same bound semantics as
// SetDof.
func (m *GenericCompositeModel) SetParam(name string, v float64) bool {
	return m.setSlot(m.params, name, v)
}

func (m *GenericCompositeModel) setSlot(table map[string]*slot, name string, v float64) bool {
	s, ok := table[name]
	if !ok {
		return false
	}
	before := s.value
	s.set(v)
	if s.value != before {
		m.rootScope.Vars[name] = s.value
	}
	return s.value == v
}

// Recalculate re-evaluates every compiled frame/element argument
// expression against the model's current DOF/parameter values, applies
// the results to the frame graph and element properties, and propagates
// the frame graph (spec.md §4.6: "a DOF change marks dependent
// expressions dirty, recalculate() re-evaluates only what depends on
// changed inputs"). This implementation re-evaluates every binding
// rather than tracking per-expression dirtiness; see DESIGN.md.
func (m *GenericCompositeModel) Recalculate() error {
	for _, fb := range m.frameBinds {
		switch fb.kind {
		case recipe.KindTranslate:
			d, err := evalVec(fb.args, "dx", "dy", "dz", fb.scope)
			if err != nil {
				return err
			}
			fb.frame.SetDistance(d)
		case recipe.KindRotate:
			axis, err := evalVec(fb.args, "ex", "ey", "ez", fb.scope)
			if err != nil {
				return err
			}
			angle, err := evalOne(fb.args, "angle", fb.scope)
			if err != nil {
				return err
			}
			fb.frame.SetRotation(axis, angle)
		}
	}
	for _, eb := range m.elemBinds {
		dxyz := mat.Zero
		haveOffset := false
		for name, expr := range eb.args {
			v, err := expr.Eval(eb.scope)
			if err != nil {
				return chk.Err("model: element %q: recomputing argument %q: %v", eb.element.Name(), name, err)
			}
			switch name {
			case "dx":
				dxyz.X, haveOffset = v, true
			case "dy":
				dxyz.Y, haveOffset = v, true
			case "dz":
				dxyz.Z, haveOffset = v, true
			default:
				if kind, ok := eb.element.Properties().Kind(name); ok {
					switch kind {
					case ele.KindReal:
						eb.element.Properties().SetReal(name, v)
					case ele.KindInt:
						eb.element.Properties().SetInt(name, int(v))
					}
				}
			}
		}
		if haveOffset {
			eb.element.Frame().SetDistance(dxyz)
		}
	}
	m.World.Recalculate()
	return nil
}

func evalVec(args map[string]recipe.Expr, xn, yn, zn string, scope *recipe.Scope) (mat.Vec3, error) {
	x, err := evalOne(args, xn, scope)
	if err != nil {
		return mat.Vec3{}, err
	}
	y, err := evalOne(args, yn, scope)
	if err != nil {
		return mat.Vec3{}, err
	}
	z, err := evalOne(args, zn, scope)
	if err != nil {
		return mat.Vec3{}, err
	}
	return mat.NewVec3(x, y, z), nil
}

func evalOne(args map[string]recipe.Expr, name string, scope *recipe.Scope) (float64, error) {
	expr, ok := args[name]
	if !ok {
		return 0, nil
	}
	v, err := expr.Eval(scope)
	if err != nil {
		return 0, chk.Err("model: recomputing argument %q: %v", name, err)
	}
	return v, nil
}
