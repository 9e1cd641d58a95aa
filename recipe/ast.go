// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipe

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
)

// Expr is a compiled expression node (spec.md §4.6: "each expression is
// compiled once against a symbol dictionary"). Eval resolves identifiers
// and calls against scope.
type Expr interface {
	Eval(scope *Scope) (float64, error)
}

// Scope is the symbol dictionary an expression evaluates against: all
// DOFs, all parameters and all scoped variables visible to a recipe
// context (spec.md §4.6), modeled as a chain of maps so a child
// context's variables shadow its parent's without copying them.
// Grounded on original_source/RZGUI's SimpleExpressionEvaluator, which
// compiles one expression against a flat name -> *Real dictionary; Scope
// generalises that dictionary to nested lexical scopes.
type Scope struct {
	Vars   map[string]float64
	Parent *Scope
}

// NewScope creates an empty scope chained to parent (nil for the root).
func NewScope(parent *Scope) *Scope {
	return &Scope{Vars: make(map[string]float64), Parent: parent}
}

// Lookup resolves name, searching this scope then its ancestors.
func (s *Scope) Lookup(name string) (float64, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if v, ok := sc.Vars[name]; ok {
			return v, true
		}
	}
	return 0, false
}

// NumberLit is a decimal literal.
type NumberLit struct{ Value float64 }

// Eval implements Expr.
func (n *NumberLit) Eval(scope *Scope) (float64, error) { return n.Value, nil }

// Ident references a DOF, parameter or scoped variable.
type Ident struct{ Name string }

// Eval implements Expr.
func (id *Ident) Eval(scope *Scope) (float64, error) {
	if v, ok := scope.Lookup(id.Name); ok {
		return v, nil
	}
	return 0, chk.Err("recipe: undefined symbol %q", id.Name)
}

// UnaryExpr is a prefix +/- operator.
type UnaryExpr struct {
	Op ruleOp
	X  Expr
}

type ruleOp int

const (
	opAdd ruleOp = iota
	opSub
	opMul
	opDiv
	opPow
	opNeg
)

// Eval implements Expr.
func (u *UnaryExpr) Eval(scope *Scope) (float64, error) {
	x, err := u.X.Eval(scope)
	if err != nil {
		return 0, err
	}
	if u.Op == opNeg {
		return -x, nil
	}
	return x, nil
}

// BinaryExpr is a left-associative binary arithmetic operator.
type BinaryExpr struct {
	Op   ruleOp
	L, R Expr
}

// Eval implements Expr.
func (b *BinaryExpr) Eval(scope *Scope) (float64, error) {
	l, err := b.L.Eval(scope)
	if err != nil {
		return 0, err
	}
	r, err := b.R.Eval(scope)
	if err != nil {
		return 0, err
	}
	switch b.Op {
	case opAdd:
		return l + r, nil
	case opSub:
		return l - r, nil
	case opMul:
		return l * r, nil
	case opDiv:
		return l / r, nil
	case opPow:
		return math.Pow(l, r), nil
	}
	return 0, chk.Err("recipe: unknown binary operator")
}

// CallExpr is a named function call (spec.md §4.6: "a fixed set of
// custom functions: trigonometry, interpolation, scripted functions").
type CallExpr struct {
	Name string
	Args []Expr
}

// Eval implements Expr.
func (c *CallExpr) Eval(scope *Scope) (float64, error) {
	fn, ok := builtins[c.Name]
	if !ok {
		return 0, chk.Err("recipe: unknown function %q", c.Name)
	}
	args := make([]float64, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Eval(scope)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	return fn(args)
}

var builtins = map[string]func(args []float64) (float64, error){
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"asin": unary(math.Asin),
	"acos": unary(math.Acos),
	"atan": unary(math.Atan),
	"sqrt": unary(math.Sqrt),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"abs":  unary(math.Abs),
	"atan2": func(args []float64) (float64, error) {
		if len(args) != 2 {
			return 0, chk.Err("recipe: atan2 takes 2 arguments, got %d", len(args))
		}
		return math.Atan2(args[0], args[1]), nil
	},
	"pow": func(args []float64) (float64, error) {
		if len(args) != 2 {
			return 0, chk.Err("recipe: pow takes 2 arguments, got %d", len(args))
		}
		return math.Pow(args[0], args[1]), nil
	},
	"min": func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, chk.Err("recipe: min needs at least 1 argument")
		}
		m := args[0]
		for _, v := range args[1:] {
			m = math.Min(m, v)
		}
		return m, nil
	},
	"max": func(args []float64) (float64, error) {
		if len(args) == 0 {
			return 0, chk.Err("recipe: max needs at least 1 argument")
		}
		m := args[0]
		for _, v := range args[1:] {
			m = math.Max(m, v)
		}
		return m, nil
	},
}

func unary(f func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if len(args) != 1 {
			return 0, chk.Err("recipe: function takes exactly 1 argument, got %d", len(args))
		}
		return f(args[0]), nil
	}
}

// ContextKind tags the four RecipeContext flavours of spec.md §3.
type ContextKind int

const (
	KindRoot ContextKind = iota
	KindTranslate
	KindRotate
	KindPort
)

// Arg is one `(IDENT '=')? expr` argument; Name is empty for a
// positional argument.
type Arg struct {
	Name  string
	Value Expr
}

// VarDecl is a `var IDENT = expr ;` statement, scoped to the context
// that declares it and every descendant.
type VarDecl struct {
	Name  string
	Value Expr
}

// DofDecl / ParamDecl are the `dof`/`parameter` declarations of spec.md
// §3: a Real slot with an optional [min,max] bound and a default.
type DofDecl struct {
	Name     string
	Min, Max Expr // nil if unbounded
	Default  Expr
}

type ParamDecl struct {
	Name     string
	Min, Max Expr
	Default  Expr
}

// ElementStep is one `factory instanceName(args);` statement (spec.md
// §3 RecipeElementStep).
type ElementStep struct {
	Factory string
	Name    string
	Args    []Arg
}

// PathDecl is a named RecipeOpticalPath: `path name first (to next)+ ;`.
type PathDecl struct {
	Name     string
	Elements []string
}

// CustomElement is a user-defined composite element (`element IDENT {
// ... port IDENT; ... }`): its own statement body plus the set of port
// names it exposes once instantiated.
type CustomElement struct {
	Name  string
	Body  *Context
	Ports []string
}

// Context is one node of the RecipeContext tree (spec.md §3): its own
// parameter-expression args (for Translate/Rotate), its scoped variable
// declarations, its ordered element steps, and its children.
type Context struct {
	Kind   ContextKind
	Args   []Arg  // dx,dy,dz for Translate; angle,ex,ey,ez for Rotate; empty otherwise
	Port   string // KindPort: the port name
	Target string // KindPort: the element the port belongs to

	Vars     []*VarDecl
	Elements []*ElementStep
	Children []*Context
	Parent   *Context
}

func newContext(kind ContextKind, parent *Context) *Context {
	c := &Context{Kind: kind, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, c)
	}
	return c
}

// Recipe is the fully parsed declarative model of spec.md §3: the DOF
// and parameter declarations, the root context tree, the named optical
// paths, and any custom element definitions.
type Recipe struct {
	Dofs    []*DofDecl
	Params  []*ParamDecl
	Root    *Context
	Paths   []*PathDecl
	Customs map[string]*CustomElement
}

// ArgMap is a convenience view of an Arg slice once positional
// arguments have been resolved to names by the caller (model package);
// recipe itself never assumes a parameter order.
type ArgMap map[string]Expr

func (a Arg) String() string {
	if a.Name == "" {
		return "<positional>"
	}
	return fmt.Sprintf("%s=<expr>", a.Name)
}
