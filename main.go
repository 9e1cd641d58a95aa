// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	stdio "io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/rayzal/ele"
	_ "github.com/cpmech/rayzal/ele/stock"
	"github.com/cpmech/rayzal/emi"
	"github.com/cpmech/rayzal/model"
	"github.com/cpmech/rayzal/recipe"
)

// loadModel reads and parses the recipe files named on the command line,
// in order, concatenating their contents into a single source before
// handing it to recipe.Parse — mirrors gofem's single-.sim-file load
// except for the ability to chain several recipe fragments (spec.md §6:
// "reads a model file list").
func loadModel(paths []string) (*model.GenericCompositeModel, error) {
	var src strings.Builder
	var label string
	if len(paths) == 0 {
		buf, err := stdio.ReadAll(os.Stdin)
		if err != nil {
			return nil, chk.Err("cannot read stdin: %v", err)
		}
		src.Write(buf)
		label = "<stdin>"
	} else {
		for _, p := range paths {
			buf, err := io.ReadFile(p)
			if err != nil {
				return nil, chk.Err("cannot read %q: %v", p, err)
			}
			src.Write(buf)
			src.WriteByte('\n')
		}
		label = paths[0]
	}
	rec, err := recipe.Parse(label, src.String())
	if err != nil {
		return nil, err
	}
	m, err := model.Build(rec)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// printDiagnostics lists every optical path and, for each, the ordered
// stage names it drives through — the "optical-path diagnostics" spec.md
// §6 requires the CLI to print after a successful load.
func printDiagnostics(m *model.GenericCompositeModel) {
	io.Pf("\nelements:\n")
	for _, name := range m.ElementNames() {
		el, _ := m.Element(name)
		io.Pf("  %-16s %d surface(s)\n", name, len(el.Surfaces()))
	}
	names := m.PathNames()
	io.Pf("\noptical paths (%d):\n", len(names))
	for _, name := range names {
		path, _ := m.Path(name)
		var stages []string
		for _, s := range path.Stages() {
			stages = append(stages, s.Name)
		}
		io.Pf("  %-16s %s\n", name, strings.Join(stages, " -> "))
	}
	if dofs := m.DofNames(); len(dofs) > 0 {
		io.Pf("\ndofs:\n")
		for _, name := range dofs {
			v, _ := m.Dof(name)
			io.Pf("  %-16s = %v\n", name, v)
		}
	}
}

// renderLoop is the CLI's interactive frame-counter loop: each line read
// from stdin is parsed as a new value for the `t` DOF (spec.md §6: "an
// interactive render loop bound to DOF t as a frame counter"), applied,
// and recalculated; actual pixel output is out of scope (spec.md §1:
// rendering is an external collaborator), so each tick only re-confirms
// the model is in a consistent state and echoes the new frame number.
func renderLoop(m *model.GenericCompositeModel) error {
	if _, ok := m.Dof("t"); !ok {
		io.Pf("\nno %q dof declared; skipping interactive render loop\n", "t")
		return nil
	}
	io.Pf("\nentering render loop (dof %q); one frame number per line, empty line or EOF to quit:\n", "t")
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		t, err := strconv.ParseFloat(line, 64)
		if err != nil {
			io.PfRed("invalid frame number %q: %v\n", line, err)
			continue
		}
		if !m.SetDof("t", t) {
			io.PfYel("frame %v rejected (out of dof bounds)\n", t)
			continue
		}
		if err := m.Recalculate(); err != nil {
			return chk.Err("recalculate at t=%v failed: %v", t, err)
		}
		io.Pf("frame t=%v ok\n", t)
	}
	return sc.Err()
}

func run() error {
	flag.Parse()
	ele.LogRegistered()
	emi.LogRegistered()
	io.Pf("registered element factories: %s\n", strings.Join(ele.Registered(), ", "))
	paths := flag.Args()
	m, err := loadModel(paths)
	if err != nil {
		return err
	}
	printDiagnostics(m)
	if len(paths) == 0 {
		io.Pf("\nmodel read from stdin; skipping interactive render loop (stdin already consumed)\n")
		return nil
	}
	return renderLoop(m)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", r)
			os.Exit(1)
		}
	}()
	if err := run(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
