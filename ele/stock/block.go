// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stock

import (
	"github.com/cpmech/rayzal/ele"
	"github.com/cpmech/rayzal/frame"
)

// Block is a purely mechanical element: a rectangular volume with no
// optical surfaces, used to represent mounts, baffles and other inert
// structure on the optical bench (scenario A: `"BlockElement block;"`
// with default 1x1x1 dimensions centred at its mount frame's origin).
type Block struct {
	*base
	width, height, depth float64
}

// NewBlock is the factory registered under "BlockElement".
func NewBlock(parent *frame.Frame, name string, params map[string]float64) ele.Element {
	b := &Block{base: newBase(name, frame.Translated(parent, name, mountOffset(params)))}
	b.props = ele.NewProperties(b.OnPropertyChanged)
	b.props.DeclareReal("width", orDefault(params, "width", 1), 0, -1)
	b.props.DeclareReal("height", orDefault(params, "height", 1), 0, -1)
	b.props.DeclareReal("depth", orDefault(params, "depth", 1), 0, -1)
	b.rebuild = b.sync
	b.sync()
	return b
}

func (b *Block) sync() {
	b.width = b.props.Real("width")
	b.height = b.props.Real("height")
	b.depth = b.props.Real("depth")
}

func init() { ele.Register("BlockElement", NewBlock) }
