// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Builder places the parts of a QR code on a grid:
// function patterns, data, mask and format information,
// in this order.
type Builder struct {
	g    *Grid
	mask Mask
}

// NewBuilder returns a Builder with an empty grid.
func NewBuilder() *Builder {
	return &Builder{g: NewGrid(Size), mask: AutoMask}
}

// Grid returns the grid under construction.
func (b *Builder) Grid() *Grid { return b.g }

// Mask returns the applied mask, or AutoMask before masking.
func (b *Builder) Mask() Mask { return b.mask }

// AddFunctionPatterns draws finder, alignment and timing patterns and
// the dark module, and reserves the format information area.
func (b *Builder) AddFunctionPatterns() {
	g := b.g
	siz := g.Size()

	// Position boxes with separators.
	finder(g, 0, 0)
	finder(g, siz-7, 0)
	finder(g, 0, siz-7)

	// Alignment boxes.
	for _, y := range align {
		for _, x := range align {
			if !g.AnyInRect(x-2, y-2, x+2, y+2) {
				alignBox(g, x, y)
			}
		}
	}

	// Timing markers, overlapping boxes.
	for i := timingColumn; i <= siz-7; i++ {
		m := module(Function, i&1 == 0)
		timing(g, i, timingColumn, m)
		timing(g, timingColumn, i, m)
	}

	// One lonely dark module.
	x, y := darkModule()
	g.Set(x, y, Function|Dark)

	// Format information.
	reserve(g, 0, 8, 5, 8)
	reserve(g, 7, 8, 8, 8)
	reserve(g, 8, 0, 8, 5)
	reserve(g, 8, 7, 8, 7)
	reserve(g, siz-8, 8, siz-1, 8)
	reserve(g, 8, siz-7, 8, siz-1)
}

// finder draws a position box with upper left corner at x, y,
// surrounded by a light separator clipped to the grid.
func finder(g *Grid, x, y int) {
	siz := g.Size()
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= siz || yy < 0 || yy >= siz {
				continue
			}
			d := max(abs(dx-3), abs(dy-3))
			g.Set(xx, yy, module(Function, d != 2 && d != 4))
		}
	}
}

// alignBox draws an alignment (small) box centred at x, y.
func alignBox(g *Grid, x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			d := max(abs(dx), abs(dy))
			g.Set(x+dx, y+dy, module(Function, d != 1))
		}
	}
}

// timing sets a timing module unless a function module is there
// already, in which case they must agree.
func timing(g *Grid, x, y int, m Module) {
	switch old := g.At(x, y); {
	case old == Unknown:
		g.Set(x, y, m)
	case old != m:
		panic("qr: internal error: timing pattern conflict")
	}
}

// reserve marks a rectangle for format information.
// The area must be empty.
func reserve(g *Grid, x0, y0, x1, y1 int) {
	if g.AnyInRect(x0, y0, x1, y1) {
		panic("qr: internal error: reserved area in use")
	}
	g.SetRect(x0, y0, x1, y1, Reserved)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// AddData writes bits from s to the free modules in zigzag scan order.
// The number of free modules must equal the length of s.
func (b *Builder) AddData(s BitStream) {
	g := b.g
	z := NewZigZag()
	for x, y, ok := z.Next(); ok; x, y, ok = z.Next() {
		if g.IsFunction(x, y) {
			continue
		}
		if g.At(x, y) != Unknown {
			panic("qr: internal error: module written twice")
		}
		bit, more := s.Next()
		if !more {
			panic("qr: internal error: bit stream too short")
		}
		g.Set(x, y, module(Data, bit != 0))
	}
	if s.Pos() != s.Len() {
		panic("qr: internal error: bit stream too long")
	}
}

// MaskWith applies mask m to the data modules.
func (b *Builder) MaskWith(m Mask) error {
	if !m.Valid() {
		return ErrMask
	}
	if b.mask != AutoMask {
		panic("qr: internal error: masked twice")
	}
	b.g.applyMask(m)
	b.mask = m
	return nil
}

// MaskBest applies the mask giving the lowest penalty.
func (b *Builder) MaskBest() error {
	return b.MaskWith(b.g.bestMask())
}

// AddFormat writes both copies of the format information.
// The code must be masked.
func (b *Builder) AddFormat() error {
	if b.mask == AutoMask {
		return ErrIncomplete
	}
	g := b.g
	siz := g.Size()
	fb := ftab[b.mask]
	for i := 0; i < 15; i++ {
		m := module(Function, fb>>(14-i)&1 != 0)
		// Around the top left box, skipping timing markers.
		switch {
		case i < 6:
			g.Set(i, 8, m)
		case i < 8:
			g.Set(i+1, 8, m)
		case i == 8:
			g.Set(8, 7, m)
		default:
			g.Set(8, 14-i, m)
		}
		// Bottom left, then top right.
		if i < 7 {
			g.Set(8, siz-1-i, m)
		} else {
			g.Set(siz-15+i, 8, m)
		}
	}
	return nil
}

// Code returns the finished code.  The grid passes to the code;
// the Builder has no grid afterwards and Code returns ErrIncomplete.
func (b *Builder) Code() (*Code, error) {
	if b.g == nil || b.mask == AutoMask || !b.g.Complete() {
		return nil, ErrIncomplete
	}
	g := b.g
	b.g = nil
	return &Code{g: g, mask: b.mask}, nil
}

// A Plan describes how to construct a QR code: the mask to use, or
// AutoMask to choose the best one.
type Plan struct {
	Mask Mask
}

// NewPlan returns a Plan using the given mask.
func NewPlan(mask Mask) (*Plan, error) {
	if mask != AutoMask && !mask.Valid() {
		return nil, ErrMask
	}
	return &Plan{Mask: mask}, nil
}

// Function patterns are the same for every code.
// The template grid is created the first time it is used.
var template struct {
	once sync.Once
	g    *Grid
}

func newPlannedBuilder() *Builder {
	template.once.Do(func() {
		b := NewBuilder()
		b.AddFunctionPatterns()
		template.g = b.g
	})
	return &Builder{g: template.g.Clone(), mask: AutoMask}
}

// Encode returns a QR code containing text in byte mode.
func (p *Plan) Encode(text string) (*Code, error) {
	bits, err := EncodeData(text, SelectMode(text))
	if err != nil {
		return nil, err
	}
	b := newPlannedBuilder()
	b.AddData(Stream(AddCheckBytes(bits.Bytes())))
	if p.Mask == AutoMask {
		err = b.MaskBest()
	} else {
		err = b.MaskWith(p.Mask)
	}
	if err != nil {
		return nil, err
	}
	if err := b.AddFormat(); err != nil {
		return nil, err
	}
	return b.Code()
}

// Encode returns a QR code containing text, using the best mask.
func Encode(text string) (*Code, error) {
	return (&Plan{Mask: AutoMask}).Encode(text)
}
