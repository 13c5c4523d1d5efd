// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Module is the state of one grid cell.
type Module byte

// Module kinds.  A Function or Data module may be or'ed with Dark.
const (
	Unknown  Module = iota // not set yet
	Reserved               // set aside for format information
	Function               // function pattern
	Data                   // data or check bit

	Dark Module = 4 // dark flag
)

// Kind returns m without the Dark flag.
func (m Module) Kind() Module { return m &^ Dark }

// IsDark reports whether m is a dark module.
func (m Module) IsDark() bool { return m&Dark != 0 }

func (m Module) String() string {
	return [...]string{"?", "*", ".", "-", "?", "*", "#", "X"}[m&7]
}

func module(kind Module, dark bool) Module {
	if dark {
		return kind | Dark
	}
	return kind
}

// A Grid is a square matrix of modules.
type Grid struct {
	size int
	m    []Module
}

// NewGrid returns a grid of size×size Unknown modules.
func NewGrid(size int) *Grid {
	return &Grid{size: size, m: make([]Module, size*size)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// At returns the module at column x, row y.
func (g *Grid) At(x, y int) Module { return g.m[y*g.size+x] }

// Set sets the module at column x, row y.
func (g *Grid) Set(x, y int, m Module) { g.m[y*g.size+x] = m }

// SetRect sets all modules from (x0, y0) to (x1, y1) inclusive.
func (g *Grid) SetRect(x0, y0, x1, y1 int, m Module) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, m)
		}
	}
}

// AnyInRect reports whether any module from (x0, y0) to (x1, y1)
// inclusive is set.
func (g *Grid) AnyInRect(x0, y0, x1, y1 int) bool {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.At(x, y) != Unknown {
				return true
			}
		}
	}
	return false
}

// IsFunction reports whether the module at (x, y) is a function
// pattern or reserved module.
func (g *Grid) IsFunction(x, y int) bool {
	k := g.At(x, y).Kind()
	return k == Function || k == Reserved
}

// Black reports whether the module at (x, y) is dark.
// Modules outside the grid are light.
func (g *Grid) Black(x, y int) bool {
	return 0 <= x && x < g.size && 0 <= y && y < g.size &&
		g.At(x, y).IsDark()
}

// Complete reports whether no Unknown or Reserved modules remain.
func (g *Grid) Complete() bool {
	for _, m := range g.m {
		if k := m.Kind(); k == Unknown || k == Reserved {
			return false
		}
	}
	return true
}

// Clone returns a copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, m: append([]Module(nil), g.m...)}
}

// String returns a debugging representation of g, one line per row:
// "?" unknown, "*" reserved, "#" and "." dark and light function
// modules, "X" and "-" dark and light data modules.
func (g *Grid) String() string {
	b := make([]byte, 0, (g.size+1)*g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b = append(b, g.At(x, y).String()...)
		}
		b = append(b, '\n')
	}
	return string(b)
}
