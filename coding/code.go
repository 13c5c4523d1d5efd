// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Code is a finished QR code.  It is immutable.
type Code struct {
	g    *Grid
	mask Mask
}

// Size returns the number of modules on a side.
func (c *Code) Size() int { return c.g.Size() }

// Black reports whether the module at column x, row y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool { return c.g.Black(x, y) }

// Module returns the module at column x, row y.
func (c *Code) Module(x, y int) Module { return c.g.At(x, y) }

// Mask returns the mask applied to the code.
func (c *Code) Mask() Mask { return c.mask }

// Version returns the QR version of the code.
func (c *Code) Version() int { return Version }

// Level returns the error correction level of the code.
func (c *Code) Level() Level { return L }

// Mode returns the segment mode of the code.
func (c *Code) Mode() Mode { return Byte }

// FormatBits returns the 15 bit format information.
func (c *Code) FormatBits() uint16 { return ftab[c.mask] }

// Penalty returns the penalty value of the masked code,
// without format information.
func (c *Code) Penalty() int {
	g := c.g.Clone()
	for i, m := range g.m {
		if m.Kind() == Function && isFormat(i%g.size, i/g.size) {
			g.m[i] = Reserved
		}
	}
	return g.Penalty()
}

// isFormat reports whether x, y is a format information module.
func isFormat(x, y int) bool {
	switch {
	case y == 8:
		return x <= 8 && x != timingColumn || x >= Size-8
	case x == 8:
		return y <= 8 && y != timingColumn || y >= Size-7
	}
	return false
}
