// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// timingColumn is the column of the vertical timing strip.
const timingColumn = 6

// ZigZag yields the coordinates of the data placement order.
//
// The scan starts at the bottom right corner and runs in two column
// bands, alternating between the right and the left column of the
// band while moving up or down.  At the top or bottom edge it steps
// into the next band and reverses direction.  The timing column is
// stepped over.  Function modules are not skipped here.
//
// A ZigZag is not restartable.
type ZigZag struct {
	x, y  int
	up    bool // vertical direction
	horiz bool // next move is horizontal
	done  bool
}

// NewZigZag returns a ZigZag positioned at the bottom right corner.
func NewZigZag() *ZigZag {
	return &ZigZag{x: Size - 1, y: Size - 1, up: true, horiz: true}
}

// Next returns the next coordinates and true, or false when the
// scan is over.
func (z *ZigZag) Next() (x, y int, ok bool) {
	if z.done {
		return 0, 0, false
	}
	x, y = z.x, z.y
	z.advance()
	return x, y, true
}

func (z *ZigZag) advance() {
	h := z.horiz
	z.horiz = !z.horiz
	if !h {
		if z.up && z.y > 0 {
			z.y--
			z.x++
			return
		} else if !z.up && z.y < Size-1 {
			z.y++
			z.x++
			return
		}
		// edge: reverse and step into the next band
		z.up = !z.up
	}
	switch z.x {
	case 0:
		z.done = true
	case timingColumn + 1:
		z.x -= 2
	default:
		z.x--
	}
}
