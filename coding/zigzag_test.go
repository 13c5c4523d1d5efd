// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigZag(t *testing.T) {
	type xy struct{ x, y int }
	var got []xy
	seen := make(map[xy]bool)
	z := NewZigZag()
	for x, y, ok := z.Next(); ok; x, y, ok = z.Next() {
		p := xy{x, y}
		require.False(t, seen[p], "visited twice: %v", p)
		require.NotEqual(t, timingColumn, x, "timing column at row %d", y)
		seen[p] = true
		got = append(got, p)
	}
	require.Len(t, got, Size*(Size-1))
	assert.Equal(t, []xy{{28, 28}, {27, 28}, {28, 27}, {27, 27}}, got[:4])
	// turn at the top edge
	assert.Equal(t, []xy{{28, 0}, {27, 0}, {26, 0}, {25, 0}, {26, 1}},
		got[2*Size-2:2*Size+3])
	// step over the timing column
	i := 11 * 2 * Size
	assert.Equal(t, []xy{{7, 0}, {5, 0}, {4, 0}}, got[i-1:i+2])
	assert.Equal(t, xy{0, 28}, got[len(got)-1])

	_, _, ok := z.Next()
	assert.False(t, ok)
}

func TestZigZagDataModules(t *testing.T) {
	b := NewBuilder()
	b.AddFunctionPatterns()
	n := 0
	z := NewZigZag()
	for x, y, ok := z.Next(); ok; x, y, ok = z.Next() {
		if !b.Grid().IsFunction(x, y) {
			n++
		}
	}
	assert.Equal(t, 567, n)
}
