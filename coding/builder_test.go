// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// himem6 is "hi mem6" with mask 0.
const himem6 = `
#######...#...#...#...#######
#.....#..#...#...#....#.....#
#.###.#.#..#...#...#..#.###.#
#.###.#..#..##..##..#.#.###.#
#.###.#..#..##..##..#.#.###.#
#.....#...###.###.###.#.....#
#######.#.#.#.#.#.#.#.#######
........#..#...#...#.........
###.#####...#...#...###...#..
##.#...###.###.###.###..#.###
..#####.#.###.###.###.#..####
.#..#...###.###.###.#...#..#.
.##..##...##..##..##..###...#
..##....####..##..##...#...##
..#..##.###..#...#...#.####.#
##......####...#...#.###.....
.###.######.#...#...##..#....
...##..#...###.###.###..#.###
#.#..###..###.###.###.#..####
.#.#....##..###.###.#...##.#.
#.##..###.##..##..########...
........#..#..##..#.#...#..##
#######.##...#...#..#.#.#..##
#.....#.#..#...#...##...##..#
#.###.#.##..#...#...#####.###
#.###.#....###.###...#....##.
#.###.#.#.###.###.#.###.#...#
#.....#.#...###.####..#...##.
#######.#..#..##..##....#.###
`

// picture returns c as text, one line per row.
func picture(c *Code) string {
	var sb strings.Builder
	for y := 0; y < c.Size(); y++ {
		for x := 0; x < c.Size(); x++ {
			if c.Black(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Format information module coordinates, most significant bit first.
var (
	formatTopLeft = [15][2]int{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
	formatSplit = [15][2]int{
		{8, 28}, {8, 27}, {8, 26}, {8, 25}, {8, 24}, {8, 23}, {8, 22},
		{21, 8}, {22, 8}, {23, 8}, {24, 8}, {25, 8}, {26, 8}, {27, 8},
		{28, 8},
	}
)

func readFormat(c *Code, pos [15][2]int) uint16 {
	var fb uint16
	for _, p := range pos {
		fb <<= 1
		if c.Black(p[0], p[1]) {
			fb |= 1
		}
	}
	return fb
}

func TestEncode(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)
	assert.Equal(t, Size, c.Size())
	assert.Equal(t, Mask(0), c.Mask())
	assert.Equal(t, 1425, c.Penalty())
	assert.Equal(t, 3, c.Version())
	assert.Equal(t, L, c.Level())
	assert.Equal(t, Byte, c.Mode())
	assert.Equal(t, uint16(0x77c4), c.FormatBits())
	if diff := cmp.Diff(himem6[1:], picture(c)); diff != "" {
		t.Errorf("code mismatch (-want +got):\n%s", diff)
	}

	again, err := Encode("hi mem6")
	require.NoError(t, err)
	assert.Equal(t, picture(c), picture(again), "not deterministic")
}

func TestEncodeLengths(t *testing.T) {
	for n := 0; n <= MaxLength; n++ {
		c, err := Encode(strings.Repeat("a", n))
		require.NoError(t, err, "length %d", n)
		require.Equal(t, Size, c.Size())
	}
	_, err := Encode(strings.Repeat("a", MaxLength+1))
	assert.True(t, errors.Is(err, ErrMessageTooLong))
}

func TestEncodeMasks(t *testing.T) {
	const text = "https://bestia.dev/mem6/#p04.1234"
	auto, err := Encode(text)
	require.NoError(t, err)
	for m := Mask(0); m.Valid(); m++ {
		p, err := NewPlan(m)
		require.NoError(t, err)
		c, err := p.Encode(text)
		require.NoError(t, err)
		assert.Equal(t, m, c.Mask())
		assert.Equal(t, ftab[m], c.FormatBits())
		assert.Equal(t, ftab[m], readFormat(c, formatTopLeft), "mask %d", m)
		assert.Equal(t, ftab[m], readFormat(c, formatSplit), "mask %d", m)
		switch {
		case m < auto.Mask():
			assert.Greater(t, c.Penalty(), auto.Penalty(), "mask %d", m)
		case m > auto.Mask():
			assert.GreaterOrEqual(t, c.Penalty(), auto.Penalty(),
				"mask %d", m)
		default:
			assert.Equal(t, picture(auto), picture(c))
		}
	}
	assert.Equal(t, Mask(3), auto.Mask())
}

func TestFormatTable(t *testing.T) {
	for m, fb := range ftab {
		v := fb ^ 0x5412
		assert.Equal(t, uint16(1<<3|m), v>>10, "mask %d", m)
		// The BCH code is divisible by the generator.
		for i := 14; i >= 10; i-- {
			if v&(1<<i) != 0 {
				v ^= 0x537 << (i - 10)
			}
		}
		assert.Zero(t, v, "mask %d", m)
	}
}

func TestNewPlan(t *testing.T) {
	for _, m := range []Mask{-2, 8, 100} {
		_, err := NewPlan(m)
		assert.ErrorIs(t, err, ErrMask, "mask %d", m)
	}
	p, err := NewPlan(AutoMask)
	require.NoError(t, err)
	assert.Equal(t, AutoMask, p.Mask)
}

func TestFunctionPatterns(t *testing.T) {
	b := NewBuilder()
	b.AddFunctionPatterns()
	g := b.Grid()
	fn, res := 0, 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.IsFunction(x, y) {
				fn++
			}
			if g.At(x, y) == Reserved {
				res++
			}
		}
	}
	assert.Equal(t, Size*Size-567, fn)
	assert.Equal(t, 30, res)

	for _, tt := range []struct {
		x, y int
		want Module
	}{
		{0, 0, Function | Dark},   // finder corner
		{3, 3, Function | Dark},   // finder centre
		{2, 1, Function},          // finder ring
		{7, 7, Function},          // separator
		{21, 7, Function},         // separator
		{7, 21, Function},         // separator
		{8, 21, Function | Dark},  // dark module
		{10, 6, Function | Dark},  // timing
		{6, 11, Function},         // timing
		{22, 22, Function | Dark}, // alignment centre
		{21, 22, Function},        // alignment ring
		{20, 20, Function | Dark}, // alignment edge
		{8, 8, Reserved},
		{8, 22, Reserved},
		{21, 8, Reserved},
		{9, 9, Unknown},
	} {
		assert.Equal(t, tt.want, g.At(tt.x, tt.y), "at %d,%d", tt.x, tt.y)
	}
}

func TestBuilderSteps(t *testing.T) {
	b := NewBuilder()
	b.AddFunctionPatterns()
	fn := b.Grid().Clone()

	assert.ErrorIs(t, b.AddFormat(), ErrIncomplete)
	_, err := b.Code()
	assert.ErrorIs(t, err, ErrIncomplete)

	cw := AddCheckBytes(himem6Data)
	b.AddData(Stream(cw))
	assert.False(t, b.Grid().Complete())
	assert.Panics(t, func() { b.AddData(Stream(cw)) }, "data written twice")

	assert.ErrorIs(t, b.MaskWith(8), ErrMask)
	require.NoError(t, b.MaskWith(2))
	assert.Equal(t, Mask(2), b.Mask())
	assert.Panics(t, func() { b.MaskWith(3) })
	_, err = b.Code()
	assert.ErrorIs(t, err, ErrIncomplete, "format missing")

	require.NoError(t, b.AddFormat())
	c, err := b.Code()
	require.NoError(t, err)
	assert.True(t, c.g.Complete())
	assert.Nil(t, b.Grid(), "grid kept by builder")
	_, err = b.Code()
	assert.ErrorIs(t, err, ErrIncomplete, "second Code")

	// Function modules are untouched, except for format information.
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch m := fn.At(x, y); m.Kind() {
			case Function:
				assert.Equal(t, m, c.Module(x, y), "at %d,%d", x, y)
			case Reserved:
				assert.Equal(t, Function, c.Module(x, y).Kind(),
					"at %d,%d", x, y)
			}
		}
	}

	// Unmasked data modules read back in scan order.
	g := c.g.Clone()
	g.applyMask(2)
	want := Stream(cw)
	z := NewZigZag()
	for x, y, ok := z.Next(); ok; x, y, ok = z.Next() {
		if g.IsFunction(x, y) {
			continue
		}
		bit, _ := want.Next()
		require.Equal(t, bit != 0, g.Black(x, y), "at %d,%d", x, y)
	}
	assert.Equal(t, want.Len(), want.Pos())
}

func TestAddDataLength(t *testing.T) {
	cw := AddCheckBytes(himem6Data)
	for _, s := range []BitStream{
		NewBitStream(cw, RemainderBits-1),
		NewBitStream(cw, RemainderBits+1),
	} {
		b := newPlannedBuilder()
		assert.Panics(t, func() { b.AddData(s) })
	}
}
