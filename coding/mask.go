// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a data mask pattern, 0 to 7.
type Mask int

// AutoMask requests the mask with the lowest penalty.
const AutoMask Mask = -1

// Valid reports whether m is a mask pattern.
func (m Mask) Valid() bool { return 0 <= m && m <= 7 }

func (m Mask) String() string {
	if m == AutoMask {
		return "auto"
	}
	return strconv.Itoa(int(m))
}

// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██

// Flip reports whether m inverts the module at column x, row y.
func (m Mask) Flip(x, y int) bool {
	i, j := y, x
	switch m {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return ((i+j)%2+i*j%3)%2 == 0
	}
	panic("qr: internal error: bad mask")
}

// applyMask inverts the Data modules of g selected by m.
// Applying the same mask twice restores g.
func (g *Grid) applyMask(m Mask) {
	for y := 0; y < g.size; y++ {
		row := g.m[y*g.size : (y+1)*g.size]
		for x, v := range row {
			if v.Kind() == Data && m.Flip(x, y) {
				row[x] = v ^ Dark
			}
		}
	}
}

// bestMask returns the mask giving g the lowest penalty,
// the lowest numbered of equals.  g is left unmasked.
func (g *Grid) bestMask() Mask {
	best, pen := AutoMask, 0
	for m := Mask(0); m.Valid(); m++ {
		g.applyMask(m)
		if p := g.Penalty(); best == AutoMask || p < pen {
			best, pen = m, p
		}
		g.applyMask(m)
	}
	return best
}

// Penalty returns the penalty value for g, used for choosing the
// mask.  Modules outside the grid are light.
func (g *Grid) Penalty() int {
	// Total penalty is the sum of penalties for runs and boxes
	// of same-colour modules, finder patterns and colour balance.
	//
	//   - RunP: for non-overlapping runs of n modules, n>=5 -> n-2
	//   - BoxP: for possibly overlapping 2x2 boxes -> 3
	//   - FindP: for possibly overlapping finder patterns -> 40
	//     The pattern is 1011101 with 0000 on either side;
	//     may extend into the quiet zone
	//   - BalP: for n% of dark modules -> 10*(ceiling(abs(n-50)/5)-1)
	//
	// https://www.nayuki.io/page/creating-a-qr-code-step-by-step
	const (
		BoxPP   = 3             // BoxP:  points per box
		BalPP   = 10            // BalP:  10 points
		BalPMul = 20            //        for every 5% (1/20),
		BalPMax = BalPMul/2 - 1 //        up to 9 times
	)

	siz := g.size
	p := 0
	bal := 0 // dark modules
	for y := 0; y < siz; y++ {
		p += linePenalty(siz, func(x int) bool { return g.Black(x, y) })
		p += linePenalty(siz, func(x int) bool { return g.Black(y, x) })
		for x := 0; x < siz; x++ {
			c := g.Black(x, y)
			if c {
				bal++
			}
			if x > 0 && y > 0 && c == g.Black(x-1, y) &&
				c == g.Black(x, y-1) && c == g.Black(x-1, y-1) {
				p += BoxPP // BoxP
			}
		}
	}

	// Exact percentages get less penalty.  E.g., 40% and 60% get
	// 10 points like 41%, not 20 like 39%.  To round away from 50%,
	// fold bal into 0 <= n < siz²/2 and divide rounding down.
	// No need to handle 50% as siz is odd.
	sq := siz * siz
	if bal > sq/2 {
		bal = sq - bal
	}
	return p + (BalPMax-bal*BalPMul/sq)*BalPP
}

// linePenalty returns RunP and FindP for a row or column of n
// modules.
func linePenalty(n int, black func(int) bool) int {
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		FindPP    = 40 // FindP: points per pattern

		// last 11 modules; the quiet zone is light
		findMask = 1<<11 - 1
		FindB    = 0b0000_1011101 // quiet zone before
		FindA    = 0b1011101_0000 // quiet zone after
	)
	p := 0
	r := 0 // current run length
	var pat uint16
	var prev bool
	for x := 0; x < n+4; x++ {
		c := x < n && black(x)
		pat <<= 1
		if c {
			pat |= 1
		}
		pat &= findMask
		if pat == FindB || pat == FindA {
			p += FindPP // FindP
		}
		if x >= n {
			continue
		}
		if x == 0 || c != prev {
			if r >= MinRun {
				p += r + RunPDelta // RunP
			}
			r = 0
		}
		prev = c
		r++
	}
	// handle last run
	if r >= MinRun {
		p += r + RunPDelta // RunP
	}
	return p
}
