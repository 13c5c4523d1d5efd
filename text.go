// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// A TextRenderer renders a Grid as lines of text.
// The zero value renders a dark module as "#" and a light one as ".",
// one character per module, without a quiet zone.
type TextRenderer struct {
	Dark   string // dark module; "#" if empty
	Light  string // light module; "." if empty
	Width  int    // repeats per module horizontally; 1 if zero
	Height int    // lines per module row; 1 if zero
	Border int    // quiet zone modules of Light on each side
}

// Render returns g as text, each line terminated by a newline.
func (r TextRenderer) Render(g Grid) string {
	dark, light := r.Dark, r.Light
	if dark == "" {
		dark = "#"
	}
	if light == "" {
		light = "."
	}
	w, h := max(r.Width, 1), max(r.Height, 1)
	dark, light = strings.Repeat(dark, w), strings.Repeat(light, w)
	siz := g.Size()
	var line, b strings.Builder
	for y := -r.Border; y < siz+r.Border; y++ {
		line.Reset()
		for x := -r.Border; x < siz+r.Border; x++ {
			if g.Black(x, y) {
				line.WriteString(dark)
			} else {
				line.WriteString(light)
			}
		}
		line.WriteByte('\n')
		for i := 0; i < h; i++ {
			b.WriteString(line.String())
		}
	}
	return b.String()
}

// String returns c as UTF-8 half block characters, two module rows
// per line, with c.Border quiet zone modules.  Light modules are
// drawn as blocks, for terminals with a dark background;
// c.Reverse swaps them.
func (c *Code) String() string {
	pix := c.Size() + c.Border*2
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := 0; y < pix; y += 2 {
		for x := 0; x < pix; x++ {
			n := 0
			if c.dark(x, y) {
				n = 2
			}
			if y+1 == pix || c.dark(x, y+1) {
				n++
			}
			b.WriteString([4]string{"█", "▀", "▄", " "}[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
