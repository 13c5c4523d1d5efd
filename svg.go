// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// quietZone is the width of the SVG quiet zone in modules.
const quietZone = 4

// An SVG renders a Grid as Scalable Vector Graphics: a background
// rectangle in the light colour and a single path in the dark colour.
//
// Width and Height are minimum dimensions in pixels, including the
// quiet zone.  Modules are sized to the next whole pixel, so the
// result may be larger.
type SVG struct {
	Dark      color.Color // black if nil
	Light     color.Color // white if nil
	Width     int         // 200 if zero
	Height    int         // 200 if zero
	QuietZone bool        // add 4 light modules on each side
}

// NewSVG returns an SVG renderer with a 200×200 pixel black on white
// image and a quiet zone.
func NewSVG() *SVG {
	return &SVG{Width: 200, Height: 200, QuietZone: true}
}

// layout returns the module size and the quiet zone in modules.
func (s *SVG) layout(g Grid) (cw, ch, qz int) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = 200
	}
	if h <= 0 {
		h = 200
	}
	if s.QuietZone {
		qz = quietZone
	}
	n := g.Size() + qz*2
	return (w + n - 1) / n, (h + n - 1) / n, qz
}

// PathData returns the "d" attribute of the path drawing the dark
// modules of g.
func (s *SVG) PathData(g Grid) string {
	cw, ch, qz := s.layout(g)
	siz := g.Size()
	var b strings.Builder
	for y := 0; y < siz; y++ {
		yp := strconv.Itoa((y + qz) * ch)
		for x := 0; x < siz; x++ {
			if !g.Black(x, y) {
				continue
			}
			xp := strconv.Itoa((x + qz) * cw)
			b.WriteString("M" + xp + " " + yp +
				"h" + strconv.Itoa(cw) + "v" + strconv.Itoa(ch) +
				"H" + xp + "V" + yp)
		}
	}
	return b.String()
}

// body writes the background and the path.
func (s *SVG) body(b *strings.Builder, g Grid, w, h int) {
	light, dark := s.Light, s.Dark
	if light == nil {
		light = whiteColor
	}
	if dark == nil {
		dark = blackColor
	}
	fmt.Fprintf(b, "<rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" %s/>\n",
		w, h, fill(light))
	fmt.Fprintf(b, "<path %s d=\"%s\"/></svg>\n",
		fill(dark), s.PathData(g))
}

// size returns the image dimensions in pixels.
func (s *SVG) size(g Grid) (w, h int) {
	cw, ch, qz := s.layout(g)
	n := g.Size() + qz*2
	return cw * n, ch * n
}

// Render returns g as a standalone SVG document.
func (s *SVG) Render(g Grid) string {
	w, h := s.size(g)
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" standalone="yes"?>
<svg xmlns="http://www.w3.org/2000/svg" version="1.1" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, w, h)
	s.body(&b, g, w, h)
	return b.String()
}

// Embed returns g as an svg element for inclusion in an HTML or SVG
// document, without the XML declaration.
func (s *SVG) Embed(g Grid) string {
	w, h := s.size(g)
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\" shape-rendering=\"crispEdges\">\n",
		w, h, w, h)
	s.body(&b, g, w, h)
	return b.String()
}

// fill returns the fill attributes for c: fill="#rrggbb", and
// fill-opacity unless c is opaque.
func fill(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	attr := fmt.Sprintf(`fill="#%02x%02x%02x"`, n.R, n.G, n.B)
	if n.A != 0xff {
		attr += ` fill-opacity="` +
			strconv.FormatFloat(float64(n.A)/0xff, 'g', 3, 64) + `"`
	}
	return attr
}

// svg returns the renderer and the bordered grid for c.
func (c *Code) svg() (*SVG, Grid, error) {
	if err := c.check(); err != nil {
		return nil, nil, err
	}
	light, dark := c.colors()
	g := &bordered{c.Code, c.Border}
	w := g.Size() * c.Scale
	return &SVG{Dark: dark, Light: light, Width: w, Height: w}, g, nil
}

// SVG returns c as a standalone SVG document using the code's
// Border, Scale and colours.  Border replaces the fixed quiet zone.
func (c *Code) SVG() (string, error) {
	s, g, err := c.svg()
	if err != nil {
		return "", err
	}
	return s.Render(g), nil
}

// EmbedSVG is like SVG, but returns an svg element as SVG.Embed does.
func (c *Code) EmbedSVG() (string, error) {
	s, g, err := c.svg()
	if err != nil {
		return "", err
	}
	return s.Embed(g), nil
}

// bordered is a Grid with a light quiet zone.
type bordered struct {
	Grid
	border int
}

func (b *bordered) Size() int { return b.Grid.Size() + b.border*2 }

func (b *bordered) Black(x, y int) bool {
	return b.Grid.Black(x-b.border, y-b.border)
}
