// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qr53/coding"
)

func TestSVG(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)

	s := NewSVG()
	doc := s.Render(c)
	assert.True(t, strings.HasPrefix(doc,
		`<?xml version="1.0" standalone="yes"?>`+"\n<svg "), doc[:60])
	// 37 modules, 200 pixels: 6 pixels per module
	assert.Contains(t, doc, `viewBox="0 0 222 222"`)
	assert.Contains(t, doc, `<rect x="0" y="0" width="222" height="222" fill="#ffffff"/>`)
	assert.Contains(t, doc, `<path fill="#000000" d="M24 24h6v6H24V24M30 24h6v6H30V24`)
	assert.True(t, strings.HasSuffix(doc, "\"/></svg>\n"))

	d := s.PathData(c)
	assert.Equal(t, 422, strings.Count(d, "M"), "dark modules")
	assert.Contains(t, doc, d)

	e := s.Embed(c)
	assert.True(t, strings.HasPrefix(e, "<svg "))
	assert.NotContains(t, e, "<?xml")
	assert.Contains(t, e, `width="222" height="222"`)
	assert.Contains(t, e, d)
}

func TestSVGSettings(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)

	s := &SVG{
		Dark:   color.RGBA{0x12, 0x34, 0x56, 0xff},
		Light:  color.Gray{0xee},
		Width:  29,
		Height: 60,
	}
	doc := s.Render(c)
	assert.Contains(t, doc, `viewBox="0 0 29 87"`)
	assert.Contains(t, doc, `fill="#eeeeee"`)
	assert.Contains(t, doc, `<path fill="#123456" d="M0 0h1v3H0V0M1 0h1v3H1V0`)

	// zero value: 200×200 minimum, no quiet zone
	assert.Contains(t, (&SVG{}).Render(c), `viewBox="0 0 203 203"`)
}

func TestCodeSVG(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)
	c.Scale = 2
	c.Border = 1
	c.Reverse = true
	doc, err := c.SVG()
	require.NoError(t, err)
	assert.Contains(t, doc, `viewBox="0 0 62 62"`)
	assert.Contains(t, doc, `fill="#000000"/>`)
	assert.Contains(t, doc, `<path fill="#ffffff" d="M2 2h2v2H2V2`)

	c.Scale = 0
	_, err = c.SVG()
	assert.ErrorIs(t, err, ErrArgs)
}

func TestCodeEmbedSVG(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)
	c.Scale = 1
	c.Border = 0
	e, err := c.EmbedSVG()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(e, "<svg "))
	assert.Contains(t, e, `width="29" height="29" viewBox="0 0 29 29"`)
	assert.Contains(t, e, `<path fill="#000000" d="M0 0h1v1H0V0`)

	c.Border = 2
	c.Scale = 3
	e, err = c.EmbedSVG()
	require.NoError(t, err)
	assert.Contains(t, e, `width="99" height="99"`)
	assert.Contains(t, e, `d="M6 6h3v3H6V6`)
}

func TestSVGAlpha(t *testing.T) {
	c, err := Encode("hi mem6")
	require.NoError(t, err)
	c.Palette = &[2]color.Color{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{0xff, 0, 0, 0xff},
	}
	doc, err := c.SVG()
	require.NoError(t, err)
	assert.Contains(t, doc, `fill="#000000" fill-opacity="0"/>`)
	assert.Contains(t, doc, `<path fill="#ff0000" d=`)

	for _, tt := range []struct {
		c    color.Color
		want string
	}{
		{color.White, `fill="#ffffff"`},
		{color.Gray{0x80}, `fill="#808080"`},
		{color.NRGBA{0xff, 0xff, 0xff, 0x80}, `fill="#ffffff" fill-opacity="0.502"`},
		{color.RGBA{0x40, 0x20, 0, 0x80}, `fill="#7f3f00" fill-opacity="0.502"`},
		{color.Transparent, `fill="#000000" fill-opacity="0"`},
	} {
		assert.Equal(t, tt.want, fill(tt.c), "%#v", tt.c)
	}
}

func TestSVGGrid(t *testing.T) {
	// Any Grid can be rendered, including an unfinished one.
	g := coding.NewGrid(2)
	g.Set(1, 0, coding.Function|coding.Dark)
	s := &SVG{Width: 2, Height: 2}
	assert.Equal(t, "M1 0h1v1H1V0", s.PathData(g))
}
