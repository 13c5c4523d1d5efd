// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image returns an Image displaying the code, or nil if the
// rendering settings are invalid.
func (c *Code) Image() image.Image {
	if c.check() != nil {
		return nil
	}
	light, dark := c.colors()
	return &codeImage{
		Code:    c,
		palette: color.Palette{light, dark},
		pix:     c.pixels(),
	}
}

// codeImage implements image.PalettedImage.
type codeImage struct {
	*Code
	palette color.Palette // light, dark
	pix     int           // pixels on a side
}

func (c *codeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.pix, c.pix)
}

func (c *codeImage) ColorIndexAt(x, y int) uint8 {
	if c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return 1
	}
	return 0
}

func (c *codeImage) At(x, y int) color.Color {
	return c.palette[c.ColorIndexAt(x, y)]
}

func (c *codeImage) ColorModel() color.Model {
	return c.palette
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	if err := c.check(); err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, c.Image())
}

// PNG returns a PNG image displaying the code, or nil if the
// rendering settings are invalid.
func (c *Code) PNG() []byte {
	var b bytes.Buffer
	if err := c.EncodePNG(&b); err != nil {
		return nil
	}
	return b.Bytes()
}
