// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes short messages as version 3-L QR codes.

Every code is 29 modules on a side, uses error correction level L and
holds up to 53 bytes in a single byte mode segment.  The bytes are
stored as given; EncodeLatin1 converts UTF-8 text to ISO 8859-1 first.

A Code can be rendered as text, SVG, an image.Image, PNG or PBM.
*/
package qr // import "github.com/unixdj/qr53"

import (
	"errors"
	"image/color"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qr53/coding"
)

var (
	ErrMessageTooLong  = coding.ErrMessageTooLong
	ErrUnsupportedMode = coding.ErrUnsupportedMode
	ErrIncomplete      = coding.ErrIncomplete
	ErrMask            = coding.ErrMask
	ErrNotLatin1       = errors.New("qr: text not representable in Latin-1")
	ErrArgs            = errors.New("qr: invalid arguments")
	ErrLargeImage      = errors.New("qr: image too large")
)

// MaxLength is the maximum message length in bytes.
const MaxLength = coding.MaxLength

// A Mask is a data mask pattern, 0 to 7.
type Mask = coding.Mask

// AutoMask chooses the mask with the lowest penalty.
const AutoMask = coding.AutoMask

// Rendering defaults.
const (
	DefaultScale  = 8 // image pixels per module
	DefaultBorder = 4 // quiet zone modules
)

// maxPixels limits the side of rendered images.
const maxPixels = 1 << 16

// A Grid is a square of dark and light modules.
// *Code and *coding.Code implement it.
type Grid interface {
	Size() int           // modules on a side
	Black(x, y int) bool // false outside the grid
}

// A Code is a QR code with rendering settings.
// The settings may be changed before rendering.
type Code struct {
	*coding.Code
	Scale   int             // image pixels per module
	Border  int             // quiet zone modules on each side
	Palette *[2]color.Color // light and dark colours; nil for white and black
	Reverse bool            // swap light and dark
}

func newCode(c *coding.Code) *Code {
	return &Code{Code: c, Scale: DefaultScale, Border: DefaultBorder}
}

// Encode returns a QR code containing text, using the mask with the
// lowest penalty.
func Encode(text string) (*Code, error) {
	return encode(text, AutoMask)
}

// EncodeMask returns a QR code containing text, using the given mask.
func EncodeMask(text string, mask Mask) (*Code, error) {
	if !mask.Valid() {
		return nil, ErrMask
	}
	return encode(text, mask)
}

func encode(text string, mask Mask) (*Code, error) {
	p, err := coding.NewPlan(mask)
	if err != nil {
		return nil, err
	}
	c, err := p.Encode(text)
	if err != nil {
		return nil, err
	}
	return newCode(c), nil
}

// EncodeLatin1 returns a QR code containing UTF-8 text converted to
// ISO 8859-1, the default character set of QR byte mode.
func EncodeLatin1(text string) (*Code, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, ErrNotLatin1
	}
	return Encode(s)
}

// isValid reports whether the rendering settings are usable.
func (c *Code) isValid() bool {
	return c != nil && c.Code != nil && c.Scale > 0 && c.Border >= 0
}

// check returns an error unless an image of c can be rendered.
func (c *Code) check() error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.pixels() > maxPixels {
		return ErrLargeImage
	}
	return nil
}

// pixels returns the side of the rendered image in pixels.
func (c *Code) pixels() int {
	return (c.Size() + c.Border*2) * c.Scale
}

var (
	whiteColor color.Color = color.Gray{0xff}
	blackColor color.Color = color.Gray{0x00}
)

// colors returns the light and dark colours of c.
func (c *Code) colors() (light, dark color.Color) {
	light, dark = whiteColor, blackColor
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		light, dark = dark, light
	}
	return light, dark
}

// dark reports whether the pixel at module x, y is drawn in the dark
// colour.  x and y include the border.
func (c *Code) dark(x, y int) bool {
	return c.Black(x-c.Border, y-c.Border) != c.Reverse
}
