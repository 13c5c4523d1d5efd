// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level coding details of version 3-L
// byte mode QR codes.
//
// The profile is fixed: a code is 29 modules on a side and holds up
// to 53 bytes.  Encoding runs in stages, each exposed for testing:
// EncodeData builds the data bit stream, AddCheckBytes appends
// Reed-Solomon check codewords, and a Builder places function
// patterns, data, mask and format information on a Grid.  Plan ties
// the stages together.
package coding // import "github.com/unixdj/qr53/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qr53/gf256"
)

var (
	ErrMessageTooLong  = errors.New("qr: message too long")
	ErrUnsupportedMode = errors.New("qr: unsupported mode")
	ErrIncomplete      = errors.New("qr: incomplete code")
	ErrMask            = errors.New("qr: invalid mask")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// The profile: version 3, level L, byte mode.
const (
	Version    = 3                             // QR version
	Size       = Version*4 + 17                // modules on a side
	Blocks     = 1                             // error correction blocks
	CheckBytes = 15                            // check codewords per block
	Codewords  = 70                            // total codewords
	DataBytes  = Codewords - Blocks*CheckBytes // data codewords
	DataBits   = DataBytes * 8                 // data bits

	// RemainderBits is the number of zero bits following the last
	// codeword to fill the data area.
	RemainderBits = 7

	// MaxLength is the maximum payload length in bytes.
	MaxLength = (DataBits - 4 - byteCountLength) / 8
)

const byteCountLength = 8

// align lists the row and column coordinates of alignment pattern
// centres.  Centres overlapping finder patterns are skipped.
var align = [...]int{6, Size - 7}

// darkModule returns the coordinates of the single dark module
// next to the bottom left finder pattern.
func darkModule() (x, y int) { return 8, Version*4 + 9 }

// blockLayout lists data codewords per error correction block.
var blockLayout = [Blocks]int{DataBytes}

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
// Only L is supported.
type Level int

const (
	L Level = iota // 7% recovery
	M              // 15% recovery
	Q              // 25% recovery
	H              // 30% recovery
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// Segment encoding modes.  Only Byte has an encoder.
const (
	Numeric      Mode = iota // numeric mode
	Alphanumeric             // alphanumeric mode
	Byte                     // byte mode, any data
)

// A Mode is a QR segment encoding mode.
type Mode int

// modeInfo describes a segment mode for QR versions 1 to 9.
type modeInfo struct {
	name        string
	indicator   uint32 // 4 bit mode indicator
	countLength int    // length of the character count field
	accepts     func(string) bool
}

func nothing(string) bool { return false }

var modes = [...]modeInfo{
	Numeric:      {"numeric", 1, 10, nothing},
	Alphanumeric: {"alphanumeric", 2, 9, nothing},
	Byte:         {"byte", 4, byteCountLength, func(string) bool { return true }},
}

func (m Mode) info() *modeInfo {
	if 0 <= m && int(m) < len(modes) {
		return &modes[m]
	}
	return nil
}

func (m Mode) String() string {
	if mi := m.info(); mi != nil {
		return mi.name
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint32 {
	if mi := m.info(); mi != nil {
		return mi.indicator
	}
	return 0
}

// CountLength returns the length of the character count field.
func (m Mode) CountLength() int {
	if mi := m.info(); mi != nil {
		return mi.countLength
	}
	return 0
}

// Matches reports whether s is encodable in mode m.
func (m Mode) Matches(s string) bool {
	mi := m.info()
	return mi != nil && mi.accepts(s)
}

// SelectMode returns the encoding mode for s.
// Every string is encoded in byte mode.
func SelectMode(s string) Mode { return Byte }

// LengthError reports a payload that does not fit in a code.
// It matches ErrMessageTooLong.
type LengthError struct {
	Len  int // payload length in bytes
	Bits int // encoded length in bits, including the header
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("qr: %d-byte message is %d bits, "+
		"exceeding %d-bit capacity (%d bytes)",
		e.Len, e.Bits, DataBits, MaxLength)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrMessageTooLong
}
