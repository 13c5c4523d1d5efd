// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a bit stream writer.  Bits are packed most significant first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for all codewords.
func NewBits() *Bits {
	return &Bits{b: make([]byte, 0, Codewords)}
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the written bytes.  It panics unless a whole
// number of bytes was written.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v, most significant first.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Pad adds up to 4 terminator bits to b, zero bits up to the next
// byte boundary and alternating pad codewords until b is n bits
// long.  n must be a multiple of 8 and not less than b.Bits().
func (b *Bits) Pad(n int) {
	if t := min(n-b.nbit, 4); t > 0 {
		b.Write(0, t)
	}
	if r := -b.nbit & 7; r != 0 {
		b.Write(0, r)
	}
	for i := 0; b.nbit < n; i++ {
		b.Write(uint32([2]byte{0xec, 0x11}[i&1]), 8)
	}
}

// EncodeData returns the data bit stream for text encoded in mode,
// padded to DataBits: mode indicator, character count, data,
// terminator and padding.
func EncodeData(text string, mode Mode) (*Bits, error) {
	if !mode.Matches(text) {
		return nil, ErrUnsupportedMode
	}
	n := 4 + mode.CountLength() + len(text)*8
	if n > DataBits {
		return nil, &LengthError{Len: len(text), Bits: n}
	}
	b := NewBits()
	b.Write(mode.Indicator(), 4)
	b.Write(uint32(len(text)), mode.CountLength())
	for i := 0; i < len(text); i++ {
		b.Write(uint32(text[i]), 8)
	}
	b.Pad(DataBits)
	if b.nbit != DataBits {
		panic("qr: internal error: data stream length")
	}
	return b, nil
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	n   int // length in bits
	pos int
}

// NewBitStream returns a BitStream reading from b followed by
// extra zero bits.
func NewBitStream(b []byte, extra int) BitStream {
	return BitStream{b: b, n: len(b)*8 + extra}
}

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the length of s in bits.
func (s *BitStream) Len() int { return s.n }

// Pos returns the number of bits read.
func (s *BitStream) Pos() int { return s.pos }

// Next returns the next bit from s as 0 or 1 and true,
// or 0 and false past the end.
func (s *BitStream) Next() (byte, bool) {
	if s.pos >= s.n {
		return 0, false
	}
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
	}
	s.pos++
	return b, true
}
