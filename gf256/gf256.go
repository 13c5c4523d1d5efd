// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois Field GF(256)
// and Reed-Solomon error correction coding.
package gf256 // import "github.com/unixdj/qr53/gf256"

import "strconv"

// A Field represents an instance of GF(256) defined by a specific
// polynomial.  A Field is immutable once created.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // doubled to avoid reducing sums of logs
}

// NewField returns a new field corresponding to the polynomial poly
// and generator α.  The Reed-Solomon encoding in QR codes uses
// polynomial 0x11d with generator 2.
//
// The choice of generator α only affects the Exp and Log operations.
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}

	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator " + strconv.Itoa(α) +
				" for polynomial " + strconv.Itoa(poly))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = 255
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// polyDiv divides the polynomial p by q and returns the remainder.
func polyDiv(p, q int) int {
	np := nbit(p)
	nq := nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// mul returns the product x*y mod poly, a GF(256) multiplication.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// reducible reports whether p is reducible.
func reducible(p int) bool {
	// Multiplying n-bit * n-bit produces (2n-1)-bit,
	// so if p is reducible, one of its factors must be
	// of np/2+1 bits or fewer.
	np := nbit(p)
	for q := 2; q < 1<<(np/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Exp returns the base-α exponential of e in the field.
// If e < 0, Exp returns 0.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		return 0
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// If x == 0, Log returns -1.
func (f *Field) Log(x byte) int {
	if x == 0 {
		return -1
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// If x == 0, Inv returns 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		return 0
	}
	return f.exp[255-f.log[x]]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder computes Reed-Solomon check bytes for a fixed number
// of check bytes.  An RSEncoder holds no scratch state and may be used
// by multiple goroutines at once.
type RSEncoder struct {
	f    *Field
	c    int
	lgen []byte // logs of generator coefficients below the leading 1
}

// gen returns the generator polynomial of degree e,
// (x - α^0)(x - α^1)...(x - α^(e-1)), highest coefficient first.
func (f *Field) gen(e int) []byte {
	p := make([]byte, e+1)
	p[0] = 1
	for i := 0; i < e; i++ {
		// p *= (x + α^i); the product has i+2 coefficients.
		c := f.Exp(i)
		for j := i + 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], c)
		}
	}
	return p
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of check bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid number of check bytes " + strconv.Itoa(c))
	}
	gen := f.gen(c)
	lgen := make([]byte, c)
	for i, v := range gen[1:] {
		// All generator coefficients are non-zero as the roots are
		// distinct powers of α.
		lgen[i] = f.log[v]
	}
	return &RSEncoder{f: f, c: c, lgen: lgen}
}

// Gen returns the generator polynomial in log form, as exponents of
// α, highest coefficient first.  The leading coefficient is 1, or α^0.
func (rs *RSEncoder) Gen() []int {
	g := make([]int, rs.c+1)
	for i, v := range rs.lgen {
		g[i+1] = int(v)
	}
	return g
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// The length of check must equal the number of check bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	// Long division of data·x^c by the generator.  p holds the
	// message followed by c zero bytes; the leading coefficient of
	// each step is converted to a log and the scaled generator is
	// xored into the following c bytes.
	exp := &rs.f.exp
	p := make([]byte, len(data)+rs.c)
	copy(p, data)
	for i := range data {
		lead := p[i]
		if lead == 0 {
			continue
		}
		α := int(rs.f.log[lead])
		for j, lg := range rs.lgen {
			p[i+1+j] ^= exp[int(lg)+α]
		}
	}
	copy(check, p[len(data):])
}
