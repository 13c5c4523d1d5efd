// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qr53/gf256"

var rs = gf256.NewRSEncoder(Field, CheckBytes)

// AddCheckBytes returns the codeword sequence for DataBytes data
// codewords: data codewords of all blocks interleaved, followed by
// check codewords interleaved the same way.
func AddCheckBytes(data []byte) []byte {
	if len(data) != DataBytes {
		panic("qr: wrong data length")
	}
	var blocks, checks [Blocks][]byte
	check := make([]byte, Blocks*CheckBytes)
	for i, n := range blockLayout {
		blocks[i], data = data[:n], data[n:]
		checks[i], check = check[:CheckBytes], check[CheckBytes:]
		rs.ECC(blocks[i], checks[i])
	}
	cw := make([]byte, 0, Codewords)
	cw = interleave(cw, blocks[:])
	cw = interleave(cw, checks[:])
	if len(cw) != Codewords {
		panic("qr: internal error: codeword count")
	}
	return cw
}

// interleave appends blocks to dst column by column: the first byte of
// each block, then the second, and so on.  Exhausted blocks are
// skipped.
func interleave(dst []byte, blocks [][]byte) []byte {
	for i := 0; ; i++ {
		n := len(dst)
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
		if len(dst) == n {
			return dst
		}
	}
}

// Stream returns a BitStream of codewords followed by remainder bits,
// ready for placement.
func Stream(codewords []byte) BitStream {
	return NewBitStream(codewords, RemainderBits)
}
