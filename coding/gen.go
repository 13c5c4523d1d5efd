//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"os"
)

// calcFormat returns the 15 bit BCH code for 5 bits of format
// information in the high bits of fb.
func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

func main() {
	const level = 0 // L
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// QR Code format bits for level L, indexed by mask.
var ftab = [8]uint16{`)
	for m := 0; m < 8; m++ {
		fb := uint16(level^1) << 13 // L=01, M=00, Q=11, H=10
		fb |= uint16(m) << 10       // mask
		fb = calcFormat(fb) ^ 0x5412
		if m != 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%#04x,", fb)
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
