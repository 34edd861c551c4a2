// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"fmt"

	"github.com/hacksim/hack"
)

func notN(bits int) hack.NewPartFn {
	parts := make([]hack.Part, bits)
	for i := range parts {
		parts[i] = not(fmt.Sprintf("in=in[%d], out=out[%d]", i, i))
	}
	io := fmt.Sprintf("[%d]", bits)
	return hack.MustChip(fmt.Sprintf("Not%d", bits), "in"+io, "out"+io, parts...)
}

func gateN(name string, bits int, g hack.NewPartFn) hack.NewPartFn {
	parts := make([]hack.Part, bits)
	for i := range parts {
		parts[i] = g(fmt.Sprintf("a=a[%d], b=b[%d], out=out[%d]", i, i, i))
	}
	io := fmt.Sprintf("[%d]", bits)
	return hack.MustChip(fmt.Sprintf("%s%d", name, bits), "a"+io+", b"+io, "out"+io, parts...)
}

func muxN(bits int) hack.NewPartFn {
	parts := make([]hack.Part, bits)
	for i := range parts {
		parts[i] = mux(fmt.Sprintf("a=a[%d], b=b[%d], sel=sel, out=out[%d]", i, i, i))
	}
	io := fmt.Sprintf("[%d]", bits)
	return hack.MustChip(fmt.Sprintf("Mux%d", bits), "a"+io+", b"+io+", sel", "out"+io, parts...)
}

var (
	not16 = notN(16)
	and16 = gateN("And", 16, and)
	or16  = gateN("Or", 16, or)
	mux16 = muxN(16)

	or8way = hack.MustChip("Or8Way", "in[8]", "out",
		or("a=in[0], b=in[1], out=w0"),
		or("a=w0, b=in[2], out=w1"),
		or("a=w1, b=in[3], out=w2"),
		or("a=w2, b=in[4], out=w3"),
		or("a=w3, b=in[5], out=w4"),
		or("a=w4, b=in[6], out=w5"),
		or("a=w5, b=in[7], out=out"))

	mux4way16 = hack.MustChip("Mux4Way16", "a[16], b[16], c[16], d[16], sel[2]", "out[16]",
		mux16("a=a, b=b, sel=sel[0], out=ab"),
		mux16("a=c, b=d, sel=sel[0], out=cd"),
		mux16("a=ab, b=cd, sel=sel[1], out=out"))

	mux8way16 = hack.MustChip("Mux8Way16", "a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]", "out[16]",
		mux4way16("a=a, b=b, c=c, d=d, sel=sel[0..1], out=abcd"),
		mux4way16("a=e, b=f, c=g, d=h, sel=sel[0..1], out=efgh"),
		mux16("a=abcd, b=efgh, sel=sel[2], out=out"))

	dmux4way = hack.MustChip("DMux4Way", "in, sel[2]", "a, b, c, d",
		dmux("in=in, sel=sel[1], a=ab, b=cd"),
		dmux("in=ab, sel=sel[0], a=a, b=b"),
		dmux("in=cd, sel=sel[0], a=c, b=d"))

	dmux8way = hack.MustChip("DMux8Way", "in, sel[3]", "a, b, c, d, e, f, g, h",
		dmux("in=in, sel=sel[2], a=abcd, b=efgh"),
		dmux4way("in=abcd, sel=sel[0..1], a=a, b=b, c=c, d=d"),
		dmux4way("in=efgh, sel=sel[0..1], a=e, b=f, c=g, d=h"))
)

// Not16 returns a 16-bit NOT gate.
//
//	Inputs: in[16]
//	Outputs: out[16]
func Not16(w string) hack.Part { return not16(w) }

// And16 returns a 16-bit bitwise AND gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
func And16(w string) hack.Part { return and16(w) }

// Or16 returns a 16-bit bitwise OR gate.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
func Or16(w string) hack.Part { return or16(w) }

// Mux16 returns a 16-bit multiplexer.
//
//	Inputs: a[16], b[16], sel
//	Outputs: out[16]
func Mux16(w string) hack.Part { return mux16(w) }

// Or8Way returns an 8-way OR gate.
//
//	Inputs: in[8]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[7]
func Or8Way(w string) hack.Part { return or8way(w) }

// Mux4Way16 returns a 4-way 16-bit multiplexer selecting between buses
// a to d according to sel.
//
//	Inputs: a[16], b[16], c[16], d[16], sel[2]
//	Outputs: out[16]
func Mux4Way16(w string) hack.Part { return mux4way16(w) }

// Mux8Way16 returns an 8-way 16-bit multiplexer selecting between buses
// a to h according to sel.
//
//	Inputs: a[16], b[16], c[16], d[16], e[16], f[16], g[16], h[16], sel[3]
//	Outputs: out[16]
func Mux8Way16(w string) hack.Part { return mux8way16(w) }

// DMux4Way returns a 4-way demultiplexer routing in to one of the
// outputs a to d according to sel.
//
//	Inputs: in, sel[2]
//	Outputs: a, b, c, d
func DMux4Way(w string) hack.Part { return dmux4way(w) }

// DMux8Way returns an 8-way demultiplexer routing in to one of the
// outputs a to h according to sel.
//
//	Inputs: in, sel[3]
//	Outputs: a, b, c, d, e, f, g, h
func DMux8Way(w string) hack.Part { return dmux8way(w) }
