// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chips provides the Hack chip library, from the elementary logic
// gates up to the CPU and the Computer.
//
// With the exception of the large RAM chips and the I/O registers, every
// chip is a plain composition bottoming out in the Nand and DFF
// primitives; the library contains wiring only, no behavior.
package chips

import "github.com/hacksim/hack"

var (
	not = hack.MustChip("Not", "in", "out",
		hack.Nand("a=in, b=in, out=out"))

	and = hack.MustChip("And", "a, b", "out",
		hack.Nand("a=a, b=b, out=nandAB"),
		hack.Nand("a=nandAB, b=nandAB, out=out"))

	or = hack.MustChip("Or", "a, b", "out",
		hack.Nand("a=a, b=a, out=notA"),
		hack.Nand("a=b, b=b, out=notB"),
		hack.Nand("a=notA, b=notB, out=out"))

	xor = hack.MustChip("Xor", "a, b", "out",
		hack.Nand("a=a, b=b, out=nandAB"),
		hack.Nand("a=a, b=nandAB, out=w0"),
		hack.Nand("a=b, b=nandAB, out=w1"),
		hack.Nand("a=w0, b=w1, out=out"))

	mux = hack.MustChip("Mux", "a, b, sel", "out",
		not("in=sel, out=notSel"),
		and("a=a, b=notSel, out=w0"),
		and("a=b, b=sel, out=w1"),
		or("a=w0, b=w1, out=out"))

	dmux = hack.MustChip("DMux", "in, sel", "a, b",
		not("in=sel, out=notSel"),
		and("a=in, b=notSel, out=a"),
		and("a=in, b=sel, out=b"))
)

// Not returns a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
func Not(w string) hack.Part { return not(w) }

// And returns an AND gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b
func And(w string) hack.Part { return and(w) }

// Or returns an OR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a || b
func Or(w string) hack.Part { return or(w) }

// Xor returns a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a != b
func Xor(w string) hack.Part { return xor(w) }

// Mux returns a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
func Mux(w string) hack.Part { return mux(w) }

// DMux returns a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
func DMux(w string) hack.Part { return dmux(w) }
