// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"fmt"

	"github.com/hacksim/hack"
)

var (
	halfAdder = hack.MustChip("HalfAdder", "a, b", "sum, carry",
		xor("a=a, b=b, out=sum"),
		and("a=a, b=b, out=carry"))

	fullAdder = hack.MustChip("FullAdder", "a, b, c", "sum, carry",
		halfAdder("a=a, b=b, sum=s0, carry=c0"),
		halfAdder("a=s0, b=c, sum=sum, carry=c1"),
		or("a=c0, b=c1, out=carry"))

	add16 = newAdd16()

	inc16 = hack.MustChip("Inc16", "in[16]", "out[16]",
		add16("a=in, b[0]=true, b[1..15]=false, out=out"))
)

// ripple-carry adder, carry out of bit 15 discarded.
func newAdd16() hack.NewPartFn {
	parts := make([]hack.Part, 16)
	parts[0] = halfAdder("a=a[0], b=b[0], sum=out[0], carry=c0")
	for i := 1; i < 16; i++ {
		parts[i] = fullAdder(fmt.Sprintf("a=a[%d], b=b[%d], c=c%d, sum=out[%d], carry=c%d", i, i, i-1, i, i))
	}
	return hack.MustChip("Add16", "a[16], b[16]", "out[16]", parts...)
}

// HalfAdder returns a half adder.
//
//	Inputs: a, b
//	Outputs: sum, carry
func HalfAdder(w string) hack.Part { return halfAdder(w) }

// FullAdder returns a full adder.
//
//	Inputs: a, b, c
//	Outputs: sum, carry
func FullAdder(w string) hack.Part { return fullAdder(w) }

// Add16 returns a 16-bit adder. Addition is modulo 2^16, the final
// carry is dropped.
//
//	Inputs: a[16], b[16]
//	Outputs: out[16]
func Add16(w string) hack.Part { return add16(w) }

// Inc16 returns a 16-bit incrementer.
//
//	Inputs: in[16]
//	Outputs: out[16]
//	Function: out = in + 1
func Inc16(w string) hack.Part { return inc16(w) }
