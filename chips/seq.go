// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"fmt"

	"github.com/hacksim/hack"
)

var (
	bit = hack.MustChip("Bit", "in, load", "out",
		mux("a=out, b=in, sel=load, out=muxOut"),
		hack.DFF("in=muxOut, out=out"))

	register = newRegister()

	// Priority reset > load > inc: the reset mux comes last in the
	// chain feeding the register, the inc mux first.
	pc = hack.MustChip("PC", "in[16], load, inc, reset", "out[16]",
		inc16("in=cur, out=plusOne"),
		mux16("a=cur, b=plusOne, sel=inc, out=t0"),
		mux16("a=t0, b=in, sel=load, out=t1"),
		mux16("a=t1, b=false, sel=reset, out=next"),
		register("in=next, load=true, out=cur, out=out"))
)

func newRegister() hack.NewPartFn {
	parts := make([]hack.Part, 16)
	for i := range parts {
		parts[i] = bit(fmt.Sprintf("in=in[%d], load=load, out=out[%d]", i, i))
	}
	return hack.MustChip("Register", "in[16], load", "out[16]", parts...)
}

// Bit returns a 1-bit register. When load is set, out takes the value
// of in at the next clock tick, otherwise the stored bit is kept.
//
//	Inputs: in, load
//	Outputs: out
func Bit(w string) hack.Part { return bit(w) }

// Register returns a 16-bit register built from 16 Bit chips sharing
// the load line.
//
//	Inputs: in[16], load
//	Outputs: out[16]
func Register(w string) hack.Part { return register(w) }

// PC returns the program counter.
//
//	Inputs: in[16], load, inc, reset
//	Outputs: out[16]
//
// At each clock tick, if reset is set the counter goes to 0, else if
// load is set it takes the value of in, else if inc is set it
// increments, else it keeps its value.
func PC(w string) hack.Part { return pc(w) }
