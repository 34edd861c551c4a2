// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/hacksim/hack"

// Instruction decoding. Bit 15 selects A-instructions (load the A
// register with the immediate value) over C-instructions. In a
// C-instruction, bit 12 selects A or M as the ALU y operand, bits 11-6
// are the ALU control bits, bits 5-3 load A, D and M and bits 2-0 are
// the jump condition (lt, eq, gt).
var cpu = hack.MustChip("CPU",
	"inM[16], instruction[16], reset",
	"outM[16], writeM, addressM[15], pc[15]",
	// A register: immediate value or ALU output
	not("in=instruction[15], out=isA"),
	mux16("a=aluOut, b=instruction, sel=isA, out=aIn"),
	or("a=isA, b=instruction[5], out=loadA"),
	register("in=aIn, load=loadA, out=aOut, out[0..14]=addressM[0..14]"),
	// D register
	and("a=instruction[15], b=instruction[4], out=loadD"),
	register("in=aluOut, load=loadD, out=dOut"),
	// ALU
	mux16("a=aOut, b=inM, sel=instruction[12], out=aluY"),
	alu("x=dOut, y=aluY, zx=instruction[11], nx=instruction[10], zy=instruction[9], ny=instruction[8], f=instruction[7], no=instruction[6], out=aluOut, out=outM, zr=zr, ng=ng"),
	and("a=instruction[15], b=instruction[3], out=writeM"),
	// jump condition
	not("in=ng, out=notNg"),
	not("in=zr, out=notZr"),
	and("a=notNg, b=notZr, out=pos"),
	and("a=instruction[2], b=ng, out=jLT"),
	and("a=instruction[1], b=zr, out=jEQ"),
	and("a=instruction[0], b=pos, out=jGT"),
	or("a=jLT, b=jEQ, out=jLE"),
	or("a=jLE, b=jGT, out=jump"),
	and("a=instruction[15], b=jump, out=loadPC"),
	pc("in=aOut, load=loadPC, inc=true, reset=reset, out[0..14]=pc[0..14]"))

// CPU returns the Hack central processing unit.
//
//	Inputs: inM[16], instruction[16], reset
//	Outputs: outM[16], writeM, addressM[15], pc[15]
//
// inM is the value of the memory word addressed by addressM, outM and
// writeM request a memory write to that word. pc addresses the next
// instruction. When reset is set, the program counter goes back to 0 at
// the next clock tick.
func CPU(w string) hack.Part { return cpu(w) }
