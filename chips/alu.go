// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/hacksim/hack"

// The six control bits select the computed function in three stages:
// zx/nx zero then negate x, zy/ny do the same for y, f picks x+y over
// x&y and no negates the result. The zr and ng flags are derived from
// the final output.
var alu = hack.MustChip("ALU",
	"x[16], y[16], zx, nx, zy, ny, f, no",
	"out[16], zr, ng",
	mux16("a=x, b=false, sel=zx, out=x1"),
	not16("in=x1, out=notX1"),
	mux16("a=x1, b=notX1, sel=nx, out=x2"),
	mux16("a=y, b=false, sel=zy, out=y1"),
	not16("in=y1, out=notY1"),
	mux16("a=y1, b=notY1, sel=ny, out=y2"),
	add16("a=x2, b=y2, out=sum"),
	and16("a=x2, b=y2, out=and"),
	mux16("a=and, b=sum, sel=f, out=res"),
	not16("in=res, out=notRes"),
	mux16("a=res, b=notRes, sel=no, out=out, out[15]=ng, out[0..7]=zlo[0..7], out[8..15]=zhi[0..7]"),
	or8way("in=zlo, out=nzlo"),
	or8way("in=zhi, out=nzhi"),
	or("a=nzlo, b=nzhi, out=nz"),
	not("in=nz, out=zr"))

// ALU returns the Hack arithmetic and logic unit.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//
// zr is set if out == 0, ng is set if out < 0 when read as a two's
// complement signed integer.
func ALU(w string) hack.Part { return alu(w) }
