// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/hacksim/hack"

// Computer returns the complete Hack computer preloaded with the given
// program. key supplies the keyboard scan code. The CPU buses are also
// exposed as outputs so that a harness can observe execution.
//
//	Inputs: reset
//	Outputs: pc[15], addressM[15], outM[16], writeM
func Computer(program []uint16, key func() uint16) hack.NewPartFn {
	return hack.MustChip("Computer", "reset", "pc[15], addressM[15], outM[16], writeM",
		ROM32K(program)("address=pcOut, out=instruction"),
		cpu("inM=memOut, instruction=instruction, reset=reset, outM=mOut, outM=outM, writeM=mWrite, writeM=writeM, addressM=mAddr, addressM=addressM, pc=pcOut, pc=pc"),
		Memory(key)("in=mOut, load=mWrite, address=mAddr, out=memOut"))
}
