// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import (
	"fmt"

	"github.com/hacksim/hack"
)

var (
	ram8 = hack.MustChip("RAM8", "in[16], load, address[3]", "out[16]",
		dmux8way("in=load, sel=address, a=l0, b=l1, c=l2, d=l3, e=l4, f=l5, g=l6, h=l7"),
		register("in=in, load=l0, out=r0"),
		register("in=in, load=l1, out=r1"),
		register("in=in, load=l2, out=r2"),
		register("in=in, load=l3, out=r3"),
		register("in=in, load=l4, out=r4"),
		register("in=in, load=l5, out=r5"),
		register("in=in, load=l6, out=r6"),
		register("in=in, load=l7, out=r7"),
		mux8way16("a=r0, b=r1, c=r2, d=r3, e=r4, f=r5, g=r6, h=r7, sel=address, out=out"))

	ram64 = newRAM64()

	ram512 = ramSpec("RAM512", 9).NewPart
	ram4K  = ramSpec("RAM4K", 12).NewPart
	ram16K = ramSpec("RAM16K", 14).NewPart
)

func newRAM64() hack.NewPartFn {
	parts := make([]hack.Part, 0, 10)
	parts = append(parts, dmux8way("in=load, sel=address[3..5], a=l0, b=l1, c=l2, d=l3, e=l4, f=l5, g=l6, h=l7"))
	for i := 0; i < 8; i++ {
		parts = append(parts, ram8(fmt.Sprintf("in=in, load=l%d, address=address[0..2], out=r%d", i, i)))
	}
	parts = append(parts, mux8way16("a=r0, b=r1, c=r2, d=r3, e=r4, f=r5, g=r6, h=r7, sel=address[3..5], out=out"))
	return hack.MustChip("RAM64", "in[16], load, address[6]", "out[16]", parts...)
}

// ramSpec returns a native RAM of 2^bits 16-bit words backed by a word
// slice. Reading is combinational on address, writes take effect at the
// clock tick when load is set.
func ramSpec(name string, bits int) *hack.PartSpec {
	return &hack.PartSpec{
		Name:    name,
		Inputs:  hack.IO(fmt.Sprintf("in[16], load, address[%d]", bits)),
		Outputs: hack.IO("out[16]"),
		Mount: func(s *hack.Socket) []hack.Component {
			in := s.Bus("in", 16)
			addr := s.Bus("address", bits)
			out := s.Bus("out", 16)
			load := s.Pin("load")
			mem := make([]uint16, 1<<uint(bits))
			return []hack.Component{{
				In:      addr,
				Latched: append([]int{load}, in...),
				Out:     out,
				Update: func(c *hack.Circuit) {
					out.SetInt64(c, int64(mem[addr.GetInt64(c)]))
				},
				Latch: func(c *hack.Circuit) {
					if c.Get(load) {
						mem[addr.GetInt64(c)] = uint16(in.GetInt64(c))
					}
				},
			}}
		},
	}
}

// RAM8 returns an 8-word RAM built from 8 registers.
//
//	Inputs: in[16], load, address[3]
//	Outputs: out[16]
//
// out is the word stored at address. When load is set, the word at
// address takes the value of in at the next clock tick.
func RAM8(w string) hack.Part { return ram8(w) }

// RAM64 returns a 64-word RAM built from 8 RAM8 chips.
//
//	Inputs: in[16], load, address[6]
//	Outputs: out[16]
func RAM64(w string) hack.Part { return ram64(w) }

// RAM512 returns a 512-word RAM.
//
//	Inputs: in[16], load, address[9]
//	Outputs: out[16]
func RAM512(w string) hack.Part { return ram512(w) }

// RAM4K returns a 4096-word RAM.
//
//	Inputs: in[16], load, address[12]
//	Outputs: out[16]
func RAM4K(w string) hack.Part { return ram4K(w) }

// RAM16K returns a 16384-word RAM.
//
//	Inputs: in[16], load, address[14]
//	Outputs: out[16]
func RAM16K(w string) hack.Part { return ram16K(w) }
