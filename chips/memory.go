// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/hacksim/hack"

var screen = hack.MustChip("Screen", "in[16], load, address[13]", "out[16]",
	dmux("in=load, sel=address[12], a=l0, b=l1"),
	ram4K("in=in, load=l0, address=address[0..11], out=r0"),
	ram4K("in=in, load=l1, address=address[0..11], out=r1"),
	mux16("a=r0, b=r1, sel=address[12], out=out"))

// Screen returns the 8K-word screen memory map. It behaves like a
// RAM8K; the display peripheral reads the same backing words.
//
//	Inputs: in[16], load, address[13]
//	Outputs: out[16]
func Screen(w string) hack.Part { return screen(w) }

// Keyboard returns a part exposing the scan code returned by key as a
// 16-bit read-only register. Writes are accepted and discarded.
//
//	Inputs: in[16], load
//	Outputs: out[16]
func Keyboard(key func() uint16) hack.NewPartFn {
	return (&hack.PartSpec{
		Name:    "Keyboard",
		Inputs:  hack.IO("in[16], load"),
		Outputs: hack.IO("out[16]"),
		Mount: func(s *hack.Socket) []hack.Component {
			in := s.Bus("in", 16)
			load := s.Pin("load")
			out := s.Bus("out", 16)
			return []hack.Component{{
				Latched: append([]int{load}, in...),
				Out:     out,
				Update: func(c *hack.Circuit) {
					out.SetInt64(c, int64(key()))
				},
			}}
		},
	}).NewPart
}

// Memory returns the Hack memory: 16K words of RAM at addresses 0 to
// 0x3FFF, the screen map at 0x4000 to 0x5FFF and the keyboard register
// at 0x6000 and above. key supplies the current keyboard scan code.
//
//	Inputs: in[16], load, address[15]
//	Outputs: out[16]
func Memory(key func() uint16) hack.NewPartFn {
	return hack.MustChip("Memory", "in[16], load, address[15]", "out[16]",
		dmux("in=load, sel=address[14], a=loadRAM, b=loadIO"),
		ram16K("in=in, load=loadRAM, address=address[0..13], out=ramOut"),
		dmux("in=loadIO, sel=address[13], a=loadScr, b=loadKbd"),
		screen("in=in, load=loadScr, address=address[0..12], out=scrOut"),
		Keyboard(key)("in=in, load=loadKbd, out=kbdOut"),
		mux16("a=scrOut, b=kbdOut, sel=address[13], out=ioOut"),
		mux16("a=ramOut, b=ioOut, sel=address[14], out=out"))
}
