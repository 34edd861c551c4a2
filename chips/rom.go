// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips

import "github.com/hacksim/hack"

// ROM32K returns a 32K-word read-only memory preloaded with the given
// program. Addresses past the end of the program read as 0.
//
//	Inputs: address[15]
//	Outputs: out[16]
func ROM32K(program []uint16) hack.NewPartFn {
	rom := append([]uint16(nil), program...)
	return (&hack.PartSpec{
		Name:    "ROM32K",
		Inputs:  hack.IO("address[15]"),
		Outputs: hack.IO("out[16]"),
		Mount: func(s *hack.Socket) []hack.Component {
			addr := s.Bus("address", 15)
			out := s.Bus("out", 16)
			return []hack.Component{{
				In:  addr,
				Out: out,
				Update: func(c *hack.Circuit) {
					var v uint16
					if a := addr.GetInt64(c); a < int64(len(rom)) {
						v = rom[a]
					}
					out.SetInt64(c, int64(v))
				},
			}}
		},
	}).NewPart
}
