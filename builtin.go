// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import "strconv"

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pOut = "out"
)

var nandSpec = &PartSpec{
	Name:    "Nand",
	Inputs:  []string{pA, pB},
	Outputs: []string{pOut},
	Mount: func(s *Socket) []Component {
		a, b, out := s.Pin(pA), s.Pin(pB), s.Pin(pOut)
		return []Component{{
			In:  []int{a, b},
			Out: []int{out},
			Update: func(c *Circuit) {
				c.Set(out, !(c.Get(a) && c.Get(b)))
			},
		}}
	}}

// Nand returns the universal combinational primitive: out = !(a && b).
// Every other combinational gate derives from it by composition.
//
//	Inputs: a, b
//	Outputs: out
func Nand(w string) Part { return nandSpec.NewPart(w) }

// NandN returns a NewPartFn for the bitwise n-bit variant of the Nand
// primitive.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !(a[i] && b[i]) }
func NandN(bits int) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "Nand" + bs,
		Inputs:  IO("a[" + bs + "], b[" + bs + "]"),
		Outputs: IO("out[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			a, b, out := s.Bus(pA, bits), s.Bus(pB, bits), s.Bus(pOut, bits)
			return []Component{{
				In:  append(append([]int{}, a...), b...),
				Out: []int(out),
				Update: func(c *Circuit) {
					for i := range out {
						c.Set(out[i], !(c.Get(a[i]) && c.Get(b[i])))
					}
				},
			}}
		}}).NewPart
}

var dffSpec = &PartSpec{
	Name:    "DFF",
	Inputs:  []string{pIn},
	Outputs: []string{pOut},
	Mount: func(s *Socket) []Component {
		in, out := s.Pin(pIn), s.Pin(pOut)
		var cur bool
		return []Component{{
			Latched: []int{in},
			Out:     []int{out},
			Update: func(c *Circuit) {
				c.Set(out, cur)
			},
			Latch: func(c *Circuit) {
				cur = c.Get(in)
			},
		}}
	}}

// DFF returns the clocked storage primitive: out(t) = in(t-1). The input
// is sampled when the clock ticks, after the circuit has settled, and
// becomes visible on out from the next settle on. A DFF is the only
// primitive allowed to break a combinational feedback path.
//
//	Inputs: in
//	Outputs: out
func DFF(w string) Part { return dffSpec.NewPart(w) }
