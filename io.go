// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import "strconv"

// Input returns a part spec for a 1 bit input driven by f. The function
// is sampled on every settle.
//
//	Outputs: out
func Input(f func() bool) NewPartFn {
	return (&PartSpec{
		Name:    "Input",
		Outputs: []string{pOut},
		Mount: func(s *Socket) []Component {
			out := s.Pin(pOut)
			return []Component{{
				Out: []int{out},
				Update: func(c *Circuit) {
					c.Set(out, f())
				},
			}}
		}}).NewPart
}

// Output returns a part spec for a 1 bit probe. The function is called
// with the pin state on every settle.
//
//	Inputs: in
func Output(f func(value bool)) NewPartFn {
	return (&PartSpec{
		Name:   "Output",
		Inputs: []string{pIn},
		Mount: func(s *Socket) []Component {
			in := s.Pin(pIn)
			return []Component{{
				In: []int{in},
				Update: func(c *Circuit) {
					f(c.Get(in))
				},
			}}
		}}).NewPart
}

// InputN returns a part spec for an input bus of the given size driven by
// f (low bits of the returned value).
//
//	Outputs: out[bits]
func InputN(bits int, f func() int64) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:    "Input" + bs,
		Outputs: IO("out[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			out := s.Bus(pOut, bits)
			return []Component{{
				Out: []int(out),
				Update: func(c *Circuit) {
					out.SetInt64(c, f())
				},
			}}
		}}).NewPart
}

// OutputN returns a part spec for a bus probe of the given size. The
// value passed to f is zero-extended.
//
//	Inputs: in[bits]
func OutputN(bits int, f func(int64)) NewPartFn {
	bs := strconv.Itoa(bits)
	return (&PartSpec{
		Name:   "Output" + bs,
		Inputs: IO("in[" + bs + "]"),
		Mount: func(s *Socket) []Component {
			in := s.Bus(pIn, bits)
			return []Component{{
				In: []int(in),
				Update: func(c *Circuit) {
					f(in.GetInt64(c))
				},
			}}
		}}).NewPart
}
