// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

// Constant net names.
const (
	True  = "true"
	False = "false"
)

// Constant net numbers, common to all circuits.
const (
	cstFalse = iota
	cstTrue
	cstCount
)

// A Socket maps a part's pin names to net numbers in a circuit. Mount
// functions query it for the nets assigned to their pins.
type Socket struct {
	m      map[string]int
	prefix string // instance path, used to qualify net names
	c      *Circuit
}

func newSocket(c *Circuit) *Socket {
	return &Socket{
		m: map[string]int{False: cstFalse, True: cstTrue},
		c: c,
	}
}

// Pin returns the net number allocated to the given pin name. It panics
// if the pin does not exist: parts are always mounted with every declared
// pin bound (unconnected inputs read the constant false net).
func (s *Socket) Pin(name string) int {
	n, ok := s.m[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// PinOrNew returns the net number allocated to the given pin name,
// allocating a new net if none exists.
func (s *Socket) PinOrNew(name string) int {
	n, ok := s.m[name]
	if !ok {
		n = s.c.allocPin(s.prefix + name)
		s.m[name] = n
	}
	return n
}

// Bus returns the nets allocated to the given bus name.
func (s *Socket) Bus(name string, bits int) Bus {
	out := make(Bus, bits)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}
