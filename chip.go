// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type chip struct {
	PartSpec             // PartSpec for this chip
	parts    []*PartSpec // sub part blueprints
	// wires maps part pins, keyed by canonical pin name, to the chip
	// internal wire name, which is the name of a chip input pin or
	// dynamically allocated (__0, __1, ...)
	wires map[pin]string
}

// mount mounts every sub part into a child socket wired according to the
// chip's wire map. Unconnected part inputs read the constant false net;
// unconnected outputs drive dead wires allocated at build time.
func (c *chip) mount(s *Socket) []Component {
	var comps []Component
	for i, p := range c.parts {
		sub := newSocket(s.c)
		sub.prefix = s.prefix + p.Name + strconv.Itoa(i) + "."
		for _, subK := range p.Pinout {
			if subK == "" {
				continue
			}
			if n := c.wires[pin{i, subK}]; n != "" {
				sub.m[subK] = s.PinOrNew(n)
			} else {
				sub.m[subK] = cstFalse
			}
		}
		cs := p.Mount(sub)
		for j := range cs {
			if cs[j].Name == "" {
				cs[j].Name = strings.TrimSuffix(sub.prefix, ".")
			}
		}
		comps = append(comps, cs...)
	}
	return comps
}

// Chip composes existing parts into a new part packaged into a chip. The
// pin names specified as inputs and outputs become the inputs and outputs
// of the chip.
//
// An Xor gate could be created like this:
//
//	xor, err := Chip("Xor", "a, b", "out",
//		Nand("a=a, b=b, out=nandAB"),
//		Nand("a=a, b=nandAB, out=w0"),
//		Nand("a=b, b=nandAB, out=w1"),
//		Nand("a=w0, b=w1, out=out"),
//	)
//
// The returned value is a NewPartFn that can be used to compose the new
// chip with others:
//
//	xnor, err := Chip("Xnor", "a, b", "out",
//		xor("a=a, b=b, out=xorAB"),
//		not("in=xorAB, out=out"),
//	)
//
// Chip validates the wiring: every connection must name an existing pin
// on its part, every signal may have at most one driver, and every
// consumed signal must have one. Signals nobody consumes are legal.
func Chip(name string, inputs, outputs string, parts ...Part) (NewPartFn, error) {
	ins, err := ParseIOSpec(inputs)
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	outs, err := ParseIOSpec(outputs)
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}

	wr := newWiring(ins, outs)
	spcs := make([]*PartSpec, len(parts))

	for pnum, p := range parts {
		sp := p.PartSpec
		spcs[pnum] = sp
		bound := make(map[string]bool, len(p.Conns))
		for _, cn := range p.Conns {
			// part pins are wired under their canonical name so that
			// public pins tied to one internal wire act as one driver
			subK, ok := sp.pinout()[cn.Pin]
			if !ok {
				return nil, errors.Wrapf(ErrPinNotFound, "%s: invalid pin name %s for part %s",
					name, cn.Pin, sp.Name)
			}
			if subK == "" {
				continue
			}
			if sp.isInput(cn.Pin) {
				if bound[cn.Pin] {
					return nil, errors.Wrapf(ErrMultipleDrivers, "%s: input pin %s.%s connected to more than one signal",
						name, sp.Name, cn.Pin)
				}
				bound[cn.Pin] = true
				wr.connectIn(cn.Net, pin{pnum, subK})
			} else if err := wr.connectOut(pin{pnum, subK}, cn.Net); err != nil {
				return nil, errors.WithMessage(err, name+": "+sp.Name+"."+cn.Pin+":"+cn.Net)
			}
		}
	}

	wires, err := wr.resolve()
	if err != nil {
		return nil, errors.WithMessage(err, name)
	}
	// unconnected part outputs drive dead wires
	for pnum, sp := range spcs {
		for _, o := range sp.Outputs {
			subK := sp.pinout()[o]
			if subK == "" {
				continue
			}
			if _, ok := wires[pin{pnum, subK}]; !ok {
				wires[pin{pnum, subK}] = wr.freshWire()
			}
		}
	}

	pinout := make(map[string]string, len(ins)+len(outs))
	for _, i := range ins {
		pinout[i] = wires[pin{-1, i}]
	}
	for _, o := range outs {
		pinout[o] = wires[pin{-1, o}]
	}

	c := &chip{
		PartSpec: PartSpec{
			Name:    name,
			Inputs:  ins,
			Outputs: outs,
			Pinout:  pinout,
		},
		parts: spcs,
		wires: wires,
	}
	c.PartSpec.Mount = c.mount
	return c.PartSpec.NewPart, nil
}

// MustChip is like Chip but panics on a wiring error. For use in package
// level part libraries.
func MustChip(name string, inputs, outputs string, parts ...Part) NewPartFn {
	p, err := Chip(name, inputs, outputs, parts...)
	if err != nil {
		panic(err)
	}
	return p
}

// mountParts mounts the root part list of a circuit. Unlike Chip, free
// net names are allowed to remain undriven here: they become the
// circuit's external input pins.
func mountParts(root *Socket, parts []Part) ([]Component, error) {
	var comps []Component
	for i, p := range parts {
		sub := newSocket(root.c)
		sub.prefix = p.Name + strconv.Itoa(i) + "."
		bound := make(map[string][]string, len(p.Conns))
		for _, cn := range p.Conns {
			if _, ok := p.pinout()[cn.Pin]; !ok {
				return nil, errors.Wrapf(ErrPinNotFound, "invalid pin name %s for part %s",
					cn.Pin, p.Name)
			}
			bound[cn.Pin] = append(bound[cn.Pin], cn.Net)
		}
		for _, k := range p.Inputs {
			subK := p.Pinout[k]
			if subK == "" {
				continue
			}
			nets := bound[k]
			switch len(nets) {
			case 0:
				sub.m[subK] = cstFalse
			case 1:
				sub.m[subK] = root.PinOrNew(nets[0])
			default:
				return nil, errors.Wrapf(ErrMultipleDrivers, "input pin %s.%s connected to more than one signal",
					p.Name, k)
			}
		}
		// output pins tied to one canonical wire inside the part share a
		// single net, so their root nets are collected per wire and the
		// extra names aliased to the first
		type outWire struct {
			pin  string
			nets []string
		}
		var outs []string
		wireOf := make(map[string]*outWire)
		for _, k := range p.Outputs {
			subK := p.Pinout[k]
			if subK == "" {
				continue
			}
			w := wireOf[subK]
			if w == nil {
				w = &outWire{pin: k}
				wireOf[subK] = w
				outs = append(outs, subK)
			}
			w.nets = append(w.nets, bound[k]...)
		}
		for _, subK := range outs {
			w := wireOf[subK]
			if len(w.nets) == 0 {
				sub.m[subK] = root.c.allocPin(sub.prefix + w.pin)
				continue
			}
			n := root.PinOrNew(w.nets[0])
			sub.m[subK] = n
			for _, alias := range w.nets[1:] {
				if a, ok := root.m[alias]; ok && a != n {
					return nil, errors.Wrapf(ErrMultipleDrivers, "nets %s and %s fanned out from %s.%s cannot be merged",
						w.nets[0], alias, p.Name, w.pin)
				}
				root.m[alias] = n
			}
		}
		cs := p.Mount(sub)
		for j := range cs {
			if cs[j].Name == "" {
				cs[j].Name = strings.TrimSuffix(sub.prefix, ".")
			}
		}
		comps = append(comps, cs...)
	}
	return comps, nil
}
