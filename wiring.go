// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// a pin is identified by the part it belongs to (index in the chip's part
// list, -1 for the chip itself) and its canonical name: the internal wire
// the part's pinout routes it to. Public pins sharing one internal wire
// (a part output fanned out to several of its chip's outputs) are the
// same driver and must resolve to the same pin.
type pin struct {
	p    int
	name string
}

// a label is a named signal at chip scope: driven by at most one output
// pin, consumed by any number of input pins.
type label struct {
	name      string
	driver    pin
	driven    bool
	external  bool // chip input or constant: driven from outside the chip
	isOut     bool // chip output pin
	consumers []pin
	wire      string // wire name assigned by resolve
}

// wiring is the signal graph of a chip under construction.
type wiring struct {
	labels map[string]*label
	wn     int // wire name counter
}

func newWiring(inputs, outputs []string) *wiring {
	wr := &wiring{labels: make(map[string]*label, len(inputs)+len(outputs)+2)}
	wr.labels[True] = &label{name: True, external: true, wire: True}
	wr.labels[False] = &label{name: False, external: true, wire: False}
	for _, in := range inputs {
		wr.labels[in] = &label{name: in, external: true, wire: in}
	}
	for _, out := range outputs {
		wr.labels[out] = &label{name: out, isOut: true}
	}
	return wr
}

func (wr *wiring) get(name string) *label {
	l := wr.labels[name]
	if l == nil {
		l = &label{name: name}
		wr.labels[name] = l
	}
	return l
}

// connectIn wires a part input pin to the named signal.
func (wr *wiring) connectIn(name string, consumer pin) {
	l := wr.get(name)
	l.consumers = append(l.consumers, consumer)
}

// connectOut wires a part output pin as the driver of the named signal.
func (wr *wiring) connectOut(driver pin, name string) error {
	l := wr.get(name)
	switch {
	case l.name == True || l.name == False:
		return errors.Wrapf(ErrMultipleDrivers, "output pin connected to constant %s", l.name)
	case l.external:
		return errors.Wrapf(ErrMultipleDrivers, "chip input pin %s used as output", l.name)
	case l.driven:
		return errors.Wrapf(ErrMultipleDrivers, "signal %s already driven", l.name)
	}
	l.driver = driver
	l.driven = true
	return nil
}

func (wr *wiring) freshWire() string {
	w := "__" + strconv.Itoa(wr.wn)
	wr.wn++
	return w
}

// resolve checks that every consumed signal has a driver and assigns wire
// names: signals driven by the same output pin share one wire, chip
// inputs keep their pin name. It returns the map from part pins to wire
// names used when mounting.
func (wr *wiring) resolve() (map[pin]string, error) {
	names := make([]string, 0, len(wr.labels))
	for n := range wr.labels {
		names = append(names, n)
	}
	sort.Strings(names)

	byDriver := make(map[pin]string)
	wires := make(map[pin]string, len(wr.labels))
	for _, n := range names {
		l := wr.labels[n]
		if len(l.consumers) > 0 && !l.driven && !l.external && !l.isOut {
			return nil, errors.Wrapf(ErrUndrivenSignal, "signal %s not connected to any output", l.name)
		}
		if l.wire == "" {
			if l.driven {
				w, ok := byDriver[l.driver]
				if !ok {
					w = wr.freshWire()
					byDriver[l.driver] = w
				}
				l.wire = w
			} else {
				// undriven chip output or dangling signal: dead wire,
				// possibly driven by the containing chip's scope
				l.wire = wr.freshWire()
			}
		}
		if l.driven {
			wires[l.driver] = l.wire
		}
		for _, c := range l.consumers {
			wires[c] = l.wire
		}
		wires[pin{-1, l.name}] = l.wire
	}
	return wires, nil
}
