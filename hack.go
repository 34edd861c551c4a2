// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"sort"

	"github.com/pkg/errors"
)

// A Component is an element of a flattened circuit. Update computes the
// component's outputs from the current net states during the settle
// phase. Clocked components additionally provide Latch, called once per
// tick after settling; Latch may read nets but must never write them, so
// that all clocked elements latch simultaneously.
type Component struct {
	// Instance name, used in diagnostics.
	Name string
	// Nets read by Update. These form the combinational dependency edges
	// used to order the settle phase and to detect cycles.
	In []int
	// Nets read only by Latch. A feedback path through a Latched net is
	// not a combinational cycle.
	Latched []int
	// Nets driven by Update.
	Out []int

	Update func(c *Circuit)
	Latch  func(c *Circuit)
}

// A MountFn mounts a part into socket s. MountFn's should query the
// socket for assigned net numbers and return components closed over
// these numbers.
//
// For example, a Not gate can be defined like this:
//
//	notSpec := &hack.PartSpec{
//		Name:    "Not",
//		Inputs:  hack.IO("in"),
//		Outputs: hack.IO("out"),
//		Mount: func(s *hack.Socket) []hack.Component {
//			in, out := s.Pin("in"), s.Pin("out")
//			return []hack.Component{{
//				Name:   "Not",
//				In:     []int{in},
//				Out:    []int{out},
//				Update: func(c *hack.Circuit) { c.Set(out, !c.Get(in)) },
//			}}
//		}}
type MountFn func(s *Socket) []Component

// A PartSpec is a part's blueprint: its name, its input and output pins
// and a mount function. Specs are immutable once built and shared by
// every part created from them.
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. Distinct, expanded names; use IO() to expand an
	// input description like "a, b, bus[2]" to
	// []string{"a", "b", "bus[0]", "bus[1]"}.
	Inputs []string
	// Output pin names. Same conventions as Inputs.
	Outputs []string
	// Pinout maps the part's pin names (public interface) to internal
	// net names. If nil, pins map one to one. Most custom parts should
	// leave it nil; Chip() fills it for composites.
	Pinout map[string]string

	// Mount function (see MountFn).
	Mount MountFn
}

func (p *PartSpec) pinout() map[string]string {
	if p.Pinout == nil {
		p.Pinout = make(map[string]string, len(p.Inputs)+len(p.Outputs))
		for _, i := range p.Inputs {
			p.Pinout[i] = i
		}
		for _, o := range p.Outputs {
			p.Pinout[o] = o
		}
	}
	return p.Pinout
}

func (p *PartSpec) isInput(pin string) bool {
	for _, i := range p.Inputs {
		if i == pin {
			return true
		}
	}
	return false
}

func (p *PartSpec) isOutput(pin string) bool {
	for _, o := range p.Outputs {
		if o == pin {
			return true
		}
	}
	return false
}

// NewPart wraps p with the given connections into a Part. It panics on a
// malformed connection description; wiring errors against other parts are
// reported by Chip or NewCircuit.
func (p *PartSpec) NewPart(connections string) Part {
	p.pinout()
	asg, err := parseConnections(connections)
	if err != nil {
		panic(err)
	}
	conns, err := expandConns(p, asg)
	if err != nil {
		panic(err)
	}
	return Part{p, conns}
}

// A NewPartFn is a function that takes a connection description and
// returns a new Part. See parseConnections for the description syntax.
type NewPartFn func(c string) Part

// A Part wraps a part specification together with its connections within
// a host chip.
type Part struct {
	*PartSpec
	Conns []Connection
}

// A Bus is a list of net numbers accessed as a single two's complement
// value, least significant bit first.
type Bus []int

// GetInt64 returns the bus value, zero-extended. Interpreting a bus as a
// two's complement quantity is up to the caller (e.g. int16(v) for a 16
// bit bus).
func (b Bus) GetInt64(c *Circuit) int64 {
	var v int64
	for i, n := range b {
		if c.Get(n) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// SetInt64 sets the bus nets from the low bits of v.
func (b Bus) SetInt64(c *Circuit, v int64) {
	for i, n := range b {
		c.Set(n, v&(1<<uint(i)) != 0)
	}
}

// Circuit is a runnable circuit simulation: a flattened net list with its
// components sorted in combinational dependency order.
type Circuit struct {
	nets  []bool
	names []string // net number to qualified name, for diagnostics

	comps   []Component // settle order
	clocked []int       // indices into comps of Latch-bearing components

	root     *Socket
	inputs   map[int]string // external input nets (no driver) by name
	pending  map[int]string // inputs not yet assigned
	unsolved []string       // cached ErrUnresolvedInput pin list
	ticks    uint64
}

// NewCircuit flattens the given parts into a netlist and validates it.
// Free root-scope nets that no part drives become the circuit's external
// input pins, to be assigned with SetPin or SetBus; named root nets are
// readable with Pin and Bus.
//
// Construction fails if a net is driven more than once, if a consumed
// internal signal has no driver, or if the combinational sub-graph has a
// cycle; the error names the offending pins or the offending signal
// chain.
func NewCircuit(parts ...Part) (*Circuit, error) {
	if len(parts) == 0 {
		return nil, errors.New("empty part list")
	}
	cc := &Circuit{}
	cc.names = append(cc.names, False, True)
	cc.nets = nil // sized once the net count is known
	cc.root = newSocket(cc)

	comps, err := mountParts(cc.root, parts)
	if err != nil {
		return nil, err
	}
	cc.nets = make([]bool, len(cc.names))
	cc.nets[cstTrue] = true

	if err := cc.link(comps); err != nil {
		return nil, err
	}
	return cc, nil
}

// allocPin allocates a net and returns its number.
func (c *Circuit) allocPin(name string) int {
	n := len(c.names)
	c.names = append(c.names, name)
	return n
}

// link validates drivers, discovers external inputs and computes the
// settle order.
func (c *Circuit) link(comps []Component) error {
	driver := make([]int, len(c.names))
	for i := range driver {
		driver[i] = -1
	}
	for ci := range comps {
		for _, n := range comps[ci].Out {
			if n < cstCount {
				return errors.Wrapf(ErrMultipleDrivers, "%s: output drives constant %s",
					comps[ci].Name, c.names[n])
			}
			if driver[n] >= 0 {
				return errors.Wrapf(ErrMultipleDrivers, "net %s driven by both %s and %s",
					c.names[n], comps[driver[n]].Name, comps[ci].Name)
			}
			driver[n] = ci
		}
	}

	c.inputs = make(map[int]string)
	c.pending = make(map[int]string)
	rootNets := make(map[int]string, len(c.root.m))
	for name, n := range c.root.m {
		rootNets[n] = name
	}
	seen := make([]bool, len(c.names))
	consume := func(ci int, nets []int) error {
		for _, n := range nets {
			if n < cstCount || driver[n] >= 0 || seen[n] {
				continue
			}
			seen[n] = true
			if name, ok := rootNets[n]; ok {
				c.inputs[n] = name
				c.pending[n] = name
				continue
			}
			return errors.Wrapf(ErrUndrivenSignal, "%s: net %s has no driver",
				comps[ci].Name, c.names[n])
		}
		return nil
	}
	for ci := range comps {
		if err := consume(ci, comps[ci].In); err != nil {
			return err
		}
		if err := consume(ci, comps[ci].Latched); err != nil {
			return err
		}
	}

	order, err := sortComponents(c, comps, driver)
	if err != nil {
		return err
	}
	c.comps = order
	for i := range c.comps {
		if c.comps[i].Latch != nil {
			c.clocked = append(c.clocked, i)
		}
	}
	return nil
}

// sortComponents orders components so that every combinational input is
// computed before it is read. Only Update dependencies create edges:
// Latched inputs are read after settling and cannot cause a cycle.
func sortComponents(c *Circuit, comps []Component, driver []int) ([]Component, error) {
	succ := make([][]int, len(comps))
	indeg := make([]int, len(comps))
	for ci := range comps {
		for _, n := range comps[ci].In {
			if d := driver[n]; d >= 0 {
				succ[d] = append(succ[d], ci)
				indeg[ci]++
			}
		}
	}
	order := make([]Component, 0, len(comps))
	queue := make([]int, 0, len(comps))
	for ci := range comps {
		if indeg[ci] == 0 {
			queue = append(queue, ci)
		}
	}
	for len(queue) > 0 {
		ci := queue[0]
		queue = queue[1:]
		order = append(order, comps[ci])
		for _, s := range succ[ci] {
			if indeg[s]--; indeg[s] == 0 {
				queue = append(queue, s)
			}
		}
	}
	if len(order) < len(comps) {
		return nil, errors.Wrap(ErrCombinationalCycle, cycleChain(c, comps, driver, indeg))
	}
	return order, nil
}

// cycleChain walks driver edges among unsorted components and renders one
// offending signal chain.
func cycleChain(c *Circuit, comps []Component, driver []int, indeg []int) string {
	// find a component still on a cycle and walk backwards until a
	// repeat; predecessors are explored in net order for determinism.
	start := -1
	for ci := range comps {
		if indeg[ci] > 0 {
			start = ci
			break
		}
	}
	pred := func(ci int) (int, int) {
		ins := append([]int(nil), comps[ci].In...)
		sort.Ints(ins)
		for _, n := range ins {
			if d := driver[n]; d >= 0 && indeg[d] > 0 {
				return d, n
			}
		}
		return -1, -1
	}
	type hop struct{ comp, net int }
	var path []hop
	at := start
	seen := make(map[int]int)
	for {
		if i, ok := seen[at]; ok {
			path = path[i:]
			break
		}
		seen[at] = len(path)
		d, n := pred(at)
		if d < 0 {
			break
		}
		path = append(path, hop{at, n})
		at = d
	}
	s := ""
	for i := len(path) - 1; i >= 0; i-- {
		s += comps[path[i].comp].Name + " <- " + c.names[path[i].net]
		if i > 0 {
			s += " <- "
		}
	}
	return s
}

// Get returns the state of net n. The value of n should be obtained in a
// MountFn by a call to one of the Socket methods.
func (c *Circuit) Get(n int) bool {
	return c.nets[n]
}

// Set sets the state of net n. For use by Component Update functions;
// external inputs are assigned with SetPin or SetBus.
func (c *Circuit) Set(n int, s bool) {
	c.nets[n] = s
}

// SetPin assigns the named external input pin.
func (c *Circuit) SetPin(name string, v bool) error {
	n, ok := c.root.m[name]
	if !ok {
		return errors.Wrap(ErrPinNotFound, name)
	}
	if _, ok := c.inputs[n]; !ok {
		return errors.Wrapf(ErrMultipleDrivers, "pin %s is driven and cannot be set", name)
	}
	delete(c.pending, n)
	c.unsolved = nil
	c.nets[n] = v
	return nil
}

// SetBus assigns the named external input bus from the low bits of v.
func (c *Circuit) SetBus(name string, v int64) error {
	b, err := c.bus(name)
	if err != nil {
		return err
	}
	for i, n := range b {
		if _, ok := c.inputs[n]; !ok {
			return errors.Wrapf(ErrMultipleDrivers, "pin %s is driven and cannot be set",
				BusPinName(name, i))
		}
		delete(c.pending, n)
	}
	c.unsolved = nil
	b.SetInt64(c, v)
	return nil
}

// Pin returns the state of the named root-scope net.
func (c *Circuit) Pin(name string) (bool, error) {
	n, ok := c.root.m[name]
	if !ok {
		return false, errors.Wrap(ErrPinNotFound, name)
	}
	return c.nets[n], nil
}

// Bus returns the value of the named root-scope bus, zero-extended.
func (c *Circuit) Bus(name string) (int64, error) {
	b, err := c.bus(name)
	if err != nil {
		return 0, err
	}
	return b.GetInt64(c), nil
}

func (c *Circuit) bus(name string) (Bus, error) {
	var b Bus
	for i := 0; ; i++ {
		n, ok := c.root.m[BusPinName(name, i)]
		if !ok {
			break
		}
		b = append(b, n)
	}
	if len(b) == 0 {
		return nil, errors.Wrapf(ErrPinNotFound, "bus %s", name)
	}
	return b, nil
}

// Eval settles the circuit: every combinational component fires once, in
// dependency order, making all outputs pure functions of the external
// inputs and the latched state. Eval fails with ErrUnresolvedInput until
// every external input pin has been assigned at least once. Re-evaluating
// without a Tick is idempotent.
func (c *Circuit) Eval() error {
	if len(c.pending) > 0 {
		if c.unsolved == nil {
			for _, name := range c.pending {
				c.unsolved = append(c.unsolved, name)
			}
			sort.Strings(c.unsolved)
		}
		return errors.Wrapf(ErrUnresolvedInput, "input pins never assigned: %v", c.unsolved)
	}
	for i := range c.comps {
		c.comps[i].Update(c)
	}
	return nil
}

// Tick runs one clock cycle: settle, then latch every clocked component
// simultaneously, then settle again so that outputs reflect the new
// state. Latch functions read settled nets and write only internal state,
// so no clocked element observes another's updated output within the same
// tick.
func (c *Circuit) Tick() error {
	if err := c.Eval(); err != nil {
		return err
	}
	for _, i := range c.clocked {
		c.comps[i].Latch(c)
	}
	c.ticks++
	for i := range c.comps {
		c.comps[i].Update(c)
	}
	return nil
}

// Ticks returns the number of completed clock cycles.
func (c *Circuit) Ticks() uint64 {
	return c.ticks
}

// Size returns the component count in the circuit.
func (c *Circuit) Size() int { return len(c.comps) }
