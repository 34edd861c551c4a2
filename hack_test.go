// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack_test

import (
	"testing"

	hw "github.com/hacksim/hack"
	"github.com/pkg/errors"
)

// testGate exercises a 1 or 2 input gate over its full truth table.
func testGate(t *testing.T, gate hw.NewPartFn, result [][]bool) {
	t.Helper()
	p := gate("")
	conns := ""
	for _, n := range append(append([]string{}, p.Inputs...), p.Outputs...) {
		if conns != "" {
			conns += ", "
		}
		conns += n + "=" + n
	}
	c, err := hw.NewCircuit(gate(conns))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1<<uint(len(p.Inputs)); i++ {
		for bit, in := range p.Inputs {
			if err := c.SetPin(in, i&(1<<uint(bit)) != 0); err != nil {
				t.Fatal(err)
			}
		}
		if err := c.Eval(); err != nil {
			t.Fatal(err)
		}
		for o, out := range p.Outputs {
			v, err := c.Pin(out)
			if err != nil {
				t.Fatal(err)
			}
			if v != result[o][i] {
				t.Errorf("%s: input %d: got %s=%v, want %v", p.Name, i, out, v, result[o][i])
			}
		}
	}
}

func Test_gate_custom(t *testing.T) {
	and := hw.MustChip("AND", "a, b", "out",
		hw.Nand("a=a, b=b, out=nandAB"),
		hw.Nand("a=nandAB, b=nandAB, out=out"))
	or := hw.MustChip("OR", "a, b", "out",
		hw.Nand("a=a, b=a, out=notA"),
		hw.Nand("a=b, b=b, out=notB"),
		hw.Nand("a=notA, b=notB, out=out"))
	nor := hw.MustChip("NOR", "a, b", "out",
		or("a=a, b=b, out=orAB"),
		hw.Nand("a=orAB, b=orAB, out=out"))
	xor := hw.MustChip("XOR", "a, b", "out",
		hw.Nand("a=a, b=b, out=nandAB"),
		hw.Nand("a=a, b=nandAB, out=w0"),
		hw.Nand("a=b, b=nandAB, out=w1"),
		hw.Nand("a=w0, b=w1, out=out"))
	xnor := hw.MustChip("XNOR", "a, b", "out",
		or("a=a, b=b, out=or"),
		hw.Nand("a=a, b=b, out=nand"),
		hw.Nand("a=or, b=nand, out=out"))
	not := hw.MustChip("NOT", "a", "out",
		hw.Nand("a=a, b=a, out=out"))
	dmux := hw.MustChip("DMUX", "in, sel", "a, b",
		not("a=sel, out=notSel"),
		and("a=in, b=notSel, out=a"),
		and("a=in, b=sel, out=b"))

	td := []struct {
		name   string
		gate   hw.NewPartFn
		result [][]bool
	}{
		{"AND", and, [][]bool{{false, false, false, true}}},
		{"OR", or, [][]bool{{false, true, true, true}}},
		{"NOR", nor, [][]bool{{true, false, false, false}}},
		{"XOR", xor, [][]bool{{false, true, true, false}}},
		{"XNOR", xnor, [][]bool{{true, false, false, true}}},
		{"NOT", not, [][]bool{{true, false}}},
		{"DMUX", dmux, [][]bool{{false, true, false, false}, {false, false, false, true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.gate, d.result)
		})
	}
}

func Test_dff(t *testing.T) {
	c, err := hw.NewCircuit(hw.DFF("in=in, out=out"))
	if err != nil {
		t.Fatal(err)
	}
	check := func(want bool) {
		t.Helper()
		v, err := c.Pin("out")
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("out = %v, want %v", v, want)
		}
	}
	if err := c.SetPin("in", true); err != nil {
		t.Fatal(err)
	}
	// the stored bit does not follow the input until the clock ticks
	if err := c.Eval(); err != nil {
		t.Fatal(err)
	}
	check(false)
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	check(true)
	if err := c.SetPin("in", false); err != nil {
		t.Fatal(err)
	}
	if err := c.Eval(); err != nil {
		t.Fatal(err)
	}
	check(true)
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
	check(false)
}

// Two chained DFFs latch simultaneously: a bit takes one full tick per
// stage, whatever the mounting order.
func Test_dff_chain(t *testing.T) {
	c, err := hw.NewCircuit(
		hw.DFF("in=s0, out=out"),
		hw.DFF("in=in, out=s0"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPin("in", true); err != nil {
		t.Fatal(err)
	}
	want := []bool{false, true, true}
	for i, w := range want {
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
		v, err := c.Pin("out")
		if err != nil {
			t.Fatal(err)
		}
		if v != w {
			t.Errorf("tick %d: out = %v, want %v", i+1, v, w)
		}
	}
	if n := c.Ticks(); n != 3 {
		t.Errorf("Ticks() = %d, want 3", n)
	}
}

func Test_eval_idempotent(t *testing.T) {
	c, err := hw.NewCircuit(hw.Nand("a=a, b=b, out=out"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPin("a", true); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPin("b", true); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := c.Eval(); err != nil {
			t.Fatal(err)
		}
		v, err := c.Pin("out")
		if err != nil {
			t.Fatal(err)
		}
		if v {
			t.Errorf("eval %d: out = true, want false", i)
		}
	}
}

func Test_unresolved_input(t *testing.T) {
	c, err := hw.NewCircuit(hw.Nand("a=a, b=b, out=out"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Eval(); errors.Cause(err) != hw.ErrUnresolvedInput {
		t.Fatalf("Eval() = %v, want ErrUnresolvedInput", err)
	}
	if err := c.SetPin("a", false); err != nil {
		t.Fatal(err)
	}
	if err := c.Eval(); errors.Cause(err) != hw.ErrUnresolvedInput {
		t.Fatalf("Eval() = %v, want ErrUnresolvedInput", err)
	}
	if err := c.SetPin("b", false); err != nil {
		t.Fatal(err)
	}
	if err := c.Eval(); err != nil {
		t.Fatal(err)
	}
	v, err := c.Pin("out")
	if err != nil {
		t.Fatal(err)
	}
	if !v {
		t.Error("out = false, want true")
	}
}

// A Nor with its output fed back to an input is a combinational loop;
// building the circuit must fail.
func Test_combinational_cycle(t *testing.T) {
	nor := hw.MustChip("NOR", "a, b", "out",
		hw.Nand("a=a, b=a, out=notA"),
		hw.Nand("a=b, b=b, out=notB"),
		hw.Nand("a=notA, b=notB, out=orAB"),
		hw.Nand("a=orAB, b=orAB, out=out"))
	_, err := hw.NewCircuit(nor("a=disable, b=tick, out=tick"))
	if errors.Cause(err) != hw.ErrCombinationalCycle {
		t.Fatalf("NewCircuit() = %v, want ErrCombinationalCycle", err)
	}
}

func Test_input_output(t *testing.T) {
	var in int64
	var out int64
	c, err := hw.NewCircuit(
		hw.InputN(4, func() int64 { return in })("out=v"),
		hw.NandN(4)("a=v, b=v, out=nv"),
		hw.OutputN(4, func(v int64) { out = v })("in=nv"))
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []int64{0, 5, 15} {
		in = v
		if err := c.Eval(); err != nil {
			t.Fatal(err)
		}
		if want := ^v & 15; out != want {
			t.Errorf("in = %d: out = %d, want %d", v, out, want)
		}
	}
}

func Test_bus_access(t *testing.T) {
	c, err := hw.NewCircuit(hw.NandN(4)("a=x, b=y, out=out"))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetBus("x", 0b1100); err != nil {
		t.Fatal(err)
	}
	if err := c.SetBus("y", 0b1010); err != nil {
		t.Fatal(err)
	}
	if err := c.Eval(); err != nil {
		t.Fatal(err)
	}
	v, err := c.Bus("out")
	if err != nil {
		t.Fatal(err)
	}
	if v != 0b0111 {
		t.Errorf("out = %04b, want 0111", v)
	}
	// output nets cannot be forced from the outside
	if err := c.SetBus("out", 0); errors.Cause(err) != hw.ErrMultipleDrivers {
		t.Fatalf("SetBus(out) = %v, want ErrMultipleDrivers", err)
	}
	if _, err := c.Bus("nosuch"); errors.Cause(err) != hw.ErrPinNotFound {
		t.Fatalf("Bus(nosuch) = %v, want ErrPinNotFound", err)
	}
}
