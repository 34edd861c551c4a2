// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips_test

import (
	"testing"

	"github.com/hacksim/hack/chips"
)

func Test_bit(t *testing.T) {
	c := newCircuit(t, chips.Bit)
	setPin(t, c, "in", true)
	setPin(t, c, "load", false)
	tick(t, c)
	if getPin(t, c, "out") {
		t.Error("stored bit changed with load unset")
	}
	setPin(t, c, "load", true)
	tick(t, c)
	if !getPin(t, c, "out") {
		t.Error("stored bit not loaded")
	}
	setPin(t, c, "in", false)
	setPin(t, c, "load", false)
	tick(t, c)
	if !getPin(t, c, "out") {
		t.Error("stored bit lost with load unset")
	}
	setPin(t, c, "load", true)
	tick(t, c)
	if getPin(t, c, "out") {
		t.Error("stored bit not overwritten")
	}
}

func Test_register(t *testing.T) {
	c := newCircuit(t, chips.Register)
	setBus(t, c, "in", 0x55AA)
	setPin(t, c, "load", true)
	tick(t, c)
	if got := getBus(t, c, "out"); got != 0x55AA {
		t.Errorf("out = 0x%04X, want 0x55AA", got)
	}
	setBus(t, c, "in", 0x1234)
	setPin(t, c, "load", false)
	tick(t, c)
	if got := getBus(t, c, "out"); got != 0x55AA {
		t.Errorf("out = 0x%04X, want 0x55AA (load unset)", got)
	}
	setPin(t, c, "load", true)
	tick(t, c)
	if got := getBus(t, c, "out"); got != 0x1234 {
		t.Errorf("out = 0x%04X, want 0x1234", got)
	}
}

// reset wins over load, load wins over inc
func Test_pc(t *testing.T) {
	c := newCircuit(t, chips.PC)
	set := func(in int64, load, inc, reset bool) {
		setBus(t, c, "in", in)
		setPin(t, c, "load", load)
		setPin(t, c, "inc", inc)
		setPin(t, c, "reset", reset)
		tick(t, c)
	}
	check := func(want int64) {
		t.Helper()
		if got := getBus(t, c, "out"); got != want {
			t.Errorf("out = %d, want %d", got, want)
		}
	}

	set(0, false, false, false)
	check(0)
	set(0, false, true, false)
	check(1)
	set(0, false, true, false)
	check(2)
	set(100, true, true, false)
	check(100) // load beats inc
	set(0, false, true, false)
	check(101)
	set(200, true, true, true)
	check(0) // reset beats everything
	set(0, false, false, false)
	check(0)

	// exhaustive priority check against a software counter
	var ref int64
	for i := 0; i < 32; i++ {
		in := int64(i * 1000 % 30000)
		load, inc, reset := i&1 != 0, i&2 != 0, i&4 != 0
		set(in, load, inc, reset)
		switch {
		case reset:
			ref = 0
		case load:
			ref = in
		case inc:
			ref++
		}
		check(ref)
	}
}
