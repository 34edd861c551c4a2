// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips_test

import (
	"testing"

	"github.com/hacksim/hack/chips"
)

func Test_screen(t *testing.T) {
	c := newCircuit(t, chips.Screen)
	// one address in each 4K half
	for _, a := range []int64{0x0000, 0x0123, 0x0FFF, 0x1000, 0x1ABC, 0x1FFF} {
		setBus(t, c, "address", a)
		setBus(t, c, "in", a^0x5555)
		setPin(t, c, "load", true)
		tick(t, c)
	}
	setPin(t, c, "load", false)
	setBus(t, c, "in", 0)
	for _, a := range []int64{0x0000, 0x0123, 0x0FFF, 0x1000, 0x1ABC, 0x1FFF} {
		setBus(t, c, "address", a)
		eval(t, c)
		if got, want := getBus(t, c, "out"), a^0x5555; got != want {
			t.Errorf("screen[0x%04X] = 0x%04X, want 0x%04X", a, got, want)
		}
	}
}

func Test_memory_map(t *testing.T) {
	key := uint16(0)
	mem := chips.Memory(func() uint16 { return key })
	c := newCircuit(t, mem)

	write := func(addr, v int64) {
		setBus(t, c, "address", addr)
		setBus(t, c, "in", v)
		setPin(t, c, "load", true)
		tick(t, c)
		setPin(t, c, "load", false)
	}
	read := func(addr int64) int64 {
		setBus(t, c, "address", addr)
		setPin(t, c, "load", false)
		eval(t, c)
		return getBus(t, c, "out")
	}

	// RAM and screen are distinct address spaces
	write(0x0005, 1111)
	write(0x2005, 2222)
	write(0x4005, 3333)
	write(0x5005, 4444)
	if got := read(0x0005); got != 1111 {
		t.Errorf("mem[0x0005] = %d, want 1111", got)
	}
	if got := read(0x2005); got != 2222 {
		t.Errorf("mem[0x2005] = %d, want 2222", got)
	}
	if got := read(0x4005); got != 3333 {
		t.Errorf("mem[0x4005] = %d, want 3333", got)
	}
	if got := read(0x5005); got != 4444 {
		t.Errorf("mem[0x5005] = %d, want 4444", got)
	}

	// keyboard register
	key = 0x004B
	if got := read(0x6000); got != 0x004B {
		t.Errorf("mem[0x6000] = 0x%04X, want 0x004B", got)
	}
	// keyboard writes are discarded
	write(0x6000, 9999)
	if got := read(0x6000); got != 0x004B {
		t.Errorf("mem[0x6000] = 0x%04X after write, want 0x004B", got)
	}
	key = 0
	if got := read(0x6000); got != 0 {
		t.Errorf("mem[0x6000] = 0x%04X after release, want 0", got)
	}
	// the write did not leak into RAM or screen
	if got := read(0x2000); got != 0 {
		t.Errorf("mem[0x2000] = %d, want 0", got)
	}
}
