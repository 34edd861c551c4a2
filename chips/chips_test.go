// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chips_test

import (
	"strings"
	"testing"

	hw "github.com/hacksim/hack"
)

// newCircuit mounts a single part with every pin wired to a root net of
// the same name.
func newCircuit(t *testing.T, part hw.NewPartFn) *hw.Circuit {
	t.Helper()
	p := part("")
	var b strings.Builder
	for _, n := range append(append([]string{}, p.Inputs...), p.Outputs...) {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(n)
	}
	c, err := hw.NewCircuit(part(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func setBus(t *testing.T, c *hw.Circuit, name string, v int64) {
	t.Helper()
	if err := c.SetBus(name, v); err != nil {
		t.Fatal(err)
	}
}

func setPin(t *testing.T, c *hw.Circuit, name string, v bool) {
	t.Helper()
	if err := c.SetPin(name, v); err != nil {
		t.Fatal(err)
	}
}

func getBus(t *testing.T, c *hw.Circuit, name string) int64 {
	t.Helper()
	v, err := c.Bus(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func getPin(t *testing.T, c *hw.Circuit, name string) bool {
	t.Helper()
	v, err := c.Pin(name)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func eval(t *testing.T, c *hw.Circuit) {
	t.Helper()
	if err := c.Eval(); err != nil {
		t.Fatal(err)
	}
}

func tick(t *testing.T, c *hw.Circuit) {
	t.Helper()
	if err := c.Tick(); err != nil {
		t.Fatal(err)
	}
}
