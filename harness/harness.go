// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package harness runs test scripts against a circuit. A script is a
// sequence of steps, each assigning input pins, running clock ticks and
// checking output values:
//
//	name = "program counter"
//
//	[[steps]]
//	set = { in = 17, load = 1 }
//	ticks = 1
//	expect = { out = 17 }
//
//	[[steps]]
//	set = { load = 0, inc = 1 }
//	ticks = 2
//	expect = { out = 19 }
//
// Pin names refer to the circuit's root scope: a name with indexed nets
// (name[0], name[1], ...) is treated as a bus, anything else as a single
// pin with 0 meaning false. Expected bus values are compared modulo the
// bus width, so both -1 and 0xFFFF match an all-ones 16-bit bus.
package harness

import (
	"io"
	"os"
	"sort"

	"github.com/hacksim/hack"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// A Step assigns inputs, advances the clock and checks outputs, in that
// order. A step with zero ticks still settles the circuit before
// checking.
type Step struct {
	Set    map[string]int64 `toml:"set"`
	Ticks  int              `toml:"ticks"`
	Expect map[string]int64 `toml:"expect"`
}

// A Script is a named sequence of steps.
type Script struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"steps"`
}

// Load reads a script in TOML format.
func Load(r io.Reader) (*Script, error) {
	var s Script
	if err := toml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "load script")
	}
	return &s, nil
}

// LoadFile reads the script file at the given path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load script")
	}
	defer f.Close()
	return Load(f)
}

// busWidth returns the indexed net count of the named bus in the
// circuit's root scope, 0 for a plain pin.
func busWidth(c *hack.Circuit, name string) int {
	w := 0
	for {
		if _, err := c.Pin(hack.BusPinName(name, w)); err != nil {
			return w
		}
		w++
	}
}

func set(c *hack.Circuit, name string, v int64) error {
	if busWidth(c, name) > 0 {
		return c.SetBus(name, v)
	}
	return c.SetPin(name, v != 0)
}

func check(c *hack.Circuit, name string, want int64) error {
	if w := busWidth(c, name); w > 0 {
		got, err := c.Bus(name)
		if err != nil {
			return err
		}
		mask := int64(1)<<uint(w) - 1
		if got != want&mask {
			return errors.Errorf("%s = %d, want %d", name, got, want&mask)
		}
		return nil
	}
	got, err := c.Pin(name)
	if err != nil {
		return err
	}
	if got != (want != 0) {
		return errors.Errorf("%s = %v, want %v", name, got, want != 0)
	}
	return nil
}

// sortedNames returns the map keys in a stable order so that assignment
// and check errors are deterministic.
func sortedNames(m map[string]int64) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run executes the script against the circuit. It stops at the first
// failing step; the error names the script, the step number and the
// offending pin.
func (s *Script) Run(c *hack.Circuit) error {
	for i, step := range s.Steps {
		if err := s.runStep(c, &step); err != nil {
			return errors.WithMessagef(err, "script %s: step %d", s.Name, i+1)
		}
	}
	return nil
}

func (s *Script) runStep(c *hack.Circuit, step *Step) error {
	for _, n := range sortedNames(step.Set) {
		if err := set(c, n, step.Set[n]); err != nil {
			return err
		}
	}
	for t := 0; t < step.Ticks; t++ {
		if err := c.Tick(); err != nil {
			return err
		}
	}
	if step.Ticks == 0 {
		if err := c.Eval(); err != nil {
			return err
		}
	}
	for _, n := range sortedNames(step.Expect) {
		if err := check(c, n, step.Expect[n]); err != nil {
			return err
		}
	}
	return nil
}
