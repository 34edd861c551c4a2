// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/hacksim/hack"
)

// connString maps every input pin to a shared net of the same name and
// every output pin to a net with the given prefix.
func connString(in, out []string, outPrefix string) string {
	var b strings.Builder
	for _, n := range in {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(n)
	}
	for _, n := range out {
		if b.Len() > 0 {
			b.WriteRune(',')
		}
		b.WriteString(n)
		b.WriteRune('=')
		b.WriteString(outPrefix)
		b.WriteString(n)
	}
	return b.String()
}

func randBool(rn *rand.Rand) bool {
	return rn.Int63()&(1<<62) != 0
}

// ComparePart takes two parts and compares their outputs given the same
// inputs. Both parts must have the same input and output interface.
// The inputs are driven through one clock tick per vector, so clocked
// parts are compared on their post-tick state.
func ComparePart(t *testing.T, part1, part2 hack.NewPartFn) {
	t.Helper()

	rn := rand.New(rand.NewSource(time.Now().UnixNano()))

	p1, p2 := part1(""), part2("")
	if len(p1.Inputs) != len(p2.Inputs) {
		t.Fatalf("input interfaces differ: %v vs %v", p1.Inputs, p2.Inputs)
	}
	if len(p1.Outputs) != len(p2.Outputs) {
		t.Fatalf("output interfaces differ: %v vs %v", p1.Outputs, p2.Outputs)
	}
	for i := range p1.Inputs {
		if p1.Inputs[i] != p2.Inputs[i] {
			t.Fatalf("input interfaces differ: %q vs %q", p1.Inputs[i], p2.Inputs[i])
		}
	}
	for i := range p1.Outputs {
		if p1.Outputs[i] != p2.Outputs[i] {
			t.Fatalf("output interfaces differ: %q vs %q", p1.Outputs[i], p2.Outputs[i])
		}
	}

	c, err := hack.NewCircuit(
		part1(connString(p1.Inputs, p1.Outputs, "cmpA_")),
		part2(connString(p2.Inputs, p2.Outputs, "cmpB_")))
	if err != nil {
		t.Fatal(err)
	}

	vector := make([]bool, len(p1.Inputs))
	apply := func() {
		for i, n := range p1.Inputs {
			if err := c.SetPin(n, vector[i]); err != nil {
				t.Fatal(err)
			}
		}
		if err := c.Tick(); err != nil {
			t.Fatal(err)
		}
		for _, o := range p1.Outputs {
			a, err := c.Pin("cmpA_" + o)
			if err != nil {
				t.Fatal(err)
			}
			b, err := c.Pin("cmpB_" + o)
			if err != nil {
				t.Fatal(err)
			}
			if a != b {
				var in strings.Builder
				for i, n := range p1.Inputs {
					if in.Len() > 0 {
						in.WriteString(", ")
					}
					in.WriteString(n)
					if vector[i] {
						in.WriteString("=1")
					} else {
						in.WriteString("=0")
					}
				}
				t.Fatalf("%s vs %s: %s\n%s: %v != %v", p1.Name, p2.Name, in.String(), o, a, b)
			}
		}
	}

	// all zeros, all ones, then random vectors
	apply()
	for i := range vector {
		vector[i] = true
	}
	apply()

	iter := len(p1.Inputs)
	if iter > 12 {
		iter = 12
	}
	for n := 1 << uint(iter); n > 0; n-- {
		for i := range vector {
			vector[i] = randBool(rn)
		}
		apply()
	}
}
