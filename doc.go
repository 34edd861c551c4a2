// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hack provides the tools to build and run a gate-level simulation
of the Hack computer architecture, using Go as a hardware description
language.

Chips are composed hierarchically from a universal Nand primitive and a
clocked DFF primitive; NewCircuit flattens a composition into a net list,
rejects invalid wiring and combinational cycles, and evaluates the result
deterministically: Eval settles all combinational logic in dependency
order, Tick latches every clocked element simultaneously.

The chips sub-package contains the Hack chip library, from the basic
gates up to the CPU and the Computer.
*/
package hack
