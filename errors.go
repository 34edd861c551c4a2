// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import "github.com/pkg/errors"

// Build-time and evaluation faults. Functions that can fail return one of
// these sentinels wrapped with context naming the offending pin, net or
// signal chain; use errors.Cause to discriminate.
var (
	// ErrUnknownChip is returned by a Registry when a part references a
	// chip id that resolves to no known definition.
	ErrUnknownChip = errors.New("unknown chip")

	// ErrPinNotFound is returned when a connection names a pin that does
	// not exist on the target part, or when a named pin is looked up on a
	// circuit that does not have it.
	ErrPinNotFound = errors.New("pin not found")

	// ErrWidthMismatch is returned when the two sides of a pin mapping
	// expand to different widths.
	ErrWidthMismatch = errors.New("width mismatch")

	// ErrMultipleDrivers is returned when more than one output drives a
	// signal, or when an output drives a constant or an input pin.
	ErrMultipleDrivers = errors.New("multiple drivers")

	// ErrUndrivenSignal is returned when a signal is consumed but has no
	// driving output and is not a constant.
	ErrUndrivenSignal = errors.New("undriven signal")

	// ErrCombinationalCycle is returned by NewCircuit when a signal path
	// loops back onto itself without passing through a clocked part.
	ErrCombinationalCycle = errors.New("combinational cycle")

	// ErrUnresolvedInput is returned by Eval while some of the circuit's
	// external input pins have never been assigned a value.
	ErrUnresolvedInput = errors.New("unresolved input")
)
