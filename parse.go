// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BusPinName returns the pin name for the n-th bit of the named bus.
func BusPinName(name string, bit int) string {
	return name + "[" + strconv.Itoa(bit) + "]"
}

// A pinExpr is one side of a pin mapping: a bare name, an indexed pin
// name[i], or a range name[lo..hi].
type pinExpr struct {
	name string
	lo   int // -1 for a bare name
	hi   int // -1 when not a range
}

func (x pinExpr) bare() bool { return x.lo < 0 }

func (x pinExpr) pins() []string {
	if x.lo < 0 {
		return []string{x.name}
	}
	hi := x.hi
	if hi < 0 {
		hi = x.lo
	}
	out := make([]string, 0, hi-x.lo+1)
	for i := x.lo; i <= hi; i++ {
		out = append(out, BusPinName(x.name, i))
	}
	return out
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// parsePinExpr parses "name", "name[i]" or "name[lo..hi]".
func parsePinExpr(s string) (pinExpr, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, '[')
	if i < 0 {
		if !validName(s) {
			return pinExpr{}, errors.Errorf("invalid pin name %q", s)
		}
		return pinExpr{name: s, lo: -1, hi: -1}, nil
	}
	name := s[:i]
	if !validName(name) {
		return pinExpr{}, errors.Errorf("invalid pin name %q", s)
	}
	if !strings.HasSuffix(s, "]") {
		return pinExpr{}, errors.Errorf("missing ] in %q", s)
	}
	idx := s[i+1 : len(s)-1]
	if j := strings.Index(idx, ".."); j >= 0 {
		lo, err := strconv.Atoi(strings.TrimSpace(idx[:j]))
		if err != nil || lo < 0 {
			return pinExpr{}, errors.Errorf("invalid bus range start in %q", s)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(idx[j+2:]))
		if err != nil {
			return pinExpr{}, errors.Errorf("invalid bus range end in %q", s)
		}
		if hi < lo {
			return pinExpr{}, errors.Errorf("reversed bus range in %q", s)
		}
		return pinExpr{name: name, lo: lo, hi: hi}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil || n < 0 {
		return pinExpr{}, errors.Errorf("invalid bus index in %q", s)
	}
	return pinExpr{name: name, lo: n, hi: -1}, nil
}

// ParseIOSpec parses a pin declaration like "a, b, in[16]" and returns the
// individual pin names, expanding bus declarations:
//
//	ParseIOSpec("in[2], sel") // []string{"in[0]", "in[1]", "sel"}
func ParseIOSpec(spec string) ([]string, error) {
	var out []string
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	for _, f := range strings.Split(spec, ",") {
		x, err := parsePinExpr(f)
		if err != nil {
			return nil, errors.WithMessage(err, "parse i/o spec")
		}
		switch {
		case x.bare():
			out = append(out, x.name)
		case x.hi >= 0:
			return nil, errors.Errorf("bus range %q not allowed in i/o spec", strings.TrimSpace(f))
		case x.lo == 0:
			return nil, errors.Errorf("zero size bus %q", strings.TrimSpace(f))
		default:
			// name[n] declares an n bit bus
			for i := 0; i < x.lo; i++ {
				out = append(out, BusPinName(x.name, i))
			}
		}
	}
	return out, nil
}

// IO expands a pin declaration like ParseIOSpec and panics on malformed
// input. For use in PartSpec literals.
func IO(spec string) []string {
	p, err := ParseIOSpec(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// An assignment is a raw "pin=net" mapping before expansion against a
// part's interface.
type assignment struct {
	lhs, rhs pinExpr
}

// parseConnections parses a connection description like
//
//	"a=x, in[0..7]=v[8..15], sel=true"
//
// Bus shorthands are not expanded here: expansion needs the part's
// declared pin widths (see expandConns).
func parseConnections(c string) ([]assignment, error) {
	var out []assignment
	if strings.TrimSpace(c) == "" {
		return nil, nil
	}
	for _, f := range strings.Split(c, ",") {
		i := strings.IndexByte(f, '=')
		if i < 0 {
			return nil, errors.Errorf("missing = in connection %q", strings.TrimSpace(f))
		}
		lhs, err := parsePinExpr(f[:i])
		if err != nil {
			return nil, err
		}
		rhs, err := parsePinExpr(f[i+1:])
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{lhs, rhs})
	}
	return out, nil
}

// A Connection maps a single part pin to a net name in the containing
// chip. A part output pin may appear in several Connections (fan-out).
type Connection struct {
	Pin string // expanded pin name on the part
	Net string // net name in the containing chip; "true" and "false" are constants
}

// busLen returns the width of bus name among the expanded pin names, or 0
// if no such bus is declared.
func busLen(pins []string, name string) int {
	n := 0
	p := name + "["
	for _, s := range pins {
		if strings.HasPrefix(s, p) {
			n++
		}
	}
	return n
}

// expandConns expands raw assignments against the part's declared pins.
// A bare bus name on the left side expands to the full declared bus, with
// the right side expanding to the same range; the constants true and
// false replicate instead. A single right-hand pin fans in to every pin
// of a multi-pin left side.
func expandConns(sp *PartSpec, asg []assignment) ([]Connection, error) {
	var out []Connection
	for _, a := range asg {
		lhs := a.lhs
		if lhs.bare() {
			if w := busLen(sp.Inputs, lhs.name) + busLen(sp.Outputs, lhs.name); w > 0 {
				lhs = pinExpr{name: lhs.name, lo: 0, hi: w - 1}
			}
		}
		pins := lhs.pins()
		rhs := a.rhs
		var nets []string
		switch {
		case rhs.bare() && (rhs.name == True || rhs.name == False):
			nets = make([]string, len(pins))
			for i := range nets {
				nets[i] = rhs.name
			}
		case rhs.bare() && len(pins) > 1:
			// full-bus shorthand: in=x ≡ in[0..n-1]=x[0..n-1]
			nets = make([]string, 0, len(pins))
			for i := lhs.lo; i <= lhs.hi; i++ {
				nets = append(nets, BusPinName(rhs.name, i))
			}
		case !rhs.bare() && rhs.hi < 0:
			// single indexed pin fans in to all of lhs
			nets = make([]string, len(pins))
			for i := range nets {
				nets[i] = rhs.pins()[0]
			}
		default:
			nets = rhs.pins()
		}
		if len(nets) != len(pins) {
			return nil, errors.Wrapf(ErrWidthMismatch, "pin mapping %s=%s: %d pins vs %d nets",
				a.lhs.name, a.rhs.name, len(pins), len(nets))
		}
		for i := range pins {
			out = append(out, Connection{Pin: pins[i], Net: nets[i]})
		}
	}
	return out, nil
}
