// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import "github.com/pkg/errors"

// A PartDecl is the declarative form of a part instantiation inside a
// composite chip definition: a chip id and a connection description.
// This is the in-memory contract an external chip description loader
// targets.
type PartDecl struct {
	Chip  string
	Conns string
}

// A Registry holds chip definitions keyed by id. Definitions are
// immutable and shared by every part created from them. A new registry
// knows the primitives Nand and DFF.
type Registry struct {
	m map[string]*PartSpec
}

// NewRegistry returns a registry pre-loaded with the primitive parts.
func NewRegistry() *Registry {
	return &Registry{m: map[string]*PartSpec{
		nandSpec.Name: nandSpec,
		dffSpec.Name:  dffSpec,
	}}
}

// Register adds a part spec under its name. Redefining a chip id is an
// error.
func (r *Registry) Register(spec *PartSpec) error {
	if _, ok := r.m[spec.Name]; ok {
		return errors.Errorf("chip %s already defined", spec.Name)
	}
	r.m[spec.Name] = spec
	return nil
}

// Lookup returns the definition registered under the given id.
func (r *Registry) Lookup(id string) (*PartSpec, bool) {
	sp, ok := r.m[id]
	return sp, ok
}

// Part instantiates the chip registered under the given id with the
// given connections.
func (r *Registry) Part(id, conns string) (Part, error) {
	sp, ok := r.m[id]
	if !ok {
		return Part{}, errors.Wrap(ErrUnknownChip, id)
	}
	asg, err := parseConnections(conns)
	if err != nil {
		return Part{}, errors.WithMessage(err, id)
	}
	cs, err := expandConns(sp, asg)
	if err != nil {
		return Part{}, errors.WithMessage(err, id)
	}
	return Part{sp, cs}, nil
}

// Chip builds a composite chip from declarative part references, resolved
// against the registry, and registers it under its name. Every referenced
// chip id must already be defined.
func (r *Registry) Chip(name, inputs, outputs string, parts []PartDecl) (NewPartFn, error) {
	ps := make([]Part, len(parts))
	for i, d := range parts {
		p, err := r.Part(d.Chip, d.Conns)
		if err != nil {
			return nil, errors.WithMessage(err, name)
		}
		ps[i] = p
	}
	fn, err := Chip(name, inputs, outputs, ps...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(fn("").PartSpec); err != nil {
		return nil, err
	}
	return fn, nil
}
