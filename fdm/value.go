// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdm implements the lazy element expression tree (spec §3/§4.B)
// and its expansion engine (spec §4.C): Stencil, Number, Operator and
// LazyOperation combine into an Element, which expand(address) revolves
// into a Scheme.
package fdm

import "github.com/szajek/fractulus/scheme"

// Value is what Element.Expand returns at a node address: either a bare
// scalar (a Number not yet anchored to an address) or a Scheme. It is a
// tagged sum, not an interface{}, so the arithmetic dispatch in lazy.go
// can pattern-match on the two cases explicitly (spec §9).
type Value struct {
	isScalar bool
	scalar   float64
	sch      scheme.Scheme
}

// Scalar wraps a bare number.
func Scalar(v float64) Value { return Value{isScalar: true, scalar: v} }

// FromScheme wraps an already-anchored Scheme.
func FromScheme(s scheme.Scheme) Value { return Value{sch: s} }

// IsScalar reports whether this Value is a bare number rather than a Scheme.
func (v Value) IsScalar() bool { return v.isScalar }

// AsScalar returns the wrapped number; valid only when IsScalar is true.
func (v Value) AsScalar() float64 { return v.scalar }

// AsScheme returns the wrapped Scheme; valid only when IsScalar is false.
func (v Value) AsScheme() scheme.Scheme { return v.sch }

// ToScheme anchors a scalar Value at address (order 0), or returns the
// Scheme unchanged. This is operate's to_scheme helper (spec §4.C).
func (v Value) ToScheme(address float64) scheme.Scheme {
	if v.isScalar {
		return scheme.FromNumber(address, v.scalar)
	}
	return v.sch
}
