// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// Operator represents "apply Stencil, operating on Inner" (spec §3):
// expanding it at an address expands the stencil there and revolves the
// result through Inner via Operate. Inner may be nil, meaning the
// stencil operates directly on the raw nodal field.
type Operator struct {
	Stencil SchemeExpander
	Inner   Element
}

// NewOperator builds an Operator. inner may be nil.
func NewOperator(stencil SchemeExpander, inner Element) Operator {
	return Operator{Stencil: stencil, Inner: inner}
}

// Expand implements Element.
func (o Operator) Expand(address float64) (Value, error) {
	sc, err := o.Stencil.ExpandScheme(address)
	if err != nil {
		return Value{}, err
	}
	result, err := Operate(sc, o.Inner)
	if err != nil {
		return Value{}, err
	}
	return FromScheme(result), nil
}
