// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import "github.com/szajek/fractulus/scheme"

// Element is the sum type over { Stencil, Number, Operator, LazyOperation }
// (spec §3). Expand revolves it at a node address into a Value.
type Element interface {
	Expand(address float64) (Value, error)
}

// SchemeExpander is the narrower contract Operator requires of its outer
// stencil: expanding at an address always yields a Scheme, never a bare
// scalar. Stencil and DynamicStencil both satisfy it.
type SchemeExpander interface {
	ExpandScheme(address float64) (scheme.Scheme, error)
}

// Operate revolves a scheme by substituting every weighted address with
// the element's expansion there (spec §4.C). element may be nil, in
// which case the scheme passes through unchanged.
func Operate(sch scheme.Scheme, element Element) (scheme.Scheme, error) {
	if element == nil {
		return sch, nil
	}
	if sch.Len() == 0 {
		return scheme.Scheme{}, emptyOperandErr("operate: empty scheme can not operate on anything")
	}

	addends := make([]scheme.Scheme, 0, sch.Len())
	for _, addr := range sch.Addresses() {
		weight := sch.WeightAt(addr)
		val, err := element.Expand(addr)
		if err != nil {
			return scheme.Scheme{}, err
		}
		elemScheme := val.ToScheme(addr)
		if elemScheme.Len() == 0 {
			return scheme.Scheme{}, emptyOperandErr("operate: empty scheme can not be operated by scheme")
		}
		elemScheme = elemScheme.Mul(weight)
		elemScheme = elemScheme.WithOrder(elemScheme.Order() + sch.Order())
		addends = append(addends, elemScheme)
	}
	return scheme.Sum(addends)
}
