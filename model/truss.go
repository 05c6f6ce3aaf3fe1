// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"github.com/szajek/fractulus/fdm"
	"github.com/szajek/fractulus/scheme"
)

// SectionFunc evaluates a cross-section (or other non-uniform physical
// coefficient) at a node address.
type SectionFunc func(address float64) float64

// LoadFunc evaluates a distributed load at a node address.
type LoadFunc func(address float64) float64

// NewTrussEquationTemplate builds the rod/truss static-equilibrium
// template (A·E·u')' = f, f being the distributed load, composed the way the source's integration
// tests build it (supplemented feature, not in the distilled spec):
//
//	Operator(Stencil.central(1), Number(A)*Number(E)*inner)
//
// where inner is either a classical central-difference operator (for
// integer-order problems) or create_fractional_deformation_operator's
// Riesz–Caputo element (for fractional ones) — inner is supplied by the
// caller so this constructor does not care which.
func NewTrussEquationTemplate(section SectionFunc, youngsModulus float64, inner fdm.Element, load LoadFunc) EquationTemplate {
	coeff := fdm.Mul(fdm.FromFunc(fdm.PointFunc(section)), fdm.Const(youngsModulus))
	weighted := fdm.Mul(coeff, inner)
	element := fdm.NewOperator(fdm.Central(1), weighted)

	return EquationTemplate{
		Weights: func(addr float64) (scheme.Scheme, error) {
			val, err := element.Expand(addr)
			if err != nil {
				return scheme.Scheme{}, err
			}
			return val.ToScheme(addr), nil
		},
		FreeValue: FreeValueFunc(load),
	}
}

// NewClassicalTrussEquationTemplate builds the same rod equation using a
// plain central-difference second derivative in place of a fractional
// operator, matching the integer-order scenarios in the source's truss
// integration tests.
func NewClassicalTrussEquationTemplate(section SectionFunc, youngsModulus float64, load LoadFunc) EquationTemplate {
	inner := fdm.NewOperator(fdm.Central(1), nil)
	return NewTrussEquationTemplate(section, youngsModulus, inner, load)
}
