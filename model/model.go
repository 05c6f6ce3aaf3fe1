// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the per-node equation template, boundary
// conditions, and the Model triple the assembler walks (spec §4.E).
package model

import (
	"github.com/szajek/fractulus/fdm"
	"github.com/szajek/fractulus/geometry"
	"github.com/szajek/fractulus/scheme"
)

// FreeValueFunc returns a model's known (right-hand-side) value at a
// node address.
type FreeValueFunc func(address float64) float64

// WeightsFunc expands a node address directly to the Scheme carrying
// that node's interior-equation coefficients (spec §3: "weights_fn:
// address -> Element/Scheme factory" — this template resolves the
// Element all the way to its Scheme so the assembler only ever deals in
// Scheme/Coefficients, not raw Elements).
type WeightsFunc func(address float64) (scheme.Scheme, error)

// EquationTemplate pairs the coefficient-producing function with the
// free-value function every interior node shares (spec §4.E).
type EquationTemplate struct {
	Weights   WeightsFunc
	FreeValue FreeValueFunc
}

// NewEquationTemplate builds an EquationTemplate from an element that
// does not vary in shape with node address (only in the values it
// resolves to there) and a free-value function.
func NewEquationTemplate(element fdm.Element, freeValue FreeValueFunc) EquationTemplate {
	return EquationTemplate{
		Weights: func(addr float64) (scheme.Scheme, error) {
			val, err := element.Expand(addr)
			if err != nil {
				return scheme.Scheme{}, err
			}
			return val.ToScheme(addr), nil
		},
		FreeValue: freeValue,
	}
}

// BoundaryCondition carries the stencil its row is built from and the
// free value it contributes (spec §4.E).
type BoundaryCondition struct {
	Coefficients fdm.SchemeExpander
	FreeValue    FreeValueFunc
}

// Dirichlet fixes the node's value directly: coefficients {0: 1}, free
// value the constant given (0 when unspecified, matching the source's
// dirichlet(value=0.) default).
func Dirichlet(value float64) BoundaryCondition {
	return BoundaryCondition{
		Coefficients: fdm.NewStencil(map[float64]float64{0: 1}),
		FreeValue:    func(float64) float64 { return value },
	}
}

// Neumann applies an arbitrary derivative stencil with free value 0.
func Neumann(stencil fdm.SchemeExpander) BoundaryCondition {
	return BoundaryCondition{
		Coefficients: stencil,
		FreeValue:    func(float64) float64 { return 0 },
	}
}

// Bcs maps a node address to the boundary condition governing it.
// Addresses absent from the map are interior nodes: the equation
// template's weights apply there instead.
type Bcs map[float64]BoundaryCondition

// Model is the (equation template, domain, boundary conditions) triple
// the assembler consumes (spec §4.E).
type Model struct {
	Equation EquationTemplate
	Domain   geometry.Grid
	Bcs      Bcs

	// BcNoForFree reproduces the source's --bc-no-for-free flag: when
	// set, a boundary node's row uses the interior equation's free value
	// instead of the boundary condition's own (spec §6).
	BcNoForFree bool
}
