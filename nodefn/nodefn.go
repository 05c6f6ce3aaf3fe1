// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nodefn wraps a function sampled at integer node addresses so
// it can be evaluated at the fractional addresses a stencil or virtual
// node may reference (spec §4.H).
package nodefn

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Callable evaluates a physical quantity at an integer node address.
type Callable func(address float64) float64

// Interpolator estimates the value at the address lying x past node x1,
// between two sampled nodes x1 < x2, given the callable's value at each.
type Interpolator func(x, x1, x2, value1, value2 float64) float64

// NodeFunction calls through to a node-sampled Callable directly at
// integer addresses, and falls back to an Interpolator (or the nearest
// integer node, logged, when none is set) at fractional ones (spec
// §4.H).
type NodeFunction struct {
	callable     Callable
	interpolator Interpolator
}

// New builds a NodeFunction with no interpolator: fractional addresses
// degrade to the nearest integer node.
func New(callable Callable) NodeFunction {
	return NodeFunction{callable: callable}
}

// WithInterpolator builds a NodeFunction that estimates fractional
// addresses via interpolator.
func WithInterpolator(callable Callable, interpolator Interpolator) NodeFunction {
	return NodeFunction{callable: callable, interpolator: interpolator}
}

// WithLinearInterpolator builds a NodeFunction using LinearInterpolator.
func WithLinearInterpolator(callable Callable) NodeFunction {
	return WithInterpolator(callable, LinearInterpolator)
}

// LinearInterpolator linearly interpolates between two sampled values.
func LinearInterpolator(x, x1, x2, value1, value2 float64) float64 {
	return value1 + (value2-value1)/(x2-x1)*x
}

// Get evaluates the function at address, exactly at integer addresses
// and via the interpolator (or nearest-node fallback) otherwise.
func (f NodeFunction) Get(address float64) float64 {
	nodeNumber := math.Trunc(address)
	if nodeNumber == address {
		return f.callable(address)
	}
	if f.interpolator == nil {
		io.Pfred("nodefn: address %g provided but no interpolator defined, using nearest node\n", address)
		return f.callable(math.Round(address))
	}
	return f.interpolator(address-nodeNumber, nodeNumber, nodeNumber+1, f.callable(nodeNumber), f.callable(nodeNumber+1))
}
