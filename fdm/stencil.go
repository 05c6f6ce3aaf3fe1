// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/szajek/fractulus/scheme"
)

// Stencil is a local weighted kernel: expanding it at an address shifts
// its weights there (spec §3). Axis is carried for forward
// compatibility with multi-dimensional stencils but is not interpreted
// by this 1-D module.
type Stencil struct {
	Weights map[float64]float64
	Axis    int
	Order   float64
}

// NewStencil builds a Stencil with the default axis and order 1.
func NewStencil(weights map[float64]float64) Stencil {
	return Stencil{Weights: weights, Axis: 1, Order: 1}
}

// ExpandScheme implements SchemeExpander.
func (s Stencil) ExpandScheme(address float64) (scheme.Scheme, error) {
	return scheme.New(s.Weights, s.Order).Shift(address), nil
}

// Expand implements Element.
func (s Stencil) Expand(address float64) (Value, error) {
	sc, err := s.ExpandScheme(address)
	if err != nil {
		return Value{}, err
	}
	return FromScheme(sc), nil
}

// Forward builds a one-sided forward-difference stencil over [0, span].
func Forward(span float64) Stencil {
	if span == 0 {
		span = 1
	}
	return ByAddresses(0, span)
}

// Backward builds a one-sided backward-difference stencil over [-span, 0].
func Backward(span float64) Stencil {
	if span == 0 {
		span = 1
	}
	return ByAddresses(-span, 0)
}

// Central builds a centred-difference stencil over [-span/2, span/2].
func Central(span float64) Stencil {
	if span == 0 {
		span = 2
	}
	return ByAddresses(-span/2, span/2)
}

// ByAddresses builds the two-point first-derivative stencil anchored at
// address1 and address2.
func ByAddresses(address1, address2 float64) Stencil {
	span := address2 - address1
	weight := 1 / span
	return NewStencil(map[float64]float64{
		address1: -weight,
		address2: weight,
	})
}

// WeightsProvider computes the weight at the i-th point of a uniform
// stencil, given that point's relative address.
type WeightsProvider func(i int, address float64) float64

// Uniform lays weights on resolution+1 equally spaced points spanning
// [-leftRange, rightRange], calling provider for each point (spec §4.D).
// Addresses are rounded to a 1e-4 grid so that floating-point drift in
// the step does not leave keys such as -0.6000000000000001.
func Uniform(leftRange, rightRange float64, resolution int, provider WeightsProvider, order float64) Stencil {
	span := rightRange + leftRange
	step := span / float64(resolution)
	weights := make(map[float64]float64, resolution+1)
	for i := 0; i <= resolution; i++ {
		addr := math.Round((-leftRange+float64(i)*step)*1e4) / 1e4
		weights[addr] = provider(i, addr)
	}
	return Stencil{Weights: weights, Axis: 1, Order: order}
}

// DynamicStencil builds its underlying Stencil lazily from the node
// address being expanded, for stencils whose weights vary with the node
// they are applied to.
type DynamicStencil struct {
	Builder func(address float64) Stencil
}

// ExpandScheme implements SchemeExpander.
func (d DynamicStencil) ExpandScheme(address float64) (scheme.Scheme, error) {
	return d.Builder(address).ExpandScheme(address)
}

// Expand implements Element.
func (d DynamicStencil) Expand(address float64) (Value, error) {
	sc, err := d.ExpandScheme(address)
	if err != nil {
		return Value{}, err
	}
	return FromScheme(sc), nil
}
