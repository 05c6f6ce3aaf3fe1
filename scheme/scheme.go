// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scheme implements the weighted node-address map with order
// tracking (spec §3/§4.A): Scheme addition, scalar multiplication,
// shifting, and redistribution of non-integer addresses onto the
// surrounding integer grid indices.
package scheme

import (
	"math"
	"sort"

	"github.com/szajek/fractulus/errs"
)

// Tolerance below which a redistributed address collapses onto a single
// integer node instead of being split across its two neighbours.
const Tolerance = 1e-4

// Scheme is a weighted map from (possibly non-integer) node address to
// weight, carrying a differential Order. Values are immutable; every
// operation returns a new Scheme.
type Scheme struct {
	weights map[float64]float64
	order   float64
}

// New builds a Scheme from a weight map and an order. The map is copied,
// so later mutation of the caller's map does not affect the Scheme.
func New(weights map[float64]float64, order float64) Scheme {
	w := make(map[float64]float64, len(weights))
	for k, v := range weights {
		w[k] = v
	}
	return Scheme{weights: w, order: order}
}

// FromNumber builds the order-0 single-weight scheme used by operate
// when an element expands to a scalar at a given address.
func FromNumber(address, value float64) Scheme {
	return Scheme{weights: map[float64]float64{address: value}, order: 0}
}

// Order is the differential order carried by this Scheme.
func (s Scheme) Order() float64 { return s.order }

// Len is the number of distinct weighted addresses.
func (s Scheme) Len() int { return len(s.weights) }

// WeightAt returns the weight stored at an address (0 if absent).
func (s Scheme) WeightAt(address float64) float64 { return s.weights[address] }

// Addresses returns the scheme's addresses in ascending order, so that
// callers summing or assembling over them get deterministic,
// repeatable floating-point results (spec §5).
func (s Scheme) Addresses() []float64 {
	out := make([]float64, 0, len(s.weights))
	for k := range s.weights {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}

// WithOrder returns a copy of this Scheme with a different order — the
// explicit with-field idiom used in place of the source's generic
// mutate(**fields) (spec §9).
func (s Scheme) WithOrder(order float64) Scheme {
	return Scheme{weights: s.weights, order: order}
}

// Shift translates every address key by delta; order is unchanged.
func (s Scheme) Shift(delta float64) Scheme {
	w := make(map[float64]float64, len(s.weights))
	for k, v := range s.weights {
		w[k+delta] = v
	}
	return Scheme{weights: w, order: s.order}
}

// Mul scales every weight by a scalar; order is unchanged.
func (s Scheme) Mul(factor float64) Scheme {
	w := make(map[float64]float64, len(s.weights))
	for k, v := range s.weights {
		w[k] = v * factor
	}
	return Scheme{weights: w, order: s.order}
}

// Add merges two schemes of equal order, summing weights at colliding
// addresses. It fails with OrderMismatch when the orders differ.
func (s Scheme) Add(other Scheme) (Scheme, error) {
	if s.order != other.order {
		return Scheme{}, errs.New(errs.OrderMismatch,
			"scheme add: orders %g and %g differ", s.order, other.order)
	}
	w := make(map[float64]float64, len(s.weights)+len(other.weights))
	for k, v := range s.weights {
		w[k] += v
	}
	for k, v := range other.weights {
		w[k] += v
	}
	return Scheme{weights: w, order: s.order}, nil
}

// AddNumber implements "scheme + number = shift(number)" (spec §3).
func (s Scheme) AddNumber(n float64) Scheme { return s.Shift(n) }

// Sum folds a slice of equal-order schemes with Add, left to right. An
// empty slice returns the zero Scheme.
func Sum(schemes []Scheme) (Scheme, error) {
	if len(schemes) == 0 {
		return Scheme{}, nil
	}
	acc := schemes[0]
	var err error
	for _, s := range schemes[1:] {
		acc, err = acc.Add(s)
		if err != nil {
			return Scheme{}, err
		}
	}
	return acc, nil
}

// Coefficients is an integer-index-keyed weight map produced by
// Scheme.ToCoefficients.
type Coefficients struct {
	values map[int]float64
}

// Keys returns the coefficients' indices in ascending order.
func (c Coefficients) Keys() []int {
	out := make([]int, 0, len(c.values))
	for k := range c.values {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Get returns the coefficient at index i (0 if absent).
func (c Coefficients) Get(i int) float64 { return c.values[i] }

// Len is the number of distinct integer indices.
func (c Coefficients) Len() int { return len(c.values) }

// Indexable is anything Coefficients.ToValue can dot-product against: a
// solution vector, real or with appended virtual slots.
type Indexable interface {
	At(index int) float64
}

// ToValue computes Σ coeff·output[address] over this coefficient set.
func (c Coefficients) ToValue(output Indexable) float64 {
	sum := 0.
	for _, k := range c.Keys() {
		sum += c.values[k] * output.At(k)
	}
	return sum
}

// ToCoefficients converts a Scheme into integer-indexed coefficients
// (spec §3/§4.A):
//
//  1. every weight is divided by delta^order;
//  2. a weight at address a = floor(a) + f is redistributed
//     proportionally onto floor(a) and ceil(a) when |f| exceeds
//     Tolerance, preserving the sign of f; otherwise it collapses onto
//     the single integer address.
func (s Scheme) ToCoefficients(delta float64) Coefficients {
	divisor := math.Pow(delta, s.order)
	values := make(map[int]float64)
	for _, addr := range s.Addresses() {
		w := s.weights[addr] / divisor
		modulo := math.Mod(addr, 1)
		absMod := math.Abs(modulo)
		if absMod <= Tolerance {
			values[int(math.Round(addr))] += w
			continue
		}
		w1, w2 := 1-absMod, absMod
		if modulo <= 0 {
			w1, w2 = w2, w1
		}
		lo := int(math.Floor(addr))
		hi := int(math.Ceil(addr))
		values[lo] += w1 * w
		values[hi] += w2 * w
	}
	return Coefficients{values: values}
}
