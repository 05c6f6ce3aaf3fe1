// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// PointFunc evaluates a quantity at a node address — the same shape as
// github.com/cpmech/gosl/fun.Func.F, minus the unused time/extra-args
// parameters this 1-D module has no use for.
type PointFunc func(address float64) float64

// Number is a constant, or a function of node address (spec §3): the sum
// Constant(f64) | PointFunction(fn(address) -> f64) (spec §9).
type Number struct {
	constant float64
	fn       PointFunc
}

// Const builds a Number holding a fixed value.
func Const(v float64) Number { return Number{constant: v} }

// FromFunc builds a Number evaluated from node address at expand time —
// e.g. a non-uniform cross-section A(x).
func FromFunc(fn PointFunc) Number { return Number{fn: fn} }

// Expand implements Element: Number always resolves to a scalar Value,
// absorbed by the enclosing operate/LazyOperation call.
func (n Number) Expand(address float64) (Value, error) {
	if n.fn != nil {
		return Scalar(n.fn(address)), nil
	}
	return Scalar(n.constant), nil
}
