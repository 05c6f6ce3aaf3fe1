// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/szajek/fractulus/scheme"
)

func TestSchemeAddIdentity(tst *testing.T) {
	chk.PrintTitle("SchemeAddIdentity")
	s := scheme.New(map[float64]float64{0: 1, 1: -1}, 1)
	sum, err := s.Add(scheme.New(nil, 1))
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "s+empty @0", 1e-15, sum.WeightAt(0), 1)
	chk.Scalar(tst, "s+empty @1", 1e-15, sum.WeightAt(1), -1)
}

func TestSchemeAddCommutativity(tst *testing.T) {
	chk.PrintTitle("SchemeAddCommutativity")
	s1 := scheme.New(map[float64]float64{0: 1, 1: 2}, 1)
	s2 := scheme.New(map[float64]float64{1: 3, 2: -1}, 1)
	a, err := s1.Add(s2)
	if err != nil {
		tst.Fatal(err)
	}
	b, err := s2.Add(s1)
	if err != nil {
		tst.Fatal(err)
	}
	for _, addr := range []float64{0, 1, 2} {
		chk.Scalar(tst, "commutative", 1e-15, a.WeightAt(addr), b.WeightAt(addr))
	}
}

func TestSchemeAddOrderMismatch(tst *testing.T) {
	chk.PrintTitle("SchemeAddOrderMismatch")
	s1 := scheme.New(map[float64]float64{0: 1}, 1)
	s2 := scheme.New(map[float64]float64{0: 1}, 2)
	if _, err := s1.Add(s2); err == nil {
		tst.Fatal("expected OrderMismatch error")
	}
}

func TestSchemeShiftLinearity(tst *testing.T) {
	chk.PrintTitle("SchemeShiftLinearity")
	s := scheme.New(map[float64]float64{0: 1, 1: -1}, 1)
	c := 2.5
	d := 1.25
	lhs := s.AddNumber(c).Shift(d)
	rhs := s.Shift(d).AddNumber(c)
	for _, addr := range []float64{0 + c + d, 1 + c + d} {
		chk.Scalar(tst, "shift-linearity", 1e-15, lhs.WeightAt(addr), rhs.WeightAt(addr))
	}
}

func TestToCoefficientsBoundaryPositive(tst *testing.T) {
	chk.PrintTitle("ToCoefficientsBoundaryPositive")
	s := scheme.New(map[float64]float64{0.5: 1}, 1)
	c := s.ToCoefficients(1)
	chk.Scalar(tst, "coef@0", 1e-15, c.Get(0), 0.5)
	chk.Scalar(tst, "coef@1", 1e-15, c.Get(1), 0.5)
}

func TestToCoefficientsBoundaryNegative(tst *testing.T) {
	chk.PrintTitle("ToCoefficientsBoundaryNegative")
	s := scheme.New(map[float64]float64{-0.25: 1}, 1)
	c := s.ToCoefficients(1)
	chk.Scalar(tst, "coef@0", 1e-15, c.Get(0), 0.75)
	chk.Scalar(tst, "coef@-1", 1e-15, c.Get(-1), 0.25)
}

func TestToCoefficientsConservesMass(tst *testing.T) {
	chk.PrintTitle("ToCoefficientsConservesMass")
	s := scheme.New(map[float64]float64{-0.3: 2, 0.2: 5, 1.4: -1}, 2)
	delta := 0.1
	c := s.ToCoefficients(delta)
	var total float64
	for _, k := range c.Keys() {
		total += c.Get(k)
	}
	var expected float64
	for _, addr := range s.Addresses() {
		expected += s.WeightAt(addr)
	}
	expected /= delta * delta
	chk.Scalar(tst, "mass conserved", 1e-12, total, expected)
}

func TestCentralStencilExpand(tst *testing.T) {
	chk.PrintTitle("CentralStencilExpand")
	s1 := Central(1)
	sc, err := s1.ExpandScheme(0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "central(1) @ -0.5", 1e-15, sc.WeightAt(-0.5), -1)
	chk.Scalar(tst, "central(1) @ 0.5", 1e-15, sc.WeightAt(0.5), 1)

	s2 := Central(2)
	sc2, err := s2.ExpandScheme(0)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "central(2) @ -1", 1e-15, sc2.WeightAt(-1), -0.5)
	chk.Scalar(tst, "central(2) @ 1", 1e-15, sc2.WeightAt(1), 0.5)
}

func TestOperateWithNumberPreservesOrder(tst *testing.T) {
	chk.PrintTitle("OperateWithNumberPreservesOrder")
	s := scheme.New(map[float64]float64{0: 1, 1: -1}, 1).WithOrder(1.7)
	out, err := Operate(s, Number{constant: 3})
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "order preserved", 1e-15, out.Order(), 1.7)
}

func TestOperateEmptySchemeFails(tst *testing.T) {
	chk.PrintTitle("OperateEmptySchemeFails")
	empty := scheme.New(nil, 1)
	if _, err := Operate(empty, Const(1)); err == nil {
		tst.Fatal("expected EmptyOperand error")
	}
}

func TestOperatorComposition(tst *testing.T) {
	chk.PrintTitle("OperatorComposition")
	// second derivative via two first-derivative central stencils composed:
	// d/dx(d/dx(u)) at node 2, using addresses 0..4.
	outer := Central(2)
	inner := NewOperator(Central(2), nil)
	op := NewOperator(outer, inner)
	val, err := op.Expand(2)
	if err != nil {
		tst.Fatal(err)
	}
	if val.IsScalar() {
		tst.Fatal("expected Scheme result")
	}
	sc := val.AsScheme()
	// Second-order central difference on a 5-point stencil around 2:
	// weights at 0,1,2,3,4 with d^2u/dx^2 ~ (u(0)-2u(2)+u(4)) for span=2
	chk.Scalar(tst, "d2 @0", 1e-12, sc.WeightAt(0), 0.25)
	chk.Scalar(tst, "d2 @2", 1e-12, sc.WeightAt(2), -0.5)
	chk.Scalar(tst, "d2 @4", 1e-12, sc.WeightAt(4), 0.25)
}

func TestLazyOperationArithmetic(tst *testing.T) {
	chk.PrintTitle("LazyOperationArithmetic")
	coeff := Const(2)
	op := NewOperator(Central(2), nil)
	combined := Mul(coeff, op)
	val, err := combined.Expand(2)
	if err != nil {
		tst.Fatal(err)
	}
	sc := val.AsScheme()
	chk.Scalar(tst, "scaled @1", 1e-12, sc.WeightAt(1), -1)
	chk.Scalar(tst, "scaled @2", 1e-12, sc.WeightAt(2), 0)
	chk.Scalar(tst, "scaled @3", 1e-12, sc.WeightAt(3), 1)
}

func TestLazyOperationUnsupported(tst *testing.T) {
	chk.PrintTitle("LazyOperationUnsupported")
	a := NewOperator(Central(2), nil)
	b := NewOperator(Central(2), nil)
	combined := Mul(a, b)
	if _, err := combined.Expand(0); err == nil {
		tst.Fatal("expected UnsupportedArithmetic error")
	}
}
