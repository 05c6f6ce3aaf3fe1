// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// Op identifies which arithmetic combinator a LazyOperation applies.
type Op int

// The four combinators an Element tree may compose (spec §3).
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// LazyOperation combines two elements with a deferred arithmetic
// operator: expanding it expands both operands at the same address and
// applies op to the two Values (spec §4.B). Unlike the source's
// operator-overload dispatch, the four (scalar,scheme) pairings are
// matched explicitly per case (spec §9) instead of relying on dynamic
// typing.
type LazyOperation struct {
	Op          Op
	Left, Right Element
}

// Add builds a LazyOperation that sums its two operands.
func Add(left, right Element) LazyOperation { return LazyOperation{OpAdd, left, right} }

// Sub builds a LazyOperation that subtracts right from left.
func Sub(left, right Element) LazyOperation { return LazyOperation{OpSub, left, right} }

// Mul builds a LazyOperation that multiplies its two operands.
func Mul(left, right Element) LazyOperation { return LazyOperation{OpMul, left, right} }

// Div builds a LazyOperation that divides left by right.
func Div(left, right Element) LazyOperation { return LazyOperation{OpDiv, left, right} }

// Expand implements Element.
func (l LazyOperation) Expand(address float64) (Value, error) {
	lv, err := l.Left.Expand(address)
	if err != nil {
		return Value{}, err
	}
	rv, err := l.Right.Expand(address)
	if err != nil {
		return Value{}, err
	}
	switch l.Op {
	case OpAdd:
		return addValues(lv, rv)
	case OpSub:
		return subValues(lv, rv)
	case OpMul:
		return mulValues(lv, rv)
	case OpDiv:
		return divValues(lv, rv)
	}
	return Value{}, unsupportedArithmeticErr("lazy operation: unknown operator")
}

// addValues implements scalar+scalar, scalar+scheme (== scheme.shift)
// and scheme+scheme (requires matching order); see spec §3.
func addValues(a, b Value) (Value, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return Scalar(a.AsScalar() + b.AsScalar()), nil
	case a.IsScalar() && !b.IsScalar():
		return FromScheme(b.AsScheme().AddNumber(a.AsScalar())), nil
	case !a.IsScalar() && b.IsScalar():
		return FromScheme(a.AsScheme().AddNumber(b.AsScalar())), nil
	default:
		sum, err := a.AsScheme().Add(b.AsScheme())
		if err != nil {
			return Value{}, err
		}
		return FromScheme(sum), nil
	}
}

// subValues implements scalar-scalar subtraction only: the source
// defines no Scheme.__sub__, so a Scheme operand on either side is
// unsupported (spec §7, UnsupportedArithmetic).
func subValues(a, b Value) (Value, error) {
	if a.IsScalar() && b.IsScalar() {
		return Scalar(a.AsScalar() - b.AsScalar()), nil
	}
	return Value{}, unsupportedArithmeticErr("lazy operation: subtraction is only defined between two scalars")
}

// mulValues implements scalar*scalar and scalar*scheme (== scheme.mul);
// scheme*scheme is unsupported (spec §3/§9).
func mulValues(a, b Value) (Value, error) {
	switch {
	case a.IsScalar() && b.IsScalar():
		return Scalar(a.AsScalar() * b.AsScalar()), nil
	case a.IsScalar() && !b.IsScalar():
		return FromScheme(b.AsScheme().Mul(a.AsScalar())), nil
	case !a.IsScalar() && b.IsScalar():
		return FromScheme(a.AsScheme().Mul(b.AsScalar())), nil
	default:
		return Value{}, unsupportedArithmeticErr("lazy operation: multiplication of two schemes is not defined")
	}
}

// divValues implements scalar/scalar division only.
func divValues(a, b Value) (Value, error) {
	if a.IsScalar() && b.IsScalar() {
		return Scalar(a.AsScalar() / b.AsScalar()), nil
	}
	return Value{}, unsupportedArithmeticErr("lazy operation: division is only defined between two scalars")
}
