// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fracdiff implements the closed-form fractional stencil
// factories (spec §4.D): left/right Caputo, rectangle, trapezoidal and
// Simpson quadrature-rule stencils, and their Riesz–Caputo symmetric
// combination.
package fracdiff

import (
	"math"

	"github.com/szajek/fractulus/errs"
	"github.com/szajek/fractulus/fdm"
)

// Settings is the fractional-order configuration shared by every
// stencil family: order alpha, length-scale lf, integration resolution
// (spec §3, CaputoSettings).
type Settings struct {
	Alpha      float64
	Lf         float64
	Resolution int
}

// NewSettings builds a Settings value.
func NewSettings(alpha, lf float64, resolution int) Settings {
	return Settings{Alpha: alpha, Lf: lf, Resolution: resolution}
}

// n is floor(alpha)+1, the integer order Caputo's definition
// differentiates by before fractionally integrating.
func n(alpha float64) float64 { return math.Floor(alpha) + 1 }

// mirror builds the right-side stencil from a left-side one: reflect
// every address about 0 and flip the sign by (-1)^n (spec §4.D, "right-
// side variants are obtained by horizontal mirror about 0 and sign
// flip"). This single helper replaces the source's five separately
// hand-written right-side formulas.
func mirror(left fdm.Stencil, nn float64) fdm.Stencil {
	sign := math.Pow(-1, nn)
	weights := make(map[float64]float64, len(left.Weights))
	for addr, w := range left.Weights {
		weights[-addr] = sign * w
	}
	return fdm.Stencil{Weights: weights, Axis: left.Axis, Order: left.Order}
}

// CreateLeftCaputoStencil builds the left Caputo derivative stencil over
// [-lf, 0] (spec §4.D).
func CreateLeftCaputoStencil(s Settings) fdm.Stencil {
	alpha, lf, p := s.Alpha, s.Lf, s.Resolution
	nn := n(alpha)
	idx := nn - alpha + 1
	h := lf / float64(p)
	mult := math.Pow(h, nn-alpha) / math.Gamma(nn-alpha+2)

	provider := func(i int, _ float64) float64 {
		pf := float64(p)
		switch {
		case i == 0:
			return mult * (math.Pow(pf-1, idx) - (pf-nn+alpha-1)*math.Pow(pf, nn-alpha))
		case i == p:
			return mult * 1
		default:
			j := float64(i)
			return mult * (math.Pow(pf-j+1, idx) - 2*math.Pow(pf-j, idx) + math.Pow(pf-j-1, idx))
		}
	}
	return fdm.Uniform(lf, 0, p, provider, -(nn - alpha))
}

// CreateRightCaputoStencil builds the right Caputo derivative stencil
// over [0, lf] as the mirror of the left one (spec §4.D).
func CreateRightCaputoStencil(s Settings) fdm.Stencil {
	left := CreateLeftCaputoStencil(s)
	return mirror(left, n(s.Alpha))
}

// CreateLeftRectangleRuleStencil builds the rectangle-quadrature
// fractional stencil over [-lf+dx, 0], dx=lf/p, with p-1 intervals
// (spec §4.D).
func CreateLeftRectangleRuleStencil(s Settings) fdm.Stencil {
	alpha, lf, p := s.Alpha, s.Lf, s.Resolution
	dx := lf / float64(p)
	mult := math.Pow(dx, 1-alpha) / math.Gamma(2-alpha)

	provider := func(i int, _ float64) float64 {
		k := float64(-p + i)
		return mult * (math.Pow(-k, 1-alpha) - math.Pow(-k-1, 1-alpha))
	}
	return fdm.Uniform(lf-dx, 0, p-1, provider, -(1 - alpha))
}

// CreateRightRectangleRuleStencil mirrors the left rectangle stencil.
func CreateRightRectangleRuleStencil(s Settings) fdm.Stencil {
	left := CreateLeftRectangleRuleStencil(s)
	return mirror(left, n(s.Alpha))
}

// CreateLeftTrapezoidalRuleStencil builds the trapezoidal-quadrature
// fractional stencil over [-lf, 0] (spec §4.D).
func CreateLeftTrapezoidalRuleStencil(s Settings) fdm.Stencil {
	return trapezoidalRaw(s.Alpha, s.Lf, s.Resolution)
}

// trapezoidalRaw builds the left trapezoidal-rule stencil from its raw
// parameters; CreateLeftTrapezoidalRuleStencil unpacks Settings into it.
func trapezoidalRaw(alpha, lf float64, p int) fdm.Stencil {
	dx := lf / float64(p)
	mult := math.Pow(dx, 1-alpha) / math.Gamma(3-alpha)

	provider := func(i int, _ float64) float64 {
		pf := float64(p)
		switch {
		case i == 0:
			return mult * (math.Pow(pf-1, 2-alpha) + (2-alpha-pf)*math.Pow(pf, 1-alpha))
		case i == p:
			return mult * 1
		default:
			k := float64(-p + i)
			return mult * (math.Pow(-k+1, 2-alpha) - 2*math.Pow(-k, 2-alpha) + math.Pow(-k-1, 2-alpha))
		}
	}
	return fdm.Uniform(lf, 0, p, provider, -(1 - alpha))
}

// CreateRightTrapezoidalRuleStencil mirrors the left trapezoidal stencil.
func CreateRightTrapezoidalRuleStencil(s Settings) fdm.Stencil {
	left := CreateLeftTrapezoidalRuleStencil(s)
	return mirror(left, n(s.Alpha))
}

// combine scales two equal-order stencils and merges their weight maps;
// used by the Riesz–Caputo assembly (spec §4.D).
func combine(left, right fdm.Stencil, leftFactor, rightFactor float64) (fdm.Stencil, error) {
	if left.Order != right.Order {
		return fdm.Stencil{}, errs.New(errs.OrderMismatch,
			"riesz combine: left order %g and right order %g differ", left.Order, right.Order)
	}
	weights := make(map[float64]float64, len(left.Weights)+len(right.Weights))
	for addr, w := range left.Weights {
		weights[addr] += leftFactor * w
	}
	for addr, w := range right.Weights {
		weights[addr] += rightFactor * w
	}
	return fdm.Stencil{Weights: weights, Axis: left.Axis, Order: left.Order}, nil
}

// riesz assembles riesz(settings) = Γ(2-α)/(2·Γ(2)) · (left + (-1)^n·right)
// (spec §4.D). It panics only if left/right orders mismatch, which would
// indicate a programming error in this package (both sides are always
// built from the same Settings, so their orders always agree).
func riesz(left, right fdm.Stencil, alpha float64) fdm.Stencil {
	nn := n(alpha)
	coef := math.Gamma(2-alpha) / (2 * math.Gamma(2))
	sign := math.Pow(-1, nn)
	st, err := combine(left, right, coef, coef*sign)
	if err != nil {
		panic(err)
	}
	return st
}

// CreateRieszCaputoStencil builds the symmetric Riesz–Caputo combination
// of the left and right Caputo stencils (spec §4.D).
func CreateRieszCaputoStencil(s Settings) fdm.Stencil {
	return riesz(CreateLeftCaputoStencil(s), CreateRightCaputoStencil(s), s.Alpha)
}

// CreateRieszRectangleStencil builds the symmetric Riesz combination of
// the rectangle-rule stencils.
func CreateRieszRectangleStencil(s Settings) fdm.Stencil {
	return riesz(CreateLeftRectangleRuleStencil(s), CreateRightRectangleRuleStencil(s), s.Alpha)
}

// CreateRieszTrapezoidalStencil builds the symmetric Riesz combination of
// the trapezoidal-rule stencils.
func CreateRieszTrapezoidalStencil(s Settings) fdm.Stencil {
	return riesz(CreateLeftTrapezoidalRuleStencil(s), CreateRightTrapezoidalRuleStencil(s), s.Alpha)
}

// CreateRieszSimpsonStencil builds the symmetric Riesz combination of the
// Simpson-rule stencils.
func CreateRieszSimpsonStencil(s Settings) fdm.Stencil {
	return riesz(CreateLeftSimpsonRuleStencil(s), CreateRightSimpsonRuleStencil(s), s.Alpha)
}

// CreateFractionalDeformationOperator builds the Element applying the
// Riesz–Caputo fractional derivative d^alpha u/dx^alpha to the nodal
// field (spec §4.B/§6): the Riesz–Caputo stencil, of order -(1-alpha),
// operates on the first central difference of u. A model template nests a
// physical coefficient and an outer derivative stencil around it — e.g. a
// truss's (A·E·d^alpha u/dx^alpha)' — rather than this function composing
// a fixed physical model itself.
func CreateFractionalDeformationOperator(s Settings) fdm.Element {
	return fdm.NewOperator(CreateRieszCaputoStencil(s), fdm.NewOperator(fdm.Central(1), nil))
}
