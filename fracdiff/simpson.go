// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracdiff

import (
	"math"

	"github.com/szajek/fractulus/fdm"
)

// simpsonI0/I1/I2 are the exact antiderivatives of s^n*(k-s)^-alpha over a
// double panel s in [-2,0], obtained by expanding (k-s)^n via the binomial
// theorem and integrating term by term (spec §4.D, "Simpson weights").
func simpsonI0(k, alpha float64) float64 {
	return (math.Pow(k+2, 1-alpha) - math.Pow(k, 1-alpha)) / (1 - alpha)
}

func simpsonI1(k, alpha float64) float64 {
	return k*simpsonI0(k, alpha) - (math.Pow(k+2, 2-alpha)-math.Pow(k, 2-alpha))/(2-alpha)
}

func simpsonI2(k, alpha float64) float64 {
	return k*k*simpsonI0(k, alpha) -
		2*k*(math.Pow(k+2, 2-alpha)-math.Pow(k, 2-alpha))/(2-alpha) +
		(math.Pow(k+2, 3-alpha)-math.Pow(k, 3-alpha))/(3-alpha)
}

// simpsonW0/W1/W2 fold the quadratic Lagrange basis through nodes
// (-2,-1,0) into simpsonI{0,1,2}, giving the contribution of a double
// panel whose right edge sits k steps (in units of dt) from the
// singularity at address 0, to the left/middle/right node of that panel.
func simpsonW0(k, alpha float64) float64 {
	return 0.5*simpsonI2(k, alpha) + 0.5*simpsonI1(k, alpha)
}

func simpsonW1(k, alpha float64) float64 {
	return -simpsonI2(k, alpha) - 2*simpsonI1(k, alpha)
}

func simpsonW2(k, alpha float64) float64 {
	return 0.5*simpsonI2(k, alpha) + 1.5*simpsonI1(k, alpha) + simpsonI0(k, alpha)
}

// simpsonJ is ∫ s^n*(-s)^-alpha ds over s in [-1,0], used by the odd-
// resolution end correction.
func simpsonJ(nn, alpha float64) float64 {
	return math.Pow(-1, nn) / (nn - alpha + 1)
}

// simpsonU folds the quadratic Lagrange basis through nodes (-1,0,1) into
// simpsonJ, giving the end-correction weight at relative offset j in
// {-1,0,1} for an odd-resolution stencil's extra half panel straddling
// the singularity (spec §4.D, "correction u_k").
func simpsonU(j int, alpha float64) float64 {
	switch j {
	case -1:
		return 0.5*simpsonJ(2, alpha) - 0.5*simpsonJ(1, alpha)
	case 0:
		return simpsonJ(0, alpha) - simpsonJ(2, alpha)
	default:
		return 0.5*simpsonJ(2, alpha) + 0.5*simpsonJ(1, alpha)
	}
}

// CreateLeftSimpsonRuleStencil builds the Simpson-quadrature fractional
// stencil over [-lf, 0] (spec §4.D): the weakly singular kernel
// (-t)^-alpha is integrated exactly against a piecewise-quadratic
// (composite Simpson) interpolant of u, the same product-integration
// technique the rectangle/trapezoidal stencils use at lower interpolation
// order.
//
// For even resolution, nodes pair up into p/2 double panels with no
// interval left over. For odd resolution, the final single interval
// [-dt, 0] cannot form a double panel on its own, so it is folded into a
// correction spanning nodes -dt, 0 and one extra node at +dt beyond the
// domain (the quadratic is fit across the singularity rather than up to
// it), weighted by simpsonU instead of simpsonW0/W1/W2.
func CreateLeftSimpsonRuleStencil(s Settings) fdm.Stencil {
	alpha, lf, p := s.Alpha, s.Lf, s.Resolution
	dt := lf / float64(p)
	mult := math.Pow(dt, 1-alpha) / math.Gamma(1-alpha)

	indexed := make(map[int]float64, p+2)
	add := func(idx int, raw float64) { indexed[idx] += mult * raw }

	panels := p / 2
	for m := 0; m < panels; m++ {
		k := float64(p - 2*m - 2)
		add(2*m, simpsonW0(k, alpha))
		add(2*m+1, simpsonW1(k, alpha))
		add(2*m+2, simpsonW2(k, alpha))
	}
	if p%2 != 0 {
		add(p-1, simpsonU(-1, alpha))
		add(p, simpsonU(0, alpha))
		add(p+1, simpsonU(1, alpha))
	}

	weights := make(map[float64]float64, len(indexed))
	for idx, w := range indexed {
		weights[math.Round((-lf+float64(idx)*dt)*1e4)/1e4] = w
	}
	return fdm.Stencil{Weights: weights, Axis: 1, Order: -(1 - alpha)}
}

// CreateRightSimpsonRuleStencil mirrors the left Simpson stencil.
func CreateRightSimpsonRuleStencil(s Settings) fdm.Stencil {
	left := CreateLeftSimpsonRuleStencil(s)
	return mirror(left, n(s.Alpha))
}
