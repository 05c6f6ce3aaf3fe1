// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fractulus solves the fixed/free-end rod-equilibrium demo from
// the fractional operator algebra: a uniform bar under a constant
// distributed load, differentiated with the Riesz-Caputo fractional
// derivative instead of a classical second derivative.
package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/szajek/fractulus/assembly"
	"github.com/szajek/fractulus/fdm"
	"github.com/szajek/fractulus/fracdiff"
	"github.com/szajek/fractulus/geometry"
	"github.com/szajek/fractulus/model"
	"github.com/szajek/fractulus/solve"
)

func main() {
	alpha := flag.Float64("alpha", 0.8, "fractional derivative order")
	lf := flag.Float64("lf", 1.0, "fractional length scale")
	resolution := flag.Int("resolution", 4, "quadrature resolution")
	nodeNumber := flag.Int("nodes", 6, "number of nodes along the bar")
	length := flag.Float64("length", 1.0, "bar length")
	youngsModulus := flag.Float64("E", 1.0, "Young's modulus")
	section := flag.Float64("A", 1.0, "cross-section area")
	load := flag.Float64("load", -1.0, "uniform distributed load")
	bcNoForFree := flag.Bool("bc-no-for-free", false, "use the interior equation's free value on boundary rows")
	flag.Parse()

	io.Pf("fractulus -- fractional finite-difference rod solver\n")
	io.Pf("alpha=%v lf=%v resolution=%v nodes=%v length=%v\n", *alpha, *lf, *resolution, *nodeNumber, *length)

	domain, err := buildDomain(*length, *nodeNumber)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return
	}

	settings := fracdiff.NewSettings(*alpha, *lf, *resolution)
	inner := fracdiff.CreateFractionalDeformationOperator(settings)
	equation := model.NewTrussEquationTemplate(
		func(float64) float64 { return *section },
		*youngsModulus,
		inner,
		func(float64) float64 { return *load },
	)

	m := model.Model{
		Equation: equation,
		Domain:   domain,
		Bcs: model.Bcs{
			0:                        model.Dirichlet(0),
			float64(*nodeNumber - 1): model.Neumann(fdm.Backward(1)),
		},
		BcNoForFree: *bcNoForFree,
	}

	out, err := solve.Solve(solve.LinearSystemOfEquations, m, assembly.Symmetry)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		return
	}

	io.Pfgreen("displacement:\n")
	for i, u := range out.Real() {
		io.Pf("node %2d: %12.6e\n", i, u)
	}
}

func buildDomain(length float64, nodeNumber int) (geometry.Grid, error) {
	builder, err := geometry.NewGrid1DBuilder(length).AddUniformlyDistributedNodes(nodeNumber)
	if err != nil {
		return geometry.Grid{}, err
	}
	return builder.Build(), nil
}
