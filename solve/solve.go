// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve runs an assembled System through a pluggable
// linear-algebra back end — direct linear solve or generalized
// eigenproblem — and wraps the result as an assembly.Output (spec
// §4.G).
package solve

import (
	"github.com/szajek/fractulus/assembly"
	"github.com/szajek/fractulus/errs"
	"github.com/szajek/fractulus/model"
	"gonum.org/v1/gonum/mat"
)

// Solver maps a weights matrix and free-value vector onto a full
// solution vector (spec §3).
type Solver func(weights [][]float64, freeValues []float64) ([]float64, error)

// LinearSystemOfEquations solves A x = b directly (spec §4.G),
// grounded on the source's `np.linalg.solve`.
func LinearSystemOfEquations(weights [][]float64, freeValues []float64) ([]float64, error) {
	n := len(freeValues)
	a := mat.NewDense(n, n, flatten(weights))
	b := mat.NewVecDense(n, freeValues)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return nil, errs.New(errs.SolverFailure, "linear system of equations: %v", err)
	}
	return denseToSlice(&x, n), nil
}

// Eigenproblem solves A·mass⁻¹ for its first eigenvector, where mass is
// the identity (spec §4.G), grounded on the source's
// create_eigenproblem_solver (mass = diag(ones(b.size))). The free-value
// vector only contributes its length here: a Dirichlet boundary row's
// free value is 0 by construction (model.Dirichlet), so a mass built
// from diag(b) would always be singular at a fixed boundary and could
// never solve a fixed-fixed eigenproblem — see DESIGN.md's solve
// section.
func Eigenproblem(weights [][]float64, freeValues []float64) ([]float64, error) {
	n := len(freeValues)
	a := mat.NewDense(n, n, flatten(weights))

	massInv := mat.NewDiagDense(n, make([]float64, n))
	for i := 0; i < n; i++ {
		massInv.SetDiag(i, 1)
	}

	var system mat.Dense
	system.Mul(a, massInv)

	var eig mat.Eigen
	if ok := eig.Factorize(&system, mat.EigenRight); !ok {
		return nil, errs.New(errs.SolverFailure, "eigenproblem: eigendecomposition failed to factorize")
	}
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = real(vectors.At(i, 0))
	}
	return out, nil
}

func flatten(weights [][]float64) []float64 {
	n := len(weights)
	out := make([]float64, 0, n*n)
	for _, row := range weights {
		out = append(out, row...)
	}
	return out
}

func denseToSlice(v *mat.VecDense, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = v.AtVec(i)
	}
	return out
}

// Solve assembles m under strategy and runs solver over the result,
// returning an Output addressed the way the model's nodes are (spec
// §4.F/§4.G).
func Solve(solver Solver, m model.Model, strategy assembly.VirtualValueStrategy) (assembly.Output, error) {
	system, err := assembly.Assemble(m, strategy)
	if err != nil {
		return assembly.Output{}, err
	}
	full, err := solver(system.Weights, system.FreeValues)
	if err != nil {
		return assembly.Output{}, err
	}
	return assembly.NewOutput(full, system.RealVariables, system.AddressForwarder), nil
}
