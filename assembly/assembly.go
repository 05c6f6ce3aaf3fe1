// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly walks a model's nodes into a dense linear system:
// per-node equation expansion, virtual-node extraction for addresses
// outside the grid, and the row writers that lay both kinds of equation
// into a matrix (spec §4.F).
package assembly

import (
	"github.com/szajek/fractulus/errs"
	"github.com/szajek/fractulus/geometry"
	"github.com/szajek/fractulus/model"
	"github.com/szajek/fractulus/scheme"
)

// LinearEquation is one assembled row: an integer-indexed coefficient
// map and the free (right-hand-side) value it equals (spec §3).
type LinearEquation struct {
	Coefficients scheme.Coefficients
	FreeValue    float64
}

// VirtualValueStrategy picks how an address outside [0, N-1] is mirrored
// back onto a real node (spec §4.F).
type VirtualValueStrategy int

const (
	// Symmetry mirrors the address about the boundary: abs(address) on
	// the left, last-(address-last) on the right.
	Symmetry VirtualValueStrategy = iota
	// AsInBorder clamps the address to the nearest real boundary node.
	AsInBorder
)

// VirtualNode is an out-of-grid address some equation's coefficients
// reference, paired with the real node it is tied to by a constraint
// row (spec §3).
type VirtualNode struct {
	Address              float64
	CorrespondingAddress float64
}

func locate(address float64, nodeCount int) int {
	switch {
	case address < 0:
		return -1
	case address >= float64(nodeCount):
		return 1
	default:
		return 0
	}
}

func correspondingAddress(address float64, location int, lastIdx int, strategy VirtualValueStrategy) float64 {
	switch strategy {
	case Symmetry:
		if location < 0 {
			return -address
		}
		return float64(lastIdx) - (address - float64(lastIdx))
	case AsInBorder:
		if location < 0 {
			return 0
		}
		return float64(lastIdx)
	default:
		panic(errs.New(errs.UnknownStrategy, "assembly: unknown virtual value strategy %d", strategy))
	}
}

// ExtractVirtualNodes scans an equation's coefficient addresses and
// returns a VirtualNode for every one that falls outside [0, nodeCount-1]
// (spec §4.F).
func ExtractVirtualNodes(eq LinearEquation, nodeCount int, strategy VirtualValueStrategy) []VirtualNode {
	lastIdx := nodeCount - 1
	var out []VirtualNode
	for _, addr := range eq.Coefficients.Keys() {
		a := float64(addr)
		loc := locate(a, nodeCount)
		if loc == 0 {
			continue
		}
		out = append(out, VirtualNode{Address: a, CorrespondingAddress: correspondingAddress(a, loc, lastIdx, strategy)})
	}
	return out
}

// ModelToEquations expands every node's equation per spec §4.F: boundary
// nodes use their BoundaryCondition's stencil (delta=1, per the source's
// "make delta not necessary" note), interior nodes use the equation
// template's element with delta equal to the average length of adjacent
// connections.
func ModelToEquations(m model.Model) ([]LinearEquation, error) {
	nodes := m.Domain.Nodes
	equations := make([]LinearEquation, len(nodes))
	for i := range nodes {
		addr := float64(i)
		if bc, ok := m.Bcs[addr]; ok {
			sch, err := bc.Coefficients.ExpandScheme(addr)
			if err != nil {
				return nil, err
			}
			freeValue := bc.FreeValue(addr)
			if m.BcNoForFree {
				freeValue = m.Equation.FreeValue(addr)
			}
			equations[i] = LinearEquation{Coefficients: sch.ToCoefficients(1), FreeValue: freeValue}
			continue
		}
		delta := averageConnectionLength(m.Domain.GetConnections(i))
		sch, err := m.Equation.Weights(addr)
		if err != nil {
			return nil, err
		}
		equations[i] = LinearEquation{Coefficients: sch.ToCoefficients(delta), FreeValue: m.Equation.FreeValue(addr)}
	}
	return equations, nil
}

// averageConnectionLength is the delta passed to ToCoefficients: the mean
// length of a node's adjacent connections, or 1 for an isolated node.
func averageConnectionLength(connections []geometry.Vector) float64 {
	if len(connections) == 0 {
		return 1
	}
	var sum float64
	for _, c := range connections {
		sum += c.Length()
	}
	return sum / float64(len(connections))
}

// RowWriter lays one equation (real or virtual-node constraint) into a
// dense row of width size, plus the free value it equals (spec §4.F).
type RowWriter interface {
	ToCoefficientsArray(size int) []float64
	ToFreeValue() float64
}

// EquationWriter writes a LinearEquation's coefficients, renumbering any
// address the forwarder maps onto a virtual-node column.
type EquationWriter struct {
	Equation    LinearEquation
	Renumerator map[int]int
}

// ToCoefficientsArray implements RowWriter.
func (w EquationWriter) ToCoefficientsArray(size int) []float64 {
	row := make([]float64, size)
	for _, addr := range w.Equation.Coefficients.Keys() {
		col := addr
		if forwarded, ok := w.Renumerator[addr]; ok {
			col = forwarded
		}
		row[col] = w.Equation.Coefficients.Get(addr)
	}
	return row
}

// ToFreeValue implements RowWriter.
func (w EquationWriter) ToFreeValue() float64 { return w.Equation.FreeValue }

// VirtualNodeWriter writes the constraint row tying a virtual node's
// column to its corresponding real node's value: 1 at the virtual
// node's own column, -1 at the corresponding real address (spec §4.F).
type VirtualNodeWriter struct {
	VirtualNode        VirtualNode
	VirtualNodeNumber  int
	RealVariableNumber int
}

// ToCoefficientsArray implements RowWriter.
func (w VirtualNodeWriter) ToCoefficientsArray(size int) []float64 {
	row := make([]float64, size)
	row[w.RealVariableNumber+w.VirtualNodeNumber] = 1
	row[int(w.VirtualNode.CorrespondingAddress)] = -1
	return row
}

// ToFreeValue implements RowWriter.
func (VirtualNodeWriter) ToFreeValue() float64 { return 0 }

// System is the fully assembled dense linear system: a square weights
// matrix, its matching free-value vector, and the bookkeeping needed to
// recover real-node values from the solved vector (spec §4.F).
type System struct {
	Weights          [][]float64
	FreeValues       []float64
	RealVariables    int
	AddressForwarder map[float64]int
}

// Assemble expands a model into the square dense system a solver
// consumes: one row per real node, plus one row per virtual node
// extracted by strategy tying it back to its corresponding real address
// (spec §4.F, mirroring the source's `_solve` orchestration).
func Assemble(m model.Model, strategy VirtualValueStrategy) (System, error) {
	equations, err := ModelToEquations(m)
	if err != nil {
		return System{}, err
	}
	realCount := len(equations)

	var virtualNodes []VirtualNode
	for _, eq := range equations {
		virtualNodes = append(virtualNodes, ExtractVirtualNodes(eq, realCount, strategy)...)
	}

	forwarder := make(map[float64]int, len(virtualNodes))
	for i, vn := range virtualNodes {
		forwarder[vn.Address] = realCount + i
	}
	intForwarder := make(map[int]int, len(forwarder))
	for addr, col := range forwarder {
		intForwarder[int(addr)] = col
	}

	size := realCount + len(virtualNodes)
	weights := make([][]float64, size)
	freeValues := make([]float64, size)

	for i, eq := range equations {
		w := EquationWriter{Equation: eq, Renumerator: intForwarder}
		weights[i] = w.ToCoefficientsArray(size)
		freeValues[i] = w.ToFreeValue()
	}
	for i, vn := range virtualNodes {
		w := VirtualNodeWriter{VirtualNode: vn, VirtualNodeNumber: i, RealVariableNumber: realCount}
		row := realCount + i
		weights[row] = w.ToCoefficientsArray(size)
		freeValues[row] = w.ToFreeValue()
	}

	return System{Weights: weights, FreeValues: freeValues, RealVariables: realCount, AddressForwarder: forwarder}, nil
}

// Output wraps a solved vector, exposing only the real-node values by
// default while keeping virtual-node values reachable by address (spec
// §4.F/§4.G).
type Output struct {
	full             []float64
	real             []float64
	addressForwarder map[float64]int
}

// NewOutput wraps a solver's full solution vector using the forwarding
// table an Assemble call produced.
func NewOutput(full []float64, realVariablesNumber int, forwarder map[float64]int) Output {
	return Output{full: full, real: full[:realVariablesNumber], addressForwarder: forwarder}
}

// Real returns the values at the model's real node addresses, in
// address order.
func (o Output) Real() []float64 { return o.real }

// At returns the solved value at a node address, following the
// address-forwarder for virtual-node addresses outside the real range.
func (o Output) At(address float64) float64 {
	if col, ok := o.addressForwarder[address]; ok {
		return o.full[col]
	}
	return o.full[int(address)]
}

// Len reports the number of real nodes.
func (o Output) Len() int { return len(o.real) }
