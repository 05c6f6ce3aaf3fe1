// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"reflect"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/szajek/fractulus/scheme"
)

func equation(weights map[float64]float64, freeValue float64) LinearEquation {
	return LinearEquation{
		Coefficients: scheme.New(weights, 0).ToCoefficients(1),
		FreeValue:    freeValue,
	}
}

func TestExtractVirtualNodesSymmetry(tst *testing.T) {
	chk.PrintTitle("ExtractVirtualNodesSymmetry")
	eq := equation(map[float64]float64{-1: 2, 3: 3, 1: 1}, 1)

	got := ExtractVirtualNodes(eq, 3, Symmetry)

	want := []VirtualNode{{Address: -1, CorrespondingAddress: 1}, {Address: 3, CorrespondingAddress: 1}}
	assertSameVirtualNodes(tst, got, want)
}

func TestExtractVirtualNodesAsInBorder(tst *testing.T) {
	chk.PrintTitle("ExtractVirtualNodesAsInBorder")
	eq := equation(map[float64]float64{-1: 2, 3: 3, 1: 1}, 1)

	got := ExtractVirtualNodes(eq, 3, AsInBorder)

	want := []VirtualNode{{Address: -1, CorrespondingAddress: 0}, {Address: 3, CorrespondingAddress: 2}}
	assertSameVirtualNodes(tst, got, want)
}

func assertSameVirtualNodes(tst *testing.T, got, want []VirtualNode) {
	tst.Helper()
	if len(got) != len(want) {
		tst.Fatalf("got %v virtual nodes, want %v", got, want)
	}
	index := make(map[VirtualNode]bool, len(want))
	for _, vn := range want {
		index[vn] = true
	}
	for _, vn := range got {
		if !index[vn] {
			tst.Fatalf("unexpected virtual node %v in %v", vn, got)
		}
	}
}

func TestVirtualNodeWriterCoefficientsArray(tst *testing.T) {
	chk.PrintTitle("VirtualNodeWriterCoefficientsArray")
	w := VirtualNodeWriter{
		VirtualNode:        VirtualNode{Address: -1, CorrespondingAddress: 1},
		VirtualNodeNumber:  0,
		RealVariableNumber: 2,
	}
	got := w.ToCoefficientsArray(3)
	want := []float64{0, -1, 1}
	if !reflect.DeepEqual(got, want) {
		tst.Fatalf("got %v, want %v", got, want)
	}
}

func TestOutputAtRealAndVirtualAddresses(tst *testing.T) {
	chk.PrintTitle("OutputAtRealAndVirtualAddresses")
	out := NewOutput([]float64{1, 2, 3, 4}, 2, map[float64]int{-1: 2})
	chk.Scalar(tst, "virtual address -1", 1e-15, out.At(-1), 3)
	chk.Scalar(tst, "real address 0", 1e-15, out.At(0), 1)
}
