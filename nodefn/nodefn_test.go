// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodefn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func identity(address float64) float64 { return address }

func TestGetIntegerAddressReturnsNodeValue(tst *testing.T) {
	chk.PrintTitle("GetIntegerAddressReturnsNodeValue")
	f := New(identity)
	chk.Scalar(tst, "get(2)", 1e-15, f.Get(2), 2)
}

func TestGetFractionalAddressWithoutInterpolatorDegradesToNearestNode(tst *testing.T) {
	chk.PrintTitle("GetFractionalAddressWithoutInterpolatorDegradesToNearestNode")
	f := New(identity)
	chk.Scalar(tst, "get(2.2)", 1e-15, f.Get(2.2), 2)
	chk.Scalar(tst, "get(2.6)", 1e-15, f.Get(2.6), 3)
}

func TestGetFractionalAddressWithLinearInterpolatorInterpolates(tst *testing.T) {
	chk.PrintTitle("GetFractionalAddressWithLinearInterpolatorInterpolates")
	f := WithLinearInterpolator(identity)
	chk.Scalar(tst, "get(2.5)", 1e-9, f.Get(2.5), 2.5)
	chk.Scalar(tst, "get(2.25)", 1e-9, f.Get(2.25), 2.25)
}
