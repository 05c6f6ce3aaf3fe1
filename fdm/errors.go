// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import "github.com/szajek/fractulus/errs"

func emptyOperandErr(msg string) error {
	return errs.New(errs.EmptyOperand, msg)
}

func unsupportedArithmeticErr(msg string) error {
	return errs.New(errs.UnsupportedArithmetic, msg)
}
