// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs defines the error kinds raised by the operator algebra,
// the assembler and the solver adapters.
package errs

import (
	"errors"
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Kind identifies the category of a fractulus error, so callers can
// branch with errors.Is without parsing messages.
type Kind int

const (
	// OrderMismatch: two schemes were added with different orders.
	OrderMismatch Kind = iota
	// EmptyOperand: operate was called with an empty scheme or element.
	EmptyOperand
	// UnsupportedArithmetic: Element arithmetic with an operand the
	// algebra cannot combine (e.g. scheme × scheme).
	UnsupportedArithmetic
	// DomainTooSmall: fewer than 2 nodes were requested in a grid builder.
	DomainTooSmall
	// UnknownStrategy: a virtual-value strategy outside the enum.
	UnknownStrategy
	// SolverFailure: propagated from the linear-algebra back-end.
	SolverFailure
)

func (k Kind) String() string {
	switch k {
	case OrderMismatch:
		return "OrderMismatch"
	case EmptyOperand:
		return "EmptyOperand"
	case UnsupportedArithmetic:
		return "UnsupportedArithmetic"
	case DomainTooSmall:
		return "DomainTooSmall"
	case UnknownStrategy:
		return "UnknownStrategy"
	case SolverFailure:
		return "SolverFailure"
	}
	return "Unknown"
}

// Error is a typed, fatal algebra/assembly/solver error.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Is lets errors.Is match on Kind alone, e.g. errors.Is(err, errs.New(errs.OrderMismatch, "")).
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return false
}

// New builds a Kind-tagged error, formatted the way chk.Err formats
// the rest of this ecosystem's fatal errors.
func New(kind Kind, msg string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf("%s: %s", kind, chk.Err(msg, args...).Error())}
}
