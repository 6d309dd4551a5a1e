// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"errors"
	"fmt"
)

// Kind enumerates the taxonomy of error conditions the engine can raise.
// It generalizes rudd's single sticky "b.error" field (errors.go in
// dalzilio/rudd) into typed values callers can switch on with errors.As,
// since XADD operations are meant to be composed by client code that needs
// to distinguish, say, a recoverable SolverUnavailable from a fatal
// InvariantViolation.
type Kind int

const (
	// MalformedDecision: a decision is not a linear inequality or a
	// Boolean atom, or is nonlinear.
	MalformedDecision Kind = iota
	// UnknownOperator: an operator string/value is not in the closed set.
	UnknownOperator
	// LeafEvaluationError: leaf arithmetic failed (division by zero, log
	// of a non-positive constant, ...).
	LeafEvaluationError
	// PartialAssignment: Evaluate was called without binding every free
	// variable, under strict mode.
	PartialAssignment
	// SolverUnavailable: pruning was requested but the LP backend is
	// missing or errored. Recovered locally: the branch is kept.
	SolverUnavailable
	// InvariantViolation: an internal bug; fatal.
	InvariantViolation
)

func (k Kind) String() string {
	switch k {
	case MalformedDecision:
		return "MalformedDecision"
	case UnknownOperator:
		return "UnknownOperator"
	case LeafEvaluationError:
		return "LeafEvaluationError"
	case PartialAssignment:
		return "PartialAssignment"
	case SolverUnavailable:
		return "SolverUnavailable"
	case InvariantViolation:
		return "InvariantViolation"
	default:
		return "UnknownErrorKind"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("xadd: %s: %s", e.Kind, e.Msg)
}

func newError(k Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
