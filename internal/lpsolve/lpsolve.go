// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package lpsolve is the LP backend ReduceLP delegates feasibility
// queries to, wrapping gonum's simplex solver behind an interface that
// only ever asks a single question: is this conjunction of linear
// inequalities satisfiable by some assignment of real numbers. There is
// no analogue of this package in dalzilio/rudd (a pure Boolean library
// with no notion of a continuous constraint): it is
// grounded in ReduceLP's requirement that it
// discharge feasibility to "an external LP/MILP collaborator", using
// gonum.org/v1/gonum/optimize/convex/lp, the LP solver present in the
// example corpus's dependency ecosystem.
package lpsolve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Constraint represents the linear inequality "sum(coeffs[v]*v) +
// constant <= 0" over real-valued variables.
type Constraint struct {
	Coeffs   map[string]float64
	Constant float64
}

// ErrUnavailable is returned when the solver could not determine
// feasibility, either because the underlying simplex solve errored for
// a reason other than infeasibility (numerical issues, degenerate
// input) or because the constraint set was malformed. Callers (ReduceLP)
// are expected to treat it as SolverUnavailable and keep the branch
// rather than fail the caller's operation.
var ErrUnavailable = errors.New("lpsolve: solver unavailable")

// CheckFeasible reports whether the conjunction of constraints has a
// solution in the reals. An empty constraint set is trivially feasible.
//
// Internally each free (unrestricted-sign) variable x is split into the
// difference of two non-negative variables x+ - x-, and each inequality
// gets a non-negative slack variable, turning "sum a_i*x_i + c <= 0"
// into "sum a_i*(x_i+ - x_i-) + s = -c, s >= 0", the equality-constrained
// standard form gonum's simplex expects. Feasibility is then "does a
// zero-cost simplex solve succeed" rather than an optimization.
func CheckFeasible(constraints []Constraint) (bool, error) {
	if len(constraints) == 0 {
		return true, nil
	}

	varNames := collectVars(constraints)
	numVars := len(varNames)
	numCons := len(constraints)
	// columns: [x1+, x1-, x2+, x2-, ..., s1, s2, ..., sNumCons]
	numCols := 2*numVars + numCons

	a := mat.NewDense(numCons, numCols, nil)
	b := make([]float64, numCons)
	c := make([]float64, numCols) // zero objective: feasibility only

	for row, cons := range constraints {
		for i, name := range varNames {
			coeff := cons.Coeffs[name]
			a.Set(row, 2*i, coeff)
			a.Set(row, 2*i+1, -coeff)
		}
		a.Set(row, 2*numVars+row, 1)
		b[row] = -cons.Constant
	}

	// gonum's simplex requires b >= 0; negate rows where it isn't,
	// which is valid since it just flips the equality's sign.
	for row := 0; row < numCons; row++ {
		if b[row] < 0 {
			b[row] = -b[row]
			for col := 0; col < numCols; col++ {
				a.Set(row, col, -a.At(row, col))
			}
		}
	}

	_, _, err := lp.Simplex(c, a, b, 0, nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, lp.ErrInfeasible):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

func collectVars(constraints []Constraint) []string {
	seen := make(map[string]bool)
	var names []string
	for _, cons := range constraints {
		for name := range cons.Coeffs {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
