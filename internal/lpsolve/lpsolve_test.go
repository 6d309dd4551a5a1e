// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lpsolve_test

import (
	"testing"

	"github.com/dalzilio/xadd/internal/lpsolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFeasibleEmptyConstraintSet(t *testing.T) {
	ok, err := lpsolve.CheckFeasible(nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckFeasibleOverlappingRange(t *testing.T) {
	// 1 <= x <= 5, expressed as x - 5 <= 0 and -x + 1 <= 0.
	cons := []lpsolve.Constraint{
		{Coeffs: map[string]float64{"x": 1}, Constant: -5},
		{Coeffs: map[string]float64{"x": -1}, Constant: 1},
	}
	ok, err := lpsolve.CheckFeasible(cons)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckFeasibleDisjointRangeIsInfeasible(t *testing.T) {
	// x <= 1 and x >= 5 can never hold together.
	cons := []lpsolve.Constraint{
		{Coeffs: map[string]float64{"x": 1}, Constant: -1},
		{Coeffs: map[string]float64{"x": -1}, Constant: 5},
	}
	ok, err := lpsolve.CheckFeasible(cons)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckFeasibleAcrossTwoVariables(t *testing.T) {
	// x + y <= 10 alone; x and y stay free (each is split into x+ - x-),
	// and the constraint is satisfiable e.g. at x=0, y=0.
	cons := []lpsolve.Constraint{
		{Coeffs: map[string]float64{"x": 1, "y": 1}, Constant: -10},
	}
	ok, err := lpsolve.CheckFeasible(cons)
	require.NoError(t, err)
	assert.True(t, ok)
}
