// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd_test

import (
	"testing"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRange builds a diagram over a single variable x: outer tests
// "x <= hi", guarding an inner test "x <= lo" reached only on that
// true branch. When lo > hi, the inner's false cofactor (x > lo) can
// never be reached alongside the outer's true branch (x <= hi), so
// ReduceLP must collapse the inner node to its true-branch leaf.
func buildRange(t *testing.T, s *xadd.Store, lo, hi int64) xadd.NodeID {
	t.Helper()
	x := symbolic.Var("x")
	inner, err := s.MakeDecisionNode(symbolic.Sub(x, symbolic.ConstInt(lo)), false, s.ConstantInt(0), s.ConstantInt(1))
	require.NoError(t, err)
	outer, err := s.MakeDecisionNode(symbolic.Sub(x, symbolic.ConstInt(hi)), false, s.ConstantInt(2), inner)
	require.NoError(t, err)
	return outer
}

func TestReduceLPPrunesInfeasibleBranch(t *testing.T) {
	s := xadd.New()
	// Outer tests "x - 5 <= 0" (low=2, high=inner). Inner tests "x - 10
	// <= 0" (low=0, high=1). Once the outer's high branch has committed
	// to x <= 5, the inner's low cofactor (x > 10) is infeasible and
	// ReduceLP must collapse the inner node down to its high leaf, 1.
	root := buildRange(t, s, 10, 5)

	res, err := s.ReduceLP(root)
	require.NoError(t, err)

	v, err := s.Evaluate(res, map[string]float64{"x": 0}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(res, map[string]float64{"x": 20}, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestReduceLPPrunesWithExternalPrecondition(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	// "x + 5 <= 0" (i.e. x <= -5): low (x > -5) => 1, high (x <= -5) => 0.
	// Neither branch is infeasible on its own, so ReduceLP with no
	// precondition must leave the node untouched.
	node, err := s.MakeDecisionNode(symbolic.Add(x, symbolic.ConstInt(5)), false, s.ConstantInt(1), s.ConstantInt(0))
	require.NoError(t, err)

	res, err := s.ReduceLP(node)
	require.NoError(t, err)
	assert.Equal(t, node, res)

	// Under the external precondition "x >= 0", the high branch (x <= -5)
	// contradicts the precondition and can never be reached, so ReduceLP
	// must collapse the whole node down to the low leaf, 1 — the S5-style
	// scenario a path-derived context alone cannot express, since "x >= 0"
	// never appears as a decision inside this diagram.
	xGeqZero := symbolic.Neg(x) // normalized to "expr <= 0": -x <= 0
	res, err = s.ReduceLP(node, xGeqZero)
	require.NoError(t, err)
	assert.True(t, s.IsLeaf(res))

	v, err := s.Evaluate(res, map[string]float64{"x": -100}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestReduceLPLeavesBooleanDecisionsAlone(t *testing.T) {
	s := xadd.New()
	node := s.BooleanVar("p")
	res, err := s.ReduceLP(node)
	require.NoError(t, err)
	assert.Equal(t, node, res)
}

func TestReduceLPLeavesEqualityDecisionsAlone(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	node, err := s.MakeEqualityNode(x, s.ConstantInt(0), s.ConstantInt(1))
	require.NoError(t, err)
	res, err := s.ReduceLP(node)
	require.NoError(t, err)
	assert.Equal(t, node, res)
}
