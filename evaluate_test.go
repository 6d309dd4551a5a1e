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

func TestEvaluateFollowsBothBranches(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	node, err := s.MakeDecisionNode(x, false, s.ConstantInt(0), s.ConstantInt(1))
	require.NoError(t, err)

	v, err := s.Evaluate(node, map[string]float64{"x": -1}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(node, map[string]float64{"x": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestEvaluateStrictRejectsPartialAssignment(t *testing.T) {
	s := xadd.New()
	x, y := symbolic.Var("x"), symbolic.Var("y")
	sum := symbolic.Add(x, y)
	node := s.Terminal(sum)

	_, err := s.Evaluate(node, map[string]float64{"x": 1}, true)
	require.Error(t, err)
	assert.True(t, xadd.IsKind(err, xadd.PartialAssignment))
}

func TestEvaluateNonStrictOnlyNeedsThePathTaken(t *testing.T) {
	s := xadd.New()
	x, y := symbolic.Var("x"), symbolic.Var("y")
	node, err := s.MakeDecisionNode(x, false, s.ConstantInt(0), s.Terminal(y))
	require.NoError(t, err)

	// x <= 0 is false at x=1, so the diagram takes the low branch, which
	// never looks at y; strict=false must not demand a binding for it.
	v, err := s.Evaluate(node, map[string]float64{"x": 1}, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestFreeVarsCollectsAcrossDecisionsAndLeaves(t *testing.T) {
	s := xadd.New()
	x, y, z := symbolic.Var("x"), symbolic.Var("y"), symbolic.Var("z")
	node, err := s.MakeDecisionNode(x, false, s.Terminal(y), s.Terminal(z))
	require.NoError(t, err)

	free := s.FreeVars(node)
	assert.Equal(t, map[string]struct{}{"x": {}, "y": {}, "z": {}}, free)
}
