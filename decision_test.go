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

func TestLinearDecisionScaleNormalizes(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	a, err := s.LinearDecisionVar(x)
	require.NoError(t, err)
	b, err := s.LinearDecisionVar(symbolic.Mul(symbolic.ConstInt(2), x))
	require.NoError(t, err)
	assert.Equal(t, a, b, "2x <= 0 and x <= 0 must share a decision")
}

func TestLinearDecisionSignNormalizesWithReversal(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	low, high := s.ConstantInt(0), s.ConstantInt(1)

	posNode, err := s.MakeDecisionNode(x, false, low, high) // x <= 0
	require.NoError(t, err)
	negNode, err := s.MakeDecisionNode(symbolic.Neg(x), false, low, high) // -x <= 0
	require.NoError(t, err)

	assert.NotEqual(t, posNode, negNode, "sign-flipped decisions must not silently share branches")
	assert.Equal(t, s.Decision(posNode), s.Decision(negNode), "the two register the same canonical decision")

	v, err := s.Evaluate(posNode, map[string]float64{"x": -1}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(negNode, map[string]float64{"x": -1}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "reversal must flip which branch a caller-supplied low/high lands on")
}

func TestEqualityDecisionIsExactAtBoundary(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	diff := symbolic.Sub(x, symbolic.ConstInt(3))
	node, err := s.MakeEqualityNode(diff, s.ConstantInt(0), s.ConstantInt(1))
	require.NoError(t, err)

	v, err := s.Evaluate(node, map[string]float64{"x": 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(node, map[string]float64{"x": 3.0001}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestMalformedDecisionRejectsNonlinearExpr(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	_, err := s.LinearDecisionVar(symbolic.Mul(x, x))
	require.Error(t, err)
	assert.True(t, xadd.IsKind(err, xadd.MalformedDecision))
}
