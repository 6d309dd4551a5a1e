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

func TestApplyAddOnLeaves(t *testing.T) {
	s := xadd.New()
	a := s.ConstantInt(2)
	b := s.ConstantInt(3)
	res, err := s.Apply(xadd.OpAdd, a, b)
	require.NoError(t, err)
	assert.Equal(t, "5", s.Leaf(res).String())
}

func TestApplyMinMaxOnConstants(t *testing.T) {
	s := xadd.New()
	a := s.ConstantInt(2)
	b := s.ConstantInt(3)
	min, err := s.Apply(xadd.OpMin, a, b)
	require.NoError(t, err)
	assert.Equal(t, a, min)

	max, err := s.Apply(xadd.OpMax, a, b)
	require.NoError(t, err)
	assert.Equal(t, b, max)
}

func TestApplyMinCreatesDecision(t *testing.T) {
	s := xadd.New()
	x, y := symbolic.Var("x"), symbolic.Var("y")
	a := s.Terminal(x)
	b := s.Terminal(y)
	res, err := s.Apply(xadd.OpMin, a, b)
	require.NoError(t, err)
	assert.True(t, s.IsInternal(res))

	v, err := s.Evaluate(res, map[string]float64{"x": 1, "y": 5}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(res, map[string]float64{"x": 5, "y": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestApplyEqIsExactAtBoundary(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	a := s.Terminal(x)
	b := s.ConstantInt(3)
	res, err := s.Apply(xadd.OpEq, a, b)
	require.NoError(t, err)

	v, err := s.Evaluate(res, map[string]float64{"x": 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "x == 3 must hold exactly at the boundary")

	v, err = s.Evaluate(res, map[string]float64{"x": 4}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	neq, err := s.Apply(xadd.OpNeq, a, b)
	require.NoError(t, err)

	v, err = s.Evaluate(neq, map[string]float64{"x": 3}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "x != 3 must fail exactly at the boundary")

	v, err = s.Evaluate(neq, map[string]float64{"x": 4}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestApplyGeqIncludesBoundaryApproximately(t *testing.T) {
	// >= collapses onto the same decision as <, so it is only exact away
	// from the boundary; this checks one point on each side of x == 3,
	// where the approximation agrees with the exact comparison, and does
	// not evaluate the boundary itself.
	s := xadd.New()
	x := symbolic.Var("x")
	a := s.Terminal(x)
	b := s.ConstantInt(3)
	res, err := s.Apply(xadd.OpGeq, a, b)
	require.NoError(t, err)

	v, err := s.Evaluate(res, map[string]float64{"x": 5}, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = s.Evaluate(res, map[string]float64{"x": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestApplyDivisionByZeroLeafErrors(t *testing.T) {
	s := xadd.New()
	a := s.ConstantInt(1)
	b := s.ConstantInt(0)
	_, err := s.Apply(xadd.OpDiv, a, b)
	require.Error(t, err)
	assert.True(t, xadd.IsKind(err, xadd.LeafEvaluationError))
}

func TestApplyIsCommutativeUpToNodeIdentity(t *testing.T) {
	s := xadd.New()
	x, y := symbolic.Var("x"), symbolic.Var("y")
	a := s.Terminal(x)
	b := s.Terminal(y)
	ab, err := s.Apply(xadd.OpAdd, a, b)
	require.NoError(t, err)
	ba, err := s.Apply(xadd.OpAdd, b, a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}
