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

func TestReservedLeaves(t *testing.T) {
	s := xadd.New()
	assert.True(t, s.IsLeaf(xadd.FalseLeaf))
	assert.True(t, s.IsLeaf(xadd.TrueLeaf))
	assert.Equal(t, "0", s.Leaf(xadd.FalseLeaf).String())
	assert.Equal(t, "1", s.Leaf(xadd.TrueLeaf).String())
}

func TestTerminalHashConsing(t *testing.T) {
	s := xadd.New()
	a := s.Terminal(symbolic.Add(symbolic.Var("x"), symbolic.ConstInt(1)))
	b := s.Terminal(symbolic.Add(symbolic.ConstInt(1), symbolic.Var("x")))
	assert.Equal(t, a, b, "leaves with algebraically equal expressions must intern to the same node")
}

func TestBooleanVarHashConsing(t *testing.T) {
	s := xadd.New()
	a := s.BooleanVar("p")
	b := s.BooleanVar("p")
	assert.Equal(t, a, b)
	assert.NotEqual(t, s.BooleanVar("q"), a)
}

func TestMakeNodeCollapsesEqualBranches(t *testing.T) {
	s := xadd.New()
	leaf := s.ConstantInt(3)
	id, err := s.LinearDecisionVar(symbolic.Var("x"))
	require.NoError(t, err)
	assert.NotEqual(t, leaf, id)

	x, y := symbolic.Var("x"), symbolic.Var("y")
	dec, err := s.MakeDecisionNode(symbolic.Sub(x, y), false, leaf, leaf)
	require.NoError(t, err)
	assert.Equal(t, leaf, dec, "identical branches must collapse instead of creating a redundant test")
}

func TestDegenerateDecisionShortCircuits(t *testing.T) {
	s := xadd.New()
	low, high := s.ConstantInt(0), s.ConstantInt(1)
	// "2 <= 0" is always false: the node must collapse to low.
	id, err := s.MakeDecisionNode(symbolic.ConstInt(2), false, low, high)
	require.NoError(t, err)
	assert.Equal(t, low, id)

	// "-2 <= 0" is always true: the node must collapse to high.
	id, err = s.MakeDecisionNode(symbolic.ConstInt(-2), false, low, high)
	require.NoError(t, err)
	assert.Equal(t, high, id)
}
