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

func TestUnarySgnDistinguishesBoundaryFromNegative(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	leaf := s.Terminal(x)
	res, err := s.Unary(xadd.UnarySgn, leaf)
	require.NoError(t, err)

	cases := map[float64]float64{-3: -1, 0: 0, 4: 1}
	for x, want := range cases {
		v, err := s.Evaluate(res, map[string]float64{"x": x}, true)
		require.NoError(t, err)
		assert.Equalf(t, want, v, "sgn(%v)", x)
	}
}

func TestUnarySgnOnConstantFoldsDirectly(t *testing.T) {
	s := xadd.New()
	leaf := s.ConstantInt(-5)
	res, err := s.Unary(xadd.UnarySgn, leaf)
	require.NoError(t, err)
	assert.Equal(t, "-1", s.Leaf(res).String())
}

func TestMakeCanonicalIsIdempotent(t *testing.T) {
	s := xadd.New()
	x := symbolic.Var("x")
	leaf := s.Terminal(x)
	res, err := s.Unary(xadd.UnarySgn, leaf)
	require.NoError(t, err)
	again, err := s.MakeCanonical(res)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}
