// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package symbolic_test

import (
	"math/big"
	"testing"

	"github.com/dalzilio/xadd/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifyCombinesLikeTerms(t *testing.T) {
	x := symbolic.Var("x")
	e := symbolic.Add(x, x, symbolic.ConstInt(3))
	assert.Equal(t, "(3+(2*x))", e.String())
}

func TestSimplifyIsCommutative(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	a := symbolic.Add(x, y)
	b := symbolic.Add(y, x)
	assert.Equal(t, a.String(), b.String())
}

func TestLinearExtraction(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	e := symbolic.Add(symbolic.Mul(symbolic.ConstInt(2), x), y, symbolic.ConstInt(-3))
	coeffs, constant, ok := e.Linear()
	require.True(t, ok)
	assert.Equal(t, big.NewRat(2, 1).String(), coeffs["x"].String())
	assert.Equal(t, big.NewRat(1, 1).String(), coeffs["y"].String())
	assert.Equal(t, big.NewRat(-3, 1).String(), constant.String())
}

func TestLinearRejectsProducts(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	_, _, ok := symbolic.Mul(x, y).Linear()
	assert.False(t, ok)
}

func TestLinearRejectsFunctions(t *testing.T) {
	x := symbolic.Var("x")
	_, _, ok := symbolic.Func1("sin", x).Linear()
	assert.False(t, ok)
}

func TestSubstituteAndEval(t *testing.T) {
	x, y := symbolic.Var("x"), symbolic.Var("y")
	e := symbolic.Add(x, y)
	e2 := e.Substitute(map[string]*symbolic.Expr{"x": symbolic.ConstInt(1)})
	assert.Equal(t, "(1+y)", e2.String())
	v, err := e2.Substitute(map[string]*symbolic.Expr{"y": symbolic.ConstInt(2)}).Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestEvalDivisionByZero(t *testing.T) {
	_, err := symbolic.Div(symbolic.ConstInt(1), symbolic.ConstInt(0)).Eval(nil)
	require.Error(t, err)
}

func TestFreeVars(t *testing.T) {
	x, y, z := symbolic.Var("x"), symbolic.Var("y"), symbolic.Var("z")
	e := symbolic.Add(x, symbolic.Mul(y, symbolic.Func1("sin", z)))
	fv := e.FreeVars()
	assert.Len(t, fv, 3)
}
