// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd_test

import (
	"fmt"
	"testing"

	"github.com/dalzilio/xadd"
	"github.com/dalzilio/xadd/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKindMatchesDirectError(t *testing.T) {
	s := xadd.New()
	node := s.Terminal(symbolic.Var("x"))
	_, err := s.Evaluate(node, nil, true)
	require.Error(t, err)
	assert.True(t, xadd.IsKind(err, xadd.PartialAssignment))
	assert.False(t, xadd.IsKind(err, xadd.MalformedDecision))
}

func TestIsKindUnwrapsWrappedError(t *testing.T) {
	base := fmt.Errorf("xadd: %s", "boom")
	wrapped := fmt.Errorf("while doing something: %w", &xadd.Error{Kind: xadd.SolverUnavailable, Msg: base.Error()})
	assert.True(t, xadd.IsKind(wrapped, xadd.SolverUnavailable))
	assert.False(t, xadd.IsKind(wrapped, xadd.MalformedDecision))
}

func TestIsKindRejectsUnrelatedError(t *testing.T) {
	assert.False(t, xadd.IsKind(fmt.Errorf("plain error"), xadd.MalformedDecision))
}
