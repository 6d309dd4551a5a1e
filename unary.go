// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/xadd/symbolic"
)

// Unary is the Unary Engine: a leaf-wise transform
// applied uniformly to every leaf of a diagram, leaving its decision
// structure untouched, since ite(d, f(hi), f(lo)) is definitionally the
// pointwise image of ite(d, hi, lo) under f. This generalizes rudd's
// bdd_not/quantifier-style single-argument recursions (operations.go) to
// arbitrary algebraic functions.
//
// Two operators are not pure leaf transforms and are handled specially:
//
//   - sgn compares a non-constant leaf against zero, which needs a fresh
//     three-way nested decision rather than a plain expression rewrite;
//   - not treats a leaf as a Boolean constant (0 or nonzero) and swaps it,
//     rather than negating it arithmetically.
//
// param supplies the exponent for UnaryPow and is ignored otherwise.
func (s *Store) Unary(op UnaryOp, id NodeID, param ...float64) (NodeID, error) {
	var p float64
	if op == UnaryPow {
		if len(param) == 0 {
			return 0, newError(MalformedDecision, "pow requires an exponent parameter")
		}
		p = param[0]
	}
	key := fmt.Sprintf("%v", p)
	res, err := s.unaryRec(op, id, p, key)
	if err != nil {
		return 0, err
	}
	if op == UnarySgn {
		return s.MakeCanonical(res)
	}
	return res, nil
}

func (s *Store) unaryRec(op UnaryOp, id NodeID, p float64, key string) (NodeID, error) {
	if res, ok := s.cache.getUnary(op, id, key); ok {
		return res, nil
	}

	n := s.get(id)
	var res NodeID
	var err error

	switch {
	case n.kind == nodeLeaf && op == UnaryNot:
		t, e := leafTruth(n.expr)
		if e != nil {
			err = e
		} else if t {
			res = FalseLeaf
		} else {
			res = TrueLeaf
		}
	case n.kind == nodeLeaf && op == UnarySgn:
		res, err = s.sgnLeaf(n.expr)
	case n.kind == nodeLeaf:
		res, err = s.transformLeaf(op, n.expr, p)
	default:
		var low, high NodeID
		if low, err = s.unaryRec(op, n.low, p, key); err == nil {
			if high, err = s.unaryRec(op, n.high, p, key); err == nil {
				res = s.makeNode(n.dec, low, high)
			}
		}
	}
	if err != nil {
		return 0, err
	}
	s.cache.putUnary(op, id, key, res)
	return res, nil
}

func (s *Store) transformLeaf(op UnaryOp, expr *symbolic.Expr, p float64) (NodeID, error) {
	switch op {
	case UnaryNeg:
		return s.internLeaf(symbolic.Neg(expr)), nil
	case UnaryPos:
		return s.internLeaf(symbolic.Pos(expr)), nil
	case UnaryPow:
		exp := new(big.Rat).SetFloat64(p)
		if exp == nil {
			return 0, newError(MalformedDecision, "pow exponent %v is not a finite number", p)
		}
		return s.internLeaf(symbolic.Pow(expr, symbolic.Const(exp))), nil
	default:
		leaf := symbolic.Func1(op.String(), expr)
		if _, ok := expr.AsConstant(); ok {
			if _, err := leaf.Eval(nil); err != nil {
				return 0, newError(LeafEvaluationError, "%s of constant %s: %v", op, expr, err)
			}
		}
		return s.internLeaf(leaf), nil
	}
}

// sgnLeaf builds the three-way sign test for a non-constant leaf: a
// constant leaf folds directly, otherwise it nests an inner "expr <= 0"
// decision inside an outer "expr == 0" decision, to distinguish
// negative, zero, and positive.
//
// The zero test must be an equality decision, and it must come first:
// when expr's leading coefficient is negative, MakeDecisionNode's
// sign-reversal swap turns "expr <= 0" into NOT(-expr <= 0), i.e.
// expr < 0, which differs from "expr <= 0" exactly at expr == 0 - the
// one point this test exists to catch. Once the outer equality decision
// has ruled out expr == 0, the inner inequality only has to tell
// negative from positive, where the swap is exact.
func (s *Store) sgnLeaf(expr *symbolic.Expr) (NodeID, error) {
	if c, ok := expr.AsConstant(); ok {
		switch {
		case c.Sign() < 0:
			return s.ConstantInt(-1), nil
		case c.Sign() == 0:
			return s.ConstantInt(0), nil
		default:
			return s.ConstantInt(1), nil
		}
	}
	nonZero, err := s.MakeDecisionNode(expr, false, s.ConstantInt(1), s.ConstantInt(-1))
	if err != nil {
		return 0, err
	}
	return s.MakeEqualityNode(expr, nonZero, s.ConstantInt(0))
}
