// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import "github.com/dalzilio/xadd/symbolic"

// Apply is the Apply Engine: it composes two
// diagrams under a binary operator by cofactoring both operands on the
// minimum decision id in scope, recursing on each pair of cofactors, and
// rebuilding through the Reduction Engine (makeNode). It is the direct
// generalization of rudd's bddop_ite-driven apply (operations.go,
// bdd_apply): the difference is that a leaf here can require building
// new decision structure (min/max/relational operators comparing two
// symbolic expressions), where a BDD's leaves are only the two Booleans
// and never need that.
//
// Some operators (recorded in canonicalizeAfter) can leave the ordering
// or reduction invariants only locally satisfied, since a fresh decision
// introduced deep in the recursion may need to be reordered relative to
// decisions above it; Apply runs MakeCanonical once on the finished
// result for those operators, rather than after every recursive step,
// to avoid quadratic blowup.
func (s *Store) Apply(op Operator, a, b NodeID) (NodeID, error) {
	res, err := s.applyRec(op, a, b)
	if err != nil {
		return 0, err
	}
	if canonicalizeAfter[op] {
		return s.MakeCanonical(res)
	}
	return res, nil
}

func (s *Store) applyRec(op Operator, a, b NodeID) (NodeID, error) {
	if commutative[op] && a > b {
		a, b = b, a
	}
	if res, ok := s.cache.getApply(op, a, b); ok {
		return res, nil
	}

	na, nb := s.get(a), s.get(b)

	var res NodeID
	var err error
	switch {
	case na.kind == nodeLeaf && nb.kind == nodeLeaf:
		res, err = s.applyLeaves(op, na.expr, nb.expr)
	default:
		dec := minDecision(na, nb)
		lowA, highA := cofactor(na, a, dec)
		lowB, highB := cofactor(nb, b, dec)
		var low, high NodeID
		if low, err = s.applyRec(op, lowA, lowB); err == nil {
			if high, err = s.applyRec(op, highA, highB); err == nil {
				res = s.makeNode(dec, low, high)
			}
		}
	}
	if err != nil {
		return 0, err
	}
	s.cache.putApply(op, a, b, res)
	return res, nil
}

// cofactor returns the (low,high) pair a node contributes when the
// recursion splits on dec: a node whose own test differs from dec, or
// that is a leaf, does not depend on dec and so contributes itself on
// both branches ("expansion by the minimum decision").
func cofactor(n *xnode, id NodeID, dec decisionID) (low, high NodeID) {
	if n.kind == nodeInternal && n.dec == dec {
		return n.low, n.high
	}
	return id, id
}

func minDecision(na, nb *xnode) decisionID {
	switch {
	case na.kind == nodeInternal && nb.kind == nodeInternal:
		if na.dec <= nb.dec {
			return na.dec
		}
		return nb.dec
	case na.kind == nodeInternal:
		return na.dec
	default:
		return nb.dec
	}
}

// applyLeaves is the leaf base case of Apply: arithmetic operators fold
// directly into a new symbolic expression, while min/max/relational
// operators may need to introduce a fresh decision comparing the two
// leaf expressions, since neither leaf is necessarily a constant.
func (s *Store) applyLeaves(op Operator, ea, eb *symbolic.Expr) (NodeID, error) {
	switch op {
	case OpAdd:
		return s.internLeaf(symbolic.Add(ea, eb)), nil
	case OpSub:
		return s.internLeaf(symbolic.Sub(ea, eb)), nil
	case OpProd:
		return s.internLeaf(symbolic.Mul(ea, eb)), nil
	case OpDiv:
		if c, ok := eb.AsConstant(); ok && c.Sign() == 0 {
			return 0, newError(LeafEvaluationError, "division by zero: %s / %s", ea, eb)
		}
		return s.internLeaf(symbolic.Div(ea, eb)), nil
	case OpMin, OpMax:
		return s.applyMinMaxLeaves(op, ea, eb)
	case OpAnd, OpOr:
		return s.applyBooleanLeaves(op, ea, eb)
	default:
		if relational(op) {
			return s.applyRelationalLeaves(op, ea, eb)
		}
		return 0, newError(UnknownOperator, "operator %s has no leaf-level meaning", op)
	}
}

func (s *Store) applyMinMaxLeaves(op Operator, ea, eb *symbolic.Expr) (NodeID, error) {
	diff := symbolic.Sub(ea, eb)
	if c, ok := diff.AsConstant(); ok {
		aSmaller := c.Sign() <= 0
		if aSmaller == (op == OpMin) {
			return s.internLeaf(ea), nil
		}
		return s.internLeaf(eb), nil
	}
	low, high := s.internLeaf(eb), s.internLeaf(ea) // OpMin: high when a<=b
	if op == OpMax {
		low, high = high, low
	}
	return s.MakeDecisionNode(diff, false, low, high)
}

func (s *Store) applyBooleanLeaves(op Operator, ea, eb *symbolic.Expr) (NodeID, error) {
	aTrue, err := leafTruth(ea)
	if err != nil {
		return 0, err
	}
	bTrue, err := leafTruth(eb)
	if err != nil {
		return 0, err
	}
	var res bool
	if op == OpAnd {
		res = aTrue && bTrue
	} else {
		res = aTrue || bTrue
	}
	if res {
		return TrueLeaf, nil
	}
	return FalseLeaf, nil
}

func leafTruth(e *symbolic.Expr) (bool, error) {
	c, ok := e.AsConstant()
	if !ok {
		return false, newError(LeafEvaluationError, "boolean operator applied to non-constant leaf %s", e)
	}
	return c.Sign() != 0, nil
}

// applyRelationalLeaves builds the decision comparing ea and eb. Strict
// (<, >) and non-strict (<=, >=) inequalities canonicalize to the same
// decision, per the boundary-is-measure-zero resolution recorded in
// DESIGN.md.
func (s *Store) applyRelationalLeaves(op Operator, ea, eb *symbolic.Expr) (NodeID, error) {
	switch op {
	case OpLt, OpLeq:
		return s.leqLeaves(ea, eb)
	case OpGt, OpGeq:
		return s.leqLeaves(eb, ea)
	case OpEq:
		return s.eqLeaves(ea, eb)
	case OpNeq:
		eq, err := s.applyRelationalLeaves(OpEq, ea, eb)
		if err != nil {
			return 0, err
		}
		return s.Unary(UnaryNot, eq)
	default:
		return 0, newError(UnknownOperator, "operator %s is not relational", op)
	}
}

func (s *Store) leqLeaves(ea, eb *symbolic.Expr) (NodeID, error) {
	diff := symbolic.Sub(ea, eb)
	if c, ok := diff.AsConstant(); ok {
		if c.Sign() <= 0 {
			return TrueLeaf, nil
		}
		return FalseLeaf, nil
	}
	return s.MakeDecisionNode(diff, false, FalseLeaf, TrueLeaf)
}

// eqLeaves builds ea == eb as a single equality decision on diff = ea -
// eb.
//
// Composing OpEq out of Apply(OpAnd, leq(a,b), leq(b,a)) does not work:
// registerLinear canonicalizes a <= decision's sign by negating it and
// recording reversed so the branch taken still means what the caller
// asked for, but "-diff <= 0" and "diff <= 0" only agree away from the
// boundary - at diff == 0 both are true, so the negation registerLinear
// applies (swapping low and high) actually computes NOT(diff <= 0),
// which is diff > 0, not diff >= 0. leq(a,b) and leq(b,a) then collapse
// onto the same decision id with swapped branches, and ANDing a
// decision with its own swap loses exactly the equality case. Equality
// decisions sidestep this: negating both sides of "diff == 0" never
// changes its truth value, so MakeEqualityNode needs no such swap.
func (s *Store) eqLeaves(ea, eb *symbolic.Expr) (NodeID, error) {
	diff := symbolic.Sub(ea, eb)
	if c, ok := diff.AsConstant(); ok {
		if c.Sign() == 0 {
			return TrueLeaf, nil
		}
		return FalseLeaf, nil
	}
	return s.MakeEqualityNode(diff, FalseLeaf, TrueLeaf)
}
