// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import "github.com/dalzilio/xadd/symbolic"

// Substitute specializes a diagram under a (possibly partial) binding of
// variable names to symbolic expressions. A decision
// whose every variable becomes bound resolves statically, pruning the
// branch that can no longer be taken; a decision with some variables
// still free is rebuilt with the substituted expression, since its
// coefficients or constant term may have changed. This generalizes
// rudd's Restrict (operations.go, bdd_restrict), which can only ever
// resolve a decision fully because BDD variables are atomic.
//
// Binding a variable can change a decision's linear form enough that it
// registers a new, strictly-larger decision id in the append-only
// decision registry, while an untouched subtree beneath it keeps its old,
// smaller id — the node rebuilt at that point would then have a parent
// decision id greater than its child's, breaking the strictly-increasing
// root-to-leaf ordering invariant. Substitute runs MakeCanonical once on
// the finished result to restore it, the same way Apply and Unary do for
// the operators that can introduce this same problem.
func (s *Store) Substitute(id NodeID, bindings map[string]*symbolic.Expr) (NodeID, error) {
	if len(bindings) == 0 {
		return id, nil
	}
	res, err := s.substituteRec(id, bindings)
	if err != nil {
		return 0, err
	}
	return s.MakeCanonical(res)
}

func (s *Store) substituteRec(id NodeID, bindings map[string]*symbolic.Expr) (NodeID, error) {
	n := s.get(id)
	if n.kind == nodeLeaf {
		return s.internLeaf(n.expr.Substitute(bindings)), nil
	}

	d := s.decisions.get(n.dec)
	expr := decisionExpr(d)
	substituted := expr.Substitute(bindings)

	if c, ok := substituted.AsConstant(); ok {
		if resolvedTrue(d, c) {
			return s.substituteRec(n.high, bindings)
		}
		return s.substituteRec(n.low, bindings)
	}

	low, err := s.substituteRec(n.low, bindings)
	if err != nil {
		return 0, err
	}
	high, err := s.substituteRec(n.high, bindings)
	if err != nil {
		return 0, err
	}
	if d.kind == decisionEquality {
		return s.MakeEqualityNode(substituted, low, high)
	}
	return s.MakeDecisionNode(substituted, d.kind == decisionBoolean, low, high)
}

// decisionExpr rebuilds the symbolic expression a decision was
// registered from, so Substitute can feed it back through
// symbolic.Expr.Substitute.
func decisionExpr(d *decision) *symbolic.Expr {
	if d.kind == decisionBoolean {
		return symbolic.Var(d.atom)
	}
	terms := make([]*symbolic.Expr, 0, len(d.coeffs)+1)
	terms = append(terms, symbolic.Const(d.constant))
	for name, coeff := range d.coeffs {
		terms = append(terms, symbolic.Mul(symbolic.Const(coeff), symbolic.Var(name)))
	}
	return symbolic.Add(terms...)
}

// resolvedTrue reports whether a fully-substituted decision, now a
// constant c, took its high (true) branch: c <= 0 for a linear
// decision, c == 0 for an equality decision, c != 0 for a Boolean atom.
func resolvedTrue(d *decision, c interface{ Sign() int }) bool {
	switch d.kind {
	case decisionBoolean:
		return c.Sign() != 0
	case decisionEquality:
		return c.Sign() == 0
	default:
		return c.Sign() <= 0
	}
}
