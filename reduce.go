// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"math/big"

	"github.com/dalzilio/xadd/symbolic"
)

// makeNode is the Reduction Engine: it enforces the
// "no redundant test" invariant by collapsing to low whenever the two
// cofactors are identical, and otherwise hash-conses the (dec,low,high)
// triple through the node table. This is the direct analogue of rudd's
// bddmakenode (bkernel.go) / hmakenode (hkernel.go), simplified because
// there is no reference count to bump and no chance of the call
// triggering a garbage collection or resize.
func (s *Store) makeNode(dec decisionID, low, high NodeID) NodeID {
	if low == high {
		return low
	}
	return s.internInternal(dec, low, high)
}

// MakeDecisionNode registers expr as a decision (or looks it up if
// already interned) and builds the ite(decision, high, low) node,
// applying two shortcuts:
//
//   - a decision that collapses to a statically known constant (every
//     coefficient zero) short-circuits directly to low or high instead
//     of creating a node that could never take one of its branches;
//   - a decision that had to be sign-normalized (registerLinear
//     reporting reversed) swaps low and high, since the interned
//     decision is now the logical negation of what the caller asked for
//     everywhere except at expr == 0, where both hold and the swap sends
//     that point to the caller's low branch.
//
// isBoolean selects whether expr is treated as a linear inequality
// (isBoolean == false) or an opaque Boolean atom (isBoolean == true).
func (s *Store) MakeDecisionNode(expr *symbolic.Expr, isBoolean bool, low, high NodeID) (NodeID, error) {
	res, err := s.decisions.registerExpr(expr, isBoolean)
	if err != nil {
		return 0, err
	}
	if res.constant {
		if res.constTrue {
			return high, nil
		}
		return low, nil
	}
	if res.reversed {
		low, high = high, low
	}
	return s.makeNode(res.id, low, high), nil
}

// MakeEqualityNode registers expr == 0 as an equality decision and
// builds the ite node for it. Unlike MakeDecisionNode, no branch swap is
// ever needed: registerLinearEq's sign normalization leaves the truth
// value of the test unchanged (see registerLinearEq).
func (s *Store) MakeEqualityNode(expr *symbolic.Expr, low, high NodeID) (NodeID, error) {
	res, err := s.decisions.registerEqExpr(expr)
	if err != nil {
		return 0, err
	}
	if res.constant {
		if res.constTrue {
			return high, nil
		}
		return low, nil
	}
	return s.makeNode(res.id, low, high), nil
}

// Terminal interns a leaf carrying an arbitrary symbolic expression,
// generalizing rudd's ithvar/Constant-style leaf constructors to
// arbitrary algebra rather than a fixed pair of constants.
func (s *Store) Terminal(expr *symbolic.Expr) NodeID {
	return s.internLeaf(expr)
}

// ConstantInt interns a leaf carrying the integer constant n.
func (s *Store) ConstantInt(n int64) NodeID {
	return s.internLeaf(symbolic.ConstInt(n))
}

// ConstantRat interns a leaf carrying the rational constant r.
func (s *Store) ConstantRat(r *big.Rat) NodeID {
	return s.internLeaf(symbolic.Const(r))
}

// BooleanVar builds ite(atom, TrueLeaf, FalseLeaf), the smallest diagram
// that tests a single Boolean variable, mirroring rudd's Ithvar
// (kernel.go).
func (s *Store) BooleanVar(name string) NodeID {
	res := s.decisions.registerAtom(name)
	return s.makeNode(res.id, FalseLeaf, TrueLeaf)
}

// LinearDecisionVar builds ite(expr <= 0, TrueLeaf, FalseLeaf) directly,
// a convenience for constructing test diagrams without going through
// Apply, used by tests.
func (s *Store) LinearDecisionVar(expr *symbolic.Expr) (NodeID, error) {
	return s.MakeDecisionNode(expr, false, FalseLeaf, TrueLeaf)
}
