// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

// MakeCanonical restores the ordering and reduction invariants after an
// operation that could only build correct
// structure locally: min/max/relational operators in Apply, and sgn in
// Unary, both introduce fresh decisions whose id may fall anywhere
// relative to the decisions already present above or below them in the
// diagram, so the freshly built subtree can violate the "decisions
// appear in increasing id order along every root-to-leaf path"
// invariant.
//
// The algorithm recanonicalizes bottom-up: each internal node's children
// are canonicalized first, then the node's own test is reinserted with
// iteIndicator, the generic ternary if-then-else merge (also the engine
// Apply itself would use, generalized to a Boolean "which id is
// smaller" condition instead of an arithmetic/Boolean operator), which
// is the only operation that knows how to interleave a decision
// correctly against subtrees that may already test decisions above or
// below it.
func (s *Store) MakeCanonical(id NodeID) (NodeID, error) {
	if res, ok := s.cache.getCanonical(id); ok {
		return res, nil
	}
	n := s.get(id)
	if n.kind == nodeLeaf {
		s.cache.putCanonical(id, id)
		return id, nil
	}
	lo, err := s.MakeCanonical(n.low)
	if err != nil {
		return 0, err
	}
	hi, err := s.MakeCanonical(n.high)
	if err != nil {
		return 0, err
	}
	cond := s.makeNode(n.dec, FalseLeaf, TrueLeaf)
	res, err := s.iteIndicator(cond, hi, lo)
	if err != nil {
		return 0, err
	}
	s.cache.putCanonical(id, res)
	return res, nil
}

// iteIndicator merges a Boolean indicator diagram cond with two
// (possibly non-Boolean) diagrams hi and lo, splitting recursively on
// whichever of the three diagrams tests the smallest decision id, the
// classic ITE algorithm generalized from Boolean leaves to arbitrary
// leaf expressions.
func (s *Store) iteIndicator(cond, hi, lo NodeID) (NodeID, error) {
	if cond == TrueLeaf {
		return hi, nil
	}
	if cond == FalseLeaf {
		return lo, nil
	}
	if hi == lo {
		return hi, nil
	}
	if res, ok := s.cache.getIte(cond, hi, lo); ok {
		return res, nil
	}

	ncond, nhi, nlo := s.get(cond), s.get(hi), s.get(lo)
	dec := minDecision3(ncond, nhi, nlo)

	condLow, condHigh := cofactor(ncond, cond, dec)
	hiLow, hiHigh := cofactor(nhi, hi, dec)
	loLow, loHigh := cofactor(nlo, lo, dec)

	low, err := s.iteIndicator(condLow, hiLow, loLow)
	if err != nil {
		return 0, err
	}
	high, err := s.iteIndicator(condHigh, hiHigh, loHigh)
	if err != nil {
		return 0, err
	}
	res := s.makeNode(dec, low, high)
	s.cache.putIte(cond, hi, lo, res)
	return res, nil
}

func minDecision3(a, b, c *xnode) decisionID {
	best := decisionID(-1)
	for _, n := range [...]*xnode{a, b, c} {
		if n.kind != nodeInternal {
			continue
		}
		if best == -1 || n.dec < best {
			best = n.dec
		}
	}
	return best
}
