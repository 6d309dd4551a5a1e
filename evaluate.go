// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

// Evaluate walks a single root-to-leaf path determined by assign and
// returns the numeric value of the leaf reached. In
// strict mode, every free variable of the diagram - not just those on
// the path actually taken - must be bound, raising PartialAssignment
// otherwise; a caller that knows its diagram only depends on the
// variables it is providing can pass strict=false to skip that
// up-front full-diagram walk.
func (s *Store) Evaluate(id NodeID, assign map[string]float64, strict bool) (float64, error) {
	if strict {
		for v := range s.FreeVars(id) {
			if _, ok := assign[v]; !ok {
				return 0, newError(PartialAssignment, "missing binding for free variable %q", v)
			}
		}
	}
	return s.evalRec(id, assign)
}

func (s *Store) evalRec(id NodeID, assign map[string]float64) (float64, error) {
	n := s.get(id)
	if n.kind == nodeLeaf {
		return n.expr.Eval(assign)
	}

	d := s.decisions.get(n.dec)
	var branchTrue bool

	switch d.kind {
	case decisionBoolean:
		v, ok := assign[d.atom]
		if !ok {
			return 0, newError(PartialAssignment, "missing binding for %q", d.atom)
		}
		branchTrue = v != 0
	default:
		sum, _ := d.constant.Float64()
		for name, coeff := range d.coeffs {
			v, ok := assign[name]
			if !ok {
				return 0, newError(PartialAssignment, "missing binding for %q", name)
			}
			cf, _ := coeff.Float64()
			sum += cf * v
		}
		if d.kind == decisionEquality {
			branchTrue = sum == 0
		} else {
			branchTrue = sum <= 0
		}
	}

	if branchTrue {
		return s.evalRec(n.high, assign)
	}
	return s.evalRec(n.low, assign)
}

// FreeVars returns the set of variable names a diagram depends on,
// across every leaf and decision reachable from id.
func (s *Store) FreeVars(id NodeID) map[string]struct{} {
	seen := make(map[NodeID]bool)
	vars := make(map[string]struct{})
	s.collectVars(id, seen, vars)
	return vars
}

func (s *Store) collectVars(id NodeID, seen map[NodeID]bool, vars map[string]struct{}) {
	if seen[id] {
		return
	}
	seen[id] = true
	n := s.get(id)
	if n.kind == nodeLeaf {
		for v := range n.expr.FreeVars() {
			vars[v] = struct{}{}
		}
		return
	}
	for _, v := range s.decisions.get(n.dec).vars() {
		vars[v] = struct{}{}
	}
	s.collectVars(n.low, seen, vars)
	s.collectVars(n.high, seen, vars)
}
