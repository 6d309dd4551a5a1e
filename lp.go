// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dalzilio/xadd/internal/lpsolve"
	"github.com/dalzilio/xadd/symbolic"
)

// pathConstraint records that a linear decision's high (negate == false)
// or low (negate == true) branch was taken while descending toward the
// node currently being reduced.
type pathConstraint struct {
	dec    decisionID
	negate bool
}

// ReduceLP is the LP-backed pruning pass: it walks
// the diagram carrying the accumulated linear context of the path taken
// so far, and asks the LP backend whether each branch's extended context
// remains satisfiable before recursing into it. An infeasible branch is
// replaced outright by the (further reduced) other branch, since no
// assignment of the real-valued variables could ever reach it. Boolean
// and equality decisions do not participate in the LP context: they are
// outside the solver's vocabulary (equality tests would need the
// solver's constraint set extended with an == row, which the feasibility
// probe in internal/lpsolve does not model), so ReduceLP recurses
// through them unconditionally.
//
// preconditions are linear inequalities ("expr <= 0") assumed to hold for
// the whole call, folded into every context check alongside the path
// taken so far — the "externally supplied preconditions" half of the
// reduce_lp(id, context=∅) contract, which the path-derived context
// alone cannot express (nothing forces a caller's precondition, such as
// x >= 0, to already appear as a decision inside the diagram).
//
// There is no equivalent of this pass in dalzilio/rudd, whose decisions
// are propositional variables with no notion of a shared linear
// context to become infeasible.
func (s *Store) ReduceLP(id NodeID, preconditions ...*symbolic.Expr) (NodeID, error) {
	pre, err := preconditionConstraints(preconditions)
	if err != nil {
		return 0, err
	}
	return s.reduceLPRec(id, nil, pre, preconditionKey(pre))
}

// preconditionConstraints converts caller-supplied "expr <= 0"
// preconditions into LP rows.
func preconditionConstraints(preconditions []*symbolic.Expr) ([]lpsolve.Constraint, error) {
	cons := make([]lpsolve.Constraint, 0, len(preconditions))
	for _, expr := range preconditions {
		coeffs, constant, ok := expr.Linear()
		if !ok {
			return nil, newError(MalformedDecision, "precondition %q is not a linear inequality", expr.String())
		}
		fc := make(map[string]float64, len(coeffs))
		for name, c := range coeffs {
			f, _ := c.Float64()
			fc[name] = f
		}
		cf, _ := constant.Float64()
		cons = append(cons, lpsolve.Constraint{Coeffs: fc, Constant: cf})
	}
	return cons, nil
}

func (s *Store) reduceLPRec(id NodeID, ctx []pathConstraint, pre []lpsolve.Constraint, preKey string) (NodeID, error) {
	n := s.get(id)
	if n.kind == nodeLeaf {
		return id, nil
	}

	key := contextKey(ctx) + "#" + preKey
	if res, ok := s.cache.getReduceLP(id, key); ok {
		return res, nil
	}

	d := s.decisions.get(n.dec)
	if d.kind != decisionLinear {
		low, err := s.reduceLPRec(n.low, ctx, pre, preKey)
		if err != nil {
			return 0, err
		}
		high, err := s.reduceLPRec(n.high, ctx, pre, preKey)
		if err != nil {
			return 0, err
		}
		res := s.makeNode(n.dec, low, high)
		s.cache.putReduceLP(id, key, res)
		return res, nil
	}

	highCtx := append(append([]pathConstraint{}, ctx...), pathConstraint{n.dec, false})
	lowCtx := append(append([]pathConstraint{}, ctx...), pathConstraint{n.dec, true})

	highFeasible, err := s.checkContext(highCtx, pre)
	if err != nil {
		return 0, err
	}
	lowFeasible, err := s.checkContext(lowCtx, pre)
	if err != nil {
		return 0, err
	}

	var res NodeID
	switch {
	case highFeasible && !lowFeasible:
		res, err = s.reduceLPRec(n.high, ctx, pre, preKey)
	case lowFeasible && !highFeasible:
		res, err = s.reduceLPRec(n.low, ctx, pre, preKey)
	default:
		var low, high NodeID
		if low, err = s.reduceLPRec(n.low, lowCtx, pre, preKey); err == nil {
			if high, err = s.reduceLPRec(n.high, highCtx, pre, preKey); err == nil {
				res = s.makeNode(n.dec, low, high)
			}
		}
	}
	if err != nil {
		return 0, err
	}
	s.cache.putReduceLP(id, key, res)
	return res, nil
}

// checkContext asks the LP backend whether ctx, together with the
// externally supplied preconditions pre, is satisfiable. A solver
// failure degrades to "feasible" (SolverUnavailable
// must never block reduction, it only forfeits the pruning opportunity)
// after logging a warning.
func (s *Store) checkContext(ctx []pathConstraint, pre []lpsolve.Constraint) (bool, error) {
	cons := make([]lpsolve.Constraint, 0, len(ctx)+len(pre))
	cons = append(cons, pre...)
	for _, pc := range ctx {
		d := s.decisions.get(pc.dec)
		coeffs := make(map[string]float64, len(d.coeffs))
		constant, _ := d.constant.Float64()
		for name, c := range d.coeffs {
			cf, _ := c.Float64()
			coeffs[name] = cf
		}
		if pc.negate {
			for k, v := range coeffs {
				coeffs[k] = -v
			}
			constant = -constant
		}
		cons = append(cons, lpsolve.Constraint{Coeffs: coeffs, Constant: constant})
	}

	feasible, err := s.callSolverWithTimeout(cons)
	if err != nil {
		if errors.Is(err, lpsolve.ErrUnavailable) {
			s.cfg.logger.Warn("lp solver unavailable, keeping branch unpruned", "error", err)
			return true, nil
		}
		return false, newError(SolverUnavailable, "lp solve failed: %v", err)
	}
	return feasible, nil
}

// callSolverWithTimeout bounds a single feasibility query to the
// store's configured LP timeout, treating a timeout the same way a
// solver error is treated: as ErrUnavailable, never as infeasibility.
func (s *Store) callSolverWithTimeout(cons []lpsolve.Constraint) (bool, error) {
	type result struct {
		feasible bool
		err      error
	}
	done := make(chan result, 1)
	go func() {
		feasible, err := lpsolve.CheckFeasible(cons)
		done <- result{feasible, err}
	}()
	select {
	case r := <-done:
		return r.feasible, r.err
	case <-time.After(s.cfg.lpTimeout):
		return false, fmt.Errorf("%w: timed out after %s", lpsolve.ErrUnavailable, s.cfg.lpTimeout)
	}
}

func contextKey(ctx []pathConstraint) string {
	var sb strings.Builder
	for _, pc := range ctx {
		fmt.Fprintf(&sb, "%d:%v;", pc.dec, pc.negate)
	}
	return sb.String()
}

// preconditionKey renders pre into a stable cache key, computed once per
// ReduceLP call and threaded down unchanged so reduceLPRec's memo table
// never confuses results computed under different precondition sets.
func preconditionKey(pre []lpsolve.Constraint) string {
	var sb strings.Builder
	for _, c := range pre {
		names := make([]string, 0, len(c.Coeffs))
		for name := range c.Coeffs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&sb, "%s=%v,", name, c.Coeffs[name])
		}
		fmt.Fprintf(&sb, ";%v|", c.Constant)
	}
	return sb.String()
}
