// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"fmt"

	"github.com/dalzilio/xadd/symbolic"
)

// NodeID identifies a node (leaf or internal) inside a Store. It plays
// the same role as rudd's Node (nodes.go in dalzilio/rudd), except that
// rudd's Node wraps an index into an array that a garbage collector may
// later reuse for something else, while a NodeID here is permanent for
// the lifetime of its Store: nodes are never freed.
type NodeID int

// FalseLeaf and TrueLeaf are the two Boolean constant leaves, reserved
// at fixed identifiers so client code can compare against them directly,
// mirroring rudd's Bddfalse/Bddtrue (nodes.go).
const (
	FalseLeaf NodeID = 0
	TrueLeaf  NodeID = 1
)

type nodeKindTag int

const (
	nodeLeaf nodeKindTag = iota
	nodeInternal
)

// xnode is the tagged-union representation of one DAG node. A leaf
// carries a symbolic expression ("leaves hold a
// symbolic algebraic expression, possibly a constant"); an internal node
// carries a decision id plus its two cofactors, low for decision-false
// and high for decision-true ("internal nodes"),
// generalizing rudd's buddyNode (nodes.go: level/low/high).
type xnode struct {
	kind nodeKindTag

	// nodeLeaf
	expr *symbolic.Expr

	// nodeInternal
	dec  decisionID
	low  NodeID
	high NodeID
}

func (n *xnode) String() string {
	if n.kind == nodeLeaf {
		return n.expr.String()
	}
	return fmt.Sprintf("ite(%d, %d, %d)", n.dec, n.high, n.low)
}

// get returns the node stored at id, panicking on an id that was never
// interned: an invalid NodeID reaching internal code is a programming
// error (InvariantViolation), never a condition a caller recovers from.
func (s *Store) get(id NodeID) *xnode {
	n, ok := s.nodes[id]
	if !ok {
		panic(newError(InvariantViolation, "dereferenced unknown node id %d", id))
	}
	return n
}

// IsLeaf reports whether id names a terminal node.
func (s *Store) IsLeaf(id NodeID) bool {
	return s.get(id).kind == nodeLeaf
}

// IsInternal reports whether id names a decision node.
func (s *Store) IsInternal(id NodeID) bool {
	return s.get(id).kind == nodeInternal
}

// Leaf returns the symbolic expression at a terminal node. It panics if
// id does not name a leaf; callers that are unsure should check IsLeaf
// first.
func (s *Store) Leaf(id NodeID) *symbolic.Expr {
	n := s.get(id)
	if n.kind != nodeLeaf {
		panic(newError(InvariantViolation, "Leaf called on internal node %d", id))
	}
	return n.expr
}

// Decision, Low, High expose the shape of a decision node. They panic on
// a leaf id.
func (s *Store) Decision(id NodeID) string {
	n := s.internalNode(id)
	return s.decisions.get(n.dec).String()
}

// IsBooleanDecision reports whether the decision tested at internal
// node id is a Boolean atom rather than a linear or equality
// inequality. It panics on a leaf id.
func (s *Store) IsBooleanDecision(id NodeID) bool {
	n := s.internalNode(id)
	return s.decisions.get(n.dec).kind == decisionBoolean
}

func (s *Store) Low(id NodeID) NodeID {
	return s.internalNode(id).low
}

func (s *Store) High(id NodeID) NodeID {
	return s.internalNode(id).high
}

func (s *Store) internalNode(id NodeID) *xnode {
	n := s.get(id)
	if n.kind != nodeInternal {
		panic(newError(InvariantViolation, "decision node accessor called on leaf %d", id))
	}
	return n
}

// internLeaf hash-conses a leaf carrying expr, returning the existing
// NodeID if an equal leaf (by canonical string, since symbolic.Expr.
// Simplify already puts expr into a canonical shape) was already
// created, generalizing the way rudd hash-conses internal nodes by
// (level,low,high) in the unicity table (nodes.go/hashing.go) to leaves
// keyed by their symbolic content instead.
func (s *Store) internLeaf(expr *symbolic.Expr) NodeID {
	expr = expr.Simplify()
	key := "L:" + expr.String()
	if id, ok := s.leafKey[key]; ok {
		return id
	}
	if expr.IsZero() {
		s.leafKey[key] = FalseLeaf
		return FalseLeaf
	}
	if isBooleanOneLeaf(expr) {
		s.leafKey[key] = TrueLeaf
		return TrueLeaf
	}
	id := s.newNodeID()
	s.nodes[id] = &xnode{kind: nodeLeaf, expr: expr}
	s.leafKey[key] = id
	return id
}

// isBooleanOneLeaf reports whether expr is the constant 1, the leaf
// value the engine uses for "true" everywhere a Boolean result is
// expected (Boolean sub-diagrams use leaves 0 and 1).
func isBooleanOneLeaf(expr *symbolic.Expr) bool {
	c, ok := expr.AsConstant()
	return ok && c.Cmp(bigRatOne) == 0
}

// internInternal hash-conses a decision node by (dec,low,high). Reduction
// (make_node in reduce.go) is responsible for never calling this with
// low == high: that collapse must happen before interning, exactly as in
// rudd's bddmakenode / hudd's hmakenode.
func (s *Store) internInternal(dec decisionID, low, high NodeID) NodeID {
	key := internalKey(dec, low, high)
	if id, ok := s.internalTable[key]; ok {
		return id
	}
	id := s.newNodeID()
	s.nodes[id] = &xnode{kind: nodeInternal, dec: dec, low: low, high: high}
	s.internalTable[key] = id
	return id
}

func internalKey(dec decisionID, low, high NodeID) [3]int {
	return [3]int{int(dec), int(low), int(high)}
}

func (s *Store) newNodeID() NodeID {
	id := s.nextNode
	s.nextNode++
	return id
}
