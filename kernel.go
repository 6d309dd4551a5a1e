// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

import (
	"math/big"

	"github.com/dalzilio/xadd/symbolic"
)

// bigRatOne is the shared constant 1, used to recognize the Boolean-true
// leaf without reallocating a big.Rat on every check.
var bigRatOne = big.NewRat(1, 1)

// Store owns a hash-consed DAG of decision nodes and leaves, plus the
// decision registry and memoization tables an operation needs. It plays
// the role of rudd's buddy (kernel.go in dalzilio/rudd), but backed by
// plain Go maps instead of a resizable node array with reference
// counting and a garbage collector: see doc.go for why that tradeoff is
// the right one here.
type Store struct {
	cfg *config

	nodes         map[NodeID]*xnode
	leafKey       map[string]NodeID
	internalTable map[[3]int]NodeID
	nextNode      NodeID

	decisions *decisionRegistry

	cache *engineCache
}

// New creates an empty Store, pre-seeded with the two reserved constant
// leaves, generalizing rudd's Init (bdd.go) minus the varnum parameter:
// an XADD store never has a fixed variable count, variables and
// decisions are discovered as expressions flow through Apply/Unary.
func New(opts ...Option) *Store {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Store{
		cfg:           cfg,
		nodes:         make(map[NodeID]*xnode, cfg.nodeTableSize),
		leafKey:       make(map[string]NodeID, cfg.nodeTableSize),
		internalTable: make(map[[3]int]NodeID, cfg.nodeTableSize),
		decisions:     newDecisionRegistry(cfg.nodeTableSize / 4),
		cache:         newEngineCache(cfg.cacheSize),
	}

	s.nodes[FalseLeaf] = &xnode{kind: nodeLeaf, expr: symbolic.Zero()}
	s.nodes[TrueLeaf] = &xnode{kind: nodeLeaf, expr: symbolic.One()}
	s.leafKey["L:"+s.nodes[FalseLeaf].expr.String()] = FalseLeaf
	s.leafKey["L:"+s.nodes[TrueLeaf].expr.String()] = TrueLeaf
	s.nextNode = 2

	return s
}

// Size returns the number of distinct nodes (leaves and internal) that
// have been created in the store, analogous to rudd's Stats().Nodenum.
func (s *Store) Size() int {
	return len(s.nodes)
}

// Logger exposes the store's structured logger, used by ReduceLP to
// report a degraded SolverUnavailable condition without failing the
// caller's operation.
func (s *Store) Logger() interface {
	Warn(msg string, args ...any)
} {
	return s.cfg.logger
}

// Reset discards every memoization table entry. Safe to call between
// top-level operations: memo tables never affect correctness, only
// how much recomputation is avoided (doc.go, "Use of build tags").
func (s *Store) Reset() {
	s.cache = newEngineCache(s.cfg.cacheSize)
}
