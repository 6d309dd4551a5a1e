// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package xadd

// engineCache holds the memoization tables shared by Apply, Unary,
// MakeCanonical, and ReduceLP. It plays the same conceptual role as
// rudd's cache/applycache/itecache family (cache.go in dalzilio/rudd):
// a per-operator table of previously computed results keyed by
// operands. Where rudd pre-sizes fixed hash-chained arrays sized as a
// ratio of the node table (cacheinit/cacheresize/bdd_prime_gte) because
// a long-lived BDD cannot afford to grow tables under GC pressure, this
// store's caches are just Go maps: a Store's lifetime is one process and
// entries are only ever cleared wholesale (Reset), never resized in
// place.
type engineCache struct {
	apply     map[applyKey]NodeID
	unary     map[unaryKey]NodeID
	canonical map[NodeID]NodeID
	ite       map[iteKey]NodeID
	reduceLP  map[reduceLPKey]NodeID
}

type iteKey struct {
	cond, hi, lo NodeID
}

type applyKey struct {
	op   Operator
	a, b NodeID
}

type unaryKey struct {
	op  UnaryOp
	arg NodeID
	// param carries the exponent for OpPow-style parametrized unary ops;
	// zero for every other operator.
	param string
}

type reduceLPKey struct {
	node    NodeID
	context string
}

func newEngineCache(hint int) *engineCache {
	return &engineCache{
		apply:     make(map[applyKey]NodeID, hint),
		unary:     make(map[unaryKey]NodeID, hint),
		canonical: make(map[NodeID]NodeID, hint),
		ite:       make(map[iteKey]NodeID, hint),
		reduceLP:  make(map[reduceLPKey]NodeID, hint),
	}
}

func (c *engineCache) getIte(cond, hi, lo NodeID) (NodeID, bool) {
	res, ok := c.ite[iteKey{cond, hi, lo}]
	return res, ok
}

func (c *engineCache) putIte(cond, hi, lo, res NodeID) {
	c.ite[iteKey{cond, hi, lo}] = res
}

func (c *engineCache) getApply(op Operator, a, b NodeID) (NodeID, bool) {
	id, ok := c.apply[applyKey{op, a, b}]
	return id, ok
}

func (c *engineCache) putApply(op Operator, a, b, res NodeID) {
	c.apply[applyKey{op, a, b}] = res
}

func (c *engineCache) getUnary(op UnaryOp, arg NodeID, param string) (NodeID, bool) {
	id, ok := c.unary[unaryKey{op, arg, param}]
	return id, ok
}

func (c *engineCache) putUnary(op UnaryOp, arg NodeID, param string, res NodeID) {
	c.unary[unaryKey{op, arg, param}] = res
}

func (c *engineCache) getCanonical(id NodeID) (NodeID, bool) {
	res, ok := c.canonical[id]
	return res, ok
}

func (c *engineCache) putCanonical(id, res NodeID) {
	c.canonical[id] = res
}

func (c *engineCache) getReduceLP(id NodeID, context string) (NodeID, bool) {
	res, ok := c.reduceLP[reduceLPKey{id, context}]
	return res, ok
}

func (c *engineCache) putReduceLP(id NodeID, context string, res NodeID) {
	c.reduceLP[reduceLPKey{id, context}] = res
}
