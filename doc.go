// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package xadd implements eXtended Algebraic Decision Diagrams (XADD): a
data structure for compactly representing and manipulating piecewise
functions over a mixed set of Boolean and real-valued variables, where the
piecewise structure is expressed by nested linear-inequality and Boolean
decisions and leaves carry symbolic algebraic expressions (package
symbolic).

Basics

Every diagram lives inside a Store, which owns a hash-consed DAG of
decision nodes and terminal leaves and assigns each node a stable
non-negative NodeID; identifiers 0 and 1 are permanently reserved for the
constant leaves False and True. Decisions (linear inequalities or Boolean
atoms) are interned separately, by a decisionRegistry embedded in the
Store, and carry identifiers starting at 10000 purely so that printed
output and debugging can tell the two id spaces apart.

Most operations are methods on *Store taking and returning NodeID: Apply
composes two diagrams under an arithmetic/Boolean/relational operator,
Unary applies a leaf-wise transform, Substitute and Evaluate specialize a
diagram under a partial or full assignment, MakeCanonical restores the
ordered/reduced/hash-consed invariants after an operation that could not
maintain them incrementally, and ReduceLP prunes branches that are
infeasible given an accumulated path context, delegating feasibility
queries to the LP backend in internal/lpsolve.

Use of build tags

Unlike the BDD implementation this package is descended from, there is a
single implementation: the model this library follows rules out concurrent
mutation and disk persistence, so there is no need for the reference-
counting garbage collector, resizable node arrays, or dual buddy/hudd
backends that a long-running shared BDD needs. A Store is a plain
in-memory hashmap-backed DAG for the lifetime of the process that created
it; memoization tables may be cleared at any point between top-level
operations without affecting correctness.

Concurrency

A Store is single-threaded cooperative: one client advances one operation
against one store at a time. Wrap a Store in a mutex, or use one Store per
goroutine, if you need concurrent access.
*/
package xadd
