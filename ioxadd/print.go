// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ioxadd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dalzilio/xadd"
)

// Sprint renders id as a single-line "(decision node node)" bracketed
// S-expression, the format Parse reads back, generalizing rudd's
// one-line Print (stdio.go). A leaf always prints as "([expr])"; an
// internal node's decision prints bracketed ("[expr <= 0]", "[expr ==
// 0]") unless it is a Boolean atom, which prints bare.
func Sprint(s *xadd.Store, id xadd.NodeID) string {
	if s.IsLeaf(id) {
		return fmt.Sprintf("([%s])", s.Leaf(id))
	}
	dec := s.Decision(id)
	if !s.IsBooleanDecision(id) {
		dec = fmt.Sprintf("[%s]", dec)
	}
	return fmt.Sprintf("(%s %s %s)", dec, Sprint(s, s.Low(id)), Sprint(s, s.High(id)))
}

// PrintTable writes a tabular listing of every node reachable from id,
// one row per node, using text/tabwriter the same way rudd's
// print_string does (stdio.go): a compact debugging view rather than a
// re-parsable format.
func PrintTable(w io.Writer, s *xadd.Store, id xadd.NodeID) {
	nodes := reachable(s, id)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range nodes {
		if s.IsLeaf(n) {
			fmt.Fprintf(tw, "%d\t= %s\n", n, s.Leaf(n))
			continue
		}
		fmt.Fprintf(tw, "%d\t? %s\t: low=%d\t high=%d\n", n, s.Decision(n), s.Low(n), s.High(n))
	}
	tw.Flush()
}

// PrintDot writes a GraphViz DOT description of the sub-DAG rooted at
// id, decision nodes as ellipses and leaves as boxes, following the
// layout of rudd's print_dot (stdio.go) adapted to a decision label
// that is a string rather than a variable level.
func PrintDot(w io.Writer, s *xadd.Store, id xadd.NodeID) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	nodes := reachable(s, id)
	fmt.Fprintln(bw, "digraph G {")
	for _, n := range nodes {
		if s.IsLeaf(n) {
			fmt.Fprintf(bw, "  %d [shape=box, label=%q];\n", n, s.Leaf(n).String())
			continue
		}
		fmt.Fprintf(bw, "  %d [shape=ellipse, label=%q];\n", n, s.Decision(n))
		fmt.Fprintf(bw, "  %d -> %d [style=dotted];\n", n, s.Low(n))
		fmt.Fprintf(bw, "  %d -> %d [style=filled];\n", n, s.High(n))
	}
	fmt.Fprintln(bw, "}")
}

// reachable returns every node id in the sub-DAG rooted at id, sorted
// for deterministic output.
func reachable(s *xadd.Store, id xadd.NodeID) []xadd.NodeID {
	seen := map[xadd.NodeID]bool{}
	var walk func(xadd.NodeID)
	walk = func(n xadd.NodeID) {
		if seen[n] {
			return
		}
		seen[n] = true
		if s.IsInternal(n) {
			walk(s.Low(n))
			walk(s.High(n))
		}
	}
	walk(id)
	out := make([]xadd.NodeID, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
