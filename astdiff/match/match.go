//  Copyright (c) 2023 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package match implements the tree-to-tree correspondence scoring
// described in spec §4.2: for every ordered pair of subtrees, the
// largest number of node-level matches obtainable under one of three
// alignment decisions.
package match

import (
	"github.com/exercise-feedback/describe-changes/astdiff/diag"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

// Decision is how the roots of two trees are chosen to align.
type Decision uint8

const (
	// RootRoot aligns L's root with R's root, pairing children
	// positionally.
	RootRoot Decision = iota
	// RootChild aligns L's root with R.Children[Index], treating the
	// rest of R as wrapping L.
	RootChild
	// ChildRoot aligns L.Children[Index]'s root with R's root,
	// treating the rest of L as to be deleted.
	ChildRoot
)

func (d Decision) String() string {
	switch d {
	case RootRoot:
		return "ROOT_ROOT"
	case RootChild:
		return "ROOT_CHILD"
	case ChildRoot:
		return "CHILD_ROOT"
	default:
		return "UNKNOWN"
	}
}

// Entry is the memoized result for one (L, R) pair: the best score
// obtainable, which decision achieves it, and the index disambiguating
// that decision (for RootRoot, the 0/1 "did the roots themselves
// match" flag; for RootChild/ChildRoot, the child index).
type Entry struct {
	Score    int
	Decision Decision
	Index    int
}

type pairKey struct {
	l, r int
}

// Matcher owns the memoization table for a single left/right tree
// comparison. It must not be reused across unrelated pairs of trees:
// create a new Matcher per comparison, the way Extract expects.
type Matcher struct {
	memo map[pairKey]Entry
}

// New returns an empty Matcher ready to score subtree pairs.
func New() *Matcher {
	return &Matcher{memo: make(map[pairKey]Entry)}
}

// Match returns the memoized best alignment of l against r, computing
// and caching it first if necessary. Runtime is worst-case O(|l|*|r|)
// memo entries, each filled once; the table is keyed by the pair
// (l.ID, r.ID), so IDs must be unique within each of the two trees.
func (m *Matcher) Match(l, r *model.Tree) Entry {
	key := pairKey{l.ID, r.ID}
	if e, ok := m.memo[key]; ok {
		return e
	}

	rootMatch := 0
	if model.NodesMatch(l.Node, r.Node) {
		rootMatch = 1
	}

	// NOTE: children are paired positionally (child i with child i),
	// not via an optimal bipartite alignment. This is a known,
	// deliberate approximation inherited from the original algorithm
	// (spec §9) and must be preserved for parity.
	n := len(l.Children)
	if len(r.Children) < n {
		n = len(r.Children)
	}
	sum := rootMatch
	for i := 0; i < n; i++ {
		sum += m.Match(l.Children[i], r.Children[i]).Score
	}
	best := Entry{Score: sum, Decision: RootRoot, Index: rootMatch}

	// Ties prefer RootRoot over RootChild over ChildRoot, and within a
	// decision the lowest index, because both loops below only replace
	// best on a strict '>' — preserve this for deterministic output.
	for i, rc := range r.Children {
		if s := m.Match(l, rc).Score; s > best.Score {
			best = Entry{Score: s, Decision: RootChild, Index: i}
		}
	}
	for i, lc := range l.Children {
		if s := m.Match(lc, r).Score; s > best.Score {
			best = Entry{Score: s, Decision: ChildRoot, Index: i}
		}
	}

	m.memo[key] = best
	diag.L.Debugw("matched subtree pair", "left", l.Name(), "right", r.Name(), "score", best.Score, "decision", best.Decision.String())
	return best
}

// Len reports how many pairs have been scored so far, for diagnostics.
func (m *Matcher) Len() int { return len(m.memo) }
