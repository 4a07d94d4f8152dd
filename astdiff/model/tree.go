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

package model

import (
	"fmt"
	"strings"
)

// Tree is a Node plus its ordered children, a back-reference to its
// parent (nil for the root), and a cached node count for the subtree.
// ID is a pre-order index assigned by the builder, used both as a
// human-readable name component and (paired with another Tree's ID) as
// a small, hash-cheap memoization key by package match.
//
// Trees are immutable once built: the matcher and patch extractor only
// read Parent/Children/Node/Size, they never write to a Tree. Sharing a
// single *Tree between two parents (e.g. reusing a subtree across the
// left and right trees) would violate the parent-pointer invariant and
// is never done by the builder.
type Tree struct {
	ID       int
	Node     Node
	Parent   *Tree
	Children []*Tree
	Size     int
}

// NewLeaf builds a childless Tree.
func NewLeaf(id int, node Node) *Tree {
	return &Tree{ID: id, Node: node, Size: 1}
}

// NewParent builds a Tree from its already-built children, linking
// parent pointers and accumulating Size. Children must not already
// belong to another tree.
func NewParent(id int, node Node, children []*Tree) *Tree {
	t := &Tree{ID: id, Node: node, Children: children, Size: 1}
	for _, c := range children {
		c.Parent = t
		t.Size += c.Size
	}
	return t
}

// Name renders the pk_KIND label used throughout patch descriptions:
// the node's pre-order index, an underscore, and one of "ID: <name>",
// "Num: <value>", the Group's slot name, or the node-kind identifier.
func (t *Tree) Name() string {
	var label string
	switch t.Node.Kind {
	case KindIdentifier:
		label = "ID: " + t.Node.Payload.(Ident).Name
	case KindNumberLit:
		label = "Num: " + t.Node.Payload.(NumberLit).Value
	case KindGroup:
		label = string(t.Node.Payload.(GroupSlot))
	default:
		label = t.Node.Kind.String()
	}
	return fmt.Sprintf("%d_%s", t.ID, label)
}

// String renders the tree as NAME for a leaf, or "NAME: [child1,
// child2, ...]" recursively otherwise.
func (t *Tree) String() string {
	return t.render(nil)
}

// stringWithPlaceholder renders t the same way String does, except the
// subtree rooted at stop (matched by identity) is rendered as the
// literal token Place_for_child_node instead of being expanded. Used by
// InsertAbovePatch.Description to show where an anchor node slots into
// an inserted tree without materializing a temporary, mutated copy.
func (t *Tree) stringWithPlaceholder(stop *Tree) string {
	return t.render(stop)
}

func (t *Tree) render(stop *Tree) string {
	if stop != nil && t == stop {
		return "Place_for_child_node"
	}
	if len(t.Children) == 0 {
		return t.Name()
	}
	parts := make([]string, len(t.Children))
	for i, c := range t.Children {
		parts[i] = c.render(stop)
	}
	return fmt.Sprintf("%s: [%s]", t.Name(), strings.Join(parts, ", "))
}

// ChildByPath descends root through the given child indices in order,
// returning the node found or nil if any index along the way is out of
// range. An empty path returns root itself.
func ChildByPath(root *Tree, path []int) *Tree {
	cur := root
	for _, idx := range path {
		if cur == nil || idx < 0 || idx >= len(cur.Children) {
			return nil
		}
		cur = cur.Children[idx]
	}
	return cur
}
