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
	"strconv"
	"strings"
)

// Patch is a single tagged edit operation the patch extractor emits.
// Each variant below renders a stable, user-facing Description and an
// integer Weight approximating the number of affected nodes.
type Patch interface {
	Description() string
	Weight() int
}

// EditPatch relabels a single matched node to the corresponding
// right-side node.
type EditPatch struct {
	From, To *Tree
}

// Description renders `change "NAME_FROM" to "NAME_TO"`.
func (p *EditPatch) Description() string {
	return fmt.Sprintf("change %q to %q", p.From.Name(), p.To.Name())
}

// Weight is always 1 for an Edit.
func (p *EditPatch) Weight() int { return 1 }

// InsertUnderPatch appends one or more right-side subtrees as further
// children of Anchor.
type InsertUnderPatch struct {
	Anchor   *Tree
	Inserted []*Tree
}

// Description renders `insert tree="STR" under node="NAME"` where STR
// is the bracketed list of the inserted subtrees' string forms.
func (p *InsertUnderPatch) Description() string {
	return fmt.Sprintf(`insert tree="%s" under node="%s"`, formatTreeList(p.Inserted), p.Anchor.Name())
}

// Weight is the total node count of the inserted subtrees.
func (p *InsertUnderPatch) Weight() int {
	w := 0
	for _, t := range p.Inserted {
		w += t.Size
	}
	return w
}

// InsertAbovePatch wraps Anchor with Inserted; Path is the sequence of
// child indices from Inserted's root down to the position where Anchor
// slots in.
type InsertAbovePatch struct {
	Anchor   *Tree
	Inserted *Tree
	Path     []int
}

// Description renders `insert tree="STR" above node="NAME"
// new_child_position=PATH`, where STR is Inserted's string form with
// the descendant at Path shown as the literal token
// Place_for_child_node.
func (p *InsertAbovePatch) Description() string {
	child := ChildByPath(p.Inserted, p.Path)
	var rendered string
	if child == nil {
		rendered = p.Inserted.String()
	} else {
		rendered = p.Inserted.stringWithPlaceholder(child)
	}
	return fmt.Sprintf(`insert tree="%s" above node="%s" new_child_position=%s`,
		rendered, p.Anchor.Name(), formatIntPath(p.Path))
}

// Weight is the size of Inserted minus the size of the descendant at
// Path (the part of Inserted that Anchor itself already accounts for).
func (p *InsertAbovePatch) Weight() int {
	child := ChildByPath(p.Inserted, p.Path)
	if child == nil {
		return p.Inserted.Size
	}
	return p.Inserted.Size - child.Size
}

// DeletePatch removes Target from the left side. If DeleteRoot is true,
// the root itself is removed and Kept is a path identifying the single
// subtree to preserve in its place. If DeleteRoot is false, all
// children of Target whose index is not in Kept are removed and the
// root is retained.
type DeletePatch struct {
	Target     *Tree
	DeleteRoot bool
	Kept       []int
}

// Description renders `delete tree "NAME"; delete_root = BOOL;
// not_deleted_descendants = PATH;`.
func (p *DeletePatch) Description() string {
	return fmt.Sprintf("delete tree %q; delete_root = %t; not_deleted_descendants = %s;",
		p.Target.Name(), p.DeleteRoot, formatIntPath(p.Kept))
}

// Weight is the size of Target minus the kept descendant's size when
// DeleteRoot, otherwise the summed size of the deleted (non-kept)
// direct children.
func (p *DeletePatch) Weight() int {
	if p.DeleteRoot {
		child := ChildByPath(p.Target, p.Kept)
		if child == nil {
			return p.Target.Size
		}
		return p.Target.Size - child.Size
	}

	kept := make(map[int]bool, len(p.Kept))
	for _, i := range p.Kept {
		kept[i] = true
	}
	w := 0
	for i, c := range p.Target.Children {
		if !kept[i] {
			w += c.Size
		}
	}
	return w
}

func formatIntPath(path []int) string {
	if len(path) == 0 {
		return "[]"
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatTreeList(trees []*Tree) string {
	parts := make([]string, len(trees))
	for i, t := range trees {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
