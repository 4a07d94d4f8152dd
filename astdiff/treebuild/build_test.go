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

package treebuild

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

// kindShape flattens a tree to its pre-order sequence of Kinds, a small
// enough projection that go-cmp's diff output pinpoints exactly where
// two builds of "equivalent" source first diverge in shape.
func kindShape(t *model.Tree) []model.Kind {
	out := []model.Kind{t.Node.Kind}
	for _, c := range t.Children {
		out = append(out, kindShape(c)...)
	}
	return out
}

func parseSrc(t *testing.T, src string) *model.Tree {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, 0)
	require.NoError(t, err)
	tree, err := Build(f)
	require.NoError(t, err)
	return tree
}

const helloSrc = `package main

func add(a, b int) int {
	return a + b
}
`

func TestBuildFileShape(t *testing.T) {
	tree := parseSrc(t, helloSrc)

	require.Equal(t, model.KindFile, tree.Node.Kind)
	require.Equal(t, model.Ident{Name: "main"}, tree.Children[0].Node.Payload)

	decls := tree.Children[len(tree.Children)-1]
	require.Equal(t, model.GroupSlot("Decls"), decls.Node.Payload)
	require.Len(t, decls.Children, 1)

	fn := decls.Children[0]
	require.Equal(t, model.KindFuncDecl, fn.Node.Kind)
	require.Equal(t, model.Ident{Name: "add"}, fn.Children[0].Node.Payload)
}

func TestBuildPreordersIDs(t *testing.T) {
	tree := parseSrc(t, helloSrc)

	seen := map[int]bool{}
	var walk func(*model.Tree)
	walk = func(n *model.Tree) {
		require.False(t, seen[n.ID], "duplicate id %d", n.ID)
		require.Equal(t, len(seen), n.ID, "id %d is not in pre-order", n.ID)
		seen[n.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
	require.Equal(t, tree.Size, len(seen))
}

func TestBuildUngroupsGroupedDecls(t *testing.T) {
	grouped := parseSrc(t, `package main

const (
	a = 1
	b = 2
)
`)
	ungrouped := parseSrc(t, `package main

const a = 1
const b = 2
`)

	groupedDecls := grouped.Children[len(grouped.Children)-1]
	ungroupedDecls := ungrouped.Children[len(ungrouped.Children)-1]
	require.Len(t, groupedDecls.Children, 2)
	require.Len(t, ungroupedDecls.Children, 2)
	require.True(t, model.NodesMatch(groupedDecls.Children[0].Node, ungroupedDecls.Children[0].Node))
	require.True(t, model.NodesMatch(groupedDecls.Children[1].Node, ungroupedDecls.Children[1].Node))
}

func TestBuildShapeStableAcrossRebuilds(t *testing.T) {
	first := parseSrc(t, helloSrc)
	second := parseSrc(t, helloSrc)

	if diff := cmp.Diff(kindShape(first), kindShape(second)); diff != "" {
		t.Fatalf("rebuilding identical source changed tree shape (-first +second):\n%s", diff)
	}
}

func TestBuildRejectsUnsupportedStatement(t *testing.T) {
	fset := token.NewFileSet()
	// select statements are outside the covered grammar (not in the
	// statement allow-list), so this must fail with UnsupportedNode
	// rather than being silently skipped.
	f, err := parser.ParseFile(fset, "", `package main

func wait(c chan int) {
	select {
	case <-c:
	}
}
`, 0)
	require.NoError(t, err)
	_, err = Build(f)
	require.Error(t, err)
	var unsupported diagerr.UnsupportedNode
	require.ErrorAs(t, err, &unsupported)
}
