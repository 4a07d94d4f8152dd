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
	"testing"

	"github.com/stretchr/testify/require"
)

func smallTree() *Tree {
	x := NewLeaf(1, Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}})
	one := NewLeaf(2, Node{Kind: KindNumberLit, Payload: NumberLit{Value: "1"}})
	return NewParent(0, Node{Kind: KindBinaryExpr, Payload: Operator{Op: "+"}}, []*Tree{x, one})
}

func TestTreeNameAndString(t *testing.T) {
	root := smallTree()

	require.Equal(t, "1_ID: x", root.Children[0].Name())
	require.Equal(t, "2_Num: 1", root.Children[1].Name())
	require.Equal(t, "0_BinaryExpr", root.Name())

	require.Equal(t, "0_BinaryExpr: [1_ID: x, 2_Num: 1]", root.String())
	require.Equal(t, 3, root.Size)
}

func TestTreeStringWithPlaceholder(t *testing.T) {
	root := smallTree()

	got := root.stringWithPlaceholder(root.Children[1])
	require.Equal(t, "0_BinaryExpr: [1_ID: x, Place_for_child_node]", got)
}

func TestChildByPath(t *testing.T) {
	root := smallTree()

	require.Same(t, root, ChildByPath(root, nil))
	require.Same(t, root.Children[0], ChildByPath(root, []int{0}))
	require.Nil(t, ChildByPath(root, []int{5}))
	require.Nil(t, ChildByPath(root, []int{0, 0}))
}

func TestGroupNodeName(t *testing.T) {
	g := NewParent(7, Node{Kind: KindGroup, Payload: GroupSlot("Params")}, nil)
	require.Equal(t, "7_Params", g.Name())
}
