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

package patchextract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exercise-feedback/describe-changes/astdiff/match"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

func ident(id int, name string) *model.Tree {
	return model.NewLeaf(id, model.Node{Kind: model.KindIdentifier, Payload: model.Ident{Name: name}})
}

func TestExtractIdenticalTreesYieldsNoPatches(t *testing.T) {
	l := model.NewParent(0, model.Node{Kind: model.KindCallExpr}, []*model.Tree{ident(1, "a")})
	r := model.NewParent(0, model.Node{Kind: model.KindCallExpr}, []*model.Tree{ident(1, "a")})

	patches := Extract(match.New(), l, r)
	require.Empty(t, patches)
}

func TestExtractAppendedChildYieldsInsertUnder(t *testing.T) {
	l := model.NewParent(0, model.Node{Kind: model.KindCallExpr}, []*model.Tree{ident(1, "a")})
	r := model.NewParent(0, model.Node{Kind: model.KindCallExpr}, []*model.Tree{ident(1, "a"), ident(2, "b")})

	patches := Extract(match.New(), l, r)
	require.Len(t, patches, 1)

	insert, ok := patches[0].(*model.InsertUnderPatch)
	require.True(t, ok)
	require.Same(t, l, insert.Anchor)
	require.Equal(t, []*model.Tree{r.Children[1]}, insert.Inserted)
	require.Equal(t, 1, insert.Weight())
}

func TestExtractRelabeledRootYieldsEdit(t *testing.T) {
	l := ident(1, "a")
	r := ident(1, "b")

	patches := Extract(match.New(), l, r)
	require.Len(t, patches, 1)

	edit, ok := patches[0].(*model.EditPatch)
	require.True(t, ok)
	require.Same(t, l, edit.From)
	require.Same(t, r, edit.To)
	require.Equal(t, 1, edit.Weight())
	require.Equal(t, `change "1_ID: a" to "1_ID: b"`, edit.Description())
}

func TestExtractWrappedLeftYieldsInsertAbove(t *testing.T) {
	l := ident(1, "a")
	r := model.NewParent(0, model.Node{Kind: model.KindParenExpr}, []*model.Tree{ident(1, "a")})

	patches := Extract(match.New(), l, r)
	require.Len(t, patches, 1)

	above, ok := patches[0].(*model.InsertAbovePatch)
	require.True(t, ok)
	require.Same(t, l, above.Anchor)
	require.Same(t, r, above.Inserted)
	require.Equal(t, []int{0}, above.Path)
}

func TestExtractDroppedChildYieldsDelete(t *testing.T) {
	l := model.NewParent(0, model.Node{Kind: model.KindParenExpr}, []*model.Tree{ident(1, "a")})
	r := ident(1, "a")

	patches := Extract(match.New(), l, r)
	require.Len(t, patches, 1)

	del, ok := patches[0].(*model.DeletePatch)
	require.True(t, ok)
	require.Same(t, l, del.Target)
	require.True(t, del.DeleteRoot)
	require.Equal(t, []int{0}, del.Kept)
}
