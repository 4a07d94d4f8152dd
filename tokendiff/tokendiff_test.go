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

package tokendiff

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exercise-feedback/describe-changes/textpatch"
)

func TestDescribeChangesIdenticalTextYieldsNoPatches(t *testing.T) {
	src := "package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"
	patches := DescribeChanges(src, src)
	require.Empty(t, patches)
}

func TestDescribeChangesIgnoresWhitespaceReformatting(t *testing.T) {
	left := "package main\n\nfunc add(a, b int) int { return a + b }\n"
	right := "package main\n\nfunc add(a,   b   int)   int   {\n\treturn a + b\n}\n"

	patches := DescribeChanges(left, right)
	require.Empty(t, patches, "reformatting alone should not produce token patches")
}

func TestDescribeChangesRenamedIdentifierYieldsReplace(t *testing.T) {
	left := "package main\n\nfunc add() int { return 1 }\n"
	right := "package main\n\nfunc sum() int { return 1 }\n"

	patches := DescribeChanges(left, right)
	require.Len(t, patches, 1)

	rep, ok := patches[0].(*textpatch.ReplacePatch)
	require.True(t, ok)
	require.Equal(t, "sum", rep.Text)
}

func TestDescribeChangesAppendedTokenAtEndYieldsInsert(t *testing.T) {
	left := "package main\n"
	right := "package main\n\nvar x int\n"

	patches := DescribeChanges(left, right)
	require.NotEmpty(t, patches)

	ins, ok := patches[len(patches)-1].(*textpatch.InsertPatch)
	require.True(t, ok)
	require.Equal(t, len(left), ins.Pos)
}

func TestIsJunkFiltersCommentsAndSemicolons(t *testing.T) {
	require.True(t, isJunk(token.COMMENT))
	require.True(t, isJunk(token.SEMICOLON))
	require.False(t, isJunk(token.IDENT))
}

func TestTokenizeDropsComments(t *testing.T) {
	toks := tokenize("package main // trailing comment\n")
	for _, tk := range toks {
		require.NotContains(t, tk.key, "trailing comment")
	}
}

func TestKeysProjectsTokenKey(t *testing.T) {
	toks := []tok{{key: "IDENT:a"}, {key: "IDENT:b"}}
	require.Equal(t, []string{"IDENT:a", "IDENT:b"}, keys(toks))
}
