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

package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
)

const (
	left  = "package main\n\nfunc add(a, b int) int {\n\treturn a + b\n}\n"
	right = "package main\n\nfunc sum(a, b int) int {\n\treturn a + b\n}\n"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "ast", AST.String())
	require.Equal(t, "line", Line.String())
	require.Equal(t, "token", Token.String())
	require.Equal(t, "unknown", Kind(255).String())
}

func TestRunDispatchesToAST(t *testing.T) {
	patches, err := Run(AST, left, right)
	require.NoError(t, err)
	require.NotEmpty(t, patches)
}

func TestRunDispatchesToLine(t *testing.T) {
	patches, err := Run(Line, left, right)
	require.NoError(t, err)
	require.NotEmpty(t, patches)
}

func TestRunDispatchesToToken(t *testing.T) {
	patches, err := Run(Token, left, right)
	require.NoError(t, err)
	require.NotEmpty(t, patches)
}

func TestRunRejectsUnknownKind(t *testing.T) {
	_, err := Run(Kind(255), left, right)
	require.Error(t, err)
	var invalid diagerr.InvalidSelection
	require.ErrorAs(t, err, &invalid)
}

func TestRunASTPassesThroughParseFailure(t *testing.T) {
	_, err := Run(AST, "package main\nfunc(", right)
	require.Error(t, err)
}

func TestRunAllRunsEveryKindAndAggregatesErrors(t *testing.T) {
	results, err := RunAll([]Kind{AST, Line, Token, Kind(255)}, left, right)
	require.Error(t, err)
	require.Len(t, results, 4)
	require.Equal(t, AST, results[0].Kind)
	require.NoError(t, results[0].Err)
	require.Equal(t, Kind(255), results[3].Kind)
	require.Error(t, results[3].Err)
}

func TestRunAllNoErrorsWhenEveryKindSucceeds(t *testing.T) {
	results, err := RunAll([]Kind{Line, Token}, left, right)
	require.NoError(t, err)
	require.Len(t, results, 2)
}
