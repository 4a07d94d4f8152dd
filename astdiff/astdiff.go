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

// Package astdiff is the AST-level entry point: given two Go source
// strings, it parses both, normalizes them into the uniform tree model,
// computes the best subtree alignment, and extracts the ordered list of
// patches describing how to turn the left program into the right one.
package astdiff

import (
	"go/parser"
	"go/token"

	"github.com/exercise-feedback/describe-changes/astdiff/diag"
	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/astdiff/match"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
	"github.com/exercise-feedback/describe-changes/astdiff/patchextract"
	"github.com/exercise-feedback/describe-changes/astdiff/treebuild"
)

// Patch is the description/weight pair exposed to callers outside this
// module. DescribeChanges returns this pair instead of model.Patch
// values so that the concrete *EditPatch etc. types stay out of this
// package's API.
type Patch struct {
	Description string
	Weight      int
}

// DescribeChanges parses left and right as Go source files, builds a
// tree for each, and returns the ordered patch list transforming left's
// tree into right's. A parse error on either side is reported as
// diagerr.ParseFailure; a construct the tree builder does not cover is
// reported as diagerr.UnsupportedNode.
func DescribeChanges(left, right string) ([]Patch, error) {
	lt, err := parseAndBuild(left)
	if err != nil {
		return nil, err
	}
	rt, err := parseAndBuild(right)
	if err != nil {
		return nil, err
	}

	m := match.New()
	raw := patchextract.Extract(m, lt, rt)

	out := make([]Patch, len(raw))
	for i, p := range raw {
		out[i] = Patch{Description: p.Description(), Weight: p.Weight()}
	}
	diag.L.Debugw("describe changes complete", "patches", len(out))
	return out, nil
}

func parseAndBuild(src string) (*model.Tree, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.AllErrors)
	if err != nil {
		return nil, diagerr.ParseFailure{Err: err}
	}
	return treebuild.Build(file)
}
