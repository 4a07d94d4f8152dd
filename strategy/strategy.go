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

// Package strategy selects among the three change-description
// strategies (AST, line, token) by a caller-supplied Kind, the way the
// teacher's analyzer.Analyzer dispatches to a SubAnalyzer per detected
// build-file format.
package strategy

import (
	"go.uber.org/multierr"

	"github.com/exercise-feedback/describe-changes/astdiff"
	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/linediff"
	"github.com/exercise-feedback/describe-changes/textpatch"
	"github.com/exercise-feedback/describe-changes/tokendiff"
)

// Kind names one of the three supported strategies.
type Kind uint8

const (
	// AST describes changes as a tree-edit script (package astdiff).
	AST Kind = iota
	// Line describes changes as a line/char diff (package linediff).
	Line
	// Token describes changes as a token diff (package tokendiff).
	Token
)

func (k Kind) String() string {
	switch k {
	case AST:
		return "ast"
	case Line:
		return "line"
	case Token:
		return "token"
	default:
		return "unknown"
	}
}

// Patch is the common shape every strategy's result is normalized to:
// a human-readable description and an approximate size of the edit.
type Patch struct {
	Description string
	Weight      int
}

// Run dispatches to the strategy named by kind, normalizing its output
// to []Patch. It returns diagerr.InvalidSelection for an unrecognized
// Kind, and passes through whatever error the AST strategy reports
// (line and token strategies are pure and never fail).
func Run(kind Kind, left, right string) ([]Patch, error) {
	switch kind {
	case AST:
		raw, err := astdiff.DescribeChanges(left, right)
		if err != nil {
			return nil, err
		}
		out := make([]Patch, len(raw))
		for i, p := range raw {
			out[i] = Patch{Description: p.Description, Weight: p.Weight}
		}
		return out, nil

	case Line:
		return fromTextPatches(linediff.DescribeChanges(left, right)), nil

	case Token:
		return fromTextPatches(tokendiff.DescribeChanges(left, right)), nil

	default:
		return nil, diagerr.InvalidSelection{Kind: kind.String()}
	}
}

func fromTextPatches(raw []textpatch.Patch) []Patch {
	out := make([]Patch, len(raw))
	for i, p := range raw {
		out[i] = Patch{Description: p.String(), Weight: p.Size()}
	}
	return out
}

// Result pairs a Kind with the outcome of running it, for RunAll.
type Result struct {
	Kind    Kind
	Patches []Patch
	Err     error
}

// RunAll runs every kind in kinds against the same (left, right) pair
// and returns one Result per kind in order, plus the aggregate of every
// individual failure (nil if none failed). Aggregating with multierr
// lets a caller inspect every strategy's outcome instead of stopping at
// the first failing one, the same shape analyzer.Analyzer.Run uses when
// running several sub-analyzers over one build file.
func RunAll(kinds []Kind, left, right string) ([]Result, error) {
	results := make([]Result, len(kinds))
	var errs error
	for i, k := range kinds {
		patches, err := Run(k, left, right)
		results[i] = Result{Kind: k, Patches: patches, Err: err}
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return results, errs
}
