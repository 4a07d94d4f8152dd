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

// Package sample picks the previously-seen solution closest to a new
// submission, so a diff strategy can be pointed at the most relevant
// prior example instead of a fixed reference solution.
package sample

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Key extracts the string a sample should actually be compared on, for
// callers that want to compare something other than the raw sample text
// (e.g. a normalized or line-joined form). A nil Key compares sources
// and samples as-is.
type Key func(s string) string

// Similarity measures how alike two strings are, scaled 0..1. The
// default, Ratio, is go-difflib's QuickRatio: an upper-bound estimate of
// SequenceMatcher.Ratio that is cheap enough to run once per candidate.
type Similarity func(a, b string) float64

// Ratio is the quick character-level similarity coefficient used by
// FindClosest when no Similarity is supplied.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).QuickRatio()
}

// FindClosest returns the sample with the highest Similarity to source,
// and false if samples is empty. Ties keep the first sample seen with
// the maximum score.
func FindClosest(source string, samples []string, metric Similarity, key Key) (closest string, ok bool) {
	if metric == nil {
		metric = Ratio
	}
	if key == nil {
		key = func(s string) string { return s }
	}

	src := key(source)
	var best float64
	found := false
	for _, s := range samples {
		score := metric(src, key(s))
		if !found || score > best {
			best, closest, found = score, s, true
		}
	}
	return closest, found
}
