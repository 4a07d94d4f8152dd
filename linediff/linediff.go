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

// Package linediff describes the change between two source texts as a
// line-granularity diff, refined to character patches inside replaced
// line ranges that are close enough to be worth aligning character by
// character.
package linediff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/exercise-feedback/describe-changes/astdiff/diag"
	"github.com/exercise-feedback/describe-changes/textpatch"
)

// cutoff is the minimum character-similarity ratio two lines must clear
// before they're treated as a close match worth diffing internally,
// rather than as a flat line replacement.
const cutoff = 0.75

// index maps a line number within a text to its byte offset, so patches
// can be reported over the whole text rather than per-line.
type index struct {
	lines []string
	lens  []int
}

func newIndex(text string) *index {
	lines := difflib.SplitLines(text)
	lens := make([]int, len(lines))
	for i, l := range lines {
		lens[i] = len(l)
	}
	return &index{lines: lines, lens: lens}
}

func (x *index) offset(line, char int) int {
	sum := 0
	for i := 0; i < line; i++ {
		sum += x.lens[i]
	}
	return sum + char
}

func (x *index) lineStart(line int) int { return x.offset(line, 0) }
func (x *index) lineEnd(line int) int   { return x.offset(line, x.lens[line]) }
func (x *index) subtext(start, end int) string {
	return strings.Join(x.lines[start:end], "")
}

// DescribeChanges returns the ordered list of patches transforming left
// into right, reported as byte offsets into left (for Delete/Replace
// starts) and right (for the inserted/replacement text).
func DescribeChanges(left, right string) []textpatch.Patch {
	src := newIndex(left)
	tgt := newIndex(right)

	m := difflib.NewMatcher(src.lines, tgt.lines)
	var patches []textpatch.Patch
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'r':
			patches = append(patches, replaceWithMatches(src, op.I1, op.I2, tgt, op.J1, op.J2)...)
		case 'd':
			patches = append(patches, &textpatch.DeletePatch{
				Start: src.lineStart(op.I1),
				Stop:  src.lineEnd(op.I2 - 1),
			})
		case 'i':
			patches = append(patches, &textpatch.InsertPatch{
				Pos:  src.lineStart(op.I1),
				Text: tgt.subtext(op.J1, op.J2),
			})
		}
	}
	diag.L.Debugw("line diff complete", "patches", len(patches))
	return patches
}

// replaceWithMatches looks for the single best-matching line pair in
// the two ranges and, if one clears cutoff, recurses into a
// character-level diff of that pair while treating the surrounding
// lines with replaceAuto. Without such a pair it synchronizes the same
// way on the first identical line pair, if the ranges contain one, and
// otherwise falls back to one flat ReplacePatch for the whole range.
func replaceWithMatches(src *index, srcStart, srcEnd int, tgt *index, tgtStart, tgtEnd int) []textpatch.Patch {
	srcEqual, tgtEqual := -1, -1
	bestRatio := cutoff - 0.01
	srcBest, tgtBest := -1, -1

	for j := tgtStart; j < tgtEnd; j++ {
		tgtCur := tgt.lines[j]
		for i := srcStart; i < srcEnd; i++ {
			srcCur := src.lines[i]
			if srcCur == tgtCur {
				if srcEqual == -1 {
					srcEqual, tgtEqual = i, j
				}
				continue
			}

			cm := difflib.NewMatcher(splitBytes(srcCur), splitBytes(tgtCur))
			if cm.RealQuickRatio() <= bestRatio || cm.QuickRatio() <= bestRatio {
				continue
			}
			if r := cm.Ratio(); r > bestRatio {
				bestRatio, srcBest, tgtBest = r, i, j
			}
		}
	}

	if bestRatio < cutoff {
		if srcEqual == -1 {
			return []textpatch.Patch{&textpatch.ReplacePatch{
				Start: src.lineStart(srcStart),
				Stop:  src.lineEnd(srcEnd - 1),
				Text:  tgt.subtext(tgtStart, tgtEnd),
			}}
		}
		// No close match, but an identical line exists: synchronize on it.
		srcBest, tgtBest = srcEqual, tgtEqual
	} else {
		srcEqual = -1
	}

	var out []textpatch.Patch
	out = append(out, replaceAuto(src, srcStart, srcBest, tgt, tgtStart, tgtBest)...)

	if srcEqual == -1 {
		srcClose, tgtClose := src.lines[srcBest], tgt.lines[tgtBest]
		cm := difflib.NewMatcher(splitBytes(srcClose), splitBytes(tgtClose))
		for _, op := range cm.GetOpCodes() {
			switch op.Tag {
			case 'r':
				out = append(out, &textpatch.ReplacePatch{
					Start: src.offset(srcBest, op.I1),
					Stop:  src.offset(srcBest, op.I2),
					Text:  tgtClose[op.J1:op.J2],
				})
			case 'd':
				out = append(out, &textpatch.DeletePatch{
					Start: src.offset(srcBest, op.I1),
					Stop:  src.offset(srcBest, op.I2),
				})
			case 'i':
				out = append(out, &textpatch.InsertPatch{
					Pos:  src.offset(srcBest, op.I1),
					Text: tgtClose[op.J1:op.J2],
				})
			}
		}
	}

	out = append(out, replaceAuto(src, srcBest+1, srcEnd, tgt, tgtBest+1, tgtEnd)...)
	return out
}

// replaceAuto picks the right patch shape for a sub-range that may have
// emptied out on one side after synchronizing on the best-matching pair.
func replaceAuto(src *index, srcStart, srcEnd int, tgt *index, tgtStart, tgtEnd int) []textpatch.Patch {
	switch {
	case srcStart < srcEnd && tgtStart < tgtEnd:
		return replaceWithMatches(src, srcStart, srcEnd, tgt, tgtStart, tgtEnd)
	case srcStart < srcEnd:
		return []textpatch.Patch{&textpatch.DeletePatch{
			Start: src.lineStart(srcStart),
			Stop:  src.lineEnd(srcEnd - 1),
		}}
	case tgtStart < tgtEnd:
		return []textpatch.Patch{&textpatch.InsertPatch{
			Pos:  src.lineStart(srcStart),
			Text: tgt.subtext(tgtStart, tgtEnd),
		}}
	default:
		return nil
	}
}

func splitBytes(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i : i+1]
	}
	return out
}
