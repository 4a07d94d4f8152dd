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

// Package tokendiff describes the change between two source texts as a
// token-granularity diff: lexically identical tokens are matched
// regardless of the whitespace and line breaks between them.
package tokendiff

import (
	"fmt"
	"go/scanner"
	"go/token"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/exercise-feedback/describe-changes/astdiff/diag"
	"github.com/exercise-feedback/describe-changes/textpatch"
)

// tok is one lexical token with its byte offsets in the source it was
// scanned from.
type tok struct {
	key        string
	start, end int
}

// isJunk reports whether a token kind should never participate in the
// diff, mirroring is_junk's ENDMARKER/NEWLINE/DEDENT/COMMENT/NL filter
// in the original: go/scanner's closest equivalents are comments and
// semicolons. Every semicolon is junk, whether written in the source or
// synthesized by the scanner at a line end.
func isJunk(t token.Token) bool {
	return t == token.COMMENT || t == token.SEMICOLON
}

func tokenize(src string) []tok {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var s scanner.Scanner
	s.Init(file, []byte(src), nil, scanner.ScanComments)

	var toks []tok
	for {
		pos, t, lit := s.Scan()
		if t == token.EOF {
			break
		}
		if isJunk(t) {
			continue
		}
		text := lit
		if text == "" {
			text = t.String()
		}
		start := file.Offset(pos)
		toks = append(toks, tok{
			key:   fmt.Sprintf("%s:%s", t.String(), text),
			start: start,
			end:   start + len(text),
		})
	}
	return toks
}

func keys(toks []tok) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.key
	}
	return out
}

// DescribeChanges returns the ordered list of patches transforming left
// into right at token granularity. Inserted/replaced text is sliced
// directly from right between the surrounding tokens' offsets, so
// whitespace and comments the tokenizer dropped are still carried
// through in the patch content.
func DescribeChanges(left, right string) []textpatch.Patch {
	srcToks := tokenize(left)
	tgtToks := tokenize(right)

	m := difflib.NewMatcher(keys(srcToks), keys(tgtToks))
	var patches []textpatch.Patch
	for _, op := range m.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}

		var srcStart, srcEnd, tgtStart, tgtEnd int
		switch {
		case op.I1 < len(srcToks):
			srcStart = srcToks[op.I1].start
		default:
			srcStart = len(left)
		}
		if op.Tag != 'i' {
			srcEnd = srcToks[op.I2-1].end
		}
		if op.Tag != 'd' {
			tgtStart = tgtToks[op.J1].start
			tgtEnd = tgtToks[op.J2-1].end
		}

		switch op.Tag {
		case 'd':
			patches = append(patches, &textpatch.DeletePatch{Start: srcStart, Stop: srcEnd})
		case 'i':
			patches = append(patches, &textpatch.InsertPatch{Pos: srcStart, Text: right[tgtStart:tgtEnd]})
		case 'r':
			patches = append(patches, &textpatch.ReplacePatch{Start: srcStart, Stop: srcEnd, Text: right[tgtStart:tgtEnd]})
		}
	}
	diag.L.Debugw("token diff complete", "patches", len(patches))
	return patches
}
