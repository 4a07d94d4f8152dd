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

// Package textpatch holds the three character-offset edit patches that
// both linediff and tokendiff emit. Both strategies describe an edit to
// flat source text, just at different granularities of how they decide
// where the edits fall, so they share one patch representation.
package textpatch

import "fmt"

// Patch is a single edit over byte offsets into the original source.
type Patch interface {
	String() string
	Size() int
}

// DeletePatch cuts bytes in range [Start, Stop).
type DeletePatch struct {
	Start, Stop int
}

func (p *DeletePatch) Size() int { return p.Stop - p.Start }

func (p *DeletePatch) String() string {
	if p.Start+1 == p.Stop {
		return fmt.Sprintf("Delete char #%d", p.Start)
	}
	return fmt.Sprintf("Delete chars #%d - #%d", p.Start, p.Stop-1)
}

// InsertPatch inserts Text immediately before the byte at Pos. If Pos
// equals the length of the source text, Text is appended to its end.
type InsertPatch struct {
	Pos  int
	Text string
}

func (p *InsertPatch) Size() int { return len(p.Text) }

func (p *InsertPatch) String() string {
	return fmt.Sprintf("Insert %q starting from position #%d", p.Text, p.Pos)
}

// ReplacePatch replaces bytes in range [Start, Stop) with Text.
type ReplacePatch struct {
	Start, Stop int
	Text        string
}

func (p *ReplacePatch) Size() int { return p.Stop - p.Start + len(p.Text) }

func (p *ReplacePatch) String() string {
	if p.Start+1 == p.Stop {
		return fmt.Sprintf("Replace char #%d with %q", p.Start, p.Text)
	}
	return fmt.Sprintf("Replace chars #%d - #%d with %q", p.Start, p.Stop-1, p.Text)
}
