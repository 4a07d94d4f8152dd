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

func TestNodesMatch(t *testing.T) {
	testCases := []struct {
		name string
		a, b Node
		want bool
	}{
		{
			name: "different kinds never match",
			a:    Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}},
			b:    Node{Kind: KindNumberLit, Payload: NumberLit{Value: "1"}},
			want: false,
		},
		{
			name: "no payload on either side matches on kind alone",
			a:    Node{Kind: KindBlock},
			b:    Node{Kind: KindBlock},
			want: true,
		},
		{
			name: "identical identifiers match",
			a:    Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}},
			b:    Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}},
			want: true,
		},
		{
			name: "renamed identifiers do not match",
			a:    Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}},
			b:    Node{Kind: KindIdentifier, Payload: Ident{Name: "y"}},
			want: false,
		},
		{
			name: "one-sided payload never matches",
			a:    Node{Kind: KindIdentifier, Payload: Ident{Name: "x"}},
			b:    Node{Kind: KindIdentifier},
			want: false,
		},
		{
			name: "group slots must agree",
			a:    Node{Kind: KindGroup, Payload: GroupSlot("Params")},
			b:    Node{Kind: KindGroup, Payload: GroupSlot("Results")},
			want: false,
		},
		{
			name: "operators with same token match",
			a:    Node{Kind: KindBinaryExpr, Payload: Operator{Op: "+"}},
			b:    Node{Kind: KindBinaryExpr, Payload: Operator{Op: "+"}},
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, NodesMatch(tc.a, tc.b))
			require.Equal(t, tc.want, NodesMatch(tc.b, tc.a))
		})
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Identifier", KindIdentifier.String())
	require.Equal(t, "Unknown", Kind(255).String())
}
