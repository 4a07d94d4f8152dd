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

// Package model defines the uniform tree representation that the AST
// differ matches and patches against, independent of the host grammar
// (see package treebuild for the Go-specific builder).
package model

// Kind is the closed enumeration of node kinds the tree builder may
// produce. Matching on Kind is exhaustive: a Kind not handled by a
// switch in this package or its siblings is a programmer error, not a
// runtime condition.
type Kind uint8

// The node kinds recognized by the uniform tree model. Names follow the
// Go grammar construct they represent rather than Python's, since the
// host language for this implementation is Go (see treebuild).
const (
	KindInvalid Kind = iota

	// KindGroup wraps a homogeneous ordered list of peer nodes
	// belonging to the same parent slot. Its payload is a GroupSlot.
	KindGroup

	// Leaves with a payload.
	KindIdentifier
	KindNumberLit
	KindStringLit
	KindCharLit
	KindBoolLit
	KindEllipsis

	// File-level.
	KindFile
	KindImportSpec
	KindConstSpec
	KindVarSpec
	KindTypeSpec
	KindFuncDecl
	KindField

	// Types.
	KindArrayType
	KindMapType
	KindStructType
	KindInterfaceType
	KindFuncType
	KindChanType

	// Expressions.
	KindBinaryExpr
	KindUnaryExpr
	KindStarExpr
	KindParenExpr
	KindSelectorExpr
	KindIndexExpr
	KindSliceExpr
	KindCallExpr
	KindFuncLit
	KindCompositeLit
	KindKeyValueExpr
	KindTypeAssertExpr

	// Statements.
	KindBlock
	KindExprStmt
	KindAssignStmt
	KindIfStmt
	KindForStmt
	KindRangeStmt
	KindSwitchStmt
	KindTypeSwitchStmt
	KindCaseClause
	KindReturnStmt
	KindBranchStmt
	KindDeclStmt
	KindIncDecStmt
	KindSendStmt
	KindGoStmt
	KindDeferStmt
	KindLabeledStmt
	KindEmptyStmt
)

var kindNames = map[Kind]string{
	KindInvalid:        "Invalid",
	KindGroup:          "Group",
	KindIdentifier:     "Identifier",
	KindNumberLit:      "NumberLit",
	KindStringLit:      "StringLit",
	KindCharLit:        "CharLit",
	KindBoolLit:        "BoolLit",
	KindEllipsis:       "Ellipsis",
	KindFile:           "File",
	KindImportSpec:     "ImportSpec",
	KindConstSpec:      "ConstSpec",
	KindVarSpec:        "VarSpec",
	KindTypeSpec:       "TypeSpec",
	KindFuncDecl:       "FuncDecl",
	KindField:          "Field",
	KindArrayType:      "ArrayType",
	KindMapType:        "MapType",
	KindStructType:     "StructType",
	KindInterfaceType:  "InterfaceType",
	KindFuncType:       "FuncType",
	KindChanType:       "ChanType",
	KindBinaryExpr:     "BinaryExpr",
	KindUnaryExpr:      "UnaryExpr",
	KindStarExpr:       "StarExpr",
	KindParenExpr:      "ParenExpr",
	KindSelectorExpr:   "SelectorExpr",
	KindIndexExpr:      "IndexExpr",
	KindSliceExpr:      "SliceExpr",
	KindCallExpr:       "CallExpr",
	KindFuncLit:        "FuncLit",
	KindCompositeLit:   "CompositeLit",
	KindKeyValueExpr:   "KeyValueExpr",
	KindTypeAssertExpr: "TypeAssertExpr",
	KindBlock:          "Block",
	KindExprStmt:       "ExprStmt",
	KindAssignStmt:     "AssignStmt",
	KindIfStmt:         "If",
	KindForStmt:        "For",
	KindRangeStmt:      "Range",
	KindSwitchStmt:     "Switch",
	KindTypeSwitchStmt: "TypeSwitch",
	KindCaseClause:     "Case",
	KindReturnStmt:     "Return",
	KindBranchStmt:     "Branch",
	KindDeclStmt:       "DeclStmt",
	KindIncDecStmt:     "IncDec",
	KindSendStmt:       "Send",
	KindGoStmt:         "Go",
	KindDeferStmt:      "Defer",
	KindLabeledStmt:    "Labeled",
	KindEmptyStmt:      "Empty",
}

// String renders the node-kind identifier used by the default branch of
// the NAME formatting rule (spec "external interfaces": pk_KIND).
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Payload carries the per-kind data that distinguishes otherwise
// identical kinds (an identifier's name, a literal's text, an
// operator's token, a group's slot name). Two nodes with the same Kind
// and no payload always match; two nodes with payloads match only when
// Equal reports they are interchangeable.
type Payload interface {
	Equal(other Payload) bool
}

// Ident is the payload of an Identifier node.
type Ident struct{ Name string }

// Equal reports whether other is an Ident with the same name.
func (p Ident) Equal(other Payload) bool {
	o, ok := other.(Ident)
	return ok && o.Name == p.Name
}

// NumberLit is the payload of a NumberLit node. Value is the literal's
// source text verbatim (e.g. "0x1A", "3.14", "2i"), compared as text
// rather than as a parsed numeric value.
type NumberLit struct{ Value string }

// Equal reports whether other is a NumberLit with the same text.
func (p NumberLit) Equal(other Payload) bool {
	o, ok := other.(NumberLit)
	return ok && o.Value == p.Value
}

// StringLit is the payload of a StringLit node, value is the quoted
// source text including delimiters.
type StringLit struct{ Value string }

// Equal reports whether other is a StringLit with the same text.
func (p StringLit) Equal(other Payload) bool {
	o, ok := other.(StringLit)
	return ok && o.Value == p.Value
}

// CharLit is the payload of a rune literal.
type CharLit struct{ Value string }

// Equal reports whether other is a CharLit with the same text.
func (p CharLit) Equal(other Payload) bool {
	o, ok := other.(CharLit)
	return ok && o.Value == p.Value
}

// BoolLit is the payload of a true/false literal.
type BoolLit struct{ Value bool }

// Equal reports whether other is a BoolLit with the same value.
func (p BoolLit) Equal(other Payload) bool {
	o, ok := other.(BoolLit)
	return ok && o.Value == p.Value
}

// Operator is the payload attached to nodes whose kind alone does not
// determine behavior: binary/unary/increment operators, assignment
// tokens, branch keywords, channel directions.
type Operator struct{ Op string }

// Equal reports whether other is an Operator with the same token text.
func (p Operator) Equal(other Payload) bool {
	o, ok := other.(Operator)
	return ok && o.Op == p.Op
}

// GroupSlot is the payload of a Group node, naming the parent slot the
// group stands in for (e.g. "Body", "Params", "CallArgs"). Two Group
// nodes match only when their slot names are equal.
type GroupSlot string

// Equal reports whether other is a GroupSlot with the same name.
func (p GroupSlot) Equal(other Payload) bool {
	o, ok := other.(GroupSlot)
	return ok && o == p
}

// Node is a single tagged variant produced by the tree builder: a kind
// plus the optional payload the kind requires.
type Node struct {
	Kind    Kind
	Payload Payload
}

// NodesMatch reports whether a and b match at the node level: equal
// kinds and, when either carries a payload, equal payloads. Nodes
// with no payload on either side match on kind alone.
func NodesMatch(a, b Node) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Payload == nil && b.Payload == nil {
		return true
	}
	if a.Payload == nil || b.Payload == nil {
		return false
	}
	return a.Payload.Equal(b.Payload)
}
