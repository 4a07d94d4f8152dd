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

// Package treebuild adapts a parsed Go syntax tree (go/ast) into the
// uniform model.Tree form (spec §4.1). This is where grammar coverage
// lives: every construct expected to appear in an exercise solution is
// normalized into model.Node/model.Tree here; anything outside the
// allow-list fails with diagerr.UnsupportedNode rather than being
// guessed at.
package treebuild

import (
	"go/ast"
	"go/token"

	"github.com/exercise-feedback/describe-changes/astdiff/diag"
	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

// Build converts a parsed *ast.File into a model.Tree rooted at a
// KindFile node, or returns diagerr.UnsupportedNode for the first
// construct it cannot normalize.
func Build(file *ast.File) (*model.Tree, error) {
	b := &builder{}
	t, err := b.buildFile(file)
	if err != nil {
		return nil, err
	}
	// A Group node takes its ID only after its items are built, so the
	// IDs handed out during construction are unique but not pre-order;
	// renumber the finished tree so ID order matches a pre-order walk.
	next := 0
	var renumber func(*model.Tree)
	renumber = func(n *model.Tree) {
		n.ID = next
		next++
		for _, c := range n.Children {
			renumber(c)
		}
	}
	renumber(t)
	diag.L.Debugw("built tree", "nodes", t.Size)
	return t, nil
}

// builder hands out unique IDs as it descends. Most nodes reserve their
// ID before any of their children are built; a Group node reserves its
// ID after its items, which is why Build renumbers the finished tree in
// pre-order (spec "NAME formatting": pk is a pre-order integer).
type builder struct {
	next int
}

func (b *builder) id() int {
	id := b.next
	b.next++
	return id
}

func (b *builder) leaf(node model.Node) *model.Tree {
	return model.NewLeaf(b.id(), node)
}

// group builds a Group node wrapping items under the given slot name,
// pruning it entirely (returning nil) if items is empty — empty groups
// never appear in the tree (spec "Normalization rules").
func (b *builder) group(slot string, items []*model.Tree) *model.Tree {
	if len(items) == 0 {
		return nil
	}
	id := b.id()
	return model.NewParent(id, model.Node{Kind: model.KindGroup, Payload: model.GroupSlot(slot)}, items)
}

// appendIfNotNil is the normalization helper used throughout: optional
// slots whose value is absent are pruned rather than represented as an
// empty placeholder child.
func appendIfNotNil(children []*model.Tree, t *model.Tree) []*model.Tree {
	if t == nil {
		return children
	}
	return append(children, t)
}

func (b *builder) buildFile(f *ast.File) (*model.Tree, error) {
	id := b.id()

	name := b.buildIdentNode(f.Name)

	var importChildren, declChildren []*model.Tree
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			specs, err := b.buildGenDeclSpecs(d)
			if err != nil {
				return nil, err
			}
			if d.Tok == token.IMPORT {
				importChildren = append(importChildren, specs...)
			} else {
				declChildren = append(declChildren, specs...)
			}
		case *ast.FuncDecl:
			fn, err := b.buildFuncDecl(d)
			if err != nil {
				return nil, err
			}
			declChildren = append(declChildren, fn)
		default:
			return nil, diagerr.UnsupportedNode{Kind: "file-level declaration"}
		}
	}

	children := []*model.Tree{name}
	children = appendIfNotNil(children, b.group("Imports", importChildren))
	children = appendIfNotNil(children, b.group("Decls", declChildren))

	return model.NewParent(id, model.Node{Kind: model.KindFile}, children), nil
}

// buildGenDeclSpecs ungroups a (possibly parenthesized) GenDecl into
// one node per spec, the way the teacher's translation layer ungroups
// Go's grouped import/const/var declarations: `const ( a = 1; b = 2 )`
// and `const a = 1; const b = 2` normalize to the same tree shape.
func (b *builder) buildGenDeclSpecs(d *ast.GenDecl) ([]*model.Tree, error) {
	var out []*model.Tree
	for _, spec := range d.Specs {
		var (
			t   *model.Tree
			err error
		)
		switch s := spec.(type) {
		case *ast.ImportSpec:
			t, err = b.buildImportSpec(s)
		case *ast.ValueSpec:
			t, err = b.buildValueSpec(s, d.Tok)
		case *ast.TypeSpec:
			t, err = b.buildTypeSpec(s)
		default:
			return nil, diagerr.UnsupportedNode{Kind: "decl spec"}
		}
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (b *builder) buildImportSpec(s *ast.ImportSpec) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree
	if s.Name != nil {
		children = append(children, b.buildIdentNode(s.Name))
	}
	path, err := b.buildExpr(s.Path)
	if err != nil {
		return nil, err
	}
	children = append(children, path)
	return model.NewParent(id, model.Node{Kind: model.KindImportSpec}, children), nil
}

func (b *builder) buildValueSpec(s *ast.ValueSpec, tok token.Token) (*model.Tree, error) {
	id := b.id()

	var names []*model.Tree
	for _, n := range s.Names {
		names = append(names, b.buildIdentNode(n))
	}

	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Names", names))

	if s.Type != nil {
		typ, err := b.buildExpr(s.Type)
		if err != nil {
			return nil, err
		}
		children = append(children, typ)
	}

	var values []*model.Tree
	for _, v := range s.Values {
		vt, err := b.buildExpr(v)
		if err != nil {
			return nil, err
		}
		values = append(values, vt)
	}
	children = appendIfNotNil(children, b.group("Values", values))

	kind := model.KindVarSpec
	if tok == token.CONST {
		kind = model.KindConstSpec
	}
	return model.NewParent(id, model.Node{Kind: kind}, children), nil
}

func (b *builder) buildTypeSpec(s *ast.TypeSpec) (*model.Tree, error) {
	id := b.id()
	name := b.buildIdentNode(s.Name)
	typ, err := b.buildExpr(s.Type)
	if err != nil {
		return nil, err
	}
	return model.NewParent(id, model.Node{Kind: model.KindTypeSpec}, []*model.Tree{name, typ}), nil
}

func (b *builder) buildFuncDecl(d *ast.FuncDecl) (*model.Tree, error) {
	id := b.id()

	name := b.buildIdentNode(d.Name)

	var recvFields []*model.Tree
	if d.Recv != nil {
		fs, err := b.buildFieldListFlat(d.Recv)
		if err != nil {
			return nil, err
		}
		recvFields = fs
	}
	params, err := b.buildFieldListFlat(d.Type.Params)
	if err != nil {
		return nil, err
	}
	var results []*model.Tree
	if d.Type.Results != nil {
		results, err = b.buildFieldListFlat(d.Type.Results)
		if err != nil {
			return nil, err
		}
	}

	children := []*model.Tree{name}
	children = appendIfNotNil(children, b.group("Recv", recvFields))
	children = appendIfNotNil(children, b.group("Params", params))
	children = appendIfNotNil(children, b.group("Results", results))

	if d.Body != nil {
		body, err := b.buildBlock(d.Body)
		if err != nil {
			return nil, err
		}
		children = append(children, body)
	}

	return model.NewParent(id, model.Node{Kind: model.KindFuncDecl}, children), nil
}

// buildFieldListFlat expands each ast.Field into one Field node per
// name (so "a, b int" normalizes the same as "a int; b int"), or a
// single unnamed Field when the list has no names (embedded struct
// fields, unnamed parameters/results).
func (b *builder) buildFieldListFlat(fl *ast.FieldList) ([]*model.Tree, error) {
	if fl == nil {
		return nil, nil
	}
	var out []*model.Tree
	for _, f := range fl.List {
		if len(f.Names) == 0 {
			typ, err := b.buildExpr(f.Type)
			if err != nil {
				return nil, err
			}
			out = append(out, b.buildField(nil, typ, f.Tag))
			continue
		}
		// Build the type subtree fresh per name: a Tree is never shared
		// between two parents (see model.Tree's doc comment), and "a, b
		// int" normalizes to two independent Field nodes each owning
		// their own copy of the int type tree.
		for _, n := range f.Names {
			typ, err := b.buildExpr(f.Type)
			if err != nil {
				return nil, err
			}
			out = append(out, b.buildField(n, typ, f.Tag))
		}
	}
	return out, nil
}

func (b *builder) buildField(name *ast.Ident, typ *model.Tree, tag *ast.BasicLit) *model.Tree {
	id := b.id()
	var children []*model.Tree
	if name != nil {
		children = append(children, b.buildIdentNode(name))
	}
	children = append(children, typ)
	if tag != nil {
		children = append(children, b.buildBasicLitNode(tag))
	}
	return model.NewParent(id, model.Node{Kind: model.KindField}, children)
}

func (b *builder) buildIdentNode(n *ast.Ident) *model.Tree {
	return b.leaf(model.Node{Kind: model.KindIdentifier, Payload: model.Ident{Name: n.Name}})
}
