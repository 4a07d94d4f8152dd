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

package treebuild

import (
	"go/ast"

	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

func (b *builder) buildBlock(n *ast.BlockStmt) (*model.Tree, error) {
	id := b.id()
	var stmts []*model.Tree
	for _, s := range n.List {
		st, err := b.buildStmt(s)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Body", stmts))
	return model.NewParent(id, model.Node{Kind: model.KindBlock}, children), nil
}

// buildStmt dispatches on the concrete go/ast statement type. Anything
// not in this switch is an UnsupportedNode.
func (b *builder) buildStmt(s ast.Stmt) (*model.Tree, error) {
	switch n := s.(type) {
	case *ast.BlockStmt:
		return b.buildBlock(n)

	case *ast.ExprStmt:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindExprStmt}, []*model.Tree{x}), nil

	case *ast.AssignStmt:
		return b.buildAssignStmt(n)

	case *ast.IfStmt:
		return b.buildIfStmt(n)

	case *ast.ForStmt:
		return b.buildForStmt(n)

	case *ast.RangeStmt:
		return b.buildRangeStmt(n)

	case *ast.SwitchStmt:
		return b.buildSwitchStmt(n)

	case *ast.TypeSwitchStmt:
		return b.buildTypeSwitchStmt(n)

	case *ast.ReturnStmt:
		id := b.id()
		var results []*model.Tree
		for _, r := range n.Results {
			rt, err := b.buildExpr(r)
			if err != nil {
				return nil, err
			}
			results = append(results, rt)
		}
		var children []*model.Tree
		children = appendIfNotNil(children, b.group("Results", results))
		return model.NewParent(id, model.Node{Kind: model.KindReturnStmt}, children), nil

	case *ast.BranchStmt:
		id := b.id()
		var children []*model.Tree
		if n.Label != nil {
			children = append(children, b.buildIdentNode(n.Label))
		}
		node := model.Node{Kind: model.KindBranchStmt, Payload: model.Operator{Op: n.Tok.String()}}
		return model.NewParent(id, node, children), nil

	case *ast.DeclStmt:
		id := b.id()
		gd, ok := n.Decl.(*ast.GenDecl)
		if !ok {
			return nil, diagerr.UnsupportedNode{Kind: "decl statement"}
		}
		specs, err := b.buildGenDeclSpecs(gd)
		if err != nil {
			return nil, err
		}
		var children []*model.Tree
		children = appendIfNotNil(children, b.group("Decls", specs))
		return model.NewParent(id, model.Node{Kind: model.KindDeclStmt}, children), nil

	case *ast.IncDecStmt:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		node := model.Node{Kind: model.KindIncDecStmt, Payload: model.Operator{Op: n.Tok.String()}}
		return model.NewParent(id, node, []*model.Tree{x}), nil

	case *ast.SendStmt:
		id := b.id()
		chanT, err := b.buildExpr(n.Chan)
		if err != nil {
			return nil, err
		}
		value, err := b.buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindSendStmt}, []*model.Tree{chanT, value}), nil

	case *ast.GoStmt:
		id := b.id()
		call, err := b.buildCallExpr(n.Call)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindGoStmt}, []*model.Tree{call}), nil

	case *ast.DeferStmt:
		id := b.id()
		call, err := b.buildCallExpr(n.Call)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindDeferStmt}, []*model.Tree{call}), nil

	case *ast.LabeledStmt:
		id := b.id()
		label := b.buildIdentNode(n.Label)
		stmt, err := b.buildStmt(n.Stmt)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindLabeledStmt}, []*model.Tree{label, stmt}), nil

	case *ast.EmptyStmt:
		return model.NewParent(b.id(), model.Node{Kind: model.KindEmptyStmt}, nil), nil

	default:
		return nil, diagerr.UnsupportedNode{Kind: "statement"}
	}
}

func (b *builder) buildAssignStmt(n *ast.AssignStmt) (*model.Tree, error) {
	id := b.id()

	var targets []*model.Tree
	for _, l := range n.Lhs {
		lt, err := b.buildExpr(l)
		if err != nil {
			return nil, err
		}
		targets = append(targets, lt)
	}

	var values []*model.Tree
	for _, r := range n.Rhs {
		rt, err := b.buildExpr(r)
		if err != nil {
			return nil, err
		}
		values = append(values, rt)
	}

	children := appendIfNotNil(nil, b.group("Targets", targets))
	children = appendIfNotNil(children, b.group("Values", values))
	node := model.Node{Kind: model.KindAssignStmt, Payload: model.Operator{Op: n.Tok.String()}}
	return model.NewParent(id, node, children), nil
}

func (b *builder) buildIfStmt(n *ast.IfStmt) (*model.Tree, error) {
	id := b.id()

	var children []*model.Tree
	if n.Init != nil {
		init, err := b.buildStmt(n.Init)
		if err != nil {
			return nil, err
		}
		children = append(children, init)
	}

	cond, err := b.buildExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	children = append(children, cond)

	body, err := b.buildBlock(n.Body)
	if err != nil {
		return nil, err
	}
	children = append(children, body)

	if n.Else != nil {
		elseBranch, err := b.buildStmt(n.Else)
		if err != nil {
			return nil, err
		}
		elseGroup := b.group("Else", []*model.Tree{elseBranch})
		children = append(children, elseGroup)
	}

	return model.NewParent(id, model.Node{Kind: model.KindIfStmt}, children), nil
}

func (b *builder) buildForStmt(n *ast.ForStmt) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree

	if n.Init != nil {
		init, err := b.buildStmt(n.Init)
		if err != nil {
			return nil, err
		}
		children = append(children, init)
	}
	if n.Cond != nil {
		cond, err := b.buildExpr(n.Cond)
		if err != nil {
			return nil, err
		}
		children = append(children, cond)
	}
	if n.Post != nil {
		post, err := b.buildStmt(n.Post)
		if err != nil {
			return nil, err
		}
		children = append(children, post)
	}

	body, err := b.buildBlock(n.Body)
	if err != nil {
		return nil, err
	}
	children = append(children, body)

	return model.NewParent(id, model.Node{Kind: model.KindForStmt}, children), nil
}

func (b *builder) buildRangeStmt(n *ast.RangeStmt) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree

	if n.Key != nil {
		key, err := b.buildExpr(n.Key)
		if err != nil {
			return nil, err
		}
		values := []*model.Tree{key}
		if n.Value != nil {
			v, err := b.buildExpr(n.Value)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		children = append(children, b.group("Targets", values))
	}

	x, err := b.buildExpr(n.X)
	if err != nil {
		return nil, err
	}
	children = append(children, x)

	body, err := b.buildBlock(n.Body)
	if err != nil {
		return nil, err
	}
	children = append(children, body)

	node := model.Node{Kind: model.KindRangeStmt, Payload: model.Operator{Op: n.Tok.String()}}
	return model.NewParent(id, node, children), nil
}

func (b *builder) buildSwitchStmt(n *ast.SwitchStmt) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree

	if n.Init != nil {
		init, err := b.buildStmt(n.Init)
		if err != nil {
			return nil, err
		}
		children = append(children, init)
	}
	if n.Tag != nil {
		tag, err := b.buildExpr(n.Tag)
		if err != nil {
			return nil, err
		}
		children = append(children, tag)
	}

	cases, err := b.buildCaseClauses(n.Body)
	if err != nil {
		return nil, err
	}
	children = appendIfNotNil(children, b.group("Cases", cases))

	return model.NewParent(id, model.Node{Kind: model.KindSwitchStmt}, children), nil
}

func (b *builder) buildTypeSwitchStmt(n *ast.TypeSwitchStmt) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree

	if n.Init != nil {
		init, err := b.buildStmt(n.Init)
		if err != nil {
			return nil, err
		}
		children = append(children, init)
	}
	assign, err := b.buildStmt(n.Assign)
	if err != nil {
		return nil, err
	}
	children = append(children, assign)

	cases, err := b.buildCaseClauses(n.Body)
	if err != nil {
		return nil, err
	}
	children = appendIfNotNil(children, b.group("Cases", cases))

	return model.NewParent(id, model.Node{Kind: model.KindTypeSwitchStmt}, children), nil
}

func (b *builder) buildCaseClauses(body *ast.BlockStmt) ([]*model.Tree, error) {
	var cases []*model.Tree
	for _, s := range body.List {
		cc, ok := s.(*ast.CaseClause)
		if !ok {
			return nil, diagerr.UnsupportedNode{Kind: "switch body statement"}
		}
		ct, err := b.buildCaseClause(cc)
		if err != nil {
			return nil, err
		}
		cases = append(cases, ct)
	}
	return cases, nil
}

func (b *builder) buildCaseClause(n *ast.CaseClause) (*model.Tree, error) {
	id := b.id()
	var values []*model.Tree
	for _, v := range n.List {
		vt, err := b.buildExpr(v)
		if err != nil {
			return nil, err
		}
		values = append(values, vt)
	}
	var body []*model.Tree
	for _, s := range n.Body {
		st, err := b.buildStmt(s)
		if err != nil {
			return nil, err
		}
		body = append(body, st)
	}
	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Values", values))
	children = appendIfNotNil(children, b.group("Body", body))
	return model.NewParent(id, model.Node{Kind: model.KindCaseClause}, children), nil
}
