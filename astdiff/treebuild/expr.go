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
	"go/token"

	"github.com/exercise-feedback/describe-changes/astdiff/diagerr"
	"github.com/exercise-feedback/describe-changes/astdiff/model"
)

func (b *builder) buildBasicLitNode(lit *ast.BasicLit) *model.Tree {
	switch lit.Kind {
	case token.INT, token.FLOAT, token.IMAG:
		return b.leaf(model.Node{Kind: model.KindNumberLit, Payload: model.NumberLit{Value: lit.Value}})
	case token.STRING:
		return b.leaf(model.Node{Kind: model.KindStringLit, Payload: model.StringLit{Value: lit.Value}})
	case token.CHAR:
		return b.leaf(model.Node{Kind: model.KindCharLit, Payload: model.CharLit{Value: lit.Value}})
	default:
		return b.leaf(model.Node{Kind: model.KindStringLit, Payload: model.StringLit{Value: lit.Value}})
	}
}

// buildExpr dispatches on the concrete go/ast expression/type type,
// normalizing it into a model.Tree. Anything not in this switch is an
// UnsupportedNode.
func (b *builder) buildExpr(e ast.Expr) (*model.Tree, error) {
	switch n := e.(type) {
	case *ast.Ident:
		switch n.Name {
		case "true":
			return b.leaf(model.Node{Kind: model.KindBoolLit, Payload: model.BoolLit{Value: true}}), nil
		case "false":
			return b.leaf(model.Node{Kind: model.KindBoolLit, Payload: model.BoolLit{Value: false}}), nil
		default:
			return b.buildIdentNode(n), nil
		}
	case *ast.BasicLit:
		return b.buildBasicLitNode(n), nil
	case *ast.Ellipsis:
		id := b.id()
		if n.Elt == nil {
			return model.NewParent(id, model.Node{Kind: model.KindEllipsis}, nil), nil
		}
		elt, err := b.buildExpr(n.Elt)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindEllipsis}, []*model.Tree{elt}), nil

	case *ast.BinaryExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		y, err := b.buildExpr(n.Y)
		if err != nil {
			return nil, err
		}
		node := model.Node{Kind: model.KindBinaryExpr, Payload: model.Operator{Op: n.Op.String()}}
		return model.NewParent(id, node, []*model.Tree{x, y}), nil

	case *ast.UnaryExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		node := model.Node{Kind: model.KindUnaryExpr, Payload: model.Operator{Op: n.Op.String()}}
		return model.NewParent(id, node, []*model.Tree{x}), nil

	case *ast.StarExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindStarExpr}, []*model.Tree{x}), nil

	case *ast.ParenExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindParenExpr}, []*model.Tree{x}), nil

	case *ast.SelectorExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		sel := b.buildIdentNode(n.Sel)
		return model.NewParent(id, model.Node{Kind: model.KindSelectorExpr}, []*model.Tree{x, sel}), nil

	case *ast.IndexExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		idx, err := b.buildExpr(n.Index)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindIndexExpr}, []*model.Tree{x, idx}), nil

	case *ast.SliceExpr:
		return b.buildSliceExpr(n)

	case *ast.CallExpr:
		return b.buildCallExpr(n)

	case *ast.FuncLit:
		return b.buildFuncLit(n)

	case *ast.CompositeLit:
		return b.buildCompositeLit(n)

	case *ast.KeyValueExpr:
		id := b.id()
		key, err := b.buildExpr(n.Key)
		if err != nil {
			return nil, err
		}
		value, err := b.buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindKeyValueExpr}, []*model.Tree{key, value}), nil

	case *ast.TypeAssertExpr:
		id := b.id()
		x, err := b.buildExpr(n.X)
		if err != nil {
			return nil, err
		}
		children := []*model.Tree{x}
		if n.Type != nil {
			typ, err := b.buildExpr(n.Type)
			if err != nil {
				return nil, err
			}
			children = append(children, typ)
		}
		return model.NewParent(id, model.Node{Kind: model.KindTypeAssertExpr}, children), nil

	case *ast.ArrayType:
		return b.buildArrayType(n)
	case *ast.MapType:
		id := b.id()
		key, err := b.buildExpr(n.Key)
		if err != nil {
			return nil, err
		}
		value, err := b.buildExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return model.NewParent(id, model.Node{Kind: model.KindMapType}, []*model.Tree{key, value}), nil
	case *ast.StructType:
		return b.buildStructType(n)
	case *ast.InterfaceType:
		return b.buildInterfaceType(n)
	case *ast.FuncType:
		return b.buildFuncType(n)
	case *ast.ChanType:
		return b.buildChanType(n)

	default:
		return nil, diagerr.UnsupportedNode{Kind: "expression"}
	}
}

func (b *builder) buildSliceExpr(n *ast.SliceExpr) (*model.Tree, error) {
	id := b.id()
	x, err := b.buildExpr(n.X)
	if err != nil {
		return nil, err
	}
	children := []*model.Tree{x}

	build := func(e ast.Expr) error {
		if e == nil {
			return nil
		}
		t, err := b.buildExpr(e)
		if err != nil {
			return err
		}
		children = append(children, t)
		return nil
	}
	if err := build(n.Low); err != nil {
		return nil, err
	}
	if err := build(n.High); err != nil {
		return nil, err
	}
	if n.Slice3 {
		if err := build(n.Max); err != nil {
			return nil, err
		}
	}
	return model.NewParent(id, model.Node{Kind: model.KindSliceExpr}, children), nil
}

func (b *builder) buildCallExpr(n *ast.CallExpr) (*model.Tree, error) {
	id := b.id()
	fun, err := b.buildExpr(n.Fun)
	if err != nil {
		return nil, err
	}

	var args []*model.Tree
	for _, a := range n.Args {
		at, err := b.buildExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, at)
	}

	children := []*model.Tree{fun}
	children = appendIfNotNil(children, b.group("CallArgs", args))
	if n.Ellipsis != token.NoPos {
		children = append(children, model.NewParent(b.id(), model.Node{Kind: model.KindEllipsis}, nil))
	}
	return model.NewParent(id, model.Node{Kind: model.KindCallExpr}, children), nil
}

func (b *builder) buildFuncLit(n *ast.FuncLit) (*model.Tree, error) {
	id := b.id()
	typ, err := b.buildFuncType(n.Type)
	if err != nil {
		return nil, err
	}
	body, err := b.buildBlock(n.Body)
	if err != nil {
		return nil, err
	}
	return model.NewParent(id, model.Node{Kind: model.KindFuncLit}, []*model.Tree{typ, body}), nil
}

func (b *builder) buildCompositeLit(n *ast.CompositeLit) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree
	if n.Type != nil {
		typ, err := b.buildExpr(n.Type)
		if err != nil {
			return nil, err
		}
		children = append(children, typ)
	}

	var elts []*model.Tree
	for _, e := range n.Elts {
		et, err := b.buildExpr(e)
		if err != nil {
			return nil, err
		}
		elts = append(elts, et)
	}
	children = appendIfNotNil(children, b.group("elts", elts))
	return model.NewParent(id, model.Node{Kind: model.KindCompositeLit}, children), nil
}

func (b *builder) buildArrayType(n *ast.ArrayType) (*model.Tree, error) {
	id := b.id()
	var children []*model.Tree
	if n.Len != nil {
		lenTree, err := b.buildExpr(n.Len)
		if err != nil {
			return nil, err
		}
		children = append(children, lenTree)
	}
	elt, err := b.buildExpr(n.Elt)
	if err != nil {
		return nil, err
	}
	children = append(children, elt)
	return model.NewParent(id, model.Node{Kind: model.KindArrayType}, children), nil
}

func (b *builder) buildStructType(n *ast.StructType) (*model.Tree, error) {
	id := b.id()
	fields, err := b.buildFieldListFlat(n.Fields)
	if err != nil {
		return nil, err
	}
	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Fields", fields))
	return model.NewParent(id, model.Node{Kind: model.KindStructType}, children), nil
}

func (b *builder) buildInterfaceType(n *ast.InterfaceType) (*model.Tree, error) {
	id := b.id()
	fields, err := b.buildFieldListFlat(n.Methods)
	if err != nil {
		return nil, err
	}
	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Fields", fields))
	return model.NewParent(id, model.Node{Kind: model.KindInterfaceType}, children), nil
}

func (b *builder) buildFuncType(n *ast.FuncType) (*model.Tree, error) {
	id := b.id()
	params, err := b.buildFieldListFlat(n.Params)
	if err != nil {
		return nil, err
	}
	var results []*model.Tree
	if n.Results != nil {
		results, err = b.buildFieldListFlat(n.Results)
		if err != nil {
			return nil, err
		}
	}
	var children []*model.Tree
	children = appendIfNotNil(children, b.group("Params", params))
	children = appendIfNotNil(children, b.group("Results", results))
	return model.NewParent(id, model.Node{Kind: model.KindFuncType}, children), nil
}

func (b *builder) buildChanType(n *ast.ChanType) (*model.Tree, error) {
	id := b.id()
	value, err := b.buildExpr(n.Value)
	if err != nil {
		return nil, err
	}
	var dir string
	switch n.Dir {
	case ast.SEND:
		dir = "send"
	case ast.RECV:
		dir = "recv"
	default:
		dir = "both"
	}
	node := model.Node{Kind: model.KindChanType, Payload: model.Operator{Op: dir}}
	return model.NewParent(id, node, []*model.Tree{value}), nil
}
