// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"
	"go/token"

	"github.com/murdos/rewrite-go/rewrite"
)

// HTTPMethodLiterals replaces HTTP method string literals compared
// against a Method field with the net/http method constants:
//
//	r.Method == "GET"   ->  r.Method == http.MethodGet
//
// Comparisons (==, !=) and switch cases over a Method selector are
// rewritten. Only the canonical upper-case method names match; other
// strings are someone's custom method and stay literal.
type HTTPMethodLiterals struct{}

func (HTTPMethodLiterals) Name() string        { return "go.HTTPMethodLiterals" }
func (HTTPMethodLiterals) DisplayName() string { return "Use http.Method constants" }
func (HTTPMethodLiterals) Description() string {
	return "Replace HTTP method string literals in comparisons with the corresponding net/http constants."
}

func (HTTPMethodLiterals) Applicable(f *rewrite.File) bool {
	return f.Uses("net/http")
}

var httpMethodConstants = map[string]string{
	"GET":     "MethodGet",
	"HEAD":    "MethodHead",
	"POST":    "MethodPost",
	"PUT":     "MethodPut",
	"PATCH":   "MethodPatch",
	"DELETE":  "MethodDelete",
	"CONNECT": "MethodConnect",
	"OPTIONS": "MethodOptions",
	"TRACE":   "MethodTrace",
}

func (HTTPMethodLiterals) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		switch n := stack[0].(type) {
		case *ast.BinaryExpr:
			if n.Op != token.EQL && n.Op != token.NEQ {
				return
			}
			switch {
			case isMethodSelector(n.X):
				rewriteMethodLiteral(f, n.Y)
			case isMethodSelector(n.Y):
				rewriteMethodLiteral(f, n.X)
			}

		case *ast.CaseClause:
			if !inMethodSwitch(stack) {
				return
			}
			for _, v := range n.List {
				rewriteMethodLiteral(f, v)
			}
		}
	}
}

// isMethodSelector reports whether e has the shape x.Method.
func isMethodSelector(e ast.Expr) bool {
	sel, ok := e.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "Method"
}

// inMethodSwitch reports whether the case clause at stack[0] belongs to
// a switch over a Method selector.
func inMethodSwitch(stack []ast.Node) bool {
	for _, n := range stack[1:] {
		if sw, ok := n.(*ast.SwitchStmt); ok {
			return sw.Tag != nil && isMethodSelector(sw.Tag)
		}
	}
	return false
}

func rewriteMethodLiteral(f *rewrite.File, e ast.Expr) {
	s, ok := rewrite.StringLit(e)
	if !ok {
		return
	}
	name, ok := httpMethodConstants[s]
	if !ok {
		return
	}
	qual, ok := f.ImportName("net/http")
	if !ok {
		return
	}
	f.ReplaceNode(e, qual+"."+name)
}
