// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Reference matching is resolved through the file's import table rather
// than full type checking: a qualified identifier pkg.Name matches when
// pkg is the local name of the wanted import path and is not shadowed by
// a local definition.

package rewrite

import (
	"go/ast"
	"go/token"
	"strconv"
)

// Ref resolves e as a reference to an imported package-level name and
// returns the import path and name. ok is false if e is not a qualified
// identifier or its qualifier does not denote an import of this file.
func Ref(f *File, e ast.Expr) (path, name string, ok bool) {
	sel, ok2 := e.(*ast.SelectorExpr)
	if !ok2 {
		return "", "", false
	}
	id, ok2 := sel.X.(*ast.Ident)
	if !ok2 || id.Obj != nil {
		// id.Obj != nil means the parser resolved the identifier to a
		// local declaration, so it cannot be a package qualifier.
		return "", "", false
	}
	path, ok2 = f.imports[id.Name]
	if !ok2 {
		return "", "", false
	}
	return path, sel.Sel.Name, true
}

// A RefMatcher matches references to one package-level name,
// e.g. RefMatcher{"io/ioutil", "Discard"}.
type RefMatcher struct {
	Path string
	Name string
}

func (m *RefMatcher) Match(f *File, n ast.Node) *ast.SelectorExpr {
	e, ok := n.(ast.Expr)
	if !ok {
		return nil
	}
	path, name, ok := Ref(f, e)
	if !ok || path != m.Path || name != m.Name {
		return nil
	}
	return e.(*ast.SelectorExpr)
}

// A CallMatcher matches calls of one package-level function,
// e.g. CallMatcher{"io/ioutil", "ReadFile"}.
type CallMatcher struct {
	Path string
	Name string
}

func (m *CallMatcher) Match(f *File, n ast.Node) *ast.CallExpr {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return nil
	}
	path, name, ok := Ref(f, call.Fun)
	if !ok || path != m.Path || name != m.Name {
		return nil
	}
	return call
}

// StringLit returns the value of e if it is a string literal.
func StringLit(e ast.Expr) (string, bool) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}
