// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/murdos/rewrite-go/rewrite"
)

// HandlerMethodPattern moves a method guard at the top of an HTTP
// handler into the Go 1.22 routing pattern:
//
//	mux.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
//		if r.Method != http.MethodGet {
//			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
//			return
//		}
//		...
//	})
//
// becomes
//
//	mux.HandleFunc("GET /items", func(w http.ResponseWriter, r *http.Request) {
//		...
//	})
//
// Guards admitting more than one method (r.Method != "GET" && r.Method
// != "HEAD") have no single-pattern equivalent and are left unchanged,
// as are patterns that already carry a method.
type HandlerMethodPattern struct{}

func (HandlerMethodPattern) Name() string        { return "go.HandlerMethodPattern" }
func (HandlerMethodPattern) DisplayName() string { return "Use method-qualified routing patterns" }
func (HandlerMethodPattern) Description() string {
	return "Fold single-method guards in HandleFunc handlers into the method-qualified route patterns supported since Go 1.22."
}

func (HandlerMethodPattern) MinGoVersion() string { return "v1.22" }

func (HandlerMethodPattern) Applicable(f *rewrite.File) bool {
	return f.Uses("net/http")
}

func (HandlerMethodPattern) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		call, ok := stack[0].(*ast.CallExpr)
		if !ok || len(call.Args) != 2 {
			return
		}
		if !isHandleFunc(call.Fun) {
			return
		}
		patLit, ok := call.Args[0].(*ast.BasicLit)
		if !ok || patLit.Kind != token.STRING {
			return
		}
		pattern, err := strconv.Unquote(patLit.Value)
		if err != nil || strings.Contains(pattern, " ") {
			return
		}
		fn, ok := call.Args[1].(*ast.FuncLit)
		if !ok {
			return
		}
		guard, method := methodGuard(f, fn)
		if guard == nil {
			return
		}
		f.ReplaceNode(patLit, strconv.Quote(method+" "+pattern))
		f.DeleteLines(guard.Pos(), guard.End())
	}
}

// isHandleFunc reports whether fun is a HandleFunc selector: either a
// method on some mux value or net/http's package-level HandleFunc.
func isHandleFunc(fun ast.Expr) bool {
	sel, ok := fun.(*ast.SelectorExpr)
	return ok && sel.Sel.Name == "HandleFunc"
}

// methodGuard returns the guard statement and the HTTP method it
// enforces, if the handler body starts with a single-method
// reject-and-return guard. The request parameter must be the guard's
// receiver and the guard body must do nothing but report the error.
func methodGuard(f *rewrite.File, fn *ast.FuncLit) (ast.Stmt, string) {
	if len(fn.Type.Params.List) != 2 || len(fn.Body.List) == 0 {
		return nil, ""
	}
	reqParam := fn.Type.Params.List[1]
	if len(reqParam.Names) != 1 {
		return nil, ""
	}
	reqName := reqParam.Names[0].Name

	ifStmt, ok := fn.Body.List[0].(*ast.IfStmt)
	if !ok || ifStmt.Init != nil || ifStmt.Else != nil {
		return nil, ""
	}
	cond, ok := ifStmt.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op != token.NEQ {
		// && or || means several methods are admitted; there is no
		// single pattern for that.
		return nil, ""
	}
	sel, ok := cond.X.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Method" {
		return nil, ""
	}
	if id, ok := sel.X.(*ast.Ident); !ok || id.Name != reqName {
		return nil, ""
	}
	method, ok := methodValue(f, cond.Y)
	if !ok {
		return nil, ""
	}

	// The guard body may only report the error and return. A guard
	// doing anything else has side effects the pattern cannot carry.
	body := ifStmt.Body.List
	if len(body) == 0 || len(body) > 2 {
		return nil, ""
	}
	if _, ok := body[len(body)-1].(*ast.ReturnStmt); !ok {
		return nil, ""
	}
	if len(body) == 2 && !isErrorReport(f, fn, body[0]) {
		return nil, ""
	}
	return ifStmt, method
}

// isErrorReport reports whether stmt only tells the client the method
// was wrong: http.Error, http.NotFound, or WriteHeader on the handler's
// ResponseWriter parameter.
func isErrorReport(f *rewrite.File, fn *ast.FuncLit, stmt ast.Stmt) bool {
	expr, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}
	call, ok := expr.X.(*ast.CallExpr)
	if !ok {
		return false
	}
	if path, name, ok := rewrite.Ref(f, call.Fun); ok {
		return path == "net/http" && (name == "Error" || name == "NotFound")
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "WriteHeader" {
		return false
	}
	wParam := fn.Type.Params.List[0]
	if len(wParam.Names) != 1 {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == wParam.Names[0].Name
}

// methodValue resolves e as a concrete HTTP method: either an
// upper-case literal like "GET" or a net/http.Method* constant.
func methodValue(f *rewrite.File, e ast.Expr) (string, bool) {
	if s, ok := rewrite.StringLit(e); ok {
		if _, known := httpMethodConstants[s]; known {
			return s, true
		}
		return "", false
	}
	path, name, ok := rewrite.Ref(f, e)
	if !ok || path != "net/http" {
		return "", false
	}
	for method, constName := range httpMethodConstants {
		if constName == name {
			return method, true
		}
	}
	return "", false
}
