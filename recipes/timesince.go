// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"

	"github.com/murdos/rewrite-go/rewrite"
)

// TimeSince simplifies elapsed-time arithmetic:
//
//	time.Now().Sub(t)  ->  time.Since(t)
//	t.Sub(time.Now())  ->  time.Until(t)
type TimeSince struct{}

func (TimeSince) Name() string        { return "go.TimeSince" }
func (TimeSince) DisplayName() string { return "Use time.Since and time.Until" }
func (TimeSince) Description() string {
	return "Replace Sub calls on or of time.Now with the equivalent time.Since and time.Until."
}

func (TimeSince) Applicable(f *rewrite.File) bool {
	return f.Uses("time")
}

func (TimeSince) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		call, ok := stack[0].(*ast.CallExpr)
		if !ok || len(call.Args) != 1 {
			return
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Sub" {
			return
		}
		qual, ok := f.ImportName("time")
		if !ok {
			return
		}
		switch {
		case isTimeNow(f, sel.X):
			arg := f.TextAt(call.Args[0].Pos(), call.Args[0].End())
			f.ReplaceNode(call, qual+".Since("+string(arg)+")")
		case isTimeNow(f, call.Args[0]):
			recv := f.TextAt(sel.X.Pos(), sel.X.End())
			f.ReplaceNode(call, qual+".Until("+string(recv)+")")
		}
	}
}

// isTimeNow reports whether e is the call time.Now().
func isTimeNow(f *rewrite.File, e ast.Expr) bool {
	call, ok := e.(*ast.CallExpr)
	if !ok || len(call.Args) != 0 {
		return false
	}
	path, name, ok := rewrite.Ref(f, call.Fun)
	return ok && path == "time" && name == "Now"
}
