// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"

	"github.com/murdos/rewrite-go/rewrite"
)

// NoRandSeed removes rand.Seed(time.Now().UnixNano()) statements,
// which became no-ops in Go 1.20 where the global source is seeded
// randomly by default. Any other seed, constant seeds included, may be
// there to make the program deterministic and is kept. Comments around
// a removed statement stay in place.
type NoRandSeed struct{}

func (NoRandSeed) Name() string        { return "go.NoRandSeed" }
func (NoRandSeed) DisplayName() string { return "Remove redundant rand.Seed calls" }
func (NoRandSeed) Description() string {
	return "Delete rand.Seed statements that only replicate the default seeding behavior of Go 1.20 and later."
}

func (NoRandSeed) MinGoVersion() string { return "v1.20" }

func (NoRandSeed) Applicable(f *rewrite.File) bool {
	return f.Uses("math/rand")
}

var randSeed = rewrite.CallMatcher{Path: "math/rand", Name: "Seed"}

func (NoRandSeed) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		stmt, ok := stack[0].(*ast.ExprStmt)
		if !ok {
			return
		}
		call := randSeed.Match(f, stmt.X)
		if call == nil || len(call.Args) != 1 {
			return
		}
		if !isRedundantSeed(f, call.Args[0]) {
			return
		}
		f.DeleteLines(stmt.Pos(), stmt.End())
		f.MaybeDropImport("math/rand")
		f.MaybeDropImport("time")
	}
}

// isRedundantSeed reports whether e is time.Now().UnixNano() or
// time.Now().Unix().
func isRedundantSeed(f *rewrite.File, e ast.Expr) bool {
	outer, ok := e.(*ast.CallExpr)
	if !ok || len(outer.Args) != 0 {
		return false
	}
	sel, ok := outer.Fun.(*ast.SelectorExpr)
	if !ok || (sel.Sel.Name != "UnixNano" && sel.Sel.Name != "Unix") {
		return false
	}
	inner, ok := sel.X.(*ast.CallExpr)
	if !ok || len(inner.Args) != 0 {
		return false
	}
	path, name, ok := rewrite.Ref(f, inner.Fun)
	return ok && path == "time" && name == "Now"
}
