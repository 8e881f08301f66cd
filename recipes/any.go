// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"
	"strings"

	"github.com/murdos/rewrite-go/rewrite"
)

// AnyType replaces the empty interface type interface{} with its alias
// any, available since Go 1.18.
type AnyType struct{}

func (AnyType) Name() string        { return "go.AnyType" }
func (AnyType) DisplayName() string { return "Use any instead of interface{}" }
func (AnyType) Description() string {
	return "Replace interface{} with the equivalent any alias introduced in Go 1.18."
}

func (AnyType) MinGoVersion() string { return "v1.18" }

func (AnyType) Applicable(f *rewrite.File) bool {
	// A file declaring its own any must keep interface{}.
	return !f.Shadowed("any")
}

func (AnyType) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		iface, ok := stack[0].(*ast.InterfaceType)
		if !ok || iface.Methods == nil || len(iface.Methods.List) > 0 {
			return
		}
		// Keep interface{ /* ... */ } so the comment survives.
		text := string(f.TextAt(iface.Pos(), iface.End()))
		open := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if open < 0 || end < open || strings.TrimSpace(text[open+1:end]) != "" {
			return
		}
		f.ReplaceNode(iface, "any")
	}
}
