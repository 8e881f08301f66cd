// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"go/ast"
	"go/token"
)

// Walk traverses the syntax tree rooted at n, calling f for every node.
// The stack passed to f has the current node in stack[0] and its
// ancestors in stack[1:], outermost last.
func Walk(n ast.Node, f func(stack []ast.Node)) {
	WalkRange(n, 0, token.Pos(^uint(0)>>1), f)
}

// WalkRange is like Walk but only visits nodes overlapping [lo, hi).
func WalkRange(n ast.Node, lo, hi token.Pos, f func(stack []ast.Node)) {
	var stack []ast.Node
	var stackPos int

	ast.Inspect(n, func(n ast.Node) bool {
		if n == nil {
			stackPos++
			return true
		}
		if n.End() < lo || hi <= n.Pos() {
			return false
		}
		if stackPos == 0 {
			old := len(stack)
			stack = append(stack, nil)
			stack = stack[:cap(stack)]
			copy(stack[len(stack)-old:], stack[:old])
			stackPos = len(stack) - old
		}
		stackPos--
		stack[stackPos] = n
		f(stack[stackPos:])
		return true
	})

	if stackPos != len(stack) {
		panic("internal stack error")
	}
}
