// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"go/ast"
	"strings"
	"testing"
)

const fileSrc = `package p

import (
	"fmt"
	"strings"
)

func shout(s string) {
	up := strings.ToUpper(s) // loudly
	fmt.Println(up)
}
`

func parseTestFile(t *testing.T) *File {
	t.Helper()
	f, err := Parse("p.go", []byte(fileSrc))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFileImports(t *testing.T) {
	f := parseTestFile(t)
	if !f.Uses("fmt") || !f.Uses("strings") {
		t.Errorf("Uses: missing imports")
	}
	if f.Uses("os") {
		t.Errorf("Uses(os) = true, want false")
	}
	if name, ok := f.ImportName("strings"); !ok || name != "strings" {
		t.Errorf("ImportName(strings) = %q, %v", name, ok)
	}
	if !f.Shadowed("shout") {
		t.Errorf("Shadowed(shout) = false, want true")
	}
	if f.Shadowed("os") {
		t.Errorf("Shadowed(os) = true, want false")
	}
}

func TestFileReplaceNode(t *testing.T) {
	f := parseTestFile(t)
	Walk(f.Syntax, func(stack []ast.Node) {
		if call, ok := stack[0].(*ast.CallExpr); ok {
			if _, name, ok := Ref(f, call.Fun); ok && name == "ToUpper" {
				f.ReplaceNode(call, `strings.ToLower(s)`)
			}
		}
	})
	if !f.Modified() {
		t.Fatal("Modified = false after ReplaceNode")
	}
	out, err := f.Output()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "strings.ToLower(s) // loudly") {
		t.Errorf("comment lost or replacement wrong:\n%s", out)
	}
}

func TestFileOverlappingEditsIgnored(t *testing.T) {
	src := `package p

import (
	"fmt"
	"strings"
)

func f(s string) {
	fmt.Println(strings.ToUpper(s))
}
`
	f, err := Parse("p.go", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	var outer, inner *ast.CallExpr
	Walk(f.Syntax, func(stack []ast.Node) {
		if call, ok := stack[0].(*ast.CallExpr); ok {
			if _, name, ok := Ref(f, call.Fun); ok {
				switch name {
				case "Println":
					outer = call
				case "ToUpper":
					inner = call
				}
			}
		}
	})
	f.ReplaceNode(outer, "fmt.Println(strings.ToLower(s))")
	f.ReplaceNode(inner, "ignored(s)")
	out, err := f.Output()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "fmt.Println(strings.ToLower(s))") {
		t.Errorf("outer edit missing:\n%s", out)
	}
	if strings.Contains(string(out), "ignored") {
		t.Errorf("inner edit nested in the outer one applied:\n%s", out)
	}
}

func TestFileDeleteLines(t *testing.T) {
	src := `package p

func f() {
	// keep this comment
	println("drop")
	println("keep") // trailing
}
`
	f, err := Parse("p.go", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	Walk(f.Syntax, func(stack []ast.Node) {
		stmt, ok := stack[0].(*ast.ExprStmt)
		if !ok {
			return
		}
		if strings.Contains(string(f.TextAt(stmt.Pos(), stmt.End())), "drop") {
			f.DeleteLines(stmt.Pos(), stmt.End())
		}
	})
	out, err := f.Output()
	if err != nil {
		t.Fatal(err)
	}
	have := string(out)
	if strings.Contains(have, "drop") {
		t.Errorf("statement not deleted:\n%s", have)
	}
	if !strings.Contains(have, "// keep this comment") || !strings.Contains(have, "// trailing") {
		t.Errorf("comments lost:\n%s", have)
	}
}

func TestFileOutputUnchanged(t *testing.T) {
	f := parseTestFile(t)
	out, err := f.Output()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != fileSrc {
		t.Errorf("Output changed an unedited file")
	}
}
