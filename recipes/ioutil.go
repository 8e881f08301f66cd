// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"

	"github.com/murdos/rewrite-go/rewrite"
)

// NoIoutil replaces references to the deprecated io/ioutil package with
// their os and io equivalents.
//
// ioutil.ReadDir is left alone: os.ReadDir returns []os.DirEntry where
// ioutil.ReadDir returned []os.FileInfo, so that call has no drop-in
// replacement.
type NoIoutil struct{}

func (NoIoutil) Name() string        { return "go.NoIoutil" }
func (NoIoutil) DisplayName() string { return "Replace io/ioutil with os and io" }
func (NoIoutil) Description() string {
	return "Rewrite uses of the deprecated io/ioutil package to the equivalent os and io functions introduced in Go 1.16."
}

func (NoIoutil) MinGoVersion() string { return "v1.16" }

func (NoIoutil) Applicable(f *rewrite.File) bool {
	return f.Uses("io/ioutil")
}

var ioutilReplacements = map[string]struct {
	path string
	name string
}{
	"ReadAll":   {"io", "ReadAll"},
	"NopCloser": {"io", "NopCloser"},
	"Discard":   {"io", "Discard"},
	"ReadFile":  {"os", "ReadFile"},
	"WriteFile": {"os", "WriteFile"},
	"TempFile":  {"os", "CreateTemp"},
	"TempDir":   {"os", "MkdirTemp"},
}

func (NoIoutil) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		sel, ok := stack[0].(*ast.SelectorExpr)
		if !ok {
			return
		}
		path, name, ok := rewrite.Ref(f, sel)
		if !ok || path != "io/ioutil" {
			return
		}
		repl, ok := ioutilReplacements[name]
		if !ok {
			return
		}
		qual, ok := qualify(f, repl.path)
		if !ok {
			return
		}
		f.ReplaceNode(sel, qual+"."+repl.name)
		f.MaybeDropImport("io/ioutil")
	}
}
