// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Import fixing works on the rewritten text, not the original syntax
// tree: the text is reparsed after the recipe edits are applied, added
// imports are inserted in sorted position, and imports a recipe marked
// droppable are removed if nothing references them anymore.

package rewrite

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"

	"github.com/murdos/rewrite-go/edit"
)

// MaybeDropImport marks path for removal from the import block if, after
// all edits are applied, the file no longer references it.
func (f *File) MaybeDropImport(path string) {
	for _, p := range f.removable {
		if p == path {
			return
		}
	}
	f.removable = append(f.removable, path)
}

// addImports inserts the given import paths into text's import block.
func addImports(text []byte, paths []string) []byte {
	if len(paths) == 0 {
		return text
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "out.go", text, parser.ParseComments)
	if err != nil {
		return text
	}
	offset := func(pos token.Pos) int {
		return fset.Position(pos).Offset
	}

	have := make(map[string]bool)
	for _, spec := range file.Imports {
		have[importPath(spec)] = true
	}
	var add []string
	for _, p := range paths {
		if !have[p] {
			add = append(add, p)
		}
	}
	if len(add) == 0 {
		return text
	}
	sort.Strings(add)

	var decl *ast.GenDecl
	for _, d := range file.Decls {
		if d, ok := d.(*ast.GenDecl); ok && d.Tok == token.IMPORT {
			decl = d
			break
		}
	}

	buf := edit.NewBuffer(text)
	switch {
	case decl == nil:
		// No imports at all: add a block after the package clause.
		i := offset(file.Name.End())
		for i < len(text) && text[i] != '\n' {
			i++
		}
		block := "\n\nimport (\n"
		for _, p := range add {
			block += "\t" + quote(p) + "\n"
		}
		block += ")"
		buf.Insert(i, block)

	case decl.Lparen.IsValid():
		// Grouped import: insert each path in sorted position
		// within the first group.
		for _, p := range add {
			at := offset(decl.Rparen)
			for _, spec := range decl.Specs {
				spec := spec.(*ast.ImportSpec)
				if importPath(spec) > p {
					at = lineStart(text, offset(spec.Pos()))
					break
				}
			}
			if at == offset(decl.Rparen) {
				at = lineStart(text, at)
			}
			buf.Insert(at, "\t"+quote(p)+"\n")
		}

	default:
		// Single unparenthesized import.
		for _, p := range add {
			buf.Insert(offset(decl.End()), "\nimport "+quote(p))
		}
	}
	return buf.Bytes()
}

// deleteUnusedImports removes imports of the candidate paths that are no
// longer referenced in text. Dot and blank imports are never removed.
func deleteUnusedImports(text []byte, candidates []string) []byte {
	if len(candidates) == 0 {
		return text
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "out.go", text, parser.ParseComments)
	if err != nil {
		return text
	}
	offset := func(pos token.Pos) int {
		return fset.Position(pos).Offset
	}

	used := make(map[string]bool)
	Walk(file, func(stack []ast.Node) {
		if id, ok := stack[0].(*ast.Ident); ok && id.Obj == nil {
			if _, ok := stack[1].(*ast.SelectorExpr); !ok {
				return
			}
			used[id.Name] = true
		}
	})

	droppable := make(map[string]bool)
	for _, p := range candidates {
		droppable[p] = true
	}
	unused := func(spec *ast.ImportSpec) bool {
		name := importName(spec)
		if name == "_" || name == "." {
			return false
		}
		if name == "" {
			name = pathBase(importPath(spec))
		}
		return droppable[importPath(spec)] && !used[name]
	}

	buf := edit.NewBuffer(text)
	for _, d := range file.Decls {
		decl, ok := d.(*ast.GenDecl)
		if !ok || decl.Tok != token.IMPORT {
			continue
		}
		complete := true
		any := false
		for _, spec := range decl.Specs {
			if unused(spec.(*ast.ImportSpec)) {
				any = true
			} else {
				complete = false
			}
		}
		if complete {
			lo, hi := lineRange(text, offset(decl.Pos()), offset(decl.End()))
			buf.Delete(lo, hi)
			continue
		}
		if !any {
			continue
		}
		for _, spec := range decl.Specs {
			spec := spec.(*ast.ImportSpec)
			if unused(spec) {
				lo, hi := lineRange(text, offset(spec.Pos()), offset(spec.End()))
				buf.Delete(lo, hi)
			}
		}
	}
	return buf.Bytes()
}

// lineStart returns the offset of the start of the line containing i.
func lineStart(text []byte, i int) int {
	for i > 0 && text[i-1] != '\n' {
		i--
	}
	return i
}

// lineRange widens [lo, hi) to whole lines, including a trailing line
// comment, provided nothing else shares those lines.
func lineRange(text []byte, lo, hi int) (int, int) {
	start := lineStart(text, lo)
	end := hi
	for end < len(text) && text[end] == ' ' {
		end++
	}
	if bytes.HasPrefix(text[end:], []byte("//")) {
		if i := bytes.IndexByte(text[end:], '\n'); i >= 0 {
			end += i
		} else {
			end = len(text)
		}
	}
	if !isSpace(text[start:lo]) || (end < len(text) && text[end] != '\n') {
		return lo, hi
	}
	if end < len(text) {
		end++
	}
	return start, end
}

func quote(path string) string {
	return `"` + path + `"`
}
