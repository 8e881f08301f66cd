// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/murdos/rewrite-go/edit"
)

// A File is a single parsed source file plus the edits recipes have
// queued against it. The original text is never modified in place;
// Output applies the edits, removes imports the edits orphaned, and
// reformats.
type File struct {
	Name   string
	Fset   *token.FileSet
	Syntax *ast.File
	Text   []byte

	buf       *edit.Buffer
	dirty     bool
	imports   map[string]string // local name -> import path
	topLevel  map[string]bool   // package-level names declared in this file
	added     []string          // import paths queued for insertion
	removable []string          // import paths to drop once unreferenced
	spans     []span            // byte ranges already rewritten
	errs      ErrorList
}

type span struct {
	lo, hi int
}

// Parse parses src as a Go source file.
func Parse(name string, src []byte) (*File, error) {
	fset := token.NewFileSet()
	syntax, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	f := &File{
		Name:     name,
		Fset:     fset,
		Syntax:   syntax,
		Text:     src,
		imports:  make(map[string]string),
		topLevel: make(map[string]bool),
	}
	for _, spec := range syntax.Imports {
		path := importPath(spec)
		name := importName(spec)
		if name == "" {
			name = pathBase(path)
		}
		if name == "_" || name == "." {
			continue
		}
		f.imports[name] = path
	}
	for _, decl := range syntax.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Recv == nil {
				f.topLevel[decl.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					f.topLevel[spec.Name.Name] = true
				case *ast.ValueSpec:
					for _, id := range spec.Names {
						f.topLevel[id.Name] = true
					}
				}
			}
		}
	}
	return f, nil
}

// Uses reports whether the file imports the given path
// under any name other than _ .
func (f *File) Uses(path string) bool {
	for _, p := range f.imports {
		if p == path {
			return true
		}
	}
	return false
}

// ImportName returns the name the given import path is referenced by
// in this file.
func (f *File) ImportName(path string) (string, bool) {
	for name, p := range f.imports {
		if p == path {
			return name, true
		}
	}
	return "", false
}

// Shadowed reports whether name cannot be used as a package qualifier in
// this file because a package-level declaration or another import claims it.
func (f *File) Shadowed(name string) bool {
	if f.topLevel[name] {
		return true
	}
	p, ok := f.imports[name]
	return ok && p != ""
}

func (f *File) Position(pos token.Pos) token.Position {
	return f.Fset.Position(pos)
}

func (f *File) offset(pos token.Pos) int {
	return f.Fset.Position(pos).Offset
}

// TextAt returns the original source text in [lo, hi).
func (f *File) TextAt(lo, hi token.Pos) []byte {
	return f.Text[f.offset(lo):f.offset(hi)]
}

func (f *File) buffer() *edit.Buffer {
	if f.buf == nil {
		f.buf = edit.NewBuffer(f.Text)
	}
	return f.buf
}

// claim reserves [lo, hi) for one edit. It reports false when the range
// overlaps an earlier edit; since files are walked parents-first, the
// outermost match wins and inner matches wait for a later run.
func (f *File) claim(lo, hi int) bool {
	for _, s := range f.spans {
		if lo < s.hi && s.lo < hi {
			return false
		}
	}
	f.spans = append(f.spans, span{lo, hi})
	return true
}

func (f *File) ReplaceAt(lo, hi token.Pos, repl string) {
	olo, ohi := f.offset(lo), f.offset(hi)
	if !f.claim(olo, ohi) {
		return
	}
	f.buffer().Replace(olo, ohi, repl)
	f.dirty = true
}

func (f *File) InsertAt(pos token.Pos, text string) {
	o := f.offset(pos)
	if !f.claim(o, o) {
		return
	}
	f.buffer().Insert(o, text)
	f.dirty = true
}

func (f *File) DeleteAt(lo, hi token.Pos) {
	f.ReplaceAt(lo, hi, "")
}

func (f *File) ReplaceNode(n ast.Node, repl string) {
	f.ReplaceAt(n.Pos(), n.End(), repl)
}

// DeleteLines removes the source range [lo, hi), widening to whole lines
// when the range has only whitespace around it on its first and last lines.
// Comment lines above the range and trailing comments after it survive.
func (f *File) DeleteLines(lo, hi token.Pos) {
	start := f.offset(lo)
	end := f.offset(hi)

	lineStart := start
	for lineStart > 0 && f.Text[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := end
	for lineEnd < len(f.Text) && f.Text[lineEnd] != '\n' {
		lineEnd++
	}
	if lineEnd < len(f.Text) {
		lineEnd++ // include the newline
	}

	if isSpace(f.Text[lineStart:start]) && isSpace(f.Text[end:lineEnd]) {
		start, end = lineStart, lineEnd
	}
	if !f.claim(start, end) {
		return
	}
	f.buffer().Delete(start, end)
	f.dirty = true
}

func isSpace(b []byte) bool {
	return len(strings.TrimSpace(string(b))) == 0
}

// AddImport queues path for insertion into the file's import block.
// The import is only added if the file does not already import path.
func (f *File) AddImport(path string) {
	if f.Uses(path) {
		return
	}
	for _, p := range f.added {
		if p == path {
			return
		}
	}
	f.added = append(f.added, path)
	f.dirty = true
}

// Modified reports whether any edits have been recorded.
func (f *File) Modified() bool {
	return f.dirty
}

// ErrorAt records a positioned error against the file.
func (f *File) ErrorAt(pos token.Pos, format string, args ...interface{}) {
	f.errs.Addf(f.Position(pos), format, args...)
}

// Err returns the errors recorded against the file, or nil.
func (f *File) Err() error {
	return f.errs.Err()
}

// Output applies the queued edits and returns the new file content,
// with queued imports inserted, orphaned imports removed, and the
// result gofmt'ed.
func (f *File) Output() ([]byte, error) {
	if !f.dirty {
		return f.Text, nil
	}
	text := f.Text
	if f.buf != nil {
		text = f.buf.Bytes()
	}
	text = addImports(text, f.added)
	text = deleteUnusedImports(text, f.removable)
	out, err := format.Source(text)
	if err != nil {
		// A recipe produced text that no longer parses.
		return nil, &Error{Pos: f.Position(f.Syntax.Pos()), Msg: "rewrite produced invalid Go source: " + err.Error()}
	}
	return out, nil
}

func importPath(spec *ast.ImportSpec) string {
	path, err := strconv.Unquote(spec.Path.Value)
	if err != nil {
		return ""
	}
	return path
}

func importName(spec *ast.ImportSpec) string {
	if spec.Name == nil {
		return ""
	}
	return spec.Name.Name
}

// pathBase guesses the package name for an import path.
// Exact only for paths whose final element is the package name,
// which holds for the standard library.
func pathBase(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	return path
}
