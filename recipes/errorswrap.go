// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/murdos/rewrite-go/rewrite"
)

// ErrorsWrapToFmt migrates github.com/pkg/errors to the standard
// library: Wrap and Wrapf become fmt.Errorf with a %w verb, Errorf
// becomes fmt.Errorf, and New, Is, As and Unwrap move to the stdlib
// errors package.
//
// The rule is all-or-nothing per file. If any use has no stdlib
// equivalent (Cause, WithStack, a non-literal wrap message, or the
// package referenced as a value), the file is left unchanged rather
// than left importing both error packages.
type ErrorsWrapToFmt struct{}

const pkgErrors = "github.com/pkg/errors"

func (ErrorsWrapToFmt) Name() string        { return "go.ErrorsWrapToFmt" }
func (ErrorsWrapToFmt) DisplayName() string { return "Replace pkg/errors with stdlib error wrapping" }
func (ErrorsWrapToFmt) Description() string {
	return "Rewrite github.com/pkg/errors wrapping to fmt.Errorf with %w and move simple constructors to the standard errors package."
}

func (ErrorsWrapToFmt) MinGoVersion() string { return "v1.13" }

func (ErrorsWrapToFmt) Applicable(f *rewrite.File) bool {
	return f.Uses(pkgErrors)
}

func (ErrorsWrapToFmt) Visitor() rewrite.Visitor {
	return func(f *rewrite.File, stack []ast.Node) {
		file, ok := stack[0].(*ast.File)
		if !ok {
			return
		}
		rewriteErrorsFile(f, file)
	}
}

// An errorsEdit is one planned call replacement. Edits are collected
// for the whole file and applied only if every use converted.
type errorsEdit struct {
	call *ast.CallExpr
	text func(errQual, fmtQual string) string
}

func rewriteErrorsFile(f *rewrite.File, file *ast.File) {
	var (
		edits    []errorsEdit
		needFmt  bool
		needErrs bool
		inCall   = make(map[*ast.SelectorExpr]bool)
	)

	// First collect calls, remembering which selectors they consume.
	ok := true
	rewrite.Walk(file, func(stack []ast.Node) {
		call, isCall := stack[0].(*ast.CallExpr)
		if !isCall || !ok {
			return
		}
		path, name, isRef := rewrite.Ref(f, call.Fun)
		if !isRef || path != pkgErrors {
			return
		}
		// A matched call nested inside another matched call would
		// need its replacement spliced into the outer replacement
		// text. Treat that as ambiguous and convert nothing.
		for _, e := range edits {
			if e.call.Pos() <= call.Pos() && call.End() <= e.call.End() {
				ok = false
				return
			}
		}
		inCall[call.Fun.(*ast.SelectorExpr)] = true

		switch name {
		case "New", "Is", "As", "Unwrap":
			needErrs = true
			fn := name
			args := argText(f, call.Args)
			edits = append(edits, errorsEdit{call, func(errQual, fmtQual string) string {
				return errQual + "." + fn + "(" + args + ")"
			}})

		case "Errorf":
			needFmt = true
			args := argText(f, call.Args)
			edits = append(edits, errorsEdit{call, func(errQual, fmtQual string) string {
				return fmtQual + ".Errorf(" + args + ")"
			}})

		case "Wrap":
			// errors.Wrap(err, "msg") -> fmt.Errorf("msg: %w", err)
			if len(call.Args) != 2 {
				ok = false
				return
			}
			msg, isLit := rewrite.StringLit(call.Args[1])
			if !isLit {
				ok = false
				return
			}
			needFmt = true
			errArg := string(f.TextAt(call.Args[0].Pos(), call.Args[0].End()))
			// The message was plain text; escape it before it
			// becomes a format string.
			format := strconv.Quote(strings.ReplaceAll(msg, "%", "%%") + ": %w")
			edits = append(edits, errorsEdit{call, func(errQual, fmtQual string) string {
				return fmtQual + ".Errorf(" + format + ", " + errArg + ")"
			}})

		case "Wrapf":
			// errors.Wrapf(err, "msg %d", n) -> fmt.Errorf("msg %d: %w", n, err)
			if len(call.Args) < 2 || call.Ellipsis.IsValid() {
				ok = false
				return
			}
			msg, isLit := rewrite.StringLit(call.Args[1])
			if !isLit {
				ok = false
				return
			}
			needFmt = true
			errArg := string(f.TextAt(call.Args[0].Pos(), call.Args[0].End()))
			format := strconv.Quote(msg + ": %w")
			rest := argText(f, call.Args[2:])
			if rest != "" {
				rest += ", "
			}
			edits = append(edits, errorsEdit{call, func(errQual, fmtQual string) string {
				return fmtQual + ".Errorf(" + format + ", " + rest + errArg + ")"
			}})

		default:
			// Cause, WithStack, WithMessage, ...: no stdlib equivalent.
			ok = false
		}
	})
	if !ok {
		return
	}

	// Any other reference to the package (a selector outside a call,
	// or the bare identifier) blocks the migration.
	rewrite.Walk(file, func(stack []ast.Node) {
		sel, isSel := stack[0].(*ast.SelectorExpr)
		if !isSel || inCall[sel] {
			return
		}
		if path, _, isRef := rewrite.Ref(f, sel); isRef && path == pkgErrors {
			ok = false
		}
	})
	if !ok || len(edits) == 0 {
		return
	}

	errQual, fmtQual := "", ""
	if needErrs {
		if name, imported := f.ImportName("errors"); imported {
			errQual = name
		} else if name, _ := f.ImportName(pkgErrors); name == "errors" {
			// The stdlib package takes over the existing qualifier:
			// rewrite the import spec in place.
			errQual = "errors"
			swapErrorsImport(f, file)
		} else if errQual, ok = qualify(f, "errors"); !ok {
			return
		}
	}
	if needFmt {
		if fmtQual, ok = qualify(f, "fmt"); !ok {
			return
		}
	}

	for _, e := range edits {
		f.ReplaceNode(e.call, e.text(errQual, fmtQual))
	}
	f.MaybeDropImport(pkgErrors)
}

func swapErrorsImport(f *rewrite.File, file *ast.File) {
	for _, spec := range file.Imports {
		if path, err := strconv.Unquote(spec.Path.Value); err == nil && path == pkgErrors {
			f.ReplaceAt(spec.Pos(), spec.End(), `"errors"`)
		}
	}
}

func argText(f *rewrite.File, args []ast.Expr) string {
	var parts []string
	for _, a := range args {
		parts = append(parts, string(f.TextAt(a.Pos(), a.End())))
	}
	return strings.Join(parts, ", ")
}
