// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite defines the contract between migration recipes and the
// driver that runs them: a parsed source file with a pending-edit buffer,
// a syntax walker, and matchers for references resolved through the file's
// import table.
//
// A recipe is a narrow, declarative pattern-match-and-replace rule. It
// inspects nodes handed to its visitor and records replacement text on the
// file. Recipes never perform I/O and never report failures for shapes they
// do not understand: when a pattern does not match, or matches ambiguously,
// the recipe leaves the file unchanged.
package rewrite

import (
	"go/ast"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
)

// A Recipe is a named source transformation rule.
type Recipe interface {
	// Name returns the stable identifier used to select the recipe,
	// e.g. "go.NoIoutil".
	Name() string

	DisplayName() string
	Description() string
}

// A Visitor is called for every node in a file, parents before children.
// stack[0] is the current node and stack[1:] are its ancestors.
type Visitor func(f *File, stack []ast.Node)

// A GoRecipe rewrites Go source files.
type GoRecipe interface {
	Recipe

	// Applicable reports whether the recipe can possibly change f.
	// It is a cheap gate, typically an import check, run before the walk.
	Applicable(f *File) bool

	// Visitor returns the visitor implementing the rewrite.
	// A fresh visitor is obtained for every file, so visitors may
	// carry per-file state.
	Visitor() Visitor
}

// A ModRecipe rewrites go.mod files.
// RewriteMod reports whether it changed the file.
type ModRecipe interface {
	Recipe
	RewriteMod(mf *modfile.File) bool
}

// A VersionGated recipe only applies to modules whose go directive is at
// least MinGoVersion (in semver form, e.g. "v1.22").
type VersionGated interface {
	MinGoVersion() string
}

// Apply runs r over f and reports whether any edits were recorded.
func Apply(r GoRecipe, f *File) bool {
	if !r.Applicable(f) {
		return false
	}
	v := r.Visitor()
	Walk(f.Syntax, func(stack []ast.Node) {
		v(f, stack)
	})
	return f.Modified()
}

// Enabled reports whether r may run against a module with the given go
// directive version ("1.21"). An empty goVersion enables everything.
// Pre-release directives like "1.21rc2" are compared by their numeric
// prefix; a directive that is not a version at all disables gated
// recipes rather than guessing.
func Enabled(r Recipe, goVersion string) bool {
	g, ok := r.(VersionGated)
	if !ok || goVersion == "" {
		return true
	}
	v := "v" + goVersion
	if !semver.IsValid(v) {
		v = "v" + numericPrefix(goVersion)
		if !semver.IsValid(v) {
			return false
		}
	}
	return semver.Compare(v, g.MinGoVersion()) >= 0
}

func numericPrefix(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < '0' || c > '9') && c != '.' {
			return s[:i]
		}
	}
	return s
}
