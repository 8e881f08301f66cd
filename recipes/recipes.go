// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recipes holds the built-in migration recipes: one file per
// rule, each a pattern match over the syntax handed to it by the
// rewrite driver. Recipes that cannot prove a rewrite is safe leave
// the source untouched.
package recipes

import (
	"sort"
	"strings"

	"github.com/murdos/rewrite-go/rewrite"
)

// All returns the built-in recipes, sorted by name.
func All() []rewrite.Recipe {
	rs := []rewrite.Recipe{
		AnyType{},
		ErrorsWrapToFmt{},
		HTTPMethodLiterals{},
		HandlerMethodPattern{},
		ModGoVersion{},
		NoIoutil{},
		NoRandSeed{},
		TimeSince{},
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].Name() < rs[j].Name() })
	return rs
}

// ByName returns the built-in recipe with the given name.
func ByName(name string) (rewrite.Recipe, bool) {
	for _, r := range All() {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// qualify returns the name by which the package at path can be
// referenced in f, importing it if needed. It reports false when the
// package name is taken by a local declaration or another import, in
// which case the caller must not rewrite.
func qualify(f *rewrite.File, path string) (string, bool) {
	if name, ok := f.ImportName(path); ok {
		return name, true
	}
	name := path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if f.Shadowed(name) {
		return "", false
	}
	f.AddImport(path)
	return name, true
}
