// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rewritego applies migration recipes to Go source trees.
//
// Usage:
//
//	rewritego list
//	rewritego run [-r recipe]... [--diff] [--config defs.yaml] [patterns]
//
// A recipe is a named source-to-source migration: it matches a
// well-understood legacy pattern and rewrites it to the modern form.
// Recipes refuse to guess. When a match is ambiguous, when a rewrite
// would change behavior, or when a name the rewrite needs is shadowed,
// the recipe leaves that code alone.
//
// Run applies the selected recipes to every Go file of the packages
// matching the given patterns (default ./...). With --files, the
// arguments are files and directories instead of package patterns.
// By default changed files are rewritten in place; --diff prints a
// unified diff instead.
//
// Recipes that depend on newer language features are gated on the
// module's go directive. For example go.HandlerMethodPattern rewrites
// handlers to "GET /path" route patterns only when go.mod says 1.22
// or later. Running go.ModGoVersion in the same invocation raises the
// directive first, which unlocks the gated recipes.
//
// # Configuration
//
// An optional rewritego.toml, found in the working directory or any
// parent, supplies the default recipe selection and path globs to
// skip:
//
//	recipes = ["go.NoIoutil", "go.AnyType"]
//	exclude = ["*_gen.go", "internal/thirdparty/*"]
//
// Explicit -r flags override the configured selection.
//
// # Composite recipes
//
// The --config flag names a YAML file defining composite recipes,
// one document per composite. A composite is a name for a sequence
// of recipes, run in order:
//
//	name: go.Modernize122
//	displayName: Modernize for Go 1.22
//	recipes:
//	  - go.NoIoutil
//	  - go.AnyType
//	  - go.HandlerMethodPattern
//
// Composite names can then be used with -r like built-in recipes.
package main
