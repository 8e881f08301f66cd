// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewritetest verifies recipes against literal before/after
// source snippets. Passing after == before asserts that the recipe
// leaves the snippet alone.
package rewritetest

import (
	"go/format"
	"testing"

	"golang.org/x/mod/modfile"

	"github.com/murdos/rewrite-go/diff"
	"github.com/murdos/rewrite-go/rewrite"
)

// Run applies r to before and requires the result to equal after
// (both gofmt-normalized). It also requires the recipe to be
// idempotent: applying it to its own output must change nothing.
func Run(t *testing.T, r rewrite.GoRecipe, before, after string) {
	t.Helper()
	out := apply(t, r, []byte(before))
	want := gofmt(t, []byte(after))
	if string(out) != string(want) {
		t.Errorf("%s: wrong output\n%s", r.Name(), diffText(t, want, out))
		return
	}
	again := apply(t, r, out)
	if string(again) != string(out) {
		t.Errorf("%s: not idempotent\n%s", r.Name(), diffText(t, out, again))
	}
}

// Unchanged asserts that r does not modify src.
func Unchanged(t *testing.T, r rewrite.GoRecipe, src string) {
	t.Helper()
	Run(t, r, src, src)
}

// RunMod applies a go.mod recipe to before and requires the
// formatted result to equal after.
func RunMod(t *testing.T, r rewrite.ModRecipe, before, after string) {
	t.Helper()
	mf, err := modfile.Parse("go.mod", []byte(before), nil)
	if err != nil {
		t.Fatalf("parsing go.mod: %v", err)
	}
	changed := r.RewriteMod(mf)
	out := modfile.Format(mf.Syntax)
	wantf, err := modfile.Parse("go.mod", []byte(after), nil)
	if err != nil {
		t.Fatalf("parsing want go.mod: %v", err)
	}
	want := modfile.Format(wantf.Syntax)
	if string(out) != string(want) {
		t.Errorf("%s: wrong go.mod\n%s", r.Name(), diffText(t, want, out))
	}
	if wantChanged := before != after; changed != wantChanged {
		t.Errorf("%s: RewriteMod reported %v, want %v", r.Name(), changed, wantChanged)
	}
}

func apply(t *testing.T, r rewrite.GoRecipe, src []byte) []byte {
	t.Helper()
	f, err := rewrite.Parse("in.go", src)
	if err != nil {
		t.Fatalf("parsing input: %v", err)
	}
	rewrite.Apply(r, f)
	if err := f.Err(); err != nil {
		t.Fatalf("%s: %v", r.Name(), err)
	}
	out, err := f.Output()
	if err != nil {
		t.Fatalf("%s: %v", r.Name(), err)
	}
	return gofmt(t, out)
}

func gofmt(t *testing.T, src []byte) []byte {
	t.Helper()
	out, err := format.Source(src)
	if err != nil {
		t.Fatalf("gofmt: %v\n%s", err, src)
	}
	return out
}

func diffText(t *testing.T, want, have []byte) []byte {
	t.Helper()
	d, err := diff.Diff("want", want, "have", have)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
