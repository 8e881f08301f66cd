// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

// ApplyAll runs the Go recipes in rs over src in order and returns the
// final text. The file is reparsed between recipes, so each recipe
// sees the output of the previous one and edits never collide across
// recipes. Recipes gated behind a newer go version than goVersion are
// skipped; an empty goVersion skips nothing.
func ApplyAll(rs []Recipe, name string, src []byte, goVersion string) ([]byte, bool, error) {
	changed := false
	for _, r := range rs {
		gr, ok := r.(GoRecipe)
		if !ok || !Enabled(r, goVersion) {
			continue
		}
		f, err := Parse(name, src)
		if err != nil {
			return nil, false, err
		}
		if !Apply(gr, f) {
			continue
		}
		if err := f.Err(); err != nil {
			return nil, false, err
		}
		out, err := f.Output()
		if err != nil {
			return nil, false, err
		}
		src = out
		changed = true
	}
	return src, changed, nil
}
