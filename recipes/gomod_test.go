// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"testing"

	"github.com/murdos/rewrite-go/rewrite/rewritetest"
)

func TestModGoVersion(t *testing.T) {
	rewritetest.RunMod(t, ModGoVersion{Version: "1.22"}, `
module example.com/m

go 1.19

require golang.org/x/sync v0.17.0
`, `
module example.com/m

go 1.22

require golang.org/x/sync v0.17.0
`)
}

func TestModGoVersionNeverLowers(t *testing.T) {
	rewritetest.RunMod(t, ModGoVersion{Version: "1.21"}, `
module example.com/m

go 1.23
`, `
module example.com/m

go 1.23
`)
}

func TestModGoVersionMissingDirective(t *testing.T) {
	rewritetest.RunMod(t, ModGoVersion{Version: "1.22"}, `
module example.com/m
`, `
module example.com/m

go 1.22
`)
}
