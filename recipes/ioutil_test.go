// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"testing"

	"github.com/murdos/rewrite-go/rewrite/rewritetest"
)

func TestNoIoutil(t *testing.T) {
	rewritetest.Run(t, NoIoutil{}, `
package main

import (
	"fmt"
	"io/ioutil"
)

func main() {
	data, err := ioutil.ReadFile("config.json")
	if err != nil {
		fmt.Println(err)
	}
	_ = data
}
`, `
package main

import (
	"fmt"
	"os"
)

func main() {
	data, err := os.ReadFile("config.json")
	if err != nil {
		fmt.Println(err)
	}
	_ = data
}
`)
}

func TestNoIoutilKeepsImportWhileUsed(t *testing.T) {
	// ReadDir has no drop-in replacement, so the call and the
	// import both survive while ReadAll is still rewritten.
	rewritetest.Run(t, NoIoutil{}, `
package p

import (
	"io"
	"io/ioutil"
)

func f(r io.Reader) {
	ioutil.ReadAll(r)
	ioutil.ReadDir(".")
}
`, `
package p

import (
	"io"
	"io/ioutil"
)

func f(r io.Reader) {
	io.ReadAll(r)
	ioutil.ReadDir(".")
}
`)
}

func TestNoIoutilAliasedImport(t *testing.T) {
	rewritetest.Run(t, NoIoutil{}, `
package p

import iou "io/ioutil"

func f() {
	iou.WriteFile("out.txt", nil, 0644)
	iou.TempDir("", "scratch")
}
`, `
package p

import "os"

func f() {
	os.WriteFile("out.txt", nil, 0644)
	os.MkdirTemp("", "scratch")
}
`)
}

func TestNoIoutilShadowedTarget(t *testing.T) {
	// A package-level os means os.ReadFile cannot be referenced.
	rewritetest.Unchanged(t, NoIoutil{}, `
package p

import "io/ioutil"

var os = struct{}{}

func f() {
	ioutil.ReadFile("config.json")
}
`)
}

func TestNoIoutilReadDirUnchanged(t *testing.T) {
	rewritetest.Unchanged(t, NoIoutil{}, `
package p

import "io/ioutil"

func f() {
	ioutil.ReadDir(".")
}
`)
}
