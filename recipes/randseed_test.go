// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"testing"

	"github.com/murdos/rewrite-go/rewrite/rewritetest"
)

func TestNoRandSeed(t *testing.T) {
	rewritetest.Run(t, NoRandSeed{}, `
package p

import (
	"math/rand"
	"time"
)

func init() {
	// pick a fresh sequence on every start
	rand.Seed(time.Now().UnixNano())
}

func roll() int {
	return rand.Intn(6)
}
`, `
package p

import (
	"math/rand"
)

func init() {
	// pick a fresh sequence on every start
}

func roll() int {
	return rand.Intn(6)
}
`)
}

func TestNoRandSeedKeepsTimeWhenUsed(t *testing.T) {
	rewritetest.Run(t, NoRandSeed{}, `
package p

import (
	"math/rand"
	"time"
)

var start = time.Now()

func init() {
	rand.Seed(time.Now().UnixNano())
	_ = rand.Int()
}
`, `
package p

import (
	"math/rand"
	"time"
)

var start = time.Now()

func init() {
	_ = rand.Int()
}
`)
}

func TestNoRandSeedConstantSeed(t *testing.T) {
	// A constant seed makes the sequence reproducible on purpose.
	rewritetest.Unchanged(t, NoRandSeed{}, `
package p

import "math/rand"

func init() {
	rand.Seed(1)
}
`)
}

func TestNoRandSeedCustomSeed(t *testing.T) {
	rewritetest.Unchanged(t, NoRandSeed{}, `
package p

import "math/rand"

func seed(v int64) {
	rand.Seed(v)
}
`)
}
