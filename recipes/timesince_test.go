// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"testing"

	"github.com/murdos/rewrite-go/rewrite/rewritetest"
)

func TestTimeSince(t *testing.T) {
	rewritetest.Run(t, TimeSince{}, `
package p

import "time"

func f(start, deadline time.Time) (time.Duration, time.Duration) {
	elapsed := time.Now().Sub(start)
	left := deadline.Sub(time.Now())
	return elapsed, left
}
`, `
package p

import "time"

func f(start, deadline time.Time) (time.Duration, time.Duration) {
	elapsed := time.Since(start)
	left := time.Until(deadline)
	return elapsed, left
}
`)
}

func TestTimeSinceAliasedImport(t *testing.T) {
	rewritetest.Run(t, TimeSince{}, `
package p

import clock "time"

func f(start clock.Time) clock.Duration {
	return clock.Now().Sub(start)
}
`, `
package p

import clock "time"

func f(start clock.Time) clock.Duration {
	return clock.Since(start)
}
`)
}

func TestTimeSincePlainSub(t *testing.T) {
	rewritetest.Unchanged(t, TimeSince{}, `
package p

import "time"

func f(a, b time.Time) time.Duration {
	return b.Sub(a)
}
`)
}
