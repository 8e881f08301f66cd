// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recipes

import (
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
)

// ModGoVersion raises the go directive of a module to a minimum
// language version. Modules already at or above the minimum are left
// alone; the directive is never lowered.
type ModGoVersion struct {
	// Version is the minimum language version, e.g. "1.22".
	Version string
}

// DefaultModGoVersion is used when no version is configured.
const DefaultModGoVersion = "1.22"

func (ModGoVersion) Name() string        { return "go.ModGoVersion" }
func (ModGoVersion) DisplayName() string { return "Raise the go directive" }
func (ModGoVersion) Description() string {
	return "Raise the go.mod go directive to a configured minimum language version."
}

func (r ModGoVersion) RewriteMod(mf *modfile.File) bool {
	version := r.Version
	if version == "" {
		version = DefaultModGoVersion
	}
	if !semver.IsValid("v" + version) {
		return false
	}
	if mf.Go != nil && semver.Compare("v"+mf.Go.Version, "v"+version) >= 0 {
		return false
	}
	if err := mf.AddGoStmt(version); err != nil {
		return false
	}
	mf.Cleanup()
	return true
}
