// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
)

// toolConfig is the optional rewritego.toml, looked up from the
// working directory towards the filesystem root. It supplies the
// default recipe selection and paths to skip.
type toolConfig struct {
	Recipes []string `toml:"recipes"`
	Exclude []string `toml:"exclude"`

	dir string // directory the config was found in; excludes are relative to it
}

const configName = "rewritego.toml"

// findConfig loads the nearest rewritego.toml at or above dir.
// A missing config is not an error; the zero config is returned.
func findConfig(dir string) (toolConfig, error) {
	var cfg toolConfig
	dir, err := filepath.Abs(dir)
	if err != nil {
		return cfg, err
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			if _, err := toml.DecodeFile(candidate, &cfg); err != nil {
				return cfg, xerrors.Errorf("reading %s: %w", candidate, err)
			}
			cfg.dir = dir
			return cfg, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cfg, nil
		}
		dir = parent
	}
}

// excluded reports whether path matches any of the exclude globs.
// Globs are tried against the path as given, against the path made
// relative to the config's directory, and against the base name, so
// "internal/thirdparty/*" works for the absolute paths the package
// loader reports.
func (c *toolConfig) excluded(path string) bool {
	rel := ""
	if c.dir != "" {
		if abs, err := filepath.Abs(path); err == nil {
			if r, err := filepath.Rel(c.dir, abs); err == nil {
				rel = r
			}
		}
	}
	for _, glob := range c.Exclude {
		if ok, _ := filepath.Match(glob, path); ok {
			return true
		}
		if rel != "" {
			if ok, _ := filepath.Match(glob, rel); ok {
				return true
			}
		}
		if ok, _ := filepath.Match(glob, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}
