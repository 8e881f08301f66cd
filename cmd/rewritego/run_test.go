// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestRunCommand runs the run subcommand over txtar archives. The
// archive comment holds the recipe names to apply; entries under want/
// are compared against the rewritten tree. An optional recipes.yaml
// entry supplies composite definitions.
func TestRunCommand(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no test cases")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			ar, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}
			dir := t.TempDir()
			want := make(map[string][]byte)
			for _, f := range ar.Files {
				if name, ok := strings.CutPrefix(f.Name, "want/"); ok {
					want[name] = f.Data
					continue
				}
				targ := filepath.Join(dir, f.Name)
				if err := os.MkdirAll(filepath.Dir(targ), 0777); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(targ, f.Data, 0666); err != nil {
					t.Fatal(err)
				}
			}

			if err := os.Chdir(dir); err != nil {
				t.Fatal(err)
			}
			defer os.Chdir(wd)

			runRecipes = strings.Fields(string(ar.Comment))
			runDiff = false
			runJobs = 1
			runDefsFile = ""
			runFileMode = true
			if _, err := os.Stat("recipes.yaml"); err == nil {
				runDefsFile = "recipes.yaml"
			}

			if err := runRun(runCmd, nil); err != nil {
				t.Fatal(err)
			}

			for name, data := range want {
				have, err := os.ReadFile(name)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(have, data) {
					t.Errorf("%s:\n%s\nwant:\n%s", name, have, data)
				}
			}
		})
	}
}

// TestRunDiffOutput checks that --diff output, the go.mod diff
// included, goes to the command's writer.
func TestRunDiffOutput(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module m\n\ngo 1.19\n"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	runRecipes = []string{"go.ModGoVersion"}
	runDiff = true
	runJobs = 1
	runDefsFile = ""
	runFileMode = true

	var buf bytes.Buffer
	runCmd.SetOut(&buf)
	defer runCmd.SetOut(nil)

	if err := runRun(runCmd, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "-go 1.19") || !strings.Contains(out, "+go 1.22") {
		t.Errorf("diff not captured:\n%s", out)
	}
	if data, err := os.ReadFile("go.mod"); err != nil || strings.Contains(string(data), "1.22") {
		t.Errorf("--diff rewrote go.mod: %s, %v", data, err)
	}
}
