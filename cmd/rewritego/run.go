// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
	"golang.org/x/xerrors"

	"github.com/murdos/rewrite-go/declarative"
	"github.com/murdos/rewrite-go/diff"
	"github.com/murdos/rewrite-go/recipes"
	"github.com/murdos/rewrite-go/rewrite"
)

var (
	runRecipes  []string
	runDiff     bool
	runJobs     int
	runDefsFile string
	runFileMode bool
)

var runCmd = &cobra.Command{
	Use:   "run [patterns]",
	Short: "Apply recipes to the packages matching the given patterns",
	Long: `Run applies the selected recipes to every Go file of the packages
matching the given patterns (default ./...). With --files, arguments
are files and directories instead of package patterns. Files are
rewritten in place unless --diff is given.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringArrayVarP(&runRecipes, "recipe", "r", nil, "recipe to apply (repeatable)")
	runCmd.Flags().BoolVar(&runDiff, "diff", false, "print a unified diff instead of rewriting files")
	runCmd.Flags().IntVar(&runJobs, "jobs", runtime.GOMAXPROCS(0), "number of files to rewrite in parallel")
	runCmd.Flags().StringVar(&runDefsFile, "config", "", "YAML file with composite recipe definitions")
	runCmd.Flags().BoolVar(&runFileMode, "files", false, "treat arguments as files and directories, not package patterns")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := findConfig(".")
	if err != nil {
		return err
	}

	names := runRecipes
	if len(names) == 0 {
		names = cfg.Recipes
	}
	if len(names) == 0 {
		return xerrors.New("no recipes selected; use -r or a rewritego.toml")
	}
	selected, err := resolveRecipes(names)
	if err != nil {
		return err
	}

	goVersion, err := applyModRecipes(selected, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	files, err := collectFiles(args, &cfg)
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex // guards stdout
		changed int
	)
	g := new(errgroup.Group)
	g.SetLimit(max(runJobs, 1))
	for _, file := range files {
		file := file
		g.Go(func() error {
			src, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			out, ok, err := rewrite.ApplyAll(selected, file, src, goVersion)
			if err != nil {
				return err
			}
			if !ok || bytes.Equal(src, out) {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			changed++
			if runDiff {
				d, err := diff.Diff(filepath.Join("old", file), src, filepath.Join("new", file), out)
				if err != nil {
					return err
				}
				printDiff(cmd.OutOrStdout(), d)
				return nil
			}
			return writeFile(file, out)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !runDiff {
		log.Printf("rewrote %d of %d files", changed, len(files))
	}
	return nil
}

// resolveRecipes maps names to recipes, expanding composites from the
// --config definitions file into their members.
func resolveRecipes(names []string) ([]rewrite.Recipe, error) {
	composites := make(map[string]*declarative.Composite)
	if runDefsFile != "" {
		data, err := os.ReadFile(runDefsFile)
		if err != nil {
			return nil, err
		}
		list, err := declarative.Load(data, recipes.ByName)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			composites[c.Name()] = c
		}
	}

	var out []rewrite.Recipe
	for _, name := range names {
		if c, ok := composites[name]; ok {
			out = append(out, c.Recipes()...)
			continue
		}
		r, ok := recipes.ByName(name)
		if !ok {
			return nil, xerrors.Errorf("unknown recipe %s", name)
		}
		out = append(out, r)
	}
	return out, nil
}

// applyModRecipes runs any selected go.mod recipes against the
// module's go.mod and returns the module's go directive version for
// gating the source recipes. Without a go.mod everything runs ungated.
func applyModRecipes(selected []rewrite.Recipe, out io.Writer) (goVersion string, err error) {
	modPath, err := findGoMod(".")
	if err != nil || modPath == "" {
		return "", err
	}
	data, err := os.ReadFile(modPath)
	if err != nil {
		return "", err
	}
	mf, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return "", xerrors.Errorf("parsing %s: %w", modPath, err)
	}

	changed := false
	for _, r := range selected {
		if mr, ok := r.(rewrite.ModRecipe); ok && mr.RewriteMod(mf) {
			changed = true
		}
	}
	if mf.Go != nil {
		goVersion = mf.Go.Version
	}
	if !changed {
		return goVersion, nil
	}
	formatted := modfile.Format(mf.Syntax)
	if runDiff {
		d, err := diff.Diff(filepath.Join("old", modPath), data, filepath.Join("new", modPath), formatted)
		if err != nil {
			return "", err
		}
		printDiff(out, d)
		return goVersion, nil
	}
	return goVersion, writeFile(modPath, formatted)
}

func findGoMod(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// collectFiles returns the Go files named by args, via the go package
// loader or, in --files mode, by walking directories.
func collectFiles(args []string, cfg *toolConfig) ([]string, error) {
	var files []string
	if runFileMode {
		if len(args) == 0 {
			args = []string{"."}
		}
		for _, arg := range args {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, err
			}
			if !info.IsDir() {
				files = append(files, arg)
				continue
			}
			err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				name := d.Name()
				if d.IsDir() {
					if path != arg && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "vendor") {
						return filepath.SkipDir
					}
					return nil
				}
				if strings.HasSuffix(name, ".go") {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		}
	} else {
		if len(args) == 0 {
			args = []string{"./..."}
		}
		pkgCfg := &packages.Config{
			Mode:  packages.NeedName | packages.NeedFiles,
			Tests: true,
		}
		pkgs, err := packages.Load(pkgCfg, args...)
		if err != nil {
			return nil, xerrors.Errorf("loading packages: %w", err)
		}
		seen := make(map[string]bool)
		for _, p := range pkgs {
			for _, f := range p.GoFiles {
				if !seen[f] {
					seen[f] = true
					files = append(files, f)
				}
			}
		}
	}

	var out []string
	for _, f := range files {
		if !cfg.excluded(f) {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out, nil
}

func writeFile(name string, data []byte) error {
	mode := fs.FileMode(0666)
	if info, err := os.Stat(name); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(name, data, mode)
}

var (
	diffOld  = color.New(color.FgRed)
	diffNew  = color.New(color.FgGreen)
	diffHunk = color.New(color.FgCyan)
)

// printDiff writes a unified diff with the usual +/- coloring.
// The color package disables itself when stdout is not a terminal.
func printDiff(w io.Writer, d []byte) {
	for _, line := range bytes.SplitAfter(d, []byte("\n")) {
		switch {
		case bytes.HasPrefix(line, []byte("+")):
			diffNew.Fprint(w, string(line))
		case bytes.HasPrefix(line, []byte("-")):
			diffOld.Fprint(w, string(line))
		case bytes.HasPrefix(line, []byte("@@")):
			diffHunk.Fprint(w, string(line))
		default:
			io.WriteString(w, string(line))
		}
	}
}
