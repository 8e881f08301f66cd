// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package declarative loads composite recipes from YAML documents.
// A composite names a list of member recipes and runs them in order:
//
//	name: go.Modernize122
//	displayName: Modernize for Go 1.22
//	description: Catch-up migrations for code bases moving to Go 1.22.
//	recipes:
//	  - go.NoIoutil
//	  - go.AnyType
//	  - go.NoRandSeed
package declarative

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/murdos/rewrite-go/rewrite"
)

// A Composite is a named sequence of recipes.
type Composite struct {
	name        string
	displayName string
	description string
	recipes     []rewrite.Recipe
}

func (c *Composite) Name() string        { return c.name }
func (c *Composite) DisplayName() string { return c.displayName }
func (c *Composite) Description() string { return c.description }

// Recipes returns the members in declaration order.
func (c *Composite) Recipes() []rewrite.Recipe { return c.recipes }

type document struct {
	Name        string   `yaml:"name"`
	DisplayName string   `yaml:"displayName"`
	Description string   `yaml:"description"`
	Recipes     []string `yaml:"recipes"`
}

// Load parses one or more YAML composite definitions, resolving member
// names through lookup. Unknown members and empty composites are
// errors.
func Load(data []byte, lookup func(name string) (rewrite.Recipe, bool)) ([]*Composite, error) {
	var out []*Composite
	seen := make(map[string]bool)

	var docs []document
	if err := unmarshalDocs(data, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.Name == "" {
			return nil, xerrors.New("composite recipe without a name")
		}
		if seen[d.Name] {
			return nil, xerrors.Errorf("composite recipe %s defined twice", d.Name)
		}
		seen[d.Name] = true
		if len(d.Recipes) == 0 {
			return nil, xerrors.Errorf("composite recipe %s has no members", d.Name)
		}
		c := &Composite{
			name:        d.Name,
			displayName: d.DisplayName,
			description: d.Description,
		}
		for _, member := range d.Recipes {
			r, ok := lookup(member)
			if !ok {
				return nil, xerrors.Errorf("composite recipe %s: unknown recipe %s", d.Name, member)
			}
			c.recipes = append(c.recipes, r)
		}
		out = append(out, c)
	}
	return out, nil
}

// unmarshalDocs reads every YAML document in data into docs.
func unmarshalDocs(data []byte, docs *[]document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var d document
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("parsing recipe definition: %w", err)
		}
		*docs = append(*docs, d)
	}
}
