// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/murdos/rewrite-go/recipes"
	"github.com/murdos/rewrite-go/rewrite"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available recipes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, r := range recipes.All() {
			gate := ""
			if g, ok := r.(rewrite.VersionGated); ok {
				gate = "go " + g.MinGoVersion()[1:] + "+"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name(), gate, r.DisplayName())
		}
		return w.Flush()
	},
}
