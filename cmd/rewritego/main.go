// Copyright 2025 The rewrite-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "rewritego",
	Short:         "Apply migration recipes to Go source trees",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetPrefix("rewritego: ")
	log.SetFlags(0)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
