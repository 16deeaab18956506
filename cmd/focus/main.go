// Package main is the entry point for the focus CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/focustree/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is built after flag parsing so --dir can pick the state directory.
	rootCmd := cli.NewRootCommand(nil, version)
	return rootCmd.Execute()
}
