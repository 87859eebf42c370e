// Package main is the entry point for the cmlc CLI.
package main

import (
	"os"

	"github.com/opendatadetector/cmlc/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
