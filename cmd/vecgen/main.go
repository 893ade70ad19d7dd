// Package main is the entry point for the vecgen fixture generator.
package main

import (
	"os"

	"github.com/zkbeta/vecgen/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
