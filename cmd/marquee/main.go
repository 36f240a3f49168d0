// Package main provides the entry point for the marquee terminal client.
//
// Usage:
//
//	marquee [command] [flags]
//
// Run without a command to start the interactive client.
package main

import (
	"os"

	"github.com/riordanpawley/marquee/internal/cli"
)

func main() {
	if err := cli.NewApp().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
