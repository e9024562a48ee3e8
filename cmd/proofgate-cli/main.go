// Package main provides the entry point for proofgate-cli.
//
// proofgate-cli is the command-line solver for the applicant challenge.
package main

import (
	"fmt"
	"os"

	"github.com/proofgate/proofgate-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
