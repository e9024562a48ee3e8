// Package command provides CLI command definitions for proofgate.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/proofgate/proofgate-go/internal/core/service"
)

// DecodeCommand returns the decode command.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Aliases:   []string{"rot13"},
		Usage:     "ROT13-transcode text from stdin, arguments, or --text",
		ArgsUsage: "[TEXT...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "text",
				Usage: "Text to transcode instead of reading stdin",
			},
		},
		Action: decodeAction,
	}
}

func decodeAction(c *cli.Context) error {
	// The transform is its own inverse, so the same command encodes
	// and decodes.
	var (
		src      io.Reader = os.Stdin
		fromArgs bool
	)
	if text := c.String("text"); text != "" {
		src = strings.NewReader(text)
		fromArgs = true
	} else if c.Args().Present() {
		src = strings.NewReader(strings.Join(c.Args().Slice(), " "))
		fromArgs = true
	}

	solver := service.NewSolverService(nil, nil)
	if _, err := solver.Decode(src, os.Stdout); err != nil {
		return fmt.Errorf("transcode: %w", err)
	}

	// Inline input gets a trailing newline; piped input passes through
	// byte for byte.
	if fromArgs {
		fmt.Println()
	}
	return nil
}
