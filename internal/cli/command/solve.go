// Package command provides CLI command definitions for proofgate.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/proofgate/proofgate-go/internal/cli/output"
	"github.com/proofgate/proofgate-go/internal/core/domain"
	"github.com/proofgate/proofgate-go/internal/core/service"
)

// SolveCommand returns the solve command.
func SolveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Fetch the current challenge, compute the secret, and submit it",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Value:   60 * time.Second,
				Usage:   "Overall solve deadline (e.g., 60s, 2m)",
			},
		},
		Action: solveAction,
	}
}

func solveAction(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	logger := newLogger(flags.Verbose)

	applicant := &domain.Applicant{
		Name:  flags.ApplicantName,
		Email: flags.ApplicantEmail,
	}
	if err := applicant.Validate(); err != nil {
		return fmt.Errorf("applicant identity: %w (set --applicant-name and --applicant-email)", err)
	}

	api, err := newAPIClient(flags)
	if err != nil {
		return err
	}

	journal, err := openJournal(flags, logger)
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	cfg := &service.SolverServiceConfig{Logger: logger}
	if journal != nil {
		cfg.Journal = journal
	}
	solver := service.NewSolverService(api, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	reveal, err := solver.Solve(ctx, applicant)
	if err != nil {
		return err
	}

	if output.Format(flags.Output) == output.FormatJSON {
		return (&output.JSONFormatter{}).Format(os.Stdout, reveal)
	}

	fmt.Printf("Solution accepted.\n")
	fmt.Printf("  Secret: %s\n", reveal.Secret)
	return nil
}
