// Package command provides CLI command definitions for proofgate.
package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/proofgate/proofgate-go/internal/cli/output"
	"github.com/proofgate/proofgate-go/internal/storage"
)

// HistoryCommand returns the history command.
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:    "history",
		Aliases: []string{"hist"},
		Usage:   "Show journaled solve attempts, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   20,
				Usage:   "Maximum attempts to show (0 = all)",
			},
		},
		Action: historyAction,
	}
}

func historyAction(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	if flags.DataDir == "" {
		return fmt.Errorf("history requires --data-dir (or PROOFGATE_DATA_DIR)")
	}

	logger := newLogger(flags.Verbose)
	journal, err := storage.NewBadgerJournal(storage.BadgerConfig{
		Dir:    flags.DataDir,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer journal.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	attempts, err := journal.List(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	if output.Format(flags.Output) == output.FormatJSON {
		return (&output.JSONFormatter{}).Format(os.Stdout, attempts)
	}

	table := &output.Table{
		Headers: []string{"ATTEMPT ID", "OUTCOME", "WINDOW", "FINGERPRINT", "CREATED"},
	}
	if flags.Wide {
		table.Headers = append(table.Headers, "SECRET")
	}
	for _, a := range attempts {
		row := []string{
			truncateID(a.ID),
			a.Outcome,
			fmt.Sprintf("%d", a.Window),
			a.Fingerprint,
			a.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if flags.Wide {
			row = append(row, truncateID(a.Secret))
		}
		table.Rows = append(table.Rows, row)
	}

	if err := table.Render(os.Stdout); err != nil {
		return err
	}
	fmt.Printf("\nTotal: %d attempts\n", len(attempts))
	return nil
}
