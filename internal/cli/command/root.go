// Package command provides CLI command definitions for proofgate.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/proofgate/proofgate-go/internal/client"
	"github.com/proofgate/proofgate-go/internal/infra/buildinfo"
	"github.com/proofgate/proofgate-go/internal/infra/tlsroots"
	"github.com/proofgate/proofgate-go/internal/storage"
)

// DefaultServer is the challenge service the CLI talks to unless
// overridden by --server or PROOFGATE_SERVER.
const DefaultServer = "dev.laiout.app"

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "proofgate",
		Usage:   "Applicant challenge solver and toolkit",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			SolveCommand(),
			DecodeCommand(),
			HistoryCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Challenge service address (host or full URL)",
			EnvVars: []string{"PROOFGATE_SERVER"},
			Value:   DefaultServer,
		},
		&cli.StringFlag{
			Name:    "applicant-name",
			Aliases: []string{"n"},
			Usage:   "Applicant full name sent with each request",
			EnvVars: []string{"APPLICANT_NAME"},
		},
		&cli.StringFlag{
			Name:    "applicant-email",
			Aliases: []string{"e"},
			Usage:   "Applicant email sent with each request",
			EnvVars: []string{"APPLICANT_EMAIL"},
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   "Directory for the local attempt journal (empty disables journaling)",
			EnvVars: []string{"PROOFGATE_DATA_DIR"},
		},
		&cli.StringFlag{
			Name:    "ca-file",
			Usage:   "PEM file with additional trusted CA certificates",
			EnvVars: []string{"PROOFGATE_CA_FILE"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// Server connection
	Server string
	CAFile string

	// Applicant identity
	ApplicantName  string
	ApplicantEmail string

	// Local journal
	DataDir string

	// Output format
	Output string // table, json
	Wide   bool

	// Other
	Verbose bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:         c.String("server"),
		CAFile:         c.String("ca-file"),
		ApplicantName:  c.String("applicant-name"),
		ApplicantEmail: c.String("applicant-email"),
		DataDir:        c.String("data-dir"),
		Output:         c.String("output"),
		Wide:           c.Bool("wide"),
		Verbose:        c.Bool("verbose"),
	}
}

// newAPIClient builds the HTTP client for the configured server,
// loading a private CA pool when --ca-file is set.
func newAPIClient(flags *GlobalFlags) (*client.HTTPClient, error) {
	var opts []client.Option
	if flags.CAFile != "" {
		pool := tlsroots.NewEmptyPool()
		if err := pool.AddCertFile(flags.CAFile); err != nil {
			return nil, fmt.Errorf("load CA file: %w", err)
		}
		opts = append(opts, client.WithTLSConfig(pool.TLSConfig()))
	}
	return client.NewHTTPClient(flags.Server, opts...), nil
}

// openJournal opens the local attempt journal when --data-dir is set.
// Returns nil when journaling is disabled.
func openJournal(flags *GlobalFlags, logger *slog.Logger) (storage.Journal, error) {
	if flags.DataDir == "" {
		return nil, nil
	}
	journal, err := storage.NewBadgerJournal(storage.BadgerConfig{
		Dir:    flags.DataDir,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return journal, nil
}

// newLogger creates the CLI logger. Verbose mode shows debug records;
// otherwise only warnings and errors reach stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// truncateID truncates long IDs for display.
func truncateID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:13] + "..."
}
