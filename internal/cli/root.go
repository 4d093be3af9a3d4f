package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/menu"
	"github.com/roach88/roster/internal/roster"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the roster CLI.
//
// Without a subcommand it runs the interactive menu on stdin/stdout.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - interactive student manager",
		Long: `Manage an in-memory roster of students from a text menu.

Records hold an ID, an age and a name (at most 49 characters). Choose
1 to add, 2 to list, 3 to delete by ID, 4 to delete everything and 0
to quit. Nothing is written to disk: all records are released on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for play/validate (json|text)")

	cmd.AddCommand(NewPlayCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// configureLogging installs the default slog handler on w.
// Verbose enables debug output; otherwise only warnings and errors are
// shown so the interactive menu stays readable.
func configureLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runInteractive(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store := roster.New()
	session := menu.NewSession(store, cmd.InOrStdin(), cmd.OutOrStdout(), menu.WithLogger(slog.Default()))

	slog.Debug("session starting")
	released, err := session.Run(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "session ended with error", err)
	}
	slog.Debug("session finished", "released", released)
	return nil
}
