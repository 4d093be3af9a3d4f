package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/script"
)

// FileValidation is the validation outcome of one scenario file.
type FileValidation struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid bool             `json:"valid"`
	Files []FileValidation `json:"files"`
}

// String renders the result for text output.
func (r ValidationResult) String() string {
	var b strings.Builder
	for i, f := range r.Files {
		if i > 0 {
			b.WriteByte('\n')
		}
		if f.Valid {
			fmt.Fprintf(&b, "ok      %s", f.Path)
		} else {
			fmt.Fprintf(&b, "invalid %s: %s", f.Path, f.Error)
		}
	}
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scenario.yaml>...",
		Short: "Check scenario files without running them",
		Long: `Parse scenario files and check them against the scenario schema.

Every file is checked; all problems are reported before exiting.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result := ValidationResult{Valid: true}
	for _, path := range paths {
		formatter.VerboseLog("Validating %s", path)
		fv := FileValidation{Path: path, Valid: true}
		if _, err := script.LoadScenario(path); err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			result.Valid = false
		}
		result.Files = append(result.Files, fv)
	}

	if !result.Valid {
		_ = formatter.Error(ErrCodeSchema, "one or more scenario files are invalid", result)
		if opts.Format != "json" {
			fmt.Fprintln(formatter.Writer, result)
		}
		return NewExitError(ExitCommandError, "validation failed")
	}

	return formatter.Success(result)
}
