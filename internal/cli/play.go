package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/script"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Trace bool // print the canonical trace
}

// PlayResult is the JSON payload of the play command.
type PlayResult struct {
	Name     string           `json:"name"`
	Pass     bool             `json:"pass"`
	Steps    int              `json:"steps"`
	Released int              `json:"released"`
	Failures []script.Failure `json:"failures,omitempty"`
	Trace    string           `json:"trace,omitempty"`
}

// String renders the result for text output.
func (r PlayResult) String() string {
	var b strings.Builder
	status := "PASS"
	if !r.Pass {
		status = "FAIL"
	}
	fmt.Fprintf(&b, "%s %s (%d steps, %d released)", status, r.Name, r.Steps, r.Released)
	for _, f := range r.Failures {
		if f.Step == 0 {
			fmt.Fprintf(&b, "\n  - %s", f.Message)
		} else {
			fmt.Fprintf(&b, "\n  - step %d: %s", f.Step, f.Message)
		}
	}
	if r.Trace != "" {
		fmt.Fprintf(&b, "\n%s", r.Trace)
	}
	return b.String()
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play <scenario.yaml>",
		Short: "Run a scripted roster session",
		Long: `Run a scenario file against a fresh, empty roster.

Each step (add, list, delete, clear) is executed in order and checked
against its expect clause. Steps without one must succeed.

Exit codes:
  0 - All expectations held
  1 - One or more expectations failed
  2 - Command error (missing or invalid scenario file)

Examples:
  roster play ./scenarios/basic.yaml
  roster play ./scenarios/basic.yaml --trace
  roster play ./scenarios/basic.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print the canonical JSON trace")

	return cmd
}

func runPlay(opts *PlayOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	slog.Info("loading scenario", "path", path)
	sc, err := script.LoadScenario(path)
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), map[string]string{"path": path})
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}
	formatter.VerboseLog("Loaded scenario %q with %d step(s)", sc.Name, len(sc.Steps))

	result, err := script.Run(sc)
	if err != nil {
		_ = formatter.Error(ErrCodeRun, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to run scenario", err)
	}

	out := PlayResult{
		Name:     result.Name,
		Pass:     result.Passed(),
		Steps:    len(result.Trace),
		Released: result.Released,
		Failures: result.Failures,
	}
	if opts.Trace {
		snapshot, err := script.Snapshot(result)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to render trace", err)
		}
		out.Trace = string(snapshot)
	}

	slog.Info("scenario finished", "name", out.Name, "pass", out.Pass, "failures", len(out.Failures))

	if err := formatter.Success(out); err != nil {
		return err
	}
	if !out.Pass {
		return NewExitError(ExitFailure, fmt.Sprintf("scenario %q failed (%s)", out.Name, ErrCodeExpected))
	}
	return nil
}
