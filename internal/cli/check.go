package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castsched/castsched/internal/config"
	"github.com/castsched/castsched/internal/loader"
)

// CheckResult summarizes a passed pre-flight check.
type CheckResult struct {
	SettingsPath string `json:"settings_path"`
	SizePolicy   string `json:"size_policy"` // "casts" or "charges"
	Instances    int    `json:"instances"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <settings-file>",
		Short: "Pre-flight check settings and all instance inputs",
		Long: `Validate a settings file and every problem instance it configures.

Checks that exactly one problem-size limiting policy is selected with its
bounds defined, then reads all four input files of every configured instance
end to end, stopping at the first failure. Intended as a gate before
starting a long scheduling job.

Example:
  castsched check ./input_metadata.yaml
  castsched check ./input_metadata.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, settingsPath string, cmd *cobra.Command) error {
	runID := newRunID()
	configureLogging(opts.Verbose, runID)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		RunID:     runID,
	}

	s, err := config.Load(settingsPath)
	if err != nil {
		return reportCommandError(formatter, err)
	}

	indices, err := s.IndexList()
	if err != nil {
		return reportFailure(formatter, err)
	}

	formatter.VerboseLog("checking problem-size limiting policy")
	if err := s.CheckProblemSize(); err != nil {
		return reportFailure(formatter, err)
	}

	formatter.VerboseLog("reading all input files for %d instance(s)", len(indices))
	if err := loader.CheckInputReading(s); err != nil {
		return reportFailure(formatter, err)
	}

	policy := "charges"
	if s.LimitByCasts {
		policy = "casts"
	}
	result := CheckResult{
		SettingsPath: settingsPath,
		SizePolicy:   policy,
		Instances:    len(indices),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ settings ok, %d instance(s) readable (size policy: %s)\n",
		result.Instances, result.SizePolicy)
	return nil
}
