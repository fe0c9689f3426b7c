package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/castsched/castsched/internal/config"
)

// PathsResult holds the resolved artifact paths for one instance index.
type PathsResult struct {
	Name  string               `json:"name"`
	Paths config.InstancePaths `json:"paths"`
}

// NewPathsCommand creates the paths command.
func NewPathsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <settings-file> <index>",
		Short: "Resolve the four input file paths for one instance index",
		Long: `Print where the four input files of the given instance index are expected
to live under the configured naming convention. Resolution is pure string
assembly; the filesystem is not touched.

Example:
  castsched paths ./input_metadata.yaml 7`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runPaths(opts *RootOptions, settingsPath, indexArg string, cmd *cobra.Command) error {
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

	idx, err := strconv.Atoi(indexArg)
	if err != nil {
		return reportCommandError(formatter, fmt.Errorf("instance index must be an integer, got %q", indexArg))
	}

	result := PathsResult{
		Name:  s.ProblemName(idx),
		Paths: s.Locate(idx),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "instance %s\n", result.Name)
	fmt.Fprintf(formatter.Writer, "  machine env:   %s\n", result.Paths.MachineEnv)
	fmt.Fprintf(formatter.Writer, "  cast:          %s\n", result.Paths.Cast)
	fmt.Fprintf(formatter.Writer, "  due dates:     %s\n", result.Paths.DueDate)
	fmt.Fprintf(formatter.Writer, "  process times: %s\n", result.Paths.ProcessTime)
	return nil
}
