package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castsched/castsched/internal/config"
	"github.com/castsched/castsched/internal/loader"
)

// InstanceSummary is one loaded instance's headline numbers.
type InstanceSummary struct {
	Name     string `json:"name"`
	Stages   int    `json:"stages"`
	Machines int    `json:"machines"`
	Casts    int    `json:"casts"`
	Charges  int    `json:"charges"`
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <settings-file>",
		Short: "Load and summarize every configured instance",
		Long: `Load every configured problem instance and print a one-line summary per
instance: name, stage, machine, cast and charge counts. Instances are loaded
lazily in index-list order; the first failing instance halts the listing.

Example:
  castsched show ./input_metadata.yaml
  castsched show ./input_metadata.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, settingsPath string, cmd *cobra.Command) error {
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

	summaries := []InstanceSummary{}
	it := loader.NewIterator(s)
	for it.Next() {
		p := it.Problem()
		sum := InstanceSummary{
			Name:     p.Name,
			Stages:   len(p.StageSeq),
			Machines: p.MachineCount(),
			Casts:    len(p.CastSeq),
			Charges:  p.ChargeCount(),
		}
		summaries = append(summaries, sum)
		if formatter.Format != "json" {
			fmt.Fprintf(formatter.Writer, "%s: %d stage(s), %d machine(s), %d cast(s), %d charge(s)\n",
				sum.Name, sum.Stages, sum.Machines, sum.Casts, sum.Charges)
		}
	}
	if err := it.Err(); err != nil {
		return reportFailure(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(summaries)
	}
	fmt.Fprintf(formatter.Writer, "%d instance(s) loaded\n", len(summaries))
	return nil
}
