package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/identicount/counter"
	"github.com/viant/identicount/counter/graph"
)

// usageError marks a malformed invocation so main exits with the usage code.
type usageError struct{ error }

func (usageError) ExitCode() int { return 2 }

func newRootCmd() *cobra.Command {
	var verbosity int
	var quiet bool
	var exclude string
	var asYAML bool

	cmd := &cobra.Command{
		Use:           "identicount [path...]",
		Short:         "Count declared identifiers in Python source files",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := graph.DefaultConfig()
			config.Exclude = exclude
			service, err := counter.New(config)
			if err != nil {
				return usageError{err}
			}
			report, err := service.Check(cmd.Context(), args)
			if err != nil {
				return err
			}
			if report.Empty() {
				if !quiet {
					fmt.Fprintln(cmd.ErrOrStderr(), "no source files to analyze")
				}
				return nil
			}
			if asYAML {
				data, err := report.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			report.Render(cmd.OutOrStdout(), verbosity)
			return nil
		},
	}

	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "escalate output detail; repeat for a per-identifier listing")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the no-input notice")
	cmd.Flags().StringVarP(&exclude, "exclude", "e", "", "regular expression removing matching file names")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "emit the report as YAML")
	return cmd
}
