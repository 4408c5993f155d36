package cli

import (
	"io"
	"pkglists/internal/collectors"
	"pkglists/internal/report"

	"github.com/spf13/cobra"
)

func newCollectorsCmd(stdout io.Writer, deps Deps) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "collectors",
		Short: "List the package collectors and whether their tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			statuses := collectors.CheckAvailability(deps.Executor, deps.Catalog)
			return report.WriteCollectors(stdout, format, statuses)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatText), "output format: text|json|yaml")
	return cmd
}
