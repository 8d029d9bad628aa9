package cli

import (
	"github.com/spf13/cobra"
)

// NewSummarizeCommand creates the summarize command.
func NewSummarizeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <year>...",
		Short: "Count accidents per month for each year",
		Long: `Count accidents per month for each year. Years whose file is missing
or unreadable are logged as warnings and left out of the table.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			years := make([]any, len(args))
			for i, s := range args {
				years[i] = s
			}
			summary, err := a.pipeline.SummarizeYears(cmd.Context(), years)
			if err != nil {
				return classify("summarize", err)
			}
			return summary.WriteText(cmd.OutOrStdout())
		},
	}
}
