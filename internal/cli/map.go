package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BFavetto/fars/internal/domain"
)

// NewMapCommand creates the map command.
func NewMapCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "map <state> <year>",
		Short: "Plot one state's accidents for a year",
		Long: `Plot the accidents of one state in one year as a PNG named
accident_map_<state>_<year>.png in the map directory. Accidents with an
unknown position are left off. A state with no plottable accidents that
year produces no file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			drawn, err := a.pipeline.RenderStateMap(cmd.Context(), args[0], args[1])
			if err != nil {
				return classify("map", err)
			}
			if !drawn {
				return nil
			}
			// Both parsed inside RenderStateMap already.
			state, _ := domain.ParseStateCode(args[0])
			year, _ := domain.ParseYear(args[1])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.canvas.Path(state, year))
			return err
		},
	}
}
