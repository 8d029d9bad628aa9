package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BFavetto/fars/internal/domain"
)

// NewFilenameCommand creates the filename command.
func NewFilenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filename <year>",
		Short: "Print the data file name for a year",
		Long: `Print the data file name for a year, e.g. accident_2013.csv.bz2.
The file is not required to exist.`,
		Args: cobra.ExactArgs(1),
		// Naming needs no config, loader, or metrics.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := domain.MakeFilename(args[0])
			if err != nil {
				return classify("filename", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}
