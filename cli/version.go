package cli

import (
	"fmt"

	"github.com/compozy/gofpatterns/cli/helpers"
	"github.com/compozy/gofpatterns/pkg/version"
	"github.com/spf13/cobra"
)

// VersionCmd returns the version command
func VersionCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if format == "" {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "gofpatterns %s\n", info)
				return err
			}
			f, err := helpers.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			return helpers.NewOutputWriter(cmd.OutOrStdout(), f).WriteData(info)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Structured output format (json, yaml)")
	return cmd
}
