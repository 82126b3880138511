package cli

import (
	"github.com/compozy/gofpatterns/cli/helpers"
	"github.com/compozy/gofpatterns/pkg/config"
	"github.com/spf13/cobra"
)

// ConfigCmd returns the config command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration diagnostics",
	}
	cmd.AddCommand(configShowCmd())
	return cmd
}

// configShowCmd prints the effective configuration after all sources are applied
func configShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := helpers.ParseOutputFormat(format)
			if err != nil {
				return err
			}
			cfg := config.FromContext(cmd.Context())
			return helpers.NewOutputWriter(cmd.OutOrStdout(), f).WriteData(cfg)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format (json, yaml); detected from the terminal when empty")
	return cmd
}
