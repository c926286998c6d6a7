package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/textswap/internal/config"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate and print the effective configuration",
		Long: `Resolve the configuration from the YAML file, .env and TEXTSWAP_*
environment variables, validate it and print the result as YAML. The API
key is redacted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			out, err := config.Dump(path)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
