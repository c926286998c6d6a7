package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textswap/internal/version"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textswap",
		Short: "Detect, translate and replace text in images",
		Long: `textswap finds marked text regions in an image, recognizes their text with
Tesseract, corrects and translates it, and returns two images: an overlay
outlining each region and a copy with the text replaced by its translation.

Settings come from a YAML file (--config, default textswap.yaml in the
current directory or ~/.config/textswap), a .env file and TEXTSWAP_*
environment variables, e.g. TEXTSWAP_SERVER_ADDR.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML configuration file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewTranslateCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
