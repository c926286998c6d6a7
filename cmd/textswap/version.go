package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textswap/internal/ocr"
	"github.com/ironsheep/textswap/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit, build date and OCR engine of textswap.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textswap version %s\n", info.Version)
			fmt.Fprintf(out, "  commit: %s (%s)\n", info.GitCommit, info.GitBranch)
			fmt.Fprintf(out, "  built:  %s\n", info.BuildTime)

			engine := ocr.NewTesseract(nil, "").Info()
			if engine.Available {
				fmt.Fprintf(out, "  ocr:    tesseract %s via %s\n", engine.Version, engine.Backend)
			} else {
				fmt.Fprintln(out, "  ocr:    tesseract unavailable")
			}
		},
	}
}
