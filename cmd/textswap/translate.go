package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/pipeline"
)

// NewTranslateCmd creates the translate command.
func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <image>",
		Short: "Translate the text regions of one image",
		Long: `Run the pipeline once on an image file. Writes <name>_annotated and
<name>_translated images to the output directory and prints the region
records as JSON.

Examples:
  textswap translate sign.png
  textswap translate -o out/ --config textswap.yaml menu.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runTranslateCmd,
	}
	cmd.Flags().StringP("output-dir", "o", "", "Directory for the output images (default: next to the input)")
	return cmd
}

func runTranslateCmd(cmd *cobra.Command, args []string) error {
	input := args[0]
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	res, err := a.pipeline.Submit(cmd.Context(), pipeline.Submission{
		Data:     data,
		Filename: filepath.Base(input),
	})
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("output-dir")
	if outDir == "" {
		outDir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	for _, out := range []struct{ suffix, uri string }{
		{"_annotated", res.OriginalImage},
		{"_translated", res.TranslatedImage},
	} {
		path, err := imaging.WriteDataURI(outDir, base+out.suffix, out.uri)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res.Translations)
}
