package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dilharaj/airgallery/internal/analysis"
	"github.com/dilharaj/airgallery/internal/logger"
	"github.com/spf13/cobra"
)

var analyzePaletteSize int

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract palette, histogram and metadata from one image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzePaletteSize, "colors", analysis.DefaultPaletteSize, "Maximum number of palette swatches")
}

func runAnalyze(path string) error {
	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}

	assembler := analysis.NewAssembler(analysis.NewFullDecoder(), logger.Discard()).
		WithPaletteSize(analyzePaletteSize)

	meta, err := assembler.Assemble(dir, name)
	if err != nil {
		printer.Error("%s: %v", path, err)
		return err
	}

	if printer.IsJSON() {
		return printer.JSON(meta)
	}

	printer.Header(meta.Filename)
	printer.KeyValue("Size", meta.FileSizeFormatted)
	if !meta.Decoded() {
		printer.Warn("file could not be decoded, size-only metadata")
		return nil
	}
	printer.KeyValue("Dimensions", meta.Dimensions)
	printer.KeyValue("Format", meta.Format)
	printer.KeyValue("Color mode", meta.ColorMode)

	printer.Printf("\n")
	printer.Info("Dominant colors")
	for _, c := range meta.Palette {
		printer.Swatch(c.Hex, fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B))
	}

	printer.Success("analysis complete")
	return nil
}
