// Package cli implements the airgallery command line: a serve command
// that runs the gallery server and an analyze command that inspects a
// single image from the terminal.
package cli

import (
	"github.com/dilharaj/airgallery/internal/cli/output"
	"github.com/dilharaj/airgallery/internal/version"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	quietMode  bool
	printer    *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "airgallery",
	Short: "airgallery - serve a directory of images as a browsable gallery",
	Long: `airgallery serves the images in a directory over HTTP to browsers on
the same network, with per-image color palettes and RGB histograms.

Get started:
  airgallery serve             # Serve the current directory
  airgallery analyze photo.jpg # Inspect one image from the terminal`,
	Version: version.Full(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		printer = output.New(
			output.WithJSON(jsonOutput),
			output.WithQuiet(quietMode),
		)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON (for scripting)")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress non-error output")

	rootCmd.SetVersionTemplate("airgallery version {{.Version}}\n")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
}
