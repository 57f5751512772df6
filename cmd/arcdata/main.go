package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/handler"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "arcdata",
		Short:         "Build the canonical game dataset and expand want-lists",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.Version = handler.CurrentVersion().Version
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.dataDir, flagDataDir, "", "directory holding raw exports and canonical files (overrides DATA_DIR)")
	flags.StringVar(&a.flags.outputDir, flagOutputDir, "", "directory canonical files are written to (overrides OUTPUT_DIR)")
	flags.StringVar(&a.flags.pipelineConfig, flagConfig, "", "pipeline YAML file (overrides PIPELINE_CONFIG)")

	root.AddCommand(buildCmd(a))
	root.AddCommand(validateCmd(a))
	root.AddCommand(wantListCmd(a))
	root.AddCommand(passCmd(a))
	root.AddCommand(serveCmd(a))
	root.AddCommand(versionCmd())
	return root
}
