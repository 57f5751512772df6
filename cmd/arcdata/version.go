package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/handler"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// version needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v := handler.CurrentVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "arcdata %s (commit %s, built %s, %s)\n", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
		},
	}
}
