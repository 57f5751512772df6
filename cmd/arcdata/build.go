package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
)

type buildOptions struct {
	skipItems    bool
	skipQuests   bool
	skipUpgrades bool
	skipProjects bool
	dryRun       bool
}

// include narrows the configured sections by the skip flags.
func (o buildOptions) include(base pipeline.Include) pipeline.Include {
	if o.skipItems {
		base.Items = false
	}
	if o.skipQuests {
		base.Quests = false
		base.Chains = false
	}
	if o.skipUpgrades {
		base.Upgrades = false
	}
	if o.skipProjects {
		base.Projects = false
	}
	return base
}

func buildCmd(a *app) *cobra.Command {
	var opts buildOptions

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the import pipeline and write the canonical dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, a, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.skipItems, flagSkipItems, false, "keep the prior items instead of rebuilding them")
	cmd.Flags().BoolVar(&opts.skipQuests, flagSkipQuests, false, "keep the prior quests and chains")
	cmd.Flags().BoolVar(&opts.skipUpgrades, flagSkipUpgrades, false, "keep the prior workshop upgrades")
	cmd.Flags().BoolVar(&opts.skipProjects, flagSkipProjects, false, "keep the prior projects")
	cmd.Flags().BoolVar(&opts.dryRun, flagDryRun, false, "report diagnostics without writing files")
	return cmd
}

func runBuild(cmd *cobra.Command, a *app, opts buildOptions) error {
	ctx := cmd.Context()
	store := a.store()

	images, err := a.images()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, store, pipeline.Options{
		Include: opts.include(a.cfg.Pipeline.Include),
		Images:  images,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, fmtRunSummary, result.RunID, result.Elapsed.Round(time.Millisecond))
	printCounts(out, result.Dataset.Counts())
	printDiagnostics(out, result.Diagnostics)

	if opts.dryRun {
		fmt.Fprintln(out, msgDryRun)
		return nil
	}

	if err := store.SaveDataset(ctx, result.Dataset); err != nil {
		return err
	}
	meta, err := store.LoadMeta(ctx)
	if err != nil {
		return err
	}
	if err := store.SaveMeta(ctx, pipeline.RecordRun(meta, result, time.Now())); err != nil {
		return err
	}
	fmt.Fprintf(out, fmtWritten, a.outputDir())
	return nil
}

func printCounts(out io.Writer, counts map[string]int) {
	fmt.Fprintf(out, fmtCounts,
		counts[domain.RecordKindItems],
		counts[domain.RecordKindQuests],
		counts[domain.RecordKindChains],
		counts[domain.RecordKindUpgrades],
		counts[domain.RecordKindProjects],
		counts[domain.RecordKindVendors],
	)
}

// printDiagnostics prints the severity summary and every diagnostic.
// It returns the number of error-severity diagnostics.
func printDiagnostics(out io.Writer, diags domain.Diagnostics) int {
	bySeverity := make(map[domain.Severity]int, 3)
	for _, d := range diags.Items {
		bySeverity[d.Severity]++
	}

	if diags.Len() == 0 {
		fmt.Fprintln(out, msgNoIssues)
		return 0
	}

	fmt.Fprintf(out, fmtDiagHeader, diags.Len(),
		bySeverity[domain.SeverityError], bySeverity[domain.SeverityWarning], bySeverity[domain.SeverityInfo])
	for _, d := range diags.Items {
		fmt.Fprintf(out, fmtDiagLine, d)
	}
	return bySeverity[domain.SeverityError]
}
