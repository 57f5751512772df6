package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
)

const (
	passTableHeader = "PASS\tLABEL\tRECORDS\tLAST RUN\tAPPROVED\tNOTES"
	passTableRow    = "%s\t%s\t%d\t%s\t%t\t%s\n"
	neverRun        = "never"
)

func passCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pass",
		Short: "Inspect and approve the review passes of the pipeline",
	}
	cmd.AddCommand(passListCmd(a))
	cmd.AddCommand(passApproveCmd(a))
	return cmd
}

func passListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every pass with its last run and approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := a.store().LoadMeta(cmd.Context())
			if err != nil {
				return err
			}
			meta = pipeline.EnsureMeta(meta)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, passTableHeader)
			for _, key := range pipeline.PassKeys {
				p := meta.Passes[key]
				lastRun := neverRun
				if p.LastRunAt != nil {
					lastRun = p.LastRunAt.Format(time.DateTime)
				}
				fmt.Fprintf(tw, passTableRow, key, p.Label, p.Records, lastRun, p.Approved, p.Notes)
			}
			return tw.Flush()
		},
	}
}

func passApproveCmd(a *app) *cobra.Command {
	var (
		notes  string
		revoke bool
	)

	cmd := &cobra.Command{
		Use:   "approve <pass>",
		Short: "Approve a pass (A-F), optionally with review notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store := a.store()

			meta, err := store.LoadMeta(ctx)
			if err != nil {
				return err
			}
			meta = pipeline.EnsureMeta(meta)

			updated, err := pipeline.Approve(meta, args[0], !revoke, notes, time.Now())
			if err != nil {
				return err
			}
			if err := store.SaveMeta(ctx, meta); err != nil {
				return err
			}

			logger.FromContext(ctx).Info(pipeline.LogMsgPassApproved, "pass", args[0], "approved", updated.Approved)
			fmt.Fprintf(cmd.OutOrStdout(), fmtPassApproved, updated.Label, updated.Approved)
			return nil
		},
	}
	cmd.Flags().StringVar(&notes, flagNotes, "", "review notes stored with the approval")
	cmd.Flags().BoolVar(&revoke, flagRevoke, false, "withdraw a previous approval")
	return cmd
}
