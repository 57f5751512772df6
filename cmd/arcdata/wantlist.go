package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
)

func wantListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wantlist",
		Aliases: []string{"wl"},
		Short:   "Manage the want-list and expand it into crafting requirements",
	}
	cmd.AddCommand(wantListAddCmd(a))
	cmd.AddCommand(wantListListCmd(a))
	cmd.AddCommand(wantListRemoveCmd(a))
	cmd.AddCommand(wantListExpandCmd(a))
	return cmd
}

func wantListAddCmd(a *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "add <item> <qty>",
		Short: "Add an item by id, name or slug",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errMsgBadQuantity)
			}

			svc, store, err := a.openWantList(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := svc.Add(cmd.Context(), args[0], qty, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), fmtAdded, entry.ItemID, entry.Qty, entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, flagReason, "", "why the item is wanted")
	return cmd
}

func wantListListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the stored entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := a.openWantList(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := svc.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, msgEmptyWantList)
				return nil
			}
			for _, e := range entries {
				reason := ""
				if e.Reason != "" {
					reason = " - " + e.Reason
				}
				fmt.Fprintf(out, fmtEntry, e.ID, e.ItemID, e.Qty, reason)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, flagJSON, false, "print entries as JSON")
	return cmd
}

func wantListRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entry by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := a.openWantList(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := svc.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), fmtRemoved, args[0])
			return nil
		},
	}
}

func wantListExpandCmd(a *app) *cobra.Command {
	var (
		ignore []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand every entry into requirements, products and recycling sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, store, err := a.openWantList(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			// --ignore "" ignores nothing; no flag uses the defaults
			if cmd.Flags().Changed(flagIgnore) && ignore == nil {
				ignore = []string{}
			}
			resolved, err := svc.Resolve(cmd.Context(), ignore)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, resolved)
			}
			if len(resolved) == 0 {
				fmt.Fprintln(out, msgEmptyWantList)
				return nil
			}
			for _, r := range resolved {
				printResolved(out, r)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ignore, flagIgnore, nil, "categories left out of the expansion (omit for IGNORED_CATEGORIES, pass \"\" to ignore none)")
	cmd.Flags().BoolVar(&asJSON, flagJSON, false, "print the expansion as JSON")
	return cmd
}

func printResolved(out io.Writer, r domain.WantListResolvedEntry) {
	if r.Item == nil {
		fmt.Fprintf(out, fmtUnknownItem, r.Entry.ItemID, r.Entry.Qty)
		return
	}
	fmt.Fprintf(out, fmtResolvedHeader, r.Item.Name, r.Entry.Qty)
	for _, req := range r.Requirements {
		fmt.Fprintf(out, fmtRequirement, req.Name, req.Qty, req.Depth)
	}
	for _, p := range r.Products {
		fmt.Fprintf(out, fmtProduct, p.ProductName, p.PerCraft, p.Qty)
	}
	for _, m := range r.Materials {
		switch m.Kind {
		case domain.MaterialKindSatisfies:
			fmt.Fprintf(out, fmtMaterialSrc, m.SourceName, m.SourcesNeeded, m.MaterialName, m.RequiredQty)
		case domain.MaterialKindYield:
			fmt.Fprintf(out, fmtMaterialYield, m.MaterialName, m.Qty)
		}
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
