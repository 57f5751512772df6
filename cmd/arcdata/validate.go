package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
	"github.com/osse101/ArcCompanion_Go/internal/validation"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the raw exports against their schemas without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a)
		},
	}
}

func runValidate(cmd *cobra.Command, a *app) error {
	docs, err := a.store().LoadRaw(cmd.Context())
	if err != nil {
		return err
	}

	schemas, err := validation.NewSchemaValidator()
	if err != nil {
		return err
	}

	var diags domain.Diagnostics
	for _, doc := range docs.All() {
		if !doc.Found {
			continue
		}
		found, err := schemas.ValidateBytes(doc.Section, doc.Data)
		if err != nil {
			return fmt.Errorf("%s: %w", doc.Path, err)
		}
		diags.Merge(found)
	}

	_, decoded := pipeline.Decode(docs)
	diags.Merge(decoded)

	if printDiagnostics(cmd.OutOrStdout(), diags) > 0 {
		return errors.New(errMsgValidation)
	}
	return nil
}
