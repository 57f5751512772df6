// Package pipeline runs one import: it decodes raw exports, rebuilds the
// included dataset sections on top of the prior dataset and finalizes the
// cross-section totals.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/catalog"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/metrics"
	"github.com/osse101/ArcCompanion_Go/internal/questgraph"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/storage"
	"github.com/osse101/ArcCompanion_Go/internal/upgrade"
)

// Options tunes one run.
type Options struct {
	Include Include
	Images  assets.ImageResolver
	// RunID is generated when empty
	RunID string
}

// Stats counts what each pass processed. A pass that did not run is absent.
type Stats map[string]int

// Result is the output of one run.
type Result struct {
	RunID       string
	Dataset     domain.Dataset
	Diagnostics domain.Diagnostics
	Stats       Stats
	Elapsed     time.Duration
}

// Decode turns the raw documents into typed raw records. A document that
// cannot be decoded becomes an error diagnostic and an empty section.
func Decode(docs storage.RawDocuments) (rawdata.Export, domain.Diagnostics) {
	var (
		export rawdata.Export
		diags  domain.Diagnostics
	)

	decode := func(doc storage.RawDocument, fn func([]byte) (domain.Diagnostics, error)) {
		d, err := fn(doc.Data)
		diags.Merge(d)
		if err != nil {
			diags.Add(domain.SeverityError, domain.CodeMalformedRecord, doc.Section, DiagFmtUndecodable, doc.Section, err)
		}
	}

	decode(docs.Items, func(b []byte) (d domain.Diagnostics, err error) {
		export.Items, d, err = rawdata.DecodeItems(b)
		return d, err
	})
	decode(docs.Quests, func(b []byte) (d domain.Diagnostics, err error) {
		export.Quests, d, err = rawdata.DecodeQuests(b)
		return d, err
	})
	decode(docs.Modules, func(b []byte) (d domain.Diagnostics, err error) {
		export.Modules, d, err = rawdata.DecodeModules(b)
		return d, err
	})
	decode(docs.Projects, func(b []byte) (d domain.Diagnostics, err error) {
		export.Projects, d, err = rawdata.DecodeProjects(b)
		return d, err
	})
	return export, diags
}

// Build rebuilds the included sections of prior from raw. It never fails:
// every anomaly is reported as a diagnostic.
func Build(ctx context.Context, raw rawdata.Export, prior domain.Dataset, opts Options) Result {
	return build(ctx, raw, prior, opts, domain.Diagnostics{})
}

// build seeds the run's diagnostics with decode findings so they are
// reported and counted with the rest.
func build(ctx context.Context, raw rawdata.Export, prior domain.Dataset, opts Options, decoded domain.Diagnostics) Result {
	start := time.Now()
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	ctx = logger.WithRunID(ctx, runID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunStarted, "include", opts.Include)

	var ds domain.Dataset
	diags := decoded
	stats := Stats{
		PassDecode: len(raw.Items) + len(raw.Quests) + len(raw.Modules) + len(raw.Projects),
	}

	if opts.Include.Items {
		built := catalog.NewBuilder(opts.Images).Build(ctx, raw.Items, prior.Items)
		ds.Items = built.Items
		diags.Merge(built.Diagnostics)
		stats[PassItems] = len(ds.Items)
	} else {
		log.Debug(LogMsgSectionKept, "section", domain.RecordKindItems)
		ds.Items = cloneItems(prior.Items)
	}
	names := catalog.NewNameTable(raw.Items, ds.Items)

	ds.Upgrades = prior.Upgrades
	ds.Projects = prior.Projects
	if opts.Include.Upgrades {
		upgrades, d := upgrade.BuildUpgrades(ctx, raw.Modules, prior.Upgrades, names)
		ds.Upgrades = upgrades
		diags.Merge(d)
	}
	if opts.Include.Projects {
		projects, d := upgrade.BuildProjects(ctx, raw.Projects, prior.Projects, names)
		ds.Projects = projects
		diags.Merge(d)
	}
	if opts.Include.workshop() {
		stats[PassWorkshop] = len(ds.Upgrades) + len(ds.Projects)
	}

	ds.Quests = prior.Quests
	ds.QuestChains = prior.QuestChains
	if opts.Include.questGraph() {
		derived := questgraph.Derive(ctx, questgraph.Input{
			Raw:         raw.Quests,
			Prior:       prior.Quests,
			PriorChains: prior.QuestChains,
			Items:       names,
		})
		if opts.Include.Quests {
			ds.Quests = derived.Quests
		}
		if opts.Include.Chains {
			ds.QuestChains = derived.Chains
		}
		diags.Merge(derived.Diagnostics)
		stats[PassQuests] = len(derived.Quests)
	}

	ds.Vendors = []domain.Vendor{}
	if opts.Include.Vendors && prior.Vendors != nil {
		ds.Vendors = prior.Vendors
	}

	finalize(&ds, &diags)
	stats[PassConflicts] = diags.Len()
	stats[PassFinalize] = total(ds.Counts())

	elapsed := time.Since(start)
	metrics.RecordPipelineRun(elapsed, nil, diags, ds.Counts())
	log.Info(LogMsgRunFinished,
		"elapsed", elapsed,
		"counts", ds.Counts(),
		"diagnostics", diags.Len())

	return Result{
		RunID:       runID,
		Dataset:     ds,
		Diagnostics: diags,
		Stats:       stats,
		Elapsed:     elapsed,
	}
}

// Run loads the raw exports and the prior dataset from store and builds.
// Only IO failures are errors.
func Run(ctx context.Context, store *storage.Store, opts Options) (Result, error) {
	start := time.Now()

	docs, err := store.LoadRaw(ctx)
	if err != nil {
		return fail(ctx, start, err)
	}
	prior, err := store.LoadPrior(ctx)
	if err != nil {
		return fail(ctx, start, err)
	}

	raw, decoded := Decode(docs)
	return build(ctx, raw, prior, opts, decoded), nil
}

func fail(ctx context.Context, start time.Time, err error) (Result, error) {
	metrics.RecordPipelineRun(time.Since(start), err, domain.Diagnostics{}, nil)
	logger.FromContext(ctx).Error(LogMsgRunFailed, "error", err)
	return Result{}, err
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

func cloneItems(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
