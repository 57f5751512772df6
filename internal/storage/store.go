// Package storage reads raw exports and reads and writes the canonical
// dataset files of a data directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/rawdata"
	"github.com/osse101/ArcCompanion_Go/internal/utils"
)

// RawDocument is one raw export file as read from disk.
type RawDocument struct {
	Section string
	Path    string
	Data    []byte
	Found   bool
}

// RawDocuments holds the four raw exports of a run.
type RawDocuments struct {
	Items    RawDocument
	Quests   RawDocument
	Modules  RawDocument
	Projects RawDocument
}

// All returns the documents in a fixed order.
func (d RawDocuments) All() []RawDocument {
	return []RawDocument{d.Items, d.Quests, d.Modules, d.Projects}
}

// Store resolves layout paths against its directories.
type Store struct {
	dataDir   string
	outputDir string
	layout    Layout
}

// New creates a Store. An empty outputDir means canonical files live in dataDir.
func New(dataDir, outputDir string, layout Layout) *Store {
	if outputDir == "" {
		outputDir = dataDir
	}
	return &Store{dataDir: dataDir, outputDir: outputDir, layout: layout.WithDefaults()}
}

func (s *Store) rawPath(name string) string {
	return resolve(s.dataDir, name)
}

func (s *Store) outputPath(name string) string {
	return resolve(s.outputDir, name)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// MetaPath returns the location of the pipeline meta document.
func (s *Store) MetaPath() string {
	return s.outputPath(s.layout.Meta)
}

// LoadRaw reads the raw export files concurrently. Missing files come back
// with Found false and no data.
func (s *Store) LoadRaw(ctx context.Context) (RawDocuments, error) {
	docs := RawDocuments{
		Items:    RawDocument{Section: rawdata.SectionItems, Path: s.rawPath(s.layout.RawItems)},
		Quests:   RawDocument{Section: rawdata.SectionQuests, Path: s.rawPath(s.layout.RawQuests)},
		Modules:  RawDocument{Section: rawdata.SectionModules, Path: s.rawPath(s.layout.RawModules)},
		Projects: RawDocument{Section: rawdata.SectionProjects, Path: s.rawPath(s.layout.RawProjects)},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, doc := range []*RawDocument{&docs.Items, &docs.Quests, &docs.Modules, &docs.Projects} {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return readRaw(gctx, doc)
		})
	}
	if err := g.Wait(); err != nil {
		return RawDocuments{}, err
	}

	logger.FromContext(ctx).Debug(LogMsgRawLoaded,
		"items", docs.Items.Found,
		"quests", docs.Quests.Found,
		"modules", docs.Modules.Found,
		"projects", docs.Projects.Found)
	return docs, nil
}

func readRaw(ctx context.Context, doc *RawDocument) error {
	data, err := os.ReadFile(doc.Path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Debug(LogMsgFileMissing, "path", doc.Path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadRaw, doc.Path, err)
	}
	doc.Data = data
	doc.Found = true
	return nil
}

// LoadPrior loads the canonical dataset from the output directory. Missing
// files load as empty sections.
func (s *Store) LoadPrior(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset

	g, gctx := errgroup.WithContext(ctx)
	load := func(name string, target any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := s.outputPath(name)
			found, err := utils.LoadJSONIfExists(path, target)
			if err != nil {
				return fmt.Errorf("%s: %w", ErrMsgLoadCanonical, err)
			}
			if !found {
				logger.FromContext(gctx).Debug(LogMsgFileMissing, "path", path)
			}
			return nil
		})
	}
	load(s.layout.Items, &ds.Items)
	load(s.layout.Quests, &ds.Quests)
	load(s.layout.Chains, &ds.QuestChains)
	load(s.layout.Upgrades, &ds.Upgrades)
	load(s.layout.Projects, &ds.Projects)
	load(s.layout.Vendors, &ds.Vendors)

	if err := g.Wait(); err != nil {
		return domain.Dataset{}, err
	}
	ensureSections(&ds)

	logger.FromContext(ctx).Debug(LogMsgPriorLoaded, "counts", ds.Counts())
	return ds, nil
}

// SaveDataset writes every canonical section to its file.
func (s *Store) SaveDataset(ctx context.Context, ds domain.Dataset) error {
	ensureSections(&ds)

	g, gctx := errgroup.WithContext(ctx)
	save := func(name string, data any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := utils.SaveJSON(s.outputPath(name), data); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgSaveCanonical, err)
			}
			return nil
		})
	}
	save(s.layout.Items, ds.Items)
	save(s.layout.Quests, ds.Quests)
	save(s.layout.Chains, ds.QuestChains)
	save(s.layout.Upgrades, ds.Upgrades)
	save(s.layout.Projects, ds.Projects)
	save(s.layout.Vendors, ds.Vendors)

	if err := g.Wait(); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgDatasetSaved, "dir", s.outputDir, "counts", ds.Counts())
	return nil
}

// LoadMeta returns the stored pipeline meta, or nil when none was written yet.
func (s *Store) LoadMeta(ctx context.Context) (*domain.PipelineMeta, error) {
	var meta domain.PipelineMeta
	found, err := utils.LoadJSONIfExists(s.MetaPath(), &meta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadMeta, err)
	}
	if !found {
		logger.FromContext(ctx).Debug(LogMsgMetaMissing, "path", s.MetaPath())
		return nil, nil
	}
	return &meta, nil
}

func (s *Store) SaveMeta(ctx context.Context, meta *domain.PipelineMeta) error {
	if err := utils.SaveJSON(s.MetaPath(), meta); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveMeta, err)
	}
	logger.FromContext(ctx).Debug(LogMsgMetaSaved, "path", s.MetaPath())
	return nil
}

// ensureSections replaces nil sections with empty ones so files hold [] not null.
func ensureSections(ds *domain.Dataset) {
	if ds.Items == nil {
		ds.Items = []domain.Item{}
	}
	if ds.Quests == nil {
		ds.Quests = []domain.Quest{}
	}
	if ds.QuestChains == nil {
		ds.QuestChains = []domain.QuestChain{}
	}
	if ds.Upgrades == nil {
		ds.Upgrades = []domain.UpgradePack{}
	}
	if ds.Projects == nil {
		ds.Projects = []domain.Project{}
	}
	if ds.Vendors == nil {
		ds.Vendors = []domain.Vendor{}
	}
}
