package main

import (
	"context"
	"os"

	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/bootstrap"
	"github.com/osse101/ArcCompanion_Go/internal/config"
	"github.com/osse101/ArcCompanion_Go/internal/handler"
	"github.com/osse101/ArcCompanion_Go/internal/naming"
	"github.com/osse101/ArcCompanion_Go/internal/storage"
	"github.com/osse101/ArcCompanion_Go/internal/wantlist"
)

type globalFlags struct {
	dataDir        string
	outputDir      string
	pipelineConfig string
}

// app carries what every subcommand shares once the root pre-run finished.
type app struct {
	flags   globalFlags
	cfg     *config.Config
	logFile *os.File
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if a.flags.pipelineConfig != "" {
		if err := cfg.UsePipelineFile(a.flags.pipelineConfig); err != nil {
			return err
		}
	}
	if a.flags.dataDir != "" {
		cfg.DataDir = a.flags.dataDir
	}
	if a.flags.outputDir != "" {
		cfg.OutputDir = a.flags.outputDir
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.CurrentVersion().Version)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logFile = logFile
	return nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

func (a *app) store() *storage.Store {
	return storage.New(a.cfg.DataDir, a.cfg.OutputDir, a.cfg.Pipeline.Files)
}

func (a *app) outputDir() string {
	if a.cfg.OutputDir == "" {
		return a.cfg.DataDir
	}
	return a.cfg.OutputDir
}

// images indexes the configured image directory. A missing directory is empty.
func (a *app) images() (*assets.LocalImages, error) {
	if a.cfg.ImageDir == "" {
		return assets.NewLocalImagesFromNames(), nil
	}
	return assets.NewLocalImages(os.DirFS(a.cfg.ImageDir), ".")
}

// openWantList opens the want-list store and a service over the canonical
// items on disk. The caller closes the store.
func (a *app) openWantList(ctx context.Context) (wantlist.Service, *bootstrap.WantListStore, error) {
	ds, err := a.store().LoadPrior(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := bootstrap.OpenWantListStore(ctx, a.cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := wantlist.NewService(store.Repo, naming.NewResolver(ds.Items), ds.Items, a.wantListConfig())
	return svc, store, nil
}

func (a *app) wantListConfig() wantlist.Config {
	return wantlist.Config{
		CacheSize:      a.cfg.CacheSize,
		CacheTTL:       a.cfg.CacheTTL,
		DefaultIgnored: a.cfg.IgnoredCategories,
	}
}
