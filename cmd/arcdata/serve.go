package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/ArcCompanion_Go/internal/bootstrap"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
	"github.com/osse101/ArcCompanion_Go/internal/server"
	"github.com/osse101/ArcCompanion_Go/internal/wantlist"
)

func serveCmd(a *app) *cobra.Command {
	var (
		rebuild bool
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the canonical dataset and the want-list over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed(flagPort) {
				a.cfg.Port = port
			}
			return runServe(cmd.Context(), a, rebuild)
		},
	}
	cmd.Flags().BoolVar(&rebuild, flagRebuild, false, "rebuild the dataset from the raw exports in memory before serving")
	cmd.Flags().IntVar(&port, flagPort, 0, "listen port (overrides PORT)")
	return cmd
}

func runServe(ctx context.Context, a *app, rebuild bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info(bootstrap.LogMsgStarting, "port", a.cfg.Port, "data_dir", a.cfg.DataDir)

	store, err := bootstrap.OpenWantListStore(ctx, a.cfg)
	if err != nil {
		return err
	}

	wantList := wantlist.NewService(store.Repo, nil, nil, a.wantListConfig())
	datasets := pipeline.NewService(a.store(), pipeline.ServiceConfig{
		Include:  a.cfg.Pipeline.Include,
		ImageDir: a.cfg.ImageDir,
	}, func(ctx context.Context, snap *pipeline.Snapshot) {
		wantList.SetItems(ctx, snap.Dataset.Items)
	})

	if rebuild {
		_, err = datasets.Reload(ctx)
	} else {
		_, err = datasets.Load(ctx)
	}
	if err != nil {
		store.Close()
		return err
	}

	srv := server.NewServer(a.cfg.Port, server.Dependencies{
		DBPool:         store.Pool,
		Datasets:       datasets,
		WantList:       wantList,
		TrustedProxies: a.cfg.TrustedProxies,
		ImageDir:       a.cfg.ImageDir,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		WantList: store,
	})
	return serveErr
}
