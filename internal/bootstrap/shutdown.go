package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ArcCompanion_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	WantList *WantListStore
}

// GracefulShutdown stops the HTTP server first so no request is left holding
// a connection, then closes the want-list store. Errors are logged and do not
// stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	components.WantList.Close()

	slog.Info(LogMsgServerStopped)
}
