package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/ArcCompanion_Go/docs"
	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/database"
	"github.com/osse101/ArcCompanion_Go/internal/handler"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/metrics"
	"github.com/osse101/ArcCompanion_Go/internal/pipeline"
	"github.com/osse101/ArcCompanion_Go/internal/wantlist"
)

// Dependencies are the services the API serves.
type Dependencies struct {
	DBPool         database.Pool
	Datasets       pipeline.Service
	WantList       wantlist.Service
	TrustedProxies []string
	// ImageDir is served under the local item image prefix when set
	ImageDir string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the HTTP routes. Middleware runs in the order it is added.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(deps.TrustedProxies, NewRateTracker(RateLimitRequests, RateLimitWindow)))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool, deps.Datasets))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	if deps.ImageDir != "" {
		r.Handle(assets.ItemImagePrefix+"*", http.StripPrefix(assets.ItemImagePrefix, http.FileServer(http.Dir(deps.ImageDir))))
	}

	datasetHandler := handler.NewDatasetHandler(deps.Datasets)
	wantListHandler := handler.NewWantListHandler(deps.WantList)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", datasetHandler.HandleListItems)
		r.Get("/items/{id}", datasetHandler.HandleGetItem)
		r.Get("/quests", datasetHandler.HandleListQuests)
		r.Get("/chains", datasetHandler.HandleListChains)
		r.Get("/chains/{id}", datasetHandler.HandleGetChain)
		r.Get("/upgrades", datasetHandler.HandleListUpgrades)
		r.Get("/projects", datasetHandler.HandleListProjects)
		r.Get("/diagnostics", datasetHandler.HandleListDiagnostics)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/reload", handler.HandleReload(deps.Datasets))
		})

		r.Route("/wantlist", func(r chi.Router) {
			r.Get("/", wantListHandler.HandleList)
			r.Post("/", wantListHandler.HandleAdd)
			r.Get("/resolved", wantListHandler.HandleResolved)
			r.Post("/expand", wantListHandler.HandleExpand)
			r.Delete("/{id}", wantListHandler.HandleRemove)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
