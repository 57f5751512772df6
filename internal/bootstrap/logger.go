package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/config"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
)

// SetupLogger installs the default logger. Records always go to stderr; when
// cfg.LogDir is set they are also written to a fresh session file there, after
// old session files beyond the retention count are removed.
// The returned file is nil without a log directory; otherwise the caller closes it.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	var (
		out     io.Writer = os.Stderr
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stderr, f)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, version, cfg.Environment, cfg.LogLevel == logger.LogLevelDebug)
	logger.InitLoggerWithWriter(logCfg, out)

	slog.Debug(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFile != nil)
	slog.Debug(LogMsgConfigurationLoaded,
		"data_dir", cfg.DataDir,
		"output_dir", cfg.OutputDir,
		"image_dir", cfg.ImageDir,
		"pipeline_config", cfg.PipelineConfig,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session files so that at most
// LogFileRetentionCount remain before a new one is created.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	// timestamped names sort chronologically
	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
