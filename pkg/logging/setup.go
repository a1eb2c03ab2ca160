package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup installs the default slog logger: info-level text output on stderr
// (debug-level when verbose is set) teed with a debug-level log file under
// the user cache directory. The returned func closes the log file.
func Setup(appName string, verbose bool) (func(), error) {
	stderrLevel := slog.LevelInfo
	if verbose {
		stderrLevel = slog.LevelDebug
	}
	stderr := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: stderrLevel})

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// No cache dir: log to stderr only.
		slog.SetDefault(slog.New(stderr))
		return func() {}, nil
	}

	logDir := filepath.Join(cacheDir, appName)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, appName+".log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	file := slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(NewMultiHandler(stderr, file)))

	return func() {
		_ = logFile.Close() //nolint:errcheck // Nothing left to log the error to
	}, nil
}
