package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// recordingHandler captures records for assertions.
type recordingHandler struct {
	records []slog.Record
	level   slog.Level
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(_ string) slog.Handler      { return h }

func TestMultiHandlerFansOut(t *testing.T) {
	a := &recordingHandler{level: slog.LevelDebug}
	b := &recordingHandler{level: slog.LevelDebug}
	h := NewMultiHandler(a, b)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(a.records) != 1 || len(b.records) != 1 {
		t.Errorf("record counts = %d/%d, want 1/1", len(a.records), len(b.records))
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	quiet := &recordingHandler{level: slog.LevelError}
	chatty := &recordingHandler{level: slog.LevelDebug}
	h := NewMultiHandler(quiet, chatty)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "info only", 0)
	if err := h.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if len(quiet.records) != 0 {
		t.Error("error-level handler received an info record")
	}
	if len(chatty.records) != 1 {
		t.Error("debug-level handler missed an info record")
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	quiet := &recordingHandler{level: slog.LevelError}
	chatty := &recordingHandler{level: slog.LevelDebug}

	h := NewMultiHandler(quiet, chatty)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled() = false with one debug-level handler")
	}

	h = NewMultiHandler(quiet)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled() = true with only an error-level handler")
	}
}

func TestSetupCreatesLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)
	t.Setenv("LocalAppData", tmpDir)

	cleanup, err := Setup("minitray-test", false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	defer cleanup()

	slog.Info("probe")

	matches, err := filepath.Glob(filepath.Join(tmpDir, "*", "minitray-test.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		// Some platforms nest the cache dir differently; fall back to
		// a recursive scan.
		found := false
		_ = filepath.WalkDir(tmpDir, func(path string, _ os.DirEntry, _ error) error {
			if filepath.Base(path) == "minitray-test.log" {
				found = true
			}
			return nil
		})
		if !found {
			t.Error("Setup() did not create a log file")
		}
	}
}
