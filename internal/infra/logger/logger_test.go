package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestSetup_WritesJSONLinesUnderWorkspace(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(FromWorkspace(root, domain.DefaultConfig(), true))
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, ".synastry", "logs", "synastry.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if !Ready() {
		t.Fatalf("expected ready logger")
	}
	if OpenedAt().IsZero() {
		t.Fatalf("expected open time to be set")
	}
	if Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", Level())
	}

	L().Debug("synastry.test", "pairs", 3)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if Ready() || Path() != "" {
		t.Fatalf("expected logger reset after cleanup")
	}

	recs := readLines(t, want)
	if len(recs) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(recs))
	}
	if recs[0]["msg"] != "logger.initialized" || recs[0]["level"] != "DEBUG" {
		t.Fatalf("unexpected first record: %v", recs[0])
	}
	if recs[1]["msg"] != "synastry.test" || recs[1]["pairs"] != float64(3) {
		t.Fatalf("unexpected record: %v", recs[1])
	}
	if _, ok := recs[1]["source"]; !ok {
		t.Fatalf("expected source attr in debug mode")
	}
}

func TestSetup_HonoursWorkspaceLogsConfig(t *testing.T) {
	root := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Logs = domain.LogsConfig{Dir: "var/log", File: "run.log", Level: "warn"}

	cleanup, err := Setup(FromWorkspace(root, cfg, false))
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	want := filepath.Join(root, "var", "log", "run.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if Level() != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v", Level())
	}

	L().Info("dropped")
	L().Warn("reftable.partial", "absent", 2)

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	// logger.initialized is Info and falls below warn as well.
	recs := readLines(t, want)
	if len(recs) != 1 {
		t.Fatalf("expected 1 log line, got %d: %v", len(recs), recs)
	}
	if recs[0]["msg"] != "reftable.partial" {
		t.Fatalf("unexpected msg: %v", recs[0]["msg"])
	}
	if _, ok := recs[0]["source"]; ok {
		t.Fatalf("did not expect source attr without debug")
	}

	if _, err := os.Stat(filepath.Join(root, ".synastry")); !os.IsNotExist(err) {
		t.Fatalf("default log dir should not be created, stat err=%v", err)
	}
}

func TestSetup_DebugOverridesConfiguredLevel(t *testing.T) {
	root := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Logs.Level = "error"

	cleanup, err := Setup(FromWorkspace(root, cfg, true))
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	if Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", Level())
	}
}

func TestSetup_AbsoluteLogDir(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "logs")

	cleanup, err := Setup(Config{Root: root, Logs: domain.LogsConfig{Dir: abs}})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	if want := filepath.Join(abs, "synastry.log"); Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if Level() != slog.LevelInfo {
		t.Fatalf("expected info level by default, got %v", Level())
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Logs: domain.LogsConfig{Level: "loud"}})
	if err == nil {
		_ = cleanup()
		t.Fatalf("expected error for unknown level")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config kind, got %v", err)
	}
	if Ready() {
		t.Fatalf("expected discard logger after failed setup")
	}
}

func TestL_DiscardsBeforeSetup(t *testing.T) {
	if L() == nil {
		t.Fatalf("expected non-nil logger")
	}
	L().Info("ignored")
}
