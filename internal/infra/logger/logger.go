package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

// Config controls where the process-wide logger writes and at which level.
// Logs comes from the workspace's synastry.yaml; zero fields fall back to
// domain.DefaultConfig().Logs.
type Config struct {
	Root  string
	Logs  domain.LogsConfig
	Debug bool
}

// FromWorkspace builds a Config for a workspace root and its loaded config.
func FromWorkspace(root string, cfg domain.Config, debug bool) Config {
	return Config{Root: root, Logs: cfg.Logs, Debug: debug}
}

// file resolves the log file path against the workspace root.
func (c Config) file() string {
	def := domain.DefaultConfig().Logs

	root := strings.TrimSpace(c.Root)
	if root == "" {
		root = "."
	}
	dir := strings.TrimSpace(c.Logs.Dir)
	if dir == "" {
		dir = def.Dir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, filepath.FromSlash(dir))
	}
	name := strings.TrimSpace(c.Logs.File)
	if name == "" {
		name = def.File
	}
	return filepath.Join(filepath.Clean(dir), name)
}

// level parses Logs.Level. Debug wins over whatever the file says.
func (c Config) level() (slog.Level, error) {
	if c.Debug {
		return slog.LevelDebug, nil
	}
	raw := strings.TrimSpace(c.Logs.Level)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, &domain.OpError{
			Op:   "logger.level",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	return lvl, nil
}

type sink struct {
	f        *os.File
	path     string
	level    slog.Level
	openedAt time.Time
}

var (
	mu     sync.RWMutex
	global = discard()
	active *sink
)

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup opens the configured log file (by default
// <root>/.synastry/logs/synastry.log) and installs a JSON logger as the
// process-wide logger. The returned cleanup closes the file and restores the
// discard logger. On error the discard logger stays in place.
func Setup(cfg Config) (func() error, error) {
	lvl, err := cfg.level()
	if err != nil {
		reset()
		return nil, err
	}

	path := cfg.file()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.mkdir", Kind: domain.KindExecution, Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, &domain.OpError{Op: "logger.open", Kind: domain.KindExecution, Path: path, Err: err}
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   cfg.Debug,
		ReplaceAttr: utcTime,
	})
	s := &sink{f: f, path: path, level: lvl, openedAt: time.Now().UTC()}

	mu.Lock()
	global = slog.New(h)
	active = s
	mu.Unlock()

	L().Info("logger.initialized", "path", path, "level", lvl.String(), "workspace", cfg.Root)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		if active != s {
			return nil
		}
		global = discard()
		active = nil
		return s.f.Close()
	}, nil
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	active = nil
}

// L returns the process-wide logger. Before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the open log file, or "" when logging is not set up.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if active == nil {
		return ""
	}
	return active.path
}

// Level reports the active minimum level; Info when logging is not set up.
func Level() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	if active == nil {
		return slog.LevelInfo
	}
	return active.level
}

func OpenedAt() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	if active == nil {
		return time.Time{}
	}
	return active.openedAt
}

func Ready() bool {
	mu.RLock()
	defer mu.RUnlock()
	return active != nil
}
