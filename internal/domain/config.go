package domain

// Config represents the workspace configuration loaded from synastry.yaml.
type Config struct {
	Reference ReferenceConfig
	Charts    ChartsConfig
	Exports   ExportsConfig
	Logs      LogsConfig
}

type ReferenceConfig struct {
	// Path to the reference table, relative to the workspace root.
	Path string
	// Sheet is only used by spreadsheet sources.
	Sheet string
	// PositionColumn is the header of the source-position column.
	// Empty means the first column.
	PositionColumn string
}

type ChartsConfig struct {
	Dir      string
	DefaultA string
	DefaultB string
}

type ExportsConfig struct {
	Dir   string
	BOM   bool
	Index bool
}

// LogsConfig places the run log. Dir is relative to the workspace root unless
// absolute. Level is a slog level name ("debug", "info", "warn", "error").
type LogsConfig struct {
	Dir   string
	File  string
	Level string
}

// DefaultConfig provides sane defaults if synastry.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Reference: ReferenceConfig{
			Path:  "Aspects.xlsx",
			Sheet: "Aspects",
		},
		Charts: ChartsConfig{
			Dir:      "charts",
			DefaultA: "a",
			DefaultB: "b",
		},
		Exports: ExportsConfig{
			Dir:   "exports",
			BOM:   true,
			Index: true,
		},
		Logs: LogsConfig{
			Dir:   ".synastry/logs",
			File:  "synastry.log",
			Level: "info",
		},
	}
}

// WorkspaceSpec describes where a workspace should be initialized.
type WorkspaceSpec struct {
	Root string
}
