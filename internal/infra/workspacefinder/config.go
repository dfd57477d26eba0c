package workspacefinder

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

// ConfigFile is the workspace marker and configuration file.
const ConfigFile = "synastry.yaml"

// LoadConfig loads synastry.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	ref := y.Synastry.Reference
	if ref.Path != "" {
		cfg.Reference.Path = ref.Path
	}
	if ref.Sheet != "" {
		cfg.Reference.Sheet = ref.Sheet
	}
	if ref.PositionColumn != "" {
		cfg.Reference.PositionColumn = ref.PositionColumn
	}

	charts := y.Synastry.Charts
	if charts.Dir != "" {
		cfg.Charts.Dir = charts.Dir
	}
	if charts.DefaultA != "" {
		cfg.Charts.DefaultA = charts.DefaultA
	}
	if charts.DefaultB != "" {
		cfg.Charts.DefaultB = charts.DefaultB
	}

	exports := y.Synastry.Exports
	if exports.Dir != "" {
		cfg.Exports.Dir = exports.Dir
	}
	if exports.BOM != nil {
		cfg.Exports.BOM = *exports.BOM
	}
	if exports.Index != nil {
		cfg.Exports.Index = *exports.Index
	}

	logs := y.Synastry.Logs
	if logs.Dir != "" {
		cfg.Logs.Dir = logs.Dir
	}
	if logs.File != "" {
		cfg.Logs.File = logs.File
	}
	if logs.Level != "" {
		cfg.Logs.Level = logs.Level
	}

	return cfg, nil
}

type yamlConfig struct {
	Synastry struct {
		Reference struct {
			Path           string `yaml:"path"`
			Sheet          string `yaml:"sheet"`
			PositionColumn string `yaml:"position_column"`
		} `yaml:"reference"`

		Charts struct {
			Dir      string `yaml:"dir"`
			DefaultA string `yaml:"default_a"`
			DefaultB string `yaml:"default_b"`
		} `yaml:"charts"`

		Exports struct {
			Dir   string `yaml:"dir"`
			BOM   *bool  `yaml:"bom"`
			Index *bool  `yaml:"index"`
		} `yaml:"exports"`

		Logs struct {
			Dir   string `yaml:"dir"`
			File  string `yaml:"file"`
			Level string `yaml:"level"`
		} `yaml:"logs"`
	} `yaml:"synastry"`
}
