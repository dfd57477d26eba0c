package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func LoadChart(path string) (domain.Chart, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Chart{}, &domain.OpError{
			Op:   "config.load_chart",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLChart
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Chart{}, &domain.OpError{
			Op:   "config.load_chart",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapChart(path, dto)
}
