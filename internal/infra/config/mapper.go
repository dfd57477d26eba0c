package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

// MapChart converts a chart DTO into a domain chart. Points with an empty
// label are skipped without error, mirroring interactive registration.
func MapChart(path string, yc YAMLChart) (domain.Chart, error) {
	name := strings.TrimSpace(yc.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	chart := domain.Chart{
		Name:   name,
		Points: make([]domain.LabeledPoint, 0, len(yc.Points)),
	}

	for i, p := range yc.Points {
		if p.Label == "" {
			continue
		}

		fieldPrefix := fmt.Sprintf("points[%d]", i)
		pos, ferr := mapPosition(p)
		if ferr != nil {
			return domain.Chart{}, invalidField(path, fieldPrefix+ferr.field, ferr.msg)
		}

		chart.Points = append(chart.Points, domain.LabeledPoint{
			Label:      p.Label,
			Coordinate: pos.Coordinate(),
		})
	}

	return chart, nil
}

type fieldErr struct {
	field string
	msg   string
}

func mapPosition(p YAMLPoint) (domain.Position, *fieldErr) {
	if strings.TrimSpace(p.Position) != "" {
		pos, ok := domain.ParsePositionText(p.Position)
		if !ok {
			return domain.Position{}, &fieldErr{".position", fmt.Sprintf("cannot parse %q (expected e.g. \"♋ 12°30′\")", p.Position)}
		}
		if !pos.Valid() {
			return domain.Position{}, &fieldErr{".position", fmt.Sprintf("%q is out of range", p.Position)}
		}
		return pos, nil
	}

	if strings.TrimSpace(p.Sign) == "" {
		return domain.Position{}, &fieldErr{".sign", "sign or position is required"}
	}

	if field, msg, ok := ValidatePoint(p); !ok {
		return domain.Position{}, &fieldErr{"." + field, msg}
	}

	sign, _ := domain.ParseSign(p.Sign)
	return domain.Position{Sign: sign, Degree: p.Degree, Minute: p.Minute}, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

// MapPoint resolves a single point DTO to a position. It is used for points
// typed interactively, where there is no file to report.
func MapPoint(p YAMLPoint) (domain.Position, error) {
	pos, ferr := mapPosition(p)
	if ferr != nil {
		return domain.Position{}, &domain.OpError{
			Op:   "config.map_point",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%s: %s: %w", strings.TrimPrefix(ferr.field, "."), ferr.msg, domain.ErrInvalidInput),
		}
	}
	return pos, nil
}
