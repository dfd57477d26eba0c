package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
	"github.com/redstringoffate/synastry-aspect-mapper/internal/infra/config"
)

const entryHint = `expected "<label> <sign> <degree> <minute>" or "<label> ♋ 12°30′"`

var errEntryFormat = errors.New(entryHint)

// parseEntry reads one typed point. The label is everything before the
// position, so it may contain spaces ("North Node Leo 3 15").
func parseEntry(in string) (string, domain.Position, error) {
	parts := strings.Fields(in)
	n := len(parts)
	if n < 2 {
		return "", domain.Position{}, errEntryFormat
	}

	var (
		label string
		dto   config.YAMLPoint
	)
	switch {
	case strings.Contains(parts[n-1], "°"):
		if n < 3 {
			return "", domain.Position{}, errEntryFormat
		}
		label = strings.Join(parts[:n-2], " ")
		dto = config.YAMLPoint{Position: parts[n-2] + " " + parts[n-1]}

	case n >= 4 && isInt(parts[n-1]) && isInt(parts[n-2]):
		label = strings.Join(parts[:n-3], " ")
		deg, _ := strconv.Atoi(parts[n-2])
		minute, _ := strconv.Atoi(parts[n-1])
		dto = config.YAMLPoint{Sign: parts[n-3], Degree: deg, Minute: minute}

	case n >= 3 && isInt(parts[n-1]):
		label = strings.Join(parts[:n-2], " ")
		deg, _ := strconv.Atoi(parts[n-1])
		dto = config.YAMLPoint{Sign: parts[n-2], Degree: deg}

	default:
		return "", domain.Position{}, errEntryFormat
	}

	dto.Label = label
	pos, err := config.MapPoint(dto)
	if err != nil {
		return "", domain.Position{}, err
	}
	return label, pos, nil
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
