package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line toast. Details stay in the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			case strings.Contains(oe.Op, "workspacefinder.loadconfig"):
				return "synastry.yaml not found"
			case strings.Contains(oe.Op, "load_chart"):
				return "Chart not found: " + baseName(oe.Path)
			case strings.Contains(oe.Op, "reftable"):
				return "Reference table not found: " + baseName(oe.Path)
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid " + base + ": " + innermost(err)

		case domain.KindInvalidInput:
			return "Invalid point: " + innermost(oe.Err)

		case domain.KindOutOfRange:
			return "No point at that position"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, errEntryFormat) {
		return "Cannot read point: " + entryHint
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// innermost drops the trailing ": <sentinel>" from wrapped field errors.
func innermost(err error) string {
	s := err.Error()
	for _, sentinel := range []error{domain.ErrInvalidInput, domain.ErrInvalidConfig} {
		s = strings.TrimSuffix(s, ": "+sentinel.Error())
	}
	if i := strings.LastIndex(s, "field "); i >= 0 {
		s = s[i+len("field "):]
	}
	return s
}

func baseName(p string) string {
	if strings.TrimSpace(p) == "" {
		return "(unknown)"
	}
	return filepath.Base(p)
}
