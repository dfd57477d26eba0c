package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func TestLoadChart(t *testing.T) {
	path := filepath.Join("testdata", "chart.yaml")
	chart, err := LoadChart(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chart.Name != "Alice" {
		t.Fatalf("expected name Alice, got %q", chart.Name)
	}
	if len(chart.Points) != 2 {
		t.Fatalf("expected two points (empty label skipped), got %d", len(chart.Points))
	}
	if chart.Points[1].Coordinate != domain.Encode(domain.Cancer, 12, 30) {
		t.Fatalf("expected Moon at Cancer 12°30′, got %s", chart.Points[1].Coordinate)
	}
}

func TestLoadChartInvalid(t *testing.T) {
	path := filepath.Join("testdata", "chart_invalid.yaml")
	_, err := LoadChart(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "points[1].degree") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadChartMissing(t *testing.T) {
	_, err := LoadChart(filepath.Join("testdata", "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
