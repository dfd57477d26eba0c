package usecase

import (
	"context"
	"testing"

	"github.com/redstringoffate/synastry-aspect-mapper/internal/domain"
)

func TestValidateCharts_ReportsCoverage(t *testing.T) {
	uc := NewValidateCharts(twoCharts(), &fakeTableLoader{table: trineTable()})

	v, err := uc.Execute(context.Background(), RunRequest{ChartA: "a", ChartB: "b"})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if v.ChartA.Name != "Alice" || v.ChartB.Name != "Bob" {
		t.Fatalf("unexpected charts: %s / %s", v.ChartA.Name, v.ChartB.Name)
	}
	if v.ReferenceRows != 1 {
		t.Fatalf("expected 1 reference row, got %d", v.ReferenceRows)
	}
	if len(v.Variants) != 2 || v.Variants[0] != "Trine1" || v.Variants[1] != "Square1" {
		t.Fatalf("unexpected variants: %v", v.Variants)
	}
	// Conjunction is never reported missing; Trine1 and Square1 are present.
	if len(v.MissingAspects) != len(domain.AspectVariants)-3 {
		t.Fatalf("expected %d missing variants, got %d", len(domain.AspectVariants)-3, len(v.MissingAspects))
	}

	// Moon (Cancer 12°30′) has no row; Sun (Aries 0°) does.
	if len(v.Unplaced) != 1 || v.Unplaced[0] != "Moon (Cancer 12°30′)" {
		t.Fatalf("unexpected unplaced: %v", v.Unplaced)
	}
}

func TestValidateCharts_PropagatesLoadErrors(t *testing.T) {
	uc := NewValidateCharts(twoCharts(), &fakeTableLoader{table: trineTable()})

	_, err := uc.Execute(context.Background(), RunRequest{ChartA: "missing", ChartB: "b"})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
