package domain

import "testing"

func TestSessionRegisterPoint(t *testing.T) {
	s := NewSession()

	p, ok := s.RegisterPoint(PersonA, "Sun", Position{Sign: Aries, Degree: 4})
	if !ok {
		t.Fatalf("expected point to be added")
	}
	if p.Coordinate != 240 {
		t.Fatalf("expected coordinate 240, got %d", p.Coordinate)
	}

	if _, ok := s.RegisterPoint(PersonA, "", Position{Sign: Leo}); ok {
		t.Fatalf("expected empty label to be ignored")
	}

	if got := s.Points(PersonA); len(got) != 1 || got[0].Label != "Sun" {
		t.Fatalf("unexpected points: %v", got)
	}
	if got := s.Points(PersonB); len(got) != 0 {
		t.Fatalf("expected no points for B, got %v", got)
	}
}

func TestSessionRemovePoint(t *testing.T) {
	s := NewSession()
	s.RegisterPoint(PersonB, "Sun", Position{Sign: Aries})
	s.RegisterPoint(PersonB, "Moon", Position{Sign: Cancer})
	s.RegisterPoint(PersonB, "Venus", Position{Sign: Libra})

	removed, err := s.RemovePoint(PersonB, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.Label != "Moon" {
		t.Fatalf("expected Moon removed, got %s", removed.Label)
	}

	got := s.Points(PersonB)
	if len(got) != 2 || got[0].Label != "Sun" || got[1].Label != "Venus" {
		t.Fatalf("unexpected points after removal: %v", got)
	}
}

func TestSessionRemovePoint_OutOfRange(t *testing.T) {
	s := NewSession()
	s.RegisterPoint(PersonA, "Sun", Position{Sign: Aries})

	for _, idx := range []int{-1, 1, 5} {
		_, err := s.RemovePoint(PersonA, idx)
		if err == nil {
			t.Fatalf("expected error for index %d", idx)
		}
		if !IsKind(err, KindOutOfRange) {
			t.Fatalf("expected KindOutOfRange, got %v", err)
		}
	}
	if len(s.Points(PersonA)) != 1 {
		t.Fatalf("failed removals must not change the list")
	}
}

func TestSessionPointsIsACopy(t *testing.T) {
	s := NewSession()
	s.RegisterPoint(PersonA, "Sun", Position{Sign: Aries})

	got := s.Points(PersonA)
	got[0].Label = "changed"

	if s.Points(PersonA)[0].Label != "Sun" {
		t.Fatalf("Points must return a copy")
	}

	s.Clear(PersonA)
	if len(s.Points(PersonA)) != 0 {
		t.Fatalf("expected Clear to remove points")
	}
}
