package domain

import "testing"

func TestCanonical(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Trine1", "Trine"},
		{"Trine2", "Trine"},
		{"Bi-quintile2", "Bi-quintile"},
		{"Quin-undecile1", "Quin-undecile"},
		{"Conjunction", "Conjunction"},
		{"Opposition", "Opposition"},
	}
	for _, c := range cases {
		if got := Canonical(c.input); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDefaultOrbPolicy_Values(t *testing.T) {
	p := DefaultOrbPolicy()

	if len(p) != len(AspectVariants) {
		t.Fatalf("expected %d variants, got %d", len(AspectVariants), len(p))
	}

	want := map[string]int{
		"Conjunction":     480,
		"Opposition":      480,
		"Trine1":          360,
		"Square2":         360,
		"Sextile1":        240,
		"Sesquiquadrate2": 180,
		"Decile1":         90,
		"Quad-undecile2":  30,
		"Semi-sextile1":   120,
		"Quincunx2":       180,
	}
	for k, v := range want {
		if got, ok := p.Orb(k); !ok || got != v {
			t.Errorf("orb[%s] = (%d, %v), want %d", k, got, ok, v)
		}
	}
}

func TestDefaultOrbPolicy_VariantPairsShareOrb(t *testing.T) {
	p := DefaultOrbPolicy()
	byCanonical := map[string][]int{}
	for _, v := range AspectVariants {
		byCanonical[Canonical(v)] = append(byCanonical[Canonical(v)], p[v])
	}

	for name, orbs := range byCanonical {
		switch name {
		case Conjunction, Opposition:
			if len(orbs) != 1 {
				t.Errorf("%s should have no numbered variants, got %d", name, len(orbs))
			}
		default:
			if len(orbs) != 2 {
				t.Errorf("%s should have two variants, got %d", name, len(orbs))
				continue
			}
			if orbs[0] != orbs[1] {
				t.Errorf("%s variants disagree: %v", name, orbs)
			}
		}
	}
}

func TestDefaultOrbPolicy_IsACopy(t *testing.T) {
	p := DefaultOrbPolicy()
	p["Trine1"] = 1
	if DefaultOrbPolicy()["Trine1"] != 360 {
		t.Fatalf("mutating one policy must not leak into the next")
	}
}

func TestOrbPolicyVariants_Order(t *testing.T) {
	p := OrbPolicy{"Zeta": 1, "Trine2": 360, "Alpha": 2, "Conjunction": 480, "Trine1": 360}
	got := p.Variants()
	want := []string{"Conjunction", "Trine1", "Trine2", "Alpha", "Zeta"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
