package domain

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, s := range Signs {
		for d := 0; d < 30; d++ {
			for m := 0; m < 60; m++ {
				c := Encode(s, d, m)
				if c < 0 || c >= CircleMinutes {
					t.Fatalf("Encode(%s,%d,%d)=%d out of range", s, d, m, c)
				}
				got := Decode(c)
				if got.Sign != s || got.Degree != d || got.Minute != m {
					t.Fatalf("round trip mismatch: %v -> %d -> %v", Position{s, d, m}, c, got)
				}
			}
		}
	}
}

func TestEncodeKnownValues(t *testing.T) {
	cases := []struct {
		sign   Sign
		degree int
		minute int
		want   Coordinate
	}{
		{Aries, 0, 0, 0},
		{Aries, 4, 0, 240},
		{Leo, 0, 0, 7200},
		{Gemini, 10, 46, 4246},
		{Pisces, 29, 59, 21599},
	}
	for _, c := range cases {
		if got := Encode(c.sign, c.degree, c.minute); got != c.want {
			t.Errorf("Encode(%s,%d,%d) = %d, want %d", c.sign, c.degree, c.minute, got, c.want)
		}
	}
}

func TestParseSign(t *testing.T) {
	cases := []struct {
		input string
		want  Sign
		ok    bool
	}{
		{"Aries", Aries, true},
		{"aries", Aries, true},
		{"♓", Pisces, true},
		{"♌\uFE0F", Leo, true},
		{" Virgo ", Virgo, true},
		{"Ophiuchus", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseSign(c.input)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ParseSign(%q) = (%v, %v), want (%v, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestParsePosition(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Coordinate
		ok    bool
	}{
		{"prime", "♊ 10°46′", 4246, true},
		{"ascii apostrophe", "♊ 10°46'", 4246, true},
		{"no minute mark", "♈ 0°0", 0, true},
		{"sign name", "Leo 0°0′", 7200, true},
		{"extra whitespace", "  ♓   29°59′ ", 21599, true},
		{"non-string", 42, 0, false},
		{"nil", nil, 0, false},
		{"empty", "", 0, false},
		{"unknown sign", "X 10°46′", 0, false},
		{"missing degree mark", "♊ 1046", 0, false},
		{"split minute", "♊ 10° 46′", 0, false},
		{"bad degree", "♊ ab°46′", 0, false},
		{"two degree marks", "♊ 10°4°6", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := ParsePosition(c.input)
			if ok != c.ok {
				t.Fatalf("ParsePosition(%v) ok=%v, want %v", c.input, ok, c.ok)
			}
			if ok && got != c.want {
				t.Fatalf("ParsePosition(%v) = %d, want %d", c.input, got, c.want)
			}
		})
	}
}

func TestFormatPositionParsesBack(t *testing.T) {
	for _, c := range []Coordinate{0, 1, 59, 60, 1799, 1800, 7200, 10800, 21599} {
		got, ok := ParsePosition(FormatPosition(c))
		if !ok || got != c {
			t.Fatalf("FormatPosition(%d)=%q parsed to (%d,%v)", c, FormatPosition(c), got, ok)
		}
	}
}

func TestPositionStringAndValid(t *testing.T) {
	p := Position{Sign: Gemini, Degree: 10, Minute: 46}
	if p.String() != "Gemini 10°46′" {
		t.Fatalf("unexpected String: %q", p.String())
	}
	if !p.Valid() {
		t.Fatalf("expected valid position")
	}
	if (Position{Sign: Aries, Degree: 30}).Valid() {
		t.Fatalf("expected degree 30 to be invalid")
	}
	if (Position{Sign: Sign(12)}).Valid() {
		t.Fatalf("expected sign 12 to be invalid")
	}
}
