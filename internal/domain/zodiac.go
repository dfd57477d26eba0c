package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinutesPerDegree is the number of arc-minutes in one degree.
	MinutesPerDegree = 60
	// SignMinutes is the arc-minute width of one zodiac sign (30°).
	SignMinutes = 30 * MinutesPerDegree
	// CircleMinutes is the full circle in arc-minutes (360°).
	CircleMinutes = 12 * SignMinutes
	// HalfCircle is the largest possible shortest separation (180°).
	HalfCircle = CircleMinutes / 2
)

// Sign is a zodiac sign index in [0, 11], Aries first.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Signs is the fixed ordering of the zodiac.
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSymbols = [...]string{
	"♈", "♉", "♊", "♋", "♌", "♍",
	"♎", "♏", "♐", "♑", "♒", "♓",
}

func (s Sign) Valid() bool { return s >= Aries && s <= Pisces }

// Name returns the English sign name, e.g. "Aries".
func (s Sign) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

// Symbol returns the Unicode glyph, e.g. "♈".
func (s Sign) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return signSymbols[s]
}

func (s Sign) String() string { return s.Name() }

// ParseSign accepts a sign name (case-insensitive) or its glyph.
func ParseSign(in string) (Sign, bool) {
	v := stripVariationSelectors(strings.TrimSpace(in))
	for i := range signNames {
		if v == signSymbols[i] || strings.EqualFold(v, signNames[i]) {
			return Sign(i), true
		}
	}
	return 0, false
}

// Coordinate is a position on the zodiac circle in arc-minutes, [0, CircleMinutes).
type Coordinate int

// Position is the sign/degree/minute form of a Coordinate.
type Position struct {
	Sign   Sign
	Degree int
	Minute int
}

// Valid reports whether the position lies inside its sign.
func (p Position) Valid() bool {
	return p.Sign.Valid() &&
		p.Degree >= 0 && p.Degree < 30 &&
		p.Minute >= 0 && p.Minute < MinutesPerDegree
}

// Coordinate encodes the position.
func (p Position) Coordinate() Coordinate {
	return Encode(p.Sign, p.Degree, p.Minute)
}

func (p Position) String() string {
	return fmt.Sprintf("%s %d°%d′", p.Sign.Name(), p.Degree, p.Minute)
}

// Encode maps sign/degree/minute onto the arc-minute circle.
// Inputs are expected to be in range; callers enforce that.
func Encode(sign Sign, degree, minute int) Coordinate {
	return Coordinate(int(sign)*SignMinutes + degree*MinutesPerDegree + minute)
}

// Decode is the inverse of Encode.
func Decode(c Coordinate) Position {
	n := int(c)
	return Position{
		Sign:   Sign(n / SignMinutes),
		Degree: (n % SignMinutes) / MinutesPerDegree,
		Minute: n % MinutesPerDegree,
	}
}

func (c Coordinate) Position() Position { return Decode(c) }

func (c Coordinate) String() string { return Decode(c).String() }

// ParsePosition parses a reference-table cell such as "♊ 10°46′".
// The result is absent (ok=false) for non-string values and for any text that
// does not follow the "<sign> <degree>°<minute>′" shape. Degree and minute are
// not range-checked.
func ParsePosition(v any) (Coordinate, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	p, ok := ParsePositionText(s)
	if !ok {
		return 0, false
	}
	return p.Coordinate(), true
}

// ParsePositionText splits "<sign> <degree>°<minute>′" into its parts without
// range-checking them; use Position.Valid for that.
func ParsePositionText(s string) (Position, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return Position{}, false
	}

	sign, ok := ParseSign(parts[0])
	if !ok {
		return Position{}, false
	}

	dm := strings.Split(parts[1], "°")
	if len(dm) != 2 {
		return Position{}, false
	}

	degree, err := strconv.Atoi(dm[0])
	if err != nil {
		return Position{}, false
	}

	minuteText := strings.NewReplacer("'", "", "′", "").Replace(dm[1])
	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return Position{}, false
	}

	return Position{Sign: sign, Degree: degree, Minute: minute}, true
}

// FormatPosition renders a coordinate in the reference-table cell format.
func FormatPosition(c Coordinate) string {
	p := Decode(c)
	return fmt.Sprintf("%s %d°%d′", p.Sign.Symbol(), p.Degree, p.Minute)
}

// Spreadsheets frequently append U+FE0E/U+FE0F to zodiac glyphs.
func stripVariationSelectors(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\uFE0E' || r == '\uFE0F' {
			return -1
		}
		return r
	}, s)
}
