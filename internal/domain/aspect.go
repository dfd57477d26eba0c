package domain

import (
	"sort"
	"strings"
	"unicode"
)

const (
	Conjunction = "Conjunction"
	Opposition  = "Opposition"
)

// AspectVariants lists every aspect variant the tool knows about, in lookup
// order. When two variants of one aspect both match a pair, the earlier one wins.
var AspectVariants = []string{
	Conjunction, Opposition,
	"Trine1", "Trine2",
	"Square1", "Square2",
	"Quintile1", "Quintile2",
	"Bi-quintile1", "Bi-quintile2",
	"Sextile1", "Sextile2",
	"Septile1", "Septile2",
	"Bi-septile1", "Bi-septile2",
	"Tri-septile1", "Tri-septile2",
	"Octile1", "Octile2",
	"Sesquiquadrate1", "Sesquiquadrate2",
	"Novile1", "Novile2",
	"Bi-novile1", "Bi-novile2",
	"Decile1", "Decile2",
	"Tri-decile1", "Tri-decile2",
	"Undecile1", "Undecile2",
	"Bi-undecile1", "Bi-undecile2",
	"Tri-undecile1", "Tri-undecile2",
	"Quad-undecile1", "Quad-undecile2",
	"Quin-undecile1", "Quin-undecile2",
	"Semi-sextile1", "Semi-sextile2",
	"Quincunx1", "Quincunx2",
}

// Orb limits in arc-minutes, per canonical aspect.
var canonicalOrbs = map[string]int{
	Conjunction:      480,
	Opposition:       480,
	"Trine":          360,
	"Square":         360,
	"Quintile":       120,
	"Bi-quintile":    120,
	"Sextile":        240,
	"Septile":        60,
	"Bi-septile":     60,
	"Tri-septile":    60,
	"Octile":         180,
	"Sesquiquadrate": 180,
	"Novile":         60,
	"Bi-novile":      60,
	"Decile":         90,
	"Tri-decile":     90,
	"Undecile":       30,
	"Bi-undecile":    30,
	"Tri-undecile":   30,
	"Quad-undecile":  30,
	"Quin-undecile":  30,
	"Semi-sextile":   120,
	"Quincunx":       180,
}

// OrbPolicy maps an aspect variant name to its maximum orb in arc-minutes.
type OrbPolicy map[string]int

// DefaultOrbPolicy returns a fresh copy of the built-in orb limits.
func DefaultOrbPolicy() OrbPolicy {
	p := make(OrbPolicy, len(AspectVariants))
	for _, v := range AspectVariants {
		p[v] = canonicalOrbs[Canonical(v)]
	}
	return p
}

// Orb returns the limit for a variant and whether the policy defines it.
func (p OrbPolicy) Orb(variant string) (int, bool) {
	orb, ok := p[variant]
	return orb, ok
}

// Variants returns the policy keys: known variants in AspectVariants order,
// followed by any other keys sorted by name.
func (p OrbPolicy) Variants() []string {
	out := make([]string, 0, len(p))
	known := make(map[string]bool, len(AspectVariants))
	for _, v := range AspectVariants {
		known[v] = true
		if _, ok := p[v]; ok {
			out = append(out, v)
		}
	}

	var extra []string
	for v := range p {
		if !known[v] {
			extra = append(extra, v)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Canonical strips digit characters from a variant name ("Trine1" -> "Trine").
func Canonical(variant string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, variant)
}
