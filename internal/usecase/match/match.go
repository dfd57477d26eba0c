// Package match implements aspect detection between two sets of labeled points.
//
// Everything here is a pure function of coordinates, labels, the reference
// table and the orb policy. Nothing is loaded, cached or logged.
package match

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

// CircularDiff returns the shortest separation of a and b on the circle,
// in [0, domain.HalfCircle].
func CircularDiff(a, b domain.Coordinate) int {
	return wrap(abs(int(a) - int(b)))
}

// Matcher evaluates aspects against one reference table and orb policy.
// It is read-only after construction.
type Matcher struct {
	table    *domain.ReferenceTable
	policy   domain.OrbPolicy
	variants []string
	conjOrb  int
	hasConj  bool
}

// NewMatcher binds a table and a policy. The lookup pass only visits variants
// that the policy defines and the table provides, in policy order.
// Conjunction is always decided from the circular distance, so a Conjunction
// column in the table is ignored.
func NewMatcher(table *domain.ReferenceTable, policy domain.OrbPolicy) *Matcher {
	m := &Matcher{table: table, policy: policy}
	m.conjOrb, m.hasConj = policy.Orb(domain.Conjunction)

	for _, v := range policy.Variants() {
		if v == domain.Conjunction {
			continue
		}
		if table.HasVariant(v) {
			m.variants = append(m.variants, v)
		}
	}
	return m
}

// Variants returns the variants evaluated by the lookup pass.
func (m *Matcher) Variants() []string {
	out := make([]string, len(m.variants))
	copy(out, m.variants)
	return out
}

// Missing returns policy variants the table does not provide.
func (m *Matcher) Missing() []string {
	var out []string
	for _, v := range m.policy.Variants() {
		if v == domain.Conjunction {
			continue
		}
		if !m.table.HasVariant(v) {
			out = append(out, v)
		}
	}
	return out
}

// Match returns the aspects between a and b that seen does not already hold,
// and records them in seen. A nil seen disables cross-call dedup.
func (m *Matcher) Match(a, b domain.LabeledPoint, seen *ResultSet) []domain.SynastryResult {
	if seen == nil {
		seen = NewResultSet()
	}

	diff := CircularDiff(a.Coordinate, b.Coordinate)

	if m.hasConj && diff <= m.conjOrb {
		r := domain.SynastryResult{
			LabelA:     a.Label,
			LabelB:     b.Label,
			Aspect:     domain.Conjunction,
			OrbMinutes: diff,
		}
		if !seen.Add(r) {
			return nil
		}
		return []domain.SynastryResult{r}
	}

	var out []domain.SynastryResult
	for _, variant := range m.variants {
		target, ok := m.table.Target(a.Coordinate, variant)
		if !ok {
			continue
		}

		offset := int(target) - int(a.Coordinate)
		// Only a target coinciding with the source itself is excluded.
		if offset%domain.CircleMinutes == 0 {
			continue
		}

		delta := wrap(abs(diff - abs(offset)))
		if delta > m.policy[variant] {
			continue
		}

		r := domain.SynastryResult{
			LabelA:     a.Label,
			LabelB:     b.Label,
			Aspect:     domain.Canonical(variant),
			OrbMinutes: delta,
		}
		if seen.Add(r) {
			out = append(out, r)
		}
	}
	return out
}

// Run compares every point of A with every point of B, A outer and B inner.
// Pairs with identical labels are never compared. Dedup spans the whole run.
func (m *Matcher) Run(pointsA, pointsB []domain.LabeledPoint) []domain.SynastryResult {
	seen := NewResultSet()
	results := []domain.SynastryResult{}

	for _, a := range pointsA {
		for _, b := range pointsB {
			if a.Label == b.Label {
				continue
			}
			results = append(results, m.Match(a, b, seen)...)
		}
	}
	return results
}

func wrap(d int) int {
	if alt := domain.CircleMinutes - d; alt < d {
		return alt
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
