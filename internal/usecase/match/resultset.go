package match

import "github.com/redstringoffate/synastry-aspect-mapper/internal/domain"

type resultKey struct {
	lo, hi string
	aspect string
}

// ResultSet tracks which (unordered label pair, canonical aspect) combinations
// have already been reported.
type ResultSet struct {
	keys map[resultKey]struct{}
}

func NewResultSet() *ResultSet {
	return &ResultSet{keys: map[resultKey]struct{}{}}
}

// Add records r and reports whether it was new.
func (s *ResultSet) Add(r domain.SynastryResult) bool {
	k := keyOf(r)
	if _, dup := s.keys[k]; dup {
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

// Has reports whether an equivalent result was already recorded.
func (s *ResultSet) Has(r domain.SynastryResult) bool {
	_, ok := s.keys[keyOf(r)]
	return ok
}

func (s *ResultSet) Len() int { return len(s.keys) }

func keyOf(r domain.SynastryResult) resultKey {
	lo, hi := r.LabelA, r.LabelB
	if hi < lo {
		lo, hi = hi, lo
	}
	return resultKey{lo: lo, hi: hi, aspect: r.Aspect}
}
