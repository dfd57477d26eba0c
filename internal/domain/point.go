package domain

import "fmt"

// Person identifies which side of the comparison a point belongs to.
type Person string

const (
	PersonA Person = "A"
	PersonB Person = "B"
)

// LabeledPoint is a named position belonging to one person.
type LabeledPoint struct {
	Label      string
	Coordinate Coordinate
}

func (p LabeledPoint) String() string {
	return fmt.Sprintf("%s — %s", p.Label, p.Coordinate)
}

// Session holds the per-person point lists for one interactive session.
// It is owned by the caller and is not safe for concurrent mutation.
type Session struct {
	points map[Person][]LabeledPoint
}

func NewSession() *Session {
	return &Session{points: map[Person][]LabeledPoint{}}
}

// RegisterPoint appends a point for person. An empty label is ignored and
// reported as added=false; no error is produced.
func (s *Session) RegisterPoint(person Person, label string, pos Position) (LabeledPoint, bool) {
	if label == "" {
		return LabeledPoint{}, false
	}
	p := LabeledPoint{Label: label, Coordinate: pos.Coordinate()}
	s.points[person] = append(s.points[person], p)
	return p, true
}

// RemovePoint deletes the point at index for person.
func (s *Session) RemovePoint(person Person, index int) (LabeledPoint, error) {
	pts := s.points[person]
	if index < 0 || index >= len(pts) {
		return LabeledPoint{}, &OpError{
			Op:   "session.remove_point",
			Kind: KindOutOfRange,
			Err:  fmt.Errorf("person %s index %d (have %d): %w", person, index, len(pts), ErrOutOfRange),
		}
	}
	removed := pts[index]
	s.points[person] = append(pts[:index:index], pts[index+1:]...)
	return removed, nil
}

// Points returns a copy of person's points in registration order.
func (s *Session) Points(person Person) []LabeledPoint {
	pts := s.points[person]
	out := make([]LabeledPoint, len(pts))
	copy(out, pts)
	return out
}

// Clear removes every point for person.
func (s *Session) Clear(person Person) {
	delete(s.points, person)
}
