package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

var minutesPerDegree = decimal.NewFromInt(MinutesPerDegree)

// SynastryResult is one aspect found between a point of A and a point of B.
type SynastryResult struct {
	LabelA string
	LabelB string
	// Aspect is the canonical aspect name (no variant suffix).
	Aspect string
	// OrbMinutes is the deviation from exact, in arc-minutes.
	OrbMinutes int
}

// Orb returns the deviation in degrees.
func (r SynastryResult) Orb() decimal.Decimal {
	return decimal.NewFromInt(int64(r.OrbMinutes)).Div(minutesPerDegree)
}

// OrbString formats the orb with two decimals and a degree sign, e.g. "4.00°".
func (r SynastryResult) OrbString() string {
	return r.Orb().StringFixed(2) + "°"
}

type synastryResultJSON struct {
	A      string `json:"A"`
	B      string `json:"B"`
	Aspect string `json:"Aspect"`
	Orb    string `json:"Orb"`
}

func (r SynastryResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(synastryResultJSON{
		A:      r.LabelA,
		B:      r.LabelB,
		Aspect: r.Aspect,
		Orb:    r.OrbString(),
	})
}

// Report is the outcome of one synastry computation, ready to display or export.
type Report struct {
	ID string `json:"id"`

	ChartA         string   `json:"chart_a"`
	ChartB         string   `json:"chart_b"`
	ReferencePath  string   `json:"reference_path,omitempty"`
	PointsA        int      `json:"points_a"`
	PointsB        int      `json:"points_b"`
	ReferenceRows  int      `json:"reference_rows"`
	MissingAspects []string `json:"missing_aspects,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Results []SynastryResult `json:"results"`
}
