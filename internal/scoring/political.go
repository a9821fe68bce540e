// Package scoring maps completed answer sets to results. All functions
// are pure: identical inputs always produce identical results.
package scoring

import "github.com/abhisek/iqorum/internal/bank"

// Axis normalization and band thresholds. AxisScale is chosen so that a
// 10-question all-same-direction answer set lands exactly on the axis
// boundary (50 + 10*5 = 100). The outer band marks the four corner
// quadrants, the inner band the single-axis leanings; scores inside the
// inner band on both axes read as centrist. Boundary values sit in the
// less extreme band.
const (
	AxisScale = 5.0

	BandOuterLow  = 25.0
	BandInnerLow  = 40.0
	BandInnerHigh = 60.0
	BandOuterHigh = 75.0
)

// PoliticalResult is the scored outcome of the orientation survey.
// EconomicAxis runs left (0) to right (100); SocialAxis runs libertarian
// (0) to authoritarian (100).
type PoliticalResult struct {
	EconomicAxis float64 `json:"economicAxis"`
	SocialAxis   float64 `json:"socialAxis"`
	Label        string  `json:"label"`
	Description  string  `json:"description"`
}

// Political quadrant and band labels.
const (
	LabelLibertarianLeft    = "Libertarian Left"
	LabelAuthoritarianLeft  = "Authoritarian Left"
	LabelLibertarianRight   = "Libertarian Right"
	LabelAuthoritarianRight = "Authoritarian Right"
	LabelLeftLeaning        = "Left-Leaning"
	LabelRightLeaning       = "Right-Leaning"
	LabelLibertarian        = "Libertarian"
	LabelAuthoritarian      = "Authoritarian"
	LabelCentrist           = "Centrist"
)

var politicalDescriptions = map[string]string{
	LabelLibertarianLeft:    "You favor personal freedom and economic equality.",
	LabelAuthoritarianLeft:  "You favor economic equality and strong social structure.",
	LabelLibertarianRight:   "You favor free markets and personal freedom.",
	LabelAuthoritarianRight: "You favor strong authority and free markets.",
	LabelLeftLeaning:        "You generally favor economic equality.",
	LabelRightLeaning:       "You generally favor free markets.",
	LabelLibertarian:        "You generally favor personal freedom.",
	LabelAuthoritarian:      "You generally favor strong social structure.",
	LabelCentrist:           "You show balanced views on both economic and social dimensions.",
}

// ScorePolitical accumulates the axis values of a completed answer set
// into a two-axis result. Left/right move the economic axis, auth/lib the
// social axis, neutral moves neither. An empty answer set scores dead
// center.
func ScorePolitical(values []bank.Axis) PoliticalResult {
	economic := 0
	social := 0

	for _, v := range values {
		switch v {
		case bank.AxisLeft:
			economic--
		case bank.AxisRight:
			economic++
		case bank.AxisAuthoritarian:
			social++
		case bank.AxisLibertarian:
			social--
		}
	}

	x := clamp(50+float64(economic)*AxisScale, 0, 100)
	y := clamp(50+float64(social)*AxisScale, 0, 100)

	label := politicalLabel(x, y)

	return PoliticalResult{
		EconomicAxis: x,
		SocialAxis:   y,
		Label:        label,
		Description:  politicalDescriptions[label],
	}
}

// politicalLabel assigns the band label for an axis position. Corner
// labels need both axes past the outer band; a single axis past the inner
// band gives a leaning label; everything else is centrist. Comparisons
// are strict so exact threshold values resolve to the less extreme label.
func politicalLabel(x, y float64) string {
	switch {
	case x < BandOuterLow && y < BandOuterLow:
		return LabelLibertarianLeft
	case x < BandOuterLow && y > BandOuterHigh:
		return LabelAuthoritarianLeft
	case x > BandOuterHigh && y < BandOuterLow:
		return LabelLibertarianRight
	case x > BandOuterHigh && y > BandOuterHigh:
		return LabelAuthoritarianRight
	case x < BandInnerLow:
		return LabelLeftLeaning
	case x > BandInnerHigh:
		return LabelRightLeaning
	case y < BandInnerLow:
		return LabelLibertarian
	case y > BandInnerHigh:
		return LabelAuthoritarian
	default:
		return LabelCentrist
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
