package scoring

import "math"

// Cognitive score range and band cutoffs.
const (
	CognitiveCeiling = 170
	CognitiveFloor   = 70

	bandAverage      = 90
	bandAboveAverage = 110
	bandSuperior     = 130
)

// Cognitive band labels.
const (
	LabelBelowAverage = "below average"
	LabelAverage      = "average"
	LabelAboveAverage = "above average"
	LabelSuperior     = "superior"
)

// CognitiveResult is the scored outcome of the timed ability test.
type CognitiveResult struct {
	Score                  int     `json:"score"`
	Label                  string  `json:"label"`
	Accuracy               float64 `json:"accuracy"`
	AverageResponseSeconds float64 `json:"averageResponseSeconds"`
}

// timePenaltyStep maps an average response time (upper bound in seconds)
// to its penalty. Monotonic: faster answers are penalized least.
var timePenaltySteps = []struct {
	maxSeconds float64
	penalty    float64
}{
	{30, 0},
	{60, 10},
	{120, 40},
	{180, 60},
	{240, 70},
	{300, 80},
}

const timePenaltyMax = 100.0

// timePenalty returns the penalty for a given average response time.
func timePenalty(averageSeconds float64) float64 {
	for _, step := range timePenaltySteps {
		if averageSeconds <= step.maxSeconds {
			return step.penalty
		}
	}
	return timePenaltyMax
}

// ScoreCognitive computes the score for a session of totalQuestions
// questions in which correctCount answers were right. responseTimesMs
// holds one entry per answer actually given; questions left unanswered
// at expiry count as incorrect through totalQuestions but are excluded
// from the time average rather than treated as zero-time.
func ScoreCognitive(correctCount, totalQuestions int, responseTimesMs []int64) CognitiveResult {
	accuracy := 0.0
	if totalQuestions > 0 {
		accuracy = float64(correctCount) / float64(totalQuestions)
	}

	avgSeconds := 0.0
	if len(responseTimesMs) > 0 {
		var totalMs int64
		for _, ms := range responseTimesMs {
			totalMs += ms
		}
		avgSeconds = float64(totalMs) / float64(len(responseTimesMs)) / 1000.0
	}

	accuracyPenalty := (1 - accuracy) * 50
	raw := float64(CognitiveCeiling) - timePenalty(avgSeconds) - accuracyPenalty
	score := int(math.Round(clamp(raw, CognitiveFloor, CognitiveCeiling)))

	return CognitiveResult{
		Score:                  score,
		Label:                  CognitiveLabel(score),
		Accuracy:               accuracy,
		AverageResponseSeconds: avgSeconds,
	}
}

// CognitiveLabel returns the band label for a score.
func CognitiveLabel(score int) string {
	switch {
	case score < bandAverage:
		return LabelBelowAverage
	case score < bandAboveAverage:
		return LabelAverage
	case score < bandSuperior:
		return LabelAboveAverage
	default:
		return LabelSuperior
	}
}
