package scoring

import "testing"

func msTimes(seconds float64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(seconds * 1000)
	}
	return out
}

func TestScoreCognitiveAnchors(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		total     int
		times     []int64
		wantScore int
		wantLabel string
	}{
		{
			name:      "perfect and fast",
			correct:   10,
			total:     10,
			times:     msTimes(5, 10),
			wantScore: 170,
			wantLabel: LabelSuperior,
		},
		{
			name:      "all wrong and slow clamps to floor",
			correct:   0,
			total:     10,
			times:     msTimes(600, 10),
			wantScore: 70,
			wantLabel: LabelBelowAverage,
		},
		{
			name:      "perfect but very slow",
			correct:   10,
			total:     10,
			times:     msTimes(400, 10),
			wantScore: 70,
			wantLabel: LabelBelowAverage,
		},
		{
			name:      "half right at moderate pace",
			correct:   5,
			total:     10,
			times:     msTimes(45, 10),
			wantScore: 135, // 170 - 10 - 25
			wantLabel: LabelSuperior,
		},
		{
			name:      "no questions at all",
			correct:   0,
			total:     0,
			times:     nil,
			wantScore: 120, // accuracy 0 -> penalty 50, no time penalty
			wantLabel: LabelAboveAverage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCognitive(tt.correct, tt.total, tt.times)
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestScoreCognitiveUnansweredExcludedFromTimeAverage(t *testing.T) {
	// 4 of 10 answered, all correct, 10s each. Unanswered questions drag
	// accuracy down but must not drag the time average toward zero.
	got := ScoreCognitive(4, 10, msTimes(10, 4))

	if got.Accuracy != 0.4 {
		t.Errorf("accuracy = %v, want 0.4", got.Accuracy)
	}
	if got.AverageResponseSeconds != 10 {
		t.Errorf("average response seconds = %v, want 10", got.AverageResponseSeconds)
	}
	// 170 - 0 (time) - 30 (accuracy) = 140.
	if got.Score != 140 {
		t.Errorf("score = %d, want 140", got.Score)
	}
}

func TestTimePenaltySteps(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{0, 0},
		{30, 0},
		{30.5, 10},
		{60, 10},
		{61, 40},
		{120, 40},
		{121, 60},
		{180, 60},
		{200, 70},
		{240, 70},
		{250, 80},
		{300, 80},
		{301, 100},
		{1000, 100},
	}

	for _, tt := range tests {
		if got := timePenalty(tt.avg); got != tt.want {
			t.Errorf("timePenalty(%v) = %v, want %v", tt.avg, got, tt.want)
		}
	}
}

func TestScoreCognitiveMonotonicInTime(t *testing.T) {
	averages := []float64{5, 30, 45, 90, 150, 210, 270, 400}
	prev := CognitiveCeiling + 1
	for _, avg := range averages {
		got := ScoreCognitive(8, 10, msTimes(avg, 10))
		if got.Score > prev {
			t.Errorf("score rose from %d to %d as average time grew to %vs", prev, got.Score, avg)
		}
		prev = got.Score
	}
}

func TestScoreCognitiveMonotonicInAccuracy(t *testing.T) {
	prev := CognitiveFloor - 1
	for correct := 0; correct <= 10; correct++ {
		got := ScoreCognitive(correct, 10, msTimes(20, 10))
		if got.Score < prev {
			t.Errorf("score fell from %d to %d as correct count grew to %d", prev, got.Score, correct)
		}
		prev = got.Score
	}
}

func TestScoreCognitiveDeterministic(t *testing.T) {
	a := ScoreCognitive(7, 10, msTimes(42, 7))
	b := ScoreCognitive(7, 10, msTimes(42, 7))
	if a != b {
		t.Errorf("identical inputs scored differently: %+v vs %+v", a, b)
	}
}

func TestCognitiveLabelCutoffs(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{70, LabelBelowAverage},
		{89, LabelBelowAverage},
		{90, LabelAverage},
		{109, LabelAverage},
		{110, LabelAboveAverage},
		{129, LabelAboveAverage},
		{130, LabelSuperior},
		{170, LabelSuperior},
	}

	for _, tt := range tests {
		if got := CognitiveLabel(tt.score); got != tt.want {
			t.Errorf("CognitiveLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
