package scoring

import (
	"testing"

	"github.com/abhisek/iqorum/internal/bank"
)

func repeat(v bank.Axis, n int) []bank.Axis {
	out := make([]bank.Axis, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestScorePoliticalExtremes(t *testing.T) {
	tests := []struct {
		name      string
		values    []bank.Axis
		wantX     float64
		wantY     float64
		wantLabel string
	}{
		{
			name:      "all right and authoritarian",
			values:    append(repeat(bank.AxisRight, 5), repeat(bank.AxisAuthoritarian, 5)...),
			wantX:     75, // five right answers: 50 + 5*5
			wantY:     75,
			wantLabel: LabelCentrist, // 75 is on the boundary, not past it
		},
		{
			name:      "ten right ten authoritarian",
			values:    append(repeat(bank.AxisRight, 10), repeat(bank.AxisAuthoritarian, 10)...),
			wantX:     100,
			wantY:     100,
			wantLabel: LabelAuthoritarianRight,
		},
		{
			name:      "ten left ten libertarian",
			values:    append(repeat(bank.AxisLeft, 10), repeat(bank.AxisLibertarian, 10)...),
			wantX:     0,
			wantY:     0,
			wantLabel: LabelLibertarianLeft,
		},
		{
			name:      "empty answer set",
			values:    nil,
			wantX:     50,
			wantY:     50,
			wantLabel: LabelCentrist,
		},
		{
			name:      "all neutral",
			values:    repeat(bank.AxisNeutral, 10),
			wantX:     50,
			wantY:     50,
			wantLabel: LabelCentrist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScorePolitical(tt.values)
			if got.EconomicAxis != tt.wantX {
				t.Errorf("economic axis = %v, want %v", got.EconomicAxis, tt.wantX)
			}
			if got.SocialAxis != tt.wantY {
				t.Errorf("social axis = %v, want %v", got.SocialAxis, tt.wantY)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Description == "" {
				t.Error("missing description")
			}
		})
	}
}

func TestScorePoliticalClampsBeyondRange(t *testing.T) {
	got := ScorePolitical(repeat(bank.AxisLeft, 15))
	if got.EconomicAxis != 0 {
		t.Errorf("economic axis = %v, want clamp to 0", got.EconomicAxis)
	}

	got = ScorePolitical(repeat(bank.AxisAuthoritarian, 15))
	if got.SocialAxis != 100 {
		t.Errorf("social axis = %v, want clamp to 100", got.SocialAxis)
	}
}

func TestPoliticalLabelBands(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{10, 10, LabelLibertarianLeft},
		{10, 90, LabelAuthoritarianLeft},
		{90, 10, LabelLibertarianRight},
		{90, 90, LabelAuthoritarianRight},
		{30, 50, LabelLeftLeaning},
		{70, 50, LabelRightLeaning},
		{50, 30, LabelLibertarian},
		{50, 70, LabelAuthoritarian},
		{50, 50, LabelCentrist},

		// Exact thresholds resolve toward the less extreme label.
		{25, 25, LabelLeftLeaning}, // not a corner: 25 is inclusive to the milder side
		{40, 50, LabelCentrist},
		{60, 50, LabelCentrist},
		{50, 40, LabelCentrist},
		{50, 60, LabelCentrist},
		{75, 75, LabelRightLeaning}, // not the authoritarian right corner

		// One axis extreme, the other centered: leaning, not corner.
		{0, 50, LabelLeftLeaning},
		{100, 50, LabelRightLeaning},
		{50, 0, LabelLibertarian},
		{50, 100, LabelAuthoritarian},
	}

	for _, tt := range tests {
		got := politicalLabel(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("politicalLabel(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}
