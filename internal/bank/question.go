package bank

import "fmt"

// Assessment identifies which self-assessment a question belongs to.
type Assessment string

const (
	// Political is the two-axis political orientation survey.
	Political Assessment = "political"
	// Cognitive is the timed cognitive ability test.
	Cognitive Assessment = "cognitive"
)

// Valid reports whether a is a known assessment type.
func (a Assessment) Valid() bool {
	return a == Political || a == Cognitive
}

// DisplayName returns a human-readable name for the assessment.
func (a Assessment) DisplayName() string {
	switch a {
	case Political:
		return "Political Compass"
	case Cognitive:
		return "IQ Test"
	default:
		return string(a)
	}
}

// Axis is the direction a political option pulls on the two scored axes.
type Axis string

const (
	AxisLeft          Axis = "left"
	AxisRight         Axis = "right"
	AxisAuthoritarian Axis = "auth"
	AxisLibertarian   Axis = "lib"
	AxisNeutral       Axis = "neutral"
)

// ValidAxis reports whether v is a known axis value.
func ValidAxis(v Axis) bool {
	switch v {
	case AxisLeft, AxisRight, AxisAuthoritarian, AxisLibertarian, AxisNeutral:
		return true
	}
	return false
}

// Option is a single selectable answer for a question.
// Axis is set for political questions only; cognitive options carry
// just their label and are checked against the question's CorrectAnswer.
type Option struct {
	Label string
	Axis  Axis
}

// Question is one validated question record from the feed.
type Question struct {
	ID      int
	Type    Assessment
	Text    string
	Options []Option

	// CorrectAnswer is the label of the single correct option.
	// Set for cognitive questions only, compared by exact equality.
	CorrectAnswer string
}

// HasOption reports whether label matches one of the question's options.
func (q Question) HasOption(label string) bool {
	for _, o := range q.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// AxisOf returns the axis value of the option with the given label,
// and whether such an option exists.
func (q Question) AxisOf(label string) (Axis, bool) {
	for _, o := range q.Options {
		if o.Label == label {
			return o.Axis, true
		}
	}
	return "", false
}

// OfType returns the questions matching the given assessment, in feed order.
func OfType(questions []Question, t Assessment) []Question {
	var out []Question
	for _, q := range questions {
		if q.Type == t {
			out = append(out, q)
		}
	}
	return out
}

// validate checks the structural invariants of a single question.
func (q Question) validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("question %d: unknown type %q", q.ID, q.Type)
	}
	if q.Text == "" {
		return fmt.Errorf("question %d: empty text", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %d: needs at least 2 options, has %d", q.ID, len(q.Options))
	}

	switch q.Type {
	case Political:
		for _, o := range q.Options {
			if !ValidAxis(o.Axis) {
				return fmt.Errorf("question %d: option %q has unknown axis value %q", q.ID, o.Label, o.Axis)
			}
		}
	case Cognitive:
		if q.CorrectAnswer == "" {
			return fmt.Errorf("question %d: missing correct answer", q.ID)
		}
		matches := 0
		for _, o := range q.Options {
			if o.Label == q.CorrectAnswer {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("question %d: correct answer must match exactly one option, matches %d", q.ID, matches)
		}
	}

	return nil
}

// Validate checks the invariants of a full question set: per-question
// structure plus ID uniqueness within each assessment type.
func Validate(questions []Question) error {
	seen := make(map[Assessment]map[int]bool)
	for _, q := range questions {
		if err := q.validate(); err != nil {
			return err
		}
		if seen[q.Type] == nil {
			seen[q.Type] = make(map[int]bool)
		}
		if seen[q.Type][q.ID] {
			return fmt.Errorf("duplicate %s question id %d", q.Type, q.ID)
		}
		seen[q.Type][q.ID] = true
	}
	return nil
}
