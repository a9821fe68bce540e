package bank

import (
	"errors"
	"strings"
	"testing"
)

const validFeed = `[
  {"id": 1, "type": "political", "text": "Taxes?",
   "options": [{"text": "More", "value": "left"}, {"text": "Less", "value": "right"}]},
  {"id": 1, "type": "cognitive", "text": "2+2?",
   "options": ["3", "4", "5"], "correctAnswer": "4"}
]`

func TestParseValidFeed(t *testing.T) {
	qs, err := Parse([]byte(validFeed))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}

	pol := qs[0]
	if pol.Type != Political {
		t.Errorf("type = %q, want political", pol.Type)
	}
	if axis, ok := pol.AxisOf("More"); !ok || axis != AxisLeft {
		t.Errorf("AxisOf(More) = %q, %v", axis, ok)
	}

	cog := qs[1]
	if cog.Type != Cognitive {
		t.Errorf("type = %q, want cognitive", cog.Type)
	}
	if cog.CorrectAnswer != "4" {
		t.Errorf("correct answer = %q, want 4", cog.CorrectAnswer)
	}
	if !cog.HasOption("3") || cog.HasOption("6") {
		t.Error("HasOption mismatch")
	}
}

func TestParseRejectsMalformedFeeds(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{"empty input", ``},
		{"not JSON", `{{{`},
		{"empty array", `[]`},
		{"missing text", `[{"id": 1, "type": "political", "options": [{"text": "a", "value": "left"}, {"text": "b", "value": "right"}]}]`},
		{"one option", `[{"id": 1, "type": "cognitive", "text": "q", "options": ["a"], "correctAnswer": "a"}]`},
		{"unknown axis", `[{"id": 1, "type": "political", "text": "q", "options": [{"text": "a", "value": "up"}, {"text": "b", "value": "left"}]}]`},
		{"unknown type", `[{"id": 1, "type": "trivia", "text": "q", "options": ["a", "b"]}]`},
		{"no correct answer", `[{"id": 1, "type": "cognitive", "text": "q", "options": ["a", "b"]}]`},
		{"correct answer not an option", `[{"id": 1, "type": "cognitive", "text": "q", "options": ["a", "b"], "correctAnswer": "c"}]`},
		{"duplicate id", `[
			{"id": 1, "type": "cognitive", "text": "q1", "options": ["a", "b"], "correctAnswer": "a"},
			{"id": 1, "type": "cognitive", "text": "q2", "options": ["a", "b"], "correctAnswer": "b"}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.feed))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrDataUnavailable) {
				t.Errorf("error %v is not ErrDataUnavailable", err)
			}
		})
	}
}

func TestParseAllowsSameIDAcrossTypes(t *testing.T) {
	if _, err := Parse([]byte(validFeed)); err != nil {
		t.Errorf("same id across types should be valid: %v", err)
	}
}

func TestLoadReader(t *testing.T) {
	qs, err := Load(strings.NewReader(validFeed))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("got %d questions, want 2", len(qs))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("missing file error %v is not ErrDataUnavailable", err)
	}
}

func TestOfType(t *testing.T) {
	qs, err := Parse([]byte(validFeed))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	pol := OfType(qs, Political)
	if len(pol) != 1 || pol[0].Type != Political {
		t.Errorf("OfType(political) = %+v", pol)
	}
	cog := OfType(qs, Cognitive)
	if len(cog) != 1 || cog[0].Type != Cognitive {
		t.Errorf("OfType(cognitive) = %+v", cog)
	}
}

func TestBuiltinSet(t *testing.T) {
	qs, err := Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	pol := OfType(qs, Political)
	if len(pol) != 10 {
		t.Errorf("builtin political questions = %d, want 10", len(pol))
	}
	cog := OfType(qs, Cognitive)
	if len(cog) < 10 {
		t.Errorf("builtin cognitive questions = %d, want at least 10", len(cog))
	}
}
