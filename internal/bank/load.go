package bank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrDataUnavailable indicates the question feed could not be used:
// missing, empty, malformed, or failing validation. Callers decide the
// fallback policy (Builtin set or a user-visible error); the bank
// itself never retries.
var ErrDataUnavailable = errors.New("question data unavailable")

// feedQuestion is the wire form of one question record.
type feedQuestion struct {
	ID            int               `json:"id"`
	Type          string            `json:"type"`
	Text          string            `json:"text"`
	Options       []json.RawMessage `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
}

// feedOption is the wire form of a political option.
type feedOption struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledFeedSchema compiles the feed schema once and caches it.
func compiledFeedSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(feedSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal feed schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse feed schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://question-feed.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// Load reads a question feed from r, validates its shape against the
// feed schema and the bank invariants, and returns the typed question
// set. Any failure is reported as ErrDataUnavailable.
func Load(r io.Reader) ([]Question, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read feed: %v", ErrDataUnavailable, err)
	}
	return Parse(raw)
}

// LoadFile reads a question feed from the file at path.
func LoadFile(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

// Parse validates and decodes a raw JSON question feed.
func Parse(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrDataUnavailable, err)
	}

	schema, err := compiledFeedSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: schema validation: %v", ErrDataUnavailable, err)
	}

	var feed []feedQuestion
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %v", ErrDataUnavailable, err)
	}

	questions := make([]Question, 0, len(feed))
	for _, fq := range feed {
		q, err := fq.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		questions = append(questions, q)
	}

	if err := Validate(questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return questions, nil
}

// toQuestion converts a wire record to a typed Question.
func (fq feedQuestion) toQuestion() (Question, error) {
	q := Question{
		ID:            fq.ID,
		Type:          Assessment(fq.Type),
		Text:          fq.Text,
		CorrectAnswer: fq.CorrectAnswer,
	}

	for i, rawOpt := range fq.Options {
		switch q.Type {
		case Political:
			var fo feedOption
			if err := json.Unmarshal(rawOpt, &fo); err != nil {
				return Question{}, fmt.Errorf("question %d option %d: expected object: %v", fq.ID, i, err)
			}
			q.Options = append(q.Options, Option{Label: fo.Text, Axis: Axis(fo.Value)})
		case Cognitive:
			var label string
			if err := json.Unmarshal(rawOpt, &label); err != nil {
				return Question{}, fmt.Errorf("question %d option %d: expected string: %v", fq.ID, i, err)
			}
			q.Options = append(q.Options, Option{Label: label, Axis: AxisNeutral})
		default:
			return Question{}, fmt.Errorf("question %d: unknown type %q", fq.ID, fq.Type)
		}
	}

	return q, nil
}
