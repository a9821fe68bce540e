package llm

import "context"

// requestDefaults are per-purpose fallbacks applied when the caller
// leaves MaxTokens or Temperature unset.
type requestDefaults struct {
	MaxTokens   int
	Temperature float64
}

// purposeDefaults tunes generation per call site. Insight reflections
// are short prose and read better with a little warmth; anything
// unrecognized gets a conservative cap at deterministic temperature.
var purposeDefaults = map[string]requestDefaults{
	"insight": {MaxTokens: 1024, Temperature: 0.4},
}

var genericDefaults = requestDefaults{MaxTokens: 512, Temperature: 0}

// DefaultsProvider is a decorator that fills unset request fields from
// the purpose-specific defaults before the request is logged and sent.
type DefaultsProvider struct {
	inner Provider
}

// WithDefaults wraps a Provider with purpose-aware request defaults.
func WithDefaults(p Provider) Provider {
	return &DefaultsProvider{inner: p}
}

func (d *DefaultsProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	def, ok := purposeDefaults[PurposeFrom(ctx)]
	if !ok {
		def = genericDefaults
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = def.MaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = def.Temperature
	}
	return d.inner.Generate(ctx, req)
}

func (d *DefaultsProvider) ModelID() string {
	return d.inner.ModelID()
}
