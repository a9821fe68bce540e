// Package insight generates a short AI-written reflection on the stored
// assessment profile. Generation is asynchronous and strictly optional:
// without a configured provider the results screen shows the canned band
// descriptions only.
package insight

import "github.com/abhisek/iqorum/internal/scoring"

// Input carries everything the prompt needs about the profile.
type Input struct {
	Political *scoring.PoliticalResult
	Cognitive *scoring.CognitiveResult

	// Attempt counts per assessment, from the event log.
	PoliticalAttempts int
	CognitiveAttempts int
}

// Insight is the generated reflection.
type Insight struct {
	Summary    string
	Highlights []string
}

// Config holds insight generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for insight generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}
