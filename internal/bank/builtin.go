package bank

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/questions.json
var builtinFeed []byte

var (
	builtinOnce sync.Once
	builtinSet  []Question
	builtinErr  error
)

// Builtin returns the embedded default question set. It is the fallback
// when no external feed is configured or an external feed fails to load.
func Builtin() ([]Question, error) {
	builtinOnce.Do(func() {
		builtinSet, builtinErr = Parse(builtinFeed)
		if builtinErr != nil {
			builtinErr = fmt.Errorf("builtin question set: %w", builtinErr)
		}
	})
	return builtinSet, builtinErr
}
