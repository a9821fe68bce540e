package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/iqorum/internal/app"
	"github.com/abhisek/iqorum/internal/insight"
	"github.com/abhisek/iqorum/internal/llm"
	"github.com/abhisek/iqorum/internal/session"
	"github.com/abhisek/iqorum/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	questions, err := resolveQuestions(cmd)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	events := session.NewDispatcher()
	engine := session.NewController(session.Options{
		Questions: questions,
		Profiles:  st.ProfileRepo(),
		Attempts:  st.AttemptRepo(),
		Events:    events,
	})

	opts := app.Options{
		Engine:       engine,
		EngineEvents: events,
		Profiles:     st.ProfileRepo(),
		Attempts:     st.AttemptRepo(),
		Feedback:     st.FeedbackRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Insight = insight.NewService(provider, insight.DefaultConfig())
	}

	return app.Run(opts)
}
