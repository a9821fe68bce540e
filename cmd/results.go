package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print stored assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		profile, err := st.ProfileRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		if profile.Empty() {
			fmt.Println("No results yet. Run iqorum and take an assessment.")
			return nil
		}

		if profile.Political != nil {
			fmt.Println("Political Compass")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  Label:     %s\n", profile.Political.Label)
			fmt.Printf("  Economic:  %.0f / 100 (left → right)\n", profile.Political.EconomicAxis)
			fmt.Printf("  Social:    %.0f / 100 (lib → auth)\n", profile.Political.SocialAxis)
			if profile.PoliticalCompletedAt != nil {
				fmt.Printf("  Completed: %s\n", profile.PoliticalCompletedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println()
		}

		if profile.Cognitive != nil {
			fmt.Println("IQ Test")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  Score:     %d (%s)\n", profile.Cognitive.Score, profile.Cognitive.Label)
			fmt.Printf("  Accuracy:  %.0f%%\n", profile.Cognitive.Accuracy*100)
			fmt.Printf("  Avg time:  %.1fs per question\n", profile.Cognitive.AverageResponseSeconds)
			if profile.CognitiveCompletedAt != nil {
				fmt.Printf("  Completed: %s\n", profile.CognitiveCompletedAt.Local().Format("2006-01-02 15:04"))
			}
			fmt.Println()
		}

		for _, assessment := range []bank.Assessment{bank.Political, bank.Cognitive} {
			attempts, err := st.AttemptRepo().CompletedAttempts(ctx, string(assessment), limit)
			if err != nil {
				return fmt.Errorf("query attempts: %w", err)
			}
			if len(attempts) == 0 {
				continue
			}

			fmt.Printf("Recent %s attempts\n", assessment.DisplayName())
			fmt.Println(strings.Repeat("─", 48))
			for _, a := range attempts {
				line := fmt.Sprintf("  %s  %s",
					a.Timestamp.Local().Format("Jan 02 15:04"), a.ResultLabel)
				if a.Score > 0 {
					line += fmt.Sprintf(" (%d)", a.Score)
				}
				fmt.Println(line)
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	resultsCmd.Flags().Int("limit", 5, "Number of recent attempts to show per assessment")
}
