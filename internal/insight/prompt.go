package insight

import (
	"fmt"
	"strings"
)

const insightSystemPrompt = `You write brief, thoughtful reflections on self-assessment results. You are careful, non-judgmental, and you never present the results as definitive measurements of a person.`

func buildInsightUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString("Results:\n")
	if input.Political != nil {
		b.WriteString(fmt.Sprintf("- Political orientation: %s (economic axis %.0f/100, social axis %.0f/100)\n",
			input.Political.Label, input.Political.EconomicAxis, input.Political.SocialAxis))
	}
	if input.Cognitive != nil {
		b.WriteString(fmt.Sprintf("- Cognitive test: score %d (%s), accuracy %.0f%%, average %.1fs per question\n",
			input.Cognitive.Score, input.Cognitive.Label,
			input.Cognitive.Accuracy*100, input.Cognitive.AverageResponseSeconds))
	}
	if input.Political == nil && input.Cognitive == nil {
		b.WriteString("None yet\n")
	}

	if input.PoliticalAttempts+input.CognitiveAttempts > 0 {
		b.WriteString(fmt.Sprintf("\nCompleted attempts: %d political, %d cognitive\n",
			input.PoliticalAttempts, input.CognitiveAttempts))
	}

	b.WriteString(`
Instructions:
Write a short reflection on these results:
1. Summarize what the combination of results suggests in 3-5 sentences. Plain, warm language.
2. Note 1-3 brief highlights worth thinking about.
3. Do not overstate precision. These are informal self-assessments, not clinical instruments.
4. Use plain ASCII text only.`)

	return b.String()
}
