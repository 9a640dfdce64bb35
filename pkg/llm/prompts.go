package llm

import "fmt"

// Temperatures per operation: classification wants consistency, synthesis
// wants variety.
const (
	analysisTemperature  = 0.2
	synthesisTemperature = 0.9
	summaryTemperature   = 0.5
)

// Token budgets per operation.
const (
	analysisMaxTokens  = 512
	synthesisMaxTokens = 256
	summaryMaxTokens   = 1024
)

const analysisSchemaInstruction = `
Respond ONLY with a JSON object matching this schema, no prose and no markdown fences:
{
  "sentiment": "Positive" | "Negative" | "Neutral",
  "emotion": "<primary emotion, e.g. Anger, Joy, Frustration>",
  "intensity": <integer 1-10>,
  "topics": ["<1-3 short topic tags>"],
  "actionableInsight": "<a short, strategic recommendation for the brand>"
}`

const synthesisSchemaInstruction = `
Respond ONLY with a JSON object matching this schema, no prose and no markdown fences:
{
  "text": "<the feedback text, 1-2 sentences, first person>",
  "source": "Twitter" | "Review" | "Email" | "Support"
}`

const summarySchemaInstruction = `
Respond ONLY with a JSON object matching this schema, no prose and no markdown fences:
{
  "overview": "<a 2-sentence executive summary of the overall brand sentiment>",
  "topIssues": ["<the top 3 most critical negative issues identified>"],
  "recommendations": ["<3 strategic actions the company should take immediately>"]
}`

// BuildAnalysisPrompt creates the classification prompt shared across all
// providers.
func BuildAnalysisPrompt(text, profileCtx string) string {
	return fmt.Sprintf(`Analyze the following customer feedback for a brand. Be objective and precise.%s

Feedback: %q
%s`, profileCtx, text, analysisSchemaInstruction)
}

// BuildSynthesisPrompt creates the live-feed generation prompt.
func BuildSynthesisPrompt(profileCtx string) string {
	return fmt.Sprintf(`Invent one realistic, short piece of customer feedback as it might appear on a social listening feed. Vary tone and subject; positive, neutral and negative are all acceptable.%s
%s`, profileCtx, synthesisSchemaInstruction)
}

// BuildSummaryPrompt creates the executive-summary prompt.
func BuildSummaryPrompt(feedbackLines, profileCtx string) string {
	return fmt.Sprintf(`You are a Chief Customer Officer. Provide a specific executive summary based on the following feedback logs. Focus on patterns, root causes, and business impact.%s

Feedback Logs:
%s
%s`, profileCtx, feedbackLines, summarySchemaInstruction)
}
