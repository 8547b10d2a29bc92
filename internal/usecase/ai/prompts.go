package ai

import (
	"fmt"
	"strings"
	"time"
)

// Summary styles accepted by GenerateSummary
const (
	StyleShorter      = "shorter"
	StyleLonger       = "longer"
	StyleCasual       = "casual"
	StyleProfessional = "professional"
)

// Token budgets per request kind
const (
	SummaryMaxTokens     = 500
	LongSummaryMaxTokens = 800
	ActionsMaxTokens     = 1024
)

var styleInstructions = map[string]string{
	StyleShorter:      "Create a very brief 2-3 bullet point summary.",
	StyleLonger:       "Create a detailed 7-10 bullet point summary with comprehensive details.",
	StyleCasual:       "Create a summary in a casual, conversational tone with 3-5 bullet points.",
	StyleProfessional: "Create a professional 3-5 bullet point summary.",
}

// NormalizeStyle maps unknown styles to professional
func NormalizeStyle(style string) string {
	if _, ok := styleInstructions[style]; ok {
		return style
	}
	return StyleProfessional
}

// SummaryMaxTokensFor returns the completion budget for a style
func SummaryMaxTokensFor(style string) int {
	if NormalizeStyle(style) == StyleLonger {
		return LongSummaryMaxTokens
	}
	return SummaryMaxTokens
}

// BuildSummaryPrompt builds the note-extraction prompt
func BuildSummaryPrompt(transcript, style string) string {
	instruction := styleInstructions[NormalizeStyle(style)]
	return fmt.Sprintf("%s\n\nFocus on key decisions, outcomes, and next steps.\n\nTRANSCRIPT:\n%s\n\nSummary:", instruction, transcript)
}

// BuildActionsPrompt builds the action-extraction prompt with today as the
// reference date for relative time expressions
func BuildActionsPrompt(transcript string, today time.Time) string {
	var sb strings.Builder
	sb.WriteString("You are an AI assistant that extracts action items from meeting transcripts.\n\n")
	sb.WriteString("Analyze the following meeting transcript and extract ALL action items. Look for:\n")
	sb.WriteString("- \"I'll...\" statements\n")
	sb.WriteString("- \"Let's...\" statements\n")
	sb.WriteString("- \"We should...\" statements\n")
	sb.WriteString("- \"@mentions\" or names followed by tasks\n")
	sb.WriteString("- Explicit commitments or tasks\n\n")
	sb.WriteString("For each action item, extract:\n")
	sb.WriteString("1. The action text (what needs to be done)\n")
	sb.WriteString("2. The assignee (who should do it - if not mentioned, use \"Unassigned\")\n")
	sb.WriteString("3. The due date (IMPORTANT: Parse time references like \"tomorrow\", \"next 2 hours\", \"by end of day\", \"Friday\" into actual dates. ")
	sb.WriteString("Use today's date as reference: ")
	sb.WriteString(today.Format("2006-01-02"))
	sb.WriteString(". If no time mentioned, use null)\n")
	sb.WriteString("4. The speaker (who said it)\n\n")
	sb.WriteString("Return ONLY valid JSON array with this format:\n")
	sb.WriteString("[\n  {\n")
	sb.WriteString("    \"action_text\": \"Fix the bug in login page\",\n")
	sb.WriteString("    \"assignee\": \"John\",\n")
	sb.WriteString("    \"due_date\": \"2025-10-25\",\n")
	sb.WriteString("    \"speaker\": \"Speaker 1\"\n")
	sb.WriteString("  }\n]\n\n")
	sb.WriteString("TRANSCRIPT:\n")
	sb.WriteString(transcript)
	sb.WriteString("\n\nExtract actions and parse all time references into YYYY-MM-DD format:")
	return sb.String()
}

// BuildTemplatePrompt asks for a JSON object keyed by the template's section ids
func BuildTemplatePrompt(transcript string, sectionIDs []string) string {
	keys := make([]string, len(sectionIDs))
	for i, id := range sectionIDs {
		keys[i] = fmt.Sprintf("%q:\"\"", id)
	}
	return fmt.Sprintf(
		"Extract all relevant details from this transcript and fill in these sections: - %s\n\nTRANSCRIPT:\n%s\n\nReturn ONLY JSON with these keys filled in (leave empty if not applicable): {%s}",
		strings.Join(sectionIDs, "\n- "),
		transcript,
		strings.Join(keys, ","),
	)
}

// BuildShortSummaryPrompt asks for a two to three sentence summary
func BuildShortSummaryPrompt(transcript, templateType string) string {
	return fmt.Sprintf("Create a concise %s summary (2-3 sentences) of this meeting transcript:\n\n%s", templateType, transcript)
}
