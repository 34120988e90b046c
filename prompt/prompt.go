package prompt

import "fmt"

// Mode selects between the short interactive reply and the full report the
// PDF pipeline consumes.
type Mode string

const (
	ModeSummary Mode = "summary"
	ModeReport  Mode = "report"
)

var profileContext = map[string]string{
	"individual": "independent real estate agent",
	"employee":   "real estate company employee",
	"owner":      "real estate business owner",
}

var profileTitle = map[string]string{
	"individual": "Independent Real Estate Agent",
	"employee":   "Real Estate Company Employee",
	"owner":      "Real Estate Business Owner",
}

// ProfileContext maps a profile key to the role description used inside
// prompts. Unknown profiles fall back to a generic label.
func ProfileContext(profile string) string {
	if ctx, ok := profileContext[profile]; ok {
		return ctx
	}
	return "real estate professional"
}

// ProfileTitle is the display form used on the report cover.
func ProfileTitle(profile string) string {
	if t, ok := profileTitle[profile]; ok {
		return t
	}
	return "Real Estate Professional"
}

// System returns the system instruction for the analysis model.
func System(profile string) string {
	return fmt.Sprintf("You are Ralph, an expert AI business analyst for real estate professionals. "+
		"Provide actionable, specific advice based on the conversation data provided by the user (%s).",
		ProfileContext(profile))
}

const reportTemplate = `Based on the conversation with a %s named %s, create a comprehensive business analysis report with the following sections:

1. EXECUTIVE SUMMARY: Brief overview of the business situation and key findings (100-150 words)

2. BUSINESS STRENGTHS: Identify 3-5 key strengths of the business based on the conversation (150-200 words)

3. AREAS FOR IMPROVEMENT: Identify 3-5 specific areas where the business could improve (150-200 words)

4. ACTIONABLE RECOMMENDATIONS: Provide 5-7 specific, actionable recommendations that address the areas for improvement (250-300 words)

5. AUTOMATION OPPORTUNITIES: Suggest 3-5 specific processes that could be automated to improve efficiency (without mentioning specific AI tools by name, but implying how modern technology could help) (150-200 words)

6. POTENTIAL ROI: Explain the potential return on investment from implementing these recommendations, with specific metrics where possible (100-150 words)

Format each section with clear headings. Keep the tone professional yet conversational, as if you're their personal business consultant. The total report should be around 1000 words.

Conversation Data:
%s

Analysis Report:`

const summaryTemplate = `Based on the conversation with a %s named %s, provide a brief business analysis summary covering:
1. Key business strengths identified
2. Main areas for improvement
3. 2-3 actionable recommendations

Keep professional yet conversational. Max 250 words. **This is just a summary.** You can generate the full, detailed PDF report with step-by-step guidance in the next step.

Conversation Data:
%s

Analysis:`

// Build assembles the user prompt for the requested mode. The transcript is
// embedded verbatim; any length limiting already happened in the formatter.
func Build(transcriptText, userName, profile string, mode Mode) string {
	tpl := summaryTemplate
	if mode == ModeReport {
		tpl = reportTemplate
	}
	return fmt.Sprintf(tpl, ProfileContext(profile), userName, transcriptText)
}
