package report

import (
	"regexp"
	"strings"
)

// Section is one labeled block of the analysis narrative, in canonical title
// form regardless of how the model decorated its heading.
type Section struct {
	Title string
	Body  string
}

// IntroductionTitle holds any narrative text the model emits before its first
// recognized heading. Keeping it was a deliberate choice over silently
// dropping preambles.
const IntroductionTitle = "INTRODUCTION"

// FallbackTitle is used when no heading at all is recognized and the whole
// narrative becomes a single section.
const FallbackTitle = "BUSINESS ANALYSIS"

// canonicalSections defines both the heading patterns and the order sections
// are rendered in, independent of the order they appeared in the narrative.
// Each pattern accepts the numbered ("1. EXECUTIVE SUMMARY") and bare forms.
var canonicalSections = []struct {
	Title   string
	pattern *regexp.Regexp
}{
	{"EXECUTIVE SUMMARY", heading(`EXECUTIVE\s+SUMMARY`)},
	{"BUSINESS STRENGTHS", heading(`BUSINESS\s+STRENGTHS`)},
	{"AREAS FOR IMPROVEMENT", heading(`AREAS\s+FOR\s+IMPROVEMENT`)},
	{"ACTIONABLE RECOMMENDATIONS", heading(`ACTIONABLE\s+RECOMMENDATIONS`)},
	{"AUTOMATION OPPORTUNITIES", heading(`AUTOMATION\s+OPPORTUNITIES`)},
	{"POTENTIAL ROI", heading(`POTENTIAL\s+ROI`)},
}

func heading(words string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?` + words)
}

// markdown decoration the model sometimes wraps headings in ("## **1. ...**").
var headingDecoration = regexp.MustCompile("^[#*_`\\s]+")

// ParseSections splits a narrative into canonical sections. The model's
// output is untrusted text: if nothing matches, the whole narrative comes
// back as a single fallback section. The second return value lists canonical
// sections the narrative did not contain, for logging.
func ParseSections(narrative string) ([]Section, []string) {
	bodies := map[string][]string{}
	var preamble []string
	current := ""

	for _, line := range strings.Split(narrative, "\n") {
		probe := headingDecoration.ReplaceAllString(line, "")
		matched := ""
		for _, cs := range canonicalSections {
			if cs.pattern.MatchString(probe) {
				matched = cs.Title
				break
			}
		}
		if matched != "" {
			current = matched
			if _, ok := bodies[current]; !ok {
				bodies[current] = nil
			}
			continue
		}
		if current == "" {
			preamble = append(preamble, line)
		} else {
			bodies[current] = append(bodies[current], line)
		}
	}

	if len(bodies) == 0 {
		return []Section{{Title: FallbackTitle, Body: strings.TrimSpace(narrative)}}, nil
	}

	var sections []Section
	if intro := strings.TrimSpace(strings.Join(preamble, "\n")); intro != "" {
		sections = append(sections, Section{Title: IntroductionTitle, Body: intro})
	}
	var missing []string
	for _, cs := range canonicalSections {
		lines, ok := bodies[cs.Title]
		if !ok {
			missing = append(missing, cs.Title)
			continue
		}
		sections = append(sections, Section{Title: cs.Title, Body: strings.TrimSpace(strings.Join(lines, "\n"))})
	}
	return sections, missing
}
