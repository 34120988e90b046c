package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileContextFallback(t *testing.T) {
	assert.Equal(t, "independent real estate agent", ProfileContext("individual"))
	assert.Equal(t, "real estate company employee", ProfileContext("employee"))
	assert.Equal(t, "real estate business owner", ProfileContext("owner"))
	assert.Equal(t, "real estate professional", ProfileContext("unknown"))
	assert.Equal(t, "real estate professional", ProfileContext(""))
}

func TestBuildReportPrompt(t *testing.T) {
	out := Build("THE TRANSCRIPT", "Ana", "owner", ModeReport)

	assert.Contains(t, out, "real estate business owner named Ana")
	assert.Contains(t, out, "1. EXECUTIVE SUMMARY")
	assert.Contains(t, out, "6. POTENTIAL ROI")
	assert.Contains(t, out, "around 1000 words")
	assert.Contains(t, out, "THE TRANSCRIPT")
}

func TestBuildSummaryPrompt(t *testing.T) {
	out := Build("THE TRANSCRIPT", "Ana", "individual", ModeSummary)

	assert.Contains(t, out, "independent real estate agent named Ana")
	assert.Contains(t, out, "Max 250 words")
	assert.Contains(t, out, "This is just a summary")
	assert.Contains(t, out, "THE TRANSCRIPT")
	assert.NotContains(t, out, "EXECUTIVE SUMMARY")
}

func TestSystemMentionsProfile(t *testing.T) {
	out := System("employee")
	assert.Contains(t, out, "You are Ralph")
	assert.Contains(t, out, "real estate company employee")
}
