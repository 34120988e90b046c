package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInfo = ClientInfo{
	Name:         "Ana Silva",
	ProfileTitle: "Real Estate Business Owner",
	Date:         time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
}

func pageCount(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page\n"))
}

func TestRenderPDFProducesDocument(t *testing.T) {
	sections := []Section{
		{Title: "EXECUTIVE SUMMARY", Body: "The business is growing steadily.\n\nRevenue is up."},
		{Title: "ACTIONABLE RECOMMENDATIONS", Body: "- Adopt a CRM\n* Follow up faster\n1. Hire an assistant"},
	}

	out, err := RenderPDF(testInfo, sections)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.GreaterOrEqual(t, pageCount(out), 1)
}

func TestRenderPDFIdempotent(t *testing.T) {
	sections := []Section{
		{Title: "EXECUTIVE SUMMARY", Body: "Same input, same output."},
		{Title: "POTENTIAL ROI", Body: "Deterministic layout."},
	}

	first, err := RenderPDF(testInfo, sections)
	require.NoError(t, err)
	second, err := RenderPDF(testInfo, sections)
	require.NoError(t, err)

	assert.Equal(t, pageCount(first), pageCount(second))
	assert.Equal(t, first, second)
}

func TestRenderPDFPaginatesLongContent(t *testing.T) {
	long := strings.Repeat("This paragraph repeats to force the document onto multiple pages. ", 200)
	out, err := RenderPDF(testInfo, []Section{{Title: "BUSINESS ANALYSIS", Body: long}})
	require.NoError(t, err)
	assert.Greater(t, pageCount(out), 1)
}

func TestRenderPDFSurvivesPathologicalInput(t *testing.T) {
	sections := []Section{
		{Title: "EXECUTIVE SUMMARY", Body: strings.Repeat("x", 20000)},
		{Title: "POTENTIAL ROI", Body: "R&amp;D spend &lt;10%&gt; &quot;estimated&quot;"},
	}
	out, err := RenderPDF(testInfo, sections)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderPDFEmptySections(t *testing.T) {
	out, err := RenderPDF(testInfo, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(out))
}
