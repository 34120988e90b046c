package transcript

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralph-ai/backend/models"
)

func msg(sender, content string) models.ChatMessage {
	return models.ChatMessage{Sender: sender, Content: content}
}

func TestFormatKeepsAllMessagesInOrder(t *testing.T) {
	history := []models.ChatMessage{
		msg("bot", "Hello, how is your business?"),
		msg("user", "Sales are slow this quarter"),
		msg("bot", "What is your main lead source?"),
		msg("user", "Mostly referrals"),
	}

	out := Format(history, "Ana", "owner", 15)

	for _, m := range history {
		assert.Equal(t, 1, strings.Count(out, m.Content), "message should appear exactly once: %q", m.Content)
	}
	assert.Less(t, strings.Index(out, "Sales are slow"), strings.Index(out, "Mostly referrals"))
	assert.NotContains(t, out, "was trimmed")
	assert.Contains(t, out, "Real Estate Business Analysis for Ana")
	assert.Contains(t, out, "Profile: Owner")
	assert.Contains(t, out, "Ralph (AI): Hello, how is your business?")
	assert.Contains(t, out, "Ana: Sales are slow this quarter")
}

func TestFormatTrimsHeadAndTail(t *testing.T) {
	history := make([]models.ChatMessage, 0, 25)
	for i := 0; i < 25; i++ {
		history = append(history, msg("user", fmt.Sprintf("message number %02d", i)))
	}

	out := Format(history, "Ana", "owner", 15)

	require.Contains(t, out, "was trimmed")
	// First 5 survive.
	for i := 0; i < 5; i++ {
		assert.Contains(t, out, fmt.Sprintf("message number %02d", i))
	}
	// Middle is gone.
	for i := 5; i < 15; i++ {
		assert.NotContains(t, out, fmt.Sprintf("message number %02d", i))
	}
	// Last maxMessages-5 = 10 survive.
	for i := 15; i < 25; i++ {
		assert.Contains(t, out, fmt.Sprintf("message number %02d", i))
	}
}

func TestFormatDropsEmptyAndPlaceholderMessages(t *testing.T) {
	history := []models.ChatMessage{
		msg("bot", "To start, please tell me about your role"),
		msg("user", "<p></p>"),
		msg("user", "<b>I run</b> a small agency"),
		msg("other", "ignored sender"),
	}

	out := Format(history, "Ana", "individual", 15)

	assert.NotContains(t, out, "To start, please tell me")
	assert.NotContains(t, out, "ignored sender")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "Ana: I run a small agency")
}

func TestFormatEmptyHistoryStillReturnsHeader(t *testing.T) {
	out := Format(nil, "Ana", "unknown", 15)
	assert.Contains(t, out, "Real Estate Business Analysis for Ana")
	assert.Contains(t, out, "Profile: Unknown")
	assert.Contains(t, out, strings.Repeat("=", 50))
}

func TestFormatDefaultsMaxMessages(t *testing.T) {
	history := make([]models.ChatMessage, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, msg("user", fmt.Sprintf("turn %02d", i)))
	}
	out := Format(history, "Ana", "owner", 0)
	assert.Contains(t, out, "was trimmed")
	assert.NotContains(t, out, "turn 10")
	assert.Contains(t, out, "turn 29")
}
