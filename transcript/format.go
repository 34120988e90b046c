package transcript

import (
	"regexp"
	"strings"

	"ralph-ai/backend/models"
)

// DefaultMaxMessages bounds the transcript so prompts stay inside the model's
// context budget.
const DefaultMaxMessages = 15

// headRetention is how many opening messages survive trimming; they carry the
// profile-selection context the rest of the conversation builds on.
const headRetention = 5

// onboardingPlaceholder is the canned widget greeting; it adds nothing to the
// analysis and is dropped.
const onboardingPlaceholder = "To start, please tell me"

var htmlTag = regexp.MustCompile(`<.*?>`)

// Format renders a chat history into the plain-text transcript embedded in
// prompts. Histories longer than maxMessages keep the first 5 and the most
// recent maxMessages-5 entries, with a note that trimming happened. It always
// returns a printable transcript, even for an empty history.
func Format(history []models.ChatMessage, userName, profile string, maxMessages int) string {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	var b strings.Builder
	b.WriteString("Real Estate Business Analysis for " + userName + "\n")
	b.WriteString("Profile: " + title(profile) + "\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	limited := history
	if len(history) > maxMessages {
		head := headRetention
		if head > maxMessages {
			head = maxMessages
		}
		keepTail := maxMessages - head
		limited = make([]models.ChatMessage, 0, maxMessages)
		limited = append(limited, history[:head]...)
		limited = append(limited, history[len(history)-keepTail:]...)
		b.WriteString("Note: Conversation history was trimmed to focus on key interactions.\n\n")
	}

	for _, msg := range limited {
		content := strings.TrimSpace(htmlTag.ReplaceAllString(msg.Content, ""))
		if content == "" || strings.Contains(content, onboardingPlaceholder) {
			continue
		}
		switch msg.Sender {
		case "bot":
			b.WriteString("Ralph (AI): " + content + "\n\n")
		case "user":
			b.WriteString(userName + ": " + content + "\n\n")
		default:
			continue
		}
		b.WriteString(strings.Repeat("-", 30) + "\n\n")
	}

	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
