package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// Kind classifies an upstream failure so callers can pick a user-facing
// message without inspecting provider error strings themselves.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindQuota
	KindTimeout
	KindEmpty
	KindUnavailable
)

type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return "llm: " + e.cause.Error()
	}
	switch e.Kind {
	case KindEmpty:
		return "llm: empty response"
	case KindUnavailable:
		return "llm: client not configured"
	default:
		return "llm: request failed"
	}
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage is safe to embed in a client response; the detailed cause stays
// in the server logs.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindAuth:
		return "Error generating AI analysis: Authentication failed. Please check the API key configuration."
	case KindQuota:
		return "Error generating AI analysis: API quota exceeded or insufficient funds. Please check your account billing."
	case KindTimeout:
		return "Error generating AI analysis: Request timed out. The conversation may be too long or the server is experiencing high load."
	case KindEmpty:
		return "Analysis could not be generated. Empty response received from API."
	case KindUnavailable:
		return "AI analysis could not be performed. AI API configuration missing or failed."
	default:
		return "Error generating AI analysis: An unexpected error occurred."
	}
}

// UserMessage extracts the user-safe message for any adapter error.
func UserMessage(err error) string {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.UserMessage()
	}
	return (&Error{Kind: KindUnknown}).UserMessage()
}

// classify maps a provider error to a Kind. Status codes are checked first;
// the string matching mirrors the message families the provider is known to
// emit and is a fallback only.
func classify(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return KindAuth
		case 429:
			return KindQuota
		case 504:
			return KindTimeout
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "authentication") || strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "api key"):
		return KindAuth
	case strings.Contains(msg, "insufficient_quota") || strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return KindQuota
	case strings.Contains(msg, "timed out") || strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return KindTimeout
	}
	return KindUnknown
}
