package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"deadline exceeded", context.DeadlineExceeded, KindTimeout},
		{"wrapped deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), KindTimeout},
		{"googleapi 401", &googleapi.Error{Code: 401}, KindAuth},
		{"googleapi 403", &googleapi.Error{Code: 403}, KindAuth},
		{"googleapi 429", &googleapi.Error{Code: 429}, KindQuota},
		{"googleapi 504", &googleapi.Error{Code: 504}, KindTimeout},
		{"auth string", errors.New("Authentication failed for request"), KindAuth},
		{"api key string", errors.New("API key not valid"), KindAuth},
		{"insufficient quota string", errors.New("insufficient_quota: add billing"), KindQuota},
		{"rate limit string", errors.New("rate limit reached"), KindQuota},
		{"timed out string", errors.New("request timed out"), KindTimeout},
		{"anything else", errors.New("connection reset by peer"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestUserMessagePerKind(t *testing.T) {
	assert.Contains(t, (&Error{Kind: KindAuth}).UserMessage(), "Authentication failed")
	assert.Contains(t, (&Error{Kind: KindQuota}).UserMessage(), "quota exceeded")
	assert.Contains(t, (&Error{Kind: KindTimeout}).UserMessage(), "timed out")
	assert.Contains(t, (&Error{Kind: KindEmpty}).UserMessage(), "Empty response")
	assert.Contains(t, (&Error{Kind: KindUnavailable}).UserMessage(), "configuration missing")
	assert.Contains(t, (&Error{Kind: KindUnknown}).UserMessage(), "unexpected error")
}

func TestUserMessageForPlainError(t *testing.T) {
	msg := UserMessage(errors.New("boom"))
	assert.Contains(t, msg, "unexpected error")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("upstream broke")
	err := &Error{Kind: KindUnknown, cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "upstream broke")
}
