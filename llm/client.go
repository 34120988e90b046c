package llm

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// CompletionRequest carries one chat-completion call. Timeout bounds the
// whole upstream round trip; there is no retry.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int32
	Temperature float32
	Timeout     time.Duration
}

// Completer is what the handlers depend on; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Gemini is the production Completer backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    zerolog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string, log zerolog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, cause: err}
	}
	return &Gemini{client: client, model: model, log: log}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	m := g.client.GenerativeModel(g.model)
	m.SetMaxOutputTokens(req.MaxTokens)
	m.SetTemperature(req.Temperature)
	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		kind := classify(err)
		g.log.Error().Err(err).Int("kind", int(kind)).Dur("elapsed", time.Since(start)).Msg("gemini generate failed")
		return "", &Error{Kind: kind, cause: err}
	}

	var b strings.Builder
	if resp != nil {
		for _, c := range resp.Candidates {
			if c == nil || c.Content == nil {
				continue
			}
			for _, p := range c.Content.Parts {
				if t, ok := p.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &Error{Kind: KindEmpty}
	}
	g.log.Debug().Dur("elapsed", time.Since(start)).Int("chars", len(text)).Msg("gemini generate ok")
	return text, nil
}
