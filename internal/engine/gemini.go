package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// GeminiEngine calls the Gemini API with the audio passed as an inline blob,
// so a single request can carry both the instruction and the recording.
//
// The client is built lazily on first use: genai.NewClient rejects an empty
// API key, and the server must still boot without one so the handler can
// report the missing credential as a per-request configuration error.
type GeminiEngine struct {
	apiKey string
	model  string

	initOnce sync.Once
	client   *genai.Client
	initErr  error
}

// NewGemini builds a Gemini-backed engine. The API key may be empty; the
// handler checks the credential before any call is made.
func NewGemini(apiKey, model string) *GeminiEngine {
	return &GeminiEngine{apiKey: apiKey, model: model}
}

func (e *GeminiEngine) init(ctx context.Context) (*genai.Client, error) {
	e.initOnce.Do(func() {
		e.client, e.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  e.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return e.client, e.initErr
}

func (e *GeminiEngine) Generate(ctx context.Context, prompt string, audio *Audio) (string, error) {
	client, err := e.init(ctx)
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if audio != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: audio.MIMEType,
				Data:     audio.Data,
			},
		})
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
