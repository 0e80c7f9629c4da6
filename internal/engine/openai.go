package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIEngine splits the work across two OpenAI endpoints: Whisper for
// transcription and chat completions for everything text-only.
type OpenAIEngine struct {
	client    *openai.Client
	chatModel string
}

// NewOpenAI builds an OpenAI-backed engine using the default API endpoint.
func NewOpenAI(apiKey, chatModel string) *OpenAIEngine {
	return &OpenAIEngine{
		client:    openai.NewClient(apiKey),
		chatModel: chatModel,
	}
}

// Generate transcribes the audio with Whisper when an audio part is present,
// and otherwise answers the prompt with a chat completion. Whisper returns
// plain transcript text, so callers pairing this engine with audio get the
// transcript back directly rather than a JSON object.
func (e *OpenAIEngine) Generate(ctx context.Context, prompt string, audio *Audio) (string, error) {
	if audio != nil {
		resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    openai.Whisper1,
			FilePath: audio.Filename,
			Reader:   bytes.NewReader(audio.Data),
			Prompt:   prompt,
		})
		if err != nil {
			return "", fmt.Errorf("whisper transcription: %w", err)
		}
		return strings.TrimSpace(resp.Text), nil
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.chatModel,
		MaxTokens: 400,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
