package engine

import "context"

// Audio is one uploaded audio payload handed to a model call.
type Audio struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Engine is the narrow surface onto a generative model: one prompt, an
// optional inline audio part, one text completion back.
type Engine interface {
	Generate(ctx context.Context, prompt string, audio *Audio) (string, error)
}
