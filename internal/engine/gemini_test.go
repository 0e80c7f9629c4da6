package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiBootsWithoutKey(t *testing.T) {
	// genai.NewClient falls back to these when no key is passed explicitly.
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	// Construction must succeed with an empty key; the client is only built
	// on first Generate, so the missing credential surfaces there.
	eng := NewGemini("", "gemini-2.0-flash")
	require.NotNil(t, eng)

	_, err := eng.Generate(context.Background(), "hello", nil)
	assert.Error(t, err)
}
