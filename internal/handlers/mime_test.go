package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMIMEType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"recording.mp3", "audio/mpeg"},
		{"recording.wav", "audio/wav"},
		{"recording.m4a", "audio/mp4"},
		{"recording.aac", "audio/aac"},
		{"recording.ogg", "audio/ogg"},
		{"recording.flac", "audio/flac"},
		{"RECORDING.MP3", "audio/mpeg"},
		{"with.dots.in.name.wav", "audio/wav"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, ok := resolveMIMEType(tt.filename)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMIMETypeUnknown(t *testing.T) {
	for _, filename := range []string{"notes.xyz", "notes.txt", "noextension", ""} {
		t.Run(filename, func(t *testing.T) {
			got, ok := resolveMIMEType(filename)
			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}
