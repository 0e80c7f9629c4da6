package handlers

import (
	"path/filepath"
	"strings"
)

// audioMIMETypes maps supported audio file extensions to their canonical MIME
// type.
var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
}

// resolveMIMEType maps a filename to the MIME type of its audio format.
// Unknown extensions are rejected rather than defaulted; a guessed MIME type
// makes the model mis-decode the audio.
func resolveMIMEType(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	mimeType, ok := audioMIMETypes[ext]
	return mimeType, ok
}
