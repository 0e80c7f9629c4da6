package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LedioKoci/backend-vercel/internal/config"
	"github.com/LedioKoci/backend-vercel/internal/engine"
	"github.com/LedioKoci/backend-vercel/internal/extract"
	processaudiomodels "github.com/LedioKoci/backend-vercel/internal/models/process_audio"
)

const singleCallPrompt = `Listen to this audio recording. Respond with only a JSON object containing exactly two keys: "transcript" (a complete transcription of the audio) and "summary" (a concise summary of its content). Do not include any other text.`

const transcribePrompt = `Transcribe this audio recording. Respond with only the transcript text.`

const summaryPromptPrefix = `Summarize the following transcript in a few concise sentences. Respond with only the summary text.

Transcript:
`

// AudioHandler turns one uploaded audio file into a transcript and a summary
type AudioHandler struct {
	engine engine.Engine
	cfg    *config.Config
	logger *zap.SugaredLogger
}

// NewAudioHandler creates a new AudioHandler instance
func NewAudioHandler(eng engine.Engine, cfg *config.Config, logger *zap.SugaredLogger) *AudioHandler {
	return &AudioHandler{
		engine: eng,
		cfg:    cfg,
		logger: logger,
	}
}

// ProcessAudio handles one multipart audio upload end to end: extract the
// file, resolve its MIME type, run the configured invocation strategy, and
// respond with the normalized result.
func (h *AudioHandler) ProcessAudio(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondTooLarge(c)
			return
		}
		h.respondError(c, http.StatusBadRequest, "Audio file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondTooLarge(c)
			return
		}
		h.logError(c, err, "read uploaded audio failed")
		h.respondError(c, http.StatusInternalServerError, "Failed to read audio file")
		return
	}

	mimeType, ok := resolveMIMEType(header.Filename)
	if !ok {
		h.respondError(c, http.StatusBadRequest, "Unsupported audio format. Supported formats: mp3, wav, m4a, aac, ogg, flac")
		return
	}

	// Fail fast on a missing credential instead of surfacing an opaque
	// provider error after the upload was already accepted.
	if h.cfg.APIKey() == "" {
		h.logError(c, errors.New("missing API key"), "provider credential not configured", "provider", h.cfg.Provider)
		h.respondError(c, http.StatusInternalServerError, "Server configuration error: AI API key is not set")
		return
	}

	audio := &engine.Audio{
		Filename: header.Filename,
		MIMEType: mimeType,
		Data:     data,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.GenerateTimeout)
	defer cancel()

	var result *extract.Result
	switch h.cfg.Strategy {
	case config.StrategyTwoCall:
		result, err = h.runTwoCall(ctx, audio)
	default:
		result, err = h.runSingleCall(ctx, audio)
	}
	if err != nil {
		h.logError(c, err, "process audio failed",
			"strategy", h.cfg.Strategy,
			"filename", header.Filename,
			"size_bytes", len(data),
		)
		status, msg := classifyError(err)
		h.respondError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, processaudiomodels.ProcessAudioResponse{
		Transcript: result.Transcript,
		Summary:    result.Summary,
		Success:    true,
	})
}

// runSingleCall asks the model for one JSON object holding both fields and
// normalizes whatever text comes back.
func (h *AudioHandler) runSingleCall(ctx context.Context, audio *engine.Audio) (*extract.Result, error) {
	text, err := h.engine.Generate(ctx, singleCallPrompt, audio)
	if err != nil {
		return nil, err
	}
	return extract.Parse(text)
}

// runTwoCall transcribes first and summarizes the transcript text in a second
// sequential call. A summary failure fails the whole request; a transcript
// without a summary is not a valid result.
func (h *AudioHandler) runTwoCall(ctx context.Context, audio *engine.Audio) (*extract.Result, error) {
	transcript, err := h.engine.Generate(ctx, transcribePrompt, audio)
	if err != nil {
		return nil, err
	}
	if transcript == "" {
		return nil, extract.ErrEmptyResponse
	}

	summary, err := h.engine.Generate(ctx, summaryPromptPrefix+transcript, nil)
	if err != nil {
		return nil, err
	}
	if summary == "" {
		summary = extract.NoSummary
	}

	return &extract.Result{Transcript: transcript, Summary: summary}, nil
}

// respondTooLarge reports the configured body limit back to the caller.
func (h *AudioHandler) respondTooLarge(c *gin.Context) {
	h.respondError(c, http.StatusBadRequest, fmt.Sprintf("Audio file is too large. Maximum size is %dMB.", h.cfg.MaxUploadBytes>>20))
}

// respondError writes the JSON error envelope unless a response was already
// written. Guards against a double send on error paths after partial output.
func (h *AudioHandler) respondError(c *gin.Context, status int, msg string) {
	if c.Writer.Written() {
		return
	}
	c.JSON(status, processaudiomodels.ErrorResponse{Error: msg, Success: false})
}

// classifyError maps pipeline failures onto the documented HTTP statuses.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "The AI request timed out. Please try again."
	case errors.Is(err, extract.ErrEmptyResponse):
		return http.StatusInternalServerError, "AI model returned an empty response"
	case errors.Is(err, extract.ErrNoJSON):
		return http.StatusInternalServerError, "Invalid AI response format"
	case errors.Is(err, extract.ErrMissingFields):
		return http.StatusInternalServerError, "AI response is missing required fields"
	default:
		return http.StatusInternalServerError, "Failed to process audio"
	}
}
