package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Placeholder values applied when the model answers with only one of the two
// expected fields.
const (
	NoTranscript = "No transcript available"
	NoSummary    = "No summary available"
)

var (
	// ErrEmptyResponse means the model returned no text at all.
	ErrEmptyResponse = errors.New("model returned an empty response")
	// ErrNoJSON means no parseable JSON object could be found in the text.
	ErrNoJSON = errors.New("invalid AI response format")
	// ErrMissingFields means the JSON parsed but carried neither field.
	ErrMissingFields = errors.New("AI response is missing both transcript and summary")
)

// Result is the normalized output of one model call.
type Result struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

var (
	fencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")
	bracePattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// Parse pulls a {transcript, summary} object out of raw model text. Models
// routinely wrap their JSON in markdown fences or surround it with prose, so
// parsing falls through an ordered chain: strip fences and parse directly,
// then parse the widest {...} span, then give up with ErrNoJSON.
func Parse(raw string) (*Result, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	var res Result
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		span := bracePattern.FindString(text)
		if span == "" {
			return nil, ErrNoJSON
		}
		if err := json.Unmarshal([]byte(span), &res); err != nil {
			return nil, ErrNoJSON
		}
	}

	res.Transcript = strings.TrimSpace(res.Transcript)
	res.Summary = strings.TrimSpace(res.Summary)

	if res.Transcript == "" && res.Summary == "" {
		return nil, ErrMissingFields
	}
	if res.Transcript == "" {
		res.Transcript = NoTranscript
	}
	if res.Summary == "" {
		res.Summary = NoSummary
	}

	return &res, nil
}
