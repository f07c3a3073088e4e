package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNoVideoID is returned when no video argument was supplied.
// Its message is part of the output contract, so keep it stable.
var ErrNoVideoID = errors.New("No video ID provided")

// TranscriptsDisabledError indicates the video exists but has captions
// turned off entirely.
type TranscriptsDisabledError struct {
	VideoID string
}

func (e *TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("Transcripts are disabled for video %s", e.VideoID)
}

// NoTranscriptError indicates no caption track could be selected for the video.
type NoTranscriptError struct {
	VideoID string
}

func (e *NoTranscriptError) Error() string {
	return fmt.Sprintf("No transcript found for video %s", e.VideoID)
}

// errorPayload is the JSON shape every failure reduces to.
type errorPayload struct {
	Error string `json:"error"`
}

// WriteError serializes err as {"error": <message>} followed by a newline.
// Every failure path funnels through here so stdout always carries valid JSON.
func WriteError(w io.Writer, err error) {
	data, marshalErr := json.Marshal(errorPayload{Error: err.Error()})
	if marshalErr != nil {
		// Marshaling a plain string cannot realistically fail, but the
		// contract is "always JSON", so fall back to a quoted literal.
		fmt.Fprintf(w, "{\"error\": %q}\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}
