package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"docsight/internal/poll"
)

const (
	pollInterval    = 1 * time.Second
	maxPollAttempts = 15
)

// Extractor drives the asynchronous OCR workflow end to end: decode the
// client-supplied image, submit it, poll the resulting job, and join the
// recognized lines into a single block of text.
//
// Every failure mode (decode error, submit error, failed job, timeout)
// degrades to "no text extracted". Extract never returns an error because an
// unreadable image must not abort the chat turn it belongs to.
type Extractor struct {
	client  ReadClient
	sleeper poll.Sleeper
}

func NewExtractor(client ReadClient) *Extractor {
	return &Extractor{client: client, sleeper: poll.ClockSleeper{}}
}

// NewExtractorWithSleeper is used by tests to run the polling loop without
// real delays.
func NewExtractorWithSleeper(client ReadClient, sleeper poll.Sleeper) *Extractor {
	return &Extractor{client: client, sleeper: sleeper}
}

// Extract returns the text found in a base64-encoded image, or "" when
// nothing could be extracted. The input may be a bare base64 payload or a
// data URI; a data URI is recognized by the first comma separating the scheme
// prefix from the payload.
func (e *Extractor) Extract(ctx context.Context, imageBase64 string) string {
	if !e.client.Configured() {
		slog.Warn("OCR client not configured, skipping extraction")
		return ""
	}

	image, err := decodeImage(imageBase64)
	if err != nil {
		slog.Warn("Could not decode image payload", "error", err)
		return ""
	}

	operationURL, err := e.client.Submit(ctx, image)
	if err != nil {
		slog.Warn("OCR submit failed", "error", err)
		return ""
	}

	lines, ok := e.awaitResult(ctx, operationURL)
	if !ok {
		return ""
	}

	text := strings.Join(lines, "\n")
	if text == "" {
		slog.Info("OCR completed but detected no text")
		return ""
	}
	slog.Info("OCR extraction succeeded", "chars", len(text))
	return text
}

// awaitResult polls the job until it settles or attempts run out. Transport
// errors during a poll consume an attempt but do not stop the loop; a job
// that reports failed stops it immediately.
func (e *Extractor) awaitResult(ctx context.Context, operationURL string) ([]string, bool) {
	var lines []string
	succeeded := false

	err := poll.Until(ctx, e.sleeper, pollInterval, maxPollAttempts, func(ctx context.Context) (bool, error) {
		result, pollErr := e.client.Poll(ctx, operationURL)
		if pollErr != nil {
			slog.Warn("OCR poll attempt failed", "error", pollErr)
			return false, nil
		}
		switch result.Status {
		case StatusSucceeded:
			lines = result.Lines
			succeeded = true
			return true, nil
		case StatusFailed:
			slog.Warn("OCR job reported failure")
			return true, nil
		default:
			return false, nil
		}
	})
	if err != nil {
		if errors.Is(err, poll.ErrAttemptsExhausted) {
			slog.Warn("OCR timed out", "attempts", maxPollAttempts)
		} else {
			slog.Warn("OCR polling aborted", "error", err)
		}
		return nil, false
	}
	return lines, succeeded
}

// decodeImage accepts either a raw base64 payload or a data URI of the form
// "data:image/png;base64,XXXX". Splitting on the first comma is the
// disambiguation rule.
func decodeImage(imageBase64 string) ([]byte, error) {
	payload := imageBase64
	if idx := strings.Index(imageBase64, ","); idx >= 0 {
		payload = imageBase64[idx+1:]
	}
	return base64.StdEncoding.DecodeString(payload)
}
