package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.
//
// Only ErrValidation and ErrConfiguration ever cross the service boundary:
// every backing-service failure (OCR, knowledge search, completion) is absorbed
// inside the pipeline and reported through response flags instead of an error.

var (
	// ErrValidation signifies that input data provided by a client failed
	// validation (missing message, malformed history entry, unknown role).
	// This is mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConfiguration signifies that required backing-service credentials or
	// endpoints are absent, so the request cannot be processed at all.
	// This is mapped to a 500 Internal Server Error HTTP status.
	ErrConfiguration = errors.New("service not configured")
)
