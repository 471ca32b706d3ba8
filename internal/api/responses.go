package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	app_errors "docsight/internal/errors"
	"docsight/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for failed requests.
// Success is always false here; it lets clients branch on a single field.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ChatTurnResponse is the success payload of the chat endpoint.
type ChatTurnResponse struct {
	Success           bool             `json:"success"`
	Reply             string           `json:"reply"`
	HasImage          bool             `json:"has_image"`
	ExtractedText     *string          `json:"extracted_text"`
	UsedKnowledgeBase bool             `json:"used_knowledge_base"`
	RagLimitExceeded  bool             `json:"rag_limit_exceeded"`
	HistoryUpdated    []model.ChatTurn `json:"history_updated"`
}

// ServiceStatus reports which backing services are configured. It never
// carries key material, only presence.
type ServiceStatus struct {
	VisionConfigured     bool   `json:"vision_configured"`
	SearchConfigured     bool   `json:"search_configured"`
	CompletionConfigured bool   `json:"completion_configured"`
	SearchIndex          string `json:"search_index"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps the service-layer sentinel errors to HTTP status codes and formats
// the standard failure JSON. Anything unrecognized is treated as an internal
// error so implementation details never leak to the client.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages from the service layer are already written for
		// the client.
		message = err.Error()
	case errors.Is(err, app_errors.ErrConfiguration):
		statusCode = http.StatusInternalServerError
		message = "The service is not fully configured. Check backing service credentials."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Success: false, Error: message})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
