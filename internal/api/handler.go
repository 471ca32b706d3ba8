package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "docsight/internal/errors"
	"docsight/internal/interfaces"
	"docsight/internal/model"
)

// ChatHandler handles HTTP requests for the chat turn pipeline.
type ChatHandler struct {
	service interfaces.ChatService
	status  ServiceStatus
}

func NewChatHandler(svc interfaces.ChatService, status ServiceStatus) *ChatHandler {
	return &ChatHandler{service: svc, status: status}
}

// HandleChat godoc
// @Summary      Process a chat turn
// @Description  Answers a user message, optionally extracting text from an attached image and grounding the reply in retrieved knowledge base documents.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Message, optional base64 image, and prior history"
// @Success      200          {object}  ChatTurnResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.service.HandleTurn(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ChatTurnResponse{
		Success:           true,
		Reply:             resp.Reply,
		HasImage:          resp.HasImage,
		ExtractedText:     resp.ExtractedText,
		UsedKnowledgeBase: resp.UsedKnowledgeBase,
		RagLimitExceeded:  resp.RagLimitExceeded,
		HistoryUpdated:    resp.HistoryUpdated,
	})
}

// HandleStatus godoc
// @Summary      Backing service status
// @Description  Reports which backing services are configured, without exposing credentials.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  ServiceStatus
// @Router       /v1/status [get]
func (h *ChatHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.status)
}
